package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"foodrec/internal/models"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// defaultProfile mirrors the Hyderabad launch dataset. Cities without an entry
// in the table inherit these values with the city name swapped in.
var defaultProfile = models.CityProfile{
	City:               "Hyderabad",
	MustShowCuisines:   []string{"Biryani", "South Indian", "Haleem", "Andhra", "Cafe"},
	CentroidLatitude:   17.3850,
	CentroidLongitude:  78.4867,
	DefaultOpeningTime: "11:00 AM",
	DefaultClosingTime: "11:00 PM",
	FallbackAddress:    "Hyderabad",
}

// CityTable resolves per-city profiles (must-show cuisines, centroid, display
// defaults). It starts from the built-in table and can be extended or
// overridden by a JSON file, which is hot-reloaded on change.
type CityTable struct {
	mu       sync.RWMutex
	profiles map[string]models.CityProfile
	path     string
	log      *zap.SugaredLogger
}

// NewCityTable builds the table. path may be empty, in which case only the
// built-in profiles are available.
func NewCityTable(path string, log *zap.SugaredLogger) (*CityTable, error) {
	t := &CityTable{
		profiles: map[string]models.CityProfile{
			strings.ToLower(defaultProfile.City): defaultProfile,
		},
		path: path,
		log:  log,
	}
	if path != "" {
		if err := t.Reload(); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Lookup returns the profile for a city (case-insensitive). Unknown cities get
// the default profile with the requested name substituted, so single-city
// behavior is preserved without inventing per-city data.
func (t *CityTable) Lookup(city string) models.CityProfile {
	t.mu.RLock()
	p, ok := t.profiles[strings.ToLower(strings.TrimSpace(city))]
	t.mu.RUnlock()
	if ok {
		return p
	}

	p = defaultProfile
	if c := strings.TrimSpace(city); c != "" {
		p.City = c
		p.FallbackAddress = c
	}
	return p
}

// Reload re-reads the profile file and swaps the table in one step.
func (t *CityTable) Reload() error {
	data, err := os.ReadFile(t.path)
	if err != nil {
		return fmt.Errorf("read city profiles: %w", err)
	}

	var list []models.CityProfile
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("parse city profiles: %w", err)
	}

	profiles := map[string]models.CityProfile{
		strings.ToLower(defaultProfile.City): defaultProfile,
	}
	for _, p := range list {
		if strings.TrimSpace(p.City) == "" {
			continue
		}
		if p.FallbackAddress == "" {
			p.FallbackAddress = p.City
		}
		if p.DefaultOpeningTime == "" {
			p.DefaultOpeningTime = defaultProfile.DefaultOpeningTime
		}
		if p.DefaultClosingTime == "" {
			p.DefaultClosingTime = defaultProfile.DefaultClosingTime
		}
		profiles[strings.ToLower(p.City)] = p
	}

	t.mu.Lock()
	t.profiles = profiles
	t.mu.Unlock()
	return nil
}

// Watch reloads the table whenever the profile file is written. No-op when no
// file is configured. The watcher lives for the life of the process.
func (t *CityTable) Watch() error {
	if t.path == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("city profile watcher: %w", err)
	}
	if err := watcher.Add(t.path); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", t.path, err)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&fsnotify.Write == fsnotify.Write {
					if err := t.Reload(); err != nil {
						t.log.Warnf("[config] city profile reload failed: %v", err)
					} else {
						t.log.Infof("[config] city profiles reloaded from %s", t.path)
					}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				t.log.Warnf("[config] city profile watcher: %v", err)
			}
		}
	}()

	return nil
}
