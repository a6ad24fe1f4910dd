// internal/importer/importer.go
package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"foodrec/internal/config"
	"foodrec/internal/models"
	"foodrec/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Importer loads a restaurant dataset CSV and replaces the collection with
// it, applying the same defaulting rules the API relies on.
type Importer struct {
	repo   *repository.ImportRepository
	cities *config.CityTable
	log    *zap.SugaredLogger
}

func New(repo *repository.ImportRepository, cities *config.CityTable, log *zap.SugaredLogger) *Importer {
	return &Importer{repo: repo, cities: cities, log: log}
}

// Run reads the dataset, swaps the restaurants collection for its rows,
// ensures indexes and records an audit entry for the run.
func (im *Importer) Run(ctx context.Context, path string) (*models.ImportRun, error) {
	docs, err := im.readFile(path)
	if err != nil {
		return nil, err
	}
	im.log.Infof("[import] parsed %d records from %s", len(docs), filepath.Base(path))

	inserted, err := im.repo.ReplaceAll(ctx, docs)
	if err != nil {
		return nil, err
	}
	if err := im.repo.EnsureIndexes(ctx); err != nil {
		return nil, err
	}

	run := models.ImportRun{
		RunID:      uuid.NewString(),
		SourceFile: filepath.Base(path),
		Total:      inserted,
		Cities:     distinctCities(docs),
		ImportedAt: time.Now().UTC(),
	}
	if err := im.repo.RecordRun(ctx, run); err != nil {
		im.log.Warnf("[import] run %s finished but audit insert failed: %v", run.RunID, err)
	}
	return &run, nil
}

func (im *Importer) readFile(path string) ([]models.RestaurantDoc, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	if _, ok := col["Restaurant_Name"]; !ok {
		return nil, fmt.Errorf("%s: missing Restaurant_Name column", filepath.Base(path))
	}

	var docs []models.RestaurantDoc
	row := 1
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", row, err)
		}
		row++
		docs = append(docs, im.parseRow(rec, col))
	}
	return docs, nil
}

func (im *Importer) parseRow(rec []string, col map[string]int) models.RestaurantDoc {
	field := func(name string) string {
		i, ok := col[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	doc := models.RestaurantDoc{
		Name:          field("Restaurant_Name"),
		City:          field("City"),
		Locality:      field("Area_Locality"),
		Cuisines:      models.CleanCuisines(field("Cuisine")),
		CostForTwo:    parseInt(field("Average_Cost_for_Two_INR")),
		Rating:        parseFloat(field("Rating")),
		Latitude:      parseFloat(field("Latitude")),
		Longitude:     parseFloat(field("Longitude")),
		Votes:         parseInt(field("Number_of_Reviews")),
		BestDish:      field("Best_Dish"),
		SpicyLevel:    field("Taste_Profile_Spicy_Level"),
		PriceCategory: field("Price_Category"),
		OpeningTime:   field("Opening_Time"),
		ClosingTime:   field("Closing_Time"),
		OpenNow:       field("Open_Now"),
		FamousFor:     field("Famous_For"),
		FoodType:      field("Food_Type"),
		ReviewsText:   field("Reviews_Text"),
	}
	doc.ApplyDefaults(im.cities.Lookup(doc.City))
	return doc
}

// parseInt and parseFloat coerce loosely: a bad value becomes zero and the
// record defaults take over.
func parseInt(s string) int {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

func distinctCities(docs []models.RestaurantDoc) []string {
	seen := make(map[string]bool, len(docs))
	cities := make([]string, 0, 4)
	for _, d := range docs {
		if !seen[d.City] {
			seen[d.City] = true
			cities = append(cities, d.City)
		}
	}
	sort.Strings(cities)
	return cities
}
