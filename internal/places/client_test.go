package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func testClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c := New("test-key", zap.NewNop().Sugar())
	c.baseURL = srv.URL
	return c
}

func TestFindSuccess(t *testing.T) {
	var gotQuery map[string]string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{
			"input":     q.Get("input"),
			"inputtype": q.Get("inputtype"),
			"fields":    q.Get("fields"),
			"key":       q.Get("key"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"OK","candidates":[{"place_id":"ChIJabc123","opening_hours":{"open_now":false}}]}`))
	})

	res, ok := c.Find(context.Background(), "Paradise", "SD Road", "Hyderabad")
	if !ok {
		t.Fatal("Find reported not-found on a valid response")
	}
	if res.PlaceID != "ChIJabc123" {
		t.Errorf("PlaceID = %q", res.PlaceID)
	}
	if res.OpenNow == nil || *res.OpenNow {
		t.Errorf("OpenNow = %v, want false", res.OpenNow)
	}

	if gotQuery["input"] != "Paradise SD Road Hyderabad" {
		t.Errorf("input = %q", gotQuery["input"])
	}
	if gotQuery["inputtype"] != "textquery" {
		t.Errorf("inputtype = %q", gotQuery["inputtype"])
	}
	if gotQuery["fields"] != "place_id,opening_hours" {
		t.Errorf("fields = %q", gotQuery["fields"])
	}
	if gotQuery["key"] != "test-key" {
		t.Errorf("key = %q", gotQuery["key"])
	}
}

func TestFindWithoutOpeningHours(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"OK","candidates":[{"place_id":"ChIJxyz"}]}`))
	})

	res, ok := c.Find(context.Background(), "Shah Ghouse", "", "Hyderabad")
	if !ok || res.PlaceID != "ChIJxyz" {
		t.Fatalf("Find = (%+v, %t)", res, ok)
	}
	if res.OpenNow != nil {
		t.Errorf("OpenNow = %v, want nil when the payload has none", res.OpenNow)
	}
}

func TestFindNotFoundPaths(t *testing.T) {
	tests := []struct {
		name string
		h    http.HandlerFunc
	}{
		{"zero results", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"ZERO_RESULTS","candidates":[]}`))
		}},
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		}},
		{"empty place id", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"OK","candidates":[{"place_id":""}]}`))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testClient(t, tt.h)
			if _, ok := c.Find(context.Background(), "X", "", "Hyderabad"); ok {
				t.Error("Find reported found")
			}
		})
	}
}

func TestFindDisabledWithoutKey(t *testing.T) {
	c := New("", zap.NewNop().Sugar())
	if c.Enabled() {
		t.Fatal("client without a key reports Enabled")
	}
	if _, ok := c.Find(context.Background(), "Paradise", "", "Hyderabad"); ok {
		t.Error("disabled client reported found")
	}
}

func TestLinks(t *testing.T) {
	if got := PlaceLink("ChIJabc123"); got != "https://www.google.com/maps/place/?q=place_id:ChIJabc123" {
		t.Errorf("PlaceLink = %q", got)
	}
	if got := SearchLink("Cafe Niloufer", "Hyderabad"); got != "https://www.google.com/maps/search/?api=1&query=Cafe+Niloufer+Hyderabad" {
		t.Errorf("SearchLink = %q", got)
	}
}
