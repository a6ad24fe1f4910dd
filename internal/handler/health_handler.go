// internal/handler/health_handler.go
package handler

import (
	"encoding/json"
	"net/http"

	"foodrec/internal/cache"
	"foodrec/internal/db"
	"foodrec/internal/models"
	"foodrec/internal/places"
	"foodrec/internal/service"

	"go.mongodb.org/mongo-driver/mongo"
)

type HealthHandler struct {
	client *mongo.Client
	store  service.RestaurantStore
	places *places.Client
	cache  *cache.Cache
}

func NewHealthHandler(client *mongo.Client, store service.RestaurantStore, pl *places.Client, c *cache.Cache) *HealthHandler {
	return &HealthHandler{client: client, store: store, places: pl, cache: c}
}

// @Summary Liveness and dependency status
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	resp := models.HealthResponse{
		API:       "healthy",
		Database:  "connected",
		PlacesAPI: "not configured",
		Cache:     "disabled",
	}
	if err := db.Ping(r.Context(), h.client); err != nil {
		resp.Database = "disconnected"
	} else if total, err := h.store.CountAll(r.Context()); err == nil {
		resp.TotalRestaurants = total
	}
	if h.places.Enabled() {
		resp.PlacesAPI = "configured"
	}
	if h.cache.Enabled() {
		resp.Cache = "connected"
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// @Summary Service banner
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "running"})
}
