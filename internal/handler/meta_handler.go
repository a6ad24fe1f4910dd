// internal/handler/meta_handler.go
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"foodrec/internal/models"
	"foodrec/internal/repository"
	"foodrec/internal/service"
)

type MetaHandler struct {
	svc *service.MetaService
}

func NewMetaHandler(s *service.MetaService) *MetaHandler { return &MetaHandler{svc: s} }

// @Summary List known cities
// @Tags meta
// @Produce json
// @Success 200 {object} models.CitiesResponse
// @Router /api/cities [get]
func (h *MetaHandler) Cities(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	cities, err := h.svc.Cities(r.Context())
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(models.CitiesResponse{Cities: cities})
}

// @Summary List areas of a city
// @Tags meta
// @Produce json
// @Param city query string true "city name"
// @Success 200 {object} models.AreasResponse
// @Failure 404 {string} string "city not found"
// @Router /api/areas [get]
func (h *MetaHandler) Areas(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	city := r.URL.Query().Get("city")
	if city == "" {
		http.Error(w, "city is required", http.StatusBadRequest)
		return
	}

	canonical, areas, err := h.svc.Areas(r.Context(), city)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.Error(w, fmt.Sprintf("City '%s' not found", city), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(models.AreasResponse{City: canonical, Areas: areas})
}
