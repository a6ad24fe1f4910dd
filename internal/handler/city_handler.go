// internal/handler/city_handler.go
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

type CityHandler struct {
	svc *service.CityService
}

func NewCityHandler(s *service.CityService) *CityHandler { return &CityHandler{svc: s} }

// @Summary Famous foods of a city
// @Tags city
// @Accept json
// @Produce json
// @Param body body models.CityRequest true "city to summarize"
// @Success 200 {object} models.CitySearchResponse
// @Failure 404 {string} string "city not found"
// @Router /api/city/search [post]
func (h *CityHandler) Search(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req models.CityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, "invalid body (city required)", http.StatusBadRequest)
		return
	}

	resp, err := h.svc.Search(r.Context(), req.City)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.Error(w, fmt.Sprintf("City '%s' not found", req.City), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(resp)
}
