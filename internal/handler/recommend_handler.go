// internal/handler/recommend_handler.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"foodrec/internal/metrics"
	"foodrec/internal/models"
	"foodrec/internal/repository"
	"foodrec/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"
)

var validate = validator.New()

const noResultsMsg = "No restaurants found. Try a wider budget or a different area."

type RecommendHandler struct {
	svc *service.RecommendService
}

func NewRecommendHandler(s *service.RecommendService) *RecommendHandler {
	return &RecommendHandler{svc: s}
}

// @Summary Ranked restaurant recommendations
// @Tags restaurants
// @Accept json
// @Produce json
// @Param body body models.RecommendationRequest true "search filters"
// @Success 200 {array} models.RestaurantResponse
// @Failure 404 {string} string "no restaurants found"
// @Router /api/restaurants/recommend [post]
func (h *RecommendHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req models.RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, "invalid body (city required)", http.StatusBadRequest)
		return
	}

	cands, err := h.svc.Recommend(r.Context(), req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, service.ErrNoResults) {
			http.Error(w, noResultsMsg, http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), 500)
		return
	}
	metrics.RecommendationsServed.WithLabelValues("http").Inc()

	_ = json.NewEncoder(w).Encode(h.svc.BuildResponses(r.Context(), cands, req.HasGPS()))
}

// upgrader global (swagger ignores it)
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Streamed recommendations (WebSocket)
// @Tags restaurants
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/restaurants/ws/recommend [get]
func (h *RecommendHandler) RecommendWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "could not open WebSocket", 400)
		return
	}
	defer conn.Close()

	// One request frame, then the results stream back one by one.
	var req models.RecommendationRequest
	if err := conn.ReadJSON(&req); err != nil {
		conn.WriteJSON(map[string]any{"type": "error", "error": "invalid request frame"})
		return
	}
	if err := validate.Struct(req); err != nil {
		conn.WriteJSON(map[string]any{"type": "error", "error": "invalid request (city required)"})
		return
	}

	cands, err := h.svc.Recommend(r.Context(), req)
	if err != nil {
		msg := err.Error()
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, service.ErrNoResults) {
			msg = noResultsMsg
		}
		conn.WriteJSON(map[string]any{"type": "error", "error": msg})
		return
	}
	metrics.RecommendationsServed.WithLabelValues("ws").Inc()

	conn.WriteJSON(map[string]any{
		"type":  "start",
		"city":  req.City,
		"total": len(cands),
	})

	for i, c := range cands {
		frame := map[string]any{
			"type":       "result",
			"index":      i,
			"restaurant": h.svc.BuildResponse(r.Context(), c, req.HasGPS()),
		}
		if err := conn.WriteJSON(frame); err != nil {
			return
		}
	}

	conn.WriteJSON(map[string]any{
		"type":        "done",
		"count":       len(cands),
		"generatedAt": time.Now(),
	})
}
