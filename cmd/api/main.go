package main

import (
	"context"
	"net/http"
	"time"

	_ "foodrec/docs" // swagger docs

	"foodrec/internal/cache"
	"foodrec/internal/config"
	"foodrec/internal/db"
	"foodrec/internal/handler"
	"foodrec/internal/logger"
	"foodrec/internal/metrics"
	"foodrec/internal/places"
	"foodrec/internal/repository"
	"foodrec/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Food Restaurant Recommendation API
// @version 1.0
// @description Restaurant recommendations over Mongo, with Redis caching and Google Places enrichment
// @host localhost:8080
// @BasePath /
func main() {
	cfg := config.Load()
	zl := logger.New(cfg.LogLevel)
	defer zl.Sync()

	// Mongo
	mc, mdb, err := db.Connect(context.Background(), cfg)
	if err != nil {
		zl.Fatalf("mongo: %v", err)
	}
	defer mc.Disconnect(context.Background())

	// Redis (optional, famous-foods cache only)
	rc := cache.New(cfg, zl)
	defer rc.Close()

	// City profiles, hot-reloadable when a file is configured
	cities, err := config.NewCityTable(cfg.CityProfilesPath, zl)
	if err != nil {
		zl.Fatalf("city profiles: %v", err)
	}
	if err := cities.Watch(); err != nil {
		zl.Warnf("[config] profile watch disabled: %v", err)
	}

	// Google Places client (optional)
	pl := places.New(cfg.GoogleAPIKey, zl)

	// repos
	restRepo := repository.NewRestaurantRepository(mdb)

	// services
	citySvc := service.NewCityService(restRepo, cities, rc, zl)
	recSvc := service.NewRecommendService(restRepo, cities, pl, zl)
	metaSvc := service.NewMetaService(restRepo, zl)

	// handlers
	cityH := handler.NewCityHandler(citySvc)
	recH := handler.NewRecommendHandler(recSvc)
	metaH := handler.NewMetaHandler(metaSvc)
	healthH := handler.NewHealthHandler(mc, restRepo, pl, rc)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL, "http://localhost:3000", "http://127.0.0.1:3000"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// =============
	// Public routes
	// =============
	r.Get("/", healthH.Root)
	r.Get("/health", healthH.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(httprate.LimitByIP(100, time.Minute))

		r.Post("/city/search", cityH.Search)
		r.Get("/cities", metaH.Cities)
		r.Get("/areas", metaH.Areas)

		r.Post("/restaurants/recommend", recH.Recommend)

		// WebSocket
		r.Get("/restaurants/ws/recommend", recH.RecommendWS)
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	zl.Infof("HTTP listening on :%s", cfg.HTTPPort)
	zl.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
