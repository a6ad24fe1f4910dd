package main

import (
	"context"
	"flag"
	"time"

	"foodrec/internal/config"
	"foodrec/internal/db"
	"foodrec/internal/importer"
	"foodrec/internal/logger"
	"foodrec/internal/repository"
)

func main() {
	file := flag.String("file", "", "path to the dataset CSV")
	flag.Parse()

	cfg := config.Load()
	zl := logger.New(cfg.LogLevel)
	defer zl.Sync()

	if *file == "" {
		zl.Fatal("usage: import -file <dataset.csv>")
	}

	mc, mdb, err := db.Connect(context.Background(), cfg)
	if err != nil {
		zl.Fatalf("mongo: %v", err)
	}
	defer mc.Disconnect(context.Background())

	cities, err := config.NewCityTable(cfg.CityProfilesPath, zl)
	if err != nil {
		zl.Fatalf("city profiles: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	imp := importer.New(repository.NewImportRepository(mdb), cities, zl)
	run, err := imp.Run(ctx, *file)
	if err != nil {
		zl.Fatalf("import: %v", err)
	}

	// post-import statistics
	restRepo := repository.NewRestaurantRepository(mdb)
	total, _ := restRepo.CountAll(ctx)
	citiesList, _ := restRepo.DistinctCities(ctx)

	zl.Infof("[import] run %s complete: %d restaurants across %d cities", run.RunID, total, len(citiesList))
	for _, city := range citiesList {
		n, err := restRepo.CountByCity(ctx, city)
		if err != nil {
			continue
		}
		areas, _ := restRepo.DistinctLocalities(ctx, city)
		zl.Infof("[import]   %s: %d restaurants, %d areas", city, n, len(areas))
	}
}
