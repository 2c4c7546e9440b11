package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-YogaStore/internal/config"
	"github.com/m04kA/SMC-YogaStore/internal/infra/migrations"
	"github.com/m04kA/SMC-YogaStore/internal/infra/seed"
	catalogRepo "github.com/m04kA/SMC-YogaStore/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-YogaStore/pkg/dbmetrics"
	"github.com/m04kA/SMC-YogaStore/pkg/logger"
	"github.com/m04kA/SMC-YogaStore/pkg/txmanager"
)

// Импорт каталога (yogaClasses, yogaCourses, instructors) из JSON экспорта
//
//	go run ./cmd/seed -config config.toml -file export.json
func main() {
	defaultConfig := "config.toml"
	if p := os.Getenv("YOGA_CONFIG"); p != "" {
		defaultConfig = p
	}

	configPath := flag.String("config", defaultConfig, "path to config file")
	exportPath := flag.String("file", "", "path to JSON export of catalog collections")
	timeout := flag.Duration("timeout", time.Minute, "import timeout")
	flag.Parse()

	if *exportPath == "" {
		fmt.Println("Usage: seed -file export.json [-config config.toml]")
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	f, err := os.Open(*exportPath)
	if err != nil {
		log.Fatal("Failed to open export file %s: %v", *exportPath, err)
	}
	defer f.Close()

	export, err := seed.Decode(f)
	if err != nil {
		log.Fatal("Failed to read export file %s: %v", *exportPath, err)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	if err := migrations.Up(ctx, db); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}

	wrappedDB := dbmetrics.Wrap(db, nil)
	importer := seed.NewImporter(
		catalogRepo.NewRepository(wrappedDB),
		txmanager.NewTransactionManager(wrappedDB),
		log,
	)

	result, err := importer.Import(ctx, export)
	if err != nil {
		log.Fatal("Catalog import failed: %v", err)
	}

	log.Info("Catalog imported from %s: %d classes, %d courses, %d instructors",
		*exportPath, result.Classes, result.Courses, result.Instructors)
}
