package main

import (
	"log"
	"net/http"

	"Reelrank/config"
	"Reelrank/database"
	"Reelrank/handlers"
	"Reelrank/logger"
	"Reelrank/middleware"
	"Reelrank/services"

	"github.com/go-chi/chi/v5"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	logger.Init(cfg.Environment, cfg.Debug)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	store := database.NewStore(db)
	defer store.Close()

	tmdb := services.NewTMDBClient(cfg)
	sessions := services.NewSessionManager(cfg)
	h := handlers.New(store, tmdb, sessions)

	r := chi.NewRouter()
	r.Use(middleware.Logging)

	r.Get("/", h.Home)
	r.Post("/", h.Home)
	r.Get("/add", h.Add)
	r.Post("/add", h.Add)
	r.Get("/details", h.Details)
	r.Get("/edit/{movieID}", h.Edit)
	r.Post("/edit/{movieID}", h.Edit)
	r.Get("/delete", h.Delete)

	addr := ":" + cfg.ServerPort
	logger.With("addr", addr, "env", cfg.Environment).Info("Reelrank is starting")

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("FATAL: Server failed to start: %v", err)
	}
}
