package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"word-wolf/internal/config"
	"word-wolf/internal/db"
	"word-wolf/internal/server"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}
	cfg := config.Load()

	conn, err := db.Open()
	if err != nil {
		log.Printf("running without archive database: %v", err)
		conn = nil
	} else if err := db.Configure(conn,
		cfg.DBMaxOpenConns,
		cfg.DBMaxIdleConns,
		cfg.DBConnMaxLifetimeSeconds,
		cfg.DBConnMaxIdleTimeSeconds,
	); err != nil {
		log.Fatalf("database pool setup failed: %v", err)
	}

	srv := server.New(conn, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go srv.RunPhaseTimer(ctx)

	addr := ":8080"
	if env := os.Getenv("PORT"); env != "" {
		addr = ":" + env
	}
	log.Printf("word-wolf server listening on %s", addr)
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
		log.Fatal(err)
	}
}
