package main

import (
	"log"

	"banka-backend/internal/config"
	"banka-backend/internal/database"
	"banka-backend/internal/server"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	database.Init(cfg)

	app := server.New(cfg.CORSOrigins)

	addr := ":" + cfg.HTTPPort
	log.Printf("listening on %s", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatal(err)
	}
}
