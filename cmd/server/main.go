// cmd/server/main.go
package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"ponto_backend/internal/config"
	"ponto_backend/internal/routes"
	"ponto_backend/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	db := storage.OpenDB(cfg)
	r := routes.NewRouter(db, cfg)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	addr := ":" + port
	log.Printf("Server running on %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
