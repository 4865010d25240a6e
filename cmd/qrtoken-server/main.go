package main

import (
	"log"

	"github.com/aussiebroadwan/qrtoken/internal/qrtoken/app"
)

func main() {
	cfg := app.LoadServerConfig()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
