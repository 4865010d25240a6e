package main

import (
	"context"
	"log"
	"os"

	"github.com/aussiebroadwan/qrtoken/internal/qrtoken/app"
)

func main() {
	cfg := app.LoadIssuerConfig()

	issuer := app.NewIssuer(cfg, os.Stdout)
	if err := issuer.Run(context.Background()); err != nil {
		log.Fatalf("qrtoken: %v", err)
	}
}
