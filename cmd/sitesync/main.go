package main

import (
	"log"

	"github.com/moscowmix/sitesync/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ sitesync failed to start: %v", err)
	}
}
