package main

import (
	"log"

	"github.com/bookmarklab/corral/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ corral failed to start: %v", err)
	}
}
