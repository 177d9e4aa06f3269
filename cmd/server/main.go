// Command server runs the admin catalog HTTP API.
package main

import (
	"context"
	"log"

	"github.com/heartmarshall/admincatalog-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("server: %v", err)
	}
}
