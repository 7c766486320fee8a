// cmd/server is the plain server binary: boots everything and serves.
// Use cmd/retailedge for the full CLI (migrations, seeding, routes).
package main

import (
	"log"

	"github.com/Saurav-S-Mehta-07/RetailEdge/internal/server"
)

func main() {
	if err := server.Start(); err != nil {
		log.Fatal(err)
	}
}
