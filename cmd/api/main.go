package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/jmagwili/launchpad-jia/internal/server"
)

func main() {
	srv := server.NewServer()

	log.Printf("Server listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server failed to start: %s", err)
	}
}
