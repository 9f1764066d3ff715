package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"wildfire-ca/internal/stream"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	interval := flag.Duration("interval", 150*time.Millisecond, "delay between streamed frames")
	flag.Parse()

	srv := stream.NewServer(nil, *interval)
	log.Printf("fire server listening on %s (ws: /ws, POST /api/simulation, GET /api/risk-map)", *addr)
	log.Fatal(http.ListenAndServe(*addr, srv.Handler()))
}
