package main

import (
	"context"
	"log"

	"github.com/marcosalmeidaedp/bot-cliente/internal/bootstrap"
	"github.com/marcosalmeidaedp/bot-cliente/internal/config"
	"github.com/marcosalmeidaedp/bot-cliente/internal/server"
	"github.com/marcosalmeidaedp/bot-cliente/internal/tracer"
)

func main() {
	// 1. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 2. Load Configuration
	cfg := config.Load()

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)
	defer container.Logger.Sync()

	// 4. Start Background Services
	go container.WebSocketHub.Run()
	go func() {
		log.Println("Background: Starting Audit Consumer...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
