// Audittail follows the query audit trail mirrored to NATS JetStream and
// prints every event to the terminal. Runs out of process from the bot; a
// durable consumer keeps its place across restarts.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/marcosalmeidaedp/bot-cliente/pkg/events"
	pktNats "github.com/marcosalmeidaedp/bot-cliente/pkg/nats"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

const durableName = "audittail"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	natsURL := os.Getenv("NATS_URL")
	if natsURL == "" {
		natsURL = "nats://localhost:4222"
	}
	if len(os.Args) > 1 {
		natsURL = os.Args[1]
	}

	sub, err := pktNats.NewSubscriber(natsURL)
	if err != nil {
		color.Red("❌ Could not connect to NATS at %s: %v", natsURL, err)
		os.Exit(1)
	}
	defer sub.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err = sub.Subscribe(ctx, "audit.>", durableName, func(_ context.Context, event events.Event) error {
		printEvent(event)
		return nil
	})
	if err != nil {
		color.Red("❌ Could not subscribe to the audit stream: %v", err)
		os.Exit(1)
	}

	color.Cyan("👂 Tailing audit events from %s (Ctrl+C to stop)\n", natsURL)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	color.Green("\n✅ Done")
}

func printEvent(event events.Event) {
	data := event.Payload()
	outcome := fmt.Sprintf("%v", data["outcome"])

	line := fmt.Sprintf("[%s] chat=%v field=%v query=%q results=%v",
		event.EventType(), data["chat_id"], data["field"], data["normalized_query"], data["result_count"])

	if outcome == events.OutcomeMatch {
		color.Green("%s", line)
	} else {
		color.Yellow("%s", line)
	}
}
