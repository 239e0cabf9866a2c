// Worker forwards this service's telemetry events (requests, access decisions, membership
// conflicts) from Kafka to Loki, labelled per event type.
// Set KAFKA_BROKERS and LOKI_URL; WORKER_EVENT_TYPES narrows what is forwarded.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"

	"tenant-core/internal/config"
	"tenant-core/internal/telemetry/loki"
	"tenant-core/internal/telemetry/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	brokers := cfg.TelemetryKafkaBrokersList()
	if len(brokers) == 0 {
		log.Fatal("worker: KAFKA_BROKERS is required")
	}
	if cfg.LokiURL == "" {
		log.Fatal("worker: LOKI_URL is required")
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    cfg.TelemetryKafkaTopic,
		GroupID:  cfg.KafkaGroupID,
		MinBytes: 1,
		MaxBytes: 10e6,
		MaxWait:  time.Second,
	})
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	types := cfg.WorkerEventTypesList()
	if len(types) == 0 {
		log.Printf("worker: forwarding all event types from %s (group %s) to %s", cfg.TelemetryKafkaTopic, cfg.KafkaGroupID, cfg.LokiURL)
	} else {
		log.Printf("worker: forwarding %v from %s (group %s) to %s", types, cfg.TelemetryKafkaTopic, cfg.KafkaGroupID, cfg.LokiURL)
	}
	if err := worker.New(reader, loki.NewClient(cfg.LokiURL, nil), types).Run(ctx); err != nil {
		log.Fatalf("worker: %v", err)
	}
	log.Println("worker: stopped")
}
