package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/flighttime/config"
	"github.com/Domenick1991/flighttime/internal/cache"
	"github.com/Domenick1991/flighttime/internal/kafka"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if !cfg.Kafka.Enabled() {
		log.Fatalf("kafka brokers and lookup_topic are required for the worker")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	stats := cache.NewRedisStats(cfg.Redis)
	defer stats.Close()
	if err := stats.Ping(ctx); err != nil {
		log.Fatalf("connect redis: %v", err)
	}

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.LookupTopic)
	defer consumer.Close()

	go func() {
		if err := consumer.Consume(ctx, kafka.LookupHandler(stats.RecordLookup)); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("consumer stopped: %v", err)
			cancel()
		}
	}()

	interval := time.Duration(cfg.Worker.ReportIntervalSeconds) * time.Second
	if interval <= 0 {
		interval = time.Minute
	}
	reportTicker := time.NewTicker(interval)
	defer reportTicker.Stop()

	for {
		select {
		case <-reportTicker.C:
			snapshot, err := stats.Snapshot(ctx)
			if err != nil {
				log.Printf("read lookup stats error: %v", err)
				continue
			}
			log.Printf("lookups: total=%d hit=%d miss=%d", snapshot.Total, snapshot.Hits, snapshot.Misses)
		case <-ctx.Done():
			log.Printf("shutting down")
			return
		}
	}
}
