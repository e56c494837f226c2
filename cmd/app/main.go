package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/flighttime/config"
	"github.com/Domenick1991/flighttime/internal/bootstrap"
	"github.com/Domenick1991/flighttime/internal/domain"
	"github.com/Domenick1991/flighttime/internal/kafka"
	"github.com/Domenick1991/flighttime/internal/service/flights"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfigOrDefault(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	times := cfg.Flights
	if len(times) == 0 {
		times = domain.DefaultFlightTimes()
	}
	table, err := domain.NewFlightTimeTable(times)
	if err != nil {
		log.Fatalf("build flight table: %v", err)
	}
	log.Printf("loaded %d flights", table.Len())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var opts []flights.FlightServiceOption
	if cfg.Kafka.Enabled() {
		producer := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.LookupTopic)
		defer producer.Close()
		checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		if err := producer.CheckConnection(checkCtx); err != nil {
			log.Printf("WARNING: %v", err)
		}
		cancel()
		opts = append(opts, flights.WithEventProducer(producer))
	}

	flightService := flights.NewFlightService(table, opts...)

	if err := bootstrap.Run(ctx, cfg, flightService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
