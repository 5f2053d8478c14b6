package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/theoremus-urban-solutions/transit-tracker/config"
	"github.com/theoremus-urban-solutions/transit-tracker/scheduler"
	"github.com/theoremus-urban-solutions/transit-tracker/server"
	"github.com/theoremus-urban-solutions/transit-tracker/snapshot"
	"github.com/theoremus-urban-solutions/transit-tracker/store"
	"github.com/theoremus-urban-solutions/transit-tracker/transit"
)

func main() {
	mode := flag.String("mode", "serve", "serve|oneshot")
	configPath := flag.String("config", "", "config file path (default config.yml)")
	agencyKey := flag.String("agency", "", "agency key for oneshot mode")
	call := flag.String("call", "stations", "stations|vehicles|arrivals|status (oneshot)")
	line := flag.String("line", "all", "line filter")
	stationID := flag.String("station", "", "station id for -call arrivals")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	var paths []string
	if *configPath != "" {
		paths = append(paths, *configPath)
	}
	cfg, err := config.Load(paths...)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	manager := store.NewManager(cfg)

	switch *mode {
	case "serve":
		serve(cfg, manager)
	case "oneshot":
		oneshot(cfg, manager, *agencyKey, *call, *line, *stationID)
	default:
		log.Fatal().Str("mode", *mode).Msg("Unknown mode")
	}
}

func serve(cfg *config.AppConfig, manager *store.Manager) {
	sched := scheduler.New(manager, cfg.RefreshInterval())

	// Warm the cache for every enabled agency so the first API hits are
	// served from completed fetches.
	subs := make([]*scheduler.Subscription, 0)
	for _, key := range cfg.EnabledAgencies() {
		for _, dataType := range []transit.DataType{transit.DataTypeStations, transit.DataTypeVehicles} {
			subs = append(subs, sched.Subscribe(key, dataType))
		}
	}

	srv := server.New(cfg, manager)
	srv.Start()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Info().Msg("Shutdown signal received")

	for _, sub := range subs {
		sub.Cancel()
	}
	sched.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	} else {
		log.Info().Msg("Server shut down successfully")
	}
}

func oneshot(cfg *config.AppConfig, manager *store.Manager, agencyKey, call, line, stationID string) {
	if agencyKey == "" {
		keys := cfg.EnabledAgencies()
		if len(keys) == 0 {
			log.Fatal().Msg("No enabled agencies in config")
		}
		agencyKey = keys[0]
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var out interface{}
	var err error

	switch call {
	case "stations":
		var stations map[string]transit.Station
		var lines map[string]transit.Line
		if stations, err = manager.Stations(ctx, agencyKey); err == nil && line != snapshot.LineFilterAll {
			lines, err = manager.Lines(ctx, agencyKey)
		}
		if err == nil {
			bounds := snapshot.NewBounds()
			out = snapshot.BuildStationFeatures(stations, lines, line, bounds)
		}
	case "vehicles":
		var vehicles map[string]transit.Vehicle
		if vehicles, err = manager.Vehicles(ctx, agencyKey); err == nil {
			out = snapshot.BuildVehicleFeatures(vehicles, line, nil)
		}
	case "arrivals":
		var stations map[string]transit.Station
		if stations, err = manager.Stations(ctx, agencyKey); err == nil {
			station, ok := stations[stationID]
			if !ok {
				log.Fatal().Str("station", stationID).Msg("Unknown station")
			}
			out = snapshot.RankArrivals(station, line)
		}
	case "status":
		out, err = manager.Outage(ctx, agencyKey)
	default:
		log.Fatal().Str("call", call).Msg("Unknown call")
	}

	if err != nil {
		log.Fatal().Err(err).Str("agency", agencyKey).Msg("Fetch failed")
	}

	buf, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Encode failed")
	}
	fmt.Println(string(buf))
}
