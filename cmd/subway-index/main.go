package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	lib "github.com/theoremus-urban-solutions/subway-index"
	"github.com/theoremus-urban-solutions/subway-index/commands"
	"github.com/theoremus-urban-solutions/subway-index/config"
	"github.com/theoremus-urban-solutions/subway-index/entrances"
	"github.com/theoremus-urban-solutions/subway-index/formatter"
	"github.com/theoremus-urban-solutions/subway-index/gtfsrt"
)

func main() {
	configPath := flag.String("config", "", "path to config.yml (default: config.yml or ./config/config.yml)")
	entrancesPath := flag.String("entrances", "", "entrances CSV (overrides config)")
	commandsPath := flag.String("commands", "", "command file (overrides config, - for stdin)")
	vehiclesSrc := flag.String("vehicles", "", "GTFS-RT VehiclePositions URL or file (overrides config)")
	format := flag.String("format", "", "text|json (overrides config)")
	mode := flag.String("mode", "commands", "commands|vehicles|stats")
	flag.Parse()

	lib.InitLogging()
	if err := config.LoadAppConfig(*configPath); err != nil {
		log.Fatalf("config: %v", err)
	}
	cfg := config.Config
	if *entrancesPath != "" {
		cfg.Data.EntrancesPath = *entrancesPath
	}
	if *commandsPath != "" {
		cfg.Data.CommandsPath = *commandsPath
	}
	if *vehiclesSrc != "" {
		cfg.Data.VehiclePositionsPath = *vehiclesSrc
	}
	if *format != "" {
		cfg.Output.Format = *format
	}
	if cfg.Data.EntrancesPath == "" {
		log.Fatal("no entrances file: set -entrances or data.entrancesPath")
	}

	sys, err := build(cfg)
	if err != nil {
		log.Fatal(err)
	}

	out, err := formatter.New(cfg.Output.Format, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := out.Flush(); err != nil {
			log.Printf("flush: %v", err)
		}
	}()

	switch *mode {
	case "commands":
		err = runCommands(sys, cfg.Data.CommandsPath, out)
	case "vehicles":
		err = runVehicles(sys, cfg.Data.VehiclePositionsPath, out)
	case "stats":
		fmt.Printf("entrances: %d\nstations: %d\nduplicate names dropped: %d\n",
			sys.EntranceCount(), sys.StationCount(), sys.DroppedStations())
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		_ = out.Flush()
		log.Fatal(err)
	}
}

func build(cfg config.AppConfig) (*lib.System, error) {
	start := time.Now()
	logger := log.Default()
	loaded, stats, err := entrances.LoadFile(cfg.Data.EntrancesPath, logger)
	if err != nil {
		return nil, err
	}
	log.Printf("entrances: %d rows, %d loaded, %d skipped (%d unknown lines)",
		stats.Rows, stats.Loaded, stats.Skipped, stats.UnknownLines)

	sys := lib.NewSystemFromConfig(cfg, lib.WithLogger(logger))
	for _, e := range loaded {
		if err := sys.Ingest(e); err != nil {
			return nil, err
		}
	}
	if err := sys.Finalize(); err != nil {
		return nil, fmt.Errorf("building index: %w", err)
	}
	log.Printf("index built in %s", time.Since(start))
	return sys, nil
}

func runCommands(sys *lib.System, path string, out formatter.Writer) error {
	in := os.Stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open commands file: %w", err)
		}
		defer func() { _ = f.Close() }()
		in = f
	}
	cmds, err := commands.Parse(in)
	if err != nil {
		return err
	}
	for _, c := range cmds {
		if c.Err != nil {
			log.Printf("command %q: %v", c.Raw, c.Err)
		}
		res, err := formatter.Evaluate(sys, c)
		if err != nil {
			return fmt.Errorf("command %q: %w", c.Raw, err)
		}
		if err := out.WriteResult(res); err != nil {
			return err
		}
	}
	return nil
}

func runVehicles(sys *lib.System, src string, out formatter.Writer) error {
	if src == "" {
		return fmt.Errorf("no vehicle feed: set -vehicles or data.vehiclePositionsPath")
	}
	feed, err := gtfsrt.NewClient(30 * time.Second).Load(src)
	if err != nil {
		return err
	}
	matches, err := gtfsrt.MatchVehicles(sys, feed)
	if err != nil {
		return err
	}
	for _, m := range matches {
		if err := out.WriteVehicle(m); err != nil {
			return err
		}
	}
	log.Printf("matched %d vehicles", len(matches))
	return nil
}
