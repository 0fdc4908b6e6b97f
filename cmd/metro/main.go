// SPDX-License-Identifier: MIT

// Command metro is the interactive metro ticket office.
//
// Usage:
//
//	metro [-config config.yml]
//
// The station, line and ticket files are named in the config file and may be
// overridden through METRO_* environment variables or a .env file.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/metro/config"
	"github.com/katalvlaran/metro/core"
	"github.com/katalvlaran/metro/dataset"
	"github.com/katalvlaran/metro/dfs"
	"github.com/katalvlaran/metro/logging"
	"github.com/katalvlaran/metro/menu"
	"github.com/katalvlaran/metro/ticket"
)

func main() {
	configPath := flag.String("config", "config.yml", "path to the YAML configuration file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("metro stopped", "err", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	log := logging.New(os.Stderr, level)
	slog.SetDefault(log)

	format := cfg.DatasetFormat()
	net, err := loadNetwork(cfg, format, log)
	if err != nil {
		return err
	}

	store, err := ticket.NewStore(net,
		ticket.WithPriceFactor(cfg.Pricing.Factor),
		ticket.WithLogger(log),
	)
	if err != nil {
		return err
	}
	tickets := dataset.File{Path: cfg.Data.Tickets, Format: format, AllowMissing: true}
	if err := store.Load(tickets); err != nil {
		return fmt.Errorf("%s: %w", cfg.Data.Tickets, err)
	}

	return menu.New(net, store, tickets, menu.WithLogger(log)).Run(os.Stdin, os.Stdout)
}

// loadNetwork reads stations then lines and, in strict mode, checks every
// link is served by a line. A network split into several components only
// draws a warning.
func loadNetwork(cfg config.Config, format dataset.Format, log *slog.Logger) (*core.Network, error) {
	stationRecs, err := dataset.File{Path: cfg.Data.Stations, Format: format}.ReadRecords()
	if err != nil {
		return nil, err
	}
	net, err := core.LoadStations(stationRecs,
		core.WithListDelimiter(cfg.Format.ListDelimiter),
		core.WithLogger(log),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.Data.Stations, err)
	}

	lineRecs, err := dataset.File{Path: cfg.Data.Lines, Format: format}.ReadRecords()
	if err != nil {
		return nil, err
	}
	if err := net.LoadLines(lineRecs); err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.Data.Lines, err)
	}

	if err := net.Validate(); err != nil {
		if cfg.Strict {
			return nil, err
		}
		log.Warn("network has links outside every line", "err", err)
	}

	comps, err := dfs.Components(net)
	if err != nil {
		return nil, err
	}
	if len(comps) > 1 {
		log.Warn("network is split; some journeys have no route", "components", len(comps))
	}

	return net, nil
}
