// ==============================================================================================
// FILE: cmd/prolog/config.go
// ==============================================================================================
// PACKAGE: main
// PURPOSE: Shared config/driver construction for every subcommand — the CLI's persistent flags
//          layered over internal/config.Load, so a subcommand only has to call loadConfig once.
// ==============================================================================================

package main

import (
	"github.com/HeavyHelium/prolog-go/driver"
	"github.com/HeavyHelium/prolog-go/internal/config"
)

func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error
	if flagConfigPath != "" {
		cfg, err = config.Load(flagConfigPath)
		if err != nil {
			return nil, err
		}
	} else {
		cfg = config.Default()
	}
	cfg.Trace = cfg.Trace || flagTrace
	if !flagColor {
		cfg.Color = false
	}
	if flagMaxSolutions > 0 {
		cfg.MaxSolutions = flagMaxSolutions
	}
	return cfg, nil
}

func newDriver() (*driver.Driver, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return driver.New(cfg)
}
