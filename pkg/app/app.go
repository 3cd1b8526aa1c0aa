// Package app wires the configured cache store, API client and resolver
// together for the CLI commands and the sidecar.
package app

import (
	"github.com/allegiancegroup/canto-field/pkg/canto"
	"github.com/allegiancegroup/canto-field/pkg/config"
	"github.com/allegiancegroup/canto-field/pkg/logging"
	"github.com/allegiancegroup/canto-field/pkg/store"
)

type App struct {
	Config   *config.Config
	Store    store.Store
	Client   *canto.Client
	Resolver *canto.Resolver
}

func Build(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	var s store.Store
	if cfg.CacheBackend == "redis" {
		s, err = store.NewRedis(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		logging.Log.Debugf("using redis cache at %s", cfg.RedisAddr)
	} else {
		s = store.NewMemory()
	}

	client := canto.New(cfg)

	return &App{
		Config:   cfg,
		Store:    s,
		Client:   client,
		Resolver: canto.NewResolver(client, s, cfg),
	}, nil
}
