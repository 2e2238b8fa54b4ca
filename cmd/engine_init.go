package main

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sahyadri-labs/fra-atlas/internal/engine"
	"github.com/sahyadri-labs/fra-atlas/internal/provider"
	"github.com/sahyadri-labs/fra-atlas/internal/region"
	"github.com/sahyadri-labs/fra-atlas/internal/render"
	"github.com/sahyadri-labs/fra-atlas/internal/store"
)

// engineEnv holds the initialized store, region table, and engine needed by
// the analyze/batch/serve commands.
type engineEnv struct {
	Store   store.Store
	Regions *region.Table
	Engine  *engine.Engine
}

// Close drains any in-flight persistence, then releases the store. Order
// matters: closing the store first would cut off saves the engine has
// already accepted.
func (ee *engineEnv) Close() {
	if ee.Engine != nil {
		ee.Engine.Close()
	}
	if ee.Store != nil {
		_ = ee.Store.Close()
	}
}

// initEngine sets up the store, region table, feature sources, and renderer,
// then builds the engine. Callers should defer env.Close().
func initEngine(ctx context.Context) (*engineEnv, error) {
	regions, err := initRegions()
	if err != nil {
		return nil, err
	}

	st, err := initStore(ctx)
	if err != nil {
		return nil, err
	}
	if st != nil {
		if err := st.Migrate(ctx); err != nil {
			_ = st.Close()
			return nil, eris.Wrap(err, "migrate store")
		}
	}

	var primary provider.Source
	if cfg.Overpass.Enabled {
		primary = provider.NewOverpass(provider.OverpassConfig{
			Endpoint:      cfg.Overpass.Endpoint,
			TimeoutSecs:   cfg.Overpass.TimeoutSecs,
			MaxParallel:   cfg.Overpass.MaxParallel,
			RatePerMinute: cfg.Overpass.RatePerMinute,
		})
	} else {
		zap.L().Info("overpass disabled, using synthetic features only")
	}
	source := provider.NewFallback(primary, provider.NewSynthetic(regions))

	opts := []engine.Option{}
	if cfg.Satellite.Enabled {
		opts = append(opts, engine.WithSatellite(provider.NewSatellite(regions)))
	}
	if st != nil {
		opts = append(opts, engine.WithStore(st))
	}
	if cfg.Maps.Enabled {
		renderer, rErr := render.New(cfg.Maps.OutputDir, cfg.Maps.Shapefiles)
		if rErr != nil {
			if st != nil {
				_ = st.Close()
			}
			return nil, rErr
		}
		opts = append(opts, engine.WithRenderer(renderer))
	}

	return &engineEnv{
		Store:   st,
		Regions: regions,
		Engine:  engine.New(source, regions, opts...),
	}, nil
}

// initRegions loads the region table, preferring the configured override file.
func initRegions() (*region.Table, error) {
	if cfg.Regions.Path == "" {
		return region.DefaultTable(), nil
	}
	t, err := region.LoadTable(cfg.Regions.Path)
	if err != nil {
		return nil, eris.Wrapf(err, "load region table %s", cfg.Regions.Path)
	}
	zap.L().Info("region table loaded", zap.String("path", cfg.Regions.Path), zap.Int("regions", len(t.Boxes())))
	return t, nil
}

// initStore opens the configured store backend. Driver "none" disables
// persistence.
func initStore(ctx context.Context) (store.Store, error) {
	switch cfg.Store.Driver {
	case "none":
		return nil, nil
	case "postgres":
		var poolCfg *store.PoolConfig
		if cfg.Store.Pool != nil {
			poolCfg = &store.PoolConfig{
				MaxConns: cfg.Store.Pool.MaxConns,
				MinConns: cfg.Store.Pool.MinConns,
			}
		}
		return store.NewPostgres(ctx, cfg.Store.DatabaseURL, poolCfg)
	case "sqlite", "":
		return store.NewSQLite(cfg.Store.SQLitePath)
	default:
		return nil, eris.Errorf("unknown store driver: %s", cfg.Store.Driver)
	}
}
