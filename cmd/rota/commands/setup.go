package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rotaboard/rota/internal/config"
	"github.com/rotaboard/rota/internal/identity"
	"github.com/rotaboard/rota/internal/namestore"
	"github.com/rotaboard/rota/internal/printer"
	"github.com/rotaboard/rota/internal/scaffold"
	"github.com/rotaboard/rota/pkg/slotboard"
)

// loadConfig reads rota.yml from the working directory.
func loadConfig() (*config.RotaConfig, error) {
	cfg, err := config.Load(scaffold.ConfigFileName)
	if err != nil {
		return nil, printer.Error(
			"failed to load rota.yml",
			fmt.Sprintf("Error: %v", err),
			[]string{"Create one first:\n  rota init"},
		)
	}
	return cfg, nil
}

// openStore selects the store implementation once, at startup. Offline mode
// (configured, or Redis unreachable) yields the inert store: the board reads
// as empty and every claim is rejected as not ready. Store failures never
// crash the CLI.
func openStore(ctx context.Context, cfg *config.RotaConfig) slotboard.Store {
	if cfg.Offline {
		printer.Warning("offline mode configured: board is read-only\n")
		return slotboard.NewOfflineStore()
	}

	client, err := slotboard.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, cfg.Board)
	if err != nil {
		printer.Warning("store unavailable (%v): continuing offline\n", err)
		return slotboard.NewOfflineStore()
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx); err != nil {
		client.Close()
		printer.Warning("cannot reach Redis at %s (%v): continuing offline\n", cfg.Redis.Addr, err)
		return slotboard.NewOfflineStore()
	}

	return client
}

// loadIdentity assembles the local actor from the persisted session ID and
// display name. Missing pieces degrade to a read-only identity rather than
// failing: the board can always be observed.
func loadIdentity(cfg *config.RotaConfig) identity.Identity {
	id, err := identity.LoadOrCreateID(cfg.Identity.IDFile)
	if err != nil {
		printer.Warning("identity unavailable (%v): read-only mode\n", err)
	}

	name, err := namestore.New(cfg.Identity.NameFile).Get()
	if err != nil {
		printer.Warning("display name unavailable (%v)\n", err)
	}

	return identity.Identity{ID: id, Name: name}
}

// firstSnapshot opens a short-lived subscription and returns the initial
// snapshot. Both store implementations deliver one immediately.
func firstSnapshot(ctx context.Context, store slotboard.Store) (slotboard.Snapshot, error) {
	sub, err := store.Subscribe(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}
	defer sub.Close()

	select {
	case snapshot, ok := <-sub.Snapshots():
		if !ok {
			return nil, fmt.Errorf("subscription ended before first snapshot")
		}
		return snapshot, nil
	case err := <-sub.Errors():
		return nil, fmt.Errorf("subscription failed: %w", err)
	case <-time.After(5 * time.Second):
		return nil, fmt.Errorf("timed out waiting for first snapshot")
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
