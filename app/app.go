// Package app assembles the machine and runs the session.
package app

import (
	"context"

	"go.uber.org/zap"

	"vend/hal"
	"vend/internal/admin"
	"vend/internal/buildinfo"
	"vend/internal/catalog"
	"vend/internal/config"
	"vend/internal/engine"
	"vend/internal/session"
)

// Run wires the catalog, engine, admin console and session controller
// together and blocks until the session ends.
func Run(ctx context.Context, h hal.HAL, cfg config.Config, log *zap.Logger) error {
	cat, err := catalog.New(catalog.DefaultEntries())
	if err != nil {
		return err
	}

	term := h.Terminal()
	eng := engine.New(cat, term, log.Named("engine"))
	adm := admin.New(cat, term, cfg.AdminSecret, cfg.RestockLevel, log.Named("admin"))
	ctl := session.New(cat, eng, adm, term, h.Display(), log.Named("session"))

	log.Debug("vending machine ready",
		zap.String("build", buildinfo.Short()),
		zap.Int("slots", len(cat.Entries())),
		zap.Int("restock_level", cfg.RestockLevel))
	return ctl.Run(ctx)
}
