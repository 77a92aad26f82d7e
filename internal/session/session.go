// Package session runs the top-level mode loop: user purchases on one
// side, the admin console on the other.
package session

import (
	"context"
	"errors"
	"io"
	"strings"

	"go.uber.org/zap"

	"vend/hal"
	"vend/internal/admin"
	"vend/internal/catalog"
	"vend/internal/display"
	"vend/internal/engine"
	"vend/internal/panel"
)

// Controller dispatches between user and admin modes until the context is
// canceled or the terminal closes. There is no quit command; stopping the
// machine is an external act.
type Controller struct {
	cat  *catalog.Catalog
	eng  *engine.Engine
	adm  *admin.Console
	term hal.Terminal
	disp hal.Display
	log  *zap.Logger
}

func New(cat *catalog.Catalog, eng *engine.Engine, adm *admin.Console, term hal.Terminal, disp hal.Display, log *zap.Logger) *Controller {
	return &Controller{cat: cat, eng: eng, adm: adm, term: term, disp: disp, log: log}
}

// Run loops over mode selection. A terminal EOF ends the session cleanly;
// any other error aborts it.
func (c *Controller) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		mode, err := c.term.ReadLine("Choose mode: (user/admin): ")
		if errors.Is(err, io.EOF) {
			c.log.Debug("terminal closed, ending session")
			return nil
		}
		if err != nil {
			return err
		}
		switch strings.ToLower(strings.TrimSpace(mode)) {
		case "user":
			if err := c.userLoop(ctx); err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				return err
			}
		case "admin":
			if err := c.adm.Run(); err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				return err
			}
		default:
			c.term.WriteLine("Invalid mode. Try again.")
		}
	}
}

// userLoop sells items until the operator declines another purchase.
func (c *Controller) userLoop(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.term.WriteLine(display.Menu(c.cat.ListByCategory()))

		code, err := c.eng.SelectItem()
		if err != nil {
			return err
		}
		rcpt, err := c.eng.ProcessPayment(code)
		if err != nil {
			return err
		}
		c.presentPanel(rcpt)

		again, err := c.term.ReadLine("Do you want to buy another item? (yes/no): ")
		if err != nil {
			return err
		}
		if strings.ToLower(strings.TrimSpace(again)) != "yes" {
			c.term.WriteLine("Thank you for using the Vending Machine! Goodbye!")
			return nil
		}
	}
}

// presentPanel pushes one frame after a dispense. A rejected frame (window
// already closed, headless run) never disturbs the sale.
func (c *Controller) presentPanel(rcpt engine.Receipt) {
	snap := panel.SnapshotOf(c.cat.Entries(), rcpt.Name)
	if err := c.disp.Present(panel.Render(snap)); err != nil {
		c.log.Debug("panel frame dropped", zap.Error(err))
	}
}
