// Package admin gates restock and inventory operations behind a shared
// secret.
package admin

import (
	"strings"

	"go.uber.org/zap"

	"vend/hal"
	"vend/internal/catalog"
	"vend/internal/display"
)

// Console runs the admin sub-loop. The secret is injected configuration,
// never a source literal.
type Console struct {
	cat          *catalog.Catalog
	term         hal.Terminal
	secret       string
	restockLevel int
	log          *zap.Logger
}

func New(cat *catalog.Catalog, term hal.Terminal, secret string, restockLevel int, log *zap.Logger) *Console {
	return &Console{cat: cat, term: term, secret: secret, restockLevel: restockLevel, log: log}
}

// Authenticate compares the attempt against the configured secret with
// plain equality. There is deliberately no lockout or hashing; this is a
// simulation, not a security boundary.
func (c *Console) Authenticate(attempt string) bool {
	return attempt == c.secret
}

// Run asks for the password once. On denial it reports and returns; a
// fresh admin attempt requires re-entering admin mode. On success it loops
// over restock / view inventory / exit.
func (c *Console) Run() error {
	attempt, err := c.term.ReadLine("Enter admin password: ")
	if err != nil {
		return err
	}
	if !c.Authenticate(attempt) {
		c.term.WriteLine("Invalid password.")
		c.log.Warn("admin authentication denied")
		return nil
	}
	c.term.WriteLine("Admin Mode Enabled!")
	for {
		action, err := c.term.ReadLine("Choose an action: (restock/view inventory/exit): ")
		if err != nil {
			return err
		}
		switch strings.ToLower(strings.TrimSpace(action)) {
		case "restock":
			if err := c.cat.RestockAll(c.restockLevel); err != nil {
				return err
			}
			c.term.WriteLine("All items have been restocked.")
			c.log.Debug("restocked", zap.Int("level", c.restockLevel))
		case "view inventory":
			c.term.WriteLine(display.Inventory(c.cat.Entries()))
		case "exit":
			c.term.WriteLine("Exiting Admin Mode.")
			return nil
		default:
			c.term.WriteLine("Invalid action. Try again.")
		}
	}
}
