// Package display formats catalog state for the terminal. It never
// mutates anything.
package display

import (
	"fmt"
	"strings"

	"vend/internal/catalog"
)

// Menu renders the categorized storefront listing.
func Menu(groups []catalog.Group) string {
	var b strings.Builder
	b.WriteString("Welcome to the Vending Machine!\n")
	for _, g := range groups {
		fmt.Fprintf(&b, "\n-- %s --\n", g.Category)
		for _, e := range g.Entries {
			fmt.Fprintf(&b, "%s: %s ($%.2f) [%d in stock]\n", e.Code, e.Item.Name, e.Item.Price, e.Item.Stock)
		}
	}
	return b.String()
}

// Inventory renders the admin stock listing.
func Inventory(entries []catalog.Entry) string {
	var b strings.Builder
	b.WriteString("Current Inventory:")
	for _, e := range entries {
		fmt.Fprintf(&b, "\n%s: %s - %d in stock", e.Code, e.Item.Name, e.Item.Stock)
	}
	return b.String()
}
