package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vend/internal/catalog"
)

func TestMenu(t *testing.T) {
	c, err := catalog.New([]catalog.Entry{
		{Code: "A1", Item: catalog.Item{Name: "Coffee", Category: "Hot Drinks", Price: 2.0, Stock: 10}},
		{Code: "B1", Item: catalog.Item{Name: "Soda", Category: "Cold Drinks", Price: 1.8, Stock: 3}},
		{Code: "A2", Item: catalog.Item{Name: "Tea", Category: "Hot Drinks", Price: 1.5, Stock: 0}},
	})
	require.NoError(t, err)

	want := "Welcome to the Vending Machine!\n" +
		"\n-- Hot Drinks --\n" +
		"A1: Coffee ($2.00) [10 in stock]\n" +
		"A2: Tea ($1.50) [0 in stock]\n" +
		"\n-- Cold Drinks --\n" +
		"B1: Soda ($1.80) [3 in stock]\n"
	assert.Equal(t, want, Menu(c.ListByCategory()))
}

func TestInventory(t *testing.T) {
	c, err := catalog.New([]catalog.Entry{
		{Code: "A1", Item: catalog.Item{Name: "Coffee", Category: "Hot Drinks", Price: 2.0, Stock: 7}},
		{Code: "A2", Item: catalog.Item{Name: "Tea", Category: "Hot Drinks", Price: 1.5, Stock: 10}},
	})
	require.NoError(t, err)

	want := "Current Inventory:\n" +
		"A1: Coffee - 7 in stock\n" +
		"A2: Tea - 10 in stock"
	assert.Equal(t, want, Inventory(c.Entries()))
}
