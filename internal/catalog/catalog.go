package catalog

import (
	"fmt"
	"strings"
	"sync"
)

// Item is one dispensable product. Price is fixed at creation; Stock is
// mutated only through Catalog methods.
type Item struct {
	Name     string
	Category string
	Price    float64
	Stock    int
}

// Entry pairs a slot code with its item. The code travels with the item so
// callers never have to reverse-map an item back to its slot.
type Entry struct {
	Code string
	Item Item
}

// Group is one category bucket produced by ListByCategory.
type Group struct {
	Category string
	Entries  []Entry
}

// Catalog owns every item in the machine. All reads return copies and all
// writes happen under the mutex, so check-then-act sequences like
// DecrementStock stay atomic even if the catalog is shared across
// goroutines by a future host.
type Catalog struct {
	mu    sync.Mutex
	codes []string
	items map[string]*Item
}

// New builds a catalog from seed entries. Codes are normalized to upper
// case and must be unique and non-empty; prices and stock counts must be
// non-negative.
func New(seed []Entry) (*Catalog, error) {
	c := &Catalog{items: make(map[string]*Item, len(seed))}
	for _, e := range seed {
		code := normalize(e.Code)
		if code == "" {
			return nil, fmt.Errorf("catalog: empty slot code for %q", e.Item.Name)
		}
		if _, dup := c.items[code]; dup {
			return nil, fmt.Errorf("catalog: duplicate slot code %s", code)
		}
		if e.Item.Price < 0 {
			return nil, fmt.Errorf("catalog: negative price for slot %s", code)
		}
		if e.Item.Stock < 0 {
			return nil, fmt.Errorf("catalog: negative stock for slot %s", code)
		}
		item := e.Item
		c.codes = append(c.codes, code)
		c.items[code] = &item
	}
	return c, nil
}

// Entries returns every slot in insertion order.
func (c *Catalog) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Entry, 0, len(c.codes))
	for _, code := range c.codes {
		out = append(out, Entry{Code: code, Item: *c.items[code]})
	}
	return out
}

// ListByCategory groups entries by category. Categories appear in order of
// first appearance and entries keep insertion order inside each group, so
// the result always partitions exactly the slot set.
func (c *Catalog) ListByCategory() []Group {
	c.mu.Lock()
	defer c.mu.Unlock()
	var groups []Group
	index := make(map[string]int)
	for _, code := range c.codes {
		item := *c.items[code]
		i, ok := index[item.Category]
		if !ok {
			i = len(groups)
			index[item.Category] = i
			groups = append(groups, Group{Category: item.Category})
		}
		groups[i].Entries = append(groups[i].Entries, Entry{Code: code, Item: item})
	}
	return groups
}

// Lookup returns a copy of the item assigned to code, or ErrNotFound.
func (c *Catalog) Lookup(code string) (Item, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	item, ok := c.items[normalize(code)]
	if !ok {
		return Item{}, ErrNotFound
	}
	return *item, nil
}

// DecrementStock takes exactly one unit from the slot. The stock check and
// the write happen under one mutex hold; stock never observes a value
// below zero.
func (c *Catalog) DecrementStock(code string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	item, ok := c.items[normalize(code)]
	if !ok {
		return ErrNotFound
	}
	if item.Stock == 0 {
		return ErrOutOfStock
	}
	item.Stock--
	return nil
}

// RestockAll sets every slot's stock to level regardless of its prior
// value, so repeated calls are idempotent.
func (c *Catalog) RestockAll(level int) error {
	if level < 0 {
		return fmt.Errorf("catalog: negative restock level %d", level)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range c.items {
		item.Stock = level
	}
	return nil
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
