package catalog

// DefaultRestockLevel is the stock every slot returns to after a restock.
const DefaultRestockLevel = 10

// DefaultEntries is the machine's factory slot assignment: three
// categories, two slots each.
func DefaultEntries() []Entry {
	return []Entry{
		{Code: "A1", Item: Item{Name: "Coffee", Category: "Hot Drinks", Price: 2.0, Stock: DefaultRestockLevel}},
		{Code: "A2", Item: Item{Name: "Tea", Category: "Hot Drinks", Price: 1.5, Stock: DefaultRestockLevel}},
		{Code: "B1", Item: Item{Name: "Soda", Category: "Cold Drinks", Price: 1.8, Stock: DefaultRestockLevel}},
		{Code: "B2", Item: Item{Name: "Water", Category: "Cold Drinks", Price: 1.0, Stock: DefaultRestockLevel}},
		{Code: "C1", Item: Item{Name: "Chocolate", Category: "Snacks", Price: 1.2, Stock: DefaultRestockLevel}},
		{Code: "C2", Item: Item{Name: "Chips", Category: "Snacks", Price: 1.5, Stock: DefaultRestockLevel}},
	}
}
