package panel

import "vend/internal/catalog"

// SnapshotOf builds a render snapshot from catalog entries, marking slots
// whose stock just hit zero. dispensing names the item on the banner; pass
// "" for a plain state frame.
func SnapshotOf(entries []catalog.Entry, dispensing string) Snapshot {
	s := Snapshot{Dispensing: dispensing}
	for _, e := range entries {
		s.Slots = append(s.Slots, SlotState{Code: e.Code, SoldOut: e.Item.Stock == 0})
	}
	return s
}
