// Package engine drives one purchase at a time: item selection followed by
// payment and dispense.
package engine

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"vend/hal"
	"vend/internal/catalog"
)

// Engine runs the selection and payment prompts against the catalog. All
// validation failures re-prompt; only terminal errors and internal
// consistency violations surface to the caller.
type Engine struct {
	cat  *catalog.Catalog
	term hal.Terminal
	log  *zap.Logger
}

// Receipt reports a completed dispense.
type Receipt struct {
	Code   string
	Name   string
	Change float64
}

func New(cat *catalog.Catalog, term hal.Terminal, log *zap.Logger) *Engine {
	return &Engine{cat: cat, term: term, log: log}
}

// SelectItem prompts until the operator names a known, in-stock slot and
// returns its code. Unknown and depleted codes print a message and
// re-prompt. The only error paths are terminal read failures.
func (e *Engine) SelectItem() (string, error) {
	for {
		line, err := e.term.ReadLine("Enter the code of the item you want to buy: ")
		if err != nil {
			return "", err
		}
		code := strings.ToUpper(strings.TrimSpace(line))
		item, err := e.cat.Lookup(code)
		if errors.Is(err, catalog.ErrNotFound) {
			e.term.WriteLine("Invalid code. Please try again.")
			continue
		}
		if err != nil {
			return "", err
		}
		if item.Stock == 0 {
			e.term.WriteLine("Sorry, this item is out of stock.")
			continue
		}
		return code, nil
	}
}

// ProcessPayment prompts for money until the tendered amount covers the
// item's price, then dispenses: decrements stock and reports the change
// rounded to cents. Each tender is a fresh total; insufficient amounts are
// not accumulated. A decrement failure after a validated selection is an
// internal invariant violation and aborts the purchase.
func (e *Engine) ProcessPayment(code string) (Receipt, error) {
	item, err := e.cat.Lookup(code)
	if err != nil {
		return Receipt{}, fmt.Errorf("engine: payment for slot %s: %w", code, err)
	}
	for {
		line, err := e.term.ReadLine("Insert money ($): ")
		if err != nil {
			return Receipt{}, err
		}
		amount, perr := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if perr != nil {
			e.term.WriteLine("Invalid input. Please enter a numeric value.")
			continue
		}
		// Dispense only on amount >= price. ParseFloat accepts "NaN", and
		// NaN fails every comparison, so the success direction must be the
		// one tested or a NaN tender would fall through to the dispense.
		if !(amount >= item.Price) {
			e.term.WriteLine("Insufficient funds. Please insert more money.")
			continue
		}
		if err := e.cat.DecrementStock(code); err != nil {
			e.log.Error("dispense failed after validated selection",
				zap.String("code", code), zap.Error(err))
			return Receipt{}, fmt.Errorf("engine: dispense %s: %w", code, err)
		}
		change := math.Round((amount-item.Price)*100) / 100
		e.term.WriteLine(fmt.Sprintf("Dispensing %s. Change: $%.2f", item.Name, change))
		e.log.Debug("dispensed",
			zap.String("code", code), zap.Float64("change", change))
		return Receipt{Code: code, Name: item.Name, Change: change}, nil
	}
}
