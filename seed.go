package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Rshep3087/budgettui/budget"
	"github.com/Rshep3087/budgettui/currency"
	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
)

var (
	errMissingDescription = errors.New("description is required")
	errMissingCategory    = errors.New("category is required")
	errMissingAmount      = errors.New("amount is required")
	errInvalidAmount      = errors.New("amount must be a finite number within range")
)

// Seed is the initial session state read from a TOML file.
//
//	[[income]]
//	description = "Salary"
//	amount = 1000
//
//	[[bill]]
//	description = "Rent"
//	amount = 400
//	paid = true
//
//	[[projected]]
//	description = "Groceries"
//	amount = 100
//	category = "Food"
type Seed struct {
	Income    []seedIncome    `toml:"income"`
	Bills     []seedBill      `toml:"bill"`
	Projected []seedProjected `toml:"projected"`
}

type seedIncome struct {
	Description string   `toml:"description"`
	Amount      *float64 `toml:"amount"`
}

type seedBill struct {
	Description string   `toml:"description"`
	Amount      *float64 `toml:"amount"`
	Paid        bool     `toml:"paid"`
}

type seedProjected struct {
	Description string   `toml:"description"`
	Amount      *float64 `toml:"amount"`
	Category    string   `toml:"category"`
}

// loadSeedFile reads and validates a seed file.
func loadSeedFile(path string) (*Seed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	defer f.Close()

	var seed Seed
	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(&seed); err != nil {
		return nil, fmt.Errorf("failed to parse TOML seed file %s: %w", path, err)
	}

	if err := seed.validate(); err != nil {
		return nil, fmt.Errorf("invalid seed file %s: %w", path, err)
	}

	return &seed, nil
}

// validate reports the first malformed entry by table name and 1-based position.
func (s *Seed) validate() error {
	for i, e := range s.Income {
		if err := checkEntry(e.Description, e.Amount); err != nil {
			return fmt.Errorf("income #%d: %w", i+1, err)
		}
	}

	for i, e := range s.Bills {
		if err := checkEntry(e.Description, e.Amount); err != nil {
			return fmt.Errorf("bill #%d: %w", i+1, err)
		}
	}

	for i, e := range s.Projected {
		if err := checkEntry(e.Description, e.Amount); err != nil {
			return fmt.Errorf("projected #%d: %w", i+1, err)
		}
		if e.Category == "" {
			return fmt.Errorf("projected #%d: %w", i+1, errMissingCategory)
		}
	}

	return nil
}

// checkEntry applies the same required-field rules as the add form.
func checkEntry(description string, amount *float64) error {
	if description == "" {
		return errMissingDescription
	}
	if amount == nil {
		return errMissingAmount
	}
	if !currency.InRange(*amount) {
		return errInvalidAmount
	}

	return nil
}

// apply adds every seed entry to the store in file order.
func (s *Seed) apply(store *budget.Store) {
	for _, e := range s.Income {
		store.AddIncome(e.Description, *e.Amount)
	}

	for _, e := range s.Bills {
		id := store.AddBill(e.Description, *e.Amount)
		if e.Paid {
			store.TogglePaid(id)
		}
	}

	for _, e := range s.Projected {
		store.AddProjectedExpense(e.Description, *e.Amount, budget.Category(e.Category))
	}

	log.Debug("applied seed",
		"income", len(s.Income),
		"bills", len(s.Bills),
		"projected", len(s.Projected),
	)
}
