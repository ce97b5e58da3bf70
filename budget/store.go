package budget

import (
	"slices"
	"sync"

	"github.com/charmbracelet/log"
)

// Snapshot is a consistent copy of all three collections.
type Snapshot struct {
	Incomes           []Income           `json:"incomes"`
	Bills             []Bill             `json:"bills"`
	ProjectedExpenses []ProjectedExpense `json:"projected_expenses"`
}

// Summary computes the summary of the snapshot.
func (s Snapshot) Summary() Summary {
	return Summarize(s.Incomes, s.Bills, s.ProjectedExpenses)
}

// Store owns the session's budget. All mutations go through its methods;
// reads hand out copies.
type Store struct {
	mu sync.RWMutex

	incomes   []Income
	bills     []Bill
	projected []ProjectedExpense

	newID  IDGenerator
	logger *log.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator replaces the default UUID generator.
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *Store) {
		s.newID = gen
	}
}

// WithLogger sets the logger used for mutation traces.
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// NewStore creates an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		newID:  NewID,
		logger: log.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// AddIncome appends an income and returns its new id.
func (s *Store) AddIncome(description string, amount float64) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var id string
	s.incomes, id = Add(s.incomes, Income{Description: description, Amount: amount}, s.newID)
	s.logger.Debug("added income", "id", id, "description", description, "amount", amount)

	return id
}

// AddBill appends an unpaid bill and returns its new id.
func (s *Store) AddBill(description string, amount float64) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var id string
	s.bills, id = Add(s.bills, Bill{Description: description, Amount: amount}, s.newID)
	s.logger.Debug("added bill", "id", id, "description", description, "amount", amount)

	return id
}

// AddProjectedExpense appends a projected expense and returns its new id.
func (s *Store) AddProjectedExpense(description string, amount float64, category Category) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var id string
	s.projected, id = Add(s.projected, ProjectedExpense{
		Description: description,
		Amount:      amount,
		Category:    category,
	}, s.newID)
	s.logger.Debug("added projected expense",
		"id", id,
		"description", description,
		"amount", amount,
		"category", category,
	)

	return id
}

// Remove deletes the record with id from the collection of the given kind.
// Unknown ids are ignored.
func (s *Store) Remove(kind Kind, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch kind {
	case KindIncome:
		s.incomes = Remove(s.incomes, id)
	case KindBill:
		s.bills = Remove(s.bills, id)
	case KindProjectedExpense:
		s.projected = Remove(s.projected, id)
	default:
		s.logger.Warn("remove on unknown kind", "kind", kind, "id", id)
		return
	}

	s.logger.Debug("removed entry", "kind", kind, "id", id)
}

// TogglePaid flips the paid flag of the bill with id. Unknown ids are ignored.
func (s *Store) TogglePaid(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bills = TogglePaid(s.bills, id)
	s.logger.Debug("toggled bill", "id", id)
}

// Incomes returns a copy of the incomes in insertion order.
func (s *Store) Incomes() []Income {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.incomes)
}

// Bills returns a copy of the bills in insertion order.
func (s *Store) Bills() []Bill {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.bills)
}

// ProjectedExpenses returns a copy of the projected expenses in insertion order.
func (s *Store) ProjectedExpenses() []ProjectedExpense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.projected)
}

// Snapshot returns copies of all collections taken under a single read lock.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Incomes:           slices.Clone(s.incomes),
		Bills:             slices.Clone(s.bills),
		ProjectedExpenses: slices.Clone(s.projected),
	}
}

// Summary recomputes the derived totals from the current state.
func (s *Store) Summary() Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Summarize(s.incomes, s.bills, s.projected)
}
