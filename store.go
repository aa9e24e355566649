package midinero

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Collection keys of the persisted state layout. Each key holds one
// JSON document: an array of records, except ExchangeRateKey (a single
// object) and ThemeKey (a string).
const (
	IncomesKey      = "incomes"
	ExpensesKey     = "expenses"
	CategoriesKey   = "categories"
	GoalsKey        = "goals"
	AccountsKey     = "accounts"
	TransfersKey    = "transfers"
	BudgetsKey      = "budgets"
	TargetsKey      = "reduction-targets"
	ThemeKey        = "theme"
	DestinationsKey = "savings-destinations"
	ExchangeRateKey = "exchange-rate"
	DebtsKey        = "debts"
	PaymentsKey     = "debt-payments"
)

// CollectionKeys lists every persisted key, in export order.
var CollectionKeys = []string{
	IncomesKey, ExpensesKey, CategoriesKey, GoalsKey, AccountsKey,
	TransfersKey, BudgetsKey, TargetsKey, ThemeKey, DestinationsKey,
	ExchangeRateKey, DebtsKey, PaymentsKey,
}

// Store is the persistence capability the engine depends on: read and
// write whole collections by key. A missing key reads as (nil, nil);
// the engine treats it as an empty collection. Every write replaces
// the whole collection (single implicit writer, no partial updates).
type Store interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
}

// MemStore is an in-memory Store, used in tests and as scratch space
// during imports.
type MemStore map[string][]byte

func NewMemStore() MemStore { return make(MemStore) }

func (s MemStore) Read(key string) ([]byte, error) { return s[key], nil }

func (s MemStore) Write(key string, data []byte) error {
	s[key] = append([]byte(nil), data...)
	return nil
}

// DirStore persists each collection as "<key>.json" in a directory.
type DirStore struct {
	dir string
}

// OpenDirStore ensures the directory exists and returns a store on it.
func OpenDirStore(dir string) (*DirStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create data dir %q: %w", dir, err)
	}
	return &DirStore{dir: dir}, nil
}

func (s *DirStore) path(key string) string {
	// keys are a closed set, but keep the path inside the data dir anyway.
	key = strings.ReplaceAll(key, string(filepath.Separator), "_")
	return filepath.Join(s.dir, key+".json")
}

func (s *DirStore) Read(key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read collection %q: %w", key, err)
	}
	return data, nil
}

func (s *DirStore) Write(key string, data []byte) error {
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("could not write collection %q: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("could not replace collection %q: %w", key, err)
	}
	return nil
}
