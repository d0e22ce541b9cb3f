// Package source loads the two reference tables from their configured
// locators. Each source kind (CSV file, Postgres database, SQLite file)
// registers itself here; the loader resolves a locator to the first kind
// that claims it, reads the raw records, and converts them into the
// domain tables. Loading happens once at startup: the process either
// gets a complete snapshot or refuses to start.
package source

import (
	"context"
	"fmt"
	"sync"

	"github.com/JonMunkholm/confdash/internal/schema"
)

// Record is one raw source row, cells keyed by canonical column name.
// All cells are strings regardless of the source's native types; the
// parser converts them.
type Record map[string]string

// ReadFunc reads every row of one reference table from a locator.
type ReadFunc func(ctx context.Context, locator string, table schema.Table) ([]Record, error)

// Kind is one way of reading a reference table.
type Kind struct {
	Name   string                    // Kind identifier: "csv", "postgres", "sqlite"
	Claims func(locator string) bool // Reports whether this kind handles the locator
	Read   ReadFunc
}

var (
	registry   = make(map[string]Kind)
	order      []string
	registryMu sync.RWMutex
)

// Register adds a source kind to the registry.
// Panics if a kind with the same name is already registered.
func Register(k Kind) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[k.Name]; exists {
		panic(fmt.Sprintf("source kind already registered: %s", k.Name))
	}
	if k.Claims == nil || k.Read == nil {
		panic(fmt.Sprintf("source kind %s is incomplete", k.Name))
	}

	registry[k.Name] = k
	order = append(order, k.Name)
}

// Get returns a source kind by name.
// Returns false if not found.
func Get(name string) (Kind, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	k, ok := registry[name]
	return k, ok
}

// Resolve returns the first registered kind that claims the locator, in
// registration order.
func Resolve(locator string) (Kind, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range order {
		if k := registry[name]; k.Claims(locator) {
			return k, nil
		}
	}
	return Kind{}, fmt.Errorf("unsupported source %q", locator)
}

// Kinds returns the registered kind names in registration order.
func Kinds() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	out := make([]string, len(order))
	copy(out, order)
	return out
}

// Clear removes all registered kinds.
// Primarily useful for testing.
func Clear() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[string]Kind)
	order = nil
}
