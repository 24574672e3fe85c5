// Package deprecate provides static redirection tables for identifiers
// that moved between packages. Each entry maps an old dotted path to its
// new home, with a note for the deprecation message; resolving an entry
// logs a warning once so callers learn about the move without drowning
// in repeats.
//
// The tables are metadata only. The Go-level shims (type aliases and
// forwarding functions marked Deprecated) live next to the moved
// identifiers; the table is what tooling and the admin UI enumerate.
package deprecate

import (
	"log/slog"
	"sort"
	"sync"
)

// Forward records one moved identifier.
type Forward struct {
	Old  string `json:"old"`            // Dotted path callers import today
	New  string `json:"new"`            // Dotted path it forwards to
	Note string `json:"note,omitempty"` // Removal timeline or migration hint
}

// Table is a thread-safe set of forwards.
type Table struct {
	entries map[string]Forward
	warned  map[string]bool
	logger  *slog.Logger
	mu      sync.Mutex
}

// NewTable creates an empty forwarding table logging through logger.
// A nil logger falls back to slog.Default().
func NewTable(logger *slog.Logger) *Table {
	if logger == nil {
		logger = slog.Default()
	}
	return &Table{
		entries: make(map[string]Forward),
		warned:  make(map[string]bool),
		logger:  logger,
	}
}

// Register adds a forward from oldPath to newPath. Re-registering an old
// path overwrites the previous entry.
func (t *Table) Register(oldPath, newPath, note string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries[oldPath] = Forward{Old: oldPath, New: newPath, Note: note}
}

// Resolve looks up the forward for an old path. The first resolution of
// each entry logs a deprecation warning.
func (t *Table) Resolve(oldPath string) (Forward, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	forward, exists := t.entries[oldPath]
	if !exists {
		return Forward{}, false
	}
	if !t.warned[oldPath] {
		t.warned[oldPath] = true
		t.logger.Warn("deprecated import path",
			"old", forward.Old,
			"new", forward.New,
			"note", forward.Note)
	}
	return forward, true
}

// All returns every forward sorted by old path.
func (t *Table) All() []Forward {
	t.mu.Lock()
	defer t.mu.Unlock()

	forwards := make([]Forward, 0, len(t.entries))
	for _, forward := range t.entries {
		forwards = append(forwards, forward)
	}
	sort.Slice(forwards, func(i, j int) bool { return forwards[i].Old < forwards[j].Old })
	return forwards
}

// Default is the module-wide table seeded with this module's own moves.
var Default = NewTable(nil)

// Register adds a forward to the default table.
func Register(oldPath, newPath, note string) {
	Default.Register(oldPath, newPath, note)
}

// Resolve looks up a forward in the default table.
func Resolve(oldPath string) (Forward, bool) {
	return Default.Resolve(oldPath)
}

// All returns every forward in the default table sorted by old path.
func All() []Forward {
	return Default.All()
}
