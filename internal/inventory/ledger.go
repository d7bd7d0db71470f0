// Package inventory implements the stacked item ledger carried by a player.
package inventory

import "github.com/KirkDiggler/rpg-quest/internal/errors"

// Entry is one stack in the ledger.
type Entry struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

// Ledger is an ordered list of stacks with unique names. Depleted stacks stay
// in the ledger with a zero count.
type Ledger []Entry

// New returns a ledger holding a copy of entries.
func New(entries ...Entry) Ledger {
	l := make(Ledger, 0, len(entries))
	for _, e := range entries {
		_ = l.Add(e.Name, e.Count)
	}
	return l
}

// Clone returns an independent copy of the ledger.
func (l Ledger) Clone() Ledger {
	if l == nil {
		return nil
	}
	out := make(Ledger, len(l))
	copy(out, l)
	return out
}

func (l Ledger) index(name string) int {
	for i, e := range l {
		if e.Name == name {
			return i
		}
	}
	return -1
}

// Count returns how many of name the ledger holds.
func (l Ledger) Count(name string) int {
	if i := l.index(name); i >= 0 {
		return l[i].Count
	}
	return 0
}

// Add increments the stack for name by qty, appending a new stack if needed.
func (l *Ledger) Add(name string, qty int) error {
	if name == "" {
		return errors.InvalidArgument("item name is required")
	}
	if qty <= 0 {
		return errors.InvalidArgumentf("quantity must be positive, got %d", qty)
	}

	if i := l.index(name); i >= 0 {
		(*l)[i].Count += qty
		return nil
	}
	*l = append(*l, Entry{Name: name, Count: qty})
	return nil
}

// Consume removes one of name. It fails with ItemUnavailable when the stack
// is absent or empty and leaves the ledger untouched.
func (l *Ledger) Consume(name string) error {
	i := l.index(name)
	if i < 0 || (*l)[i].Count <= 0 {
		return errors.ItemUnavailablef("no %s left", name).WithMeta("item", name)
	}
	(*l)[i].Count--
	return nil
}

// Usable returns the non-empty stacks accepted by keep, in ledger order.
func (l Ledger) Usable(keep func(name string) bool) []Entry {
	var out []Entry
	for _, e := range l {
		if e.Count > 0 && (keep == nil || keep(e.Name)) {
			out = append(out, e)
		}
	}
	return out
}
