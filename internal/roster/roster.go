// Package roster holds the ordered, duplicate-free list of names a wheel
// picks from. Insertion order is display order and index order.
package roster

import (
	"slices"
	"strings"
)

// Roster is an ordered set of trimmed, non-empty, case-sensitive names.
// The zero value is an empty roster ready to use.
type Roster struct {
	names []string
}

// New returns a roster preloaded with names. Blank and duplicate names are
// dropped the same way Add drops them.
func New(names ...string) *Roster {
	r := &Roster{}
	r.AddAll(names...)
	return r
}

// Add trims raw and appends it. It returns false, leaving the roster
// untouched, when the trimmed name is empty or already present.
func (r *Roster) Add(raw string) bool {
	name := strings.TrimSpace(raw)
	if name == "" || r.Contains(name) {
		return false
	}
	r.names = append(r.names, name)
	return true
}

// AddAll adds each name in order and reports how many were accepted.
func (r *Roster) AddAll(raws ...string) int {
	added := 0
	for _, raw := range raws {
		if r.Add(raw) {
			added++
		}
	}
	return added
}

// Remove deletes the exact match for name. Returns false if it is absent.
func (r *Roster) Remove(name string) bool {
	i := slices.Index(r.names, name)
	if i < 0 {
		return false
	}
	r.names = slices.Delete(r.names, i, i+1)
	return true
}

// Contains reports whether name is in the roster (exact match).
func (r *Roster) Contains(name string) bool {
	return slices.Contains(r.names, name)
}

// List returns a copy of the names in order.
func (r *Roster) List() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of names.
func (r *Roster) Len() int {
	return len(r.names)
}

// At returns the name at index i, or false if i is out of range.
func (r *Roster) At(i int) (string, bool) {
	if i < 0 || i >= len(r.names) {
		return "", false
	}
	return r.names[i], true
}

// Index returns the position of name, or -1.
func (r *Roster) Index(name string) int {
	return slices.Index(r.names, name)
}
