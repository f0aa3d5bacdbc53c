package roster

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name    string
		start   []string
		raw     string
		want    bool
		wantOut []string
	}{
		{name: "first name", start: nil, raw: "Alice", want: true, wantOut: []string{"Alice"}},
		{name: "appends at end", start: []string{"Alice"}, raw: "Bob", want: true, wantOut: []string{"Alice", "Bob"}},
		{name: "trims whitespace", start: nil, raw: "  Carol\t", want: true, wantOut: []string{"Carol"}},
		{name: "rejects empty", start: []string{"Alice"}, raw: "", want: false, wantOut: []string{"Alice"}},
		{name: "rejects whitespace only", start: nil, raw: "  ", want: false, wantOut: []string{}},
		{name: "rejects duplicate", start: []string{"Alice"}, raw: "Alice", want: false, wantOut: []string{"Alice"}},
		{name: "rejects duplicate after trim", start: []string{"Alice"}, raw: " Alice ", want: false, wantOut: []string{"Alice"}},
		{name: "case sensitive", start: []string{"Alice"}, raw: "alice", want: true, wantOut: []string{"Alice", "alice"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(tt.start...)
			got := r.Add(tt.raw)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOut, r.List())
		})
	}
}

func TestAdd_Idempotent(t *testing.T) {
	r := &Roster{}

	assert.True(t, r.Add("Alice"))
	assert.False(t, r.Add("Alice"))
	assert.Equal(t, 1, r.Len())
}

func TestAddAll(t *testing.T) {
	r := &Roster{}
	added := r.AddAll("Alice", "", "Bob", "Alice", " Bob ", "Carol")

	assert.Equal(t, 3, added)
	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, r.List())
}

func TestRemove(t *testing.T) {
	r := New("Alice", "Bob", "Carol")

	assert.True(t, r.Remove("Bob"))
	assert.Equal(t, []string{"Alice", "Carol"}, r.List())

	assert.False(t, r.Remove("Bob"), "second remove should miss")
	assert.False(t, r.Remove("carol"), "remove is case sensitive")
	assert.False(t, r.Remove(" Alice"), "remove does not trim")
	assert.Equal(t, []string{"Alice", "Carol"}, r.List())
}

func TestList_IsSnapshot(t *testing.T) {
	r := New("Alice", "Bob")
	list := r.List()
	list[0] = "Mallory"

	assert.Equal(t, []string{"Alice", "Bob"}, r.List())
}

func TestAt(t *testing.T) {
	r := New("Alice", "Bob")

	name, ok := r.At(1)
	require.True(t, ok)
	assert.Equal(t, "Bob", name)

	_, ok = r.At(2)
	assert.False(t, ok)
	_, ok = r.At(-1)
	assert.False(t, ok)

	assert.Equal(t, 0, r.Index("Alice"))
	assert.Equal(t, -1, r.Index("Zed"))
}

func TestRoster_NoDuplicatesNoBlanks(t *testing.T) {
	r := &Roster{}
	ops := []string{"a", " a", "b", "", "\t", "c", "b ", "a", "d", " "}
	for i, op := range ops {
		r.Add(op)
		if i%3 == 2 {
			r.Remove("b")
		}

		seen := make(map[string]bool)
		for _, n := range r.List() {
			assert.NotEmpty(t, strings.TrimSpace(n))
			assert.Equal(t, strings.TrimSpace(n), n)
			assert.False(t, seen[n], "duplicate %q after op %d", n, i)
			seen[n] = true
		}
	}
}

func TestZeroValue(t *testing.T) {
	var r Roster
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.List())
	assert.True(t, r.Add("Alice"))
}
