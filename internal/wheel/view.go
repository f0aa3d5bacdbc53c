package wheel

const (
	// DefaultPaletteSize is the number of sector colours before they repeat.
	DefaultPaletteSize = 5
	// DefaultLabelMax is the longest label shown before truncation.
	DefaultLabelMax = 15
	// Ellipsis marks a truncated label.
	Ellipsis = "..."
)

// Entry is one sector of the wheel as the spinner view sees it.
type Entry struct {
	Label       string
	ColorIndex  int
	Placeholder bool
}

// ViewModel is everything a spinner view needs to draw the wheel.
// TargetIndex is -1 when the wheel is not spinning.
type ViewModel struct {
	Entries     []Entry
	Spinning    bool
	TargetIndex int
	Winner      string
	Declared    bool
	Spinnable   bool
}

// HasWinner reports whether the view should show a winner.
func (v ViewModel) HasWinner() bool {
	return v.Declared
}

// View derives the current view-model.
func (w *Wheel) View() ViewModel {
	return ViewModel{
		Entries:     Entries(w.names.List(), w.paletteSize, w.labelMax),
		Spinning:    w.ctrl.Spinning(),
		TargetIndex: w.ctrl.TargetIndex(),
		Winner:      w.ctrl.CurrentWinner(),
		Declared:    w.ctrl.HasWinner(),
		Spinnable:   w.Spinnable(),
	}
}

// Entries maps names to sectors. Colours depend on position only, so they
// shift when the roster is edited. An empty roster yields one placeholder
// sector so there is always something to draw.
func Entries(names []string, paletteSize, labelMax int) []Entry {
	if len(names) == 0 {
		return []Entry{{Placeholder: true}}
	}
	if paletteSize <= 0 {
		paletteSize = DefaultPaletteSize
	}
	entries := make([]Entry, len(names))
	for i, name := range names {
		entries[i] = Entry{
			Label:      Label(name, labelMax),
			ColorIndex: i % paletteSize,
		}
	}
	return entries
}

// Label truncates name to limit runes and appends Ellipsis when it is longer.
func Label(name string, limit int) string {
	if limit <= 0 {
		limit = DefaultLabelMax
	}
	runes := []rune(name)
	if len(runes) <= limit {
		return name
	}
	return string(runes[:limit]) + Ellipsis
}
