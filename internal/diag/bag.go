package diag

// Bag collects diagnostics up to a fixed limit.
type Bag struct {
	items []Diagnostic
	max   int
}

// NewBag returns a Bag that keeps at most max diagnostics; further
// reports are dropped silently.
func NewBag(max int) *Bag {
	return &Bag{max: max}
}

// Report implements Reporter.
func (b *Bag) Report(code Code, sev Severity, line, column uint32, msg string) {
	if len(b.items) >= b.max {
		return
	}
	b.items = append(b.items, Diagnostic{
		Code:     code,
		Severity: sev,
		Line:     line,
		Column:   column,
		Message:  msg,
	})
}

// Len returns the number of collected diagnostics.
func (b *Bag) Len() int { return len(b.items) }

// Items returns the collected diagnostics. Callers must not mutate the
// returned slice.
func (b *Bag) Items() []Diagnostic { return b.items }

// HasErrors reports whether any collected diagnostic is an error.
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// Nop discards every report.
type Nop struct{}

// Report implements Reporter.
func (Nop) Report(Code, Severity, uint32, uint32, string) {}
