package papersect

// Tally keeps running counts of detected sections across records.
type Tally struct {
	names  []SectionName
	counts map[SectionName]int

	// Records is the number of records added.
	Records int
	// Available is the number of records that had a full-text document.
	Available int
}

// NewTally returns an empty tally over names.
func NewTally(names []SectionName) *Tally {
	return &Tally{
		names:  append([]SectionName(nil), names...),
		counts: make(map[SectionName]int, len(names)),
	}
}

// Add counts rec's detected sections. Names outside the tally are ignored.
func (t *Tally) Add(rec *Record) {
	t.Records++
	if rec.Available {
		t.Available++
	}
	for _, sec := range rec.Sections {
		if !sec.Found {
			continue
		}
		if t.has(sec.Name) {
			t.counts[sec.Name]++
		}
	}
}

// Set overrides the count for name, e.g. when loading stored totals.
func (t *Tally) Set(name SectionName, n int) {
	if t.has(name) {
		t.counts[name] = n
	}
}

// Count returns the number of records in which name was detected.
func (t *Tally) Count(name SectionName) int {
	return t.counts[name]
}

// Names returns the tallied section names in order.
func (t *Tally) Names() []SectionName {
	return append([]SectionName(nil), t.names...)
}

// Max returns the largest count.
func (t *Tally) Max() int {
	m := 0
	for _, n := range t.counts {
		m = max(m, n)
	}
	return m
}

func (t *Tally) has(name SectionName) bool {
	for _, n := range t.names {
		if n == name {
			return true
		}
	}
	return false
}
