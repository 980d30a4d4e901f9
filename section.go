package papersect

import (
	"fmt"
	"regexp"
	"strings"
)

// SectionName identifies a logical division of an article body.
type SectionName string

// Core section names. Every record carries all of them.
const (
	Abstract     SectionName = "Abstract"
	Introduction SectionName = "Introduction"
	Methods      SectionName = "Methods"
	Results      SectionName = "Results"
	Discussion   SectionName = "Discussion"
	Conclusion   SectionName = "Conclusion"
)

// Extra section names used by the extended pattern table.
const (
	Background       SectionName = "Background"
	Objective        SectionName = "Objective"
	References       SectionName = "References"
	Acknowledgements SectionName = "Acknowledgements"
	Funding          SectionName = "Funding"
)

// PatternSpec pairs a section name with the regular expression source that
// recognizes its header. Sources are matched case-insensitively on word
// boundaries.
type PatternSpec struct {
	Name    SectionName
	Pattern string
}

// CorePatternSpecs returns the six mandatory header patterns in enumeration
// order.
func CorePatternSpecs() []PatternSpec {
	return []PatternSpec{
		{Name: Abstract, Pattern: `abstracts?`},
		{Name: Introduction, Pattern: `introductions?`},
		{Name: Methods, Pattern: `materials?\s+and\s+methods?|methods?|methodology`},
		{Name: Results, Pattern: `results?`},
		{Name: Discussion, Pattern: `discussions?`},
		{Name: Conclusion, Pattern: `conclusions?|in\s+conclusion`},
	}
}

// ExtendedPatternSpecs returns the core patterns followed by the extra
// headers commonly found in PDF-extracted articles.
func ExtendedPatternSpecs() []PatternSpec {
	return append(CorePatternSpecs(),
		PatternSpec{Name: Background, Pattern: `backgrounds?`},
		PatternSpec{Name: Objective, Pattern: `objectives?`},
		PatternSpec{Name: References, Pattern: `references?`},
		PatternSpec{Name: Acknowledgements, Pattern: `acknowledge?ments?`},
		PatternSpec{Name: Funding, Pattern: `funding`},
	)
}

type sectionPattern struct {
	name   SectionName
	search *regexp.Regexp // anywhere in a heading
	line   *regexp.Regexp // the whole line, optional trailing colon
	inline *regexp.Regexp // "Keyword: text"
}

// PatternTable is an ordered list of compiled section header patterns.
// Lookups consult the entries in order and the first match wins, so a
// header such as "Results and Discussion" resolves to Results.
type PatternTable struct {
	patterns []sectionPattern
}

// NewPatternTable compiles specs into a table. Names must be unique.
func NewPatternTable(specs []PatternSpec) (*PatternTable, error) {
	if len(specs) == 0 {
		return nil, Errorf(EINVALID, "pattern table requires at least one section")
	}

	t := &PatternTable{patterns: make([]sectionPattern, 0, len(specs))}
	seen := make(map[SectionName]bool, len(specs))
	for _, spec := range specs {
		if spec.Name == "" {
			return nil, Errorf(EINVALID, "section name required")
		}
		if seen[spec.Name] {
			return nil, Errorf(EINVALID, "duplicate section %q", spec.Name)
		}
		seen[spec.Name] = true

		p, err := compilePattern(spec)
		if err != nil {
			return nil, Errorf(EINVALID, "section %q: %v", spec.Name, err)
		}
		t.patterns = append(t.patterns, p)
	}
	return t, nil
}

func compilePattern(spec PatternSpec) (sectionPattern, error) {
	search, err := regexp.Compile(`(?i)\b(?:` + spec.Pattern + `)\b`)
	if err != nil {
		return sectionPattern{}, err
	}
	line, err := regexp.Compile(`(?i)^(?:` + spec.Pattern + `)\s*:?$`)
	if err != nil {
		return sectionPattern{}, err
	}
	inline, err := regexp.Compile(`(?i)^(?:` + spec.Pattern + `)\s*:\s*(.*)$`)
	if err != nil {
		return sectionPattern{}, err
	}
	return sectionPattern{name: spec.Name, search: search, line: line, inline: inline}, nil
}

// MustPatternTable is like NewPatternTable but panics on error.
func MustPatternTable(specs []PatternSpec) *PatternTable {
	t, err := NewPatternTable(specs)
	if err != nil {
		panic(fmt.Sprintf("papersect: %v", err))
	}
	return t
}

// DefaultPatterns returns a table of the six core sections.
func DefaultPatterns() *PatternTable {
	return MustPatternTable(CorePatternSpecs())
}

// ExtendedPatterns returns a table of the core sections plus Background,
// Objective, References, Acknowledgements and Funding.
func ExtendedPatterns() *PatternTable {
	return MustPatternTable(ExtendedPatternSpecs())
}

// Names returns the section names in lookup order.
func (t *PatternTable) Names() []SectionName {
	names := make([]SectionName, len(t.patterns))
	for i, p := range t.patterns {
		names[i] = p.name
	}
	return names
}

// Match reports the first section whose pattern occurs anywhere in a
// heading's normalized text.
func (t *PatternTable) Match(heading string) (SectionName, bool) {
	text := NormalizeHeader(heading)
	if text == "" {
		return "", false
	}
	for _, p := range t.patterns {
		if p.search.MatchString(text) {
			return p.name, true
		}
	}
	return "", false
}

// MatchLine reports the first section whose pattern is the entire trimmed
// line, optionally followed by a colon.
func (t *PatternTable) MatchLine(line string) (SectionName, bool) {
	text := NormalizeHeader(line)
	if text == "" {
		return "", false
	}
	for _, p := range t.patterns {
		if p.line.MatchString(text) {
			return p.name, true
		}
	}
	return "", false
}

// MatchInline reports the first section whose pattern starts the line and
// is followed by a colon, returning the text after the colon with its
// original casing.
func (t *PatternTable) MatchInline(line string) (SectionName, string, bool) {
	text := strings.TrimSpace(line)
	if text == "" {
		return "", "", false
	}
	for _, p := range t.patterns {
		if m := p.inline.FindStringSubmatch(text); m != nil {
			return p.name, strings.TrimSpace(m[1]), true
		}
	}
	return "", "", false
}

// NormalizeHeader trims, case-folds and collapses internal whitespace.
func NormalizeHeader(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// Section is the outcome of segmentation for one section name.
type Section struct {
	Name  SectionName `json:"name"`
	Found bool        `json:"found"`
	Text  string      `json:"text,omitempty"`
}

// Sections holds one entry per section name of a pattern table, in table
// order. It is never partial: undetected sections are present with Found
// false and empty Text.
type Sections []Section

// NewSections returns an entry for every name with nothing found.
func NewSections(names []SectionName) Sections {
	s := make(Sections, len(names))
	for i, name := range names {
		s[i] = Section{Name: name}
	}
	return s
}

// Get returns the entry for name. Unknown names yield a zero Section.
func (s Sections) Get(name SectionName) Section {
	if i := s.index(name); i >= 0 {
		return s[i]
	}
	return Section{Name: name}
}

// Text returns the accumulated text for name.
func (s Sections) Text(name SectionName) string {
	return s.Get(name).Text
}

// Found reports whether a header for name was detected.
func (s Sections) Found(name SectionName) bool {
	return s.Get(name).Found
}

// Names returns the section names in order.
func (s Sections) Names() []SectionName {
	names := make([]SectionName, len(s))
	for i, sec := range s {
		names[i] = sec.Name
	}
	return names
}

// CountFound returns the number of detected sections.
func (s Sections) CountFound() int {
	n := 0
	for _, sec := range s {
		if sec.Found {
			n++
		}
	}
	return n
}

func (s Sections) index(name SectionName) int {
	for i, sec := range s {
		if sec.Name == name {
			return i
		}
	}
	return -1
}
