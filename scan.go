package papersect

import "strings"

// Block is one unit of structured content: either a heading or the visible
// text of a block-level element that follows a heading.
type Block struct {
	Heading bool
	Text    string
}

// Scanner partitions content into sections using a pattern table.
//
// The scan is a single pass. A recognized header opens a section, and the
// text that follows is accumulated into it until the next recognized
// header or the end of input. When the same section opens more than once,
// the last non-empty body wins.
type Scanner struct {
	Table *PatternTable

	// Presence records only whether each header was seen and skips text
	// accumulation.
	Presence bool

	// InlineHeaders lets a line such as "Methods: We sampled..." open a
	// section in line mode, keeping the text after the colon.
	InlineHeaders bool
}

// NewScanner returns a text-accumulating scanner over table.
func NewScanner(table *PatternTable) *Scanner {
	return &Scanner{Table: table}
}

// ScanBlocks segments structured content. Headings are tested with a
// whole-word search of their normalized text; a heading that matches no
// pattern leaves the open section unchanged. Text blocks are joined with a
// line break. Text before the first recognized heading is discarded.
func (s *Scanner) ScanBlocks(blocks []Block) Sections {
	st := s.begin()
	for _, b := range blocks {
		if b.Heading {
			if name, ok := s.Table.Match(b.Text); ok {
				st.open(name)
			}
			continue
		}
		st.append(b.Text, "\n")
	}
	st.close()
	return st.sections
}

// ScanLines segments flat text such as PDF-extracted lines. A line opens a
// section only when its trimmed text is exactly a header keyword, with an
// optional trailing colon. Other lines are joined with a space. Lines before
// the first header are discarded.
func (s *Scanner) ScanLines(lines []string) Sections {
	st := s.begin()
	for _, line := range lines {
		if name, ok := s.Table.MatchLine(line); ok {
			st.open(name)
			continue
		}
		if s.InlineHeaders {
			if name, rest, ok := s.Table.MatchInline(line); ok {
				st.open(name)
				st.append(rest, " ")
				continue
			}
		}
		st.append(line, " ")
	}
	st.close()
	return st.sections
}

// ScanText splits text into lines and calls ScanLines.
func (s *Scanner) ScanText(text string) Sections {
	return s.ScanLines(SplitLines(text))
}

// SplitLines splits text on line breaks and form feeds.
func SplitLines(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == '\r' || r == '\f'
	})
}

func (s *Scanner) begin() *scanState {
	return &scanState{
		sections: NewSections(s.Table.Names()),
		presence: s.Presence,
	}
}

// scanState carries the open section and its accumulator between inputs.
type scanState struct {
	sections Sections
	presence bool

	current int // index into sections, valid while isOpen
	isOpen  bool
	buf     strings.Builder
}

func (st *scanState) open(name SectionName) {
	st.close()
	st.current = st.sections.index(name)
	st.isOpen = st.current >= 0
	if st.isOpen {
		st.sections[st.current].Found = true
	}
}

func (st *scanState) append(text, sep string) {
	if !st.isOpen || st.presence {
		return
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	if st.buf.Len() > 0 {
		st.buf.WriteString(sep)
	}
	st.buf.WriteString(text)
}

// close finalizes the open section. It runs on every transition and once at
// the end of input.
func (st *scanState) close() {
	if !st.isOpen {
		return
	}
	if text := strings.TrimSpace(st.buf.String()); text != "" {
		st.sections[st.current].Text = text
	}
	st.buf.Reset()
	st.isOpen = false
}
