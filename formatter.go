package papersect

import "strings"

// FormatRecord renders a record as a plain-text section dump: a metadata
// header followed by one "### Name ###" block per section.
func FormatRecord(rec *Record) string {
	var b strings.Builder
	b.WriteString("Title: ")
	b.WriteString(rec.Title)
	b.WriteString("\nAuthors: ")
	b.WriteString(rec.Authors)
	b.WriteString("\nPublication Date: ")
	b.WriteString(rec.PublicationDate)
	b.WriteString("\n\n")
	for _, sec := range rec.Sections {
		b.WriteString("### ")
		b.WriteString(string(sec.Name))
		b.WriteString(" ###\n\n")
		b.WriteString(strings.TrimSpace(sec.Text))
		b.WriteString("\n\n")
	}
	return b.String()
}

// FormatPresence renders which sections were found, e.g.
// "Abstract: Yes, Introduction: No".
func FormatPresence(sections Sections) string {
	if len(sections) == 0 {
		return ""
	}

	parts := make([]string, 0, len(sections))
	for _, sec := range sections {
		answer := "No"
		if sec.Found {
			answer = "Yes"
		}
		parts = append(parts, string(sec.Name)+": "+answer)
	}
	return strings.Join(parts, ", ")
}
