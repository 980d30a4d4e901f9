// Package papersect crawls paginated article listings, resolves the full text
// of every listed item and splits that text into a fixed set of logical
// sections (Abstract, Introduction, Methods, Results, Discussion, Conclusion).
//
// This package contains domain types, the section pattern table and the
// segmentation scanner, following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., goquery/, sqlite/, pdf/).
package papersect
