// Package fs writes per-record section dumps to a directory that is
// replaced atomically when the run completes.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/papersect"
)

// maxNameLen is a byte budget that keeps file names below the common
// 255-byte limit once the counter and "_sections.txt" are added.
const maxNameLen = 180

// unsafeChars are replaced in titles used as file names.
var unsafeChars = regexp.MustCompile(`[\\/*?:"<>|\x00-\x1f]`)

// Ensure SectionStore implements papersect.RecordSink at compile time.
var _ papersect.RecordSink = (*SectionStore)(nil)

// SectionStore writes one "<title>_sections.txt" file per record that has a
// full-text document. Files are saved to baseDir/name.tmp and moved to
// baseDir/name on Close.
type SectionStore struct {
	baseDir string
	name    string

	started bool
	done    bool
	used    map[string]bool
}

// NewSectionStore creates a new SectionStore.
// baseDir is the parent directory, name is the output directory name.
func NewSectionStore(baseDir, name string) *SectionStore {
	return &SectionStore{
		baseDir: baseDir,
		name:    name,
		used:    make(map[string]bool),
	}
}

func (s *SectionStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *SectionStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// start clears leftovers from an interrupted run.
func (s *SectionStore) start() error {
	if s.started {
		return nil
	}
	if err := os.RemoveAll(s.tempDir()); err != nil {
		return err
	}
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}
	s.started = true
	return nil
}

// WriteRecord saves rec's section dump. Records without a document are
// skipped.
func (s *SectionStore) WriteRecord(ctx context.Context, rec *papersect.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	if !rec.Available {
		return nil
	}
	if err := s.start(); err != nil {
		return err
	}

	path := filepath.Join(s.tempDir(), s.fileName(rec.Title))
	return os.WriteFile(path, []byte(papersect.FormatRecord(rec)), 0644)
}

// fileName returns a file name for title not yet used in this run.
func (s *SectionStore) fileName(title string) string {
	base := SanitizeTitle(title)
	name := base + "_sections.txt"
	for n := 2; s.used[name]; n++ {
		name = fmt.Sprintf("%s_%d_sections.txt", base, n)
	}
	s.used[name] = true
	return name
}

// SanitizeTitle makes title safe to use as a file name.
func SanitizeTitle(title string) string {
	name := unsafeChars.ReplaceAllString(strings.TrimSpace(title), "_")
	if len(name) > maxNameLen {
		cut := maxNameLen
		for cut > 0 && !utf8.RuneStart(name[cut]) {
			cut--
		}
		name = name[:cut]
	}
	name = strings.TrimRight(name, ". ")
	if name == "" {
		return papersect.UnknownTitle
	}
	return name
}

// Close commits the written files, replacing any previous output directory.
func (s *SectionStore) Close() error {
	if s.done {
		return nil
	}
	s.done = true
	if err := s.start(); err != nil {
		return err
	}

	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards the written files and leaves any previous output intact.
func (s *SectionStore) Abort() error {
	s.done = true
	return os.RemoveAll(s.tempDir())
}
