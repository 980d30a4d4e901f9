package papersect_test

import (
	"testing"

	"github.com/fwojciec/papersect"
	"github.com/stretchr/testify/assert"
)

func TestFormatRecord(t *testing.T) {
	t.Parallel()

	t.Run("writes metadata header and section blocks", func(t *testing.T) {
		t.Parallel()

		rec := &papersect.Record{
			Title:           "PFAS in Groundwater",
			Authors:         "A. Smith, B. Jones",
			PublicationDate: "2023 Jan",
			Sections: papersect.Sections{
				{Name: papersect.Abstract, Found: true, Text: "We measured PFAS."},
				{Name: papersect.Methods},
			},
		}

		result := papersect.FormatRecord(rec)

		expected := "Title: PFAS in Groundwater\n" +
			"Authors: A. Smith, B. Jones\n" +
			"Publication Date: 2023 Jan\n\n" +
			"### Abstract ###\n\nWe measured PFAS.\n\n" +
			"### Methods ###\n\n\n\n"
		assert.Equal(t, expected, result)
	})
}

func TestFormatPresence(t *testing.T) {
	t.Parallel()

	t.Run("answers yes or no per section", func(t *testing.T) {
		t.Parallel()

		sections := papersect.Sections{
			{Name: papersect.Abstract, Found: true},
			{Name: papersect.Introduction},
		}

		assert.Equal(t, "Abstract: Yes, Introduction: No", papersect.FormatPresence(sections))
	})

	t.Run("returns empty string for no sections", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, papersect.FormatPresence(nil))
	})
}
