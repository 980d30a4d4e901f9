package papersect

import "context"

// TokenCounter counts tokens in text for a specific model.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}

// CountSectionTokens sums the token counts of every section's text.
func CountSectionTokens(ctx context.Context, counter TokenCounter, sections Sections) (int, error) {
	total := 0
	for _, sec := range sections {
		if sec.Text == "" {
			continue
		}
		n, err := counter.CountTokens(ctx, sec.Text)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}
