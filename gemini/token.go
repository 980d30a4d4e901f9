// Package gemini counts section tokens with the local Gemini tokenizer from
// google.golang.org/genai.
package gemini

import (
	"context"
	"fmt"

	"github.com/fwojciec/papersect"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

// DefaultModel is the tokenizer model used when none is given.
const DefaultModel = "gemini-2.0-flash"

var _ papersect.TokenCounter = (*TokenCounter)(nil)

// TokenCounter counts tokens offline using the Gemini tokenizer.
type TokenCounter struct {
	tok *tokenizer.LocalTokenizer
}

// NewTokenCounter creates a TokenCounter for model, or DefaultModel if empty.
// The tokenizer vocabulary is downloaded on first use and cached.
func NewTokenCounter(model string) (*TokenCounter, error) {
	if model == "" {
		model = DefaultModel
	}
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, papersect.Errorf(papersect.EUNAVAILABLE, "tokenizer for %s: %v", model, err)
	}
	return &TokenCounter{tok: tok}, nil
}

// CountTokens counts the number of tokens in text.
func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if text == "" {
		return 0, nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	contents := []*genai.Content{
		genai.NewContentFromText(text, "user"),
	}

	result, err := tc.tok.CountTokens(contents, nil)
	if err != nil {
		return 0, fmt.Errorf("count tokens: %w", err)
	}

	return int(result.TotalTokens), nil
}
