package main_test

import (
	"bytes"
	"context"
	"testing"

	main "github.com/fwojciec/papersect/cmd/papersect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "papersect")
	assert.Contains(t, stdout.String(), "--sections-dir")
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_RequiresOutput(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"https://example.com/?term=x"}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_RejectsUnknownMode(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer
	out := t.TempDir() + "/out.csv"

	err := m.Run(context.Background(), []string{"--mode", "epub", "https://example.com/", out}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_RejectsInvalidSeed(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer
	out := t.TempDir() + "/out.csv"

	err := m.Run(context.Background(), []string{"not a url", out}, &stdout, &stderr)

	assert.Error(t, err)
	assert.NoFileExists(t, out)
}
