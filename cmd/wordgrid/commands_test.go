// commands_test.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file contains tests for the command drivers, each exercised
// end-to-end through redirected stdin/stdout, using testify's
// assert/require.

package main

import (
	"io"
	"math/rand"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordgrid/wordgrid"
)

func newTestRand(t *testing.T) *rand.Rand {
	t.Helper()
	return rand.New(rand.NewSource(1))
}

func testGameRules(t *testing.T) *wordgrid.GameRules {
	t.Helper()
	grid := wordgrid.RectangularGrid(1, 4, wordgrid.Straight)

	trie := wordgrid.NewTrie()
	trie.Insert("CAT")
	trie.Insert("AT")

	rules := wordgrid.NewScoringRules(2)
	for _, l := range "CATSDOG" {
		rules.SetLetterValue(l, 1)
	}

	dist := wordgrid.NewDiceDistribution([][]string{
		{"C"}, {"A"}, {"T"}, {"S"},
	})

	return &wordgrid.GameRules{
		Name:         "Test",
		Grid:         grid,
		Dictionary:   trie,
		Scoring:      rules,
		Distribution: dist,
	}
}

func discardLogger() *zerolog.Logger {
	l := zerolog.New(zerolog.Nop())
	return &l
}

// withRedirectedStdio replaces os.Stdin with a reader that yields in,
// runs fn, and returns whatever fn wrote to the replaced os.Stdout.
func withRedirectedStdio(t *testing.T, in string, fn func() int) (stdout string, exitCode int) {
	t.Helper()

	inR, inW, err := os.Pipe()
	require.NoError(t, err)
	_, err = inW.WriteString(in)
	require.NoError(t, err)
	require.NoError(t, inW.Close())

	outR, outW, err := os.Pipe()
	require.NoError(t, err)

	origStdin, origStdout := os.Stdin, os.Stdout
	os.Stdin, os.Stdout = inR, outW
	defer func() { os.Stdin, os.Stdout = origStdin, origStdout }()

	exitCode = fn()
	require.NoError(t, outW.Close())

	out, err := io.ReadAll(outR)
	require.NoError(t, err)
	return string(out), exitCode
}

func TestCmdScoreEmitsWordCountAndPointTotal(t *testing.T) {
	gr := testGameRules(t)
	out, code := withRedirectedStdio(t, "CATS\n", func() int {
		return cmdScore(gr, nil)
	})
	assert.Equal(t, 0, code)
	assert.Equal(t, "2 5\n", out, "CATS should yield CAT (score 3) and AT (score 2), scored via SetLetterValue(1) each")
}

func TestCmdScoreRejectsExtraArguments(t *testing.T) {
	gr := testGameRules(t)
	_, code := withRedirectedStdio(t, "", func() int {
		return cmdScore(gr, []string{"unexpected"})
	})
	assert.Equal(t, 1, code)
}

func TestCmdSolveDefaultFormat(t *testing.T) {
	gr := testGameRules(t)
	out, code := withRedirectedStdio(t, "CATS\n", func() int {
		return cmdSolve(gr, nil, false)
	})
	require.Equal(t, 0, code)
	assert.Contains(t, out, "CAT")
	assert.Contains(t, out, "AT")
}

func TestCmdAnalyzeDefaultFormat(t *testing.T) {
	gr := testGameRules(t)
	out, code := withRedirectedStdio(t, "CATS\n", func() int {
		return cmdAnalyze(gr, nil)
	})
	require.Equal(t, 0, code)
	assert.Contains(t, out, "words")
	assert.Contains(t, out, "points")
}

func TestCmdAnalyzeRejectsTooManyArguments(t *testing.T) {
	gr := testGameRules(t)
	_, code := withRedirectedStdio(t, "", func() int {
		return cmdAnalyze(gr, []string{"a", "b", "c"})
	})
	assert.Equal(t, 1, code)
}

func TestCmdCheckWordAcceptsAndRejects(t *testing.T) {
	gr := testGameRules(t)
	out, code := withRedirectedStdio(t, "CAT\nZZZ\n", func() int {
		return cmdCheck(gr, nil, false, discardLogger())
	})
	require.Equal(t, 0, code)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "+CAT", lines[0])
	assert.Equal(t, "-ZZZ", lines[1])
}

func TestCmdCheckBoardMode(t *testing.T) {
	gr := testGameRules(t)
	out, code := withRedirectedStdio(t, "CATS\n", func() int {
		return cmdCheck(gr, nil, true, discardLogger())
	})
	require.Equal(t, 0, code)
	assert.Equal(t, "+CATS\n", out)
}

func TestCmdCheckRejectsUnrecognizedMode(t *testing.T) {
	gr := testGameRules(t)
	_, code := withRedirectedStdio(t, "", func() int {
		return cmdCheck(gr, []string{"bogus"}, false, discardLogger())
	})
	assert.Equal(t, 1, code)
}

func TestCmdCreateWritesNBoardsOfCorrectSize(t *testing.T) {
	gr := testGameRules(t)
	rng := newTestRand(t)
	out, code := withRedirectedStdio(t, "", func() int {
		return cmdCreate(gr, rng, []string{"3", "0", "0"}, discardLogger())
	})
	require.Equal(t, 0, code)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Len(t, line, 4, "each generated board over a 1x4 grid should carry 4 tiles")
	}
}

func TestCmdCreateRejectsBadNumericArgument(t *testing.T) {
	gr := testGameRules(t)
	rng := newTestRand(t)
	_, code := withRedirectedStdio(t, "", func() int {
		return cmdCreate(gr, rng, []string{"notanumber"}, discardLogger())
	})
	assert.Equal(t, 1, code)
}
