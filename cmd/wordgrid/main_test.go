// main_test.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file contains tests for the CLI's seed-resolution precedence,
// using testify's assert/require per the richer ambient components'
// test style.

package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveSeedPrefersExplicitFlag(t *testing.T) {
	t.Setenv("WORDGRID_SEED", "42")
	got := resolveSeed(7, true)
	assert.Equal(t, int64(7), got, "an explicitly-set -seed flag must win over the environment")
}

func TestResolveSeedFallsBackToEnv(t *testing.T) {
	t.Setenv("WORDGRID_SEED", "99")
	got := resolveSeed(0, false)
	assert.Equal(t, int64(99), got)
}

func TestResolveSeedFallsBackToClockWhenNeitherSet(t *testing.T) {
	os.Unsetenv("WORDGRID_SEED")
	got := resolveSeed(0, false)
	assert.NotZero(t, got, "with no flag and no env, a wall-clock-derived seed should be nonzero")
}

func TestResolveSeedIgnoresMalformedEnv(t *testing.T) {
	t.Setenv("WORDGRID_SEED", "not-a-number")
	got := resolveSeed(0, false)
	assert.NotZero(t, got, "a malformed WORDGRID_SEED should fall through to the wall clock, not panic or return zero")
}
