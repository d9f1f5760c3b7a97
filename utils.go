// utils.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file contains general utility functions shared across the
// trie, board, solver and validator.

package wordgrid

import "math"

// RemoveRune removes the first occurrence of a given rune from a slice
// of runes, returning a new slice.
func RemoveRune(s []rune, r rune) []rune {
	result := make([]rune, 0, len(s))
	removed := false
	for _, runeValue := range s {
		if !removed && runeValue == r {
			removed = true
			continue
		}
		result = append(result, runeValue)
	}
	return result
}

// ContainsRune returns true if a slice of runes contains a given rune.
func ContainsRune(s []rune, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}

// removeString removes the first occurrence of needle from a string
// slice, returning a new slice that shares no backing array with s.
func removeString(s []string, needle string) []string {
	result := make([]string, 0, len(s))
	removed := false
	for _, v := range s {
		if !removed && v == needle {
			removed = true
			continue
		}
		result = append(result, v)
	}
	return result
}

// containsString returns true if needle is present in s.
func containsString(s []string, needle string) bool {
	for _, v := range s {
		if v == needle {
			return true
		}
	}
	return false
}

// roundBonus applies the bonus-rounding rule of ScoringRules.RoundBonusUp:
// ceiling when roundUp is set, truncation toward zero otherwise.
func roundBonus(v float64, roundUp bool) int {
	if roundUp {
		return int(math.Ceil(v))
	}
	return int(v)
}

// isUpperLetter reports whether r is an uppercase A-Z letter.
func isUpperLetter(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// isLowerLetter reports whether r is a lowercase a-z letter.
func isLowerLetter(r rune) bool {
	return r >= 'a' && r <= 'z'
}
