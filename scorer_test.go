// scorer_test.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file contains tests for ScorePath, grounded on the worked
// scenarios of spec.md §8.

package wordgrid

import "testing"

func TestScorePathBasic(t *testing.T) {
	// Scenario 1: Boggle 4x4, word "CAT".
	grid := RectangularGrid(4, 4, Straight)
	board := ParseBoard("CATXXXXXXXXXXXXX", grid)
	rules := NewScoringRules(3)
	rules.SetLetterValue('C', 3)
	rules.SetLetterValue('A', 1)
	rules.SetLetterValue('T', 1)

	sol := ScorePath(board, rules, []int{0, 1, 2}, "CAT")
	if sol.LetterPoints != 5 {
		t.Errorf("LetterPoints = %d, want 5", sol.LetterPoints)
	}
	if sol.WordMultiplier != 1 {
		t.Errorf("WordMultiplier = %d, want 1", sol.WordMultiplier)
	}
	if sol.Score != 5 {
		t.Errorf("Score = %d, want 5", sol.Score)
	}
}

func TestScorePathQuDigraph(t *testing.T) {
	// Scenario 2: "Qu" + "I" + "T" -> "QUIT", wordLength 4, path length 3.
	grid := RectangularGrid(1, 3, Straight)
	board := ParseBoard("QuIT", grid)
	rules := NewScoringRules(1)
	rules.QIsQu = true
	rules.QuLength = 2

	sol := ScorePath(board, rules, []int{0, 1, 2}, "QUIT")
	if sol.WordLength != 4 {
		t.Errorf("WordLength = %d, want 4", sol.WordLength)
	}
	if len(sol.Positions) != 3 {
		t.Errorf("len(Positions) = %d, want 3", len(sol.Positions))
	}
}

func TestScorePathWildcard(t *testing.T) {
	// Scenario 3: single "?" tile, wildCardPoints on and off.
	grid := RectangularGrid(1, 1, Straight)
	board := ParseBoard("?", grid)
	rules := NewScoringRules(1)
	rules.SetLetterValue('B', 3)

	rules.WildCardPoints = false
	sol := ScorePath(board, rules, []int{0}, "B")
	if sol.LetterPoints != 0 {
		t.Errorf("LetterPoints = %d, want 0 when wildCardPoints is false", sol.LetterPoints)
	}

	rules.WildCardPoints = true
	sol = ScorePath(board, rules, []int{0}, "B")
	if sol.LetterPoints != 3 {
		t.Errorf("LetterPoints = %d, want 3 when wildCardPoints is true", sol.LetterPoints)
	}
}

func TestScorePathLengthBonus(t *testing.T) {
	// Scenario 4: length 7, lengthBonuses[7]=10.5, letterPoints=8, wordMultiplier=2.
	path := []int{0, 1, 2, 3, 4, 5, 6}
	customBoard := &Board{Tiles: []Tile{
		{Letters: "A", LetterMultiplier: 1, WordMultiplier: 2},
		{Letters: "B", LetterMultiplier: 1, WordMultiplier: 1},
		{Letters: "C", LetterMultiplier: 1, WordMultiplier: 1},
		{Letters: "D", LetterMultiplier: 1, WordMultiplier: 1},
		{Letters: "E", LetterMultiplier: 1, WordMultiplier: 1},
		{Letters: "F", LetterMultiplier: 1, WordMultiplier: 1},
		{Letters: "G", LetterMultiplier: 1, WordMultiplier: 1},
	}}
	customRules := NewScoringRules(1)
	customRules.SetLetterValue('A', 8)
	for _, l := range "BCDEFG" {
		customRules.SetLetterValue(l, 0)
	}
	customRules.SetLengthBonus(7, 10.5)

	customRules.MultiplyLengthBonus = false
	customRules.RoundBonusUp = true
	sol := ScorePath(customBoard, customRules, path, "ABCDEFG")
	if sol.Score != 27 {
		t.Errorf("Score = %d, want 27 (ceil(8*2 + 10.5))", sol.Score)
	}

	customRules.MultiplyLengthBonus = true
	customRules.RoundBonusUp = false
	sol = ScorePath(customBoard, customRules, path, "ABCDEFG")
	if sol.Score != 168 {
		t.Errorf("Score = %d, want 168 (floor(8*2*10.5))", sol.Score)
	}
}

func TestScorePathMinWordLengthZeroesScore(t *testing.T) {
	grid := RectangularGrid(1, 2, Straight)
	board := ParseBoard("AB", grid)
	rules := NewScoringRules(3)
	rules.SetLetterValue('A', 5)
	rules.SetLetterValue('B', 5)
	sol := ScorePath(board, rules, []int{0, 1}, "AB")
	if sol.Score != 0 || sol.LetterPoints != 0 {
		t.Errorf("Score/LetterPoints = %d/%d, want 0/0 for a word shorter than minWordLength", sol.Score, sol.LetterPoints)
	}
}

func TestScorePathDeterminism(t *testing.T) {
	grid := RectangularGrid(4, 4, Straight)
	board := ParseBoard("CATXXXXXXXXXXXXX", grid)
	rules := NewScoringRules(3)
	rules.SetLetterValue('C', 3)
	rules.SetLetterValue('A', 1)
	rules.SetLetterValue('T', 1)

	first := ScorePath(board, rules, []int{0, 1, 2}, "CAT")
	second := ScorePath(board, rules, first.Positions, first.Word)
	if first.Score != second.Score {
		t.Errorf("re-scoring an emitted Solution changed its Score: %d != %d", first.Score, second.Score)
	}
}
