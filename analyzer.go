// analyzer.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file implements the Analyzer: aggregate statistics over a
// solved board's Solution list, queried by the analysis format
// mini-language described in spec.md §6.

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

package wordgrid

import (
	"sort"

	"github.com/samber/lo"
)

// Analyzer accumulates the per-length and per-position aggregates
// spec.md §4.5 defines. An Analyzer returned by NewAnalyzer is ready
// to Analyze one or more SolutionLists; aggregates accumulate across
// calls.
type Analyzer struct {
	wordLengthCounts      map[int]int
	pointLengthCounts     map[int]int
	wordLengthPlusCounts  map[int]int
	pointLengthPlusCounts map[int]int
	positionWords         map[int]int
	positionPoints        map[int]int
	bestWords             map[int]Solution
}

// NewAnalyzer returns an empty Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		wordLengthCounts:      make(map[int]int),
		pointLengthCounts:     make(map[int]int),
		wordLengthPlusCounts:  make(map[int]int),
		pointLengthPlusCounts: make(map[int]int),
		positionWords:         make(map[int]int),
		positionPoints:        make(map[int]int),
		bestWords:             make(map[int]Solution),
	}
}

// Analyze folds solutions into the Analyzer's running aggregates.
// solutions should be sorted word-ascending then score-descending (the
// order Solve/Sort produces after a Dedup-free sort), so that the
// first occurrence of a word is its highest-scoring one; Analyze does
// not sort or dedup on its own. The credited-position set is reset
// every time the word changes in the input stream — per the fix
// recorded in DESIGN.md for the source's position-accounting bug,
// crediting the same (word, position) pair at most once while still
// crediting the same word through a genuinely different tile.
func (a *Analyzer) Analyze(solutions SolutionList) {
	seenWords := make(map[string]bool)
	currentWord := ""
	var creditedPositions map[int]bool

	for i := range solutions {
		s := &solutions[i]
		if s.Word != currentWord {
			currentWord = s.Word
			creditedPositions = make(map[int]bool)
		}

		if !seenWords[s.Word] {
			seenWords[s.Word] = true
			a.wordLengthCounts[s.WordLength]++
			a.wordLengthCounts[0]++
			a.pointLengthCounts[s.WordLength] += s.Score
			a.pointLengthCounts[0] += s.Score
			for j := 0; j <= s.WordLength; j++ {
				a.wordLengthPlusCounts[j]++
				a.pointLengthPlusCounts[j] += s.Score
			}
			a.positionWords[0]++
			a.positionPoints[0] += s.Score
			a.updateBest(0, s)
			a.updateBest(s.WordLength, s)
		}

		for _, pos := range s.Positions {
			if creditedPositions[pos] {
				continue
			}
			creditedPositions[pos] = true
			key := pos + 1
			a.positionWords[key]++
			a.positionPoints[key] += s.Score
		}
	}
}

// updateBest replaces bucket's stored best Solution if s scores
// strictly higher.
func (a *Analyzer) updateBest(bucket int, s *Solution) {
	best, ok := a.bestWords[bucket]
	if !ok || s.Score > best.Score {
		a.bestWords[bucket] = *s
	}
}

// WordCount returns the number of distinct words of the given length,
// or of every length if n == 0.
func (a *Analyzer) WordCount(n int) int { return a.wordLengthCounts[n] }

// PointSum returns the point total of distinct words of the given
// length, or of every length if n == 0.
func (a *Analyzer) PointSum(n int) int { return a.pointLengthCounts[n] }

// WordCountAtLeast returns the number of distinct words of length >= n.
func (a *Analyzer) WordCountAtLeast(n int) int { return a.wordLengthPlusCounts[n] }

// PointSumAtLeast returns the point total of distinct words of length >= n.
func (a *Analyzer) PointSumAtLeast(n int) int { return a.pointLengthPlusCounts[n] }

// PositionWordCount returns the number of distinct words touching
// 1-based board position pos, or the total over every position if
// pos == 0.
func (a *Analyzer) PositionWordCount(pos int) int { return a.positionWords[pos] }

// PositionPointSum returns the point total of distinct words touching
// 1-based board position pos, or the grand total if pos == 0.
func (a *Analyzer) PositionPointSum(pos int) int { return a.positionPoints[pos] }

// BestWord returns the highest-scoring word of the given length (0
// for the overall best across all lengths) and whether any solution
// contributed to that bucket.
func (a *Analyzer) BestWord(n int) (Solution, bool) {
	s, ok := a.bestWords[n]
	return s, ok
}

// RankedLengths returns the distinct, positive word lengths this
// Analyzer has seen at least one word of, ascending.
func (a *Analyzer) RankedLengths() []int {
	lengths := lo.Filter(lo.Keys(a.wordLengthCounts), func(n int, _ int) bool {
		return n > 0
	})
	sort.Ints(lengths)
	return lengths
}
