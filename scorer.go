// scorer.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file implements the Scorer: a pure function from a Board path
// and a ScoringRules policy to a scored Solution, per spec.md §4.4.

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

import "unicode"

// ScorePath scores a walk through board along path, given that the
// walk produced word (the dictionary word as actually emitted by the
// Solver, including any Qu auto-insertions and wildcard resolutions).
// ScorePath is a pure function of (board, rules, path, word): it does
// not consult any Solver state, so re-scoring an already-emitted
// Solution by calling ScorePath(board, rules, sol.Positions, sol.Word)
// reproduces sol exactly. This is what makes scoring determinism
// (spec.md §8) checkable independently of the walk that produced a
// Solution.
func ScorePath(board *Board, rules *ScoringRules, path []int, word string) Solution {
	wordRunes := []rune(word)
	wi := 0
	letterPoints := 0
	wordMultiplier := 1
	wordLength := 0

	for _, tileIdx := range path {
		tile := &board.Tiles[tileIdx]
		tileRunes := []rune(tile.Letters)
		tileSum := 0
		ti := 0
		for ti < len(tileRunes) {
			isWildcard := tileRunes[ti] == '?'
			var actual rune
			if isWildcard {
				if wi < len(wordRunes) {
					actual = unicode.ToUpper(wordRunes[wi])
				}
			} else {
				actual = unicode.ToUpper(tileRunes[ti])
			}
			wi++
			val := rules.LetterValue(actual)
			if isWildcard && !rules.WildCardPoints {
				val = 0
			}
			tileSum += val
			wordLength++
			ti++

			if rules.QIsQu && actual == 'Q' {
				literalUFollows := ti < len(tileRunes) && unicode.ToUpper(tileRunes[ti]) == 'U'
				if !literalUFollows {
					// The Solver auto-descended into 'U' in the trie
					// without consuming a tile character; the word
					// string carries the corresponding synthetic 'U'
					// rune, which we must skip over here, and which
					// counts toward wordLength only per quLength.
					wi++
					if rules.QuLength == 2 {
						wordLength++
					}
				}
				// If a literal 'U' follows in the same tile, it is
				// processed normally by the next loop iteration: no
				// auto-descend occurred for it during the walk.
			}
		}
		tileSum *= int(tile.LetterMultiplier)
		letterPoints += tileSum
		wordMultiplier *= int(tile.WordMultiplier)
	}

	sol := Solution{
		Word:           word,
		Positions:      append([]int(nil), path...),
		WordLength:     wordLength,
		LetterPoints:   letterPoints,
		WordMultiplier: wordMultiplier,
	}

	if wordLength < rules.MinWordLength {
		sol.Score = 0
		sol.WordMultiplier = 0
		sol.LetterPoints = 0
		return sol
	}

	if wordLength <= rules.ShortWordLength {
		if rules.ShortWordMultiplier {
			sol.Score = rules.ShortWordPoints * wordMultiplier
		} else {
			sol.Score = rules.ShortWordPoints
			sol.WordMultiplier = 1
		}
		return sol
	}

	bonus := rules.LengthBonus(wordLength)
	sol.LengthBonus = bonus
	base := letterPoints * wordMultiplier
	if rules.MultiplyLengthBonus {
		sol.Score = roundBonus(float64(base)*bonus, rules.RoundBonusUp)
	} else {
		sol.Score = roundBonus(float64(base)+bonus, rules.RoundBonusUp)
	}
	return sol
}
