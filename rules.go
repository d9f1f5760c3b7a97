// rules.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file implements ScoringRules and GameRules: the pure scoring
// policy and the named bundle of Grid + Dictionary + ScoringRules +
// LetterDistribution that §6's Configuration document composes.

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

// ScoringRules is the pure scoring policy consulted by the Scorer.
// It is built once per rule set and is read-only thereafter.
type ScoringRules struct {
	// QIsQu enables the Q -> QU digraph-emission rule.
	QIsQu bool
	// QuLength is the length a Q with its synthetic U counts as: when
	// it is 2, the synthetic U adds one to wordLength; any other value
	// leaves the synthetic U uncounted.
	QuLength int
	MinWordLength int
	ShortWordLength     int
	ShortWordPoints     int
	ShortWordMultiplier bool
	WildCardPoints      bool
	RoundBonusUp        bool
	MultiplyLengthBonus bool
	RandomBoardSize     int
	// LetterValues maps an uppercase letter to its point value.
	LetterValues [alphabetSize]int
	// LengthBonuses maps a word length to a (possibly fractional)
	// bonus; a length with no entry contributes zero.
	LengthBonuses map[int]float64
}

// NewScoringRules returns a ScoringRules with the given minimum word
// length and zero-valued everything else; callers fill in
// LetterValue/LengthBonuses via SetLetterValue/SetLengthBonus.
func NewScoringRules(minWordLength int) *ScoringRules {
	return &ScoringRules{
		MinWordLength: minWordLength,
		LengthBonuses: make(map[int]float64),
	}
}

// SetLetterValue assigns the point value of an uppercase letter.
func (s *ScoringRules) SetLetterValue(letter rune, value int) {
	idx := letterIndex(letter)
	if idx >= 0 {
		s.LetterValues[idx] = value
	}
}

// LetterValue returns the point value of an uppercase letter, or 0 if
// letter is outside A-Z.
func (s *ScoringRules) LetterValue(letter rune) int {
	idx := letterIndex(letter)
	if idx < 0 {
		return 0
	}
	return s.LetterValues[idx]
}

// SetLengthBonus assigns the bonus for a given word length.
func (s *ScoringRules) SetLengthBonus(length int, bonus float64) {
	s.LengthBonuses[length] = bonus
}

// LengthBonus returns the bonus for a given word length, or 0 if
// length has no entry.
func (s *ScoringRules) LengthBonus(length int) float64 {
	return s.LengthBonuses[length]
}

// GameRules composes the named references that §6's Configuration
// document resolves a game's rule set from: a grid, a dictionary
// (already loaded into a Trie), a scoring policy and a letter
// distribution.
type GameRules struct {
	Name         string
	Grid         *GridPolicy
	Dictionary   *Trie
	Scoring      *ScoringRules
	Distribution *LetterDistribution
}
