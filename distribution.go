// distribution.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file implements LetterDistribution, the tagged variant over
// Dice/Propensity/WordList tile sources that the Generator samples
// from and the Validator checks against. It plays the role the
// teacher's Bag and TileSet played for a fixed Scrabble tile set,
// generalized to the three distribution shapes spec.md §3 names.

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
	"math/rand"
	"strings"
)

// DistributionKind discriminates the tagged variant LetterDistribution
// implements.
type DistributionKind int

const (
	// DiceKind is a list of dice, each an unordered set of face
	// strings; a board tile is produced by rolling one die.
	DiceKind DistributionKind = iota
	// PropensityKind is an ordered list of tile strings, sampled
	// with or without replacement.
	PropensityKind
	// WordListKind defers to an external word list file as the
	// tile source; out of the core's concern beyond the file
	// reference it carries (spec.md §1: dictionary/word-list file
	// I/O is an external collaborator).
	WordListKind
)

// LetterDistribution is the tagged variant described in spec.md §3.
// Exactly the fields relevant to Kind are populated by the
// constructors below; a zero-valued LetterDistribution is a
// zero-dice DiceKind distribution.
type LetterDistribution struct {
	Kind DistributionKind

	// Dice holds one entry per die, each a list of face strings.
	Dice [][]string

	// Propensity holds the ordered tile list for PropensityKind.
	Propensity []string

	// SampleWithoutReplacement applies to PropensityKind sampling.
	SampleWithoutReplacement bool
	// ShuffleLetters applies to PropensityKind and WordListKind.
	ShuffleLetters bool

	// WordListPath is the external file reference for WordListKind.
	WordListPath string
}

// NewDiceDistribution returns a DiceKind LetterDistribution over dice,
// a list of dice each given as its list of face strings.
func NewDiceDistribution(dice [][]string) *LetterDistribution {
	return &LetterDistribution{Kind: DiceKind, Dice: dice}
}

// NewPropensityDistribution returns a PropensityKind LetterDistribution.
func NewPropensityDistribution(tiles []string, sampleWithoutReplacement, shuffleLetters bool) *LetterDistribution {
	return &LetterDistribution{
		Kind:                     PropensityKind,
		Propensity:               tiles,
		SampleWithoutReplacement: sampleWithoutReplacement,
		ShuffleLetters:           shuffleLetters,
	}
}

// NewWordListDistribution returns a WordListKind LetterDistribution.
func NewWordListDistribution(path string, shuffleLetters bool) *LetterDistribution {
	return &LetterDistribution{
		Kind:           WordListKind,
		WordListPath:   path,
		ShuffleLetters: shuffleLetters,
	}
}

// expandQu rewrites a face/tile string by inserting a "U" after every
// "Q" that isn't already followed by a literal "U", used when a rule
// set's ScoringRules.QIsQu is set. It operates on already-uppercased
// input. A face already spelled "QU" (e.g. a distribution author who
// wrote the digraph out by hand) is left alone rather than expanded to
// "QUU"; this mirrors the literalUFollows check the Solver and Scorer
// apply when walking a Qu tile.
func expandQu(s string) string {
	if !strings.Contains(s, "Q") {
		return s
	}
	r := []rune(s)
	var sb strings.Builder
	for i := 0; i < len(r); i++ {
		sb.WriteRune(r[i])
		if r[i] == 'Q' {
			literalUFollows := i+1 < len(r) && r[i+1] == 'U'
			if !literalUFollows {
				sb.WriteByte('U')
			}
		}
	}
	return sb.String()
}

// normalizeFace strips non-alphabet/non-wildcard characters from a
// face or tile string and uppercases the remainder, per spec.md
// §4.7's validator normalization rule. '?' is preserved as the
// wildcard marker.
func normalizeFace(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch {
		case r == '?':
			sb.WriteRune(r)
		case isUpperLetter(r):
			sb.WriteRune(r)
		case isLowerLetter(r):
			sb.WriteRune(r - 'a' + 'A')
		}
	}
	return sb.String()
}

// Normalized returns a copy of d with every face/tile normalized
// (stripped of non-alphabet characters, uppercased) and, if qIsQu is
// set, Qu-expanded. This is the shape the Validator actually matches
// against; it never mutates d.
func (d *LetterDistribution) Normalized(qIsQu bool) *LetterDistribution {
	xform := func(s string) string {
		s = normalizeFace(s)
		if qIsQu {
			s = expandQu(s)
		}
		return s
	}
	out := &LetterDistribution{
		Kind:                     d.Kind,
		SampleWithoutReplacement: d.SampleWithoutReplacement,
		ShuffleLetters:           d.ShuffleLetters,
		WordListPath:             d.WordListPath,
	}
	switch d.Kind {
	case DiceKind:
		out.Dice = make([][]string, len(d.Dice))
		for i, die := range d.Dice {
			faces := make([]string, len(die))
			for j, f := range die {
				faces[j] = xform(f)
			}
			out.Dice[i] = faces
		}
	case PropensityKind:
		out.Propensity = make([]string, len(d.Propensity))
		for i, t := range d.Propensity {
			out.Propensity[i] = xform(t)
		}
	}
	return out
}

// NumDice returns the number of dice in a DiceKind distribution.
func (d *LetterDistribution) NumDice() int {
	return len(d.Dice)
}

// RollDie returns a uniformly random face of die i.
func (d *LetterDistribution) RollDie(i int, rng *rand.Rand) string {
	faces := d.Dice[i]
	if len(faces) == 0 {
		return ""
	}
	return faces[rng.Intn(len(faces))]
}

// DicePoolIndices selects m die indices to use for a generated board,
// per spec.md §4.6 step 1: "an initial pool of dice faces (optionally
// shuffled, trimmed to max(randomBoardSize, enabledCells))". If m
// exceeds the number of dice, every die index is returned (and the
// caller ends up with fewer board tiles than requested).
func (d *LetterDistribution) DicePoolIndices(m int, shuffle bool, rng *rand.Rand) []int {
	n := len(d.Dice)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	if shuffle {
		rng.Shuffle(n, func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })
	}
	if m < n {
		idx = idx[:m]
	}
	return idx
}

// SumMaxFaceLength returns the sum, over all dice, of that die's
// longest face (in runes). Used by word validation's early-reject
// shortcut (spec.md §4.7): a word longer than this sum can never be
// spelled from the distribution, regardless of exact-cover search.
func (d *LetterDistribution) SumMaxFaceLength() int {
	total := 0
	for _, die := range d.Dice {
		longest := 0
		for _, face := range die {
			if n := len([]rune(face)); n > longest {
				longest = n
			}
		}
		total += longest
	}
	return total
}

// Pool is a mutable working copy of a PropensityKind distribution's
// tile list, used by the Validator and Generator to draw and remove
// entries without disturbing the LetterDistribution itself.
type Pool struct {
	tiles              []string
	withoutReplacement bool
}

// NewPool returns a Pool seeded from a PropensityKind distribution.
func NewPool(d *LetterDistribution) *Pool {
	tiles := make([]string, len(d.Propensity))
	copy(tiles, d.Propensity)
	return &Pool{tiles: tiles, withoutReplacement: d.SampleWithoutReplacement}
}

// Remaining returns a copy of the tiles still in the pool.
func (p *Pool) Remaining() []string {
	out := make([]string, len(p.tiles))
	copy(out, p.tiles)
	return out
}

// Len returns the number of tiles remaining in the pool.
func (p *Pool) Len() int {
	return len(p.tiles)
}

// Contains reports whether tile is present in the pool, without
// removing it.
func (p *Pool) Contains(tile string) bool {
	return containsString(p.tiles, tile)
}

// TryRemove removes one occurrence of tile from the pool if present,
// reporting whether it found one.
func (p *Pool) TryRemove(tile string) bool {
	if !containsString(p.tiles, tile) {
		return false
	}
	p.tiles = removeString(p.tiles, tile)
	return true
}

// TryTakeSingleLetter finds a single-character tile equal to letter.
// If the pool samples without replacement, the matched tile is
// removed; otherwise the pool is left unchanged (the tile is assumed
// reusable). Reports whether a match was found.
func (p *Pool) TryTakeSingleLetter(letter string) bool {
	for _, t := range p.tiles {
		if t == letter {
			if p.withoutReplacement {
				p.tiles = removeString(p.tiles, t)
			}
			return true
		}
	}
	return false
}

// TryTakeWildcard finds a "?" tile in the pool, removing it if the
// pool samples without replacement.
func (p *Pool) TryTakeWildcard() bool {
	return p.TryTakeSingleLetter("?")
}

// SampleOne draws one tile uniformly at random from the tiles
// currently in the pool. If the pool samples without replacement, the
// drawn tile is removed; otherwise the pool is left unchanged. Drawing
// from a distribution's full Propensity list regardless of earlier
// removals is SampleWithReplacementFrom's job. Returns ok=false if the
// pool is empty.
func (p *Pool) SampleOne(rng *rand.Rand) (string, bool) {
	if len(p.tiles) == 0 {
		return "", false
	}
	i := rng.Intn(len(p.tiles))
	tile := p.tiles[i]
	if p.withoutReplacement {
		p.tiles = append(p.tiles[:i:i], p.tiles[i+1:]...)
	}
	return tile, true
}

// SampleWithReplacementFrom draws one uniformly random tile from a
// fixed slice (typically a distribution's full Propensity list),
// leaving the slice untouched. This is the "or from the full
// propensity list (with replacement)" mutation mode of spec.md §4.6.
func SampleWithReplacementFrom(tiles []string, rng *rand.Rand) (string, bool) {
	if len(tiles) == 0 {
		return "", false
	}
	return tiles[rng.Intn(len(tiles))], true
}
