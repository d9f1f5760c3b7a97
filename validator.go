// validator.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file implements the Validator: board/word membership checks
// against a LetterDistribution, per spec.md §4.7. Dice are decided by
// max-flow bipartite matching (flow.go) and propensity pools by direct
// pool consumption; words needing multi-letter faces or tiles fall
// back to exact cover (dlx.go).

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
	"strings"

	"github.com/hashicorp/golang-lru/simplelru"
)

// validatorCacheSize bounds the memoized word/board verdict caches a
// Validator keeps, mirroring the teacher's dawg.go crossCache: a
// small LRU over a hot set of repeatedly-checked words/boards rather
// than an unbounded map.
const validatorCacheSize = 4096

// Validator decides validateBoard/validateWord against one
// LetterDistribution, normalized once at construction time the way
// §4.7 prescribes: alphabet-stripped, uppercased, and Qu-expanded on
// the distribution side only — a validated word is never itself
// auto-expanded. Results are memoized per distinct (normalized) input,
// since the same word or board shape is commonly re-checked many
// times in a single "check-word"/"check-board" CLI run.
type Validator struct {
	dist  *LetterDistribution
	qIsQu bool

	wordCache  *simplelru.LRU
	boardCache *simplelru.LRU
}

// NewValidator returns a Validator over dist under the given qIsQu
// policy. dist is not mutated; Normalized takes a copy.
func NewValidator(dist *LetterDistribution, qIsQu bool) *Validator {
	wordCache, _ := simplelru.NewLRU(validatorCacheSize, nil)
	boardCache, _ := simplelru.NewLRU(validatorCacheSize, nil)
	return &Validator{
		dist:       dist.Normalized(qIsQu),
		qIsQu:      qIsQu,
		wordCache:  wordCache,
		boardCache: boardCache,
	}
}

func (v *Validator) normalizeTile(s string) string {
	s = normalizeFace(s)
	if v.qIsQu {
		s = expandQu(s)
	}
	return s
}

// ValidateBoard reports whether board's tile multiset is producible
// from the Validator's distribution. WordListKind distributions carry
// no board-shape constraint in spec.md §4.7, so they always validate.
// The verdict is memoized by the board's rendered tile sequence.
func (v *Validator) ValidateBoard(board *Board) bool {
	key := board.String()
	if cached, ok := v.boardCache.Get(key); ok {
		return cached.(bool)
	}
	var ok bool
	switch v.dist.Kind {
	case DiceKind:
		ok = v.validateBoardDice(board)
	case PropensityKind:
		ok = v.validateBoardPropensity(board)
	default:
		ok = true
	}
	v.boardCache.Add(key, ok)
	return ok
}

func (v *Validator) boardTiles(board *Board) []string {
	tiles := make([]string, 0, board.Size())
	for i := range board.Tiles {
		t := &board.Tiles[i]
		if t.IsEmpty() {
			continue
		}
		tiles = append(tiles, v.normalizeTile(t.Letters))
	}
	return tiles
}

// validateBoardDice runs bipartite max-flow between dice and board
// tiles, edges wherever a die carries a face equal to the tile.
// Accepts iff the flow saturates every tile (a board need not use
// every die).
func (v *Validator) validateBoardDice(board *Board) bool {
	tiles := v.boardTiles(board)
	numDice := v.dist.NumDice()
	numTiles := len(tiles)
	if numTiles == 0 {
		return true
	}
	source := 0
	diceBase := 1
	tileBase := diceBase + numDice
	sink := tileBase + numTiles
	fn := NewFlowNetwork(sink + 1)
	for i := 0; i < numDice; i++ {
		fn.AddEdge(source, diceBase+i, 1)
	}
	for j := 0; j < numTiles; j++ {
		fn.AddEdge(tileBase+j, sink, 1)
	}
	for i, die := range v.dist.Dice {
		faces := make(map[string]bool, len(die))
		for _, f := range die {
			faces[f] = true
		}
		for j, tile := range tiles {
			if faces[tile] {
				fn.AddEdge(diceBase+i, tileBase+j, 1)
			}
		}
	}
	return fn.MaxFlow(source, sink) == numTiles
}

// validateBoardPropensity walks the board tiles in order, draining a
// mutable copy of the pool as it goes (under sampleWithoutReplacement)
// or merely checking presence; rejects on the first tile with no match.
func (v *Validator) validateBoardPropensity(board *Board) bool {
	pool := NewPool(v.dist)
	for i := range board.Tiles {
		t := &board.Tiles[i]
		if t.IsEmpty() {
			continue
		}
		val := v.normalizeTile(t.Letters)
		if v.dist.SampleWithoutReplacement {
			if !pool.TryRemove(val) {
				return false
			}
		} else if !pool.Contains(val) {
			return false
		}
	}
	return true
}

// ValidateWord reports whether word can be spelled from the
// Validator's distribution, selecting at most one face per die (or
// one tile per pool position). word is normalized the same way board
// tiles are, except it is never Qu-expanded. The verdict is memoized
// by the normalized word.
func (v *Validator) ValidateWord(word string) bool {
	word = normalizeFace(word)
	if cached, ok := v.wordCache.Get(word); ok {
		return cached.(bool)
	}
	var result bool
	switch v.dist.Kind {
	case DiceKind:
		result = v.validateWordDice(word)
	case PropensityKind:
		result = v.validateWordPropensity(word)
	default:
		result = true
	}
	v.wordCache.Add(word, result)
	return result
}

func (v *Validator) validateWordDice(word string) bool {
	wordRunes := []rune(word)
	n := len(wordRunes)
	if n == 0 {
		return false
	}
	numDice := v.dist.NumDice()

	// Phase A: max-flow, single-letter faces and wildcards only.
	source := 0
	diceBase := 1
	posBase := diceBase + numDice
	sink := posBase + n
	fn := NewFlowNetwork(sink + 1)
	for i := 0; i < numDice; i++ {
		fn.AddEdge(source, diceBase+i, 1)
	}
	for k := 0; k < n; k++ {
		fn.AddEdge(posBase+k, sink, 1)
	}
	for i, die := range v.dist.Dice {
		for _, face := range die {
			fr := []rune(face)
			if len(fr) != 1 {
				continue
			}
			for k, wr := range wordRunes {
				if face == "?" || fr[0] == wr {
					fn.AddEdge(diceBase+i, posBase+k, 1)
				}
			}
		}
	}
	if fn.MaxFlow(source, sink) == n {
		return true
	}

	// Phase B: exact cover, only attempted if some die has a
	// multi-letter face occurring in the word.
	hasMultiCandidate := false
	for _, die := range v.dist.Dice {
		for _, face := range die {
			if len([]rune(face)) > 1 && faceOccursIn(wordRunes, face) {
				hasMultiCandidate = true
			}
		}
	}
	if !hasMultiCandidate {
		return false
	}
	if n > v.dist.SumMaxFaceLength() {
		return false
	}

	dlx := NewDLX(n + numDice)
	for i, die := range v.dist.Dice {
		dieCol := n + i
		seen := make(map[string]bool)
		for _, face := range die {
			if seen[face] {
				continue
			}
			seen[face] = true
			addFaceRows(dlx, wordRunes, face, dieCol)
		}
		dlx.AddRow([]int{dieCol})
	}
	return dlx.HasExactCover()
}

func (v *Validator) validateWordPropensity(word string) bool {
	wordRunes := []rune(word)
	n := len(wordRunes)
	if n == 0 {
		return false
	}

	// Phase A: greedy single-letter / wildcard consumption.
	pool := NewPool(v.dist)
	ok := true
	for _, wr := range wordRunes {
		letter := string(wr)
		if pool.TryTakeSingleLetter(letter) {
			continue
		}
		if pool.TryTakeWildcard() {
			continue
		}
		ok = false
		break
	}
	if ok {
		return true
	}

	// Phase B: exact cover over multi-letter tiles, one synthetic
	// "die" column per usable tile instance.
	counts := make(map[string]int)
	for _, t := range v.dist.Propensity {
		counts[t]++
	}
	hasMulti := false
	for value := range counts {
		if len([]rune(value)) > 1 && faceOccursIn(wordRunes, value) {
			hasMulti = true
		}
	}
	if !hasMulti {
		return false
	}

	type column struct {
		value string
	}
	var columns []column
	for value, multiplicity := range counts {
		if value == "?" && !v.dist.SampleWithoutReplacement {
			// Already would have matched in Phase A under an
			// inexhaustible pool; no point modeling it here.
			continue
		}
		cap := multiplicity
		if !v.dist.SampleWithoutReplacement {
			cap = occurrenceBound(wordRunes, value)
		}
		for i := 0; i < cap; i++ {
			columns = append(columns, column{value: value})
		}
	}
	if len(columns) == 0 {
		return false
	}

	dlx := NewDLX(n + len(columns))
	for i, col := range columns {
		dieCol := n + i
		addFaceRows(dlx, wordRunes, col.value, dieCol)
		dlx.AddRow([]int{dieCol})
	}
	return dlx.HasExactCover()
}

// addFaceRows adds the exact-cover rows spec.md §4.7 describes for one
// die face (or, in the propensity case, one synthetic single-face
// "die") against word, covering dieCol plus the word positions it
// spans.
func addFaceRows(dlx *DLX, word []rune, face string, dieCol int) {
	switch {
	case face == "?":
		for k := range word {
			dlx.AddRow([]int{k, dieCol})
		}
	case len([]rune(face)) == 1:
		fr := []rune(face)[0]
		for k, wr := range word {
			if wr == fr {
				dlx.AddRow([]int{k, dieCol})
			}
		}
	case strings.HasPrefix(face, "?"):
		fixed := []rune(face[1:])
		flen := len([]rune(face))
		for _, p := range substringOccurrences(word, fixed) {
			if p < 1 {
				continue
			}
			start := p - 1
			if start+flen > len(word) {
				continue
			}
			cols := make([]int, flen+1)
			for i := 0; i < flen; i++ {
				cols[i] = start + i
			}
			cols[flen] = dieCol
			dlx.AddRow(cols)
		}
	default:
		fr := []rune(face)
		flen := len(fr)
		for _, p := range substringOccurrences(word, fr) {
			cols := make([]int, flen+1)
			for i := 0; i < flen; i++ {
				cols[i] = p + i
			}
			cols[flen] = dieCol
			dlx.AddRow(cols)
		}
	}
}

// substringOccurrences returns every start index (including
// overlapping matches) at which sub occurs in word.
func substringOccurrences(word, sub []rune) []int {
	var out []int
	if len(sub) == 0 || len(sub) > len(word) {
		return out
	}
	for p := 0; p+len(sub) <= len(word); p++ {
		match := true
		for i, r := range sub {
			if word[p+i] != r {
				match = false
				break
			}
		}
		if match {
			out = append(out, p)
		}
	}
	return out
}

// faceOccursIn reports whether face (stripped of a leading wildcard,
// if any) occurs anywhere in word.
func faceOccursIn(word []rune, face string) bool {
	fixed := strings.TrimPrefix(face, "?")
	return len(substringOccurrences(word, []rune(fixed))) > 0
}

// occurrenceBound returns a safe upper bound on how many independent
// uses of a propensity value word could ever require, used to cap
// synthetic exact-cover columns for sample-with-replacement pools
// (which are otherwise inexhaustible).
func occurrenceBound(word []rune, value string) int {
	if value == "?" {
		return len(word)
	}
	fixed := strings.TrimPrefix(value, "?")
	return len(substringOccurrences(word, []rune(fixed)))
}
