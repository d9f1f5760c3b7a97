// solver.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file implements the Solver: a depth-first walk of the Board's
// adjacency graph against the Trie, producing every dictionary word
// reachable by a simple path of distinct tiles, per spec.md §4.3.

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

// Solver walks a Board against a Trie under a ScoringRules policy,
// producing every Solution the Board's adjacency graph admits. A
// Solver holds no mutable state of its own: all walk state lives on
// the call stack of Solve, so a single Solver may be reused (or
// shared across goroutines) for repeated Solve calls.
type Solver struct {
	board *Board
	trie  *Trie
	rules *ScoringRules
}

// NewSolver returns a Solver over board and trie, scored per rules.
func NewSolver(board *Board, trie *Trie, rules *ScoringRules) *Solver {
	return &Solver{board: board, trie: trie, rules: rules}
}

// Solve returns every Solution reachable on the Solver's board,
// including repeat occurrences of the same word found via distinct
// paths. Callers that want the deduplicated, canonically ordered view
// spec.md §6's "solve" mode presents should call Sort and Dedup on
// the result; "solve-dups" mode presents the raw list.
func (s *Solver) Solve() SolutionList {
	var out SolutionList
	n := s.board.Size()
	used := make([]bool, n)
	for i := 0; i < n; i++ {
		if s.board.Tiles[i].IsEmpty() {
			continue
		}
		used[i] = true
		path := []int{i}
		letters := []rune(s.board.Tiles[i].Letters)
		s.consumeTile(letters, 0, s.trie.Root(), "", path, used, &out)
		used[i] = false
	}
	return out
}

// consumeTile descends the trie through tileLetters[ti:], branching
// once per A-Z whenever it encounters a '?' wildcard character. Once
// the whole tile has been consumed (ti == len(tileLetters)) it hands
// off to afterTile to check for a terminal word and to continue the
// walk into unused adjacent tiles.
func (s *Solver) consumeTile(tileLetters []rune, ti int, node *TrieNode, word string, path []int, used []bool, out *SolutionList) {
	if ti == len(tileLetters) {
		s.afterTile(node, word, path, used, out)
		return
	}
	ch := tileLetters[ti]
	if ch == '?' {
		for letter := rune('A'); letter <= 'Z'; letter++ {
			next := node.ChildOf(letter)
			if next == nil {
				continue
			}
			s.stepPastQ(tileLetters, ti, next, word+string(letter), letter, path, used, out)
		}
		return
	}
	actual := unicode.ToUpper(ch)
	next := node.ChildOf(actual)
	if next == nil {
		return
	}
	s.stepPastQ(tileLetters, ti, next, word+string(actual), actual, path, used, out)
}

// stepPastQ applies the Qu auto-descent rule after having just
// descended the trie via actual at tileLetters[ti], then continues
// consumeTile at ti+1. When rules.QIsQu is set and actual is 'Q', the
// trie is also descended via 'U' here, UNLESS the tile's own next
// character already literally is a 'U' — in that case the ordinary
// per-character loop handles it on the next call, and no synthetic
// descent is needed. This mirrors the alignment ScorePath performs
// when re-deriving wordLength from the emitted word alone.
func (s *Solver) stepPastQ(tileLetters []rune, ti int, node *TrieNode, word string, actual rune, path []int, used []bool, out *SolutionList) {
	next := ti + 1
	if s.rules.QIsQu && actual == 'Q' {
		literalUFollows := next < len(tileLetters) && unicode.ToUpper(tileLetters[next]) == 'U'
		if !literalUFollows {
			uNode := node.ChildOf('U')
			if uNode == nil {
				return
			}
			node = uNode
			word += "U"
		}
	}
	s.consumeTile(tileLetters, next, node, word, path, used, out)
}

// afterTile runs once a tile's letter string has been fully consumed:
// it emits a Solution if node is terminal and word is long enough,
// then continues the walk into every unused, non-empty tile adjacent
// to the last tile on path.
func (s *Solver) afterTile(node *TrieNode, word string, path []int, used []bool, out *SolutionList) {
	if node.IsTerminal() && len(word) >= s.rules.MinWordLength {
		*out = append(*out, ScorePath(s.board, s.rules, path, word))
	}
	last := path[len(path)-1]
	for j := range s.board.Tiles {
		if used[j] || s.board.Tiles[j].IsEmpty() {
			continue
		}
		if !s.board.Adjacent(last, j) {
			continue
		}
		used[j] = true
		nextPath := append(path[:len(path):len(path)], j)
		letters := []rune(s.board.Tiles[j].Letters)
		s.consumeTile(letters, 0, node, word, nextPath, used, out)
		used[j] = false
	}
}
