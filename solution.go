// solution.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file implements Solution, an immutable scored word with its
// path through the Board, and the ordering the Analyzer depends on.

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

import "sort"

// Solution is a dictionary word discovered by the Solver via a valid
// walk across the Board, together with its scoring breakdown and the
// path of tile indices that produced it. Positions has length equal
// to the path length, which is not necessarily WordLength, since a
// tile may emit more than one letter (digraphs, Qu-expansion).
type Solution struct {
	Word           string
	Positions      []int
	WordLength     int
	Score          int
	LetterPoints   int
	WordMultiplier int
	LengthBonus    float64
}

// Equal reports dedup-equality between two solutions: equal iff their
// Word strings are equal, per spec.md §3.
func (s *Solution) Equal(other *Solution) bool {
	return s.Word == other.Word
}

// SolutionList is a list of Solutions with the ordering spec.md §3
// defines: primary by Word ascending, secondary by Score descending.
type SolutionList []Solution

func (l SolutionList) Len() int      { return len(l) }
func (l SolutionList) Swap(i, j int) { l[i], l[j] = l[j], l[i] }
func (l SolutionList) Less(i, j int) bool {
	if l[i].Word != l[j].Word {
		return l[i].Word < l[j].Word
	}
	return l[i].Score > l[j].Score
}

// Sort sorts l in place by the canonical Solution ordering.
func (l SolutionList) Sort() {
	sort.Sort(l)
}

// Dedup returns a new SolutionList containing only the first
// occurrence of each distinct Word, in the input order. The caller is
// expected to have already sorted l (word ascending, score
// descending) so that the kept occurrence is the highest-scoring one.
func (l SolutionList) Dedup() SolutionList {
	out := make(SolutionList, 0, len(l))
	seen := make(map[string]bool, len(l))
	for _, s := range l {
		if seen[s.Word] {
			continue
		}
		seen[s.Word] = true
		out = append(out, s)
	}
	return out
}

// WordCount returns the number of distinct words in l.
func (l SolutionList) WordCount() int {
	seen := make(map[string]bool, len(l))
	for _, s := range l {
		seen[s.Word] = true
	}
	return len(seen)
}

// PointTotal returns the sum of scores of distinct words in l (the
// first occurrence of each word, which is the highest-scoring one if
// l is sorted per the canonical ordering).
func (l SolutionList) PointTotal() int {
	total := 0
	seen := make(map[string]bool, len(l))
	for _, s := range l {
		if seen[s.Word] {
			continue
		}
		seen[s.Word] = true
		total += s.Score
	}
	return total
}
