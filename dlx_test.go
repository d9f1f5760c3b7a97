// dlx_test.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file contains tests for the DLX exact-cover engine.

package wordgrid

import "testing"

func TestDLXExactCoverFound(t *testing.T) {
	// A classic tiny exact-cover instance over 4 columns.
	dlx := NewDLX(4)
	dlx.AddRow([]int{0, 1})
	dlx.AddRow([]int{2, 3})
	dlx.AddRow([]int{0, 2})
	dlx.AddRow([]int{1, 3})

	if !dlx.HasExactCover() {
		t.Errorf("HasExactCover() = false, want true")
	}
}

func TestDLXExactCoverNotFound(t *testing.T) {
	dlx := NewDLX(3)
	dlx.AddRow([]int{0, 1})
	dlx.AddRow([]int{1, 2})
	// Column 0 and column 2 can never both be covered without reusing
	// column 1 twice: no exact cover exists.
	if dlx.HasExactCover() {
		t.Errorf("HasExactCover() = true, want false")
	}
}

func TestDLXSearchReturnsRowIDs(t *testing.T) {
	dlx := NewDLX(2)
	r0 := dlx.AddRow([]int{0})
	r1 := dlx.AddRow([]int{1})
	solutions := dlx.Search(true)
	if len(solutions) != 1 {
		t.Fatalf("len(solutions) = %d, want 1", len(solutions))
	}
	got := map[int]bool{}
	for _, row := range solutions[0] {
		got[row] = true
	}
	if !got[r0] || !got[r1] {
		t.Errorf("solution rows = %v, want both %d and %d", solutions[0], r0, r1)
	}
}
