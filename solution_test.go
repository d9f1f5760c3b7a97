// solution_test.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file contains tests for Solution and SolutionList ordering.

package wordgrid

import "testing"

func TestSolutionListSort(t *testing.T) {
	list := SolutionList{
		{Word: "CAT", Score: 5},
		{Word: "BAT", Score: 9},
		{Word: "CAT", Score: 8},
	}
	list.Sort()
	want := []string{"BAT", "CAT", "CAT"}
	for i, w := range want {
		if list[i].Word != w {
			t.Fatalf("list[%d].Word = %q, want %q", i, list[i].Word, w)
		}
	}
	if list[1].Score != 8 {
		t.Errorf("list[1].Score = %d, want 8 (higher-scoring CAT sorts first among ties)", list[1].Score)
	}
}

func TestSolutionListDedup(t *testing.T) {
	list := SolutionList{
		{Word: "BAT", Score: 9},
		{Word: "CAT", Score: 8},
		{Word: "CAT", Score: 5},
	}
	deduped := list.Dedup()
	if len(deduped) != 2 {
		t.Fatalf("len(deduped) = %d, want 2", len(deduped))
	}
	if deduped[1].Score != 8 {
		t.Errorf("deduped[1].Score = %d, want 8 (first occurrence kept)", deduped[1].Score)
	}
}

func TestSolutionListWordCountAndPointTotal(t *testing.T) {
	list := SolutionList{
		{Word: "CAT", Score: 5},
		{Word: "CAT", Score: 5},
		{Word: "BAT", Score: 9},
	}
	if c := list.WordCount(); c != 2 {
		t.Errorf("WordCount() = %d, want 2", c)
	}
	if p := list.PointTotal(); p != 14 {
		t.Errorf("PointTotal() = %d, want 14", p)
	}
}

func TestSolutionEqual(t *testing.T) {
	a := Solution{Word: "CAT", Score: 5}
	b := Solution{Word: "CAT", Score: 99}
	if !a.Equal(&b) {
		t.Errorf("Equal() = false, want true (dedup-equality is by Word only)")
	}
	c := Solution{Word: "BAT"}
	if a.Equal(&c) {
		t.Errorf("Equal() = true, want false for different words")
	}
}
