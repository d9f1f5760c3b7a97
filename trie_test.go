// trie_test.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.
// This file contains tests for the Trie.

package wordgrid

import "testing"

func TestTrieInsertAndFind(t *testing.T) {
	trie := NewTrie()
	for _, w := range []string{"CAT", "CATS", "CAR", "dog"} {
		trie.Insert(w)
	}
	positive := []string{"CAT", "CATS", "CAR", "DOG", "cat", "Dog"}
	for _, w := range positive {
		if !trie.Find(w) {
			t.Errorf("Find(%q) = false, want true", w)
		}
	}
	negative := []string{"CA", "CATSS", "DO", "BIRD"}
	for _, w := range negative {
		if trie.Find(w) {
			t.Errorf("Find(%q) = true, want false", w)
		}
	}
	if trie.WordCount() != 4 {
		t.Errorf("WordCount() = %d, want 4", trie.WordCount())
	}
}

func TestTrieInsertRejectsNonLetters(t *testing.T) {
	trie := NewTrie()
	trie.Insert("CAT-5")
	if trie.Find("CAT") {
		t.Errorf("Find(\"CAT\") = true after inserting a word with non-letters; insert should have aborted entirely")
	}
	if trie.WordCount() != 0 {
		t.Errorf("WordCount() = %d, want 0", trie.WordCount())
	}
}

func TestTrieInsertDuplicateDoesNotDoubleCount(t *testing.T) {
	trie := NewTrie()
	trie.Insert("CAT")
	trie.Insert("CAT")
	if trie.WordCount() != 1 {
		t.Errorf("WordCount() = %d, want 1 after inserting the same word twice", trie.WordCount())
	}
}

func TestTrieInsertAll(t *testing.T) {
	trie := NewTrie()
	trie.InsertAll(NewSliceWordSource([]string{"ONE", "TWO", "THREE"}))
	if trie.WordCount() != 3 {
		t.Errorf("WordCount() = %d, want 3", trie.WordCount())
	}
	if !trie.Find("TWO") {
		t.Errorf("Find(\"TWO\") = false, want true")
	}
}

func TestTrieChildOf(t *testing.T) {
	trie := NewTrie()
	trie.Insert("AB")
	root := trie.Root()
	a := root.ChildOf('A')
	if a == nil {
		t.Fatalf("ChildOf('A') = nil, want a node")
	}
	if a.IsTerminal() {
		t.Errorf("node at \"A\" is terminal, want false")
	}
	b := a.ChildOf('B')
	if b == nil || !b.IsTerminal() {
		t.Errorf("node at \"AB\" is not terminal, want true")
	}
	if root.ChildOf('Z') != nil {
		t.Errorf("ChildOf('Z') != nil, want nil")
	}
}
