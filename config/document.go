// document.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file defines Document, the raw YAML shape spec.md §6's
// "Configuration" section describes: named Grids, Dictionaries,
// ScoringRules, LetterDistributions, GameRules and Preferences.

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

package config

// Document is the top-level shape a configuration YAML file decodes
// into. Unknown top-level or nested fields are ignored by yaml.v3's
// default decoding behavior, per spec.md §6.
type Document struct {
	Grids               map[string]GridSpec         `yaml:"grids"`
	Dictionaries        map[string]DictionarySpec   `yaml:"dictionaries"`
	ScoringRules        map[string]ScoringRulesSpec `yaml:"scoringRules"`
	LetterDistributions map[string]DistributionSpec `yaml:"letterDistributions"`
	GameRules           map[string]GameRulesSpec    `yaml:"gameRules"`
	// Preferences maps a game name (or "Default") to a flat
	// string->string map of preference values.
	Preferences map[string]map[string]string `yaml:"preferences"`
}

// GridSpec describes one named GridPolicy.
type GridSpec struct {
	Rows      int    `yaml:"rows"`
	Cols      int    `yaml:"cols"`
	Adjacency string `yaml:"adjacency"`
}

// DictionarySpec names the word-list file a dictionary is loaded from.
// The file itself is opened lazily, the first time a GameRules
// referencing it is resolved, not at Load time.
type DictionarySpec struct {
	Path string `yaml:"path"`
}

// ScoringRulesSpec describes one named ScoringRules policy. Letter
// keys in LetterValues are single-character strings ("A".."Z");
// LengthBonuses keys are word lengths.
type ScoringRulesSpec struct {
	QIsQu               bool               `yaml:"qIsQu"`
	QuLength            int                `yaml:"quLength"`
	MinWordLength       int                `yaml:"minWordLength"`
	ShortWordLength     int                `yaml:"shortWordLength"`
	ShortWordPoints     int                `yaml:"shortWordPoints"`
	ShortWordMultiplier bool               `yaml:"shortWordMultiplier"`
	WildCardPoints      bool               `yaml:"wildCardPoints"`
	RoundBonusUp        bool               `yaml:"roundBonusUp"`
	MultiplyLengthBonus bool               `yaml:"multiplyLengthBonus"`
	RandomBoardSize     int                `yaml:"randomBoardSize"`
	LetterValues        map[string]int     `yaml:"letterValues"`
	LengthBonuses       map[int]float64    `yaml:"lengthBonuses"`
}

// DistributionSpec describes one named LetterDistribution. Kind
// selects which of the remaining fields apply: "dice", "propensity"
// or "wordlist".
type DistributionSpec struct {
	Kind                     string     `yaml:"kind"`
	Dice                     [][]string `yaml:"dice"`
	Propensity               []string   `yaml:"propensity"`
	SampleWithoutReplacement bool       `yaml:"sampleWithoutReplacement"`
	ShuffleLetters           bool       `yaml:"shuffleLetters"`
	WordListPath             string     `yaml:"wordListPath"`
}

// GameRulesSpec names the Grid/Dictionary/ScoringRules/
// LetterDistribution a named GameRules bundle composes.
type GameRulesSpec struct {
	Grid               string `yaml:"grid"`
	Dictionary         string `yaml:"dictionary"`
	ScoringRules       string `yaml:"scoringRules"`
	LetterDistribution string `yaml:"letterDistribution"`
}
