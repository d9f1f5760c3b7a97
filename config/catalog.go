// catalog.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file implements Load and Catalog: resolving a Document's named
// references into populated wordgrid records, per spec.md §6's
// Configuration section. Malformed individual entries are logged and
// skipped, grounded on the teacher's own tolerant-load posture in
// skrafl.go (a corrupt tile never aborts loading the rest of a Bag);
// only a wholly unparseable document is fatal.

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

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/wordgrid/wordgrid"
)

// Catalog holds every named record a Document resolves into, plus
// enough of the raw document to resolve GameRules and Preferences
// lazily.
type Catalog struct {
	doc    *Document
	logger *zerolog.Logger

	Grids        map[string]*wordgrid.GridPolicy
	ScoringRules map[string]*wordgrid.ScoringRules

	mu            sync.Mutex
	distributions map[string]*wordgrid.LetterDistribution
	dictionaries  map[string]*wordgrid.Trie
}

// Load parses r as a Document and resolves its Grids, ScoringRules and
// LetterDistributions eagerly. Dictionaries are left unopened until a
// GameRules referencing them is resolved, per spec.md §7's error
// taxonomy: a config-parse problem is a warn-and-skip per entry, but a
// dictionary file I/O failure is fatal only for the command that asked
// for it.
func Load(r io.Reader, logger *zerolog.Logger) (*Catalog, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("config: parsing document: %w", err)
	}

	c := &Catalog{
		doc:           &doc,
		logger:        logger,
		Grids:         make(map[string]*wordgrid.GridPolicy),
		ScoringRules:  make(map[string]*wordgrid.ScoringRules),
		distributions: make(map[string]*wordgrid.LetterDistribution),
		dictionaries:  make(map[string]*wordgrid.Trie),
	}

	for name, spec := range doc.Grids {
		grid, err := buildGrid(spec)
		if err != nil {
			logger.Warn().Str("grid", name).Err(err).Msg("skipping malformed grid")
			continue
		}
		c.Grids[name] = grid
	}

	for name, spec := range doc.ScoringRules {
		c.ScoringRules[name] = buildScoringRules(spec)
	}

	for name, spec := range doc.LetterDistributions {
		dist, err := buildDistribution(spec)
		if err != nil {
			logger.Warn().Str("letterDistribution", name).Err(err).Msg("skipping malformed distribution")
			continue
		}
		c.distributions[name] = dist
	}

	return c, nil
}

// parseAdjacency maps a GridSpec's adjacency string to a
// wordgrid.Adjacency; "" defaults to Straight.
func parseAdjacency(s string) (wordgrid.Adjacency, error) {
	switch s {
	case "", "straight":
		return wordgrid.Straight, nil
	case "diagonal":
		return wordgrid.Diagonal, nil
	case "full":
		return wordgrid.Full, nil
	default:
		return 0, fmt.Errorf("unrecognized adjacency %q", s)
	}
}

func buildGrid(spec GridSpec) (*wordgrid.GridPolicy, error) {
	adjacency, err := parseAdjacency(spec.Adjacency)
	if err != nil {
		return nil, err
	}
	if spec.Rows <= 0 || spec.Cols <= 0 {
		return nil, fmt.Errorf("grid rows/cols must be positive, got %dx%d", spec.Rows, spec.Cols)
	}
	return wordgrid.RectangularGrid(spec.Rows, spec.Cols, adjacency), nil
}

func buildScoringRules(spec ScoringRulesSpec) *wordgrid.ScoringRules {
	rules := wordgrid.NewScoringRules(spec.MinWordLength)
	rules.QIsQu = spec.QIsQu
	rules.QuLength = spec.QuLength
	rules.ShortWordLength = spec.ShortWordLength
	rules.ShortWordPoints = spec.ShortWordPoints
	rules.ShortWordMultiplier = spec.ShortWordMultiplier
	rules.WildCardPoints = spec.WildCardPoints
	rules.RoundBonusUp = spec.RoundBonusUp
	rules.MultiplyLengthBonus = spec.MultiplyLengthBonus
	rules.RandomBoardSize = spec.RandomBoardSize
	for letter, value := range spec.LetterValues {
		if len(letter) != 1 {
			continue
		}
		rules.SetLetterValue(rune(letter[0]), value)
	}
	for length, bonus := range spec.LengthBonuses {
		rules.SetLengthBonus(length, bonus)
	}
	return rules
}

func buildDistribution(spec DistributionSpec) (*wordgrid.LetterDistribution, error) {
	switch spec.Kind {
	case "dice":
		if len(spec.Dice) == 0 {
			return nil, fmt.Errorf("dice distribution has no dice")
		}
		return wordgrid.NewDiceDistribution(spec.Dice), nil
	case "propensity":
		if len(spec.Propensity) == 0 {
			return nil, fmt.Errorf("propensity distribution has no tiles")
		}
		return wordgrid.NewPropensityDistribution(spec.Propensity, spec.SampleWithoutReplacement, spec.ShuffleLetters), nil
	case "wordlist":
		if spec.WordListPath == "" {
			return nil, fmt.Errorf("wordlist distribution has no path")
		}
		return wordgrid.NewWordListDistribution(spec.WordListPath, spec.ShuffleLetters), nil
	default:
		return nil, fmt.Errorf("unrecognized distribution kind %q", spec.Kind)
	}
}

// Dictionary resolves a named dictionary into a Trie, loading and
// caching it on first use. Subsequent calls for the same name return
// the cached Trie without re-reading the file.
func (c *Catalog) Dictionary(name string) (*wordgrid.Trie, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if trie, ok := c.dictionaries[name]; ok {
		return trie, nil
	}
	spec, ok := c.doc.Dictionaries[name]
	if !ok {
		return nil, fmt.Errorf("config: no dictionary named %q", name)
	}
	f, err := os.Open(spec.Path)
	if err != nil {
		return nil, fmt.Errorf("config: opening dictionary %q: %w", name, err)
	}
	defer f.Close()
	trie := wordgrid.NewTrie()
	trie.InsertAll(wordgrid.NewLineWordSource(f))
	c.dictionaries[name] = trie
	return trie, nil
}

// GameRules resolves a named GameRules bundle, lazily loading the
// dictionary it references.
func (c *Catalog) GameRules(name string) (*wordgrid.GameRules, error) {
	spec, ok := c.doc.GameRules[name]
	if !ok {
		return nil, fmt.Errorf("config: no gameRules named %q", name)
	}
	grid, ok := c.Grids[spec.Grid]
	if !ok {
		return nil, fmt.Errorf("config: gameRules %q references unknown grid %q", name, spec.Grid)
	}
	scoring, ok := c.ScoringRules[spec.ScoringRules]
	if !ok {
		return nil, fmt.Errorf("config: gameRules %q references unknown scoringRules %q", name, spec.ScoringRules)
	}
	dist, ok := c.distributions[spec.LetterDistribution]
	if !ok {
		return nil, fmt.Errorf("config: gameRules %q references unknown letterDistribution %q", name, spec.LetterDistribution)
	}
	dict, err := c.Dictionary(spec.Dictionary)
	if err != nil {
		return nil, fmt.Errorf("config: resolving gameRules %q: %w", name, err)
	}
	return &wordgrid.GameRules{
		Name:         name,
		Grid:         grid,
		Dictionary:   dict,
		Scoring:      scoring,
		Distribution: dist,
	}, nil
}

// Preference resolves the preference value for key within game's
// preference map, falling back to the "Default" group's entry for key
// (if any) when game itself has no entry. Returns ok=false if neither
// group supplies a value.
func (c *Catalog) Preference(game, key string) (string, bool) {
	if m, ok := c.doc.Preferences[game]; ok {
		if v, ok := m[key]; ok {
			return v, true
		}
	}
	if m, ok := c.doc.Preferences["Default"]; ok {
		if v, ok := m[key]; ok {
			return v, true
		}
	}
	return "", false
}
