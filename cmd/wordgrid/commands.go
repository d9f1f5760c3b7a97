// commands.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file implements the body of each command in spec.md §6's
// command table, each a thin driver over the wordgrid core: read
// stdin line by line, call into Solver/Analyzer/Generator/Validator,
// write formatted results to stdout (diagnostics to stderr).

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

package main

import (
	"bufio"
	"context"
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/wordgrid/wordgrid"
)

const defaultSolutionFormat = "%w %s"

// cmdScore implements "score ruleset": one board per stdin line,
// "<words> <points>" per stdout line.
func cmdScore(gr *wordgrid.GameRules, rest []string) int {
	if len(rest) != 0 {
		fmt.Fprintln(os.Stderr, "wordgrid: score takes no extra arguments")
		return 1
	}
	scanner := bufio.NewScanner(os.Stdin)
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		board := wordgrid.ParseBoard(line, gr.Grid)
		sols := wordgrid.NewSolver(board, gr.Dictionary, gr.Scoring).Solve()
		sols.Sort()
		fmt.Fprintf(out, "%d %d\n", sols.WordCount(), sols.PointTotal())
	}
	return 0
}

// cmdSolve implements "solve"/"solve-dups ruleset [fmt [prefix [suffix]]]".
// withDups selects the raw (non-deduplicated) solution list.
func cmdSolve(gr *wordgrid.GameRules, rest []string, withDups bool) int {
	tmpl, prefix, suffix := defaultSolutionFormat, "", ""
	switch len(rest) {
	case 0:
	case 1:
		tmpl = rest[0]
	case 2:
		tmpl, prefix = rest[0], rest[1]
	case 3:
		tmpl, prefix, suffix = rest[0], rest[1], rest[2]
	default:
		fmt.Fprintln(os.Stderr, "wordgrid: solve takes at most fmt, prefix, suffix")
		return 1
	}

	scanner := bufio.NewScanner(os.Stdin)
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		board := wordgrid.ParseBoard(line, gr.Grid)
		sols := wordgrid.NewSolver(board, gr.Dictionary, gr.Scoring).Solve()
		sols.Sort()
		if !withDups {
			sols = sols.Dedup()
		}
		out.WriteString(wordgrid.FormatSolutionList(tmpl, prefix, suffix, sols))
		out.WriteByte('\n')
	}
	return 0
}

// cmdAnalyze implements "analyze ruleset [fmt [dump-words]]".
func cmdAnalyze(gr *wordgrid.GameRules, rest []string) int {
	tmpl := "%B: %0W words, %0S points"
	dumpWords := false
	switch len(rest) {
	case 0:
	case 1:
		if rest[0] == "dump-words" {
			dumpWords = true
		} else {
			tmpl = rest[0]
		}
	case 2:
		tmpl = rest[0]
		dumpWords = rest[1] == "dump-words"
	default:
		fmt.Fprintln(os.Stderr, "wordgrid: analyze takes at most fmt, dump-words")
		return 1
	}

	scanner := bufio.NewScanner(os.Stdin)
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		board := wordgrid.ParseBoard(line, gr.Grid)
		sols := wordgrid.NewSolver(board, gr.Dictionary, gr.Scoring).Solve()
		sols.Sort()

		analyzer := wordgrid.NewAnalyzer()
		analyzer.Analyze(sols)

		out.WriteString(wordgrid.FormatAnalysis(tmpl, analyzer, board, 0))
		out.WriteByte('\n')

		if dumpWords {
			fmt.Fprint(os.Stderr, wordgrid.DumpWordCounts(sols.Dedup()))
		}
	}
	return 0
}

// cmdCreate implements "create ruleset [n [minWords [minScore [minimize]]]]".
func cmdCreate(gr *wordgrid.GameRules, rng *rand.Rand, rest []string, logger *zerolog.Logger) int {
	n := 1
	target := wordgrid.GenerationTarget{Mode: wordgrid.Maximize}
	if len(rest) > 0 {
		v, err := strconv.Atoi(rest[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "wordgrid: bad n %q: %v\n", rest[0], err)
			return 1
		}
		n = v
	}
	if len(rest) > 1 {
		v, err := strconv.Atoi(rest[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "wordgrid: bad minWords %q: %v\n", rest[1], err)
			return 1
		}
		target.MinWords = v
	}
	if len(rest) > 2 {
		v, err := strconv.Atoi(rest[2])
		if err != nil {
			fmt.Fprintf(os.Stderr, "wordgrid: bad minScore %q: %v\n", rest[2], err)
			return 1
		}
		target.MinScore = v
	}
	if len(rest) > 3 && rest[3] == "minimize" {
		target.Mode = wordgrid.Minimize
	}
	if len(rest) > 4 {
		fmt.Fprintln(os.Stderr, "wordgrid: create takes at most n, minWords, minScore, minimize")
		return 1
	}

	generator := wordgrid.NewGenerator(gr.Grid, gr.Dictionary, gr.Scoring, gr.Distribution)
	ctx := context.Background()
	archiver := newBoardArchiver(ctx, logger)
	defer archiver.Close()

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	for i := 0; i < n; i++ {
		board, stats, err := generator.Generate(target, rng)
		if err != nil {
			fmt.Fprintf(os.Stderr, "wordgrid: generate: %v\n", err)
			return 1
		}
		logger.Debug().
			Int("trials", stats.Trials).
			Int("accepted", stats.Accepted).
			Int("duds", stats.Duds).
			Bool("targetMet", stats.TargetMet).
			Msg("generated board")
		if stats.TargetMet {
			sols := wordgrid.NewSolver(board, gr.Dictionary, gr.Scoring).Solve()
			sols.Sort()
			if err := archiver.Archive(ctx, gr.Name, board, sols.WordCount(), sols.PointTotal()); err != nil {
				logger.Warn().Err(err).Msg("board archiving failed")
			}
		}
		out.WriteString(board.String())
		out.WriteByte('\n')
	}
	return 0
}

// cmdCheck implements "check-word"/"check-board ruleset [stats|verbose]".
// boardMode selects whether each stdin line is a board description
// (check-board) or a bare word (check-word).
func cmdCheck(gr *wordgrid.GameRules, rest []string, boardMode bool, logger *zerolog.Logger) int {
	verbosity := ""
	if len(rest) > 1 {
		fmt.Fprintln(os.Stderr, "wordgrid: check-word/check-board takes at most one mode argument")
		return 1
	}
	if len(rest) == 1 {
		verbosity = rest[0]
		if verbosity != "stats" && verbosity != "verbose" {
			fmt.Fprintf(os.Stderr, "wordgrid: unrecognized mode %q\n", verbosity)
			return 1
		}
	}

	validator := wordgrid.NewValidator(gr.Distribution, gr.Scoring.QIsQu)
	scanner := bufio.NewScanner(os.Stdin)
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	accepted, rejected := 0, 0
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		var ok bool
		if boardMode {
			board := wordgrid.ParseBoard(line, gr.Grid)
			ok = validator.ValidateBoard(board)
		} else {
			ok = validator.ValidateWord(line)
		}
		if ok {
			accepted++
			fmt.Fprintf(out, "+%s\n", line)
		} else {
			rejected++
			fmt.Fprintf(out, "-%s\n", line)
		}
		if verbosity == "verbose" {
			logger.Info().Str("candidate", line).Bool("accepted", ok).Msg("checked")
		}
	}
	if verbosity == "stats" || verbosity == "verbose" {
		fmt.Fprintf(os.Stderr, "accepted %d rejected %d total %d\n", accepted, rejected, accepted+rejected)
	}
	return 0
}
