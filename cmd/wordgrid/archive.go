// archive.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// Optional persistence for "create": when a Google Cloud project ID is
// configured, boards that meet their generation target are archived to
// Datastore as GeneratedBoard entities. This is never required for
// core operation — per SPEC_FULL.md §B, it mirrors the persistence
// path implied by the teacher's App Engine server (go-app/main.go)
// without depending on App Engine itself.

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
	"context"
	"fmt"
	"os"
	"time"

	"cloud.google.com/go/datastore"
	"github.com/rs/zerolog"

	"github.com/wordgrid/wordgrid"
)

// GeneratedBoard is the Datastore entity a "create" run persists when
// its target is met and WORDGRID_GCP_PROJECT names a project.
type GeneratedBoard struct {
	Ruleset   string
	Board     string
	Words     int
	Points    int
	CreatedAt time.Time
}

// boardArchiver wraps an optional Datastore client. A nil receiver
// (no project configured) makes Archive a no-op, so callers never need
// to branch on whether archiving is enabled.
type boardArchiver struct {
	client *datastore.Client
}

// newBoardArchiver returns a boardArchiver backed by
// WORDGRID_GCP_PROJECT, or a disabled archiver if the variable is
// unset. Connection failures are logged and degrade to disabled rather
// than aborting the command, since archiving is optional.
func newBoardArchiver(ctx context.Context, logger *zerolog.Logger) *boardArchiver {
	project := os.Getenv("WORDGRID_GCP_PROJECT")
	if project == "" {
		return &boardArchiver{}
	}
	client, err := datastore.NewClient(ctx, project)
	if err != nil {
		logger.Warn().Err(err).Str("project", project).Msg("disabling board archiving")
		return &boardArchiver{}
	}
	return &boardArchiver{client: client}
}

// Archive persists one generated board, if archiving is enabled.
func (a *boardArchiver) Archive(ctx context.Context, ruleset string, board *wordgrid.Board, words, points int) error {
	if a.client == nil {
		return nil
	}
	key := datastore.IncompleteKey("GeneratedBoard", nil)
	entity := &GeneratedBoard{
		Ruleset:   ruleset,
		Board:     board.String(),
		Words:     words,
		Points:    points,
		CreatedAt: time.Now(),
	}
	if _, err := a.client.Put(ctx, key, entity); err != nil {
		return fmt.Errorf("archiving generated board: %w", err)
	}
	return nil
}

// Close releases the underlying Datastore client, if any.
func (a *boardArchiver) Close() error {
	if a.client == nil {
		return nil
	}
	return a.client.Close()
}
