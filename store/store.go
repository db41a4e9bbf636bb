// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/danielhkuo/twopoll/models"
)

var ErrNotFound = errors.New("poll not found")

const pollColumns = "id, title, option1_text, option2_text, votes1, votes2"

// Store persists polls in the poll table
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPoll(row rowScanner) (models.Poll, error) {
	var p models.Poll
	err := row.Scan(&p.ID, &p.Title, &p.Option1Text, &p.Option2Text, &p.Votes1, &p.Votes2)
	return p, err
}

// Insert assigns a fresh id and stores the poll
func (s *Store) Insert(ctx context.Context, poll models.Poll) (models.Poll, error) {
	poll.ID = uuid.NewString()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO poll (`+pollColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, poll.ID, poll.Title, poll.Option1Text, poll.Option2Text, poll.Votes1, poll.Votes2)
	if err != nil {
		return models.Poll{}, fmt.Errorf("failed to insert poll: %w", err)
	}

	return poll, nil
}

// ListAll returns every poll in store order. The slice is never nil.
func (s *Store) ListAll(ctx context.Context) ([]models.Poll, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+pollColumns+` FROM poll`)
	if err != nil {
		return nil, fmt.Errorf("failed to query polls: %w", err)
	}
	defer rows.Close()

	polls := []models.Poll{}
	for rows.Next() {
		p, err := scanPoll(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan poll: %w", err)
		}
		polls = append(polls, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate polls: %w", err)
	}

	return polls, nil
}

// FindByID returns ErrNotFound when no poll has the id
func (s *Store) FindByID(ctx context.Context, id uuid.UUID) (models.Poll, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+pollColumns+` FROM poll WHERE id = $1`, id.String())

	p, err := scanPoll(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Poll{}, ErrNotFound
	}
	if err != nil {
		return models.Poll{}, fmt.Errorf("failed to query poll: %w", err)
	}

	return p, nil
}

// Update overwrites the stored poll with the same id.
// No route edits polls; votes go through RecordVote instead.
func (s *Store) Update(ctx context.Context, poll models.Poll) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE poll
		SET title = $1, option1_text = $2, option2_text = $3, votes1 = $4, votes2 = $5
		WHERE id = $6
	`, poll.Title, poll.Option1Text, poll.Option2Text, poll.Votes1, poll.Votes2, poll.ID)
	if err != nil {
		return fmt.Errorf("failed to update poll: %w", err)
	}

	return requireRow(res)
}

// DeleteByID removes the poll. Deleting an absent id returns ErrNotFound.
func (s *Store) DeleteByID(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM poll WHERE id = $1`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete poll: %w", err)
	}

	return requireRow(res)
}

// RecordVote increments the counter selected by choice and returns the updated poll.
// The increment runs in one statement so concurrent votes are never lost.
func (s *Store) RecordVote(ctx context.Context, id uuid.UUID, choice models.Choice) (models.Poll, error) {
	var inc1, inc2 int
	if choice == models.ChoiceOption1 {
		inc1 = 1
	} else {
		inc2 = 1
	}

	row := s.db.QueryRowContext(ctx, `
		UPDATE poll
		SET votes1 = votes1 + $1, votes2 = votes2 + $2
		WHERE id = $3
		RETURNING `+pollColumns,
		inc1, inc2, id.String())

	p, err := scanPoll(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Poll{}, ErrNotFound
	}
	if err != nil {
		return models.Poll{}, fmt.Errorf("failed to record vote: %w", err)
	}

	return p, nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
