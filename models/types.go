package models

import "errors"

// Vote choice constants
const (
	ChoiceOption1 Choice = 1
	ChoiceOption2 Choice = 2
)

// Choice selects which option of a poll receives a vote
type Choice int

// ChoiceFromInt maps a path selector to a Choice.
// Only 1 selects option 1; every other value selects option 2.
func ChoiceFromInt(n int) Choice {
	if n == 1 {
		return ChoiceOption1
	}
	return ChoiceOption2
}

// Request types

// CreatePollRequest is the creation payload. Every field is required, so
// fields are pointers to tell absent or null apart from zero values.
// Any client-supplied id is ignored.
type CreatePollRequest struct {
	Title       *string `json:"title"`
	Option1Text *string `json:"option1Text"`
	Option2Text *string `json:"option2Text"`
	Votes1      *int    `json:"votes1"`
	Votes2      *int    `json:"votes2"`
}

// Poll builds the unsaved poll described by the request.
// It fails when a field is missing or a counter is negative.
func (r CreatePollRequest) Poll() (Poll, error) {
	switch {
	case r.Title == nil:
		return Poll{}, errors.New("title is required")
	case r.Option1Text == nil:
		return Poll{}, errors.New("option1Text is required")
	case r.Option2Text == nil:
		return Poll{}, errors.New("option2Text is required")
	case r.Votes1 == nil:
		return Poll{}, errors.New("votes1 is required")
	case r.Votes2 == nil:
		return Poll{}, errors.New("votes2 is required")
	case *r.Votes1 < 0 || *r.Votes2 < 0:
		return Poll{}, errors.New("votes must not be negative")
	}

	return Poll{
		Title:       *r.Title,
		Option1Text: *r.Option1Text,
		Option2Text: *r.Option2Text,
		Votes1:      *r.Votes1,
		Votes2:      *r.Votes2,
	}, nil
}

// Domain types

type Poll struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Option1Text string `json:"option1Text"`
	Option2Text string `json:"option2Text"`
	Votes1      int    `json:"votes1"`
	Votes2      int    `json:"votes2"`
}

// TotalVotes returns votes1 + votes2
func (p Poll) TotalVotes() int {
	return p.Votes1 + p.Votes2
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
