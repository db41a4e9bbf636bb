// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/danielhkuo/twopoll/middleware"
	"github.com/danielhkuo/twopoll/models"
	"github.com/danielhkuo/twopoll/store"
	"github.com/danielhkuo/twopoll/views"
)

// PollStore is the persistence the poll handlers need
type PollStore interface {
	Insert(ctx context.Context, poll models.Poll) (models.Poll, error)
	ListAll(ctx context.Context) ([]models.Poll, error)
	FindByID(ctx context.Context, id uuid.UUID) (models.Poll, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
	RecordVote(ctx context.Context, id uuid.UUID, choice models.Choice) (models.Poll, error)
}

// Renderer renders named HTML views
type Renderer interface {
	Render(w io.Writer, name string, data any) error
}

type PollHandler struct {
	store PollStore
	views Renderer
}

func NewPollHandler(store PollStore, views Renderer) *PollHandler {
	return &PollHandler{store: store, views: views}
}

// Home handles GET /
func (h *PollHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, views.Home, map[string]string{})
}

// CreatePoll handles POST /polls/create
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	newPoll, err := req.Poll()
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	poll, err := h.store.Insert(r.Context(), newPoll)
	if err != nil {
		slog.Error("failed to insert poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
		return
	}

	slog.Info("poll created", "poll_id", poll.ID)

	middleware.JSONResponse(w, http.StatusOK, poll)
}

// ListPolls handles GET /polls/list
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	polls, err := h.store.ListAll(r.Context())
	if err != nil {
		slog.Error("failed to list polls", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	h.render(w, views.Polls, map[string][]models.Poll{"polls": polls})
}

// GetPoll handles GET /polls/:id
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	pollID, ok := parsePollID(w, r)
	if !ok {
		return
	}

	poll, err := h.store.FindByID(r.Context(), pollID)
	if err != nil {
		storeError(w, err, "failed to query poll", pollID)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, poll)
}

// DeletePoll handles DELETE /polls/:id
func (h *PollHandler) DeletePoll(w http.ResponseWriter, r *http.Request) {
	pollID, ok := parsePollID(w, r)
	if !ok {
		return
	}

	// The row count of the delete decides not-found; no prior lookup
	if err := h.store.DeleteByID(r.Context(), pollID); err != nil {
		storeError(w, err, "failed to delete poll", pollID)
		return
	}

	slog.Info("poll deleted", "poll_id", pollID)

	middleware.TextResponse(w, http.StatusOK, "deleted poll: "+pollID.String())
}

// Vote handles POST /polls/vote/:id/:choice
// A choice of 1 votes for option 1; any other integer votes for option 2.
func (h *PollHandler) Vote(w http.ResponseWriter, r *http.Request) {
	pollID, ok := parsePollID(w, r)
	if !ok {
		return
	}

	n, err := strconv.Atoi(r.PathValue("choice"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "choice must be an integer")
		return
	}
	choice := models.ChoiceFromInt(n)

	poll, err := h.store.RecordVote(r.Context(), pollID, choice)
	if err != nil {
		storeError(w, err, "failed to record vote", pollID)
		return
	}

	slog.Info("vote recorded", "poll_id", pollID, "choice", int(choice))

	middleware.JSONResponse(w, http.StatusOK, poll)
}

func (h *PollHandler) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.views.Render(w, name, data); err != nil {
		slog.Error("failed to render view", "view", name, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to render page")
	}
}

// canonicalUUIDLen is the length of the dashed 8-4-4-4-12 form
const canonicalUUIDLen = 36

// parsePollID writes a 400 and returns false when {id} is not a UUID in
// canonical dashed form. Braced, urn: and undashed forms are rejected.
func parsePollID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := r.PathValue("id")
	if len(raw) != canonicalUUIDLen {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid poll id")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid poll id")
		return uuid.Nil, false
	}
	return id, true
}

func storeError(w http.ResponseWriter, err error, msg string, pollID uuid.UUID) {
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}
	slog.Error(msg, "poll_id", pollID, "error", err)
	middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
}
