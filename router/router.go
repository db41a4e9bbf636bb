// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/twopoll/handlers"
	"github.com/danielhkuo/twopoll/middleware"
)

// Deps is everything the routes need, built once in main
type Deps struct {
	Store handlers.PollStore
	Views handlers.Renderer
}

func NewRouter(deps Deps) *http.ServeMux {
	mux := http.NewServeMux()

	pollHandler := handlers.NewPollHandler(deps.Store, deps.Views)

	// Views
	mux.HandleFunc("GET /{$}", middleware.WithLogging(pollHandler.Home))
	mux.HandleFunc("GET /polls/list", middleware.WithLogging(pollHandler.ListPolls))

	// Poll API
	mux.HandleFunc("POST /polls/create", middleware.WithLogging(pollHandler.CreatePoll))
	mux.HandleFunc("GET /polls/{id}", middleware.WithLogging(pollHandler.GetPoll))
	mux.HandleFunc("DELETE /polls/{id}", middleware.WithLogging(pollHandler.DeletePoll))
	mux.HandleFunc("POST /polls/vote/{id}/{choice}", middleware.WithLogging(pollHandler.Vote))

	return mux
}
