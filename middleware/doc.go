// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /polls/{id}", middleware.WithLogging(handler))

Logs request start at debug level (method, path, remote) and completion
at info level (status, duration_ms).

# Response Helpers

	middleware.JSONResponse(w, http.StatusOK, poll)
	middleware.TextResponse(w, http.StatusOK, "deleted poll: ...")
	middleware.ErrorResponse(w, http.StatusNotFound, "poll not found")

# Request Bodies

	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
*/
package middleware
