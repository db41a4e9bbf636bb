// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the twopoll API.

# Handler Types

PollHandler serves every route. It depends on a PollStore and a Renderer:

	pollHandler := handlers.NewPollHandler(store.New(conn), renderer)

# Routes

	GET    /                         → Home (HTML)
	POST   /polls/create             → CreatePoll (JSON poll with id)
	GET    /polls/list               → ListPolls (HTML)
	GET    /polls/{id}               → GetPoll (JSON poll)
	DELETE /polls/{id}               → DeletePoll (text confirmation)
	POST   /polls/vote/{id}/{choice} → Vote (JSON poll)

# Errors

  - 400: body is not exactly one poll payload with all five fields,
    a vote counter is negative, {id} is not a dashed UUID, or {choice}
    is not an integer
  - 404: no poll with that id
  - 500: store or template failure

Path parameters are checked before the store is touched.
*/
package handlers
