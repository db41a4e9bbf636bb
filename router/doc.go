// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the twopoll API.

# Route Registration

NewRouter creates a configured http.ServeMux from explicit dependencies:

	mux := router.NewRouter(router.Deps{
		Store: store.New(conn),
		Views: renderer,
	})

# Endpoints

Views:

	GET /           - Landing page
	GET /polls/list - All polls

Poll API:

	POST   /polls/create             - Create poll
	GET    /polls/{id}               - Get poll
	DELETE /polls/{id}               - Delete poll
	POST   /polls/vote/{id}/{choice} - Vote (1 = option 1, else option 2)

GET /polls/list is more specific than GET /polls/{id}, so "list" is
never treated as an id. Every handler is wrapped with request logging.
*/
package router
