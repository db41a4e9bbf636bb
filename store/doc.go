// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists polls in the poll table.

	s := store.New(conn)
	poll, err := s.Insert(ctx, models.Poll{Title: "Lunch?", Option1Text: "Pizza", Option2Text: "Tacos"})

Insert assigns a new UUID; any id on the input is replaced. FindByID,
Update, DeleteByID and RecordVote return ErrNotFound when no row has the id.

RecordVote increments one counter in a single UPDATE ... RETURNING
statement, so concurrent votes on the same poll are serialized by the
database rather than by the caller.

Queries use $N placeholders, accepted by both lib/pq and modernc sqlite.
*/
package store
