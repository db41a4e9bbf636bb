// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

  - CreatePollRequest: title, option1Text, option2Text, votes1, votes2

# Domain Types

  - Poll: a two-option poll with one vote counter per option
  - Choice: option selector for votes

# Choices

A vote path selector of 1 picks option 1. Anything else picks option 2:

	models.ChoiceFromInt(1)   // ChoiceOption1
	models.ChoiceFromInt(2)   // ChoiceOption2
	models.ChoiceFromInt(999) // ChoiceOption2

# Response Types

  - Poll is returned as-is for create, get, and vote
  - ErrorResponse: error, message
*/
package models
