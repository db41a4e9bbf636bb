package models

import (
	"encoding/json"
	"testing"
)

func TestChoiceFromInt(t *testing.T) {
	testCases := []struct {
		in       int
		expected Choice
	}{
		{1, ChoiceOption1},
		{2, ChoiceOption2},
		{0, ChoiceOption2},
		{-1, ChoiceOption2},
		{999, ChoiceOption2},
	}

	for _, tc := range testCases {
		if got := ChoiceFromInt(tc.in); got != tc.expected {
			t.Errorf("ChoiceFromInt(%d) = %d, expected %d", tc.in, got, tc.expected)
		}
	}
}

func TestPollTotalVotes(t *testing.T) {
	p := Poll{Votes1: 5, Votes2: 4}
	if p.TotalVotes() != 9 {
		t.Errorf("Expected 9 total votes, got %d", p.TotalVotes())
	}
}

func TestCreatePollRequestIgnoresID(t *testing.T) {
	body := `{"id":"client-chosen","title":"T","option1Text":"A","option2Text":"B","votes1":1,"votes2":2}`

	var req CreatePollRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatal(err)
	}

	p, err := req.Poll()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := Poll{Title: "T", Option1Text: "A", Option2Text: "B", Votes1: 1, Votes2: 2}
	if p != expected {
		t.Errorf("Expected %+v, got %+v", expected, p)
	}
}

func TestCreatePollRequest_ZeroValuesAllowed(t *testing.T) {
	body := `{"title":"","option1Text":"","option2Text":"","votes1":0,"votes2":0}`

	var req CreatePollRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatal(err)
	}

	if _, err := req.Poll(); err != nil {
		t.Errorf("Explicit zero values should be accepted, got %v", err)
	}
}

func TestCreatePollRequest_Rejected(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{"empty object", `{}`},
		{"null", `null`},
		{"title only", `{"title":"T"}`},
		{"missing votes2", `{"title":"T","option1Text":"A","option2Text":"B","votes1":0}`},
		{"null option", `{"title":"T","option1Text":null,"option2Text":"B","votes1":0,"votes2":0}`},
		{"negative votes1", `{"title":"T","option1Text":"A","option2Text":"B","votes1":-5,"votes2":0}`},
		{"negative votes2", `{"title":"T","option1Text":"A","option2Text":"B","votes1":0,"votes2":-1}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var req CreatePollRequest
			if err := json.Unmarshal([]byte(tc.body), &req); err != nil {
				t.Fatal(err)
			}

			if _, err := req.Poll(); err == nil {
				t.Error("Expected error")
			}
		})
	}
}
