package event

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
)

func TestCreateEventEndpoint(t *testing.T) {
	f := newFixture(t)
	f.addGamer("ada")
	f.addGamer("grace")
	userID, _ := f.addGamer("linus") // gamer #3
	g := f.addGame(userID, "Catan")   // game #1

	w := f.do(http.MethodPost, "/events", userID, map[string]interface{}{
		"description": "Game night",
		"date":        "2024-01-01",
		"time":        "18:00",
		"game":        g.ID,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d; body=%s", w.Code, w.Body.String())
	}

	var body View
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Organizer.ID != 3 || body.Game.ID != 1 {
		t.Fatalf("organizer=%d game=%d; body=%s", body.Organizer.ID, body.Game.ID, w.Body.String())
	}
	if body.Organizer.FullName != "linus" || body.Description != "Game night" || body.Time != "18:00:00" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestEventJSONShape(t *testing.T) {
	f := newFixture(t)
	userID, _ := f.addGamer("ada")
	e := f.addEvent(userID, f.addGame(userID, "Catan").ID, "Game night")

	w := f.do(http.MethodGet, fmt.Sprintf("/events/%d", e.ID), userID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, k := range []string{"id", "description", "date", "time", "game", "organizer"} {
		if _, ok := raw[k]; !ok {
			t.Fatalf("missing %q in %s", k, w.Body.String())
		}
	}
	if len(raw) != 6 {
		t.Fatalf("unexpected extra fields: %s", w.Body.String())
	}

	var gameFields map[string]json.RawMessage
	_ = json.Unmarshal(raw["game"], &gameFields)
	for _, k := range []string{"id", "title", "maker", "number_of_players", "skill_level"} {
		if _, ok := gameFields[k]; !ok {
			t.Fatalf("game missing %q: %s", k, raw["game"])
		}
	}
	var organizerFields map[string]json.RawMessage
	_ = json.Unmarshal(raw["organizer"], &organizerFields)
	if _, ok := organizerFields["full_name"]; !ok || len(organizerFields) != 2 {
		t.Fatalf("unexpected organizer: %s", raw["organizer"])
	}
}

func TestCreateEventValidation(t *testing.T) {
	f := newFixture(t)
	userID, _ := f.addGamer("ada")
	g := f.addGame(userID, "Catan")

	cases := []struct {
		name string
		body map[string]interface{}
		want int
	}{
		{"missing game", map[string]interface{}{"description": "x", "date": "2024-01-01", "time": "18:00"}, http.StatusBadRequest},
		{"bad date", map[string]interface{}{"description": "x", "date": "tomorrow", "time": "18:00", "game": g.ID}, http.StatusBadRequest},
		{"unknown game", map[string]interface{}{"description": "x", "date": "2024-01-01", "time": "18:00", "game": 999}, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := f.do(http.MethodPost, "/events", userID, tc.body)
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d; body=%s", tc.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestEventEndpointsRequireCaller(t *testing.T) {
	f := newFixture(t)
	w := f.do(http.MethodPost, "/events", 0, map[string]interface{}{"description": "x"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestListEventsEndpoint(t *testing.T) {
	f := newFixture(t)
	userID, _ := f.addGamer("ada")
	catan := f.addGame(userID, "Catan")
	azul := f.addGame(userID, "Azul")
	f.addEvent(userID, catan.ID, "one")
	f.addEvent(userID, azul.ID, "two")

	w := f.do(http.MethodGet, "/events", userID, nil)
	var all []View
	if err := json.Unmarshal(w.Body.Bytes(), &all); err != nil || len(all) != 2 {
		t.Fatalf("list all: code=%d body=%s", w.Code, w.Body.String())
	}

	w = f.do(http.MethodGet, fmt.Sprintf("/events?game=%d", azul.ID), userID, nil)
	var filtered []View
	if err := json.Unmarshal(w.Body.Bytes(), &filtered); err != nil || len(filtered) != 1 || filtered[0].Game.ID != azul.ID {
		t.Fatalf("list filtered: code=%d body=%s", w.Code, w.Body.String())
	}

	w = f.do(http.MethodGet, "/events?game=999", userID, nil)
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Fatalf("expected empty array, got %d %s", w.Code, w.Body.String())
	}

	w = f.do(http.MethodGet, "/events?game=abc", userID, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestMissingEventEndpoints(t *testing.T) {
	f := newFixture(t)
	userID, _ := f.addGamer("ada")
	g := f.addGame(userID, "Catan")
	update := map[string]interface{}{"description": "x", "date": "2024-01-01", "time": "18:00", "game": g.ID}

	for _, tc := range []struct {
		method string
		body   interface{}
	}{
		{http.MethodGet, nil},
		{http.MethodPut, update},
		{http.MethodDelete, nil},
	} {
		w := f.do(tc.method, "/events/42", userID, tc.body)
		if w.Code != http.StatusNotFound {
			t.Fatalf("%s: expected 404, got %d", tc.method, w.Code)
		}
	}

	if w := f.do(http.MethodGet, "/events/zero", userID, nil); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad id, got %d", w.Code)
	}
}

func TestUpdateAndDeleteEndpoints(t *testing.T) {
	f := newFixture(t)
	ownerID, _ := f.addGamer("ada")
	otherID, _ := f.addGamer("grace")
	g := f.addGame(ownerID, "Catan")
	e := f.addEvent(ownerID, g.ID, "Game night")
	path := fmt.Sprintf("/events/%d", e.ID)
	update := map[string]interface{}{"description": "Later", "date": "2024-01-02", "time": "20:00", "game": g.ID}

	if w := f.do(http.MethodPut, path, otherID, update); w.Code != http.StatusForbidden {
		t.Fatalf("update by other: expected 403, got %d", w.Code)
	}

	w := f.do(http.MethodPut, path, ownerID, update)
	if w.Code != http.StatusNoContent || w.Body.Len() != 0 {
		t.Fatalf("update: code=%d body=%q", w.Code, w.Body.String())
	}

	w = f.do(http.MethodGet, path, ownerID, nil)
	var v View
	_ = json.Unmarshal(w.Body.Bytes(), &v)
	if v.Description != "Later" || v.Date != "2024-01-02" || v.Time != "20:00:00" {
		t.Fatalf("update not visible: %s", w.Body.String())
	}

	if w := f.do(http.MethodDelete, path, otherID, nil); w.Code != http.StatusForbidden {
		t.Fatalf("delete by other: expected 403, got %d", w.Code)
	}
	if w := f.do(http.MethodDelete, path, ownerID, nil); w.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", w.Code)
	}
	if w := f.do(http.MethodGet, path, ownerID, nil); w.Code != http.StatusNotFound {
		t.Fatalf("after delete: expected 404, got %d", w.Code)
	}
}

func TestSignupAndLeaveEndpoints(t *testing.T) {
	f := newFixture(t)
	ownerID, _ := f.addGamer("ada")
	guestID, guest := f.addGamer("grace")
	e := f.addEvent(ownerID, f.addGame(ownerID, "Catan").ID, "Game night")

	for i := 0; i < 2; i++ {
		w := f.do(http.MethodPost, fmt.Sprintf("/events/%d/signup", e.ID), guestID, nil)
		if w.Code != http.StatusCreated {
			t.Fatalf("signup: expected 201, got %d", w.Code)
		}
		var body map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["message"] != "Gamer added" {
			t.Fatalf("signup body: %s", w.Body.String())
		}
	}

	w := f.do(http.MethodGet, fmt.Sprintf("/events/%d/attendees", e.ID), ownerID, nil)
	var attendees []struct {
		ID       uint   `json:"id"`
		FullName string `json:"full_name"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &attendees); err != nil || len(attendees) != 1 || attendees[0].ID != guest.ID {
		t.Fatalf("attendees: %s", w.Body.String())
	}

	for i := 0; i < 2; i++ {
		w = f.do(http.MethodDelete, fmt.Sprintf("/events/%d/leave", e.ID), guestID, nil)
		if w.Code != http.StatusNoContent {
			t.Fatalf("leave: expected 204, got %d", w.Code)
		}
	}
	if n := f.attendeeCount(e.ID); n != 0 {
		t.Fatalf("attendees = %d", n)
	}

	if w := f.do(http.MethodPost, "/events/999/signup", guestID, nil); w.Code != http.StatusNotFound {
		t.Fatalf("signup missing event: expected 404, got %d", w.Code)
	}
}
