package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"mondaymagic/backend/internal/database"
	"mondaymagic/backend/internal/models"

	"github.com/gin-gonic/gin"
)

type gameResponse struct {
	ID            uint   `json:"id"`
	PlaygroupID   uint   `json:"playgroup_id"`
	PlaygroupName string `json:"playgroup_name"`
	IsCompleted   bool   `json:"is_completed"`
	Players       []struct {
		UserID          string `json:"user_id"`
		DisplayName     string `json:"display_name"`
		CommanderName   string `json:"commander_name"`
		CommanderColors string `json:"commander_colors"`
		Position        int    `json:"position"`
		IsWinner        bool   `json:"is_winner"`
	} `json:"players"`
}

func recordGame(t *testing.T, r *gin.Engine, token string, playgroupID uint, players []map[string]any) gameResponse {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/v1/games", token, map[string]any{
		"playgroup_id": playgroupID,
		"players":      players,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("record game expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var game gameResponse
	decodeBody(t, w, &game)
	return game
}

func TestRecordGameReturnsHydratedResults(t *testing.T) {
	r := setupEnv(t)
	owner := createUser(t, "owner")
	second := createUser(t, "second")
	third := createUser(t, "third")
	token := authToken(t, owner)
	playgroupID := createPlaygroup(t, r, token, "The Table")

	game := recordGame(t, r, token, playgroupID, []map[string]any{
		{"user_id": second.ID, "position": 2, "commander_id": 1},
		{"user_id": owner.ID, "position": 1, "commander_id": 2},
		{"user_id": third.ID, "position": 3},
	})

	if !game.IsCompleted {
		t.Fatal("recorded game should be completed immediately")
	}
	if game.PlaygroupName != "The Table" {
		t.Fatalf("playgroup name not resolved: %+v", game)
	}
	if len(game.Players) != 3 {
		t.Fatalf("expected 3 player entries, got %d", len(game.Players))
	}

	// Players come back ordered by position, winner first.
	for i, player := range game.Players {
		if player.Position != i+1 {
			t.Fatalf("players not ordered by position: %+v", game.Players)
		}
		if player.IsWinner != (player.Position == 1) {
			t.Fatalf("is_winner must mirror position==1: %+v", player)
		}
	}
	if game.Players[0].UserID != owner.ID {
		t.Fatalf("winner should be the position-1 player: %+v", game.Players[0])
	}
	if game.Players[1].CommanderName != "Atraxa, Praetors' Voice" || game.Players[1].CommanderColors != "WUBG" {
		t.Fatalf("commander not resolved: %+v", game.Players[1])
	}
	if game.Players[2].CommanderName != "" {
		t.Fatalf("player without commander should have no commander name: %+v", game.Players[2])
	}

	// Fetching by id returns the same N entries.
	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/games/%d", game.ID), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get game expected 200, got %d", w.Code)
	}
	var fetched gameResponse
	decodeBody(t, w, &fetched)
	if len(fetched.Players) != 3 {
		t.Fatalf("fetch returned %d players, want 3", len(fetched.Players))
	}
}

func TestRecordGameRequiresMembership(t *testing.T) {
	r := setupEnv(t)
	owner := createUser(t, "owner")
	stranger := createUser(t, "stranger")
	playgroupID := createPlaygroup(t, r, authToken(t, owner), "The Table")

	// Non-members and removed members get the same forbidden answer as for a
	// playgroup that does not exist at all.
	payload := map[string]any{
		"playgroup_id": playgroupID,
		"players":      []map[string]any{{"user_id": stranger.ID, "position": 1}},
	}
	real := doJSON(t, r, http.MethodPost, "/api/v1/games", authToken(t, stranger), payload)
	payload["playgroup_id"] = 99999
	fake := doJSON(t, r, http.MethodPost, "/api/v1/games", authToken(t, stranger), payload)
	if real.Code != http.StatusForbidden || fake.Code != http.StatusForbidden {
		t.Fatalf("expected 403/403, got %d/%d", real.Code, fake.Code)
	}
	if real.Body.String() != fake.Body.String() {
		t.Fatal("membership failure must not leak playgroup existence")
	}

	var games int64
	database.DB.Model(&models.Game{}).Count(&games)
	if games != 0 {
		t.Fatalf("no game should be written, found %d", games)
	}
}

func TestRecordGameAllowsNonMemberPlayersAndTies(t *testing.T) {
	r := setupEnv(t)
	owner := createUser(t, "owner")
	guestB := createUser(t, "guestb")
	guestC := createUser(t, "guestc")
	token := authToken(t, owner)
	playgroupID := createPlaygroup(t, r, token, "The Table")

	// Guests are not playgroup members; only the recorder must be.
	// Two players tied at position 2 are stored verbatim.
	game := recordGame(t, r, token, playgroupID, []map[string]any{
		{"user_id": owner.ID, "position": 1},
		{"user_id": guestB.ID, "position": 2},
		{"user_id": guestC.ID, "position": 2},
	})

	if len(game.Players) != 3 {
		t.Fatalf("expected 3 players, got %d", len(game.Players))
	}
	tied := 0
	for _, player := range game.Players {
		if player.Position == 2 {
			tied++
			if player.IsWinner {
				t.Fatalf("tied second place is not a winner: %+v", player)
			}
		}
	}
	if tied != 2 {
		t.Fatalf("expected both tied entries preserved, got %d", tied)
	}

	// Both tied players count this game as a loss.
	for _, guest := range []models.User{guestB, guestC} {
		w := doJSON(t, r, http.MethodGet, "/api/v1/games/stats/"+guest.ID, "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("stats expected 200, got %d", w.Code)
		}
		var stats struct {
			TotalGames int `json:"total_games"`
			Wins       int `json:"wins"`
			Losses     int `json:"losses"`
		}
		decodeBody(t, w, &stats)
		if stats.TotalGames != 1 || stats.Wins != 0 || stats.Losses != 1 {
			t.Fatalf("guest %s stats wrong: %s", guest.UserName, w.Body.String())
		}
	}
}

func TestGetGameHidesExistenceFromNonMembers(t *testing.T) {
	r := setupEnv(t)
	owner := createUser(t, "owner")
	stranger := createUser(t, "stranger")
	token := authToken(t, owner)
	playgroupID := createPlaygroup(t, r, token, "The Table")
	game := recordGame(t, r, token, playgroupID, []map[string]any{
		{"user_id": owner.ID, "position": 1},
	})

	forStranger := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/games/%d", game.ID), authToken(t, stranger), nil)
	forMissing := doJSON(t, r, http.MethodGet, "/api/v1/games/99999", authToken(t, stranger), nil)
	if forStranger.Code != http.StatusNotFound || forMissing.Code != http.StatusNotFound {
		t.Fatalf("expected 404/404, got %d/%d", forStranger.Code, forMissing.Code)
	}
	if forStranger.Body.String() != forMissing.Body.String() {
		t.Fatal("forbidden and absent games must be indistinguishable")
	}
}

func TestGetPlaygroupGamesNewestFirst(t *testing.T) {
	r := setupEnv(t)
	owner := createUser(t, "owner")
	stranger := createUser(t, "stranger")
	token := authToken(t, owner)
	playgroupID := createPlaygroup(t, r, token, "The Table")

	older := doJSON(t, r, http.MethodPost, "/api/v1/games", token, map[string]any{
		"playgroup_id": playgroupID,
		"game_date":    "2024-03-04T19:00:00Z",
		"players":      []map[string]any{{"user_id": owner.ID, "position": 1}},
	})
	newer := doJSON(t, r, http.MethodPost, "/api/v1/games", token, map[string]any{
		"playgroup_id": playgroupID,
		"game_date":    "2024-03-11T19:00:00Z",
		"players":      []map[string]any{{"user_id": owner.ID, "position": 1}},
	})
	if older.Code != http.StatusCreated || newer.Code != http.StatusCreated {
		t.Fatalf("expected 201/201, got %d/%d", older.Code, newer.Code)
	}

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/games/playgroup/%d", playgroupID), token, nil)
	var games []gameResponse
	decodeBody(t, w, &games)
	if len(games) != 2 {
		t.Fatalf("expected 2 games, got %d", len(games))
	}
	var newerGame gameResponse
	decodeBody(t, newer, &newerGame)
	if games[0].ID != newerGame.ID {
		t.Fatalf("games should be newest first: %s", w.Body.String())
	}

	// Non-members see an empty list, not an error.
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/games/playgroup/%d", playgroupID), authToken(t, stranger), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var none []gameResponse
	decodeBody(t, w, &none)
	if len(none) != 0 {
		t.Fatalf("non-member should see no games, got %d", len(none))
	}
}

func TestCompleteGameMemberGated(t *testing.T) {
	r := setupEnv(t)
	owner := createUser(t, "owner")
	stranger := createUser(t, "stranger")
	token := authToken(t, owner)
	playgroupID := createPlaygroup(t, r, token, "The Table")
	game := recordGame(t, r, token, playgroupID, []map[string]any{
		{"user_id": owner.ID, "position": 1},
	})

	completePath := fmt.Sprintf("/api/v1/games/%d/complete", game.ID)

	// Idempotent for members: already completed, still succeeds.
	if w := doJSON(t, r, http.MethodPut, completePath, token, nil); w.Code != http.StatusOK {
		t.Fatalf("member complete expected 200, got %d", w.Code)
	}
	// Fails quietly for non-members and for unknown games.
	if w := doJSON(t, r, http.MethodPut, completePath, authToken(t, stranger), nil); w.Code != http.StatusBadRequest {
		t.Fatalf("stranger complete expected 400, got %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodPut, "/api/v1/games/99999/complete", token, nil); w.Code != http.StatusBadRequest {
		t.Fatalf("missing game complete expected 400, got %d", w.Code)
	}
}

func TestCommanderCatalogSeeded(t *testing.T) {
	r := setupEnv(t)
	user := createUser(t, "viewer")

	w := doJSON(t, r, http.MethodGet, "/api/v1/commanders", authToken(t, user), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var commanders []struct {
		Name   string `json:"name"`
		Colors string `json:"colors"`
	}
	decodeBody(t, w, &commanders)
	if len(commanders) != 5 {
		t.Fatalf("expected 5 seeded commanders, got %d", len(commanders))
	}
	// Ordered by name.
	if commanders[0].Name != "Atraxa, Praetors' Voice" {
		t.Fatalf("catalog not ordered by name: %s", w.Body.String())
	}
}
