package handler

import (
	"sort"

	"mondaymagic/backend/internal/models"
)

// PlayerStatsResponse is a player's aggregated win/loss record.
type PlayerStatsResponse struct {
	UserID         string                   `json:"user_id"`
	DisplayName    string                   `json:"display_name"`
	TotalGames     int                      `json:"total_games"`
	Wins           int                      `json:"wins"`
	Losses         int                      `json:"losses"`
	WinRate        float64                  `json:"win_rate"`
	CommanderStats []CommanderStatsResponse `json:"commander_stats"`
}

// CommanderStatsResponse is the per-commander slice of a player's record.
type CommanderStatsResponse struct {
	CommanderID     uint    `json:"commander_id"`
	CommanderName   string  `json:"commander_name"`
	CommanderColors string  `json:"commander_colors,omitempty"`
	GamesPlayed     int     `json:"games_played"`
	Wins            int     `json:"wins"`
	WinRate         float64 `json:"win_rate"`
}

// winRate is wins over total as a percentage, defined as exactly 0 for an
// empty record rather than a division error.
func winRate(wins, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(wins) / float64(total) * 100
}

// computePlayerStats aggregates a player's results. The rows must already be
// filtered to completed games (and the requested playgroup, if any); their
// order determines the encounter order used to break ties in the commander
// breakdown.
func computePlayerStats(userID, displayName string, rows []models.GamePlayer) PlayerStatsResponse {
	totalGames := len(rows)
	wins := 0
	for _, row := range rows {
		if row.IsWinner() {
			wins++
		}
	}

	// Group rows with a commander by commander, keeping first-encounter order.
	byCommander := make(map[uint]*CommanderStatsResponse)
	order := []uint{}
	for _, row := range rows {
		if row.CommanderID == nil || row.Commander == nil {
			continue
		}
		stats, ok := byCommander[*row.CommanderID]
		if !ok {
			stats = &CommanderStatsResponse{
				CommanderID:     *row.CommanderID,
				CommanderName:   row.Commander.Name,
				CommanderColors: row.Commander.Colors,
			}
			byCommander[*row.CommanderID] = stats
			order = append(order, *row.CommanderID)
		}
		stats.GamesPlayed++
		if row.IsWinner() {
			stats.Wins++
		}
	}

	commanderStats := make([]CommanderStatsResponse, 0, len(order))
	for _, commanderID := range order {
		stats := byCommander[commanderID]
		stats.WinRate = winRate(stats.Wins, stats.GamesPlayed)
		commanderStats = append(commanderStats, *stats)
	}

	// Most-played first; the stable sort keeps encounter order on ties.
	sort.SliceStable(commanderStats, func(i, j int) bool {
		return commanderStats[i].GamesPlayed > commanderStats[j].GamesPlayed
	})

	return PlayerStatsResponse{
		UserID:         userID,
		DisplayName:    displayName,
		TotalGames:     totalGames,
		Wins:           wins,
		Losses:         totalGames - wins,
		WinRate:        winRate(wins, totalGames),
		CommanderStats: commanderStats,
	}
}
