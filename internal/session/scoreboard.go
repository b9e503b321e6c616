package session

import (
	"sort"
	"strconv"

	"arenadrift/internal/protocol"
)

// ScoreboardSize is the number of ranked rows kept on screen.
const ScoreboardSize = 8

// updateScoreboard re-ranks all players by best score and pushes only the
// rows whose displayed text actually changed, so a steady leaderboard causes
// no view churn.
func (s *Session) updateScoreboard(players []protocol.PlayerSnapshot) {
	ranked := make([]protocol.PlayerSnapshot, len(players))
	copy(ranked, players)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].BestScore > ranked[j].BestScore
	})

	for rank := 0; rank < ScoreboardSize; rank++ {
		var name string
		var score float64
		if rank < len(ranked) {
			name = ranked[rank].Name
			score = ranked[rank].BestScore
		}
		// The key carries the score at the precision the view displays,
		// so decimal-only changes never push a visually identical row.
		row := name + "\x00" + strconv.FormatFloat(score, 'f', 0, 64)
		if row == s.rows[rank] {
			continue
		}
		s.rows[rank] = row
		s.scoreboard.Update(rank, name, score)
	}
}
