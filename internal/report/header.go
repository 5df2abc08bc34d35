package report

import (
	"fmt"
	"math"

	"github.com/preston-bernstein/match-thread-service/internal/domain/matches"
)

// Winner returns the first team when it won, otherwise the second.
func Winner(teamOne, teamTwo matches.Team) matches.Team {
	if teamOne.Won() {
		return teamOne
	}
	return teamTwo
}

// Header renders the thread title linking to the match history and the winner line.
func Header(teamOne, teamTwo matches.Team, durationSeconds int, historyURL string) string {
	minutes := math.Round(float64(durationSeconds) / 60)
	return fmt.Sprintf("### MATCH: [%s vs. %s](%s)\n**Winner: %s** in %dm  \n",
		teamOne.Name, teamTwo.Name, historyURL, Winner(teamOne, teamTwo).Name, int(minutes))
}
