package report

import (
	"fmt"
	"strconv"

	"github.com/preston-bernstein/match-thread-service/internal/domain/matches"
)

// PlayerKDA renders a single participant's kills-deaths-assists.
func PlayerKDA(p matches.Participant) string {
	return formatKDA(p.Stats.Kills, p.Stats.Deaths, p.Stats.Assists)
}

// TeamKDA sums kills, deaths and assists across a team's participants.
func TeamKDA(players []matches.Participant) string {
	var kills, deaths, assists int
	for _, p := range players {
		kills += p.Stats.Kills
		deaths += p.Stats.Deaths
		assists += p.Stats.Assists
	}
	return formatKDA(kills, deaths, assists)
}

// TeamGold renders total gold in thousands with one decimal, e.g. "55.0k".
// Rounding follows the binary value of total/1000: 55050 is just below 55.05 and
// renders "55.0k". Exact ties (totals ending in 250 or 750) round up.
func TeamGold(players []matches.Participant) string {
	total := 0
	for _, p := range players {
		total += p.Stats.GoldEarned
	}
	if total >= 0 && (total%1000 == 250 || total%1000 == 750) {
		tenths := total/100 + 1
		return fmt.Sprintf("%d.%dk", tenths/10, tenths%10)
	}
	return strconv.FormatFloat(float64(total)/1000, 'f', 1, 64) + "k"
}

func formatKDA(kills, deaths, assists int) string {
	return fmt.Sprintf("%d-%d-%d", kills, deaths, assists)
}
