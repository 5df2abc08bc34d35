package report

import (
	"strings"

	"github.com/preston-bernstein/match-thread-service/internal/domain/champions"
	"github.com/preston-bernstein/match-thread-service/internal/domain/matches"
)

// Pick turns that close each team's first ban phase. The ban on these turns is followed by a
// column divider so the two phases land in separate table cells.
const (
	firstPhaseEndBlue = 5
	firstPhaseEndRed  = 6
)

// FormatBans renders a team's bans in the given order.
func FormatBans(bans []matches.Ban, dir champions.Directory) (string, error) {
	var b strings.Builder
	for _, ban := range bans {
		link, err := championLink(dir, ban.ChampionID)
		if err != nil {
			return "", err
		}
		b.WriteString(link)
		if ban.PickTurn == firstPhaseEndBlue || ban.PickTurn == firstPhaseEndRed {
			b.WriteByte('|')
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String(), nil
}
