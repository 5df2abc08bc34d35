package report

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/match-thread-service/internal/domain/champions"
	"github.com/preston-bernstein/match-thread-service/internal/domain/matches"
)

const objectivesHeader = "||Bans 1|Bans 2|[G](#mt-gold)|[T](#mt-towers)|D/B|\n" +
	"|:--|:--:|:--:|:--:|:--:|:--:|\n"

// Objectives renders the bans/gold/towers/monsters table for both teams.
// Team names must already be set on the match teams.
func Objectives(m matches.Match, tl matches.Timeline, dir champions.Directory) (string, error) {
	monstersOne, monstersTwo := EpicMonsters(tl)

	rowOne, err := objectivesRow(m.Teams[0], m.TeamOnePlayers(), monstersOne, dir)
	if err != nil {
		return "", err
	}
	rowTwo, err := objectivesRow(m.Teams[1], m.TeamTwoPlayers(), monstersTwo, dir)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(objectivesHeader)
	b.WriteString(rowOne)
	b.WriteByte('\n')
	b.WriteString(rowTwo)
	return b.String(), nil
}

func objectivesRow(team matches.Team, players []matches.Participant, monsters string, dir champions.Directory) (string, error) {
	bans, err := FormatBans(team.Bans, dir)
	if err != nil {
		return "", fmt.Errorf("bans for %s: %w", team.Name, err)
	}
	return fmt.Sprintf("|**%s**|%s|%s|%d|%s|", team.Name, bans, TeamGold(players), team.TowerKills, monsters), nil
}
