package report

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/match-thread-service/internal/domain/champions"
	"github.com/preston-bernstein/match-thread-service/internal/domain/matches"
)

const scoreboardAlign = "\n|--:|--:|:--:|:--|:--|\n"

// Scoreboard renders the per-role head-to-head table. Rows pair the participants at the
// same index of each half, TOP first.
func Scoreboard(m matches.Match, players PlayerDirectory, dir champions.Directory) (string, error) {
	teamOne, teamTwo := m.TeamOnePlayers(), m.TeamTwoPlayers()

	var b strings.Builder
	fmt.Fprintf(&b, "|**%s**|%s|[vs](#mt-kills)|%s|**%s**|",
		m.Teams[0].Name, TeamKDA(teamOne), TeamKDA(teamTwo), m.Teams[1].Name)
	b.WriteString(scoreboardAlign)

	for i, one := range teamOne {
		two := teamTwo[i]
		left, err := playerCell(one, players, dir)
		if err != nil {
			return "", err
		}
		right, err := playerCell(two, players, dir)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "|%s %s|%s|%s|%s|%s %s|\n",
			left.name, left.champion, PlayerKDA(one), Role(i), PlayerKDA(two), right.champion, right.name)
	}
	return b.String(), nil
}

type cell struct {
	name     string
	champion string
}

func playerCell(p matches.Participant, players PlayerDirectory, dir champions.Directory) (cell, error) {
	champ, err := championLink(dir, p.ChampionID)
	if err != nil {
		return cell{}, fmt.Errorf("participant %d: %w", p.ID, err)
	}
	name, err := players.Name(p.ID)
	if err != nil {
		return cell{}, err
	}
	return cell{name: name, champion: champ}, nil
}
