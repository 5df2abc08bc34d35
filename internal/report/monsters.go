package report

import (
	"strconv"
	"strings"

	"github.com/preston-bernstein/match-thread-service/internal/domain/matches"
)

// MonsterKill is an elite monster kill annotated with its position among all elite
// monster kills of the match.
type MonsterKill struct {
	matches.Event
	Order int
}

// EliteMonsterKills filters the timeline to elite monster kills and numbers them 1..n in
// timeline order. Numbering spans both teams.
func EliteMonsterKills(tl matches.Timeline) []MonsterKill {
	var kills []MonsterKill
	for _, ev := range tl.Events() {
		if ev.Type != matches.EventEliteMonsterKill {
			continue
		}
		kills = append(kills, MonsterKill{Event: ev, Order: len(kills) + 1})
	}
	return kills
}

// SplitByTeam partitions kills by killer: participants 1-5 are team one, 6-10 team two.
// Kills without a participant killer (id 0 for minions or turrets) belong to neither,
// so they show up in no objectives row.
func SplitByTeam(kills []MonsterKill) (teamOne, teamTwo []MonsterKill) {
	for _, k := range kills {
		switch {
		case k.KillerID >= 1 && k.KillerID <= matches.TeamSize:
			teamOne = append(teamOne, k)
		case k.KillerID > matches.TeamSize && k.KillerID <= 2*matches.TeamSize:
			teamTwo = append(teamTwo, k)
		}
	}
	return teamOne, teamTwo
}

// FormatMonsters renders kills as "{glyph}^{order} " each.
func FormatMonsters(kills []MonsterKill) string {
	var b strings.Builder
	for _, k := range kills {
		b.WriteString(MonsterGlyph(k.Event))
		b.WriteByte('^')
		b.WriteString(strconv.Itoa(k.Order))
		b.WriteByte(' ')
	}
	return b.String()
}

// EpicMonsters returns the rendered monster columns for both teams.
func EpicMonsters(tl matches.Timeline) (teamOne, teamTwo string) {
	one, two := SplitByTeam(EliteMonsterKills(tl))
	return FormatMonsters(one), FormatMonsters(two)
}
