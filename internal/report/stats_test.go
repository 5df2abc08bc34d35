package report

import (
	"testing"

	"github.com/preston-bernstein/match-thread-service/internal/domain/matches"
)

func players(stats ...matches.Stats) []matches.Participant {
	out := make([]matches.Participant, len(stats))
	for i, s := range stats {
		out[i] = matches.Participant{ID: i + 1, Stats: s}
	}
	return out
}

func TestTeamKDATreatsMissingAsZero(t *testing.T) {
	team := players(
		matches.Stats{Kills: 3, Deaths: 1, Assists: 2},
		matches.Stats{Kills: 0, Assists: 1},
		matches.Stats{Kills: 2, Deaths: 2},
		matches.Stats{Kills: 1},
		matches.Stats{Kills: 4, Deaths: 1, Assists: 3},
	)

	if got := TeamKDA(team); got != "10-4-6" {
		t.Fatalf("expected 10-4-6, got %s", got)
	}
}

func TestPlayerKDA(t *testing.T) {
	p := matches.Participant{Stats: matches.Stats{Kills: 7, Assists: 11}}
	if got := PlayerKDA(p); got != "7-0-11" {
		t.Fatalf("expected 7-0-11, got %s", got)
	}
}

func TestTeamGold(t *testing.T) {
	cases := []struct {
		gold []int
		want string
	}{
		{[]int{12000, 8500, 9000, 15000, 10500}, "55.0k"},
		{[]int{9000, 7000, 8500, 11000, 6000}, "41.5k"},
		{[]int{12250, 0, 0, 0, 0}, "12.3k"},
		{[]int{12249, 0, 0, 0, 0}, "12.2k"},
		{[]int{0, 0, 0, 0, 0}, "0.0k"},
		{[]int{999}, "1.0k"},
	}

	for _, tc := range cases {
		stats := make([]matches.Stats, len(tc.gold))
		for i, g := range tc.gold {
			stats[i] = matches.Stats{GoldEarned: g}
		}
		if got := TeamGold(players(stats...)); got != tc.want {
			t.Fatalf("gold %v: expected %s, got %s", tc.gold, tc.want, got)
		}
	}
}

func TestTeamGoldRoundsBinaryValue(t *testing.T) {
	cases := []struct {
		total int
		want  string
	}{
		{55050, "55.0k"},
		{12350, "12.3k"},
		{1450, "1.4k"},
		{41550, "41.5k"},
		{60150, "60.1k"},
		{2250, "2.3k"},
		{2750, "2.8k"},
		{10250, "10.3k"},
		{49750, "49.8k"},
		{999, "1.0k"},
		{1000, "1.0k"},
	}

	for _, tc := range cases {
		got := TeamGold(players(matches.Stats{GoldEarned: tc.total}))
		if got != tc.want {
			t.Fatalf("gold %d: expected %s, got %s", tc.total, tc.want, got)
		}
	}
}
