package fixture

import (
	"context"

	"github.com/preston-bernstein/match-thread-service/internal/domain/champions"
	"github.com/preston-bernstein/match-thread-service/internal/domain/matches"
)

const fixtureVersion = "fixture"

// Provider returns a static match, timeline and champion directory useful for local runs
// and tests. URLs are ignored.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchChampions returns the fixture champion directory.
func (p *Provider) FetchChampions(ctx context.Context) (champions.Directory, error) {
	_ = ctx
	return Champions(), nil
}

// FetchMatch returns the fixture match regardless of url.
func (p *Provider) FetchMatch(ctx context.Context, url string) (matches.Match, error) {
	_ = ctx
	_ = url
	return Match(), nil
}

// FetchTimeline returns the fixture timeline regardless of url.
func (p *Provider) FetchTimeline(ctx context.Context, url string) (matches.Timeline, error) {
	_ = ctx
	_ = url
	return Timeline(), nil
}

// Champions returns every champion the fixture match references.
func Champions() champions.Directory {
	return champions.NewDirectory(fixtureVersion, ChampionList())
}

// ChampionList returns the raw entries behind Champions.
func ChampionList() []champions.Champion {
	return []champions.Champion{
		{Key: 266, ID: "Aatrox", Name: "Aatrox"},
		{Key: 64, ID: "LeeSin", Name: "Lee Sin"},
		{Key: 134, ID: "Syndra", Name: "Syndra"},
		{Key: 21, ID: "MissFortune", Name: "Miss Fortune"},
		{Key: 412, ID: "Thresh", Name: "Thresh"},
		{Key: 516, ID: "Ornn", Name: "Ornn"},
		{Key: 60, ID: "Elise", Name: "Elise"},
		{Key: 268, ID: "Azir", Name: "Azir"},
		{Key: 145, ID: "Kaisa", Name: "Kai'Sa"},
		{Key: 111, ID: "Nautilus", Name: "Nautilus"},
		{Key: 7, ID: "Leblanc", Name: "LeBlanc"},
		{Key: 84, ID: "Akali", Name: "Akali"},
		{Key: 58, ID: "Renekton", Name: "Renekton"},
		{Key: 79, ID: "Gragas", Name: "Gragas"},
		{Key: 68, ID: "Rumble", Name: "Rumble"},
		{Key: 13, ID: "Ryze", Name: "Ryze"},
		{Key: 429, ID: "Kalista", Name: "Kalista"},
		{Key: 517, ID: "Sylas", Name: "Sylas"},
		{Key: 5, ID: "XinZhao", Name: "Xin Zhao"},
		{Key: 223, ID: "TahmKench", Name: "Tahm Kench"},
	}
}

// Match returns a deterministic FNC vs G2 match won by FNC in 32 minutes.
func Match() matches.Match {
	return matches.Match{
		GameID:          1001,
		DurationSeconds: 1935,
		Teams: [2]matches.Team{
			{
				ID:         100,
				Outcome:    matches.OutcomeWin,
				TowerKills: 9,
				Bans: []matches.Ban{
					{ChampionID: 7, PickTurn: 1},
					{ChampionID: 84, PickTurn: 3},
					{ChampionID: 58, PickTurn: 5},
					{ChampionID: 79, PickTurn: 8},
					{ChampionID: 68, PickTurn: 10},
				},
			},
			{
				ID:         200,
				Outcome:    matches.OutcomeLoss,
				TowerKills: 2,
				Bans: []matches.Ban{
					{ChampionID: 13, PickTurn: 2},
					{ChampionID: 429, PickTurn: 4},
					{ChampionID: 517, PickTurn: 6},
					{ChampionID: 5, PickTurn: 7},
					{ChampionID: 223, PickTurn: 9},
				},
			},
		},
		Participants: []matches.Participant{
			participant(1, 100, 266, 3, 1, 2, 12000),
			participant(2, 100, 64, 0, 0, 1, 8500),
			participant(3, 100, 134, 2, 2, 0, 9000),
			participant(4, 100, 21, 1, 0, 0, 15000),
			participant(5, 100, 412, 4, 1, 3, 10500),
			participant(6, 200, 516, 1, 2, 0, 9000),
			participant(7, 200, 60, 0, 3, 2, 7000),
			participant(8, 200, 268, 2, 2, 1, 8500),
			participant(9, 200, 145, 1, 1, 1, 11000),
			participant(10, 200, 111, 0, 2, 1, 6000),
		},
		Identities: []matches.Identity{
			{ParticipantID: 1, SummonerName: "FNC Bwipo"},
			{ParticipantID: 2, SummonerName: "FNC Selfmade"},
			{ParticipantID: 3, SummonerName: "FNC Nisqy"},
			{ParticipantID: 4, SummonerName: "FNC Rekkles"},
			{ParticipantID: 5, SummonerName: "FNC Hylissang"},
			{ParticipantID: 6, SummonerName: "G2 Wunder"},
			{ParticipantID: 7, SummonerName: "G2 Jankos"},
			{ParticipantID: 8, SummonerName: "G2 Caps"},
			{ParticipantID: 9, SummonerName: "G2 Perkz"},
			{ParticipantID: 10, SummonerName: "G2 Mikyx"},
		},
	}
}

// Timeline returns elite monster kills split across both teams, mixed with unrelated events.
func Timeline() matches.Timeline {
	return matches.Timeline{Frames: []matches.Frame{
		{Timestamp: 0},
		{Timestamp: 360000, Events: []matches.Event{
			{Type: "CHAMPION_KILL", Timestamp: 301000, KillerID: 2},
			{Type: matches.EventEliteMonsterKill, Timestamp: 352000, KillerID: 2, MonsterType: matches.MonsterDragon, MonsterSubType: "FIRE_DRAGON"},
		}},
		{Timestamp: 600000, Events: []matches.Event{
			{Type: "ITEM_PURCHASED", Timestamp: 410000},
			{Type: matches.EventEliteMonsterKill, Timestamp: 585000, KillerID: 7, MonsterType: matches.MonsterRiftHerald},
		}},
		{Timestamp: 1200000, Events: []matches.Event{
			{Type: matches.EventEliteMonsterKill, Timestamp: 910000, KillerID: 2, MonsterType: matches.MonsterDragon, MonsterSubType: "AIR_DRAGON"},
			{Type: matches.EventEliteMonsterKill, Timestamp: 1190000, KillerID: 7, MonsterType: matches.MonsterDragon, MonsterSubType: "WATER_DRAGON"},
		}},
		{Timestamp: 1800000, Events: []matches.Event{
			{Type: matches.EventEliteMonsterKill, Timestamp: 1555000, KillerID: 2, MonsterType: matches.MonsterBaronNashor},
		}},
	}}
}

func participant(id, teamID, championID, kills, deaths, assists, gold int) matches.Participant {
	return matches.Participant{
		ID:         id,
		TeamID:     teamID,
		ChampionID: championID,
		Stats: matches.Stats{
			Kills:      kills,
			Deaths:     deaths,
			Assists:    assists,
			GoldEarned: gold,
		},
	}
}
