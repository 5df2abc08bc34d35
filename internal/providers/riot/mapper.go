package riot

import (
	"fmt"

	"github.com/preston-bernstein/match-thread-service/internal/domain"
	"github.com/preston-bernstein/match-thread-service/internal/domain/matches"
)

func mapMatch(raw matchPayload) (matches.Match, error) {
	if err := validateMatch(raw); err != nil {
		return matches.Match{}, err
	}

	m := matches.Match{
		GameID:          raw.GameID,
		DurationSeconds: raw.GameDuration,
		Participants:    make([]matches.Participant, 0, len(raw.Participants)),
		Identities:      make([]matches.Identity, 0, len(raw.ParticipantIdentities)),
	}
	for i, t := range raw.Teams {
		m.Teams[i] = mapTeam(t)
	}
	for _, p := range raw.Participants {
		m.Participants = append(m.Participants, mapParticipant(p))
	}
	for _, id := range raw.ParticipantIdentities {
		m.Identities = append(m.Identities, matches.Identity{
			ParticipantID: id.ParticipantID,
			SummonerName:  id.Player.SummonerName,
		})
	}
	return m, nil
}

func mapTeam(raw teamPayload) matches.Team {
	t := matches.Team{
		ID:         raw.TeamID,
		Outcome:    mapOutcome(raw.Win),
		TowerKills: intOrZero(raw.TowerKills),
		Bans:       make([]matches.Ban, 0, len(raw.Bans)),
	}
	for _, b := range raw.Bans {
		t.Bans = append(t.Bans, matches.Ban{ChampionID: b.ChampionID, PickTurn: b.PickTurn})
	}
	return t
}

// mapOutcome is the only place the upstream win flag is interpreted.
func mapOutcome(flag string) matches.Outcome {
	if flag == winFlag {
		return matches.OutcomeWin
	}
	return matches.OutcomeLoss
}

func mapParticipant(raw participantPayload) matches.Participant {
	return matches.Participant{
		ID:         raw.ParticipantID,
		TeamID:     raw.TeamID,
		ChampionID: raw.ChampionID,
		Stats: matches.Stats{
			Kills:      intOrZero(raw.Stats.Kills),
			Deaths:     intOrZero(raw.Stats.Deaths),
			Assists:    intOrZero(raw.Stats.Assists),
			GoldEarned: intOrZero(raw.Stats.GoldEarned),
		},
	}
}

func validateMatch(raw matchPayload) error {
	if len(raw.Teams) != 2 {
		return malformed("expected 2 teams, got %d", len(raw.Teams))
	}
	if len(raw.Participants) != 2*matches.TeamSize {
		return malformed("expected %d participants, got %d", 2*matches.TeamSize, len(raw.Participants))
	}

	for i, p := range raw.Participants {
		team := raw.Teams[i/matches.TeamSize]
		if p.TeamID != 0 && team.TeamID != 0 && p.TeamID != team.TeamID {
			return malformed("participant %d at position %d is on team %d, expected %d", p.ParticipantID, i, p.TeamID, team.TeamID)
		}
	}

	named := make(map[int]struct{}, len(raw.ParticipantIdentities))
	for _, id := range raw.ParticipantIdentities {
		named[id.ParticipantID] = struct{}{}
	}
	for _, p := range raw.Participants {
		if _, ok := named[p.ParticipantID]; !ok {
			return malformed("participant %d has no identity", p.ParticipantID)
		}
	}
	return nil
}

func mapTimeline(raw timelinePayload) matches.Timeline {
	tl := matches.Timeline{Frames: make([]matches.Frame, 0, len(raw.Frames))}
	for _, f := range raw.Frames {
		frame := matches.Frame{Timestamp: f.Timestamp, Events: make([]matches.Event, 0, len(f.Events))}
		for _, e := range f.Events {
			frame.Events = append(frame.Events, matches.Event{
				Type:           e.Type,
				Timestamp:      e.Timestamp,
				KillerID:       e.KillerID,
				MonsterType:    e.MonsterType,
				MonsterSubType: e.MonsterSubType,
			})
		}
		tl.Frames = append(tl.Frames, frame)
	}
	return tl
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrMalformedRecord, fmt.Sprintf(format, args...))
}
