package report

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/match-thread-service/internal/domain"
	"github.com/preston-bernstein/match-thread-service/internal/domain/matches"
)

// PlayerDirectory resolves participant ids to the names shown in the thread.
type PlayerDirectory struct {
	identities []matches.Identity
}

// NewPlayerDirectory builds a directory over the match identities. The slice is copied.
func NewPlayerDirectory(identities []matches.Identity) PlayerDirectory {
	cp := make([]matches.Identity, len(identities))
	copy(cp, identities)
	return PlayerDirectory{identities: cp}
}

// Name returns the summoner name without its leading team tag ("FNC Bwipo" -> "Bwipo").
func (d PlayerDirectory) Name(participantID int) (string, error) {
	for _, id := range d.identities {
		if id.ParticipantID == participantID {
			fields := strings.Fields(id.SummonerName)
			if len(fields) == 0 {
				return "", nil
			}
			return strings.Join(fields[1:], " "), nil
		}
	}
	return "", fmt.Errorf("participant %d: %w", participantID, domain.ErrNotFound)
}

// TeamTag returns the team tag of the identity at the given position.
func (d PlayerDirectory) TeamTag(index int) (string, error) {
	if index < 0 || index >= len(d.identities) {
		return "", fmt.Errorf("identity index %d of %d: %w", index, len(d.identities), domain.ErrNotFound)
	}
	return teamTag(d.identities[index].SummonerName), nil
}

func teamTag(summonerName string) string {
	fields := strings.Fields(summonerName)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
