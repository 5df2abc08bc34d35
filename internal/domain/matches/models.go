package matches

// Outcome is the two-valued result of a team in a finished match.
type Outcome int

const (
	OutcomeLoss Outcome = iota
	OutcomeWin
)

func (o Outcome) String() string {
	if o == OutcomeWin {
		return "WIN"
	}
	return "LOSS"
}

// TeamSize is the number of participants per side; only 5v5 games are supported.
const TeamSize = 5

// Ban is a champion excluded during the draft, tagged with its draft turn (1-10).
type Ban struct {
	ChampionID int `json:"championId"`
	PickTurn   int `json:"pickTurn"`
}

// Team captures the per-side objectives of a match.
type Team struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Outcome    Outcome `json:"outcome"`
	TowerKills int     `json:"towerKills"`
	Bans       []Ban   `json:"bans"`
}

// Won reports whether the team won the match.
func (t Team) Won() bool {
	return t.Outcome == OutcomeWin
}

// Stats holds the end-of-game totals for one participant. Fields the provider omits are zero.
type Stats struct {
	Kills      int `json:"kills"`
	Deaths     int `json:"deaths"`
	Assists    int `json:"assists"`
	GoldEarned int `json:"goldEarned"`
}

// Participant is one of the ten players, identified by its 1-based slot.
type Participant struct {
	ID         int   `json:"participantId"`
	TeamID     int   `json:"teamId"`
	ChampionID int   `json:"championId"`
	Stats      Stats `json:"stats"`
}

// Identity links a participant slot to its summoner name ("TAG Player Name").
type Identity struct {
	ParticipantID int    `json:"participantId"`
	SummonerName  string `json:"summonerName"`
}

// Match is a completed game. Participants are positional: the first TeamSize belong to
// Teams[0] and the rest to Teams[1], each half in TOP/JNG/MID/BOT/SUP order.
type Match struct {
	GameID          int64         `json:"gameId"`
	DurationSeconds int           `json:"gameDuration"`
	Teams           [2]Team       `json:"teams"`
	Participants    []Participant `json:"participants"`
	Identities      []Identity    `json:"participantIdentities"`
}

// TeamOnePlayers returns the first half of the participants.
func (m Match) TeamOnePlayers() []Participant {
	return m.Participants[:TeamSize]
}

// TeamTwoPlayers returns the second half of the participants.
func (m Match) TeamTwoPlayers() []Participant {
	return m.Participants[TeamSize:]
}
