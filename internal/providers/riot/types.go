package riot

// Raw ACS v4 payloads. Pointer fields distinguish an omitted stat from a zero.

type matchPayload struct {
	GameID                int64                `json:"gameId"`
	GameDuration          int                  `json:"gameDuration"`
	Teams                 []teamPayload        `json:"teams"`
	Participants          []participantPayload `json:"participants"`
	ParticipantIdentities []identityPayload    `json:"participantIdentities"`
}

type teamPayload struct {
	TeamID     int          `json:"teamId"`
	Win        string       `json:"win"`
	TowerKills *int         `json:"towerKills"`
	Bans       []banPayload `json:"bans"`
}

type banPayload struct {
	ChampionID int `json:"championId"`
	PickTurn   int `json:"pickTurn"`
}

type participantPayload struct {
	ParticipantID int          `json:"participantId"`
	TeamID        int          `json:"teamId"`
	ChampionID    int          `json:"championId"`
	Stats         statsPayload `json:"stats"`
}

type statsPayload struct {
	Kills      *int `json:"kills"`
	Deaths     *int `json:"deaths"`
	Assists    *int `json:"assists"`
	GoldEarned *int `json:"goldEarned"`
}

type identityPayload struct {
	ParticipantID int           `json:"participantId"`
	Player        playerPayload `json:"player"`
}

type playerPayload struct {
	SummonerName string `json:"summonerName"`
}

type timelinePayload struct {
	Frames        []framePayload `json:"frames"`
	FrameInterval int64          `json:"frameInterval"`
}

type framePayload struct {
	Timestamp int64          `json:"timestamp"`
	Events    []eventPayload `json:"events"`
}

type eventPayload struct {
	Type           string `json:"type"`
	Timestamp      int64  `json:"timestamp"`
	KillerID       int    `json:"killerId"`
	MonsterType    string `json:"monsterType"`
	MonsterSubType string `json:"monsterSubType"`
}
