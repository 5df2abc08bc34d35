package matches

// Event types the report cares about.
const (
	EventEliteMonsterKill = "ELITE_MONSTER_KILL"
)

// Monster types reported on elite monster kills.
const (
	MonsterDragon      = "DRAGON"
	MonsterBaronNashor = "BARON_NASHOR"
	MonsterRiftHerald  = "RIFTHERALD"
)

// Event is a single timeline event. Only the fields used by the report are kept.
type Event struct {
	Type           string `json:"type"`
	Timestamp      int64  `json:"timestamp"`
	KillerID       int    `json:"killerId,omitempty"`
	MonsterType    string `json:"monsterType,omitempty"`
	MonsterSubType string `json:"monsterSubType,omitempty"`
}

// Frame groups the events of one timeline interval.
type Frame struct {
	Timestamp int64   `json:"timestamp"`
	Events    []Event `json:"events"`
}

// Timeline is the ordered list of frames for a match.
type Timeline struct {
	Frames []Frame `json:"frames"`
}

// Events flattens all frames into a single ordered slice.
func (t Timeline) Events() []Event {
	var events []Event
	for _, f := range t.Frames {
		events = append(events, f.Events...)
	}
	return events
}
