package report

import "github.com/preston-bernstein/match-thread-service/internal/domain/matches"

// roles maps a position within a team's half of the participant list to its lane label.
var roles = [matches.TeamSize]string{"TOP", "JNG", "MID", "BOT", "SUP"}

// unknownGlyph is rendered for monsters missing from monsterGlyphs.
const unknownGlyph = "undefined"

// monsterGlyphs holds the icon links the thread template expects. Dragons are keyed by
// sub-type, everything else by monster type.
var monsterGlyphs = map[string]string{
	"AIR_DRAGON":   "[C](#mt-cloud)",
	"WATER_DRAGON": "[M](#mt-ocean)",
	"FIRE_DRAGON":  "[I](#mt-infernal)",
	"EARTH_DRAGON": "[M](#mt-mountain)",
	"BARON_NASHOR": "[B](#mt-barons)",
	"RIFTHERALD":   "[H](#mt-herald)",
}

// Role returns the lane label for a 0-based index within a team.
func Role(index int) string {
	if index < 0 || index >= len(roles) {
		return ""
	}
	return roles[index]
}

// MonsterGlyph returns the icon link for an elite monster kill event.
func MonsterGlyph(ev matches.Event) string {
	key := ev.MonsterType
	if key == matches.MonsterDragon {
		key = ev.MonsterSubType
	}
	if glyph, ok := monsterGlyphs[key]; ok {
		return glyph
	}
	return unknownGlyph
}
