package report

import (
	"strings"

	"github.com/preston-bernstein/match-thread-service/internal/domain/champions"
)

// ChampionLink renders a lowercase champion name as a thread icon link. Only the first
// space is removed: "miss fortune" -> "[missfortune](#c-missfortune)".
func ChampionLink(name string) string {
	compact := strings.Replace(name, " ", "", 1)
	return "[" + compact + "](#c-" + compact + ")"
}

func championLink(dir champions.Directory, key int) (string, error) {
	name, err := dir.Name(key)
	if err != nil {
		return "", err
	}
	return ChampionLink(name), nil
}
