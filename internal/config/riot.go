package config

import (
	"strings"
	"time"
)

// RiotConfig controls the match-history client.
type RiotConfig struct {
	// CORSProxy is prefixed to every match URL. "direct" fetches without a relay.
	CORSProxy   string        `env:"RIOT_CORS_PROXY" envDefault:"https://cors-anywhere.herokuapp.com/"`
	HTTPTimeout time.Duration `env:"RIOT_HTTP_TIMEOUT" envDefault:"10s"`
}

// Proxy returns the relay prefix to use, empty for direct fetches.
func (c RiotConfig) Proxy() string {
	if strings.EqualFold(strings.TrimSpace(c.CORSProxy), proxyDirect) {
		return ""
	}
	return c.CORSProxy
}

// DataDragonConfig controls the champion metadata client.
type DataDragonConfig struct {
	BaseURL     string        `env:"DDRAGON_BASE_URL" envDefault:"https://ddragon.leagueoflegends.com"`
	Locale      string        `env:"DDRAGON_LOCALE" envDefault:"en_US"`
	HTTPTimeout time.Duration `env:"DDRAGON_HTTP_TIMEOUT" envDefault:"10s"`
}
