package ddragon

import "time"

const (
	providerName       = "ddragon"
	defaultBaseURL     = "https://ddragon.leagueoflegends.com"
	defaultLocale      = "en_US"
	defaultHTTPTimeout = 10 * time.Second
	errorBodyLimit     = 512
)
