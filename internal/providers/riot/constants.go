package riot

import "time"

const (
	providerName = "riot"

	// DefaultCORSProxy is the relay prefix match-history URLs are fetched through.
	DefaultCORSProxy   = "https://cors-anywhere.herokuapp.com/"
	defaultHTTPTimeout = 10 * time.Second
	errorBodyLimit     = 512

	winFlag = "Win"
)
