package config

// Provider names accepted by PROVIDER and --provider.
const (
	ProviderRiot     = "riot"
	ProviderFixture  = "fixture"
	ProviderSnapshot = "snapshot"
)

// proxyDirect disables the CORS relay; an empty RIOT_CORS_PROXY falls back to the default.
const proxyDirect = "direct"
