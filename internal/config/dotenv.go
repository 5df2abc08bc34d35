package config

import "github.com/joho/godotenv"

// DefaultEnvFiles are tried in order by LoadDotEnv when no paths are given.
var DefaultEnvFiles = []string{".env", "../.env"}

// LoadDotEnv loads the first readable .env file into the process environment and returns its
// path, or "" when none was found. Variables already set are left untouched.
func LoadDotEnv(paths ...string) string {
	if len(paths) == 0 {
		paths = DefaultEnvFiles
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err == nil {
			return path
		}
	}
	return ""
}
