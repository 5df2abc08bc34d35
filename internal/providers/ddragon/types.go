package ddragon

type championFile struct {
	Version string                  `json:"version"`
	Data    map[string]championData `json:"data"`
}

// championData is one entry of champion.json. Key is the numeric id as a string.
type championData struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
}
