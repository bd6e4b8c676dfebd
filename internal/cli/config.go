package cli

import (
	"encoding/json"
	"os"
)

// RCFile is the small persisted config mishell reads from ~/.mishellrc,
// mirroring the teacher's ConfigFile
// JSON-loading idiom but scoped to what this shell actually persists:
// a default prompt template and search-path additions.
type RCFile struct {
	Prompt     string   `json:"prompt"`
	SearchPath []string `json:"search_path"`
}

// LoadRCFile reads and parses path. A missing file is not an error: it
// returns a zero-value RCFile so callers can apply defaults uniformly.
func LoadRCFile(path string) (*RCFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &RCFile{}, nil
		}
		return nil, err
	}
	var rc RCFile
	if err := json.Unmarshal(data, &rc); err != nil {
		return nil, err
	}
	return &rc, nil
}
