package sokoconfig

import (
	"encoding/json"
	"os"
)

// LoadFile reads a JSON config file and applies it on top of DefaultConfig.
// A missing file is not an error: the caller simply keeps the defaults.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
