package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors the flat onapsis-client.config layout.
type StructuredJSONConfig struct {
	Autologin bool   `json:"autologin"`
	Username  string `json:"username"`
	Password  string `json:"password"`

	URL            string   `json:"url,omitempty"`
	RequestTimeout Duration `json:"request_timeout,omitempty"`

	LogPath  string `json:"log_path,omitempty"`
	LogLevel string `json:"log_level,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Game: Game{
			URL:            jsonCfg.URL,
			RequestTimeout: time.Duration(jsonCfg.RequestTimeout),
		},
		Account: Account{
			Username:  jsonCfg.Username,
			Password:  jsonCfg.Password,
			Autologin: jsonCfg.Autologin,
		},
		Log: Log{
			Path:  jsonCfg.LogPath,
			Level: jsonCfg.LogLevel,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}
