package config

import (
	"encoding/json"
	"fmt"
	"os"
)

type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		Logbook struct {
			DSN string `json:"dsn"`
		} `json:"logbook,omitempty"`

		Explorer struct {
			DSN string `json:"dsn"`
		} `json:"explorer,omitempty"`
	} `json:"storage,omitempty"`
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
		App: App{
			Version: jsonCfg.App.Version,
		},
		Storage: Storage{
			Logbook:  DB{DSN: jsonCfg.Storage.Logbook.DSN},
			Explorer: DB{DSN: jsonCfg.Storage.Explorer.DSN},
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
