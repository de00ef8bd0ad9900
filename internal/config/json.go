package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// configuration file.
type StructuredJSONConfig struct {
	App struct {
		TokenKey    string `json:"token_key"`
		TokenIssuer string `json:"token_issuer"`
		LogLevel    string `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		Driver           string   `json:"driver"`
		OperationTimeout Duration `json:"operation_timeout"`

		Mongo struct {
			URI        string `json:"uri"`
			Database   string `json:"database"`
			Collection string `json:"collection"`
		} `json:"mongo,omitempty"`

		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Mail struct {
		APIURL  string   `json:"api_url"`
		APIKey  string   `json:"api_key"`
		From    string   `json:"from"`
		Timeout Duration `json:"timeout"`
	} `json:"mail,omitempty"`
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
			TokenKey:    jsonCfg.App.TokenKey,
			TokenIssuer: jsonCfg.App.TokenIssuer,
			LogLevel:    jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			Driver:           jsonCfg.Storage.Driver,
			OperationTimeout: time.Duration(jsonCfg.Storage.OperationTimeout),
			Mongo: Mongo{
				URI:        jsonCfg.Storage.Mongo.URI,
				Database:   jsonCfg.Storage.Mongo.Database,
				Collection: jsonCfg.Storage.Mongo.Collection,
			},
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Mail: Mail{
			APIURL:  jsonCfg.Mail.APIURL,
			APIKey:  jsonCfg.Mail.APIKey,
			From:    jsonCfg.Mail.From,
			Timeout: time.Duration(jsonCfg.Mail.Timeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
