package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		AccessTokenSignKey   string   `json:"access_token_sign_key"`
		AccessTokenDuration  Duration `json:"access_token_duration"`
		RefreshTokenSignKey  string   `json:"refresh_token_sign_key"`
		RefreshTokenDuration Duration `json:"refresh_token_duration"`
		TokenIssuer          string   `json:"token_issuer"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		CORSOrigin     string   `json:"cors_origin"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Media struct {
		Backend        string   `json:"backend"`
		Endpoint       string   `json:"endpoint"`
		Region         string   `json:"region"`
		Bucket         string   `json:"bucket"`
		AccessKey      string   `json:"access_key"`
		SecretKey      string   `json:"secret_key"`
		PublicBaseURL  string   `json:"public_base_url"`
		UploadURL      string   `json:"upload_url"`
		APIKey         string   `json:"api_key"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"media,omitempty"`
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
			AccessTokenSignKey:   jsonCfg.App.AccessTokenSignKey,
			AccessTokenDuration:  time.Duration(jsonCfg.App.AccessTokenDuration),
			RefreshTokenSignKey:  jsonCfg.App.RefreshTokenSignKey,
			RefreshTokenDuration: time.Duration(jsonCfg.App.RefreshTokenDuration),
			TokenIssuer:          jsonCfg.App.TokenIssuer,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			CORSOrigin:     jsonCfg.Server.CORSOrigin,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Media: Media{
			Backend:        jsonCfg.Media.Backend,
			Endpoint:       jsonCfg.Media.Endpoint,
			Region:         jsonCfg.Media.Region,
			Bucket:         jsonCfg.Media.Bucket,
			AccessKey:      jsonCfg.Media.AccessKey,
			SecretKey:      jsonCfg.Media.SecretKey,
			PublicBaseURL:  jsonCfg.Media.PublicBaseURL,
			UploadURL:      jsonCfg.Media.UploadURL,
			APIKey:         jsonCfg.Media.APIKey,
			RequestTimeout: time.Duration(jsonCfg.Media.RequestTimeout),
		},
		JSONFilePath: "",
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

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
