package gauth

import (
	"encoding/json"

	"timewise/internal/pkg/config"

	"google.golang.org/api/option"
)

type serviceAccountKey struct {
	Type        string `json:"type"`
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
	TokenURI    string `json:"token_uri"`
}

// ClientOptions authenticates Google API clients as the configured service
// account. The key file JSON is rebuilt from the two environment values.
func ClientOptions(cfg config.SheetsConfig, scopes ...string) ([]option.ClientOption, error) {
	if err := cfg.ValidateServiceAccount(); err != nil {
		return nil, err
	}
	creds, err := json.Marshal(serviceAccountKey{
		Type:        "service_account",
		ClientEmail: cfg.ServiceAccountEmail,
		PrivateKey:  cfg.NormalizedPrivateKey(),
		TokenURI:    "https://oauth2.googleapis.com/token",
	})
	if err != nil {
		return nil, err
	}
	return []option.ClientOption{
		option.WithCredentialsJSON(creds),
		option.WithScopes(scopes...),
	}, nil
}
