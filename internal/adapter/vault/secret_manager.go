package vault

import (
	"fmt"

	"github.com/hashicorp/vault/api"
)

// SecretManager reads production secrets from HashiCorp Vault. Deployments
// without Vault fall back to plain config values.
type SecretManager struct {
	client *api.Client
}

func NewSecretManager(address, token string) (*SecretManager, error) {
	config := api.DefaultConfig()
	config.Address = address

	client, err := api.NewClient(config)
	if err != nil {
		return nil, err
	}

	client.SetToken(token)

	return &SecretManager{client: client}, nil
}

func (sm *SecretManager) readField(path, field string) (string, error) {
	secret, err := sm.client.Logical().Read(path)
	if err != nil {
		return "", err
	}
	if secret == nil {
		return "", fmt.Errorf("vault: no secret at %s", path)
	}

	data, ok := secret.Data["data"].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("vault: unexpected secret format at %s", path)
	}
	value, ok := data[field].(string)
	if !ok {
		return "", fmt.Errorf("vault: field %s missing at %s", field, path)
	}
	return value, nil
}

func (sm *SecretManager) GetDatabaseURL() (string, error) {
	return sm.readField("secret/data/database", "connection_string")
}

func (sm *SecretManager) GetJWTSecret() (string, error) {
	return sm.readField("secret/data/jwt", "secret")
}

func (sm *SecretManager) GetRegistryAPIKey() (string, error) {
	return sm.readField("secret/data/eipa", "api_key")
}
