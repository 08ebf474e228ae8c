// Copyright (c) 2025 BVK Chaitanya

package cmdutil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bvk/sbeerest/sbee"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Secrets holds the gateway token and the exchange accounts. Accounts are
// keyed by a user chosen name, which defaults to the exchange name.
type Secrets struct {
	Token   string `json:"token" yaml:"token" validate:"required"`
	RestURL string `json:"rest-url,omitempty" yaml:"rest-url,omitempty" validate:"omitempty,http_url"`

	Accounts map[string]*sbee.Credentials `json:"accounts,omitempty" yaml:"accounts,omitempty"`
}

// SecretsFromFile reads a secrets file in JSON format, or in YAML format when
// the file name ends with .yaml or .yml.
func SecretsFromFile(fpath string) (*Secrets, error) {
	data, err := os.ReadFile(fpath)
	if err != nil {
		return nil, err
	}
	s := new(Secrets)
	switch ext := strings.ToLower(filepath.Ext(fpath)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("could not parse yaml secrets file %q: %w", fpath, err)
		}
	default:
		if err := json.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("could not parse json secrets file %q: %w", fpath, err)
		}
	}
	return s, nil
}

func (v *Secrets) Check() error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("invalid secrets: %w", err)
	}
	for name, creds := range v.Accounts {
		if creds == nil || len(creds.APIKey) == 0 {
			return fmt.Errorf("account %q has no api key", name)
		}
	}
	return nil
}

// Account returns the credentials for the named account.
func (v *Secrets) Account(name string) (*sbee.Credentials, error) {
	if creds, ok := v.Accounts[name]; ok {
		return creds, nil
	}
	for k, creds := range v.Accounts {
		if strings.EqualFold(k, name) {
			return creds, nil
		}
	}
	return nil, fmt.Errorf("account %q is not found in the secrets: %w", name, os.ErrNotExist)
}
