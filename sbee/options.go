// Copyright (c) 2025 BVK Chaitanya

package sbee

import (
	"fmt"
	"strings"
	"time"

	"github.com/bvk/sbeerest/sbee/internal"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Options struct {
	// RestURL is the base url of the gateway api. Defaults to the public
	// gateway.
	RestURL string `validate:"required,http_url"`

	// HttpClientTimeout bounds each request. Defaults to one minute.
	HttpClientTimeout time.Duration `validate:"gte=0"`
}

func (v *Options) setDefaults() {
	if v.RestURL == "" {
		v.RestURL = internal.RestURL.String()
	}
	v.RestURL = strings.TrimRight(v.RestURL, "/")
	if v.HttpClientTimeout == 0 {
		v.HttpClientTimeout = internal.DefaultHttpClientTimeout
	}
}

// Check validates the options.
func (v *Options) Check() error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("invalid client options: %w", err)
	}
	return nil
}
