// Copyright (c) 2025 BVK Chaitanya

package internal

import (
	"net/url"
	"time"
)

var RestURL = url.URL{
	Scheme: "https",
	Host:   "api.sbee.io",
	Path:   "/api",
}

// DefaultHttpClientTimeout bounds a single request round trip.
const DefaultHttpClientTimeout = 60 * time.Second

type Options struct {
	// HttpClientTimeout is the timeout for the whole round trip, including
	// reading the response body.
	HttpClientTimeout time.Duration
}

func (v *Options) setDefaults() {
	if v.HttpClientTimeout == 0 {
		v.HttpClientTimeout = DefaultHttpClientTimeout
	}
}

// Check validates the options.
func (v *Options) Check() error {
	if v.HttpClientTimeout < 0 {
		return ErrInvalidTimeout
	}
	return nil
}
