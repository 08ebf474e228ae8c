// Copyright (c) 2025 BVK Chaitanya

package internal

import "errors"

var (
	// ErrInvalidMethod is returned, before any network activity, for HTTP
	// methods other than GET and POST.
	ErrInvalidMethod = errors.New("invalid http method")

	ErrInvalidTimeout = errors.New("http client timeout cannot be negative")
)
