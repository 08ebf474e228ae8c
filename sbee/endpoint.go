// Copyright (c) 2025 BVK Chaitanya

package sbee

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// QueryParam is a single name and value pair in a GET query string.
type QueryParam struct {
	Name  string
	Value string
}

// Endpoint describes a single gateway operation. Endpoints are built by the
// pure *Endpoint functions of this package and executed with Client.Do.
type Endpoint struct {
	// Name is the operation name used to tag errors.
	Name string

	Method string

	// Path is appended to the gateway's base url. It is already escaped.
	Path string

	// Query holds the GET query parameters in their declared order.
	Query []QueryParam

	// Body is the POST request body. It is either nil, a RawJSON or
	// json.RawMessage that is sent as is, or a value that is encoded as JSON.
	Body any

	// RequiresAuth must be true. Client.Do refuses to send endpoints without
	// the bearer token.
	RequiresAuth bool
}

// URL returns the full request url for the endpoint under the base url.
func (ep *Endpoint) URL(base string) string {
	var sb strings.Builder
	sb.WriteString(strings.TrimRight(base, "/"))
	sb.WriteString(ep.Path)
	for i, q := range ep.Query {
		if i == 0 {
			sb.WriteByte('?')
		} else {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(q.Name))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(q.Value))
	}
	return sb.String()
}

// Headers returns the request headers as "Name: Value" strings.
func (ep *Endpoint) Headers(token string) []string {
	headers := []string{
		"accept: text/plain",
		"Authorization: Bearer " + token,
	}
	if ep.Method == http.MethodPost {
		headers = append(headers, "contentType: application/json")
	}
	return headers
}

// EncodeBody returns the request body text. GET endpoints always have an
// empty body.
func (ep *Endpoint) EncodeBody() (string, error) {
	if ep.Method != http.MethodPost || ep.Body == nil {
		return "", nil
	}
	if raw, ok := isRaw(ep.Body); ok {
		return raw, nil
	}
	if v, ok := ep.Body.(interface{ checkUTF8() error }); ok {
		if err := v.checkUTF8(); err != nil {
			return "", fmt.Errorf("could not encode %s request body: %w", ep.Name, err)
		}
	}
	data, err := encodeJSON(ep.Body)
	if err != nil {
		return "", fmt.Errorf("could not encode %s request body: %w", ep.Name, err)
	}
	return string(data), nil
}

// encodeJSON encodes v without escaping the html characters so that
// credentials and symbols appear byte-for-byte in the payload.
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func pathOf(segments ...string) string {
	var sb strings.Builder
	for _, s := range segments {
		sb.WriteByte('/')
		sb.WriteString(url.PathEscape(s))
	}
	return sb.String()
}

func getEndpoint(name, path string, query ...QueryParam) *Endpoint {
	return &Endpoint{
		Name:         name,
		Method:       http.MethodGet,
		Path:         path,
		Query:        query,
		RequiresAuth: true,
	}
}

func postEndpoint(name, path string, body any) *Endpoint {
	return &Endpoint{
		Name:         name,
		Method:       http.MethodPost,
		Path:         path,
		Body:         body,
		RequiresAuth: true,
	}
}
