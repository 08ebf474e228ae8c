// Copyright (c) 2025 BVK Chaitanya

// Package sbee implements a client for the SBEE crypto exchange aggregation
// gateway.
//
// Every operation is described by an Endpoint, which can be inspected without
// any network activity, and executed by a Client. Operations never return Go
// errors for remote failures. Instead, each call returns a Result holding
// either the decoded JSON response or an OperationError tagged with the
// operation name.
package sbee
