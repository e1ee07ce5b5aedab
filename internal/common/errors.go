// Package common defines shared sentinel errors used across the geoportal
// core. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Ingestion errors.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrCorruptArchive    = errors.New("no KML document in archive")

	// Photo validation errors.
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrPayloadTooLarge      = errors.New("payload too large")

	// Redirect errors.
	ErrUnknownPlatform = errors.New("unknown redirect platform")
)
