package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrTokenKeyNotSpecified indicates that no token signing key was
	// configured. This is a fatal startup misconfiguration.
	ErrTokenKeyNotSpecified = errors.New("token key is not specified")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN for the selected driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrUnknownStorageDriver indicates an unsupported storage driver name.
	ErrUnknownStorageDriver = errors.New("unknown storage driver")
	// ErrInvalidServerConfigs indicates invalid server timeouts.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
