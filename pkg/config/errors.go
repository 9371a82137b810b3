package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrConfigNotLoaded is returned when attempting to access a config that hasn't been loaded
	ErrConfigNotLoaded = errors.New("configuration has not been loaded")

	// ErrNilPointer is returned when a nil pointer is provided to Load
	ErrNilPointer = errors.New("nil pointer provided to config loader")

	// ErrLoadingEnvFile is returned when a .env file cannot be read
	ErrLoadingEnvFile = errors.New("failed to load env file")

	// ErrInvalidFields is returned when a field definition file cannot be decoded
	ErrInvalidFields = errors.New("invalid field definitions")

	// ErrFieldName is returned when a field definition has no name
	ErrFieldName = errors.New("field name is required")

	// ErrDuplicateField is returned when two field definitions share a name
	ErrDuplicateField = errors.New("duplicate field name")

	// ErrTokenClass is returned for a custom token with an unknown character class
	ErrTokenClass = errors.New("unknown token class")
)
