package config

import "errors"

// Configuration errors.
var (
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileRead     = errors.New("cannot read config file")
	ErrConfigInvalid      = errors.New("invalid config file")
	ErrConfigExists       = errors.New("config file already exists")
	ErrContactsFileEmpty  = errors.New("contacts_file cannot be empty")
	ErrMaxFieldLen        = errors.New("max_field_len out of range")
	ErrLogLevel           = errors.New("unknown log_level")
)
