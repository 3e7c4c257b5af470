package config

import "errors"

var (
	// ErrUnknownAttribute indicates a key the config file does not support
	ErrUnknownAttribute = errors.New("unknown config attribute")

	// ErrUnexpectedBlock indicates a nested block; the config is flat
	ErrUnexpectedBlock = errors.New("unexpected block in config")

	// ErrAttributeType indicates a value of the wrong type
	ErrAttributeType = errors.New("wrong type for config attribute")
)
