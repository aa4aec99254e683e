package config

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownLogFormat = errors.New("unknown log_format (must be 'plain' or 'json')")
	ErrEmptyLogLevel    = errors.New("log_level can't be empty")
	ErrEmptyChainName   = errors.New("chain name can't be empty")
	ErrDuplicateChain   = errors.New("duplicate chain name")
	ErrNoChains         = errors.New("no chains configured")
)

// ErrInSection is returned if validate basic does not pass for any underlying config service.
type ErrInSection struct {
	Err     error
	Section string
}

func (e ErrInSection) Error() string {
	return fmt.Sprintf("error in [%s] section: %s", e.Section, e.Err.Error())
}

func (e ErrInSection) Unwrap() error {
	return e.Err
}

// ErrUnknownChain is returned when a chain name isn't in the chains file.
type ErrUnknownChain struct {
	Name string
}

func (e ErrUnknownChain) Error() string {
	return fmt.Sprintf("unknown chain %q", e.Name)
}
