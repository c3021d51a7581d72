// Package hwdefs holds definitions shared by all hardware description
// packages.
package hwdefs

import (
	"errors"
	"fmt"
)

//go:generate go tool stringer -type=ErrorKind

// ErrorKind classifies configuration errors.
type ErrorKind uint8

const (
	BadRange ErrorKind = iota + 1
	UnknownName
	ImportCycle
	ParentCycle
	BadPorts
	BadROM
	UnknownHandler
	DuplicateName
)

// A ConfigError reports a malformed hardware declaration. Configuration
// errors are always detected when a machine description is built, never
// while it is running.
type ConfigError struct {
	Kind   ErrorKind
	Name   string // name of the offending declaration
	Detail string
	Err    error
}

func (e *ConfigError) Error() string {
	msg := e.Kind.String() + ": " + e.Name
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Errorf returns a *ConfigError of the given kind. The %w verb is honored.
func Errorf(kind ErrorKind, name, format string, args ...any) error {
	err := fmt.Errorf(format, args...)
	ce := &ConfigError{Kind: kind, Name: name, Detail: err.Error()}
	if inner := errors.Unwrap(err); inner != nil {
		ce.Detail = ""
		ce.Err = err
	}
	return ce
}

// IsKind reports whether err is, or wraps, a *ConfigError of kind k.
func IsKind(err error, k ErrorKind) bool {
	var ce *ConfigError
	for err != nil {
		if !errors.As(err, &ce) {
			return false
		}
		if ce.Kind == k {
			return true
		}
		err = ce.Err
	}
	return false
}
