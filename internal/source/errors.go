package source

import "errors"

var (
	// ErrProviderNotFound indicates no provider is registered under a name.
	ErrProviderNotFound = errors.New("provider not found")

	// ErrDuplicateProvider indicates a provider name is already registered.
	ErrDuplicateProvider = errors.New("provider already registered")

	// ErrNoneAvailable indicates no usable provider appeared before the
	// polling budget ran out.
	ErrNoneAvailable = errors.New("no provider available")
)
