// Package idgen wraps the UUID generator so run identifiers can be stubbed in
// tests.
package idgen

import "github.com/google/uuid"

var NewFunc = func() string { return uuid.New().String() }

func New() string { return NewFunc() }
