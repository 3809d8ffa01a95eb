package testutils

import "errors"

// ErrInjected is returned by test doubles configured to fail.
var ErrInjected = errors.New("injected failure")
