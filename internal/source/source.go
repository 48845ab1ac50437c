// Package source defines where the polling loop gets its readings from and
// provides the deterministic simulated source used in test mode.
package source

import (
	"context"
	"errors"

	"github.com/five82/bgcheck/internal/glucose"
)

// ErrCredentials marks failures caused by missing or rejected account
// credentials. They cannot be fixed by polling again.
var ErrCredentials = errors.New("glucose service credentials")

// Source produces the current glucose reading. A nil error with a Missing
// reading means the service had no current value.
type Source interface {
	Fetch(ctx context.Context) (glucose.Reading, error)
}

// Func adapts a plain function to Source.
type Func func(ctx context.Context) (glucose.Reading, error)

// Fetch calls f.
func (f Func) Fetch(ctx context.Context) (glucose.Reading, error) {
	return f(ctx)
}
