package nodecount

import "errors"

// Sentinel errors for node counting.
var (
	// ErrTotalMismatch indicates the computed distinct-label count disagrees
	// with the expected total supplied via WithExpectedTotal. Wrapped
	// instances report both values.
	ErrTotalMismatch = errors.New("nodecount: distinct label count does not match expected total")

	// ErrNegativeTotal indicates a negative node universe size.
	ErrNegativeTotal = errors.New("nodecount: expected total must be non-negative")
)

// Options contains tunable parameters for Count.
//
// ExpectedTotal – the caller's declared node universe size; only consulted
// when CheckTotal is set.
// CheckTotal    – validate the computed count against ExpectedTotal.
type Options struct {
	ExpectedTotal int
	CheckTotal    bool
}

// Option represents a functional option for configuring Count.
type Option func(*Options)

// WithExpectedTotal makes Count validate the computed distinct-label count
// against n, failing with ErrTotalMismatch on disagreement.
// Must pass a non-negative value; negative values panic at configuration
// time with ErrNegativeTotal.
func WithExpectedTotal(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrNegativeTotal.Error())
		}
		o.ExpectedTotal = n
		o.CheckTotal = true
	}
}

// DefaultOptions returns the Options Count starts from before applying
// functional overrides: no expected-total validation.
func DefaultOptions() Options {
	return Options{ExpectedTotal: 0, CheckTotal: false}
}
