// Package pvtprops estimates physical properties of reservoir fluids from
// pressure, temperature and gravity inputs using published empirical
// correlations. The oil, gas and water subpackages hold the per-phase
// property models; this package holds the error kinds they share.
package pvtprops

import "errors"

// Every failure the phase packages report wraps one of these kinds, so a
// caller can discriminate with errors.Is while the wrapped message carries
// the detail. Errors are raised synchronously at the call that detects them;
// no operation recovers, retries or substitutes a default.
var (
	// ErrUnknownMethod reports a correlation name with no registered
	// strategy.
	ErrUnknownMethod = errors.New("unknown correlation method")

	// ErrDomain reports an input outside the physically valid domain, such
	// as a non-positive gravity or a zero denominator in gravity averaging.
	ErrDomain = errors.New("input outside valid domain")

	// ErrNumerical reports a computation that produced a non-finite or
	// unphysical result, such as a bubble-point solve that does not yield a
	// finite positive pressure.
	ErrNumerical = errors.New("numerical failure")
)
