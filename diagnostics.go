package ggfx

import "sync/atomic"

// Diagnostics receives reports about conditions the render path tolerates
// instead of failing. Implementations must be safe for concurrent use.
type Diagnostics interface {
	// SingularTransform is called when node could not invert the device
	// transform m and rendered with the identity mapping instead.
	SingularTransform(node string, m Matrix)
}

// logDiagnostics reports through the package logger at Warn level.
type logDiagnostics struct{}

func (logDiagnostics) SingularTransform(node string, m Matrix) {
	Logger().Warn("ggfx: singular device transform, using identity",
		"node", node,
		"det", m.Determinant(),
		"matrix", []float64{m.A, m.B, m.C, m.D, m.E, m.F})
}

// DefaultDiagnostics returns the diagnostics used by nodes created without
// WithDiagnostics. It logs a warning through Logger.
func DefaultDiagnostics() Diagnostics {
	return logDiagnostics{}
}

// DiagnosticCounter counts reported conditions. The zero value is ready
// to use.
type DiagnosticCounter struct {
	singular atomic.Int64
	next     Diagnostics
}

// NewDiagnosticCounter returns a counter that also forwards every report
// to next. next may be nil.
func NewDiagnosticCounter(next Diagnostics) *DiagnosticCounter {
	return &DiagnosticCounter{next: next}
}

// SingularTransform implements Diagnostics.
func (c *DiagnosticCounter) SingularTransform(node string, m Matrix) {
	c.singular.Add(1)
	if c.next != nil {
		c.next.SingularTransform(node, m)
	}
}

// SingularTransforms returns the number of singular transforms reported.
func (c *DiagnosticCounter) SingularTransforms() int64 {
	return c.singular.Load()
}

// Reset clears the counters.
func (c *DiagnosticCounter) Reset() {
	c.singular.Store(0)
}
