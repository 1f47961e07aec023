package itp

import (
	"fmt"
	"strings"
)

// Func is the scalar equation f(x, p). A scalar parameter is passed as a
// one-element slice; a parameterless equation receives nil.
type Func func(x float64, p []float64) float64

// Status classifies why a solve stopped. All values are terminal.
type Status int

const (
	// ExactSolutionLeft — f(left) was exactly zero at entry; no iterations.
	ExactSolutionLeft Status = iota

	// ExactSolutionRight — f(right) was exactly zero at entry; no iterations.
	ExactSolutionRight

	// Success — a trial point evaluated to exactly zero.
	Success

	// FloatingPointLimit — the bracket collapsed to two adjacent floats.
	FloatingPointLimit

	// MaxIters — the iteration cap was reached first.
	MaxIters
)

var statusNames = [...]string{
	ExactSolutionLeft:  "ExactSolutionLeft",
	ExactSolutionRight: "ExactSolutionRight",
	Success:            "Success",
	FloatingPointLimit: "FloatingPointLimit",
	MaxIters:           "MaxIters",
}

// String returns the canonical status name.
func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("Status(%d)", int(s))
	}

	return statusNames[s]
}

// IsSuccess reports whether s is Success or one of the exact variants.
func (s Status) IsSuccess() bool {
	return s == Success || s == ExactSolutionLeft || s == ExactSolutionRight
}

// IsConverged reports whether the bracket can no longer be improved:
// IsSuccess or FloatingPointLimit. Only MaxIters is not converged.
func (s Status) IsConverged() bool { return s.IsSuccess() || s == FloatingPointLimit }

// ParseStatus parses a status name, case-insensitively.
func ParseStatus(name string) (Status, error) {
	for i, n := range statusNames {
		if strings.EqualFold(n, name) {
			return Status(i), nil
		}
	}

	return 0, fmt.Errorf("itp: unknown status %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(statusNames) {
		return nil, fmt.Errorf("itp: invalid status %d", int(s))
	}

	return []byte(statusNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(b []byte) error {
	v, err := ParseStatus(string(b))
	if err != nil {
		return err
	}
	*s = v

	return nil
}

// Step is a read-only snapshot delivered to Problem.OnStep after an
// iteration has replaced one endpoint.
type Step struct {
	Iter   int     // 1-based iteration number
	Trial  float64 // evaluated trial point
	FTrial float64 // f(Trial)
	Left   float64 // bracket after the update
	Right  float64
}

// Problem is one bracketed root-finding task.
//
// Fields:
//   - F        — the equation; required.
//   - P        — parameter passed to F unchanged; may be nil.
//   - Left     — first interval endpoint; its order relative to Right is kept.
//   - Right    — second interval endpoint; Left ≠ Right.
//   - MaxIters — iteration cap; 0 selects DefaultMaxIters.
//   - OnStep   — optional per-iteration observer; must not retain the Step.
type Problem struct {
	F        Func
	P        []float64
	Left     float64
	Right    float64
	MaxIters int
	OnStep   func(Step)
}

// Solution is the outcome of Solve.
//
// For Success and the exact variants X lies within the reported bracket.
type Solution struct {
	X        float64 `json:"x"`
	Residual float64 `json:"residual"`
	Left     float64 `json:"left"`
	Right    float64 `json:"right"`
	Status   Status  `json:"status"`
	Iters    int     `json:"iters"`
}
