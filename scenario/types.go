package scenario

import (
	"fmt"
	"strconv"
	"strings"
)

// Scenario is a set of simultaneously failed branch indices, strictly increasing.
type Scenario []int

// Validate checks that s is non-empty, strictly increasing and within
// [0, branchCount).
func (s Scenario) Validate(branchCount int) error {
	if len(s) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidScenario)
	}
	for i, b := range s {
		if b < 0 || b >= branchCount {
			return fmt.Errorf("%w: branch %d outside [0,%d)", ErrInvalidScenario, b, branchCount)
		}
		if i > 0 && b <= s[i-1] {
			return fmt.Errorf("%w: members not strictly increasing at %d", ErrInvalidScenario, i)
		}
	}

	return nil
}

// Contains reports whether branch b is a member (binary search).
func (s Scenario) Contains(b int) bool {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case s[mid] == b:
			return true
		case s[mid] < b:
			lo = mid + 1
		default:
			hi = mid
		}
	}

	return false
}

// Key renders the member set as "a,b,c"; equal sets give equal keys.
func (s Scenario) Key() string {
	parts := make([]string, len(s))
	for i, b := range s {
		parts[i] = strconv.Itoa(b)
	}

	return strings.Join(parts, ",")
}

// Mode selects how a population is produced.
type Mode int

const (
	// Exhaustive enumerates every combination.
	Exhaustive Mode = iota + 1
	// Random draws uniformly per cardinality.
	Random
)

// String returns "exhaustive" or "random".
func (m Mode) String() string {
	switch m {
	case Exhaustive:
		return "exhaustive"
	case Random:
		return "random"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// Population is the ordered result of one Generate call. It is read-only
// once returned.
type Population struct {
	Mode      Mode
	Seed      int64
	Scenarios []Scenario
}

// Len returns the number of scenarios.
func (p *Population) Len() int {
	if p == nil {
		return 0
	}

	return len(p.Scenarios)
}

// Members returns a deep copy of the scenarios as plain slices.
func (p *Population) Members() [][]int {
	if p == nil {
		return nil
	}
	out := make([][]int, len(p.Scenarios))
	for i, s := range p.Scenarios {
		out[i] = append([]int(nil), s...)
	}

	return out
}

// Reporter receives generation progress. Calls are serialized.
type Reporter interface {
	Report(completed, total int, phase string)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(completed, total int, phase string)

// Report calls f.
func (f ReporterFunc) Report(completed, total int, phase string) { f(completed, total, phase) }
