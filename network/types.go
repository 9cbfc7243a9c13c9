package network

import (
	"fmt"
	"strings"
	"sync"
)

// BusType classifies a bus the way power-flow case formats do.
type BusType int

const (
	// PQ is a load bus (default).
	PQ BusType = iota + 1
	// PV is a generator bus with voltage control.
	PV
	// Ref is the slack/reference bus.
	Ref
)

// String returns the conventional label of the bus type.
func (t BusType) String() string {
	switch t {
	case PQ:
		return "PQ"
	case PV:
		return "PV"
	case Ref:
		return "REF"
	default:
		return fmt.Sprintf("BusType(%d)", int(t))
	}
}

// ParseBusType maps a case-insensitive label ("pq", "pv", "ref", "slack")
// to a BusType. The empty string maps to PQ.
func ParseBusType(s string) (BusType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pq":
		return PQ, nil
	case "pv":
		return PV, nil
	case "ref", "slack":
		return Ref, nil
	default:
		return 0, fmt.Errorf("ParseBusType(%q): %w", s, ErrUnknownBusType)
	}
}

// Bus is a network node (substation).
type Bus struct {
	// ID uniquely identifies the bus within its Network.
	ID int

	// Type is the power-flow bus classification.
	Type BusType

	// LoadMW is the active demand at the bus.
	LoadMW float64

	// GenMW is the active generation available at the bus.
	GenMW float64
}

// Branch is a transmission line between two buses.
type Branch struct {
	// From and To are bus ids; both must be registered before the branch.
	From, To int

	// Reactance is the series reactance in per-unit. Its inverse feeds the
	// self-admittance of both endpoints.
	Reactance float64

	// RateMW is an optional thermal rating (0 means unrated).
	RateMW float64
}

// Option configures a Network at construction time.
type Option func(n *Network)

// WithName sets the case name reported alongside results.
func WithName(name string) Option {
	return func(n *Network) { n.name = name }
}

// WithBaseMVA sets the system base used by per-unit quantities.
func WithBaseMVA(base float64) Option {
	return func(n *Network) { n.baseMVA = base }
}

// DefaultBaseMVA is the system base assumed when none is configured.
const DefaultBaseMVA = 100.0

// Network is an ordered, append-only collection of buses and branches.
//
// mu guards every field below it. byID maps a bus id to its position in buses.
type Network struct {
	mu sync.RWMutex

	name    string
	baseMVA float64

	buses    []Bus
	branches []Branch
	byID     map[int]int
}

// New creates an empty Network.
// Complexity: O(1).
func New(opts ...Option) *Network {
	n := &Network{
		baseMVA: DefaultBaseMVA,
		byID:    make(map[int]int),
	}
	for _, opt := range opts {
		opt(n)
	}

	return n
}
