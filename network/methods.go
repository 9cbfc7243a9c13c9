package network

import (
	"fmt"
	"math"
)

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// AddBus appends a bus and returns its index in bus order.
//
// Implementation:
//   - Stage 1: Reject non-finite LoadMW/GenMW (ErrInvalidValue); default Type to PQ.
//   - Stage 2: Under the write lock, reject a duplicate id (ErrDuplicateBus) and append.
//
// Complexity: O(1) amortized.
func (n *Network) AddBus(b Bus) (int, error) {
	if !finite(b.LoadMW) || !finite(b.GenMW) {
		return -1, fmt.Errorf("AddBus(%d): %w", b.ID, ErrInvalidValue)
	}
	if b.Type == 0 {
		b.Type = PQ
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if _, exists := n.byID[b.ID]; exists {
		return -1, fmt.Errorf("AddBus(%d): %w", b.ID, ErrDuplicateBus)
	}
	n.byID[b.ID] = len(n.buses)
	n.buses = append(n.buses, b)

	return len(n.buses) - 1, nil
}

// AddBranch appends a branch and returns its index in branch order.
//
// Implementation:
//   - Stage 1: Reject self-loops (ErrSelfLoop), NaN/Inf reactance
//     (ErrInvalidReactance) and NaN/Inf rating (ErrInvalidValue).
//   - Stage 2: Under the write lock, check both endpoints (ErrUnknownBus) and append.
//
// Behavior highlights:
//   - Zero reactance is accepted here and reported by Validate, so a loaded
//     case can be inspected before it is rejected.
//   - Parallel branches between the same pair are allowed.
//
// Complexity: O(1) amortized.
func (n *Network) AddBranch(br Branch) (int, error) {
	if br.From == br.To {
		return -1, fmt.Errorf("AddBranch(%d-%d): %w", br.From, br.To, ErrSelfLoop)
	}
	if !finite(br.Reactance) {
		return -1, fmt.Errorf("AddBranch(%d-%d): %w", br.From, br.To, ErrInvalidReactance)
	}
	if !finite(br.RateMW) {
		return -1, fmt.Errorf("AddBranch(%d-%d): %w", br.From, br.To, ErrInvalidValue)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if _, ok := n.byID[br.From]; !ok {
		return -1, fmt.Errorf("AddBranch(%d-%d): from %d: %w", br.From, br.To, br.From, ErrUnknownBus)
	}
	if _, ok := n.byID[br.To]; !ok {
		return -1, fmt.Errorf("AddBranch(%d-%d): to %d: %w", br.From, br.To, br.To, ErrUnknownBus)
	}
	n.branches = append(n.branches, br)

	return len(n.branches) - 1, nil
}

// Validate checks every invariant the pipeline relies on and returns the
// first violation in branch order.
//
// Errors:
//   - ErrUnknownBus, ErrSelfLoop, ErrZeroReactance, ErrInvalidReactance.
//
// Complexity: O(B).
func (n *Network) Validate() error {
	n.mu.RLock()
	defer n.mu.RUnlock()

	for i, br := range n.branches {
		if _, ok := n.byID[br.From]; !ok {
			return fmt.Errorf("Validate: branch %d: from %d: %w", i, br.From, ErrUnknownBus)
		}
		if _, ok := n.byID[br.To]; !ok {
			return fmt.Errorf("Validate: branch %d: to %d: %w", i, br.To, ErrUnknownBus)
		}
		if br.From == br.To {
			return fmt.Errorf("Validate: branch %d: %w", i, ErrSelfLoop)
		}
		if err := CheckReactance(br.Reactance); err != nil {
			return fmt.Errorf("Validate: branch %d (%d-%d): %w", i, br.From, br.To, err)
		}
	}

	return nil
}

// CheckReactance reports whether x can be inverted into an admittance.
func CheckReactance(x float64) error {
	if !finite(x) {
		return ErrInvalidReactance
	}
	if x == 0 {
		return ErrZeroReactance
	}

	return nil
}

// Name returns the case name.
func (n *Network) Name() string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.name
}

// BaseMVA returns the system base.
func (n *Network) BaseMVA() float64 {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.baseMVA
}

// BusCount returns the number of buses.
func (n *Network) BusCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.buses)
}

// BranchCount returns the number of branches.
func (n *Network) BranchCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.branches)
}

// Buses returns a copy of the bus list in insertion order.
// Complexity: O(N).
func (n *Network) Buses() []Bus {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]Bus, len(n.buses))
	copy(out, n.buses)

	return out
}

// Branches returns a copy of the branch list in insertion order.
// Complexity: O(B).
func (n *Network) Branches() []Branch {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]Branch, len(n.branches))
	copy(out, n.branches)

	return out
}

// Bus returns the bus with the given id.
func (n *Network) Bus(id int) (Bus, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	idx, ok := n.byID[id]
	if !ok {
		return Bus{}, fmt.Errorf("Bus(%d): %w", id, ErrUnknownBus)
	}

	return n.buses[idx], nil
}

// BusIndex returns the position of bus id in bus order.
func (n *Network) BusIndex(id int) (int, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	idx, ok := n.byID[id]

	return idx, ok
}

// Clone returns an independent deep copy.
// Complexity: O(N + B).
func (n *Network) Clone() *Network {
	n.mu.RLock()
	defer n.mu.RUnlock()

	cp := &Network{
		name:     n.name,
		baseMVA:  n.baseMVA,
		buses:    make([]Bus, len(n.buses)),
		branches: make([]Branch, len(n.branches)),
		byID:     make(map[int]int, len(n.byID)),
	}
	copy(cp.buses, n.buses)
	copy(cp.branches, n.branches)
	for id, idx := range n.byID {
		cp.byID[id] = idx
	}

	return cp
}

// Build assembles a Network from explicit lists, preserving their order.
// It stops at the first AddBus/AddBranch error.
func Build(buses []Bus, branches []Branch, opts ...Option) (*Network, error) {
	n := New(opts...)
	for _, b := range buses {
		if _, err := n.AddBus(b); err != nil {
			return nil, err
		}
	}
	for _, br := range branches {
		if _, err := n.AddBranch(br); err != nil {
			return nil, err
		}
	}

	return n, nil
}
