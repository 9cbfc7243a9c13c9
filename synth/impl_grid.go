package synth

import (
	"fmt"

	"github.com/katalvlaran/gridres/network"
)

const (
	methodGrid  = "Grid"
	minGridSide = 1
)

// Grid returns a Constructor for a rows×cols lattice. Bus (r,c) has local
// index r*cols+c. Branches are emitted row-major: right neighbor, then down
// neighbor.
//
// Complexity: O(rows*cols).
func Grid(rows, cols int) Constructor {
	return func(net *network.Network, cfg config) error {
		if rows < minGridSide || cols < minGridSide {
			return fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w", methodGrid, rows, cols, minGridSide, ErrTooFewVertices)
		}
		ids, err := addBuses(net, cfg, methodGrid, rows*cols)
		if err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				at := r*cols + c
				if c+1 < cols {
					if err = addBranch(net, cfg, methodGrid, ids[at], ids[at+1]); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = addBranch(net, cfg, methodGrid, ids[at], ids[at+cols]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
