// SPDX-License-Identifier: MIT

package engine

// Route maps a cell's linear index to a lane: index mod lanes.
// Precondition: lanes > 0, index >= 0.
func Route(index, lanes int) int { return index % lanes }

// Router is a fixed-width Route.
type Router struct {
	lanes int
}

// NewRouter returns a Router over n lanes or ErrInvalidLanes.
func NewRouter(n int) (Router, error) {
	if n <= 0 {
		return Router{}, ErrInvalidLanes
	}

	return Router{lanes: n}, nil
}

// Lanes returns the router width.
func (r Router) Lanes() int { return r.lanes }

// Lane returns the lane assigned to index.
func (r Router) Lane(index int) int { return Route(index, r.lanes) }
