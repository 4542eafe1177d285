package geom4d

import (
	"errors"
	"fmt"
)

// ErrSingularProjection is returned when the viewer distance coincides
// with a point's W coordinate and the perspective divisor is zero.
var ErrSingularProjection = errors.New("singular projection: viewer distance equals point w")

// TopologyError reports an edge that does not describe valid wireframe
// topology for its shape.
type TopologyError struct {
	Edge   int    // index into the edge list
	Pair   [2]int // the offending vertex index pair
	Reason string
}

func (e *TopologyError) Error() string {
	return fmt.Sprintf("edge %d (%d,%d): %s", e.Edge, e.Pair[0], e.Pair[1], e.Reason)
}
