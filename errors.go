package sketch

import (
	"errors"

	"github.com/gogpu/sketch/graph"
)

// ErrScratchInUse reports an overlapping mutable borrow of the intermediary
// mesh. Resolution takes an exclusive borrow for each geometry write;
// sequential nested writes in one resolution chain are fine, overlap is a
// programming error.
var ErrScratchInUse = errors.New("sketch: intermediary mesh already borrowed")

// ErrNodeNotFound reports a lookup of a node the geometry graph does not
// contain. It mirrors graph.ErrNodeNotFound so callers can match it without
// importing the graph package.
var ErrNodeNotFound = graph.ErrNodeNotFound
