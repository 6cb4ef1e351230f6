package cycle

import "errors"

// ErrCapacityExceeded is returned by NewChecker when the requested node
// count exceeds the checker's configured scratch capacity.
var ErrCapacityExceeded = errors.New("cycle: node count exceeds checker capacity")
