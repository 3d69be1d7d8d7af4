package satcheck

import "errors"

// ErrIndeterminate is returned when the underlying solver reports neither
// sat nor unsat, which gini only does if Solve is interrupted; callers of
// ConsistentBoolean in this package never interrupt it, so this error is
// not expected in practice.
var ErrIndeterminate = errors.New("satcheck: solver returned an indeterminate result")
