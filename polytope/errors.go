package polytope

import "errors"

// Sentinel errors for polytope construction and queries.
var (
	// ErrNoSubfaces indicates Children was called on a rank-0 element.
	ErrNoSubfaces = errors.New("polytope: vertices have no subfaces")

	// ErrNoParent indicates Parents was called on a top-rank element.
	ErrNoParent = errors.New("polytope: top-rank element has no superfaces")

	// ErrRankOutOfRange indicates a rank outside [0, polytope rank].
	ErrRankOutOfRange = errors.New("polytope: rank out of range")

	// ErrDegenerateFace indicates a face with fewer than three vertices.
	ErrDegenerateFace = errors.New("polytope: face needs at least three vertices")

	// ErrIndexOutOfRange indicates a subface index referencing a
	// non-existent element.
	ErrIndexOutOfRange = errors.New("polytope: subface index out of range")

	// ErrBrokenCycle indicates a boundary edge set that does not chain into
	// a single closed cycle. This is an internal-consistency failure of the
	// incidence data, not legitimate input, and always propagates.
	ErrBrokenCycle = errors.New("polytope: boundary does not form a single closed cycle")
)
