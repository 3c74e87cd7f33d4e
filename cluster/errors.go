package cluster

import "errors"

var (
	// ErrInvalidClusterSpec indicates an empty or out-of-range target set, a
	// sigma outside [0,1], or a spec that matches no observation.
	ErrInvalidClusterSpec = errors.New("cluster: invalid cluster spec")
	// ErrUnknownROI indicates a region with no scheme definition in the library.
	ErrUnknownROI = errors.New("cluster: unknown region of interest")
)
