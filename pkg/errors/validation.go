package errors

// ValidateVertex validates that a vertex id lies inside [0, numVertices).
// The edge index is included in the message so callers can report which
// input edge referenced the bad vertex.
func ValidateVertex(v, numVertices, edgeIndex int) error {
	if v < 0 || v >= numVertices {
		return New(ErrCodeInvalidGraph,
			"edge %d references vertex %d outside [0, %d)", edgeIndex, v, numVertices)
	}
	return nil
}

// ValidateNodeIndex validates that a tree node id lies inside [0, numNodes).
func ValidateNodeIndex(node, numNodes int) error {
	if node < 0 || node >= numNodes {
		return New(ErrCodeIndexOutOfRange,
			"node %d outside node-id space [0, %d)", node, numNodes)
	}
	return nil
}

// ValidateLength validates that an array tied to a tree or graph has the
// expected length. The what argument names the array in the message
// (e.g. "altitudes", "deleted mask").
func ValidateLength(what string, got, want int) error {
	if got != want {
		return New(ErrCodeSizeMismatch, "%s has length %d, want %d", what, got, want)
	}
	return nil
}

// ValidateNonEmpty validates that a structure has at least one element.
func ValidateNonEmpty(what string, n int) error {
	if n <= 0 {
		return New(ErrCodeEmptyResult, "%s is empty", what)
	}
	return nil
}
