package utils

const (
	NODETOL = 1.e-12
	// FLOAT32TOL is the comparison tolerance for values that have been through a float32 artifact
	FLOAT32TOL = 1.e-6
)
