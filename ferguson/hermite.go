// Package ferguson evaluates bicubic Hermite (Ferguson) patches spanned by four
// adjacent control points of a grid.
package ferguson

import (
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/meshgrad/utils"
)

// H is the Hermite basis transform, H·Cubic(t) = (h00, h01, h10, h11)(t)
var H = utils.Mat4{
	{2, -3, 0, 1},
	{-2, 3, 0, 0},
	{1, -2, 1, 0},
	{1, -1, 0, 0},
}

func Cubic(t float64) utils.Vec4 {
	return utils.Vec4{t * t * t, t * t, t, 1}
}

/*
Basis returns the four Hermite weights at t:
	h00 = 2t³-3t²+1, h01 = -2t³+3t², h10 = t³-2t²+t, h11 = t³-t²
*/
func Basis(t float64) utils.Vec4 {
	return H.MulVec(Cubic(t))
}

// BlendMatrix is M = Hᵗ·Gᵗ·H for a field's geometry coefficient matrix G
func BlendMatrix(G utils.Mat4) utils.Mat4 {
	var (
		Hd      = H.Dense()
		HtGt, M mat.Dense
	)
	HtGt.Mul(Hd.T(), G.Dense().T())
	M.Mul(&HtGt, Hd)
	return utils.NewMat4FromDense(&M)
}

// Evaluate returns (M·Cubic(u))·Cubic(v) for a blend matrix M
func Evaluate(M utils.Mat4, u, v float64) float64 {
	return M.MulVec(Cubic(u)).Dot(Cubic(v))
}

// EvaluateField evaluates a field straight from its coefficient matrix, rebuilding M on each call
func EvaluateField(G utils.Mat4, u, v float64) float64 {
	return Evaluate(BlendMatrix(G), u, v)
}
