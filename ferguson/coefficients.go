package ferguson

import (
	"github.com/notargets/meshgrad/grid"
	"github.com/notargets/meshgrad/types"
	"github.com/notargets/meshgrad/utils"
)

/*
Coefficients builds the geometry coefficient matrix of one field for the patch with corners
p00 (w,h), p01 (w,h+1), p10 (w+1,h) and p11 (w+1,h+1).

For a position axis with l, u, v the axis component of position, u tangent and v tangent,
the result is the transpose of

	[ l(p00) l(p01) v(p00) v(p01) ]
	[ l(p10) l(p11) v(p10) v(p11) ]
	[ u(p00) u(p01)   0      0    ]
	[ u(p10) u(p11)   0      0    ]

A color channel has no slope terms, only the corner values in the upper left 2x2 block.
*/
func Coefficients(p00, p01, p10, p11 *grid.ControlPoint, field types.FIELD) (G utils.Mat4) {
	var (
		A utils.Mat4
		l = func(p *grid.ControlPoint) float64 { return p.Value(field) }
	)
	A[0][0], A[0][1] = l(p00), l(p01)
	A[1][0], A[1][1] = l(p10), l(p11)
	if field.IsPosition() {
		var (
			c = field.Component()
			u = func(p *grid.ControlPoint) float64 { return p.UTangent()[c] }
			v = func(p *grid.ControlPoint) float64 { return p.VTangent()[c] }
		)
		A[0][2], A[0][3] = v(p00), v(p01)
		A[1][2], A[1][3] = v(p10), v(p11)
		A[2][0], A[2][1] = u(p00), u(p01)
		A[3][0], A[3][1] = u(p10), u(p11)
	}
	G = A.Transpose()
	return
}
