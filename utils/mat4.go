package utils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

/*
Fixed size vectors and matrices used by the per-sample patch math. They are value types so that
evaluating a patch at a (u,v) location never touches the heap. Conversion to and from gonum
matrices is provided for the once-per-patch work and for checking results against gonum.
*/
type Vec2 [2]float64
type Vec3 [3]float64
type Vec4 [4]float64

// Mat4 is stored row-major, M[i][j] is row i, column j
type Mat4 [4][4]float64

func (v Vec2) Add(a Vec2) Vec2        { return Vec2{v[0] + a[0], v[1] + a[1]} }
func (v Vec2) Sub(a Vec2) Vec2        { return Vec2{v[0] - a[0], v[1] - a[1]} }
func (v Vec2) Scale(s float64) Vec2   { return Vec2{v[0] * s, v[1] * s} }
func (v Vec3) Scale(s float64) Vec3   { return Vec3{v[0] * s, v[1] * s, v[2] * s} }
func (v Vec3) Add(a Vec3) Vec3        { return Vec3{v[0] + a[0], v[1] + a[1], v[2] + a[2]} }
func (v Vec4) Dot(a Vec4) (d float64) { return v[0]*a[0] + v[1]*a[1] + v[2]*a[2] + v[3]*a[3] }

func (v Vec2) Float32() [2]float32 { return [2]float32{float32(v[0]), float32(v[1])} }
func (v Vec3) Float32() [3]float32 { return [3]float32{float32(v[0]), float32(v[1]), float32(v[2])} }

func (v Vec2) Equal(a Vec2, tol float64) bool {
	return math.Abs(v[0]-a[0]) <= tol && math.Abs(v[1]-a[1]) <= tol
}

func (v Vec3) Equal(a Vec3, tol float64) bool {
	return math.Abs(v[0]-a[0]) <= tol && math.Abs(v[1]-a[1]) <= tol && math.Abs(v[2]-a[2]) <= tol
}

// InUnitRange is true when every component lies in [0,1]
func (v Vec3) InUnitRange() bool {
	for _, c := range v {
		if c < 0 || c > 1 || math.IsNaN(c) {
			return false
		}
	}
	return true
}

func (m Mat4) Transpose() (R Mat4) {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			R[j][i] = m[i][j]
		}
	}
	return
}

func (m Mat4) MulVec(v Vec4) (r Vec4) {
	for i := 0; i < 4; i++ {
		r[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2] + m[i][3]*v[3]
	}
	return
}

// Dense copies the matrix into a newly allocated gonum matrix
func (m Mat4) Dense() (D *mat.Dense) {
	D = mat.NewDense(4, 4, nil)
	for i := 0; i < 4; i++ {
		D.SetRow(i, m[i][:])
	}
	return
}

func NewMat4FromDense(M mat.Matrix) (R Mat4) {
	var (
		nr, nc = M.Dims()
	)
	if nr != 4 || nc != 4 {
		panic(fmt.Errorf("unable to build a Mat4 from a %dx%d matrix", nr, nc))
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			R[i][j] = M.At(i, j)
		}
	}
	return
}

func (m Mat4) String() string {
	return fmt.Sprintf("%v", mat.Formatted(m.Dense(), mat.Squeeze()))
}
