package pythagoras

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// nodeLocalTransform computes a node's local affine matrix: a translation by
// (X, Y) followed by a rotation about the branch pivot. Left children pivot
// about their bottom-left corner (0, Width); right children about their
// bottom-right corner (Width, Width). The root does not rotate.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func nodeLocalTransform(n *Node) [6]float64 {
	if n.Rotation == 0 {
		return [6]float64{1, 0, 0, 1, n.X, n.Y}
	}

	var px, py float64
	switch n.Branch {
	case BranchLeft:
		px, py = 0, n.Width
	case BranchRight:
		px, py = n.Width, n.Width
	}

	sin, cos := math.Sincos(n.Rotation * math.Pi / 180)

	// Translate(X, Y) * Translate(pivot) * Rotate * Translate(-pivot)
	return [6]float64{
		cos, sin, -sin, cos,
		n.X + px - (cos*px - sin*py),
		n.Y + py - (sin*px + cos*py),
	}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
