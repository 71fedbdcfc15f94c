package pythagoras

import "testing"

func TestNodeLocalTransformTranslationOnly(t *testing.T) {
	n := &Node{X: 10, Y: -20, Width: 80}
	m := nodeLocalTransform(n)

	x, y := transformPoint(m, 0, 0)
	if x != 10 || y != -20 {
		t.Errorf("origin maps to (%v, %v), want (10, -20)", x, y)
	}
	x, y = transformPoint(m, 80, 80)
	if x != 90 || y != 60 {
		t.Errorf("corner maps to (%v, %v), want (90, 60)", x, y)
	}
}

func TestNodeLocalTransformLeftPivot(t *testing.T) {
	// A left child rotates about its bottom-left corner (0, Width): that
	// corner must stay fixed under any rotation.
	n := &Node{Branch: BranchLeft, X: 0, Y: -50, Width: 50, Rotation: -45}
	m := nodeLocalTransform(n)

	x, y := transformPoint(m, 0, 50)
	if !approxEqual(x, 0) || !approxEqual(y, 0) {
		t.Errorf("pivot moved to (%v, %v), want (0, 0)", x, y)
	}
}

func TestNodeLocalTransformRightPivot(t *testing.T) {
	// A right child pivots about its bottom-right corner (Width, Width).
	n := &Node{Branch: BranchRight, X: 30, Y: -50, Width: 50, Rotation: 45}
	m := nodeLocalTransform(n)

	x, y := transformPoint(m, 50, 50)
	if !approxEqual(x, 80) || !approxEqual(y, 0) {
		t.Errorf("pivot moved to (%v, %v), want (80, 0)", x, y)
	}
}

func TestNodeLocalTransformRotationDirection(t *testing.T) {
	// Negative rotation turns counter-clockwise in the y-down coordinate
	// system: the top-left corner of a -90 degree left child lands to the
	// left of the pivot.
	n := &Node{Branch: BranchLeft, Width: 10, Rotation: -90}
	m := nodeLocalTransform(n)

	x, y := transformPoint(m, 0, 0) // top-left corner
	if !approxEqual(x, -10) || !approxEqual(y, 10) {
		t.Errorf("top-left maps to (%v, %v), want (-10, 10)", x, y)
	}
}

func TestMultiplyAffineIdentity(t *testing.T) {
	m := [6]float64{2, 0.5, -0.5, 2, 7, -3}
	if got := multiplyAffine(identityTransform, m); got != m {
		t.Errorf("I*m = %v, want %v", got, m)
	}
	if got := multiplyAffine(m, identityTransform); got != m {
		t.Errorf("m*I = %v, want %v", got, m)
	}
}

func TestMultiplyAffineComposition(t *testing.T) {
	// Composing two transforms then applying equals applying both in turn.
	rot := [6]float64{0, 1, -1, 0, 0, 0} // 90 degrees
	trans := [6]float64{1, 0, 0, 1, 5, 7}

	combined := multiplyAffine(trans, rot)
	x1, y1 := transformPoint(combined, 3, 4)

	x2, y2 := transformPoint(rot, 3, 4)
	x2, y2 = transformPoint(trans, x2, y2)

	if !approxEqual(x1, x2) || !approxEqual(y1, y2) {
		t.Errorf("composed (%v, %v) != sequential (%v, %v)", x1, y1, x2, y2)
	}
}

func TestWorldTransformDepthOne(t *testing.T) {
	// End-to-end: the depth-1 left child's bottom-left corner sits exactly
	// on the root's top-left corner in world space.
	b := testBuilder()
	var tree Tree
	b.Build(&tree, ShapeParams{HeightFactor: 0.5, Lean: 0}, 1)

	root := tree.Root()
	rootWorld := multiplyAffine(identityTransform, nodeLocalTransform(root))
	left := tree.Node(root.Left)
	leftWorld := multiplyAffine(rootWorld, nodeLocalTransform(left))

	rx, ry := transformPoint(rootWorld, 0, 0) // root top-left
	lx, ly := transformPoint(leftWorld, 0, left.Width)
	if !approxEqual(lx, rx) || !approxEqual(ly, ry) {
		t.Errorf("left child pivot at (%v, %v), want root top-left (%v, %v)", lx, ly, rx, ry)
	}

	// The rotated child's top edge rises above the root's top edge.
	_, ty := transformPoint(leftWorld, 0, 0)
	if ty >= ry {
		t.Errorf("rotated child top at y=%v, want above root top y=%v", ty, ry)
	}
}
