package pythagoras

// NoChild marks an absent child index in the node arena.
const NoChild = int32(-1)

// Node is one square of the fractal. X and Y are position offsets in the
// parent's local coordinate frame (not absolute surface coordinates); Width
// is the square's edge length; Rotation is in degrees and pivots about the
// corner implied by Branch.
//
// Left and Right index into the owning Tree's arena; NoChild means leaf on
// that side. Level strictly increases by 1 from parent to child.
type Node struct {
	Branch   Branch
	Level    int
	X, Y     float64
	Width    float64
	Rotation float64
	Left     int32
	Right    int32
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == NoChild && n.Right == NoChild
}

// Tree is an arena of fractal nodes. The root is always index 0. Using a
// flat arena with index links instead of pointer-owned children makes
// whole-tree disposal between rebuilds a length reset instead of a
// recursive teardown.
type Tree struct {
	nodes []Node
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Node returns a pointer to the node at the given arena index.
// The pointer is invalidated by the next rebuild.
func (t *Tree) Node(i int32) *Node {
	return &t.nodes[i]
}

// Root returns the root node, or nil if the tree is empty.
func (t *Tree) Root() *Node {
	if len(t.nodes) == 0 {
		return nil
	}
	return &t.nodes[0]
}

// reset empties the arena, retaining its backing storage for the next build.
func (t *Tree) reset() {
	t.nodes = t.nodes[:0]
}

// push appends a node and returns its arena index.
func (t *Tree) push(n Node) int32 {
	t.nodes = append(t.nodes, n)
	return int32(len(t.nodes) - 1)
}

// Walk visits every node depth-first, left before right, calling fn with
// each node's arena index. Parents are visited before their children.
func (t *Tree) Walk(fn func(i int32)) {
	if len(t.nodes) == 0 {
		return
	}
	t.walk(0, fn)
}

func (t *Tree) walk(i int32, fn func(i int32)) {
	fn(i)
	n := &t.nodes[i]
	if n.Left != NoChild {
		t.walk(n.Left, fn)
	}
	if n.Right != NoChild {
		t.walk(n.Right, fn)
	}
}

// Builder constructs fractal trees for a fixed drawing surface, consulting
// a CalcCache at each branching step and populating it on miss. The arena
// is reused across builds, so a returned *Tree is only valid until the
// next Build call.
type Builder struct {
	SurfaceWidth  float64
	SurfaceHeight float64
	BaseWidth     float64

	cache *CalcCache
}

// NewBuilder creates a Builder for the given surface. If cache is nil a
// default-capacity cache is created.
func NewBuilder(surfaceW, surfaceH, baseWidth float64, cache *CalcCache) *Builder {
	if cache == nil {
		cache = NewCalcCache(0)
	}
	return &Builder{
		SurfaceWidth:  surfaceW,
		SurfaceHeight: surfaceH,
		BaseWidth:     baseWidth,
		cache:         cache,
	}
}

// Cache returns the builder's calculation cache.
func (b *Builder) Cache() *CalcCache {
	return b.cache
}

// Build constructs the fractal up to depthLimit, reusing the arena from the
// previous build. The root square is centered horizontally and flush with
// the bottom of the surface. The tree shape is deterministic given params
// and depthLimit; traversal order (left before right) matters only for
// cache population order.
func (b *Builder) Build(tree *Tree, params ShapeParams, depthLimit int) {
	tree.reset()
	root := tree.push(Node{
		Branch: BranchNone,
		Level:  0,
		X:      b.SurfaceWidth/2 - b.BaseWidth/2,
		Y:      b.SurfaceHeight - b.BaseWidth,
		Width:  b.BaseWidth,
		Left:   NoChild,
		Right:  NoChild,
	})
	b.grow(tree, root, params, depthLimit)
}

// grow attaches children to the node at index i and recurses. A node stays
// a leaf once its level reaches depthLimit or its width shrinks below one
// pixel; the width guard also terminates recursion for pathological
// parameter combinations.
func (b *Builder) grow(tree *Tree, i int32, params ShapeParams, depthLimit int) {
	n := tree.nodes[i]
	if n.Level >= depthLimit || n.Width < 1 {
		return
	}

	res := b.cache.GetOrCompute(n.Width, params.HeightFactor, params.Lean)

	left := tree.push(Node{
		Branch:   BranchLeft,
		Level:    n.Level + 1,
		X:        0,
		Y:        -res.NextLeft,
		Width:    res.NextLeft,
		Rotation: -res.AngleLeft,
		Left:     NoChild,
		Right:    NoChild,
	})
	right := tree.push(Node{
		Branch:   BranchRight,
		Level:    n.Level + 1,
		X:        n.Width - res.NextRight,
		Y:        -res.NextRight,
		Width:    res.NextRight,
		Rotation: res.AngleRight,
		Left:     NoChild,
		Right:    NoChild,
	})

	// push may have grown the arena; index again rather than holding a pointer.
	tree.nodes[i].Left = left
	tree.nodes[i].Right = right

	b.grow(tree, left, params, depthLimit)
	b.grow(tree, right, params, depthLimit)
}
