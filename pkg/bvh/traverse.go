package bvh

import (
	"math"

	"github.com/rngbrew/pathtracer/pkg/vecmath"
)

// Range is a half-open [Start, End) span into the BVH's OrderedPrims,
// naming the candidate primitives from one leaf that the ray's AABB test
// accepted. The caller is responsible for computing the true min-t
// intersection among the primitives named by the range.
type Range struct {
	Start, End int
}

type stackEntry struct {
	node *Node
}

// Candidates walks the tree with an explicit stack (bounded by ~2*log2(N)
// in the worst case) and appends every leaf range whose bounding box the
// ray's slab test accepts. It does not itself intersect primitives.
func (b *BVH) Candidates(ray vecmath.Ray) []Range {
	if b.Root == nil {
		return nil
	}

	var ranges []Range
	stack := make([]stackEntry, 0, 64)
	stack = append(stack, stackEntry{node: b.Root})

	for len(stack) > 0 {
		entry := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		node := entry.node

		if !node.Bounds.Hit(ray, vecmath.Epsilon, math.Inf(1)) {
			continue
		}

		if node.IsLeaf() {
			ranges = append(ranges, Range{Start: node.FirstPrimOffset, End: node.FirstPrimOffset + node.Count})
			continue
		}

		near, far := node.Left, node.Right
		if ray.Direction.Component(node.SplitAxis) < 0 {
			near, far = node.Right, node.Left
		}
		// Push far first so near is popped (visited) first.
		stack = append(stack, stackEntry{node: far}, stackEntry{node: near})
	}

	return ranges
}
