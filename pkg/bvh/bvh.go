// Package bvh builds and traverses a surface-area-heuristic bounding
// volume hierarchy over an arbitrary set of bounded, centroid-bearing
// primitives.
package bvh

import (
	"sort"

	"github.com/rngbrew/pathtracer/pkg/vecmath"
)

// numBuckets is the number of SAH buckets used to evaluate candidate
// splits along the chosen axis.
const numBuckets = 12

// maxPrimsInNode is the leaf-size threshold: a range of at most this many
// primitives becomes a leaf when the cheapest SAH split is no cheaper than
// storing it as one; a larger range is always split (see sahSplit).
const maxPrimsInNode = 250

// Bounded is satisfied by anything that has a precomputed bounding box,
// such as geom.Face. Build itself takes the boxes directly, as a slice of
// vecmath.AABB indexed by primitive id.
type Bounded interface {
	Bounds() vecmath.AABB
}

// primitiveInfo is the per-primitive bookkeeping used only during the
// build; it does not survive into the tree.
type primitiveInfo struct {
	id       int
	bounds   vecmath.AABB
	centroid vecmath.Vec3
}

// Node is a binary BVH node. Interior nodes carry Left/Right and
// SplitAxis; leaves carry FirstPrimOffset/Count indexing into the BVH's
// OrderedPrims permutation. A node is a leaf iff Left == nil.
type Node struct {
	Bounds          vecmath.AABB
	SplitAxis       int
	Left, Right     *Node
	FirstPrimOffset int
	Count           int
}

// IsLeaf reports whether this node is a leaf.
func (n *Node) IsLeaf() bool { return n.Left == nil }

// BVH is a built hierarchy together with the primitive permutation its
// leaves index into.
type BVH struct {
	Root         *Node
	OrderedPrims []int
}

// Build constructs a BVH over the given bounded primitives, identified by
// their index into bounds. The returned BVH's OrderedPrims is a
// permutation of [0, len(bounds)) — every input index appears exactly
// once, grouped contiguously by leaf.
func Build(bounds []vecmath.AABB) *BVH {
	if len(bounds) == 0 {
		return &BVH{}
	}

	infos := make([]primitiveInfo, len(bounds))
	for i, b := range bounds {
		infos[i] = primitiveInfo{id: i, bounds: b, centroid: b.Centroid()}
	}

	b := &BVH{OrderedPrims: make([]int, 0, len(bounds))}
	b.Root = b.recursiveBuild(infos)
	return b
}

func unionBounds(infos []primitiveInfo) vecmath.AABB {
	bounds := vecmath.EmptyAABB()
	for _, info := range infos {
		bounds = bounds.Union(info.bounds)
	}
	return bounds
}

func unionCentroids(infos []primitiveInfo) vecmath.AABB {
	bounds := vecmath.EmptyAABB()
	for _, info := range infos {
		bounds = bounds.UnionPoint(info.centroid)
	}
	return bounds
}

func (b *BVH) makeLeaf(infos []primitiveInfo, bounds vecmath.AABB) *Node {
	first := len(b.OrderedPrims)
	for _, info := range infos {
		b.OrderedPrims = append(b.OrderedPrims, info.id)
	}
	return &Node{Bounds: bounds, FirstPrimOffset: first, Count: len(infos)}
}

// recursiveBuild implements the build algorithm: median split for small
// ranges, SAH-with-buckets above that, falling back to a leaf whenever no
// split beats the cost of just storing the range.
func (b *BVH) recursiveBuild(infos []primitiveInfo) *Node {
	bounds := unionBounds(infos)

	if len(infos) == 1 {
		return b.makeLeaf(infos, bounds)
	}

	centroidBounds := unionCentroids(infos)
	dim := centroidBounds.MaxExtentAxis()
	if centroidBounds.Max.Component(dim) == centroidBounds.Min.Component(dim) {
		return b.makeLeaf(infos, bounds)
	}

	if len(infos) <= 4 {
		mid := len(infos) / 2
		nthElementByAxis(infos, dim, mid)
		left := b.recursiveBuild(infos[:mid])
		right := b.recursiveBuild(infos[mid:])
		return &Node{Bounds: bounds, SplitAxis: dim, Left: left, Right: right}
	}

	mid, ok := b.sahSplit(infos, dim, bounds, centroidBounds)
	if !ok {
		return b.makeLeaf(infos, bounds)
	}

	left := b.recursiveBuild(infos[:mid])
	right := b.recursiveBuild(infos[mid:])
	return &Node{Bounds: bounds, SplitAxis: dim, Left: left, Right: right}
}

type bucketInfo struct {
	count  int
	bounds vecmath.AABB
}

// sahSplit evaluates the 12-bucket SAH cost for every candidate split
// along dim and partitions infos in place if the winning split beats the
// cost of leaving the range as one leaf, or unconditionally when the range
// holds more than maxPrimsInNode primitives. It returns the split index and
// whether a split was chosen.
func (b *BVH) sahSplit(infos []primitiveInfo, dim int, bounds, centroidBounds vecmath.AABB) (int, bool) {
	n := len(infos)

	bucketOf := func(info primitiveInfo) int {
		offset := centroidBounds.Offset(info.centroid).Component(dim)
		idx := int(float64(numBuckets) * offset)
		if idx < 0 {
			idx = 0
		}
		if idx >= numBuckets {
			idx = numBuckets - 1
		}
		return idx
	}

	var bkt [numBuckets]bucketInfo
	for i := range bkt {
		bkt[i].bounds = vecmath.EmptyAABB()
	}
	for _, info := range infos {
		idx := bucketOf(info)
		bkt[idx].count++
		bkt[idx].bounds = bkt[idx].bounds.Union(info.bounds)
	}

	// Prefix sums (bucket 0..k inclusive) and suffix sums (bucket k+1..end)
	// let each split k in [0, numBuckets-2] be evaluated in O(1) after an
	// O(numBuckets) pass.
	var prefixCount [numBuckets]int
	var prefixBounds [numBuckets]vecmath.AABB
	runningCount := 0
	runningBounds := vecmath.EmptyAABB()
	for i := 0; i < numBuckets; i++ {
		runningCount += bkt[i].count
		runningBounds = runningBounds.Union(bkt[i].bounds)
		prefixCount[i] = runningCount
		prefixBounds[i] = runningBounds
	}

	var suffixCount [numBuckets]int
	var suffixBounds [numBuckets]vecmath.AABB
	runningCount = 0
	runningBounds = vecmath.EmptyAABB()
	for i := numBuckets - 1; i >= 0; i-- {
		runningCount += bkt[i].count
		runningBounds = runningBounds.Union(bkt[i].bounds)
		suffixCount[i] = runningCount
		suffixBounds[i] = runningBounds
	}

	surfaceArea := bounds.SurfaceArea()
	minCost := -1.0
	minCostSplit := -1
	for k := 0; k < numBuckets-1; k++ {
		n0 := prefixCount[k]
		n1 := suffixCount[k+1]
		if n0 == 0 || n1 == 0 {
			continue
		}
		cost := 0.125 + (float64(n0)*prefixBounds[k].SurfaceArea()+float64(n1)*suffixBounds[k+1].SurfaceArea())/surfaceArea
		if minCostSplit == -1 || cost < minCost {
			minCost = cost
			minCostSplit = k
		}
	}

	leafCost := float64(n)
	if minCostSplit == -1 || (n <= maxPrimsInNode && minCost >= leafCost) {
		return 0, false
	}

	mid := partitionByBucket(infos, bucketOf, minCostSplit)
	return mid, true
}

// partitionByBucket moves every primitive whose bucket is <= splitBucket
// to the front of infos, in place, and returns the resulting split index.
func partitionByBucket(infos []primitiveInfo, bucketOf func(primitiveInfo) int, splitBucket int) int {
	i, j := 0, len(infos)-1
	for i <= j {
		for i <= j && bucketOf(infos[i]) <= splitBucket {
			i++
		}
		for i <= j && bucketOf(infos[j]) > splitBucket {
			j--
		}
		if i < j {
			infos[i], infos[j] = infos[j], infos[i]
			i++
			j--
		}
	}
	return i
}

// nthElementByAxis partitions infos so that the element at index mid is
// in its sorted position along the given axis's centroid component, with
// everything before it no greater and everything after no less. It does so
// by fully sorting the (at most four-element) range; mid is not used.
func nthElementByAxis(infos []primitiveInfo, axis, mid int) {
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].centroid.Component(axis) < infos[j].centroid.Component(axis)
	})
	_ = mid
}
