package world

import (
	"iter"

	"github.com/samdwyer/tetra/internal/random"
)

// minLeafSize is the smallest BSP leaf dimension before splitting stops.
const minLeafSize = 10

// bspNode represents a node in the BSP tree.
type bspNode struct {
	x, y          int
	width, height int
	left, right   *bspNode
}

// isLeaf returns true if this node has no children.
func (n *bspNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// BSPRooms yields one room per leaf of a binary space partition of the map.
// Leaves are disjoint, so every candidate is accepted by PlaceRoom, and leaves
// are visited left to right which keeps consecutive corridors short.
func BSPRooms(rng random.Rng, width, height int, settings RoomSettings) iter.Seq[Room] {
	return func(yield func(Room) bool) {
		// Start BSP with the entire map as root
		root := &bspNode{
			x:      1,
			y:      1,
			width:  width - 2,
			height: height - 2,
		}
		splitNode(rng, root)
		walkLeaves(root, func(leaf *bspNode) bool {
			room, ok := roomInLeaf(rng, leaf, settings)
			if !ok {
				return true
			}
			return yield(room)
		})
	}
}

// splitNode recursively splits a BSP node.
func splitNode(rng random.Rng, node *bspNode) {
	// Stop if too small to split
	if node.width < minLeafSize*2 && node.height < minLeafSize*2 {
		return
	}

	// Determine split direction
	var splitHorizontally bool
	if node.width > node.height && node.width >= minLeafSize*2 {
		splitHorizontally = false
	} else if node.height >= minLeafSize*2 {
		splitHorizontally = true
	} else if node.width >= minLeafSize*2 {
		splitHorizontally = false
	} else {
		return
	}

	extent := node.width
	if splitHorizontally {
		extent = node.height
	}
	if extent-minLeafSize <= minLeafSize {
		return
	}
	splitPos := rng.Between(minLeafSize, extent-minLeafSize+1)

	if splitHorizontally {
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: splitPos}
		node.right = &bspNode{x: node.x, y: node.y + splitPos, width: node.width, height: node.height - splitPos}
	} else {
		node.left = &bspNode{x: node.x, y: node.y, width: splitPos, height: node.height}
		node.right = &bspNode{x: node.x + splitPos, y: node.y, width: node.width - splitPos, height: node.height}
	}

	splitNode(rng, node.left)
	splitNode(rng, node.right)
}

// walkLeaves visits leaves in order until visit returns false.
func walkLeaves(node *bspNode, visit func(*bspNode) bool) bool {
	if node == nil {
		return true
	}
	if node.isLeaf() {
		return visit(node)
	}
	return walkLeaves(node.left, visit) && walkLeaves(node.right, visit)
}

// roomInLeaf sizes and positions a room inside a leaf. The room's bounding
// box stays at least one cell inside the leaf.
func roomInLeaf(rng random.Rng, leaf *bspNode, settings RoomSettings) (Room, bool) {
	if settings.MinSize > leaf.width-2 || settings.MinSize > leaf.height-2 {
		return Room{}, false
	}

	w := rng.Between(settings.MinSize, min(settings.MaxSize, leaf.width-1))
	h := rng.Between(settings.MinSize, min(settings.MaxSize, leaf.height-1))
	x := leaf.x + rng.Between(0, leaf.width-w-1)
	y := leaf.y + rng.Between(0, leaf.height-h-1)

	return NewRoom(x, y, w, h), true
}
