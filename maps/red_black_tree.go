// Package maps provides a red-black tree implementation of the NavigableMap
// interface: a self-balancing binary search tree that maintains sorted
// key-value pairs with guaranteed O(log n) performance for insertions,
// deletions, lookups, and nearest-key navigation queries.
//
// Red-black trees enforce the following properties to maintain balance:
//  1. Every node is either red or black
//  2. The root is always black
//  3. All leaves (nil nodes) are considered black
//  4. Red nodes cannot have red children (no two consecutive red nodes on any path)
//  5. Every path from root to leaf contains the same number of black nodes
//
// These properties ensure the tree remains approximately balanced, preventing
// the worst-case O(n) behavior of unbalanced binary search trees. Nodes keep
// parent pointers, which is what makes the navigation queries (floor, lower,
// ceiling, higher) and in-order successor walks cheap.
package maps

import (
	"fmt"
	"iter"

	"github.com/amp-labs/amp-ranges/optional"
	"github.com/amp-labs/amp-ranges/sortable"
	"github.com/amp-labs/amp-ranges/zero"
)

// color represents the color of a red-black tree node.
type color bool

// String returns a human-readable representation of the node color.
func (c color) String() string {
	if c == black {
		return "Black"
	}

	return "Red"
}

// black and red are the two node colors in a red-black tree.
// Black is represented as true for a default zero-value of black when nodes are created.
const black, red color = true, false

// rbtNode represents a single node in the red-black tree.
// Each node stores a key-value pair, maintains pointers to its children and
// parent, and tracks its color for tree balancing.
type rbtNode[K sortable.Sortable[K], V any] struct {
	key    K
	value  V
	color  color
	left   *rbtNode[K, V]
	right  *rbtNode[K, V]
	parent *rbtNode[K, V]
}

// String returns a string representation of the node showing its key and color.
func (n *rbtNode[K, V]) String() string {
	return fmt.Sprintf("(%#v : %s)", n.key, n.color)
}

// pair packages a node's key and value for the optional-returning queries.
func (n *rbtNode[K, V]) pair() KeyValuePair[K, V] {
	return KeyValuePair[K, V]{Key: n.key, Value: n.value}
}

// redBlackTreeMap is the red-black tree implementation of NavigableMap.
// The entry count is tracked on every insert and delete, so Size is O(1);
// the interval map consults it on hot paths.
type redBlackTreeMap[K sortable.Sortable[K], V any] struct {
	root *rbtNode[K, V]
	size int
}

// NewNavigableMap creates a new empty red-black tree backed NavigableMap.
func NewNavigableMap[K sortable.Sortable[K], V any]() NavigableMap[K, V] {
	return &redBlackTreeMap[K, V]{}
}

// getNode descends from the root to the node holding key.
// Returns nil if the key is not present.
func (t *redBlackTreeMap[K, V]) getNode(key K) *rbtNode[K, V] {
	node := t.root
	for node != nil {
		switch {
		case key.Equals(node.key):
			return node
		case key.LessThan(node.key):
			node = node.left
		default:
			node = node.right
		}
	}

	return nil
}

// Get retrieves the value associated with the given key.
func (t *redBlackTreeMap[K, V]) Get(key K) (V, bool) {
	if node := t.getNode(key); node != nil {
		return node.value, true
	}

	return zero.Value[V](), false
}

// Contains checks whether the map contains the given key.
func (t *redBlackTreeMap[K, V]) Contains(key K) bool {
	return t.getNode(key) != nil
}

// Add inserts or updates a key-value pair in the map.
// If the key already exists, its value is updated in place.
// After an insertion, the tree is rebalanced to maintain red-black properties.
func (t *redBlackTreeMap[K, V]) Add(key K, value V) {
	if t.root == nil {
		t.root = &rbtNode[K, V]{key: key, color: black, value: value}
		t.size = 1

		return
	}

	node := t.root
	for {
		switch {
		case key.Equals(node.key):
			node.value = value

			return
		case key.LessThan(node.key):
			if node.left == nil {
				node.left = &rbtNode[K, V]{key: key, parent: node, value: value}
				t.size++
				t.fixupPut(node.left)

				return
			}

			node = node.left
		default:
			if node.right == nil {
				node.right = &rbtNode[K, V]{key: key, parent: node, value: value}
				t.size++
				t.fixupPut(node.right)

				return
			}

			node = node.right
		}
	}
}

// Remove deletes the key-value pair with the given key from the map.
// After deletion, the tree is rebalanced to maintain red-black properties.
// If the key doesn't exist, this is a no-op.
// nolint:varnamelen // Standard red-black tree variable names from CLRS
func (t *redBlackTreeMap[K, V]) Remove(key K) {
	z := t.getNode(key)
	if z == nil {
		return
	}

	t.size--

	y := z
	yOriginalColor := y.color

	// x is the node that replaces the spliced-out node, and xParent its
	// parent after the splice. x may be nil (a black leaf in red-black
	// terms), which is why the parent is tracked separately: the fixup
	// must still run at that position.
	var x, xParent *rbtNode[K, V]

	switch {
	case z.left == nil:
		x = z.right
		xParent = z.parent
		t.transplant(z, z.right)
	case z.right == nil:
		x = z.left
		xParent = z.parent
		t.transplant(z, z.left)
	default:
		y = minimum(z.right)
		yOriginalColor = y.color
		x = y.right

		if y.parent == z {
			xParent = y
		} else {
			xParent = y.parent
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}

		t.transplant(z, y)

		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}

	if yOriginalColor == black {
		t.fixupDelete(x, xParent)
	}
}

// Clear removes all entries from the map, resetting it to empty.
func (t *redBlackTreeMap[K, V]) Clear() {
	t.root = nil
	t.size = 0
}

// Size returns the number of key-value pairs in the map.
func (t *redBlackTreeMap[K, V]) Size() int {
	return t.size
}

// IsEmpty returns true if the map contains no entries.
func (t *redBlackTreeMap[K, V]) IsEmpty() bool {
	return t.size == 0
}

// FirstEntry returns the entry with the least key, or None if the map is empty.
func (t *redBlackTreeMap[K, V]) FirstEntry() optional.Value[KeyValuePair[K, V]] {
	if t.root == nil {
		return optional.None[KeyValuePair[K, V]]()
	}

	return optional.Some(minimum(t.root).pair())
}

// LastEntry returns the entry with the greatest key, or None if the map is empty.
func (t *redBlackTreeMap[K, V]) LastEntry() optional.Value[KeyValuePair[K, V]] {
	if t.root == nil {
		return optional.None[KeyValuePair[K, V]]()
	}

	return optional.Some(maximum(t.root).pair())
}

// floorNode returns the node with the greatest key <= key, or nil.
func (t *redBlackTreeMap[K, V]) floorNode(key K) *rbtNode[K, V] {
	var candidate *rbtNode[K, V]

	node := t.root
	for node != nil {
		switch {
		case key.Equals(node.key):
			return node
		case key.LessThan(node.key):
			node = node.left
		default:
			// node.key < key: a candidate, but something bigger
			// (yet still <= key) may sit in the right subtree.
			candidate = node
			node = node.right
		}
	}

	return candidate
}

// lowerNode returns the node with the greatest key < key, or nil.
func (t *redBlackTreeMap[K, V]) lowerNode(key K) *rbtNode[K, V] {
	var candidate *rbtNode[K, V]

	node := t.root
	for node != nil {
		if node.key.LessThan(key) {
			candidate = node
			node = node.right
		} else {
			node = node.left
		}
	}

	return candidate
}

// ceilingNode returns the node with the least key >= key, or nil.
func (t *redBlackTreeMap[K, V]) ceilingNode(key K) *rbtNode[K, V] {
	var candidate *rbtNode[K, V]

	node := t.root
	for node != nil {
		switch {
		case key.Equals(node.key):
			return node
		case node.key.LessThan(key):
			node = node.right
		default:
			candidate = node
			node = node.left
		}
	}

	return candidate
}

// higherNode returns the node with the least key > key, or nil.
func (t *redBlackTreeMap[K, V]) higherNode(key K) *rbtNode[K, V] {
	var candidate *rbtNode[K, V]

	node := t.root
	for node != nil {
		if key.LessThan(node.key) {
			candidate = node
			node = node.left
		} else {
			node = node.right
		}
	}

	return candidate
}

// FloorEntry returns the entry with the greatest key <= key, or None.
func (t *redBlackTreeMap[K, V]) FloorEntry(key K) optional.Value[KeyValuePair[K, V]] {
	return entryOf(t.floorNode(key))
}

// LowerEntry returns the entry with the greatest key < key, or None.
func (t *redBlackTreeMap[K, V]) LowerEntry(key K) optional.Value[KeyValuePair[K, V]] {
	return entryOf(t.lowerNode(key))
}

// CeilingEntry returns the entry with the least key >= key, or None.
func (t *redBlackTreeMap[K, V]) CeilingEntry(key K) optional.Value[KeyValuePair[K, V]] {
	return entryOf(t.ceilingNode(key))
}

// HigherEntry returns the entry with the least key > key, or None.
func (t *redBlackTreeMap[K, V]) HigherEntry(key K) optional.Value[KeyValuePair[K, V]] {
	return entryOf(t.higherNode(key))
}

// Seq returns an iterator over the map's key-value pairs in ascending key order.
func (t *redBlackTreeMap[K, V]) Seq() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if t.root == nil {
			return
		}

		for node := minimum(t.root); node != nil; node = successor(node) {
			if !yield(node.key, node.value) {
				return
			}
		}
	}
}

// SeqFrom returns an ascending iterator starting from the least key >= key.
func (t *redBlackTreeMap[K, V]) SeqFrom(key K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for node := t.ceilingNode(key); node != nil; node = successor(node) {
			if !yield(node.key, node.value) {
				return
			}
		}
	}
}

// Keys returns all keys in ascending order.
func (t *redBlackTreeMap[K, V]) Keys() []K {
	keys := make([]K, 0, t.size)
	for key := range t.Seq() {
		keys = append(keys, key)
	}

	return keys
}

// entryOf wraps a node into an optional entry, mapping nil to None.
func entryOf[K sortable.Sortable[K], V any](n *rbtNode[K, V]) optional.Value[KeyValuePair[K, V]] {
	if n == nil {
		return optional.None[KeyValuePair[K, V]]()
	}

	return optional.Some(n.pair())
}

// minimum returns the node with the minimum key in the subtree rooted at x.
// This is always the leftmost node in the subtree.
func minimum[K sortable.Sortable[K], V any](x *rbtNode[K, V]) *rbtNode[K, V] {
	for x.left != nil {
		x = x.left
	}

	return x
}

// maximum returns the node with the maximum key in the subtree rooted at x.
// This is always the rightmost node in the subtree.
func maximum[K sortable.Sortable[K], V any](x *rbtNode[K, V]) *rbtNode[K, V] {
	for x.right != nil {
		x = x.right
	}

	return x
}

// successor returns the in-order successor of x, or nil if x holds the
// greatest key. Either the minimum of the right subtree, or the nearest
// ancestor of which x lies in the left subtree.
func successor[K sortable.Sortable[K], V any](x *rbtNode[K, V]) *rbtNode[K, V] {
	if x.right != nil {
		return minimum(x.right)
	}

	parent := x.parent
	for parent != nil && x == parent.right {
		x = parent
		parent = parent.parent
	}

	return parent
}

// rotateRight performs a right rotation around node y.
// This is a fundamental operation for rebalancing the tree:
//
//	    y              x
//	   / \            / \
//	  x   C   =>     A   y
//	 / \                / \
//	A   B              B   C
//
// nolint:dupword,varnamelen // ASCII art; standard RB tree variable names
func (t *redBlackTreeMap[K, V]) rotateRight(y *rbtNode[K, V]) {
	if y == nil || y.left == nil {
		return
	}

	x := y.left //nolint:varnamelen // Standard red-black tree variable names from CLRS
	y.left = x.right

	if x.right != nil {
		x.right.parent = y
	}

	x.parent = y.parent

	switch {
	case y.parent == nil:
		t.root = x
	case y == y.parent.left:
		y.parent.left = x
	default:
		y.parent.right = x
	}

	x.right = y
	y.parent = x
}

// rotateLeft performs a left rotation around node x.
// This is a fundamental operation for rebalancing the tree:
//
//	  x                y
//	 / \              / \
//	A   y      =>    x   C
//	   / \          / \
//	  B   C        A   B
//
// nolint:varnamelen // Standard red-black tree variable names
func (t *redBlackTreeMap[K, V]) rotateLeft(x *rbtNode[K, V]) {
	if x == nil || x.right == nil {
		return
	}

	y := x.right //nolint:varnamelen // Standard red-black tree variable names from CLRS
	x.right = y.left

	if y.left != nil {
		y.left.parent = x
	}

	y.parent = x.parent

	switch {
	case x.parent == nil:
		t.root = y
	case x == x.parent.left:
		x.parent.left = y
	default:
		x.parent.right = y
	}

	y.left = x
	x.parent = y
}

// transplant replaces the subtree rooted at node u with the subtree rooted at node v.
// This is a helper used during node deletion.
func (t *redBlackTreeMap[K, V]) transplant(u *rbtNode[K, V], v *rbtNode[K, V]) {
	switch {
	case u.parent == nil:
		t.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}

	if v != nil {
		v.parent = u.parent
	}
}

// isRed returns true if the node is red, false if the node is black or nil.
// nil nodes are considered black by red-black tree convention.
func isRed[K sortable.Sortable[K], V any](n *rbtNode[K, V]) bool {
	if n == nil {
		return false
	}

	return n.color == red
}

// fixupPut restores red-black tree properties after inserting a new node.
// New nodes are inserted as red, which may violate the property that red nodes
// cannot have red children. This method fixes violations by recoloring and rotating.
//
// The algorithm handles several cases:
//  1. New node is root - color it black
//  2. Parent is black - no violation, done
//  3. Parent is red:
//     a. Uncle is red - recolor parent, uncle, and grandparent
//     b. Uncle is black - perform rotations and recoloring
//
// The method continues fixing violations up the tree until no violations remain.
// nolint:varnamelen // Standard red-black tree variable names
func (t *redBlackTreeMap[K, V]) fixupPut(z *rbtNode[K, V]) {
loop:
	for {
		switch {
		case z.parent == nil:
			fallthrough
		case z.parent.color == black:
			break loop
		case z.parent.color == red:
			grandparent := z.parent.parent
			if z.parent == grandparent.left { //nolint:nestif // Red-black tree algorithm complexity
				y := grandparent.right
				if isRed(y) {
					z.parent.color = black
					y.color = black
					grandparent.color = red
					z = grandparent
				} else {
					if z == z.parent.right {
						z = z.parent
						t.rotateLeft(z)
					}

					z.parent.color = black
					grandparent.color = red
					t.rotateRight(grandparent)
				}
			} else {
				y := grandparent.left
				if isRed(y) {
					z.parent.color = black
					y.color = black
					grandparent.color = red
					z = grandparent
				} else {
					if z == z.parent.left {
						z = z.parent
						t.rotateRight(z)
					}

					z.parent.color = black
					grandparent.color = red
					t.rotateLeft(grandparent)
				}
			}
		}
	}

	t.root.color = black
}

// fixupDelete restores red-black tree properties after deleting a node.
// Deletion can violate the property that all paths from root to leaf have the
// same number of black nodes. This method fixes violations by recoloring and rotating.
//
// x is the node occupying the spliced-out position and parent is its parent.
// x may be nil: a nil child counts as a black leaf, and parent is what lets
// the fixup operate at that position anyway. While x is black and not the
// root, every path through x is one black node short, and each iteration
// either repairs that locally or pushes the shortfall one level up.
//
// The cases, keyed on x's sibling w (never nil while the shortfall exists,
// because the sibling side carries at least one black node):
//  1. x is root or red - color it black, done
//  2. w is red - rotate and recolor so the sibling is black
//  3. w is black with two black children - recolor w, move the shortfall up
//  4. w is black with a red child - rotate and recolor, shortfall repaired
//
// nolint:varnamelen,dupl // Standard red-black tree variable names; symmetric cases
func (t *redBlackTreeMap[K, V]) fixupDelete(x, parent *rbtNode[K, V]) {
	for x != t.root && !isRed(x) {
		if x == parent.left { //nolint:nestif // Red-black tree algorithm complexity
			w := parent.right //nolint:varnamelen // Standard red-black tree variable names from CLRS
			if isRed(w) {
				w.color = black
				parent.color = red
				t.rotateLeft(parent)
				w = parent.right
			}

			if !isRed(w.left) && !isRed(w.right) {
				w.color = red
				x = parent // recurse up tree
				parent = x.parent

				continue
			}

			if !isRed(w.right) {
				w.left.color = black
				w.color = red
				t.rotateRight(w)
				w = parent.right
			}

			w.color = parent.color
			parent.color = black
			w.right.color = black
			t.rotateLeft(parent)
			x = t.root
		} else {
			w := parent.left //nolint:varnamelen // Standard red-black tree variable names from CLRS
			if isRed(w) {
				w.color = black
				parent.color = red
				t.rotateRight(parent)
				w = parent.left
			}

			if !isRed(w.left) && !isRed(w.right) {
				w.color = red
				x = parent // recurse up tree
				parent = x.parent

				continue
			}

			if !isRed(w.left) {
				w.right.color = black
				w.color = red
				t.rotateLeft(w)
				w = parent.left
			}

			w.color = parent.color
			parent.color = black
			w.left.color = black
			t.rotateRight(parent)
			x = t.root
		}
	}

	if x != nil {
		x.color = black
	}
}
