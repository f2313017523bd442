package art

import "github.com/hashicorp/go-hclog"

// tree - adaptive radix tree type.
type tree struct {
	root   *artNode
	size   int64
	logger hclog.Logger
}

// newArt returns art with 0 nodes.
func newArt(opts ...Option) *tree {
	t := &tree{root: nil, size: 0, logger: hclog.NewNullLogger()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Search returns the value stored under the passed in key.
func (t *tree) Search(key Key) (Value, bool) {
	current := t.root
	depth := 0
	for current != nil {
		if current.isLeaf() {
			if current.isMatch(key) {
				return current.leafNode().value, true
			}
			return nil, false
		}

		meta := current.node()
		if current.prefixMismatch(key, depth) != meta.prefixLen {
			return nil, false
		}
		depth += meta.prefixLen

		if depth >= len(key) {
			current = *(current.findChild(0, true))
		} else {
			current = *(current.findChild(key[depth], false))
		}
		depth++
	}

	return nil, false
}

// Insert stores value under key, replacing any prior value.
func (t *tree) Insert(key Key, value Value) bool {
	t.insertHelper(&t.root, key, value, 0)
	return true
}

// insertHelper is a helper function for Insert.
func (t *tree) insertHelper(currentRef **artNode, key Key, value Value, depth int) {
	if *currentRef == nil {
		*currentRef = newLeafNode(key, value)
		t.size++
		return
	}
	current := *currentRef

	if current.isLeaf() {
		if current.isMatch(key) {
			leaf := current.leafNode()
			leaf.value = make(Value, len(value))
			copy(leaf.value, value)
			return
		}

		// Two distinct keys now share this slot. A node4 goes above them
		// carrying their common run of bytes as its compressed prefix.
		branch := newNode4()
		newLeaf := newLeafNode(key, value)

		limit := current.longestCommonPrefix(newLeaf, depth)
		branch.node().prefixLen = limit
		memcpy(branch.node().prefix[:], key[depth:], min(limit, maxPrefixLen))

		t.addLeafEdge(branch, current, current.leafNode().key, depth+limit)
		t.addLeafEdge(branch, newLeaf, key, depth+limit)

		t.logger.Debug("leaf split", "depth", depth, "prefix_len", limit)

		*currentRef = branch
		t.size++
		return
	}

	meta := current.node()
	mismatch := current.prefixMismatch(key, depth)
	if mismatch != meta.prefixLen {
		// The compressed path diverges from the key. A new node4 keeps
		// the matching head; the old node keeps the tail minus the edge
		// byte it is now reachable by.
		branch := newNode4()
		branch.node().prefixLen = mismatch
		memcpy(branch.node().prefix[:], meta.prefix[:], min(mismatch, maxPrefixLen))

		if meta.prefixLen <= maxPrefixLen {
			branch.addChild(meta.prefix[mismatch], current, false)
			meta.prefixLen -= mismatch + 1
			memmove(meta.prefix[:], meta.prefix[mismatch+1:], min(meta.prefixLen, maxPrefixLen))
		} else {
			// The path runs past the stored window, so the stored bytes
			// cannot supply the edge byte and the shortened prefix; the
			// subtree's minimum leaf spells out the real path bytes.
			minKey := current.minimum().leafNode().key
			branch.addChild(minKey[depth+mismatch], current, false)
			meta.prefixLen -= mismatch + 1
			memcpy(meta.prefix[:], minKey[depth+mismatch+1:], min(meta.prefixLen, maxPrefixLen))
		}

		t.addLeafEdge(branch, newLeafNode(key, value), key, depth+mismatch)

		t.logger.Debug("prefix split", "depth", depth,
			"kept_prefix_len", mismatch, "lowered_kind", current.nodeType)

		*currentRef = branch
		t.size++
		return
	}

	depth += meta.prefixLen

	if depth >= len(key) {
		// Key exhausted at this node: route through the terminal slot.
		next := current.findChild(0, true)
		if *next != nil {
			t.insertHelper(next, key, value, depth+1)
			return
		}
		current.addChild(0, newLeafNode(key, value), true)
		t.size++
		return
	}

	next := current.findChild(key[depth], false)
	if *next != nil {
		t.insertHelper(next, key, value, depth+1)
		return
	}

	if current.isFull() {
		t.logger.Debug("growing node", "kind", current.nodeType,
			"children", current.node().size, "depth", depth)
		current.grow()
	}
	if !current.addChild(key[depth], newLeafNode(key, value), false) {
		// Growth just made room, a second refusal is a bug.
		panic("art: add child failed after growth")
	}
	t.size++
}

// addLeafEdge hangs leaf off branch by the key byte at offset, or as the
// terminal child when the key is exhausted there.
func (t *tree) addLeafEdge(branch *artNode, leaf *artNode, key Key, offset int) {
	if offset >= len(key) {
		branch.addChild(0, leaf, true)
		return
	}
	branch.addChild(key[offset], leaf, false)
}

// Each walks the whole tree in preorder and calls the given callback for
// each tree node. Children are visited in ascending edge byte order with
// the terminal leaf first.
func (t *tree) Each(callback Callback) {
	t.eachHelper(t.root, callback)
}

// eachHelper is a helper function of Each.
func (t *tree) eachHelper(current *artNode, callback Callback) {
	if current == nil {
		return
	}

	callback(current)

	current.forEachChild(func(child *artNode) {
		t.eachHelper(child, callback)
	})
}

// Size returns the number of leafNodes (key-value) in the tree.
func (t *tree) Size() int {
	return int(t.size)
}

// Reset tears the whole tree down, detaching every node exactly once so
// the structure is reclaimable immediately. The tree is empty afterwards.
func (t *tree) Reset() {
	t.resetHelper(t.root)
	t.root = nil
	t.size = 0
}

// resetHelper is a helper function of Reset.
func (t *tree) resetHelper(current *artNode) {
	if current == nil {
		return
	}

	if current.isLeaf() {
		t.logger.Trace("teardown", "kind", current.nodeType, "key", current.leafNode().key)
		return
	}

	meta := current.node()
	t.logger.Trace("teardown", "kind", current.nodeType,
		"prefix", meta.prefix[:min(meta.prefixLen, maxPrefixLen)], "children", meta.size)

	t.resetHelper(meta.terminal)
	meta.terminal = nil

	switch current.nodeType {
	case Node4:
		n4 := current.node4()
		for i := range n4.children {
			t.resetHelper(n4.children[i])
			n4.children[i] = nil
		}
	case Node16:
		n16 := current.node16()
		for i := range n16.children {
			t.resetHelper(n16.children[i])
			n16.children[i] = nil
		}
	case Node48:
		n48 := current.node48()
		for i := range n48.children {
			t.resetHelper(n48.children[i])
			n48.children[i] = nil
		}
	case Node256:
		n256 := current.node256()
		for i := range n256.children {
			t.resetHelper(n256.children[i])
			n256.children[i] = nil
		}
	}
	meta.size = 0
}

// memcpy copies numBytes bytes from src to dst.
func memcpy(dst []byte, src []byte, numBytes int) {
	for i := 0; i < numBytes && i < len(src) && i < len(dst); i++ {
		dst[i] = src[i]
	}
}

// memmove moves numBytes bytes from src to dst.
func memmove(dst []byte, src []byte, numBytes int) {
	for i := 0; i < numBytes; i++ {
		dst[i] = src[i]
	}
}
