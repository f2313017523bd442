package art

import (
	"bytes"
	"fmt"
)

// dumper outputs a string representation of the tree for debugging.
//
// For a tree holding [A, a, aa] it outputs something like:
//
//	─── node4 (0xc0000b4000)
//	    prefix(0): ""
//	    ├── leaf (0xc0000b4030)
//	    │   key: "A"
//	    │   val: "A"
//	    │
//	    └── node4 (0xc0000b4060)
//	        prefix(0): ""
//	        terminal: yes
//	        ├── leaf (0xc0000b4090)
//	        │   key: "a"
//	        │   val: "a"
//	        │
//	        └── leaf (0xc0000b40c0)
//	            key: "aa"
//	            val: "aa"
type dumper struct {
	buf         *bytes.Buffer
	nChildStack []int
}

// String returns the human readable debug output of the whole tree.
func (t *tree) String() string {
	d := &dumper{buf: bytes.NewBufferString("")}
	d.dumpNode(t.root)
	return d.buf.String()
}

func (d *dumper) isLastChild() bool {
	if len(d.nChildStack) < 1 {
		return true
	}
	return d.nChildStack[len(d.nChildStack)-1] == 1
}

func (d *dumper) padding() (string, string) {
	depth := len(d.nChildStack)
	if depth == 0 {
		return "───", "   "
	}
	pad := "    "
	for i := 0; i < depth-1; i++ {
		if d.nChildStack[i] > 1 {
			pad += "│   "
		} else {
			pad += "    "
		}
	}

	head := "├──"
	finalPad := "│  "
	if d.isLastChild() {
		head = "└──"
		finalPad = "   "
	}
	return pad + head, pad + finalPad
}

func (d *dumper) pushNChildren(n int) {
	d.nChildStack = append(d.nChildStack, n)
}

func (d *dumper) decNChildren() {
	if len(d.nChildStack) < 1 {
		return
	}
	d.nChildStack[len(d.nChildStack)-1]--
}

func (d *dumper) popNChildren() {
	depth := len(d.nChildStack)
	if depth > 0 {
		d.nChildStack = d.nChildStack[0 : depth-1]
	}
}

func (d *dumper) dumpNode(n *artNode) {
	headerPad, pad := d.padding()

	if n == nil {
		fmt.Fprintf(d.buf, "%s empty\n", headerPad)
		return
	}

	if n.isLeaf() {
		leaf := n.leafNode()
		fmt.Fprintf(d.buf, "%s %s (%p)\n", headerPad, n.nodeType, n.nodePtr)
		fmt.Fprintf(d.buf, "%s key: %q\n", pad, leaf.key)
		fmt.Fprintf(d.buf, "%s val: %q\n", pad, leaf.value)
		fmt.Fprintf(d.buf, "%s\n", pad)
		return
	}

	meta := n.node()
	fmt.Fprintf(d.buf, "%s %s (%p)\n", headerPad, n.nodeType, n.nodePtr)
	fmt.Fprintf(d.buf, "%s prefix(%d): %q\n", pad, meta.prefixLen,
		string(meta.prefix[0:min(meta.prefixLen, maxPrefixLen)]))
	if meta.terminal != nil {
		fmt.Fprintf(d.buf, "%s terminal: yes\n", pad)
	}

	nChildren := meta.size
	if meta.terminal != nil {
		nChildren++
	}
	d.pushNChildren(nChildren)

	n.forEachChild(func(child *artNode) {
		d.dumpNode(child)
		d.decNChildren()
	})

	d.popNChildren()
}
