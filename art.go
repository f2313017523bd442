package art

import "github.com/hashicorp/go-hclog"

// NodeType - adaptive radix tree node type.
type NodeType uint8

// Types of node.
const (
	LeafNode NodeType = iota
	Node4
	Node16
	Node48
	Node256
)

// String returns the name used for the node type in logs and dumps.
func (t NodeType) String() string {
	switch t {
	case LeafNode:
		return "leaf"
	case Node4:
		return "node4"
	case Node16:
		return "node16"
	case Node48:
		return "node48"
	case Node256:
		return "node256"
	}
	return "invalid"
}

// Key type.
type Key = []byte

// Value type.
type Value = []byte

// Node interfaces
type Node interface {
	NodeType() NodeType
	Key() Key
	Value() Value
}

// Callback - callback function that is passed in Each.
type Callback func(node Node)

// Tree - adaptive radix tree interface.
type Tree interface {
	Insert(key Key, value Value) bool
	Search(key Key) (value Value, ok bool)
	Each(cb Callback)
	Size() int
	Reset()
	String() string
}

// Option configures a tree returned by New.
type Option func(*tree)

// WithLogger sets the logger that receives structural events (splits,
// growth, teardown). The default is a null logger.
func WithLogger(logger hclog.Logger) Option {
	return func(t *tree) {
		t.logger = logger
	}
}

// New - creates a new instance of adaptive radix tree.
func New(opts ...Option) Tree {
	return newArt(opts...)
}
