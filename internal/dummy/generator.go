// Package dummy builds nested placeholder documents and encodes them as JSON
// or XML.
//
// A generated document is either a *Node or, when an array size above one is
// requested, a []any whose entries are all the same *Node. Nodes keep their
// keys in insertion order: field1..fieldN, then subModules.
package dummy

import (
	"strconv"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/dummygen/dummygen-go/internal/model"
	"github.com/dummygen/dummygen-go/internal/random"
)

// SubModulesKey names the member holding nested children.
const SubModulesKey = "subModules"

// Node is an insertion-ordered mapping from key to value. Values are string,
// int, bool, *Node or []any.
type Node = orderedmap.OrderedMap[string, any]

// NewNode returns an empty node.
func NewNode() *Node {
	return orderedmap.New[string, any]()
}

// Options describes the shape of a generated document.
type Options struct {
	Fields     int
	SubModules int
	ArraySize  int
	FieldType  model.FieldType
}

// OptionsFromRequest copies the shape parameters of a request.
func OptionsFromRequest(req model.GenerateRequest) Options {
	return Options{
		Fields:     req.Fields,
		SubModules: req.SubModules,
		ArraySize:  req.ArraySize,
		FieldType:  req.FieldType,
	}
}

// Generate builds a document with opts.Fields random leaves per node and
// opts.SubModules levels of nesting. Each child is generated with the same
// options and one less level. When opts.ArraySize > 1 the finished node is
// repeated ArraySize times; the entries share one node rather than being
// generated independently.
func Generate(opts Options) any {
	node := NewNode()
	for i := 0; i < opts.Fields; i++ {
		node.Set(fieldKey(i+1), random.Value(opts.FieldType))
	}

	if opts.SubModules > 0 {
		child := opts
		child.SubModules--

		children := make([]any, 0, opts.SubModules)
		for i := 0; i < opts.SubModules; i++ {
			children = append(children, Generate(child))
		}
		node.Set(SubModulesKey, children)
	}

	if opts.ArraySize > 1 {
		return Replicate(node, opts.ArraySize)
	}
	return node
}

// Replicate returns a sequence holding n references to node.
func Replicate(node *Node, n int) []any {
	seq := make([]any, n)
	for i := range seq {
		seq[i] = node
	}
	return seq
}

func fieldKey(n int) string {
	return "field" + strconv.Itoa(n)
}
