// Package walker provides the single traversal primitive over the order tree.
// Every rule that needs to descend the questionnaire hierarchy goes through
// Walk or Fold so that all of them see the same nodes in the same order.
package walker

import "github.com/helsenorge/structor-export-sub000/pkg/model"

// NodeContext describes the node being visited.
type NodeContext struct {
	// Node is the order tree node.
	Node *model.OrderItem

	// Parent is the enclosing node, nil at the root level.
	Parent *model.OrderItem

	// Depth is 0 for root-level nodes.
	Depth int

	// Index is the position of Node among its siblings.
	Index int
}

// Visitor is called for each node in pre-order. Return false to skip the
// node's children.
type Visitor func(ctx NodeContext) bool

// Walk visits nodes depth-first in pre-order.
func Walk(nodes []*model.OrderItem, visit Visitor) {
	walk(nodes, nil, 0, visit)
}

func walk(nodes []*model.OrderItem, parent *model.OrderItem, depth int, visit Visitor) {
	for i, node := range nodes {
		if node == nil {
			continue
		}
		if !visit(NodeContext{Node: node, Parent: parent, Depth: depth, Index: i}) {
			continue
		}
		walk(node.Items, node, depth+1, visit)
	}
}

// Fold accumulates a value over all nodes in pre-order.
func Fold[T any](nodes []*model.OrderItem, acc T, fn func(acc T, ctx NodeContext) T) T {
	Walk(nodes, func(ctx NodeContext) bool {
		acc = fn(acc, ctx)
		return true
	})
	return acc
}

// Find returns the first node with the given linkId in pre-order, or nil.
func Find(nodes []*model.OrderItem, linkID string) *model.OrderItem {
	var found *model.OrderItem
	Walk(nodes, func(ctx NodeContext) bool {
		if found != nil {
			return false
		}
		if ctx.Node.LinkID == linkID {
			found = ctx.Node
			return false
		}
		return true
	})
	return found
}

// LinkIDs returns every linkId of the tree in pre-order, including repeats.
func LinkIDs(nodes []*model.OrderItem) []string {
	return Fold(nodes, []string(nil), func(acc []string, ctx NodeContext) []string {
		return append(acc, ctx.Node.LinkID)
	})
}
