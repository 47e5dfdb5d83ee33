package predicate

import (
	"github.com/helsenorge/structor-export-sub000/pkg/model"
	"github.com/helsenorge/structor-export-sub000/pkg/walker"
)

// FindItemsOfType returns, in pre-order, the linkIds of the order tree nodes
// whose item has the given type.
func FindItemsOfType(order []*model.OrderItem, items map[string]*model.Item, itemType model.ItemType) []string {
	return walker.Fold(order, []string(nil), func(acc []string, ctx walker.NodeContext) []string {
		if item := items[ctx.Node.LinkID]; item != nil && item.Type == itemType {
			acc = append(acc, ctx.Node.LinkID)
		}
		return acc
	})
}

// Children returns the direct children of the first node with the linkId.
func Children(order []*model.OrderItem, linkID string) []*model.OrderItem {
	node := walker.Find(order, linkID)
	if node == nil {
		return nil
	}
	return node.Items
}

// Descendants returns the linkIds below the first node with the linkId, in pre-order.
func Descendants(order []*model.OrderItem, linkID string) []string {
	return walker.LinkIDs(Children(order, linkID))
}

// ParentOf returns the parent of the first node with the linkId, or nil at
// the root level or when the linkId is absent.
func ParentOf(order []*model.OrderItem, linkID string) *model.OrderItem {
	var parent *model.OrderItem
	found := false
	walker.Walk(order, func(ctx walker.NodeContext) bool {
		if found {
			return false
		}
		if ctx.Node.LinkID == linkID {
			parent = ctx.Parent
			found = true
			return false
		}
		return true
	})
	return parent
}

// IsDescendantOfType reports whether linkID sits anywhere below a node whose
// item has the given type.
func IsDescendantOfType(order []*model.OrderItem, items map[string]*model.Item, linkID string, itemType model.ItemType) bool {
	var check func(nodes []*model.OrderItem, underType bool) bool
	check = func(nodes []*model.OrderItem, underType bool) bool {
		for _, node := range nodes {
			if node == nil {
				continue
			}
			if node.LinkID == linkID && underType {
				return true
			}
			item := items[node.LinkID]
			isType := item != nil && item.Type == itemType
			if check(node.Items, underType || isType) {
				return true
			}
		}
		return false
	}
	return check(order, false)
}

// ExistsInOrder reports whether the linkId appears anywhere in the order tree.
func ExistsInOrder(order []*model.OrderItem, linkID string) bool {
	return linkID != "" && walker.Find(order, linkID) != nil
}

// DuplicateLinkIDs returns the linkIds that occur more than once, in order of
// their first occurrence. The effective linkId of a node is its item's linkId
// when the item exists, the node's own linkId otherwise.
func DuplicateLinkIDs(order []*model.OrderItem, items map[string]*model.Item) []string {
	counts := make(map[string]int)
	var seen []string
	walker.Walk(order, func(ctx walker.NodeContext) bool {
		id := EffectiveLinkID(ctx.Node, items)
		if counts[id] == 0 {
			seen = append(seen, id)
		}
		counts[id]++
		return true
	})
	var dups []string
	for _, id := range seen {
		if counts[id] > 1 {
			dups = append(dups, id)
		}
	}
	return dups
}

// EffectiveLinkID returns the linkId the node's item reports about itself.
func EffectiveLinkID(node *model.OrderItem, items map[string]*model.Item) string {
	if item := items[node.LinkID]; item != nil && item.LinkID != "" {
		return item.LinkID
	}
	return node.LinkID
}
