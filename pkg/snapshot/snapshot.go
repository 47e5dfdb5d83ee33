// Package snapshot builds the read-only index a validation pass works from.
// A Snapshot is built once per pass and never changes afterwards; the
// document it wraps must not be mutated while the pass runs.
package snapshot

import (
	"github.com/helsenorge/structor-export-sub000/pkg/model"
	"github.com/helsenorge/structor-export-sub000/pkg/predicate"
	"github.com/helsenorge/structor-export-sub000/pkg/walker"
)

// Snapshot indexes a Document by linkId.
type Snapshot struct {
	doc *model.Document

	traits      map[*model.Item]*predicate.Traits
	nodes       map[string]*model.OrderItem
	parents     map[string]string
	preorder    []string
	occurrences map[string]int
	firstSeen   map[*model.OrderItem]bool
}

// New indexes the document. A nil document is treated as empty.
func New(doc *model.Document) *Snapshot {
	if doc == nil {
		doc = &model.Document{}
	}
	s := &Snapshot{
		doc:         doc,
		traits:      make(map[*model.Item]*predicate.Traits, len(doc.Items)),
		nodes:       make(map[string]*model.OrderItem),
		parents:     make(map[string]string),
		occurrences: make(map[string]int),
		firstSeen:   make(map[*model.OrderItem]bool),
	}
	for _, item := range doc.Items {
		if item != nil {
			s.traits[item] = predicate.Decode(item)
		}
	}
	walker.Walk(doc.Order, func(ctx walker.NodeContext) bool {
		id := ctx.Node.LinkID
		s.preorder = append(s.preorder, id)
		if _, ok := s.nodes[id]; !ok {
			s.nodes[id] = ctx.Node
			if ctx.Parent != nil {
				s.parents[id] = ctx.Parent.LinkID
			}
		}
		effective := predicate.EffectiveLinkID(ctx.Node, doc.Items)
		if s.occurrences[effective] == 0 {
			s.firstSeen[ctx.Node] = true
		}
		s.occurrences[effective]++
		return true
	})
	return s
}

// Document returns the indexed document.
func (s *Snapshot) Document() *model.Document { return s.doc }

// Questionnaire returns the document metadata.
func (s *Snapshot) Questionnaire() *model.Questionnaire { return &s.doc.Questionnaire }

// Order returns the root of the order tree.
func (s *Snapshot) Order() []*model.OrderItem { return s.doc.Order }

// Item returns the item with the linkId, or nil.
func (s *Snapshot) Item(linkID string) *model.Item { return s.doc.Items[linkID] }

// Traits returns the decoded traits of the item keyed by linkId; never nil.
func (s *Snapshot) Traits(linkID string) *predicate.Traits {
	return s.TraitsOf(s.doc.Items[linkID])
}

// TraitsOf returns the decoded traits of an item; never nil. Items that are
// not part of the document are decoded on the fly.
func (s *Snapshot) TraitsOf(item *model.Item) *predicate.Traits {
	if item == nil {
		return &predicate.Traits{}
	}
	if t, ok := s.traits[item]; ok {
		return t
	}
	return predicate.Decode(item)
}

// Exists reports whether the linkId appears in the order tree.
func (s *Snapshot) Exists(linkID string) bool {
	_, ok := s.nodes[linkID]
	return ok
}

// Node returns the first order tree node with the linkId, or nil.
func (s *Snapshot) Node(linkID string) *model.OrderItem { return s.nodes[linkID] }

// Parent returns the parent's linkId; ok is false at the root level.
func (s *Snapshot) Parent(linkID string) (string, bool) {
	p, ok := s.parents[linkID]
	return p, ok
}

// ParentItem returns the item of the parent node, or nil.
func (s *Snapshot) ParentItem(linkID string) *model.Item {
	if p, ok := s.parents[linkID]; ok {
		return s.doc.Items[p]
	}
	return nil
}

// Children returns the linkIds of the direct children.
func (s *Snapshot) Children(linkID string) []string {
	node := s.nodes[linkID]
	if node == nil {
		return nil
	}
	ids := make([]string, 0, len(node.Items))
	for _, child := range node.Items {
		if child != nil {
			ids = append(ids, child.LinkID)
		}
	}
	return ids
}

// Descendants returns the linkIds below the node, in pre-order.
func (s *Snapshot) Descendants(linkID string) []string {
	node := s.nodes[linkID]
	if node == nil {
		return nil
	}
	return walker.LinkIDs(node.Items)
}

// Siblings returns the linkIds sharing the node's parent, excluding the node.
func (s *Snapshot) Siblings(linkID string) []string {
	var all []string
	if p, ok := s.parents[linkID]; ok {
		all = s.Children(p)
	} else {
		for _, n := range s.doc.Order {
			if n != nil {
				all = append(all, n.LinkID)
			}
		}
	}
	out := make([]string, 0, len(all))
	for _, id := range all {
		if id != linkID {
			out = append(out, id)
		}
	}
	return out
}

// Preorder returns every linkId of the order tree in pre-order.
func (s *Snapshot) Preorder() []string { return s.preorder }

// Occurrences returns how many order tree nodes report the linkId.
func (s *Snapshot) Occurrences(linkID string) int { return s.occurrences[linkID] }

// IsFirstOccurrence reports whether the node is the first, in pre-order, to
// report its effective linkId.
func (s *Snapshot) IsFirstOccurrence(node *model.OrderItem) bool { return s.firstSeen[node] }

// ItemsOfType returns the linkIds of items of the given type, in pre-order.
func (s *Snapshot) ItemsOfType(itemType model.ItemType) []string {
	return predicate.FindItemsOfType(s.doc.Order, s.doc.Items, itemType)
}

// AnyItem reports whether some item in the order tree satisfies fn.
func (s *Snapshot) AnyItem(fn func(item *model.Item, traits *predicate.Traits) bool) bool {
	for _, id := range s.preorder {
		if item := s.doc.Items[id]; item != nil && fn(item, s.Traits(id)) {
			return true
		}
	}
	return false
}

// Languages returns the additional translation languages in sorted order.
func (s *Snapshot) Languages() []string {
	return sortedKeys(s.doc.Translations)
}
