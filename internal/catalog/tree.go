package catalog

import (
	"sort"

	"github.com/TemirB/storefront/internal/domain"
)

// BuildTree attaches every category to its parent when the parent is part of
// flat and treats it as a root otherwise. Categories whose parent links loop
// back to themselves are roots too. Siblings are ordered by rank, then by
// name. The input is not modified.
func BuildTree(flat []domain.Category) []*domain.CategoryNode {
	nodes := make(map[string]*domain.CategoryNode, len(flat))
	order := make([]string, 0, len(flat))
	for _, c := range flat {
		if _, dup := nodes[c.ID]; dup {
			continue
		}
		nodes[c.ID] = &domain.CategoryNode{Category: c, Children: []*domain.CategoryNode{}}
		order = append(order, c.ID)
	}

	cyclic := make(map[string]struct{})
	for _, id := range CycleIDs(flat) {
		cyclic[id] = struct{}{}
	}

	roots := []*domain.CategoryNode{}
	for _, id := range order {
		n := nodes[id]
		if _, loop := cyclic[id]; loop {
			roots = append(roots, n)
			continue
		}
		if p, ok := nodes[n.ParentCategoryID]; ok && n.ParentCategoryID != "" && n.ParentCategoryID != n.ID {
			p.Children = append(p.Children, n)
			continue
		}
		roots = append(roots, n)
	}
	sortTree(roots)
	return roots
}

// CycleIDs lists, sorted, the categories whose parent chain leads back to
// themselves (A→B→A). Self-parents are not reported; they are plain roots.
func CycleIDs(flat []domain.Category) []string {
	parent := make(map[string]string, len(flat))
	for _, c := range flat {
		if _, dup := parent[c.ID]; !dup {
			parent[c.ID] = c.ParentCategoryID
		}
	}

	var out []string
	for id := range parent {
		cur := parent[id]
		for steps := 0; steps < len(parent); steps++ {
			p, ok := parent[cur]
			if cur == "" || !ok || p == cur {
				break
			}
			if cur == id {
				out = append(out, id)
				break
			}
			cur = p
		}
	}
	sort.Strings(out)
	return out
}

// SubTree returns the descendants of parentID as a sorted forest.
func SubTree(flat []domain.Category, parentID string) []*domain.CategoryNode {
	for _, n := range flattenNodes(BuildTree(flat)) {
		if n.ID == parentID {
			return n.Children
		}
	}
	return []*domain.CategoryNode{}
}

// CollectIDs lists node and all of its descendants, depth first.
func CollectIDs(node *domain.CategoryNode) []string {
	if node == nil {
		return nil
	}
	ids := []string{node.ID}
	for _, ch := range node.Children {
		ids = append(ids, CollectIDs(ch)...)
	}
	return ids
}

func flattenNodes(nodes []*domain.CategoryNode) []*domain.CategoryNode {
	var out []*domain.CategoryNode
	for _, n := range nodes {
		out = append(out, n)
		out = append(out, flattenNodes(n.Children)...)
	}
	return out
}

func sortTree(nodes []*domain.CategoryNode) {
	sort.SliceStable(nodes, func(i, j int) bool {
		a, b := nodes[i], nodes[j]
		if a.Rank != b.Rank {
			return a.Rank < b.Rank
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.ID < b.ID
	})
	for _, n := range nodes {
		sortTree(n.Children)
	}
}
