package graph

import "sort"

// Node returns the node with the given id.
func (s *Store) Node(id string) (Node, bool) {
	snap := s.snap.Load()
	node, ok := snap.nodes[id]
	return node, ok
}

// Neighbors returns the ids reachable from nodeID over outgoing edges of
// the given relationship types (all types when none are given), sorted
// ascending. Unknown node ids yield an empty result.
func (s *Store) Neighbors(nodeID string, rels ...Relationship) []string {
	snap := s.snap.Load()
	return collect(snap.out[nodeID], rels)
}

// Incoming returns the ids of nodes with an edge of the given relationship
// types pointing at nodeID, sorted ascending.
func (s *Store) Incoming(nodeID string, rels ...Relationship) []string {
	snap := s.snap.Load()
	return collect(snap.in[nodeID], rels)
}

// NodesByType returns all node ids of the given type, sorted ascending.
func (s *Store) NodesByType(t NodeType) []string {
	snap := s.snap.Load()
	ids := snap.byType[t]
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

// ShortestPath returns an unweighted shortest path from fromID to toID over
// the union of the given relationship types (all types when none are
// given), including both endpoints. Ties between equal-length paths are
// broken by visiting neighbors in ascending id order, so the result is
// deterministic. Searches are bounded by the store's hop limit; a path
// longer than the bound is reported as PathNotFoundError.
func (s *Store) ShortestPath(fromID, toID string, rels ...Relationship) ([]string, error) {
	snap := s.snap.Load()

	if _, ok := snap.nodes[fromID]; !ok {
		return nil, &NodeNotFoundError{ID: fromID}
	}
	if _, ok := snap.nodes[toID]; !ok {
		return nil, &NodeNotFoundError{ID: toID}
	}
	if fromID == toID {
		return []string{fromID}, nil
	}

	// Plain BFS; adjacency lists are pre-sorted, so first discovery wins
	// deterministically.
	parent := map[string]string{fromID: ""}
	frontier := []string{fromID}

	for hop := 0; hop < s.maxHops && len(frontier) > 0; hop++ {
		var next []string
		for _, current := range frontier {
			for _, neighbor := range collect(snap.out[current], rels) {
				if _, visited := parent[neighbor]; visited {
					continue
				}
				parent[neighbor] = current
				if neighbor == toID {
					return assemblePath(parent, fromID, toID), nil
				}
				next = append(next, neighbor)
			}
		}
		frontier = next
	}

	return nil, &PathNotFoundError{From: fromID, To: toID, MaxHops: s.maxHops}
}

func assemblePath(parent map[string]string, fromID, toID string) []string {
	var reversed []string
	for id := toID; id != ""; id = parent[id] {
		reversed = append(reversed, id)
		if id == fromID {
			break
		}
	}
	path := make([]string, len(reversed))
	for i, id := range reversed {
		path[len(reversed)-1-i] = id
	}
	return path
}

// collect merges the adjacency lists for the requested relationships into
// one sorted, deduplicated id list. A nil rels slice selects all types.
func collect(byRel map[Relationship][]string, rels []Relationship) []string {
	if byRel == nil {
		return nil
	}
	if len(rels) == 0 {
		rels = AllRelationships
	}

	var merged []string
	for _, rel := range rels {
		merged = append(merged, byRel[rel]...)
	}
	if len(merged) == 0 {
		return nil
	}

	sort.Strings(merged)
	deduped := merged[:1]
	for _, id := range merged[1:] {
		if id != deduped[len(deduped)-1] {
			deduped = append(deduped, id)
		}
	}
	return deduped
}
