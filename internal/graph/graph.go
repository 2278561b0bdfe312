// Package graph provides the read-only knowledge graph store of skills,
// roles, courses and projects.
package graph

import (
	"sort"
	"sync/atomic"
)

// NodeType identifies the kind of a graph vertex
type NodeType string

// Graph node types
const (
	NodeSkill   NodeType = "skill"
	NodeRole    NodeType = "role"
	NodeCourse  NodeType = "course"
	NodeProject NodeType = "project"
)

// Relationship identifies a directed typed edge
type Relationship string

// Edge relationship types
const (
	RelPrerequisite Relationship = "prerequisite"
	RelRelated      Relationship = "related"
	RelRequiredFor  Relationship = "required_for"
	RelTeaches      Relationship = "teaches"
)

// AllRelationships lists every edge type, used when a query does not
// restrict the relationship set.
var AllRelationships = []Relationship{RelPrerequisite, RelRelated, RelRequiredFor, RelTeaches}

// DefaultMaxHops bounds breadth-first path searches
const DefaultMaxHops = 6

// Attributes holds type-specific node attributes. Only the fields relevant
// to the node's type are populated.
type Attributes struct {
	Description    string `json:"description,omitempty"`
	Provider       string `json:"provider,omitempty"`        // course
	DurationHours  int    `json:"duration_hours,omitempty"`  // course
	Level          string `json:"level,omitempty"`           // course
	Difficulty     int    `json:"difficulty,omitempty"`      // project, 1-5
	EstimatedHours int    `json:"estimated_hours,omitempty"` // project
}

// Node is a graph vertex
type Node struct {
	ID         string     `json:"id"`
	Type       NodeType   `json:"type"`
	Label      string     `json:"label"`
	Attributes Attributes `json:"attributes,omitempty"`
}

// Edge is a directed typed edge between two existing nodes
type Edge struct {
	From         string       `json:"from"`
	To           string       `json:"to"`
	Relationship Relationship `json:"relationship"`
}

// snapshot is an immutable adjacency view of the graph. Queries read a
// snapshot captured once per call, so a concurrent Refresh can never
// expose partial updates.
type snapshot struct {
	nodes  map[string]Node
	out    map[string]map[Relationship][]string // from -> rel -> sorted to-ids
	in     map[string]map[Relationship][]string // to -> rel -> sorted from-ids
	byType map[NodeType][]string                // sorted ids per type
}

// Store serves read-only graph queries over an atomically swappable
// snapshot. Loaded once at process start; Refresh replaces the whole
// snapshot in one step.
type Store struct {
	snap    atomic.Pointer[snapshot]
	maxHops int
}

// NewStore builds a store from nodes and edges. maxHops <= 0 selects
// DefaultMaxHops.
func NewStore(nodes []Node, edges []Edge, maxHops int) (*Store, error) {
	if maxHops <= 0 {
		maxHops = DefaultMaxHops
	}
	snap, err := buildSnapshot(nodes, edges)
	if err != nil {
		return nil, err
	}
	s := &Store{maxHops: maxHops}
	s.snap.Store(snap)
	return s, nil
}

// Refresh atomically replaces the graph with a new snapshot. In-flight
// queries keep reading the snapshot they started with.
func (s *Store) Refresh(nodes []Node, edges []Edge) error {
	snap, err := buildSnapshot(nodes, edges)
	if err != nil {
		return err
	}
	s.snap.Store(snap)
	return nil
}

// MaxHops returns the configured path search bound.
func (s *Store) MaxHops() int {
	return s.maxHops
}

func buildSnapshot(nodes []Node, edges []Edge) (*snapshot, error) {
	var problems []string

	snap := &snapshot{
		nodes:  make(map[string]Node, len(nodes)),
		out:    make(map[string]map[Relationship][]string),
		in:     make(map[string]map[Relationship][]string),
		byType: make(map[NodeType][]string),
	}

	for _, node := range nodes {
		if node.ID == "" {
			problems = append(problems, "node with empty id")
			continue
		}
		if !validNodeType(node.Type) {
			problems = append(problems, "node "+node.ID+" has unknown type "+string(node.Type))
			continue
		}
		if _, exists := snap.nodes[node.ID]; exists {
			problems = append(problems, "duplicate node id "+node.ID)
			continue
		}
		snap.nodes[node.ID] = node
		snap.byType[node.Type] = append(snap.byType[node.Type], node.ID)
	}

	seen := make(map[Edge]bool, len(edges))
	for _, edge := range edges {
		if !validRelationship(edge.Relationship) {
			problems = append(problems, "edge "+edge.From+"->"+edge.To+" has unknown relationship "+string(edge.Relationship))
			continue
		}
		if edge.From == edge.To {
			problems = append(problems, "self-loop on node "+edge.From)
			continue
		}
		if _, ok := snap.nodes[edge.From]; !ok {
			problems = append(problems, "edge references missing node "+edge.From)
			continue
		}
		if _, ok := snap.nodes[edge.To]; !ok {
			problems = append(problems, "edge references missing node "+edge.To)
			continue
		}
		if seen[edge] {
			continue
		}
		seen[edge] = true
		addAdjacency(snap.out, edge.From, edge.Relationship, edge.To)
		addAdjacency(snap.in, edge.To, edge.Relationship, edge.From)
	}

	if len(problems) > 0 {
		return nil, &FeedError{Problems: problems}
	}

	// Sorted adjacency gives deterministic traversal and tie-breaking
	for _, rels := range snap.out {
		for _, ids := range rels {
			sort.Strings(ids)
		}
	}
	for _, rels := range snap.in {
		for _, ids := range rels {
			sort.Strings(ids)
		}
	}
	for _, ids := range snap.byType {
		sort.Strings(ids)
	}

	return snap, nil
}

func addAdjacency(adj map[string]map[Relationship][]string, key string, rel Relationship, id string) {
	if adj[key] == nil {
		adj[key] = make(map[Relationship][]string)
	}
	adj[key][rel] = append(adj[key][rel], id)
}

func validNodeType(t NodeType) bool {
	switch t {
	case NodeSkill, NodeRole, NodeCourse, NodeProject:
		return true
	}
	return false
}

func validRelationship(r Relationship) bool {
	switch r {
	case RelPrerequisite, RelRelated, RelRequiredFor, RelTeaches:
		return true
	}
	return false
}
