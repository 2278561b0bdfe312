// Package graph provides the read-only knowledge graph store of skills,
// roles, courses and projects.
package graph

import (
	"fmt"
	"strings"
)

// NodeNotFoundError indicates a queried node id is absent from the graph
type NodeNotFoundError struct {
	ID string
}

func (e *NodeNotFoundError) Error() string {
	return fmt.Sprintf("graph node %q not found", e.ID)
}

// PathNotFoundError indicates no path exists between two nodes within the
// bounded hop limit. The bound keeps interactive query latency predictable;
// exceeding it is reported, not retried.
type PathNotFoundError struct {
	From    string
	To      string
	MaxHops int
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("no path from %q to %q within %d hops", e.From, e.To, e.MaxHops)
}

// FeedError represents an invalid ingestion feed
type FeedError struct {
	Problems []string
}

func (e *FeedError) Error() string {
	return fmt.Sprintf("invalid graph feed: %s", strings.Join(e.Problems, "; "))
}
