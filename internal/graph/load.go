package graph

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"
)

// feedSchema validates the shape of an ingestion feed before decoding.
// Endpoint existence and self-loop checks happen later in buildSnapshot,
// where the full node set is known.
const feedSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["nodes", "edges"],
  "properties": {
    "nodes": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "type", "label"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "type": {"enum": ["skill", "role", "course", "project"]},
          "label": {"type": "string", "minLength": 1},
          "attributes": {"type": "object"}
        }
      }
    },
    "edges": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["from", "to", "relationship"],
        "properties": {
          "from": {"type": "string", "minLength": 1},
          "to": {"type": "string", "minLength": 1},
          "relationship": {"enum": ["prerequisite", "related", "required_for", "teaches"]}
        }
      }
    }
  }
}`

// Feed is the decoded ingestion payload of node and edge records
type Feed struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// ParseFeed validates raw feed JSON against the feed schema and decodes it.
func ParseFeed(data []byte) (*Feed, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(feedSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to validate graph feed: %w", err)
	}
	if !result.Valid() {
		problems := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		return nil, &FeedError{Problems: problems}
	}

	var feed Feed
	if err := json.Unmarshal(data, &feed); err != nil {
		return nil, fmt.Errorf("failed to decode graph feed: %w", err)
	}
	return &feed, nil
}

// LoadFile reads and validates an ingestion feed and builds a store from it.
func LoadFile(path string, maxHops int) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read graph feed %s: %w", path, err)
	}

	feed, err := ParseFeed(data)
	if err != nil {
		return nil, err
	}

	return NewStore(feed.Nodes, feed.Edges, maxHops)
}
