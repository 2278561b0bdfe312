package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/graph"
)

var graphCommand = &cobra.Command{
	Use:   "graph",
	Short: "Inspect the skill knowledge graph",
}

var (
	graphFeedPath string
	graphMaxHops  int
	graphRels     []string
)

var graphValidateCommand = &cobra.Command{
	Use:   "validate",
	Short: "Validate a knowledge graph feed file",
	RunE: func(_ *cobra.Command, _ []string) error {
		store, err := graph.LoadFile(graphFeedPath, graphMaxHops)
		if err != nil {
			return err
		}
		fmt.Printf("Feed is valid: %d skills, %d courses, %d projects, %d roles\n",
			len(store.NodesByType(graph.NodeSkill)),
			len(store.NodesByType(graph.NodeCourse)),
			len(store.NodesByType(graph.NodeProject)),
			len(store.NodesByType(graph.NodeRole)))
		return nil
	},
}

var graphNeighborsCommand = &cobra.Command{
	Use:   "neighbors <node-id>",
	Short: "List outgoing and incoming edges of a node",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		store, err := graph.LoadFile(graphFeedPath, graphMaxHops)
		if err != nil {
			return err
		}

		nodeID := args[0]
		node, ok := store.Node(nodeID)
		if !ok {
			return fmt.Errorf("node %q not found in graph", nodeID)
		}

		rels, err := parseRelationships(graphRels)
		if err != nil {
			return err
		}

		fmt.Printf("%s (%s) %q\n", node.ID, node.Type, node.Label)
		printEdgeList("out", store.Neighbors(nodeID, rels...))
		printEdgeList("in", store.Incoming(nodeID, rels...))
		return nil
	},
}

var graphPathCommand = &cobra.Command{
	Use:   "path <from-id> <to-id>",
	Short: "Find the shortest path between two nodes",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		store, err := graph.LoadFile(graphFeedPath, graphMaxHops)
		if err != nil {
			return err
		}

		rels, err := parseRelationships(graphRels)
		if err != nil {
			return err
		}

		path, err := store.ShortestPath(args[0], args[1], rels...)
		if err != nil {
			return err
		}
		fmt.Println(strings.Join(path, " -> "))
		return nil
	},
}

func init() {
	graphCommand.PersistentFlags().StringVarP(&graphFeedPath, "graph", "g", "", "Path to knowledge graph feed JSON (required)")
	graphCommand.PersistentFlags().IntVar(&graphMaxHops, "max-hops", 0, "Traversal hop bound (0 uses the default)")
	graphCommand.PersistentFlags().StringSliceVar(&graphRels, "rel", nil, "Restrict to these relationships (default: all)")
	_ = graphCommand.MarkPersistentFlagRequired("graph")

	graphCommand.AddCommand(graphValidateCommand)
	graphCommand.AddCommand(graphNeighborsCommand)
	graphCommand.AddCommand(graphPathCommand)
	rootCmd.AddCommand(graphCommand)
}

func parseRelationships(names []string) ([]graph.Relationship, error) {
	var rels []graph.Relationship
	for _, name := range names {
		rel := graph.Relationship(name)
		valid := false
		for _, known := range graph.AllRelationships {
			if rel == known {
				valid = true
				break
			}
		}
		if !valid {
			return nil, fmt.Errorf("unknown relationship %q", name)
		}
		rels = append(rels, rel)
	}
	return rels, nil
}

func printEdgeList(direction string, ids []string) {
	if len(ids) == 0 {
		return
	}
	fmt.Fprintf(os.Stdout, "  %s: %s\n", direction, strings.Join(ids, ", "))
}
