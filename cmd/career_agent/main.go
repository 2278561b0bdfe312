// Package main provides the entry point for the career-compass CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "career_agent",
	Short: "Explainable career scoring and recommendation engine",
	Long:  "Career Compass scores candidate profiles against target roles, audits them for bias signals, and recommends skill gaps, learning resources and a milestone roadmap backed by a skill knowledge graph.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
