package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/catalog"
)

var rolesCatalogPath string

var rolesCommand = &cobra.Command{
	Use:   "roles",
	Short: "List the target roles available in the catalog",
	RunE: func(_ *cobra.Command, _ []string) error {
		cat, err := catalog.LoadFile(rolesCatalogPath)
		if err != nil {
			return err
		}
		for _, name := range cat.Names() {
			role, err := cat.Role(name)
			if err != nil {
				return err
			}
			fmt.Printf("%s  (%d essential, %d desirable)\n",
				name, len(role.EssentialSkills()), len(role.DesirableSkills()))
		}
		return nil
	},
}

func init() {
	rolesCommand.Flags().StringVarP(&rolesCatalogPath, "catalog", "c", "", "Path to role catalog JSON (required)")
	_ = rolesCommand.MarkFlagRequired("catalog")
	rootCmd.AddCommand(rolesCommand)
}
