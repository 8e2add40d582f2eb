package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/couchtv/internal/feed"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the home feed categories of a provider",
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
	categoriesCmd.Flags().String("provider", "", "Content provider (default: current selection)")
}

func runCategories(cmd *cobra.Command, args []string) error {
	providerName, _ := cmd.Flags().GetString("provider")

	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	p, err := a.currentProvider(cmd.Context(), providerName)
	if err != nil {
		return err
	}
	categories := feed.ListCategories(p)

	out := cmd.OutOrStdout()
	if jsonOutput {
		type category struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		}
		list := make([]category, 0, len(categories))
		for _, c := range categories {
			list = append(list, category{ID: c.ID, Name: c.Name})
		}
		return printJSON(out, list)
	}

	fmt.Fprintf(out, "%s categories:\n", p.Name())
	for _, c := range categories {
		fmt.Fprintf(out, "  %-30s %s\n", c.Name, c.ID)
	}
	return nil
}
