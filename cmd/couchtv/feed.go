package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/couchtv/internal/feed"
)

var feedCmd = &cobra.Command{
	Use:   "feed [category]",
	Short: "Show a page of a home feed category",
	Long: `Show a page of a home feed category. The category is matched by id,
then by name.

Examples:
  couchtv feed "Popular Movies"
  couchtv feed "Popular Movies" --page 3
  couchtv feed "Top Rated TV" --all --max-pages 5
  couchtv feed --home`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFeed,
}

func init() {
	rootCmd.AddCommand(feedCmd)
	feedCmd.Flags().String("provider", "", "Content provider (default: current selection)")
	feedCmd.Flags().Int("page", 1, "Page number")
	feedCmd.Flags().Bool("all", false, "Walk pages until the category is exhausted")
	feedCmd.Flags().Int("max-pages", 10, "Page cap for --all (0 for no cap)")
	feedCmd.Flags().Bool("home", false, "Show the first page of every category")
}

func runFeed(cmd *cobra.Command, args []string) error {
	providerName, _ := cmd.Flags().GetString("provider")
	page, _ := cmd.Flags().GetInt("page")
	all, _ := cmd.Flags().GetBool("all")
	maxPages, _ := cmd.Flags().GetInt("max-pages")
	home, _ := cmd.Flags().GetBool("home")

	if !home && len(args) == 0 {
		return errors.New("a category is required unless --home is set")
	}

	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()
	p, err := a.currentProvider(ctx, providerName)
	if err != nil {
		return err
	}
	loader := feed.NewLoader(a.log.With("component", "feed"))
	out := cmd.OutOrStdout()

	if home {
		rows, err := loader.LoadHome(ctx, p)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(out, rows)
		}
		for _, row := range rows {
			fmt.Fprintf(out, "%s\n", row.Category.Name)
			if row.Err != nil {
				fmt.Fprintf(out, "  error: %v\n", row.Err)
				continue
			}
			printItems(out, row.Page.Items)
		}
		return nil
	}

	category, ok := feed.FindCategory(feed.ListCategories(p), args[0])
	if !ok {
		return fmt.Errorf("category %q not found; see 'couchtv categories'", args[0])
	}

	if !all {
		pg, err := loader.LoadPage(ctx, p, category, page)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(out, pg)
		}
		printPage(cmd, category.Name, pg)
		return nil
	}

	var pages []feed.Page
	err = loader.Walk(ctx, p, category, maxPages, func(pg feed.Page) error {
		if jsonOutput {
			pages = append(pages, pg)
			return nil
		}
		printPage(cmd, category.Name, pg)
		return nil
	})
	if err != nil {
		return err
	}
	if jsonOutput {
		return printJSON(out, pages)
	}
	return nil
}

func printPage(cmd *cobra.Command, name string, pg feed.Page) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s, page %d (%d items)\n", name, pg.Number, len(pg.Items))
	printItems(out, pg.Items)
}
