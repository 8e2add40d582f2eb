package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/couchtv/internal/library"
	"github.com/vmunix/couchtv/pkg/provider"
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Show the local library grouped into lists",
	Long: `Show the local library. Lists are ordered favorites first, then
watching, then plan to watch, then the rest in their stored order.

Sort modes: alphabetical_az, alphabetical_za, updated_newest,
updated_oldest, rating_high, rating_low, release_newest, release_oldest.`,
	Args: cobra.NoArgs,
	RunE: runLibrary,
}

func init() {
	rootCmd.AddCommand(libraryCmd)
	libraryCmd.Flags().String("sort", "", "Sort mode (default: library.default_sort)")
}

func runLibrary(cmd *cobra.Command, args []string) error {
	sortFlag, _ := cmd.Flags().GetString("sort")

	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	mode := provider.SortMode(a.cfg.Library.DefaultSort)
	if sortFlag != "" {
		mode = provider.SortMode(sortFlag)
	}

	res, err := library.NewAggregator(a.log.With("component", "library")).Load(cmd.Context(), a.watchlist, mode)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, res)
	}
	if len(res.Sections) == 0 {
		fmt.Fprintln(out, "Library is empty; add titles with 'couchtv watchlist add'")
		return nil
	}
	if res.Sort != mode {
		fmt.Fprintf(out, "(sort %q not supported, using %s)\n", mode, res.Sort)
	}
	for _, s := range res.Sections {
		fmt.Fprintf(out, "%s (%d)\n", s.Name, len(s.Items))
		printItems(out, s.Items)
	}
	return nil
}
