package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vmunix/couchtv/internal/watchlist"
	"github.com/vmunix/couchtv/pkg/provider"
)

var watchlistCmd = &cobra.Command{
	Use:   "watchlist",
	Short: "Manage local watchlists",
}

var watchlistAddCmd = &cobra.Command{
	Use:   "add <url>",
	Short: "Add a title to a list",
	Long: `Add a title to a list. The title is loaded from the content provider
to fill in its name, poster and year.

Categories: favorites, watching, plan_to_watch, completed, on_hold,
dropped. Lists named like a category are tagged with it automatically.

Examples:
  couchtv watchlist add '{"id":603,"type":"movie"}' --list Favorites
  couchtv watchlist add '{"id":1399,"type":"tv"}' --list "Up Next" --category plan_to_watch`,
	Args: cobra.ExactArgs(1),
	RunE: runWatchlistAdd,
}

var watchlistRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove an entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatchlistRemove,
}

var watchlistListCmd = &cobra.Command{
	Use:   "list",
	Short: "List entries",
	Args:  cobra.NoArgs,
	RunE:  runWatchlistList,
}

var watchlistScoreCmd = &cobra.Command{
	Use:   "score <id> <0-10|none>",
	Short: "Set or clear the score of an entry",
	Args:  cobra.ExactArgs(2),
	RunE:  runWatchlistScore,
}

var watchlistMoveCmd = &cobra.Command{
	Use:   "move <id> <list>",
	Short: "Move an entry to another list",
	Args:  cobra.ExactArgs(2),
	RunE:  runWatchlistMove,
}

func init() {
	rootCmd.AddCommand(watchlistCmd)
	watchlistCmd.AddCommand(watchlistAddCmd, watchlistRemoveCmd, watchlistListCmd, watchlistScoreCmd, watchlistMoveCmd)

	watchlistAddCmd.Flags().String("list", "Plan to Watch", "List name")
	watchlistAddCmd.Flags().String("category", "", "List category (default: derived from the list name)")
	watchlistAddCmd.Flags().String("provider", "", "Content provider (default: current selection)")
	watchlistListCmd.Flags().String("list", "", "Only show this list")
	watchlistMoveCmd.Flags().String("category", "", "List category (default: derived from the list name)")
}

// listCategory resolves the category flag, falling back to the category
// whose name matches the list.
func listCategory(flag, list string) (provider.ListCategory, error) {
	if flag != "" {
		c := provider.ParseListCategory(flag)
		if c == provider.ListUnknown && flag != provider.ListUnknown.String() {
			return c, fmt.Errorf("unknown list category %q", flag)
		}
		return c, nil
	}
	switch list {
	case "Favorites":
		return provider.ListFavorites, nil
	case "Watching":
		return provider.ListWatching, nil
	case "Plan to Watch":
		return provider.ListPlanToWatch, nil
	case "Completed":
		return provider.ListCompleted, nil
	case "On Hold":
		return provider.ListOnHold, nil
	case "Dropped":
		return provider.ListDropped, nil
	}
	return provider.ListUnknown, nil
}

// searchRecord reduces a load response to the listing shape stored on a
// watchlist.
func searchRecord(r *provider.LoadResponse) provider.SearchResponse {
	kind := provider.SearchGeneric
	switch r.Kind {
	case provider.LoadMovie:
		kind = provider.SearchMovie
	case provider.LoadSeries:
		kind = provider.SearchSeries
	case provider.LoadAnime:
		kind = provider.SearchAnime
	}
	rec := provider.SearchResponse{
		Kind:      kind,
		Name:      r.Name,
		URL:       r.URL,
		APIName:   r.APIName,
		PosterURL: r.PosterURL,
		Type:      r.Type,
		Year:      r.Year,
	}
	if n := len(r.Episodes); n > 0 {
		rec.EpisodeCount = &n
	}
	return rec
}

func runWatchlistAdd(cmd *cobra.Command, args []string) error {
	list, _ := cmd.Flags().GetString("list")
	categoryFlag, _ := cmd.Flags().GetString("category")
	providerName, _ := cmd.Flags().GetString("provider")

	category, err := listCategory(categoryFlag, list)
	if err != nil {
		return err
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
	resp, err := a.metadata.Load(ctx, p, args[0])
	if err != nil {
		return err
	}

	e := watchlist.EntryFor(list, category, searchRecord(resp))
	e.Plot = resp.Plot
	if err := a.watchlist.Add(ctx, e); err != nil {
		return fmt.Errorf("add %q to %s: %w", resp.Name, list, err)
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), e)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added %s to %s (%s)\n", e.Name, e.List, e.ID)
	return nil
}

func runWatchlistRemove(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.watchlist.Remove(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("remove %s: %w", args[0], err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
	return nil
}

func runWatchlistList(cmd *cobra.Command, args []string) error {
	list, _ := cmd.Flags().GetString("list")

	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	var f watchlist.Filter
	if list != "" {
		f.List = &list
	}
	entries, err := a.watchlist.List(cmd.Context(), f)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, entries)
	}
	printEntries(out, entries)
	return nil
}

func printEntries(out io.Writer, entries []*watchlist.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(out, "No entries")
		return
	}
	fmt.Fprintf(out, "%-36s │ %-16s │ %-36s │ %5s\n", "ID", "LIST", "NAME", "SCORE")
	for _, e := range entries {
		score := "-"
		if e.Score != nil {
			score = strconv.FormatFloat(*e.Score, 'f', 1, 64)
		}
		fmt.Fprintf(out, "%-36s │ %-16s │ %-36s │ %5s\n", e.ID, truncate(e.List, 16), truncate(e.Name, 36), score)
	}
}

func runWatchlistScore(cmd *cobra.Command, args []string) error {
	var score *float64
	if args[1] != "none" {
		v, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid score %q: %w", args[1], err)
		}
		score = &v
	}

	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.watchlist.SetScore(cmd.Context(), args[0], score); err != nil {
		return fmt.Errorf("score %s: %w", args[0], err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", args[0])
	return nil
}

func runWatchlistMove(cmd *cobra.Command, args []string) error {
	categoryFlag, _ := cmd.Flags().GetString("category")
	category, err := listCategory(categoryFlag, args[1])
	if err != nil {
		return err
	}

	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.watchlist.Move(cmd.Context(), args[0], args[1], category); err != nil {
		return fmt.Errorf("move %s: %w", args[0], err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Moved %s to %s\n", args[0], args[1])
	return nil
}
