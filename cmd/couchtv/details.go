package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/couchtv/internal/details"
)

var detailsCmd = &cobra.Command{
	Use:   "details <url>",
	Short: "Show full details of a title",
	Long: `Show full details of a title. The url is the item url printed by feed
and search.

Examples:
  couchtv details '{"id":603,"type":"movie"}'
  couchtv details --refresh '{"id":1399,"type":"tv"}'`,
	Args: cobra.ExactArgs(1),
	RunE: runDetails,
}

func init() {
	rootCmd.AddCommand(detailsCmd)
	detailsCmd.Flags().String("provider", "", "Content provider (default: current selection)")
	detailsCmd.Flags().Bool("refresh", false, "Drop cached details for the provider first")
}

func runDetails(cmd *cobra.Command, args []string) error {
	providerName, _ := cmd.Flags().GetString("provider")
	refresh, _ := cmd.Flags().GetBool("refresh")

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
	if refresh {
		if err := a.metadata.Invalidate(ctx, p.Name()); err != nil {
			return err
		}
	}

	d, err := a.metadata.Details(ctx, p, args[0])
	if err != nil {
		return err
	}
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), d)
	}
	printDetails(cmd.OutOrStdout(), d)
	return nil
}

func printDetails(out io.Writer, d *details.MovieDetails) {
	fmt.Fprintf(out, "%s (%s) [%s]\n", d.Name, yearText(d.Year), d.Kind)
	if d.Rating != "" {
		fmt.Fprintf(out, "  Rating:     %s\n", d.Rating)
	}
	if d.ContentRating != "" {
		fmt.Fprintf(out, "  Certified:  %s\n", d.ContentRating)
	}
	if d.DurationMinutes != nil {
		fmt.Fprintf(out, "  Runtime:    %d min\n", *d.DurationMinutes)
	}
	if len(d.Categories) > 0 {
		fmt.Fprintf(out, "  Genres:     %s\n", strings.Join(d.Categories, ", "))
	}
	if d.ComingSoon {
		fmt.Fprintln(out, "  Coming soon")
	}
	if d.SeasonCount != nil && d.EpisodeCount != nil {
		fmt.Fprintf(out, "  Seasons:    %d (%d episodes)\n", *d.SeasonCount, *d.EpisodeCount)
	}
	if d.CurrentSeason != nil && d.CurrentEpisode != nil {
		fmt.Fprintf(out, "  Up next:    S%02dE%02d\n", *d.CurrentSeason, *d.CurrentEpisode)
	}
	if d.Description != "" {
		fmt.Fprintf(out, "\n  %s\n", d.Description)
	}

	if len(d.Cast) > 0 {
		names := make([]string, 0, len(d.Cast))
		for _, c := range d.Cast {
			names = append(names, c.Name)
		}
		fmt.Fprintf(out, "\n  Cast: %s\n", strings.Join(names, ", "))
	}

	for _, s := range d.Seasons {
		fmt.Fprintf(out, "\n  %s\n", s.Name)
		for _, ep := range s.Episodes {
			number := "-"
			if ep.Number != nil {
				number = fmt.Sprint(*ep.Number)
			}
			fmt.Fprintf(out, "    %3s  %s\n", number, ep.Name)
		}
	}

	if len(d.Similar) > 0 {
		fmt.Fprintln(out, "\n  Similar:")
		printItems(out, d.Similar)
	}
}
