package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"github.com/spf13/cobra"

	"github.com/vmunix/couchtv/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search [flags] <query>...",
	Short: "Search every content provider",
	Long: `Search every content provider at once. Results are grouped by provider.

With --interactive, each line read from stdin is a new edit of the query;
edits are debounced and only the newest query's results are printed.

Examples:
  couchtv search "The Matrix"
  couchtv search --interactive`,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().BoolP("interactive", "i", false, "Read query edits from stdin")
}

func runSearch(cmd *cobra.Command, args []string) error {
	interactive, _ := cmd.Flags().GetBool("interactive")
	if !interactive && len(args) == 0 {
		return fmt.Errorf("requires a query")
	}

	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	agg := search.NewAggregator(a.registry, a.log.With("component", "search"),
		search.WithMaxConcurrency(a.cfg.Search.MaxConcurrency))
	out := cmd.OutOrStdout()

	if interactive {
		sess := search.NewSession(agg, a.cfg.Search.Debounce, a.log.With("component", "session"))
		return runSession(cmd.Context(), sess, cmd.InOrStdin(), out)
	}

	query := strings.Join(args, " ")
	sections, err := agg.Search(cmd.Context(), query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	if jsonOutput {
		return printJSON(out, sections)
	}
	printSections(out, query, sections)
	return nil
}

// runSession feeds stdin lines into sess and prints each settled result.
// It returns once the result for the last line has been printed.
func runSession(ctx context.Context, sess *search.Session, in io.Reader, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() { _ = sess.Run(ctx) }()

	// generations are numbered per submitted edit
	var submitted atomic.Uint64
	inputDone := make(chan struct{})
	go func() {
		defer close(inputDone)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			submitted.Add(1)
			sess.Submit(sc.Text())
		}
	}()

	var settled uint64
	for {
		select {
		case <-inputDone:
			inputDone = nil
			if settled >= submitted.Load() {
				return nil
			}
		case r, ok := <-sess.Results():
			if !ok {
				return nil
			}
			settled = r.Generation
			if err := printResult(out, r); err != nil {
				return err
			}
			if inputDone == nil && settled >= submitted.Load() {
				return nil
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func printResult(out io.Writer, r search.Result) error {
	if jsonOutput {
		return printJSON(out, r)
	}
	switch {
	case r.Idle:
		fmt.Fprintln(out, "(idle)")
	case r.Err != nil:
		fmt.Fprintf(out, "search %q failed: %v\n", r.Query, r.Err)
	default:
		printSections(out, r.Query, r.Sections)
	}
	return nil
}

func printSections(out io.Writer, query string, sections []search.Section) {
	if len(sections) == 0 {
		fmt.Fprintf(out, "No results for %q\n", query)
		return
	}
	for _, s := range sections {
		fmt.Fprintf(out, "%s (%d results for %q)\n", s.Title, len(s.Items), query)
		printItems(out, s.Items)
	}
}
