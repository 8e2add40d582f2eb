package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/couchtv/internal/providers/tmdb"
)

// resetFlags restores every flag of cmd and its subcommands to its default
// so that runs of the shared rootCmd do not leak into each other.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// runCLI executes the root command with args and returns its stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(bytes.NewReader(nil))
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// fakeTMDB serves the handful of endpoints the commands touch.
func fakeTMDB(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/3/movie/603", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, tmdb.Movie{
			ID:          603,
			Title:       "The Matrix",
			Status:      "Released",
			ReleaseDate: "1999-03-30",
			Overview:    "A hacker learns the truth.",
			VoteAverage: 8.2,
			VoteCount:   100,
			Runtime:     136,
		})
	})
	mux.HandleFunc("/3/search/multi", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, tmdb.Page[tmdb.SearchResult]{Page: 1, TotalPages: 1, Results: []tmdb.SearchResult{
			{ID: 603, MediaType: "movie", Title: "The Matrix", ReleaseDate: "1999-03-30"},
		}})
	})
	mux.HandleFunc("/3/movie/popular", func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		var results []tmdb.SearchResult
		if page == "1" {
			results = []tmdb.SearchResult{{ID: 603, Title: "The Matrix", ReleaseDate: "1999-03-30"}}
		}
		writeJSON(w, tmdb.Page[tmdb.SearchResult]{Results: results, TotalPages: 1})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

// writeTestConfig writes a config pointing at baseURL with a database in
// a temp dir and returns its path.
func writeTestConfig(t *testing.T, baseURL string) string {
	t.Helper()
	dir := t.TempDir()
	content := fmt.Sprintf(`
[log]
level = "error"

[database]
path = %q

[search]
debounce = "1ms"

[selection]
attempts = 1
delay = "1ms"

[providers.tmdb]
enabled = true
api_key = "test-key"
base_url = %q
`, filepath.Join(dir, "couchtv.db"), baseURL)

	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
