package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/couchtv/internal/search"
)

func TestRunSession(t *testing.T) {
	var searched []string
	searcher := search.SearcherFunc(func(ctx context.Context, query string) ([]search.Section, error) {
		searched = append(searched, query)
		return nil, nil
	})
	sess := search.NewSession(searcher, time.Millisecond, testLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var out bytes.Buffer
	err := runSession(ctx, sess, strings.NewReader("heat\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, []string{"heat"}, searched)
	assert.Contains(t, out.String(), `No results for "heat"`)
}

func TestRunSession_EmptyInput(t *testing.T) {
	sess := search.NewSession(search.SearcherFunc(func(ctx context.Context, query string) ([]search.Section, error) {
		t.Fatal("unexpected search")
		return nil, nil
	}), time.Millisecond, testLogger())

	var out bytes.Buffer
	require.NoError(t, runSession(context.Background(), sess, strings.NewReader(""), &out))
	assert.Empty(t, out.String())
}
