package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/vmunix/couchtv/internal/media"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-3]) + "..."
}

func yearText(y *int) string {
	if y == nil {
		return "-"
	}
	return strconv.Itoa(*y)
}

func printItems(w io.Writer, items []media.Item) {
	for _, it := range items {
		fmt.Fprintf(w, "  %-8s │ %-40s │ %4s │ %s\n", it.Kind, truncate(it.Name, 40), yearText(it.Year), it.URL)
	}
}
