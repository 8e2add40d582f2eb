// Package feed lists provider categories and pages through them.
package feed

import (
	"fmt"

	"github.com/vmunix/couchtv/pkg/provider"
)

// ContinueWatchingID is the id of the synthetic continue-watching category.
const ContinueWatchingID = "continue_watching"

// Category is one browsable row of a provider's home feed.
type Category struct {
	ID      string
	Name    string
	Request *provider.MainPageRequest // nil for synthetic categories
}

// ContinueWatching is the reserved resume category. It carries no request
// and is filled from resume records rather than provider pages.
var ContinueWatching = Category{ID: ContinueWatchingID, Name: "Continue Watching"}

// IsContinueWatching reports whether c is the reserved resume category.
func (c Category) IsContinueWatching() bool {
	return c.ID == ContinueWatchingID
}

// ListCategories returns the provider's declared categories in order. The
// ordinal in the id keeps duplicate names distinct.
func ListCategories(p provider.Provider) []Category {
	declared := p.MainPage()
	categories := make([]Category, 0, len(declared))
	for i, d := range declared {
		req := d.Request()
		categories = append(categories, Category{
			ID:      fmt.Sprintf("%s_%s_%d", p.Name(), d.Name, i),
			Name:    d.Name,
			Request: &req,
		})
	}
	return categories
}

// FindCategory looks a category up by id or, failing that, by name.
func FindCategory(categories []Category, key string) (Category, bool) {
	for _, c := range categories {
		if c.ID == key {
			return c, true
		}
	}
	for _, c := range categories {
		if c.Name == key {
			return c, true
		}
	}
	return Category{}, false
}
