// Package provider defines the contracts implemented by pluggable content
// and sync providers, and the raw response shapes they return.
package provider

//go:generate mockgen -destination=mocks/provider.go -package=mocks github.com/vmunix/couchtv/pkg/provider Provider,SyncProvider

import "context"

// Provider is a pluggable content source exposing browse, search and load
// operations. Implementations must be safe for concurrent use.
type Provider interface {
	// Name identifies the provider. It is also the owning-provider name
	// stamped on every item the provider returns.
	Name() string

	// MainPage lists the categories the provider declares for its home feed.
	MainPage() []MainPageData

	// FetchPage returns one page of a category listing. The response may hold
	// several named lists; callers pick the one matching the request name.
	FetchPage(ctx context.Context, req MainPageRequest, page int) (*HomePageResponse, error)

	// Load returns the full metadata for the item at url.
	Load(ctx context.Context, url string) (*LoadResponse, error)

	// Search returns one page of results for query.
	Search(ctx context.Context, query string, page int) ([]SearchResponse, error)
}

// SyncProvider is an account-linked service exposing a user's tracked lists.
type SyncProvider interface {
	Name() string
	Library(ctx context.Context) (*LibraryMetadata, error)
}

// MainPageData is a category declared by a provider.
type MainPageData struct {
	Name       string
	Data       string // provider-specific payload
	Horizontal bool   // prefer landscape artwork
}

// MainPageRequest is the pagination descriptor sent back to FetchPage.
type MainPageRequest struct {
	Name       string
	Data       string
	Horizontal bool
}

// Request builds the pagination descriptor for a declared category.
func (d MainPageData) Request() MainPageRequest {
	return MainPageRequest{Name: d.Name, Data: d.Data, Horizontal: d.Horizontal}
}

// HomePageList is one named list inside a FetchPage response.
type HomePageList struct {
	Name       string
	Items      []SearchResponse
	Horizontal bool
}

// HomePageResponse is the multi-list result of FetchPage.
type HomePageResponse struct {
	Lists   []HomePageList
	HasNext bool
}
