package feed

import "errors"

var (
	// ErrNoPageRequest indicates a category without a pagination request
	// was passed to LoadPage. This is a usage error, not missing data.
	ErrNoPageRequest = errors.New("category has no page request")

	// ErrInvalidPage indicates a page number below 1.
	ErrInvalidPage = errors.New("page numbers start at 1")
)
