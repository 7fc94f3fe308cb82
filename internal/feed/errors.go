package feed

import "errors"

// Error taxonomy surfaced to the UI as a single message. Callers branch with
// errors.Is; everything else stays wrapped underneath.
var (
	// ErrInvalidURL means the feed address is not a syntactically valid
	// HTTP/HTTPS URL. Raised before any network call.
	ErrInvalidURL = errors.New("invalid feed url")

	// ErrFetchFailed means every relay attempt failed; it wraps the last
	// underlying error.
	ErrFetchFailed = errors.New("all relay attempts failed")

	// ErrNoArticles means the document was retrieved but yielded zero
	// usable items.
	ErrNoArticles = errors.New("no articles found in feed")

	// ErrParse means the retrieved document was not valid RSS or Atom.
	ErrParse = errors.New("failed to parse feed document")
)
