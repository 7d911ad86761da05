package extraction

import "errors"

var (
	// ErrNoTextExtracted means the collaborator read the input but found no
	// usable text. Callers treat it as "nothing submitted", never as
	// non-compliant.
	ErrNoTextExtracted = errors.New("no text could be extracted")

	// ErrFetchFailed wraps transport-level failures (timeout, 4xx/5xx, TLS)
	// when fetching a policy URL. Surfaced to the user as "could not
	// analyze", distinct from a fetched-but-non-compliant page.
	ErrFetchFailed = errors.New("failed to fetch url")

	// ErrOCRUnavailable means no OCR service is configured or it is down.
	ErrOCRUnavailable = errors.New("ocr service unavailable")
)
