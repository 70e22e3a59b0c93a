package models

import "fmt"

// ProviderError reports a failed call against one upstream provider. It keeps
// the provider name and HTTP status so the aggregator can log which source
// broke the request.
type ProviderError struct {
	Provider   string
	StatusCode int // zero when the call never reached HTTP
	Err        error
}

func (e *ProviderError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("%s: HTTP %d: %v", e.Provider, e.StatusCode, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: HTTP %d", e.Provider, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Provider, e.Err)
	default:
		return fmt.Sprintf("%s: provider request failed", e.Provider)
	}
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
