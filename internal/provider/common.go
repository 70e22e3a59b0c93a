package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	fhttp "github.com/bogdanfinn/fhttp"

	"github.com/Ansh3878/matrix-jobs/internal/models"
	"github.com/Ansh3878/matrix-jobs/internal/network"
)

const snippetLimit = 240

// fetchJSON performs one GET against a provider endpoint and decodes the
// JSON body into out. Any failure comes back as a *models.ProviderError
// tagged with the provider name so the aggregator can report which source
// broke the request.
func fetchJSON(ctx context.Context, client *network.Client, name string, target string, headers map[string]string, out any) error {
	req, err := fhttp.NewRequestWithContext(ctx, fhttp.MethodGet, target, nil)
	if err != nil {
		return &models.ProviderError{Provider: name, Err: fmt.Errorf("creating request: %w", err)}
	}

	req.Header.Set("accept", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return &models.ProviderError{Provider: name, Err: fmt.Errorf("executing request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return &models.ProviderError{
			Provider:   name,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &models.ProviderError{Provider: name, Err: fmt.Errorf("decoding response: %w", err)}
	}

	return nil
}

// htmlSnippet strips markup from a provider-supplied description and returns
// a short plain-text excerpt.
func htmlSnippet(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return truncate(cleanText(raw), snippetLimit)
	}
	return truncate(cleanText(doc.Text()), snippetLimit)
}

func cleanText(value string) string {
	value = html.UnescapeString(value)
	return strings.Join(strings.Fields(value), " ")
}

func truncate(value string, max int) string {
	if max <= 0 {
		return value
	}
	value = strings.TrimSpace(value)
	if len(value) <= max {
		return value
	}
	return strings.TrimSpace(value[:max]) + "..."
}

// parsePostedAt parses the posting timestamps seen across providers. Returns
// nil for anything unparseable; a missing timestamp must never fail
// normalization.
func parsePostedAt(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return &ts
		}
	}
	return nil
}
