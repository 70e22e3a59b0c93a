package provider

import (
	"github.com/Ansh3878/matrix-jobs/internal/config"
	"github.com/Ansh3878/matrix-jobs/internal/network"
)

// Registry returns the providers in their canonical merge order. The
// aggregator concatenates results in this order before sorting, which is
// what makes equal-timestamp ordering deterministic.
func Registry(cfg config.Config, client *network.Client) []Provider {
	return []Provider{
		NewRemotive(client, cfg.RemotiveBaseURL),
		NewJSearch(client, cfg.JSearchBaseURL, cfg.JSearchAPIKey),
	}
}
