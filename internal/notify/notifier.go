package notify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"resty.dev/v3"
)

// Notifier pokes the dashboard's reload endpoint. One POST, empty body, no
// retries; only a 200 counts as success.
type Notifier struct {
	logger zerolog.Logger
	client *resty.Client
	url    string
}

func New(url string, timeout time.Duration, logger zerolog.Logger) *Notifier {
	client := resty.New().SetTimeout(timeout)
	return &Notifier{
		logger: logger,
		client: client,
		url:    url,
	}
}

// Notify issues the reload request. Callers log and swallow the returned
// error; a failed reload never affects subsequent sync cycles.
func (n *Notifier) Notify(ctx context.Context) error {
	resp, err := n.client.R().SetContext(ctx).Post(n.url)
	if err != nil {
		return fmt.Errorf("reload request to %s: %w", n.url, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("reload request to %s: unexpected status %d", n.url, resp.StatusCode())
	}
	n.logger.Info().Str("url", n.url).Msg("Dashboard reload triggered")
	return nil
}

func (n *Notifier) Close() error {
	return n.client.Close()
}
