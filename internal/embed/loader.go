package embed

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Olga-Zydziak/website-of-publishing-house/internal/content"
)

// Fallback storefront copy for configs that omit their own.
const (
	DefaultLoadingMessage = "Loading bookstore…"
	DefaultErrorMessage   = "Unable to load the bookstore. Please try again later."

	// InitializerName is the global the storefront script is expected to
	// define once loaded.
	InitializerName = "xProductBrowser"
)

// Loader prefetches storefront scripts so a broken or unreachable widget is
// detected server-side before the page tells visitors to wait for it.
// Concurrent prefetches of the same URL collapse into one request. A URL
// that loaded once is never fetched again; a failed URL is evicted so the
// next render retries it.
type Loader struct {
	client *http.Client

	mu       sync.Mutex
	inflight map[string]chan struct{}
	loaded   map[string]bool
}

// NewLoader creates a loader with a bounded request timeout.
func NewLoader() *Loader {
	return &Loader{
		client:   &http.Client{Timeout: 10 * time.Second},
		inflight: map[string]chan struct{}{},
		loaded:   map[string]bool{},
	}
}

// Prepare ensures the script at url is reachable. It returns nil immediately
// for a URL that already loaded, joins an in-flight fetch when one exists,
// and otherwise fetches the script itself.
func (l *Loader) Prepare(ctx context.Context, url string) error {
	if url == "" {
		return fmt.Errorf("script URL missing")
	}

	for {
		l.mu.Lock()
		if l.loaded[url] {
			l.mu.Unlock()
			return nil
		}
		if done, ok := l.inflight[url]; ok {
			l.mu.Unlock()
			select {
			case <-done:
				// Re-check: the other fetch may have failed and evicted
				// the URL, in which case this caller retries it.
				continue
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		done := make(chan struct{})
		l.inflight[url] = done
		l.mu.Unlock()

		err := l.fetch(ctx, url)

		l.mu.Lock()
		delete(l.inflight, url)
		if err == nil {
			l.loaded[url] = true
		}
		l.mu.Unlock()
		close(done)
		return err
	}
}

func (l *Loader) fetch(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("preparing script request: %w", err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to load script %s: %w", url, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("failed to load script %s: status %d", url, resp.StatusCode)
	}
	return nil
}

// ContainerID returns the configured container element ID, generating a
// random one when the config omits it.
func ContainerID(cfg *content.EmbedConfig) string {
	if cfg != nil && cfg.ContainerID != "" {
		return cfg.ContainerID
	}
	return fmt.Sprintf("sellastic-store-%05x", rand.Intn(1<<20))
}

// Arguments returns the initializer arguments, appending an id= argument
// bound to the container when the config does not carry one.
func Arguments(cfg *content.EmbedConfig, containerID string) []string {
	var args []string
	if cfg != nil {
		args = append(args, cfg.Arguments...)
	}
	for _, arg := range args {
		if strings.HasPrefix(strings.TrimSpace(arg), "id=") {
			return args
		}
	}
	return append(args, "id="+containerID)
}

// LoadingMessage returns the config's loading copy or the default.
func LoadingMessage(cfg *content.EmbedConfig) string {
	if cfg != nil && cfg.LoadingMessage != "" {
		return cfg.LoadingMessage
	}
	return DefaultLoadingMessage
}

// ErrorMessage returns the config's failure copy or the default.
func ErrorMessage(cfg *content.EmbedConfig) string {
	if cfg != nil && cfg.ErrorMessage != "" {
		return cfg.ErrorMessage
	}
	return DefaultErrorMessage
}
