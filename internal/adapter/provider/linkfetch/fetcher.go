// Package linkfetch pulls short text snippets from links referenced in the
// work log. It is best-effort: any failure drops the link and Fetch never
// returns an error.
package linkfetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	xhtml "golang.org/x/net/html"

	"github.com/neolog/site-api/internal/domain"
	"github.com/neolog/site-api/pkg/parallel"
)

const (
	defaultMaxLinks = 3
	defaultTimeout  = 3500 * time.Millisecond
	defaultMaxChars = 4000
	maxBodyBytes    = 1 << 20
	userAgent       = "site-api-linkfetch/1.0"
)

// Options tunes the fetcher. Zero values fall back to the defaults.
type Options struct {
	MaxLinks int
	Timeout  time.Duration
	MaxChars int
}

// Fetcher downloads link snippets in parallel under a per-link deadline.
type Fetcher struct {
	httpClient *http.Client
	maxLinks   int
	timeout    time.Duration
	maxChars   int
	log        *slog.Logger
}

// NewFetcher creates a Fetcher. A nil client gets a default one.
func NewFetcher(client *http.Client, opts Options, logger *slog.Logger) *Fetcher {
	if client == nil {
		client = &http.Client{}
	}
	f := &Fetcher{
		httpClient: client,
		maxLinks:   opts.MaxLinks,
		timeout:    opts.Timeout,
		maxChars:   opts.MaxChars,
		log:        logger.With("adapter", "linkfetch"),
	}
	if f.maxLinks <= 0 {
		f.maxLinks = defaultMaxLinks
	}
	if f.timeout <= 0 {
		f.timeout = defaultTimeout
	}
	if f.maxChars <= 0 {
		f.maxChars = defaultMaxChars
	}
	return f
}

// Candidates returns the distinct http(s) links of entries in first-seen
// order, capped at limit.
func Candidates(entries []domain.LogEntry, limit int) []domain.Link {
	seen := make(map[string]struct{})
	var out []domain.Link
	for _, e := range entries {
		for _, l := range e.Links() {
			u := strings.TrimSpace(l.URL)
			if _, dup := seen[u]; dup || !fetchable(u) {
				continue
			}
			seen[u] = struct{}{}
			out = append(out, domain.Link{Title: l.Title, URL: u})
			if len(out) >= limit {
				return out
			}
		}
	}
	return out
}

func fetchable(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// Fetch returns snippets for the links of entries. Failed links are omitted;
// the result may be empty.
func (f *Fetcher) Fetch(ctx context.Context, entries []domain.LogEntry) []domain.LinkSnippet {
	links := Candidates(entries, f.maxLinks)
	if len(links) == 0 {
		return nil
	}

	tasks := make([]parallel.Task[*domain.LinkSnippet], len(links))
	for i, l := range links {
		tasks[i] = func(ctx context.Context) (*domain.LinkSnippet, error) {
			snip, err := f.fetchOne(ctx, l)
			if err != nil {
				f.log.DebugContext(ctx, "link dropped", slog.String("url", l.URL), slog.String("error", err.Error()))
				return nil, nil
			}
			return snip, nil
		}
	}

	// Tasks never fail, so the error is only a canceled parent context.
	results, err := parallel.Run(ctx, tasks, len(tasks))
	if err != nil {
		return nil
	}

	out := make([]domain.LinkSnippet, 0, len(results))
	for _, s := range results {
		if s != nil {
			out = append(out, *s)
		}
	}
	f.log.DebugContext(ctx, "link snippets fetched", slog.Int("candidates", len(links)), slog.Int("fetched", len(out)))
	return out
}

func (f *Fetcher) fetchOne(ctx context.Context, link domain.Link) (*domain.LinkSnippet, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	text := string(body)
	if isHTML(contentType) {
		text = StripHTML(text)
	}

	return &domain.LinkSnippet{
		URL:         link.URL,
		Title:       link.Title,
		ContentType: contentType,
		Content:     truncate(text, f.maxChars),
	}, nil
}

func isHTML(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.Contains(strings.ToLower(contentType), "text/html")
	}
	return mt == "text/html" || mt == "application/xhtml+xml"
}

// StripHTML returns the visible text of an HTML document with script, style
// and noscript content removed and whitespace collapsed.
func StripHTML(doc string) string {
	root, err := xhtml.Parse(strings.NewReader(doc))
	if err != nil {
		return strings.Join(strings.Fields(doc), " ")
	}
	var b strings.Builder
	var walk func(n *xhtml.Node)
	walk = func(n *xhtml.Node) {
		switch n.Type {
		case xhtml.TextNode:
			b.WriteString(n.Data)
			b.WriteByte(' ')
			return
		case xhtml.ElementNode:
			switch strings.ToLower(n.Data) {
			case "script", "style", "noscript":
				return
			}
		case xhtml.CommentNode:
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return strings.Join(strings.Fields(b.String()), " ")
}

// truncate cuts s to at most n characters.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
