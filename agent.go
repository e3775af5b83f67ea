package browserx

import (
	"context"
	"os"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/minweb/browserx/urlx"
	"github.com/minweb/browserx/wirex"
	"github.com/minweb/browserx/zaputils"
)

const (
	defaultMaxRedirects   = 5
	defaultConnectTimeout = 10 * time.Second
)

// Agent is one browsing session. It owns a wire client per origin, reused
// across exchanges and redirect hops, and consults a response cache around
// body decoding. The whole request path is synchronous and blocking; an
// agent must not be shared between goroutines.
type Agent struct {
	logger       *zap.Logger
	userAgent    string
	timeout      time.Duration
	maxRedirects int
	cache        *ResponseCache

	clients map[string]*wirex.Client
}

func CreateAgent(opts *AgentOptions) *Agent {
	if opts == nil {
		opts = &AgentOptions{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := opts.ConnectTimeout
	if timeout == 0 {
		timeout = defaultConnectTimeout
	}
	maxRedirects := opts.MaxRedirects
	if maxRedirects == 0 {
		maxRedirects = defaultMaxRedirects
	}
	cache := opts.Cache
	if cache == nil {
		cache = NewResponseCache()
	}

	return &Agent{
		logger:       logger,
		userAgent:    opts.UserAgent,
		timeout:      timeout,
		maxRedirects: maxRedirects,
		cache:        cache,

		clients: make(map[string]*wirex.Client),
	}
}

// Fetch resolves rawURL and returns its decoded body text.
func (a *Agent) Fetch(ctx context.Context, rawURL string) (string, error) {
	ctx, span := tracer.Start(ctx, "Fetch",
		trace.WithAttributes(attribute.String("url.full", rawURL)))
	defer span.End()

	stime := time.Now()
	fetchesTotal.Add(ctx, 1)

	u, err := urlx.Parse(rawURL)
	if err != nil {
		return "", errors.Wrapf(err, "failed to parse url %q", rawURL)
	}

	var body string
	switch u.Scheme {
	case urlx.SchemeHTTP, urlx.SchemeHTTPS:
		body, err = a.fetchHTTP(ctx, u)
	case urlx.SchemeFile:
		body, err = a.fetchFile(u)
	case urlx.SchemeData:
		body = u.Data
	}
	if err != nil {
		return "", err
	}

	fetchDuration.Record(ctx, time.Since(stime).Seconds())
	return body, nil
}

func (a *Agent) fetchHTTP(ctx context.Context, u urlx.URL) (string, error) {
	hops := 0
	for {
		cli := a.clientFor(u)

		req := wirex.BuildRequest(u.Host, u.Path, a.userAgent)
		if err := cli.SendRequest(ctx, req); err != nil {
			return "", err
		}

		resp, err := cli.ReadResponse()
		if err != nil {
			return "", err
		}

		a.logger.Debug("response received",
			zap.Int("status", resp.StatusCode),
			zaputils.Scheme("scheme", string(u.Scheme)),
			zaputils.Resource("resource", u.Host, u.Port, u.Path),
			zap.Int("headerCount", len(resp.Headers)))

		switch {
		case resp.IsSuccess():
			key := u.CacheKey()
			if body, ok := a.cache.Get(key); ok {
				// The body bytes for this exchange stay unread on the
				// kept-alive connection; the next exchange on this socket
				// sees them first.
				cacheHits.Add(ctx, 1)
				a.logger.Debug("cache hit", zaputils.CacheKey("key", key))
				return body, nil
			}

			body, err := cli.ReadBody(resp)
			if err != nil {
				return "", err
			}

			a.cache.Put(key, body, resp.Headers.Get("Cache-Control"))
			return body, nil

		case resp.IsRedirect():
			location := resp.Headers.Get("Location")
			if location == "" {
				return "", ErrMissingLocation
			}

			hops++
			if hops > a.maxRedirects {
				return "", ErrTooManyRedirects
			}

			next, err := u.Resolve(location)
			if err != nil {
				return "", errors.Wrapf(err, "failed to resolve redirect %q", location)
			}

			redirectsFollowed.Add(ctx, 1)
			a.logger.Debug("following redirect",
				zap.String("location", location),
				zap.Int("hops", hops))
			u = next

		default:
			return "", StatusError{
				StatusCode:  resp.StatusCode,
				Explanation: resp.Explanation,
			}
		}
	}
}

func (a *Agent) clientFor(u urlx.URL) *wirex.Client {
	key := string(u.Scheme) + "://" + u.Address()
	if cli, ok := a.clients[key]; ok {
		return cli
	}

	cli := wirex.NewClient(&wirex.ClientOptions{
		Address:    u.Address(),
		UseTLS:     u.Scheme == urlx.SchemeHTTPS,
		ServerName: u.Host,
		Timeout:    a.timeout,
		Logger:     a.logger,
	})
	a.clients[key] = cli
	return cli
}

func (a *Agent) fetchFile(u urlx.URL) (string, error) {
	data, err := os.ReadFile(u.Path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s", u.Path)
	}
	return string(data), nil
}

// Cache exposes the session's response cache.
func (a *Agent) Cache() *ResponseCache {
	return a.cache
}

// Close tears down every origin connection this session opened.
func (a *Agent) Close() error {
	for _, cli := range a.clients {
		_ = cli.Close()
	}
	a.clients = make(map[string]*wirex.Client)
	return nil
}
