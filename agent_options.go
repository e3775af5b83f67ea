package browserx

import (
	"time"

	"go.uber.org/zap"
)

type AgentOptions struct {
	Logger *zap.Logger

	// UserAgent overrides the User-Agent header sent on every request.
	UserAgent string

	// ConnectTimeout bounds connect, TLS handshake, and each transport read.
	// A timeout during connect or handshake is fatal; a timeout during a body
	// read truncates the body instead.
	ConnectTimeout time.Duration

	// MaxRedirects bounds the redirect chain; zero uses the default of 5.
	MaxRedirects int

	// Cache is the shared response cache consulted and populated around body
	// decoding. When nil the agent creates a private one.
	Cache *ResponseCache
}
