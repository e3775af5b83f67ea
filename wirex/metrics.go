package wirex

import (
	"go.opentelemetry.io/otel"
)

var (
	meter = otel.Meter("github.com/minweb/browserx/wirex")
)

var (
	// reconnects tracks sends that found a broken connection and redialed.
	reconnects, _ = meter.Int64Counter("browserx.wire_reconnects")
)
