package logging

import (
	"regexp"
	"strconv"

	"go.uber.org/zap"
)

const traceparentHeader = "traceparent"

// W3C Trace Context: {version}-{trace-id}-{parent-id}-{trace-flags}
var traceHeaderRe = regexp.MustCompile(`^([0-9a-fA-F]{2})-([0-9a-fA-F]{32})-([0-9a-fA-F]{16})-([0-9a-fA-F]{2})$`)

type traceContext struct {
	traceID string
	spanID  string
	sampled bool
}

// parseTraceparent reports ok=false for a missing or malformed header.
func parseTraceparent(header string) (traceContext, bool) {
	m := traceHeaderRe.FindStringSubmatch(header)
	if m == nil {
		return traceContext{}, false
	}
	// The regexp guarantees two hex digits.
	flags, _ := strconv.ParseUint(m[4], 16, 8)
	return traceContext{
		traceID: m[2],
		spanID:  m[3],
		sampled: flags&1 == 1,
	}, true
}

func (tc traceContext) fields() []zap.Field {
	return []zap.Field{
		zap.String("traceId", tc.traceID),
		zap.String("spanId", tc.spanID),
		zap.Bool("traceSampled", tc.sampled),
	}
}
