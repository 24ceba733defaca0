package dcosutil

import (
	"context"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// ParseInt parses a base-10 integer, ignoring surrounding whitespace. Any
// failure is logged and reported as ErrParsingInt.
func ParseInt(ctx context.Context, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("value", s).Msg("Unhandled error while parsing string as int")
		return 0, ErrParsingInt
	}
	return n, nil
}
