package dcosutil

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/reoring/dcosutil/internal/jsonvalue"
)

// LoadJSON decodes a single JSON document from r. Numbers are returned as
// json.Number. Any failure is logged and reported as ErrLoadingJSON.
func LoadJSON(ctx context.Context, r io.Reader) (any, error) {
	v, err := jsonvalue.Decode(r)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("Unhandled error while loading JSON")
		return nil, ErrLoadingJSON
	}
	return v, nil
}

// LoadJSONString is LoadJSON for an in-memory document. The offending input
// is included in the log entry.
func LoadJSONString(ctx context.Context, s string) (any, error) {
	v, err := jsonvalue.DecodeString(s)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("value", s).Msg("Unhandled error while loading JSON")
		return nil, ErrLoadingJSON
	}
	return v, nil
}

// LoadYAML decodes the first YAML document from r into a JSON-compatible
// value. An empty stream decodes to nil.
func LoadYAML(ctx context.Context, r io.Reader) (any, error) {
	var v any
	if err := yaml.NewDecoder(r).Decode(&v); err != nil && !errors.Is(err, io.EOF) {
		zerolog.Ctx(ctx).Error().Err(err).Msg("Unhandled error while loading YAML")
		return nil, ErrLoadingYAML
	}
	out, err := jsonvalue.Normalize(v)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("YAML document is not JSON-compatible")
		return nil, ErrLoadingYAML
	}
	return out, nil
}

// LoadTOML decodes a TOML document from r into a JSON-compatible value.
// Dates and times become strings.
func LoadTOML(ctx context.Context, r io.Reader) (any, error) {
	var m map[string]any
	if err := toml.NewDecoder(r).Decode(&m); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("Unhandled error while loading TOML")
		return nil, ErrLoadingTOML
	}
	if m == nil {
		m = map[string]any{}
	}
	out, err := jsonvalue.Normalize(m)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("TOML document is not JSON-compatible")
		return nil, ErrLoadingTOML
	}
	return out, nil
}

// LoadFile reads the document at path, choosing the decoder from the file
// extension: .yaml/.yml for YAML, .toml for TOML and JSON otherwise.
func LoadFile(ctx context.Context, path string) (any, error) {
	f, err := os.Open(path)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("path", path).Msg("Unable to open file")
		return nil, ErrLoadingFile
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(ctx, f)
	case ".toml":
		return LoadTOML(ctx, f)
	default:
		return LoadJSON(ctx, f)
	}
}
