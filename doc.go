// Package dcosutil provides the small utilities the DCOS command-line tool is
// built on:
//
//   - Scoped temporary directories (WithTempDir, NewTempDir)
//   - Executable discovery on the search path (Which, WhichIn)
//   - JSON, YAML and TOML decoding behind stable user-facing errors
//     (LoadJSON, LoadJSONString, LoadYAML, LoadTOML, LoadFile)
//   - Integer parsing with the same error convention (ParseInt)
//   - Locating the running executable and installation root (ProcessExecutablePath, DCOSPath)
//
// Schema validation lives in the jsonschema sub-package and logger
// construction in logging.
//
// Design policy:
//   - Every fallible operation returns (value, error); on error the value is
//     the zero value.
//   - Unexpected low-level failures are logged through the logger carried by
//     the context (zerolog.Ctx) and replaced by a fixed sentinel error, so
//     callers only ever match on the sentinels in errors.go.
//
// Typical usage:
//
//	logger, err := logging.FromEnviron(os.Getenv)
//	ctx = logger.WithContext(ctx)
//	doc, err := dcosutil.LoadFile(ctx, "config.json")
//	if err := jsonschema.Validate(doc, schema); err != nil { ... }
package dcosutil
