// Package config loads the optional YAML configuration file.
//
// Top-level types:
//   - Config{Compressor, Output, Checks, Log}: full config tree parsed from YAML
//   - CompressorConfig: algorithm, level; the pinned codec for the whole run
//   - OutputConfig: format (text|json|prom), sizes (diagnostic lines)
//   - CheckConfig: name, condition ("ncd < 0.3")
//   - LogConfig: level (debug|info|warn|error); SlogLevel() converts it
//
// Load(path) reads the YAML file, applies defaults (zlib level 9, text
// output, warn logging), then validates enums, level ranges and check
// expressions. Without a file, Defaults() is the effective configuration.
// No environment variables are consulted.
package config
