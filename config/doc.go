// Package config loads structured configuration through a small pipeline:
// fetch raw bytes, parse a section, apply defaults, validate.
//
// The pipeline has four extension points:
//   - DataFetcher: retrieves raw data (see config/fetcher/file)
//   - Parser: decodes a section of the data (see config/parser/yaml)
//   - Defaulter: fills unset fields after parsing
//   - Validator: rejects invalid results
//
// The settings Accessor itself never goes through this package for individual
// values; it is used to load settings.Config and to build document sources.
//
// # Example
//
//	cfg, err := config.Load(&settings.Config{}, "settings", yamlparser.NewParser(), fetcher)
package config
