// Package yaml provides the YAML implementation of config.Parser.
//
// It uses github.com/goccy/go-yaml path queries to decode a single section of a
// document. Colon-separated paths are converted internally:
//
//	""                     -> entire document
//	"settings"             -> "$.settings"
//	"appSettings:database" -> "$.appSettings.database"
//
// Use Strict to reject unknown keys when decoding into structs:
//
//	parser := yaml.NewParser(yaml.Strict())
//	var cfg settings.Config
//	err := parser.Parse(data, &cfg, "settings")
package yaml
