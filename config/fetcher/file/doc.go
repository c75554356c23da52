// Package file provides a config.DataFetcher that reads a settings file from disk.
//
// The file is read when the Fetcher is constructed, so a missing or unreadable
// file is reported at startup rather than on the first lookup:
//
//	fetcher, err := file.Open("/etc/billing/settings.yaml")
//	cfg, err := config.Load(&settings.Config{}, "settings", yaml.NewParser(), fetcher)
package file
