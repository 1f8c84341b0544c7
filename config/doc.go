// Package config loads srcfg documents into application structs.
//
// Loading is split across small interfaces:
//   - DataFetcher: retrieves raw text and the directory it came from
//   - Parser: parses the text and decodes one section into a struct
//   - Defaulter: applies default values before validation
//   - Validator: validates config after parsing
//
// # Path Navigation
//
// The Provider function accepts a dotted section path, written the same way
// as a section header:
//
//	"services.api"     -> [services.api]
//	"database"         -> [database]
//	""                 -> entire document
//
// # Example
//
//	type APIConfig struct {
//	    Timeout time.Duration `srcfg:"timeout"`
//	    BaseURL string        `srcfg:"base_url"`
//	}
//
//	fetcher, err := filefetcher.NewFetcher("app.srcfg")()
//	provider := config.Provider(&APIConfig{}, "services.api")
//	cfg, err := provider(srcfgparser.NewParser(), fetcher)
package config
