// Package srcfg provides the srcfg Parser implementation for the config package.
//
// The whole document is parsed, including its imports, and the section named
// by the path is decoded into the target struct through tree decoding, so
// fields are matched with `srcfg:"name"` tags and stored strings are
// converted to the field types.
//
// Usage:
//
//	parser := srcfg.NewParser()
//	var cfg Config
//	err := parser.Parse(config.Source{Data: data, Dir: dir}, &cfg, "services.api")
//
// Path Navigation:
//   - Empty path "" -> decode the entire document
//   - Single name "server" -> decode [server]
//   - Nested path "services.api" -> decode [services.api]
package srcfg
