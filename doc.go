// Package srcfg parses srcfg configuration text into a tree of sections.
//
// A srcfg document is line oriented:
//
//	;; comment
//	@import base.srcfg
//
//	[global]
//	name = ${USER}            ;; interpolated, comment stripped
//	banner :=   kept as is ;; including this
//	motd = first line
//	= second line
//
//	[server.tls]              ;; dotted path: server -> tls
//	[[server.upstreams]]      ;; array section: one new element per header
//	[[.upstreams]]            ;; relative to the enclosing top-level section
//
// Parsing is best effort: every line that fails is reported as a ParseError
// and skipped, and the returned tree holds everything else. Imports are parsed
// recursively and merged into the importing document; errors inside an
// imported file are reported on the @import line as nested errors.
//
// The resulting tree is described in package tree. Values are strings until
// read through a typed accessor.
package srcfg
