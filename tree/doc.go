// Package tree is the in-memory model of a parsed srcfg document.
//
// A File maps section names to Nodes. A Node is either a single *Section or
// an *Array of sections; once a name is bound under a parent its kind never
// changes. A Section holds child Nodes and string entries, which share one
// namespace: lookups check child sections first, then entries.
//
// Values are stored as text and converted only when read (GetInt, GetFloat,
// GetJSON, Decode).
//
// The tree is built by the srcfg parser through AddSection and Merge and is
// meant to be read-only afterwards.
package tree
