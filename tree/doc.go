// Package tree is the format-preserving document model for TOML values.
//
// # Overview
//
// The tree package defines the node types a TOML document is made of. Every
// node keeps the trivia around it (whitespace and comments) and, when it was
// parsed from text, the exact source rendering of its scalars. A tree that is
// parsed and rendered without modification reproduces its input byte for
// byte; modified nodes render with a default layout while the rest of the
// tree keeps its own.
//
// # Node Types
//
// A Value is one of seven inline forms:
//
//   - String, Integer, Float, Boolean, Datetime: scalars held as
//     Formatted[T], which pairs the typed value with its source rendering
//   - Array: ordered inline elements
//   - InlineTable: single-line key/value pairs in braces
//
// An Item is what a table entry holds and is one of:
//
//   - None: the zero Item, an empty slot
//   - Value: any inline form
//   - Table: a standard table written with a [header] line
//   - ArrayOfTables: a sequence of [[header]] tables
//
// Both are closed unions: a kind tag selects the one active payload, and
// every accessor switches over the tag. Downcasts are total, returning
// (x, ok) or nil rather than failing.
//
// # Trivia
//
// Decor holds the raw text before and after a node. An unset side means "use
// the context default": a value in an assignment gets a single leading
// space, the last value of an inline table gets a space on both sides, and
// so on. RawString is either explicit text or a span into the original
// input; Despan resolves spans against that input, after which the tree no
// longer refers to it.
//
// # Building Trees
//
// Use the From constructors or ValueOf to lift Go data:
//
//	v := tree.ValueOf(map[string]any{"name": "alice", "age": 30})
//	arr := tree.NewArray()
//	arr.Push(1)
//	arr.Push(2)
//
// # Parsing and Rendering
//
// ParseValue parses a standalone TOML value, capturing spans and trivia:
//
//	v, err := tree.ParseValue(`{ name = "alice" } # who`)
//
// String() renders any Value or Item; Encode writes an Item to a writer and
// can colorize the output for terminals:
//
//	err := tree.Encode(item, os.Stdout, tree.EncodeColors(tree.NewColors()))
//
// # Converting Between Forms
//
// Items convert between their variants where the shapes allow it: IntoValue
// collapses tables to inline tables and arrays of tables to arrays,
// IntoTable upgrades an inline table, and IntoArrayOfTables upgrades a
// non-empty array whose elements are all inline tables. On success the
// receiver is reset to None; on failure it is left untouched.
//
// # Thread Safety
//
// Nodes are not thread-safe. Synchronize access yourself or Clone per
// goroutine.
//
// # Related Packages
//
//   - github.com/tomlworks/tomledit/token - positions, spans, string quoting
//   - github.com/tomlworks/tomledit/datetime - the TOML date-time scalar
//   - github.com/tomlworks/tomledit/interop - bridges to plain Go data, JSON, YAML
package tree
