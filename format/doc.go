// Package format names the document formats a value tree can be exchanged
// with and parses format selectors from flags and file suffixes.
package format
