// Package rtfm provides a local, CLI-based Sphinx documentation lookup
// tool. It fetches a documentation site's object inventory, fuzzy-searches
// symbol names, scrapes the page documenting a symbol, and renders the
// symbol's description, fields, and colorized signature for the terminal.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/).
package rtfm
