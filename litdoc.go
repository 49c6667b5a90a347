// Package litdoc provides a literate-programming documentation generator.
// It splits source files into comments and code, renders the comments as
// Markdown next to highlighted code, and writes one HTML page per source
// file plus an index.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout, together with the comment classifier at the core
// of the tool. Implementations live in subdirectories named after their
// primary dependency (e.g., sqlite/, goldmark/, chroma/).
package litdoc
