// Package mimetypes reads mime.types definition files into an ordered
// extension to content type table.
//
// # File format
//
// One mapping per line, content type first, then one or more extensions,
// separated by runs of whitespace:
//
//	# comment
//	text/html               html htm
//	image/png               png
//
// Lines whose first character is '#' are comments. Blank lines are ignored.
// Extensions are written without the leading dot.
//
// # Table order
//
// Entries keep the order of the file. A line listing several extensions
// expands, left to right, into consecutive entries. Duplicate extensions are
// kept; resolving them is up to whoever consumes the table.
//
// # Malformed lines
//
// A line with a content type and no extension is not fatal: it is reported
// as a MALFORMED_LINE warning and contributes no entries.
package mimetypes
