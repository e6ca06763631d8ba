// Package diagnostic provides structured warnings and
// informational notes produced while reading a mime.types file.
//
// Key capabilities:
//   - Malformed line reports (content type without extensions)
//   - Extension normalization notes (leading dots, empty tokens)
//   - Duplicate extension notes with the line of the first occurrence
//   - An empty table warning
package diagnostic
