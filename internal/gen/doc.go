// Package gen renders a mime type table as a C source fragment.
//
// Generation uses text/template over an already parsed
// mimetypes.MappingTable. The output is deterministic: the same table and
// configuration always produce byte-identical content.
//
// Output shape (default configuration):
//
//	typedef struct {
//	    char const *const Extension;
//	    char const *const Type;
//	} mimeType;
//
//	const mimeType mTypes[] = {
//	    {".html", "text/html\r\n"},
//	};
//
// The "\r\n" suffix is the literal C escape: consumers write the type value
// straight into HTTP response headers.
package gen
