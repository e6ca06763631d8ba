package mimetypes

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"mime-table-generator/internal/diagnostic"
)

// LoadFile reads and parses the mime.types file at path.
func LoadFile(path string) (*MappingTable, diagnostic.Diagnostics, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, diagnostic.Diagnostics{}, fmt.Errorf("reading mime types file %s: %w", path, err)
	}
	defer f.Close()

	table, diags, err := Parse(f)
	if err != nil {
		return nil, diags, fmt.Errorf("reading mime types file %s: %w", path, err)
	}

	return table, diags, nil
}

// Parse reads mime.types formatted data from r.
// Malformed lines are reported in the returned diagnostics and skipped;
// only read failures are returned as errors.
func Parse(r io.Reader) (*MappingTable, diagnostic.Diagnostics, error) {
	var (
		table = &MappingTable{}
		diags diagnostic.Diagnostics
		p     = parser{table: table, diags: &diags, firstSeen: make(map[string]int)}
	)

	br := bufio.NewReader(r)

	lineNo := 0
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, diags, fmt.Errorf("reading line %d: %w", lineNo+1, err)
		}

		if line != "" {
			lineNo++
			p.parseLine(trimLineEnding(line), lineNo)
		}

		if err != nil {
			break
		}
	}

	if table.Len() == 0 {
		diags.AddWarning(diagnostic.CodeEmptyTable,
			"no mappings found, the generated array will have no elements", 0)
	}

	return table, diags, nil
}

// ParseString is a convenience wrapper around Parse.
func ParseString(s string) (*MappingTable, diagnostic.Diagnostics, error) {
	return Parse(strings.NewReader(s))
}

// trimLineEnding drops a trailing "\n" or "\r\n".
func trimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")

	return strings.TrimSuffix(line, "\r")
}

type parser struct {
	table *MappingTable
	diags *diagnostic.Diagnostics
	// firstSeen maps an extension to the line it was first defined on.
	firstSeen map[string]int
}

func (p *parser) parseLine(line string, lineNo int) {
	if line == "" || line[0] == '#' {
		return
	}

	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return
	}

	contentType := tokens[0]
	if len(tokens) == 1 {
		p.diags.AddWarning(diagnostic.CodeMalformedLine,
			fmt.Sprintf("content type %q has no extensions, skipping", contentType), lineNo)

		return
	}

	for _, token := range tokens[1:] {
		ext, ok := p.normalizeExtension(token, lineNo)
		if !ok {
			continue
		}

		if first, dup := p.firstSeen[ext]; dup {
			p.diags.AddInfo(diagnostic.CodeDuplicateExtension,
				fmt.Sprintf("extension %q already defined on line %d", ext, first), lineNo)
		} else {
			p.firstSeen[ext] = lineNo
		}

		p.table.Add(ext, contentType, lineNo)
	}
}

// normalizeExtension strips leading dots so the marker is only added at
// emission time.
func (p *parser) normalizeExtension(token string, lineNo int) (string, bool) {
	ext := strings.TrimLeft(token, ".")
	if ext == "" {
		p.diags.AddWarning(diagnostic.CodeEmptyExtension,
			fmt.Sprintf("extension token %q is empty without its dots, skipping", token), lineNo)

		return "", false
	}

	if ext != token {
		p.diags.AddInfo(diagnostic.CodeLeadingDot,
			fmt.Sprintf("extension %q written with leading dot, using %q", token, ext), lineNo)
	}

	return ext, true
}
