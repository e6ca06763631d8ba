package gen

import (
	"bytes"
	"errors"
	"fmt"
	"text/template"

	"mime-table-generator/internal/common"
	"mime-table-generator/internal/mimetypes"
)

// ErrInvalidConfig is returned when the generator configuration cannot
// produce valid C.
var ErrInvalidConfig = errors.New("invalid generator config")

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// TypeName is the name of the generated struct typedef.
	TypeName string
	// ArrayName is the name of the generated array.
	ArrayName string
	// ExtensionMarker is prepended to every extension.
	ExtensionMarker string
	// ValuePrefix is prepended to every content type, e.g. "Content-Type: "
	// when the consumer wants complete header lines.
	ValuePrefix string
	// LineTerminator is appended to every content type. It is written
	// verbatim, so it must already be a C escape sequence.
	LineTerminator string
	// Indent is used for struct fields and array records.
	Indent string
	// HeaderComment emits a "Code generated" banner before the typedef.
	HeaderComment bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		TypeName:        "mimeType",
		ArrayName:       "mTypes",
		ExtensionMarker: ".",
		ValuePrefix:     "",
		LineTerminator:  `\r\n`,
		Indent:          "    ",
		HeaderComment:   false,
	}
}

// Validate checks that identifiers in the config are valid C identifiers.
func (c GeneratorConfig) Validate() error {
	if !isCIdentifier(c.TypeName) {
		return fmt.Errorf("%w: type name %q is not a C identifier", ErrInvalidConfig, c.TypeName)
	}

	if !isCIdentifier(c.ArrayName) {
		return fmt.Errorf("%w: array name %q is not a C identifier", ErrInvalidConfig, c.ArrayName)
	}

	if c.TypeName == c.ArrayName {
		return fmt.Errorf("%w: type and array share the name %q", ErrInvalidConfig, c.TypeName)
	}

	return nil
}

// Generator renders mapping tables.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated source fragment.
type GeneratedFile struct {
	// Content is the generated source.
	Content []byte
	// Records is the number of table records in Content.
	Records int
}

// Generate renders the table. Nothing is returned on failure, so callers
// never see a partial table.
func (g *Generator) Generate(table *mimetypes.MappingTable) (*GeneratedFile, error) {
	if err := g.config.Validate(); err != nil {
		return nil, err
	}

	data := g.buildTemplateData(table)

	var buf bytes.Buffer
	if err := tableTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	return &GeneratedFile{
		Content:  buf.Bytes(),
		Records:  len(data.Records),
	}, nil
}

// templateData holds all data needed for the table template.
type templateData struct {
	HeaderComment bool
	Indent        string
	TypeName      string
	ArrayName     string
	Records       []recordData
}

// recordData is one rendered array element, already escaped.
type recordData struct {
	Extension string
	Type      string
}

func (g *Generator) buildTemplateData(table *mimetypes.MappingTable) *templateData {
	data := &templateData{
		HeaderComment: g.config.HeaderComment,
		Indent:        g.config.Indent,
		TypeName:      g.config.TypeName,
		ArrayName:     g.config.ArrayName,
		Records:       make([]recordData, 0, table.Len()),
	}

	if table == nil {
		return data
	}

	for _, e := range table.Entries {
		data.Records = append(data.Records, recordData{
			Extension: common.CEscape(g.config.ExtensionMarker + e.Extension),
			Type:      common.CEscape(g.config.ValuePrefix+e.ContentType) + g.config.LineTerminator,
		})
	}

	return data
}

func isCIdentifier(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		c := s[i]

		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}

	return true
}

var tableTemplate = template.Must(template.New("table").Parse(
	`{{if .HeaderComment}}/* Code generated by mime-table-generator. DO NOT EDIT. */

{{end}}typedef struct {
{{.Indent}}char const *const Extension;
{{.Indent}}char const *const Type;
} {{.TypeName}};

const {{.TypeName}} {{.ArrayName}}[] = {
{{range .Records}}{{$.Indent}}{"{{.Extension}}", "{{.Type}}"},
{{end}}};
`))
