package gen

import (
	"fmt"
	"io"
)

// Write writes the generated content to w.
func Write(w io.Writer, file *GeneratedFile) error {
	if _, err := w.Write(file.Content); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}

	return nil
}
