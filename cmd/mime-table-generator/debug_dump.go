//go:build ignore

package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"

	"mime-table-generator/internal/gen"
	"mime-table-generator/internal/mimetypes"
)

func main() {
	path := "/etc/mime.types"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	table, diags, err := mimetypes.LoadFile(path)
	if err != nil {
		fmt.Println("load mime types:", err)
		os.Exit(1)
	}

	fmt.Println("=== diagnostics ===")
	for _, d := range diags.All() {
		fmt.Println(d.Severity, d)
	}

	fmt.Println("=== duplicates ===")
	spew.Dump(table.Duplicates())

	fmt.Println("=== first entries ===")
	spew.Dump(table.Entries[:min(len(table.Entries), 5)])

	file, err := gen.NewGenerator(gen.DefaultGeneratorConfig()).Generate(table)
	if err != nil {
		fmt.Println("generate error:", err)
		os.Exit(1)
	}

	fmt.Println("===", file.Records, "records ===")
	fmt.Println(string(file.Content))
}
