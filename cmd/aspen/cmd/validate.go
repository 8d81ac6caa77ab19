package cmd

import (
	"fmt"

	"github.com/go-aspen/aspen/pkg/uifile"
)

func init() {
	RegisterCommand(&Command{
		Name:  "validate",
		Short: "Validate UI documents",
		Long: `Parse one or more declarative UI documents and check that every
node names a widget class the binding wraps. Validation is static; no
native toolkit is required.`,
		Usage: "aspen validate <file.yaml> [...]",
		Run:   runValidate,
	})
}

func runValidate(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("a UI document path is required\n\nUsage: aspen validate <file.yaml> [...]")
	}

	for _, path := range args {
		doc, err := uifile.Load(path)
		if err != nil {
			return err
		}
		if err := doc.Validate(); err != nil {
			return err
		}
		fmt.Printf("%s: ok (root class %q)\n", path, doc.Root.Class)
	}
	return nil
}
