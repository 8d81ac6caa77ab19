package cmd

import (
	"fmt"

	"github.com/go-aspen/aspen/cmd/aspen/internal/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "info",
		Short: "Show resolved project configuration",
		Long: `Resolve the current project's configuration from aspen.yaml and the
Go module path, applying defaults for anything unset, and print it.`,
		Usage: "aspen info",
		Run:   runInfo,
	})
}

func runInfo(args []string) error {
	root, err := config.FindProjectRoot()
	if err != nil {
		return err
	}

	resolved, err := config.Resolve(root)
	if err != nil {
		return err
	}

	fmt.Printf("Project root:     %s\n", resolved.Root)
	fmt.Printf("Module path:      %s\n", resolved.ModulePath)
	fmt.Printf("App name:         %s\n", resolved.AppName)
	fmt.Printf("App ID:           %s\n", resolved.AppID)
	fmt.Printf("Toolkit version:  %s\n", resolved.ToolkitVersion)
	return nil
}
