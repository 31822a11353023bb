package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	appconfig "github.com/gdnkit/gdnkit/internal/adapters/outbound/config"
	"github.com/gdnkit/gdnkit/internal/adapters/outbound/parser"
	"github.com/gdnkit/gdnkit/internal/adapters/outbound/tui"
	"github.com/gdnkit/gdnkit/internal/adapters/outbound/walker"
	"github.com/gdnkit/gdnkit/internal/application"
	"github.com/gdnkit/gdnkit/internal/domain"
)

func newScanCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "List types deriving NativeClass",
		Long:  "Scan the crate's sources for struct and enum declarations that derive NativeClass, at any nesting depth.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			fileCfg, err := appconfig.New().Load(absPath)
			if err != nil {
				return err
			}

			svc := application.NewScanService(
				walker.New(fileCfg.ExcludePaths...),
				parser.New(),
			)

			classes, err := svc.ScanProject(absPath)
			if err != nil {
				return fmt.Errorf("scanning failed: %w", err)
			}

			if jsonOutput {
				return renderClassesJSON(cmd, classes)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderClasses(classes))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output classes as JSON")

	return cmd
}

func renderClassesJSON(cmd *cobra.Command, classes domain.ClassSet) error {
	names := make([]string, 0, len(classes))
	for name := range classes {
		names = append(names, name)
	}
	sort.Strings(names)

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(names)
}
