package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	appconfig "github.com/gdnkit/gdnkit/internal/adapters/outbound/config"
	"github.com/gdnkit/gdnkit/internal/adapters/outbound/parser"
	"github.com/gdnkit/gdnkit/internal/adapters/outbound/store"
	"github.com/gdnkit/gdnkit/internal/adapters/outbound/tui"
	"github.com/gdnkit/gdnkit/internal/adapters/outbound/walker"
	"github.com/gdnkit/gdnkit/internal/application"
	"github.com/gdnkit/gdnkit/internal/domain"
)

func newGenerateCmd() *cobra.Command {
	var (
		libName    string
		targetDir  string
		outputDir  string
		profile    string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "generate [path]",
		Short: "Generate .gdnlib and .gdns files",
		Long:  "Scan the crate and synchronize the library manifest and class descriptor files into the Godot project. Existing files are left untouched.",
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

			// Flags win over the config file; the environment fills the
			// remaining gaps during layout resolution.
			cfg := domain.Config{
				ProjectRoot:  absPath,
				LibName:      firstNonEmpty(libName, fileCfg.LibName),
				ArtifactRoot: firstNonEmpty(targetDir, fileCfg.TargetDir),
				OutputDir:    firstNonEmpty(outputDir, fileCfg.OutputDir),
				Profile:      firstNonEmpty(profile, fileCfg.Profile),
			}

			scanSvc := application.NewScanService(
				walker.New(fileCfg.ExcludePaths...),
				parser.New(),
			)
			classes, err := scanSvc.ScanProject(absPath)
			if err != nil {
				return fmt.Errorf("scanning failed: %w", err)
			}

			genSvc := application.NewGenerateService(store.New(), nil)
			layout, err := genSvc.ResolveLayout(cfg)
			if err != nil {
				return err
			}

			report, err := genSvc.Generate(layout, classes)
			if err != nil {
				return err
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
			return nil
		},
	}

	cmd.Flags().StringVar(&libName, "lib-name", "", "Library name (default: CARGO_PKG_NAME)")
	cmd.Flags().StringVar(&targetDir, "target-dir", "", "Build artifact directory (default: CARGO_TARGET_DIR or derived from OUT_DIR)")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "Resource output directory (default: <path>/native)")
	cmd.Flags().StringVar(&profile, "profile", "", "Build profile: debug or release (default: PROFILE)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON")

	return cmd
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
