package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/RoomFit/internal/export"
	"github.com/piwi3910/RoomFit/internal/model"
	"github.com/piwi3910/RoomFit/internal/project"
)

var errNoFormat = errors.New("no export format selected (use --pdf, --labels, --xlsx, --dxf or --all)")

type exportTarget struct {
	name string
	path string
	ext  string
	fn   func(string, model.Project) error
}

// exportCommand creates the export command.
func (c *CLI) exportCommand() *cobra.Command {
	var (
		pdfPath    string
		labelsPath string
		xlsxPath   string
		dxfPath    string
		all        bool
	)

	cmd := &cobra.Command{
		Use:   "export <project>",
		Short: "Export a plan as PDF, placement tags, shopping list or DXF",
		Long: `Export a plan.

  --pdf      floor plan and cost summary
  --labels   QR-coded placement tags (Avery 5160 sheets)
  --xlsx     shopping list workbook
  --dxf      floor plan drawing in inches

--all writes every format next to the project file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			p, err := project.LoadProject(args[0])
			if err != nil {
				return err
			}

			targets := []exportTarget{
				{"floor plan", pdfPath, ".pdf", export.ExportPDF},
				{"placement tags", labelsPath, "-tags.pdf", export.ExportLabels},
				{"shopping list", xlsxPath, ".xlsx", export.ExportShoppingList},
				{"DXF plan", dxfPath, ".dxf", export.ExportDXF},
			}
			base := strings.TrimSuffix(args[0], project.Extension)

			written := 0
			for _, t := range targets {
				path := t.path
				if path == "" && all {
					path = base + t.ext
				}
				if path == "" {
					continue
				}
				if err := t.fn(path, p); err != nil {
					return fmt.Errorf("export %s: %w", t.name, err)
				}
				logger.Debug("exported", "format", t.name, "path", path)
				c.printSuccess("Exported %s", t.name)
				c.printFile(path)
				written++
			}
			if written == 0 {
				return errNoFormat
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&pdfPath, "pdf", "", "write the floor plan PDF to this path")
	cmd.Flags().StringVar(&labelsPath, "labels", "", "write the placement tags PDF to this path")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "write the shopping list workbook to this path")
	cmd.Flags().StringVar(&dxfPath, "dxf", "", "write the DXF floor plan to this path")
	cmd.Flags().BoolVar(&all, "all", false, "write every format next to the project file")
	return cmd
}
