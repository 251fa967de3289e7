package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"milkman/entities"
	esvc "milkman/pkg/export/service"
	"milkman/pkg/report"
)

func (a *CLIApp) summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary YYYY-MM",
		Short: "Print the monthly billing summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := a.open(cmd, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer application.Close()

			rows, err := application.Summary.Monthly(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, report.Title(args[0]))
			if len(rows) == 0 {
				fmt.Fprintln(out, "No deliveries recorded.")
				return nil
			}
			table, err := pterm.DefaultTable.WithHasHeader().WithData(summaryTable(rows)).Srender()
			if err != nil {
				return err
			}
			fmt.Fprintln(out, table)
			return nil
		},
	}
}

func summaryTable(rows []entities.SummaryRow) pterm.TableData {
	data := pterm.TableData{{"Customer Name", "Price per Kg", "Total Quantity (L)", "Total Amount"}}
	for _, r := range rows {
		data = append(data, []string{
			r.Name,
			fmt.Sprint(r.PricePerKg),
			fmt.Sprint(r.TotalQuantity),
			fmt.Sprintf("%.2f", r.TotalAmount),
		})
	}
	return data
}

func (a *CLIApp) exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export YYYY-MM",
		Short: "Write the monthly summary as a PDF or XLSX file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			out, _ := cmd.Flags().GetString("out")

			application, err := a.open(cmd, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer application.Close()

			art, err := application.Export.Export(cmd.Context(), format, args[0])
			if err != nil {
				return err
			}
			if out == "" {
				out = art.FileName
			}
			if dir := filepath.Dir(out); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("create output dir: %w", err)
				}
			}
			if err := os.WriteFile(out, art.Body, 0o644); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d customers)\n", out, art.Rows)
			return nil
		},
	}
	cmd.Flags().StringP("format", "f", esvc.FormatPDF, "Report format: pdf or excel (xlsx)")
	cmd.Flags().StringP("out", "o", "", "Output file (default: summary-<month>.<ext>)")
	return cmd
}
