package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"audit-manager/core/config"
	"audit-manager/core/logger"
	"audit-manager/feature/audit"
	"audit-manager/feature/audit/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	auditStockFile   string
	auditBarcodeFile string
	auditLabelFile   string
	auditOutDir      string
	auditFormat      string
)

// auditCmd runs one reconciliation over files on disk, without the server.
var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Reconcile a stock export against audit scan reports",
	Long: `Run one inventory reconciliation over three spreadsheets on disk and
write the found/missing/duplicates reports to an output directory.

Examples:
  # Write CSV reports next to the inputs
  audit-manager audit --stock stock.xlsx --barcode old.xlsx --label labels.xlsx

  # Write XLSX reports to a directory
  audit-manager audit --stock stock.xlsx --barcode old.xlsx --label labels.xlsx --out reports --format xlsx`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}

		logg, err := logger.New(&logger.Config{Level: "debug", Format: "console"})
		if err != nil {
			return err
		}
		defer logg.Sync()

		if auditFormat != "csv" && auditFormat != "xlsx" {
			return fmt.Errorf("unsupported format %q (want csv or xlsx)", auditFormat)
		}

		stock, err := os.Open(auditStockFile)
		if err != nil {
			return err
		}
		defer stock.Close()
		barcode, err := os.Open(auditBarcodeFile)
		if err != nil {
			return err
		}
		defer barcode.Close()
		label, err := os.Open(auditLabelFile)
		if err != nil {
			return err
		}
		defer label.Close()

		svc := audit.NewService(cfg.Audit, logg, nil, nil, "")
		result, err := svc.Process(stock, barcode, label)
		if err != nil {
			return err
		}

		if err := os.MkdirAll(auditOutDir, 0o755); err != nil {
			return err
		}
		for _, name := range []string{models.ReportFound, models.ReportMissing, models.ReportDuplicates} {
			report, _ := result.Report(name)
			path := filepath.Join(auditOutDir, name+"_report."+auditFormat)

			out, err := os.Create(path)
			if err != nil {
				return err
			}
			if auditFormat == "xlsx" {
				err = report.WriteXLSX(out)
			} else {
				err = report.WriteCSV(out)
			}
			if cerr := out.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			logg.Info("Report written", zap.String("path", path))
		}

		logg.Info("Audit complete",
			zap.Int("total_stock", result.Summary.TotalStock),
			zap.Int("total_scanned", result.Summary.TotalScanned),
			zap.Int("found", result.Summary.Found),
			zap.Int("missing", result.Summary.Missing),
			zap.Int("duplicates", result.Summary.Duplicates),
			zap.Float64("found_percentage", result.Summary.FoundPercentage),
		)
		return nil
	},
}

func init() {
	auditCmd.Flags().StringVar(&auditStockFile, "stock", "", "ERP stock export (.xlsx)")
	auditCmd.Flags().StringVar(&auditBarcodeFile, "barcode", "", "old barcode audit report (.xlsx)")
	auditCmd.Flags().StringVar(&auditLabelFile, "label", "", "label number audit report (.xlsx)")
	auditCmd.Flags().StringVar(&auditOutDir, "out", ".", "output directory for reports")
	auditCmd.Flags().StringVar(&auditFormat, "format", "csv", "report format: csv or xlsx")
	_ = auditCmd.MarkFlagRequired("stock")
	_ = auditCmd.MarkFlagRequired("barcode")
	_ = auditCmd.MarkFlagRequired("label")

	RootCmd.AddCommand(auditCmd)
}
