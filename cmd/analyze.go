package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/MrNetsudo/NetAssets/internal/classify"
	"github.com/MrNetsudo/NetAssets/internal/importer"
	"github.com/MrNetsudo/NetAssets/internal/model"
	"github.com/MrNetsudo/NetAssets/internal/report"
)

var (
	analyzeXLSX   string
	analyzeCSV    string
	analyzeSheet  string
	analyzeLimit  int
	analyzeOutput string
	analyzeSave   bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Classify a device inventory export",
	Long:  "Reads an XLSX workbook or CSV export, assigns each device a validated location and hostname metadata, and prints the batch report.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := cfg.Validate("analyze"); err != nil {
			return err
		}

		source, devices, err := loadDevices()
		if err != nil {
			return err
		}

		if analyzeLimit > 0 && len(devices) > analyzeLimit {
			devices = devices[:analyzeLimit]
		}

		zap.L().Info("analyzing devices",
			zap.String("source", source),
			zap.Int("devices", len(devices)),
			zap.Int("concurrency", cfg.Analyze.Concurrency),
		)

		engineLog := zap.NewNop()
		if cfg.Analyze.LogDevices {
			engineLog = zap.L()
		}
		engine := classify.NewEngine(engineLog, cfg.Analyze.Concurrency)

		results, err := engine.Run(ctx, devices)
		if err != nil {
			return err
		}

		summary := report.Summarize(results)
		if err := summary.WriteText(os.Stdout); err != nil {
			return err
		}

		if analyzeSave {
			if err := persistRun(ctx, source, results, summary); err != nil {
				return err
			}
		}

		if analyzeOutput != "" {
			if err := writeCSV(analyzeOutput, results); err != nil {
				return err
			}
			zap.L().Info("wrote enriched export", zap.String("path", analyzeOutput))
		}

		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeXLSX, "xlsx", "", "XLSX workbook to analyze")
	analyzeCmd.Flags().StringVar(&analyzeCSV, "csv", "", "CSV export to analyze")
	analyzeCmd.Flags().StringVar(&analyzeSheet, "sheet", "", "sheet label for CSV input (ground-truth location hint)")
	analyzeCmd.Flags().IntVar(&analyzeLimit, "limit", 0, "max devices to analyze (0 = all)")
	analyzeCmd.Flags().StringVar(&analyzeOutput, "output", "", "write enriched rows to this CSV file")
	analyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "persist the run and verdicts to the store")
	rootCmd.AddCommand(analyzeCmd)
}

func loadDevices() (string, []model.DeviceRecord, error) {
	switch {
	case analyzeXLSX != "" && analyzeCSV != "":
		return "", nil, eris.New("pass either --xlsx or --csv, not both")
	case analyzeXLSX != "":
		devices, err := importer.ReadWorkbook(analyzeXLSX)
		return analyzeXLSX, devices, err
	case analyzeCSV != "":
		sheet := analyzeSheet
		if sheet == "" {
			// Fall back to the file name, which exports often label by state.
			sheet = strings.TrimSuffix(filepath.Base(analyzeCSV), filepath.Ext(analyzeCSV))
		}
		devices, err := importer.ReadCSV(analyzeCSV, sheet)
		return analyzeCSV, devices, err
	default:
		return "", nil, eris.New("one of --xlsx or --csv is required")
	}
}

func persistRun(ctx context.Context, source string, results []classify.Result, summary report.Summary) error {
	st, err := initStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Migrate(ctx); err != nil {
		return err
	}

	run, err := st.CreateRun(ctx, source, summary.Total)
	if err != nil {
		return err
	}
	if err := st.SaveResults(ctx, run.ID, results); err != nil {
		return err
	}
	if err := st.CompleteRun(ctx, run.ID, model.RunStatusComplete, summary.Validated, summary.Rejected); err != nil {
		return err
	}

	zap.L().Info("run saved", zap.String("run_id", run.ID))
	return nil
}

func writeCSV(path string, results []classify.Result) error {
	rows := make([]classify.ExportRow, len(results))
	for i, r := range results {
		rows[i] = r.ExportRow()
	}

	data, err := csvutil.Marshal(rows)
	if err != nil {
		return eris.Wrap(err, "marshal export rows")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrapf(err, "write %s", path)
	}
	return nil
}
