package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerview/internal/export"
	"github.com/cleared-dev/ledgerview/internal/normalize"
	"github.com/cleared-dev/ledgerview/internal/report"
)

func newReportCommand(opts *globalOptions) *cobra.Command {
	var payloadPath string
	var formatName string
	var outPath string
	var strict bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Build every report from a payload file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.load()
			if err != nil {
				return err
			}
			format, err := export.ParseFormat(formatName)
			if err != nil {
				return err
			}
			if !export.Renders(format) {
				return fmt.Errorf("%w: %s", export.ErrUnsupportedFormat, format)
			}

			raw, err := readPayload(cmd.InOrStdin(), payloadPath)
			if err != nil {
				return err
			}

			res := report.Build(normalize.Parse(raw, cfg.NormalizeOptions()))
			failed := res.Validate()
			for _, v := range failed {
				log.Warn().Str("report", v.Report).Str("check", v.Check).Msg(v.Description)
			}
			log.Debug().Int("rows", res.Checks.RowCount).Int("failed_checks", len(failed)).Msg("report built")

			if err := writeReport(cmd.OutOrStdout(), outPath, format, res); err != nil {
				return err
			}
			if strict && len(failed) > 0 {
				return fmt.Errorf("%d validation checks failed", len(failed))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&payloadPath, "payload", "", `payload file ("-" for stdin)`)
	_ = cmd.MarkFlagRequired("payload")
	cmd.Flags().StringVar(&formatName, "format", "json", "output format: json or csv")
	cmd.Flags().StringVar(&outPath, "out", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when a validation check fails")

	return cmd
}

func readPayload(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading payload from stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading payload: %w", err)
	}
	return data, nil
}

func writeReport(stdout io.Writer, outPath string, format export.Format, res report.Result) error {
	var doc any = export.Wrap(res)
	if format == export.FormatCSV {
		doc = res
	}

	if outPath == "" {
		return export.Write(stdout, format, doc)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	if err := export.Write(f, format, doc); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", outPath, err)
	}
	return nil
}
