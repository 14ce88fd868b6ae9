package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerview/internal/config"
	"github.com/cleared-dev/ledgerview/internal/server"
	"github.com/cleared-dev/ledgerview/internal/store"
)

func newIngestCommand(opts *globalOptions) *cobra.Command {
	var payloadPath string

	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Store a payload under its report key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.load()
			if err != nil {
				return err
			}
			raw, err := readPayload(cmd.InOrStdin(), payloadPath)
			if err != nil {
				return err
			}
			rec, err := store.NewRecord(raw)
			if err != nil {
				return err
			}

			if cfg.Store.Driver == config.DriverMemory {
				log.Warn().Msg("memory store: the payload is discarded when this command exits")
			}
			st, closeStore, err := openStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			if err := st.Put(cmd.Context(), rec); err != nil {
				return err
			}
			log.Info().Str("report_key", rec.Key).Msg("payload stored")
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", rec.Key, server.ViewURL(rec.Key))
			return nil
		},
	}

	cmd.Flags().StringVar(&payloadPath, "payload", "", `payload file ("-" for stdin)`)
	_ = cmd.MarkFlagRequired("payload")

	return cmd
}
