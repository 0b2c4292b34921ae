package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwel/imgtab/internal/model"
	"github.com/cwel/imgtab/internal/store"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Session record operations",
}

var sessionGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Output the session record as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := store.DefaultStore().LoadRecord()
		if err != nil {
			return err
		}

		data, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}

var sessionRestoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Replace the session with a JSON record from stdin",
	Long: `Replace the session with a JSON record read from stdin, in the format
printed by 'imgtab session get'. Images that cannot be opened are reported
and left out of the stored record.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}

		var rec model.Record
		if err := json.Unmarshal(data, &rec); err != nil {
			return fmt.Errorf("parse session: %w", err)
		}
		rec.Normalize()

		// Start from an empty record so nothing of the old session survives.
		st := store.DefaultStore()
		if err := st.SaveRecord(model.EmptyRecord()); err != nil {
			return err
		}
		a, err := newApp()
		if err != nil {
			return err
		}
		if err := a.mgr.RestoreSession(rec); err != nil {
			warn(err)
		}
		if err := a.close(); err != nil {
			return err
		}
		fmt.Printf("Restored %d image(s)\n", len(a.mgr.Documents()))
		return nil
	},
}

func init() {
	sessionCmd.AddCommand(sessionGetCmd)
	sessionCmd.AddCommand(sessionRestoreCmd)
	rootCmd.AddCommand(sessionCmd)
}
