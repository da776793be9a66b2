// Command stickytrace synthesizes, stores, replays, and exports recorded
// positioning sessions
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/sticky/logging"
	"github.com/lixenwraith/sticky/trace"
)

// Options stores global flags shared between commands
type Options struct {
	Database string
	LogLevel string
}

func main() {
	opts := &Options{}
	root := newRootCommand(opts)
	if err := root.Execute(); err != nil {
		logger := logging.NewLogger(os.Stderr, logging.ParseLevel(opts.LogLevel))
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func newRootCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "stickytrace",
		Short:         "Record, replay, and export sticky positioning sessions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Database, "db", "sticky.db", "path to the session database")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "info", "log level (debug|info|warn|error)")

	cmd.AddCommand(newSynthCommand(opts))
	cmd.AddCommand(newSessionsCommand(opts))
	cmd.AddCommand(newReplayCommand(opts))
	cmd.AddCommand(newExportCommand(opts))
	return cmd
}

func newSynthCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "synth <script.yaml>",
		Short: "Expand a scripted session and store it as a new recording",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSynth(cmd, opts, args[0])
		},
	}
}

func runSynth(cmd *cobra.Command, opts *Options, path string) error {
	sc, err := trace.LoadScript(path)
	if err != nil {
		return err
	}
	tr, decisions := trace.Synthesize(sc)

	st, err := trace.OpenStore(opts.Database)
	if err != nil {
		return err
	}
	defer st.Close()

	id, err := st.SaveTrace(cmd.Context(), tr)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Stored session %s (%d cycles)\n", id, len(decisions))
	return nil
}

func newSessionsCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "sessions",
		Short: "List recorded sessions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSessions(cmd, opts)
		},
	}
}

func runSessions(cmd *cobra.Command, opts *Options) error {
	st, err := trace.OpenStore(opts.Database)
	if err != nil {
		return err
	}
	defer st.Close()

	infos, err := st.Sessions(cmd.Context())
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if len(infos) == 0 {
		fmt.Fprintln(w, "No recorded sessions.")
		return nil
	}
	for _, info := range infos {
		fmt.Fprintf(w, "%s  %s  %-20s  viewport=%.0f  samples=%d\n",
			info.ID, info.CreatedAt.Format(time.RFC3339), info.Name, info.Viewport, info.Samples)
	}
	return nil
}

func newReplayCommand(opts *Options) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "replay <session-id>",
		Short: "Re-derive every decision of a recorded session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd, opts, args[0], asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit decisions as JSON")
	return cmd
}

func runReplay(cmd *cobra.Command, opts *Options, rawID string, asJSON bool) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return fmt.Errorf("session id %q: %w", rawID, err)
	}

	st, err := trace.OpenStore(opts.Database)
	if err != nil {
		return err
	}
	defer st.Close()

	tr, err := st.LoadTrace(cmd.Context(), id)
	if err != nil {
		return err
	}
	decisions := trace.Replay(tr)

	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(decisions)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s: %d cycles, viewport %.0f\n", tr.Name, len(decisions), tr.Viewport)
	for _, d := range decisions {
		state := "normal"
		switch {
		case d.Docked:
			state = "docked"
		case d.Sticky:
			state = "sticky"
		}
		fmt.Fprintf(w, "  y=%8.1f  %-6s  %s top=%.1f\n", d.Y, state, d.Position, d.Top)
	}
	return nil
}

func newExportCommand(opts *Options) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export <session-id>",
		Short: "Write a recorded session to a YAML trace file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, opts, args[0], out)
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "destination file (required)")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func runExport(cmd *cobra.Command, opts *Options, rawID, out string) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return fmt.Errorf("session id %q: %w", rawID, err)
	}

	st, err := trace.OpenStore(opts.Database)
	if err != nil {
		return err
	}
	defer st.Close()

	tr, err := st.LoadTrace(cmd.Context(), id)
	if err != nil {
		return err
	}
	if err := tr.Save(out); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported session %s to %s\n", id, out)
	return nil
}
