package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/joshuapare/derkit/internal/logging"
	"github.com/joshuapare/derkit/pkg/session"
	"github.com/joshuapare/derkit/pkg/types"
)

var (
	// Global flags
	verbose   bool
	quiet     bool
	jsonOut   bool
	statePath string
)

var rootCmd = &cobra.Command{
	Use:   "derctl",
	Short: "Inspect and edit DER encoded objects",
	Long: `derctl is a tool for inspecting and hand-editing DER/BER encoded objects
such as RPKI certificates, CRLs, manifests and ROAs. Edits are applied to a
session kept in a state file and can produce deliberately malformed output.`,
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logging.SetLevel(zapcore.DebugLevel)
		}
	},
	SilenceUsage: true,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVarP(&statePath, "state", "s", "derctl.json", "Session state file")
}

func execute() {
	err := rootCmd.Execute()
	_ = logging.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// loadState restores the session from the state file
func loadState() (*session.State, error) {
	printVerbose("Loading session: %s\n", statePath)
	blob, err := os.ReadFile(statePath)
	if err != nil {
		return nil, fmt.Errorf("no session (run import or example first): %w", err)
	}
	return session.FromStored(string(blob))
}

// saveState writes the session back to the state file
func saveState(s *session.State) error {
	blob, err := s.EncodeStore()
	if err != nil {
		return err
	}
	if err := os.WriteFile(statePath, []byte(blob), 0o644); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	printVerbose("Saved session: %s\n", statePath)
	return nil
}

// editState loads the session, applies fn and saves the result
func editState(fn func(s *session.State) error) error {
	s, err := loadState()
	if err != nil {
		return err
	}
	if err := fn(s); err != nil {
		return err
	}
	return saveState(s)
}

// parseNodeID parses a decimal node id
func parseNodeID(s string) (types.NodeID, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return types.NoNode, fmt.Errorf("invalid node id %q", s)
	}
	return types.NodeID(n), nil
}

// parseTag parses an identifier octet in decimal or 0x-prefixed hex
func parseTag(s string) (byte, error) {
	n, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid tag %q (0-255 or 0x00-0xff)", s)
	}
	return byte(n), nil
}

// result prints a JSON result or a text confirmation
func result(v map[string]any, format string, args ...any) error {
	if jsonOut {
		v["success"] = true
		return printJSON(v)
	}
	printInfo(format, args...)
	return nil
}
