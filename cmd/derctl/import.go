package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/derkit/pkg/rpki"
	"github.com/joshuapare/derkit/pkg/session"
)

var (
	importText    bool
	importType    string
	importNoEncap bool
)

func init() {
	cmd := newImportCmd()
	cmd.Flags().BoolVar(&importText, "text", false, "Treat the argument as hex or base64 data instead of a path")
	cmd.Flags().StringVar(&importType, "type", "", "Object type (roa, mft, crl, cer, certca, gbr, asa); classified when empty")
	cmd.Flags().BoolVar(&importNoEncap, "no-encapsulated", false, "Keep DER inside OCTET/BIT STRING as opaque content")
	rootCmd.AddCommand(cmd)
}

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file|data>",
		Short: "Start a session from an object",
		Long: `The import command parses an object and starts a new session in the state
file. Files may hold binary DER or hex/base64 text.

Example:
  derctl import object.roa
  derctl import --text 3003020105
  derctl import --type certca ta.cer`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(args)
		},
	}
	return cmd
}

func runImport(args []string) error {
	var opts []session.Option
	if importType != "" {
		t := rpki.FromString(importType)
		if t == rpki.Unknown {
			return fmt.Errorf("unknown object type %q", importType)
		}
		opts = append(opts, session.WithObjectType(t))
	}
	if importNoEncap {
		opts = append(opts, session.WithEncapsulated(false))
	}

	var (
		s   *session.State
		err error
	)
	if importText {
		s, err = session.New(args[0], opts...)
	} else {
		printVerbose("Opening file: %s\n", args[0])
		s, err = session.Open(args[0], opts...)
	}
	if err != nil {
		return fmt.Errorf("failed to import: %w", err)
	}
	if err := saveState(s); err != nil {
		return err
	}

	return result(map[string]any{
		"state": statePath,
		"type":  s.ObjectType().String(),
		"nodes": s.Tree().Len(),
	}, "Imported %s object with %d nodes into %s\n", s.ObjectType(), s.Tree().Len(), statePath)
}
