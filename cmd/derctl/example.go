package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/derkit/pkg/rpki"
	"github.com/joshuapare/derkit/pkg/session"
)

func init() {
	rootCmd.AddCommand(newExampleCmd(), newTypeCmd())
}

func newExampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "example <type>",
		Short: "Start a session from a skeleton object",
		Long: `The example command starts a session from a labelled skeleton object of
the given type: roa, mft, crl, cer, certca, gbr or asa.

Example:
  derctl example roa
  derctl example certca --state ca.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExample(args)
		},
	}
	return cmd
}

func runExample(args []string) error {
	t := rpki.FromString(args[0])
	s, err := session.LoadExample(t)
	if err != nil {
		return fmt.Errorf("failed to load example %q: %w", args[0], err)
	}
	if err := saveState(s); err != nil {
		return err
	}
	return result(map[string]any{
		"state": statePath,
		"type":  t.String(),
		"nodes": s.Tree().Len(),
	}, "Created %s example with %d nodes in %s\n", t, s.Tree().Len(), statePath)
}

func newTypeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "type [type]",
		Short: "Show or set the session object type",
		Long: `The type command prints the object type used for bundling, or overrides it.

Example:
  derctl type
  derctl type certca`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runType(args)
		},
	}
	return cmd
}

func runType(args []string) error {
	if len(args) == 0 {
		s, err := loadState()
		if err != nil {
			return err
		}
		return result(map[string]any{"type": s.ObjectType().String()}, "%s\n", s.ObjectType())
	}

	t := rpki.FromString(args[0])
	if t == rpki.Unknown {
		return fmt.Errorf("unknown object type %q", args[0])
	}
	if err := editState(func(s *session.State) error {
		s.SetObjectType(t)
		return nil
	}); err != nil {
		return err
	}
	return result(map[string]any{"type": t.String()}, "Object type set to %s\n", t)
}
