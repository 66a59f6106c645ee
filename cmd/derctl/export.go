package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/derkit/pkg/bundle"
)

var (
	exportOutput string
	exportFormat string
	bundleTA     string
	bundleOutput string
)

func init() {
	export := newExportCmd()
	export.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default stdout)")
	export.Flags().StringVarP(&exportFormat, "format", "f", "bin", "Output format (bin, base64, hex)")

	bnd := newBundleCmd()
	bnd.Flags().StringVar(&bundleTA, "ta", "", "Directory holding ta.tal and ta.cer")
	bnd.Flags().StringVarP(&bundleOutput, "output", "o", "repo.tar.gz", "Output archive")
	_ = bnd.MarkFlagRequired("ta")

	rootCmd.AddCommand(export, bnd)
}

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Encode the session object",
		Long: `The export command encodes the session tree, applying every tag and length
override.

Example:
  derctl export -o edited.roa
  derctl export -f base64`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport()
		},
	}
}

func runExport() error {
	s, err := loadState()
	if err != nil {
		return err
	}

	var out []byte
	switch exportFormat {
	case "bin", "der":
		out = s.ExportBin()
	case "base64":
		out = []byte(s.ExportBase64() + "\n")
	case "hex":
		out = []byte(hex.EncodeToString(s.ExportBin()) + "\n")
	default:
		return fmt.Errorf("unknown format %q (bin, base64, hex)", exportFormat)
	}

	if exportOutput == "" {
		_, err := os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(exportOutput, out, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportOutput, err)
	}
	return result(map[string]any{"output": exportOutput, "size": len(out)},
		"Wrote %d bytes to %s\n", len(out), exportOutput)
}

func newBundleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bundle",
		Short: "Package the object into an RPKI repository archive",
		Long: `The bundle command places the session object into a repository next to the
trust anchor found in --ta and writes the result as a .tar.gz. The archive
holds the object, ta.tal and data/repo/ta/ta.cer.

Example:
  derctl bundle --ta ./ta -o repo.tar.gz`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBundle(cmd.Context())
		},
	}
}

func runBundle(ctx context.Context) error {
	s, err := loadState()
	if err != nil {
		return err
	}
	out, err := s.Repositorify(ctx, bundle.TemplateBuilder{Dir: bundleTA})
	if err != nil {
		return fmt.Errorf("failed to bundle: %w", err)
	}
	if err := os.WriteFile(bundleOutput, out, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", bundleOutput, err)
	}
	return result(map[string]any{"output": bundleOutput, "type": s.ObjectType().String(), "size": len(out)},
		"Bundled %s object into %s (%d bytes)\n", s.ObjectType(), bundleOutput, len(out))
}
