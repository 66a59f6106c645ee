package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/derkit/der/printer"
)

var (
	showDepth    int
	showMaxBytes int
	showOffsets  bool
	nodesLimit   int
)

func init() {
	cmd := newShowCmd()
	cmd.Flags().IntVar(&showDepth, "depth", printer.DefaultMaxDepth, "Maximum depth (0 = unlimited)")
	cmd.Flags().IntVar(&showMaxBytes, "max-bytes", printer.DefaultMaxContentBytes, "Truncate content longer than this (0 = never)")
	cmd.Flags().BoolVar(&showOffsets, "offsets", false, "Prefix each node with its byte offset")
	rootCmd.AddCommand(cmd)

	nodes := newNodesCmd()
	nodes.Flags().IntVarP(&nodesLimit, "limit", "n", -1, "Emit only the first n nodes (-1 = all)")
	rootCmd.AddCommand(nodes)
}

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the session tree",
		Long: `The show command prints the session tree, one node per line with its id,
tag, length, label and decoded content.

Example:
  derctl show
  derctl show --depth 3 --offsets
  derctl show --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow()
		},
	}
	return cmd
}

func runShow() error {
	s, err := loadState()
	if err != nil {
		return err
	}
	opts := printer.DefaultOptions()
	opts.MaxDepth = showDepth
	opts.MaxContentBytes = showMaxBytes
	opts.ShowOffsets = showOffsets
	if jsonOut {
		opts.Format = printer.FormatJSON
	}
	if err := printer.New(os.Stdout, opts).Print(s.Tree()); err != nil {
		return fmt.Errorf("failed to print tree: %w", err)
	}
	return nil
}

func newNodesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nodes",
		Short: "Print the node projection as JSON",
		Long: `The nodes command prints the pre-order node list a host UI renders from:
id, label, tag, length, content, children and parent of every node.

Example:
  derctl nodes
  derctl nodes -n 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNodes()
		},
	}
	return cmd
}

func runNodes() error {
	s, err := loadState()
	if err != nil {
		return err
	}
	if nodesLimit >= 0 {
		return printJSON(s.Preview(nodesLimit))
	}
	blob, err := s.Nodes()
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, blob)
	return nil
}
