package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/derkit/pkg/session"
	"github.com/joshuapare/derkit/pkg/types"
)

var addLabel string

func init() {
	add := newAddCmd()
	add.Flags().StringVarP(&addLabel, "label", "l", "", "Label for the new node")

	rootCmd.AddCommand(
		add,
		newSetCmd(),
		newTagCmd(),
		newLengthCmd(),
		newLabelCmd(),
		newMoveCmd(),
		newRmCmd(),
	)
}

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <parent> <tag> [value]",
		Short: "Append a new node",
		Long: `The add command encodes value for tag and appends it as the last child of
parent. Tags are decimal or 0x-prefixed hex identifier octets.

Example:
  derctl add 0 0x02 42
  derctl add 0 0x30 --label extensions
  derctl add 5 0x06 1.2.840.113549.1.1.11`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(args)
		},
	}
}

func runAdd(args []string) error {
	parent, err := parseNodeID(args[0])
	if err != nil {
		return err
	}
	tag, err := parseTag(args[1])
	if err != nil {
		return err
	}
	text := ""
	if len(args) == 3 {
		text = args[2]
	}

	var id types.NodeID
	if err := editState(func(s *session.State) error {
		id, err = s.AddNode(tag, text, parent, addLabel)
		return err
	}); err != nil {
		return fmt.Errorf("failed to add node: %w", err)
	}
	return result(map[string]any{"id": id, "parent": parent}, "Added node #%d under #%d\n", id, parent)
}

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <id> <value>",
		Short: "Replace a node's content",
		Long: `The set command encodes value for the node's tag and replaces its content.
Lengths of the node and its ancestors are recomputed.

Value formats by tag:
  BOOLEAN          0-255
  INTEGER          decimal, may be negative
  BIT STRING       string of 0 and 1
  OCTET STRING     hex
  OBJECT IDENTIFIER dotted decimal
  UTCTime          YYYY-MM-DD HH:MM:SS
  DURATION         ISO 8601 (P1Y2M3DT4H5M6S)
  strings          verbatim

Example:
  derctl set 12 65001
  derctl set 7 "2030-01-01 00:00:00"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
}

func runSet(args []string) error {
	id, err := parseNodeID(args[0])
	if err != nil {
		return err
	}
	if err := editState(func(s *session.State) error {
		return s.AdaptNodeContent(id, args[1])
	}); err != nil {
		return fmt.Errorf("failed to set content: %w", err)
	}
	return result(map[string]any{"id": id, "value": args[1]}, "Content of #%d set\n", id)
}

func newTagCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tag <id> <tag>",
		Short: "Override the identifier written for a node",
		Long: `The tag command makes export write tag instead of the node's identifier.
The content is kept as-is, so the result may be malformed.

Example:
  derctl tag 3 0x04`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTag(args)
		},
	}
}

func runTag(args []string) error {
	id, err := parseNodeID(args[0])
	if err != nil {
		return err
	}
	tag, err := parseTag(args[1])
	if err != nil {
		return err
	}
	if err := editState(func(s *session.State) error {
		return s.AdaptNodeTag(id, tag)
	}); err != nil {
		return fmt.Errorf("failed to set tag: %w", err)
	}
	return result(map[string]any{"id": id, "tag": tag}, "Tag of #%d set to 0x%02X\n", id, tag)
}

func newLengthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "length <id> <length>",
		Short: "Override the length written for a node",
		Long: `The length command makes export write length instead of the node's real
content length. Ancestors are not resized.

Example:
  derctl length 0 4096`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLength(args)
		},
	}
}

func runLength(args []string) error {
	id, err := parseNodeID(args[0])
	if err != nil {
		return err
	}
	length, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid length %q", args[1])
	}
	if err := editState(func(s *session.State) error {
		return s.AdaptNodeLength(id, length)
	}); err != nil {
		return fmt.Errorf("failed to set length: %w", err)
	}
	return result(map[string]any{"id": id, "length": length}, "Length of #%d set to %d\n", id, length)
}

func newLabelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "label <id> <label>",
		Short: "Label a node",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLabel(args)
		},
	}
}

func runLabel(args []string) error {
	id, err := parseNodeID(args[0])
	if err != nil {
		return err
	}
	if err := editState(func(s *session.State) error {
		return s.AdaptNodeLabel(id, args[1])
	}); err != nil {
		return fmt.Errorf("failed to set label: %w", err)
	}
	return result(map[string]any{"id": id, "label": args[1]}, "Label of #%d set to %q\n", id, args[1])
}

func newMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <id> <parent> <index>",
		Short: "Move a node and its subtree",
		Long: `The move command detaches a node and inserts it at index among parent's
children. The index counts children after the node has been detached.

Example:
  derctl move 8 0 0`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMove(args)
		},
	}
}

func runMove(args []string) error {
	id, err := parseNodeID(args[0])
	if err != nil {
		return err
	}
	parent, err := parseNodeID(args[1])
	if err != nil {
		return err
	}
	index, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid index %q", args[2])
	}
	if err := editState(func(s *session.State) error {
		return s.DragNode(id, parent, index)
	}); err != nil {
		return fmt.Errorf("failed to move node: %w", err)
	}
	return result(map[string]any{"id": id, "parent": parent, "index": index},
		"Moved #%d to #%d at %d\n", id, parent, index)
}

func newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Remove a node and its subtree",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRm(args)
		},
	}
}

func runRm(args []string) error {
	id, err := parseNodeID(args[0])
	if err != nil {
		return err
	}
	if err := editState(func(s *session.State) error {
		return s.RemoveNode(id)
	}); err != nil {
		return fmt.Errorf("failed to remove node: %w", err)
	}
	return result(map[string]any{"id": id}, "Removed #%d\n", id)
}
