package printer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/joshuapare/derkit/der"
)

// printText prints one line per node, children indented under parents:
//
//	#0 SEQUENCE len=8: (2 elements)
//	  #1 INTEGER len=3 "asID": 65000
func (p *Printer) printText(tree *der.Tree) error {
	var werr error
	tree.Walk(func(tok *der.Token, depth int) bool {
		if !p.within(depth) {
			return true
		}
		werr = p.printNodeText(tok, depth)
		return werr == nil
	})
	return werr
}

func (p *Printer) printNodeText(tok *der.Token, depth int) error {
	var sb strings.Builder
	if p.opts.ShowOffsets {
		fmt.Fprintf(&sb, "%6d: ", tok.Offset)
	}
	sb.WriteString(strings.Repeat(" ", depth*p.opts.IndentSize))
	fmt.Fprintf(&sb, "#%d %s len=%s", tok.ID, tok.TagDisplay(), tok.LengthDisplay())
	if tok.Info != "" {
		fmt.Fprintf(&sb, " %q", tok.Info)
	}
	if content := p.truncate(tok.ContentDisplay()); content != "" {
		sb.WriteString(": ")
		sb.WriteString(content)
	}
	sb.WriteByte('\n')
	_, err := fmt.Fprint(p.writer, sb.String())
	return err
}

// truncate shortens s to MaxContentBytes on a rune boundary.
func (p *Printer) truncate(s string) string {
	limit := p.opts.MaxContentBytes
	if limit <= 0 || len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return fmt.Sprintf("%s... (truncated, %d total bytes)", s[:cut], len(s))
}
