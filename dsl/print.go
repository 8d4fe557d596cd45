package dsl

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Format renders a deck back to canonical source. The output is
// deterministic (property keys sorted) and reparses to an equal deck,
// which is what the CLI's inspect mode prints and what the round-trip
// tests rely on.
func Format(deck *Deck) string {
	var b strings.Builder
	for i, slide := range deck.Slides {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("[\n")
		b.WriteString("  ")
		writeContent(&b, slide.Root)
		b.WriteString("\n")
		for _, block := range slide.Styles {
			b.WriteString("  ")
			b.WriteString(block.Target)
			b.WriteString(" ")
			writeProps(&b, block.Props)
			b.WriteString("\n")
		}
		b.WriteString("]\n")
	}
	return b.String()
}

func writeContent(b *strings.Builder, node *ContentNode) {
	if node.Name != "" {
		b.WriteString(node.Name)
		b.WriteString(" :: ")
	}
	b.WriteString(node.Kind.String())
	b.WriteString("(")
	if node.Kind == KindText {
		b.WriteString(strconv.Quote(node.Text))
	} else {
		for i, child := range node.Children {
			if i > 0 {
				b.WriteString(", ")
			}
			writeContent(b, child)
		}
	}
	b.WriteString(")")
	if len(node.Params) > 0 {
		b.WriteString(" ")
		writeProps(b, node.Params)
	}
}

func writeProps(b *strings.Builder, props map[string]PropertyValue) {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	b.WriteString("{ ")
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "%s: %s", k, props[k].Source())
	}
	b.WriteString(" }")
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
