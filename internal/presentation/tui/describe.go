package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/proptree/pkg/props"
)

// DescribeMarkdown lists every scalar under n as a markdown table of paths
// relative to n, in walk order.
func DescribeMarkdown(title string, n *props.Node) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)

	paths := map[*props.Node]string{n: ""}
	var rows, branches, lists int
	var table strings.Builder

	_ = n.Walk(func(e props.Entry) error {
		name := e.Name
		if e.Index >= 0 {
			name = props.Step{Name: e.Name, Index: e.Index, Indexed: true}.String()
		}
		path := paths[e.Parent] + name

		switch v := e.Value.(type) {
		case *props.Node:
			paths[v] = path + "/"
			branches++
		case *props.List:
			lists++
		case props.Scalar:
			rows++
			fmt.Fprintf(&table, "| `%s` | %s |\n", path, escapeCell(v.String()))
		}
		return nil
	})

	fmt.Fprintf(&b, "%d values, %d branches, %d lists.\n\n", rows, branches, lists)
	if rows > 0 {
		b.WriteString("| Path | Value |\n|---|---|\n")
		b.WriteString(table.String())
	}
	return b.String()
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
