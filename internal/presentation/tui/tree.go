package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/proptree/pkg/props"
	"github.com/muesli/termenv"
)

const (
	branchColor = "#818cf8"
	indexColor  = "#c084fc"
	valueColor  = "#34d399"
)

// TreePrinter renders a property tree in the layout of props.Node.Fprint,
// with branch names and values highlighted.
type TreePrinter struct {
	out *termenv.Output
}

// NewTreePrinter writes to w. With color false no escape sequences are
// emitted.
func NewTreePrinter(w io.Writer, color bool) *TreePrinter {
	profile := termenv.Ascii
	if color {
		profile = termenv.EnvColorProfile()
	}
	return &TreePrinter{out: termenv.NewOutput(w, termenv.WithProfile(profile))}
}

// Print writes every node under n.
func (p *TreePrinter) Print(n *props.Node) error {
	return n.Walk(func(e props.Entry) error {
		indent := strings.Repeat("  ", e.Depth)
		switch v := e.Value.(type) {
		case *props.Node:
			name := p.style("/"+e.Name, branchColor).Bold().String()
			if e.Index < 0 {
				_, err := fmt.Fprintf(p.out, "%s%s\n", indent, name)
				return err
			}
			_, err := fmt.Fprintf(p.out, "%s%s%s:\n", indent, name, p.index(e.Index))
			return err
		case props.Scalar:
			name := e.Name
			if e.Index >= 0 {
				name += p.index(e.Index)
			}
			_, err := fmt.Fprintf(p.out, "%s%s: %s\n", indent, name, p.style(v.String(), valueColor))
			return err
		}
		return nil
	})
}

func (p *TreePrinter) index(i int) string {
	return p.style(fmt.Sprintf("[%d]", i), indexColor).String()
}

func (p *TreePrinter) style(s, color string) termenv.Style {
	return p.out.String(s).Foreground(p.out.Color(color))
}
