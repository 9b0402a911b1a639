package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/proptree/pkg/props"
)

// Overlay marks nodes to highlight, by path relative to the rendered node.
type Overlay struct {
	Highlight []string
}

// GenerateMermaid produces a Mermaid flowchart of the tree under n.
// Shapes follow the value kinds:
// - Root: ((Circle))
// - List: [[Subroutine]]
// - Scalar: (["Stadium"]) labelled name: value
// - Branch: [Rectangle]
func GenerateMermaid(n *props.Node, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	sb.WriteString("    root((\"/\"))\n")

	paths := map[*props.Node]string{n: ""}
	_ = n.Walk(func(e props.Entry) error {
		parentPath := paths[e.Parent]
		parentID := idFor(parentPath)

		var path, label string
		if e.Index < 0 {
			path = join(parentPath, e.Name)
			label = e.Name
		} else {
			// elements hang off their list
			parentID = idFor(join(parentPath, e.Name))
			path = join(parentPath, props.Step{Name: e.Name, Index: e.Index, Indexed: true}.String())
			label = fmt.Sprintf("[%d]", e.Index)
		}
		id := idFor(path)

		switch v := e.Value.(type) {
		case *props.Node:
			paths[v] = path
			fmt.Fprintf(&sb, "    %s[\"%s\"]\n", id, escape(label))
		case *props.List:
			fmt.Fprintf(&sb, "    %s[[\"%s\"]]\n", id, escape(label))
		case props.Scalar:
			fmt.Fprintf(&sb, "    %s([\"%s: %s\"])\n", id, escape(label), escape(v.String()))
		}
		fmt.Fprintf(&sb, "    %s --> %s\n", parentID, id)
		return nil
	})

	if overlay != nil && len(overlay.Highlight) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for contrast on both light and dark themes
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[string]bool)
		for _, p := range overlay.Highlight {
			id := idFor(strings.Trim(p, "/"))
			if !seen[id] {
				seen[id] = true
				fmt.Fprintf(&sb, "    class %s current;\n", id)
			}
		}
	}

	return sb.String()
}

func join(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "/" + name
}

// idFor maps a path to a Mermaid-safe node id.
func idFor(path string) string {
	if path == "" {
		return "root"
	}
	r := strings.NewReplacer("/", "__", "[", "_", "]", "", ".", "_", "-", "_")
	return "n_" + r.Replace(path)
}

func escape(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
