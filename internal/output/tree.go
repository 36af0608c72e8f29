package output

import (
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
)

// descriptionColumn is where file descriptions start in RenderFileTree.
const descriptionColumn = 30

// fileNode is a file or, when children is non-nil, a directory.
type fileNode struct {
	name     string
	desc     string
	children map[string]*fileNode
}

func (n *fileNode) add(parts []string, desc string) {
	if n.children == nil {
		n.children = make(map[string]*fileNode)
	}

	child, ok := n.children[parts[0]]
	if !ok {
		child = &fileNode{name: parts[0]}
		n.children[parts[0]] = child
	}

	if len(parts) == 1 {
		child.desc = desc
		return
	}
	child.add(parts[1:], desc)
}

// sorted returns the children with directories first, then by name.
func (n *fileNode) sorted() []*fileNode {
	out := make([]*fileNode, 0, len(n.children))
	for _, c := range n.children {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b *fileNode) int {
		if (a.children != nil) != (b.children != nil) {
			if a.children != nil {
				return -1
			}
			return 1
		}
		return strings.Compare(a.name, b.name)
	})
	return out
}

// build adds the children of n to t and appends one description per
// rendered line, in render order.
func (n *fileNode) build(t *tree.Tree, descs *[]string) {
	for _, c := range n.sorted() {
		*descs = append(*descs, c.desc)
		if c.children == nil {
			t.Child(c.name)
			continue
		}
		sub := newTree(c.name + "/")
		c.build(sub, descs)
		t.Child(sub)
	}
}

func newTree(root string) *tree.Tree {
	return tree.Root(root).EnumeratorStyle(StyleChrome.PaddingRight(1))
}

// RenderFileTree renders files under rootName as a tree, with descriptions
// aligned at column 30. Files maps slash-separated relative paths to their
// descriptions; an empty description is left out.
func RenderFileTree(rootName string, files map[string]string) string {
	if len(files) == 0 {
		return ""
	}

	root := &fileNode{name: rootName}
	for p, desc := range files {
		root.add(strings.Split(path.Clean(filepath.ToSlash(p)), "/"), desc)
	}

	descs := []string{""}
	t := newTree(rootName + "/").RootStyle(StyleSummary)
	root.build(t, &descs)

	var sb strings.Builder
	for i, line := range strings.Split(strings.TrimRight(t.String(), "\n"), "\n") {
		sb.WriteString(line)
		if i < len(descs) && descs[i] != "" {
			sb.WriteString(strings.Repeat(" ", max(descriptionColumn-lipgloss.Width(line), 2)))
			sb.WriteString(StyleDim.Render(descs[i]))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
