package pagetree

import (
	"fmt"
	"io"
	"strings"

	"github.com/xlab/treeprint"

	"pagetree/internal/base"
)

// levels returns the pages of the tree breadth first, one slice per level
// from the root down.
func (t *Tree) levels() [][]*base.Page {
	if !t.root.Valid() {
		return nil
	}

	var out [][]*base.Page
	level := []*base.Page{t.page(t.root)}
	for len(level) > 0 {
		out = append(out, level)

		var next []*base.Page
		for _, p := range level {
			for _, id := range p.Children() {
				next = append(next, t.page(id))
			}
		}
		level = next
	}
	return out
}

// Levels returns the keys of every page breadth first: one slice per level
// from the root down, pages left to right.
func (t *Tree) Levels() [][][]int64 {
	var out [][][]int64
	for _, level := range t.levels() {
		pages := make([][]int64, 0, len(level))
		for _, p := range level {
			pages = append(pages, p.Values())
		}
		out = append(out, pages)
	}
	return out
}

// Dump writes one line per level, root first. Pages under the same parent
// are joined with '-', groups under different parents are separated by a
// space:
//
//	level 2: [5 9]
//	level 1: [1 3]-[6 7]-[11 13]
//
// The format is a debugging aid and may change.
func (t *Tree) Dump(w io.Writer) error {
	if !t.root.Valid() {
		_, err := io.WriteString(w, "<empty>\n")
		return err
	}

	for _, level := range t.levels() {
		var b strings.Builder
		fmt.Fprintf(&b, "level %d:", level[0].Level)
		for i, p := range level {
			if i > 0 && p.Parent == level[i-1].Parent {
				b.WriteByte('-')
			} else {
				b.WriteByte(' ')
			}
			b.WriteString(p.String())
		}
		b.WriteByte('\n')

		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tree) String() string {
	var b strings.Builder
	_ = t.Dump(&b)
	return b.String()
}

// Render draws the tree hierarchically, one page per line.
func (t *Tree) Render() string {
	if !t.root.Valid() {
		return "<empty>\n"
	}

	root := t.page(t.root)
	tree := treeprint.NewWithRoot(root.String())
	t.render(tree, root)
	return tree.String()
}

func (t *Tree) render(branch treeprint.Tree, p *base.Page) {
	for _, id := range p.Children() {
		child := t.page(id)
		if child.IsLeaf() {
			branch.AddNode(child.String())
			continue
		}
		t.render(branch.AddBranch(child.String()), child)
	}
}
