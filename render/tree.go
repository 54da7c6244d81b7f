package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridtrace/grid"
	"github.com/katalvlaran/gridtrace/replay"
	"github.com/katalvlaran/gridtrace/trace"
)

// TreeNode is one visual instance of a grid cell in the search tree. A
// cell discovered several times (dfs) has several instances.
type TreeNode struct {
	Pos            grid.Pos
	Parent         int // index into Tree.Nodes, -1 for the root
	Children       []int
	Status         Mark
	StepCost       int
	CumulativeCost int
	Costed         bool
}

// Label formats the node as "(r,c)" or "(r,c) c:N" for costed nodes.
func (n TreeNode) Label() string {
	if n.Costed {
		return fmt.Sprintf("%s c:%d", n.Pos, n.CumulativeCost)
	}
	return n.Pos.String()
}

// Tree builds the search tree of a replay. Each discovery is attached
// under the most recently added instance of its parent cell; status
// changes apply to every instance of the cell.
type Tree struct {
	nodes []TreeNode
}

var _ replay.Observer = (*Tree)(nil)

// NewTree returns an empty tree.
func NewTree() *Tree { return &Tree{} }

// Nodes returns every instance in insertion order; index 0 is the root.
func (t *Tree) Nodes() []TreeNode { return t.nodes }

// Len returns the number of instances.
func (t *Tree) Len() int { return len(t.nodes) }

// Instances returns the indices of every instance of p.
func (t *Tree) Instances(p grid.Pos) []int {
	var out []int
	for i, n := range t.nodes {
		if n.Pos == p {
			out = append(out, i)
		}
	}
	return out
}

// OnReset empties the tree.
func (t *Tree) OnReset() { t.nodes = nil }

// OnStep grows or recolours the tree.
func (t *Tree) OnStep(s replay.Step) {
	switch s.Role {
	case replay.RoleRoot:
		t.nodes = []TreeNode{{
			Pos: s.Node, Parent: -1, Status: MarkFrontier,
			CumulativeCost: s.Event.CumulativeCost, Costed: s.Event.Costed,
		}}
	case replay.RoleFrontier:
		t.addChild(s.Event)
	case replay.RoleExplore:
		t.setStatus(s.Node, MarkExplored)
	case replay.RolePath:
		t.setStatus(s.Node, MarkPath)
	}
}

// OnStats is a no-op.
func (t *Tree) OnStats(trace.Stats) {}

func (t *Tree) addChild(e trace.Event) {
	parent := -1
	for i := len(t.nodes) - 1; i >= 0; i-- {
		if t.nodes[i].Pos == e.Parent {
			parent = i
			break
		}
	}
	// no root yet, or a parent that was never added
	if parent < 0 {
		return
	}
	t.nodes = append(t.nodes, TreeNode{
		Pos: e.Node, Parent: parent, Status: MarkFrontier,
		StepCost: e.StepCost, CumulativeCost: e.CumulativeCost, Costed: e.Costed,
	})
	t.nodes[parent].Children = append(t.nodes[parent].Children, len(t.nodes)-1)
}

func (t *Tree) setStatus(p grid.Pos, m Mark) {
	for i := range t.nodes {
		if t.nodes[i].Pos == p {
			t.nodes[i].Status = m
		}
	}
}

// String draws the tree with box characters, one instance per line:
//
//	(2,0) c:0 [explored]
//	├── (1,0) +1 c:1 [frontier]
//	└── (2,1) +1 c:1 [path]
func (t *Tree) String() string {
	if len(t.nodes) == 0 {
		return ""
	}
	var sb strings.Builder
	t.write(&sb, 0, "", "")
	return sb.String()
}

func (t *Tree) write(sb *strings.Builder, i int, lead, childLead string) {
	n := t.nodes[i]
	sb.WriteString(lead)
	sb.WriteString(n.Pos.String())
	if n.Costed && n.Parent >= 0 {
		fmt.Fprintf(sb, " +%d", n.StepCost)
	}
	if n.Costed {
		fmt.Fprintf(sb, " c:%d", n.CumulativeCost)
	}
	fmt.Fprintf(sb, " [%s]\n", n.Status)
	for k, c := range n.Children {
		if k == len(n.Children)-1 {
			t.write(sb, c, childLead+"└── ", childLead+"    ")
		} else {
			t.write(sb, c, childLead+"├── ", childLead+"│   ")
		}
	}
}
