package sumtree

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/sumtree/avl"
)

// Set2Dot outputs the internal tree structure of a Set in Graphviz DOT format
// (for debugging purposes).
//
// Nodes are labeled with their key and the sum of their subtree and are
// shaded by height. A node with a single child gets an empty placeholder for
// the missing one, so left and right children can be told apart.
func Set2Dot[K avl.Key](set *Set[K], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	var nodes []avl.NodeInfo[K]
	children := make(map[int][2]int) // parent ID -> left and right child ID
	set.Walk(func(info avl.NodeInfo[K]) bool {
		nodes = append(nodes, info)
		if info.Side != avl.Root {
			c := children[info.Parent]
			c[info.Side-avl.Left] = info.ID
			children[info.Parent] = c
		}
		return true
	})
	if set.Len() != len(nodes) {
		T().Errorf("set DOT: visited %d nodes of %d", len(nodes), set.Len())
	}
	var nodelist, edgelist strings.Builder
	for _, info := range nodes {
		label := fmt.Sprintf("%d\\nΣ %d", info.Key, info.Summary.Sum)
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\"%s];\n", info.ID, label, nodeDotStyles(info.Height))
		if !info.HasLeft && !info.HasRight {
			continue
		}
		c := children[info.ID]
		for i, side := range []string{"l", "r"} {
			if c[i] > 0 {
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", info.ID, c[i])
				continue
			}
			nilid := fmt.Sprintf("%d.%s", info.ID, side)
			fmt.Fprintf(&nodelist, "\"%s\" %s;\n", nilid, emptyNode())
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%s\";\n", info.ID, nilid)
		}
	}
	io.WriteString(w, nodelist.String())
	io.WriteString(w, edgelist.String())
	io.WriteString(w, "}\n")
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(height int) string {
	s := ",style=filled,color=black,shape=circle"
	i := min(max(height-1, 0), len(hexcolors)-1)
	s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[i])
	return s
}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
