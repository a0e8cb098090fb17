package sumtree

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/sumtree/avl"
	"golang.org/x/term"
)

// ColorMode tells Print whether to colorize its output.
type ColorMode int

const (
	// ColorAuto colorizes output to a terminal only.
	ColorAuto ColorMode = iota
	// ColorNever prints plain text.
	ColorNever
	// ColorAlways colorizes output regardless of its destination.
	ColorAlways
)

// PrintOptions control the tree rendering of Print.
type PrintOptions struct {
	Heights bool // print node heights instead of keys
	Color   ColorMode
}

// Palette for tree output.
var (
	keyColor    = color.New(color.FgBlue)
	heightColor = color.New(color.FgGreen)
	branchColor = color.New(color.FgHiBlack)
)

const (
	leftBranch  = "├──"
	rightBranch = "└──"
	leftIndent  = "│   "
	rightIndent = "    "
)

// Print renders the shape of the tree underlying set, one node per line in
// pre-order. Left children are drawn with ├──, right children and the root
// with └──:
//
//	└──4
//	    ├──2
//	    │   ├──1
//	    │   └──3
//	    └──6
//
// An empty set prints nothing.
func Print[K avl.Key](w io.Writer, set *Set[K], opts PrintOptions) error {
	colored := useColor(w, opts.Color)
	value, branch := keyColor, branchColor
	if opts.Heights {
		value = heightColor
	}
	if colored {
		value, branch = enabled(value), enabled(branch)
	} else {
		value, branch = disabled(value), disabled(branch)
	}
	var err error
	var prefixes []string // indentation per depth on the current path
	var sides []avl.Side
	set.Walk(func(info avl.NodeInfo[K]) bool {
		d := info.Depth
		prefixes, sides = prefixes[:d], sides[:d]
		prefix := ""
		if d > 0 {
			prefix = prefixes[d-1] + indent(sides[d-1])
		}
		prefixes = append(prefixes, prefix)
		sides = append(sides, info.Side)
		var line strings.Builder
		line.WriteString(prefix)
		connector := rightBranch
		if info.Side == avl.Left {
			connector = leftBranch
		}
		branch.Fprint(&line, connector)
		if opts.Heights {
			value.Fprint(&line, info.Height)
		} else {
			value.Fprint(&line, int64(info.Key))
		}
		line.WriteByte('\n')
		_, err = io.WriteString(w, line.String())
		return err == nil
	})
	return err
}

func indent(side avl.Side) string {
	if side == avl.Left {
		return leftIndent
	}
	return rightIndent
}

// useColor decides whether output to w should be colorized.
func useColor(w io.Writer, mode ColorMode) bool {
	switch mode {
	case ColorNever:
		return false
	case ColorAlways:
		return true
	}
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return false
	}
	if width, _, err := term.GetSize(int(f.Fd())); err == nil {
		T().P("format", "tree").Debugf("terminal width is %d", width)
	}
	return true
}

func enabled(c *color.Color) *color.Color {
	cc := *c
	cc.EnableColor()
	return &cc
}

func disabled(c *color.Color) *color.Color {
	cc := *c
	cc.DisableColor()
	return &cc
}

// PrintString renders set like Print, without colors, and returns the result.
func PrintString[K avl.Key](set *Set[K], heights bool) string {
	var b strings.Builder
	if err := Print(&b, set, PrintOptions{Heights: heights, Color: ColorNever}); err != nil {
		return fmt.Sprintf("<error: %v>", err)
	}
	return b.String()
}
