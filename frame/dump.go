package frame

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Dump returns a string representation of a frame tree, including the
// bounding boxes of the frames.
func Dump(f Frame) string {
	if f == nil {
		return "<no frames>"
	}
	tp := treeprint.NewWithRoot(frameLabel(f))
	dumpFrames(f, tp)
	return tp.String()
}

func dumpFrames(f Frame, branch treeprint.Tree) {
	for _, ch := range f.Children() {
		if len(ch.Children()) == 0 {
			branch.AddNode(frameLabel(ch))
		} else {
			dumpFrames(ch, branch.AddBranch(frameLabel(ch)))
		}
	}
}

func frameLabel(f Frame) string {
	if b, ok := f.(*Box); ok && b.kind == textBox {
		t := b.text
		if len(t) > 24 {
			t = t[:24] + "…"
		}
		return fmt.Sprintf("%v %q %s", b, t, b.bbox)
	}
	return fmt.Sprintf("%v %s", f, f.BoundingBox())
}
