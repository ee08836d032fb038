package dot

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
)

func TestDotAttrsSorted(t *testing.T) {
	attrs := DotAttrs{"label": "x", "color": "red", "shape": "box"}

	if s := attrs.String(); s != `color="red"; label="x"; shape="box";` {
		t.Errorf("attributes rendered as %s", s)
	}
}

func TestWriteDot(t *testing.T) {
	root := &DotNode{ID: "n0", Attrs: DotAttrs{"label": "root"}}
	child := &DotNode{ID: "n1", Attrs: DotAttrs{"label": "child", "fillcolor": "red"}}

	g := &DotGraph{
		Title: "test",
		Nodes: []*DotNode{root, child},
		Edges: []*DotEdge{{From: root, To: child, Attrs: DotAttrs{}}},
	}

	var out bytes.Buffer
	if err := g.WriteDot(&out); err != nil {
		t.Fatal(err)
	}

	goldie.New(t).Assert(t, "write-dot", out.Bytes())
}
