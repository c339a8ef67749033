package hierarchy

import (
	"github.com/hiergraph/hiergraph/pkg/graph"
	"github.com/hiergraph/hiergraph/pkg/tree"
)

// QuasiFlatZones computes the quasi-flat-zone hierarchy of g: the canonical
// partition tree with every internal node that sits at the same altitude as
// its parent contracted away, so each surviving node corresponds to one
// maximal zone connected by edges of weight at most its altitude.
//
// The returned tree carries AttrLeafGraph, AttrAltitudes and AttrNodeMap
// (into the intermediate canonical tree). Options are forwarded to
// BuildCanonical.
func QuasiFlatZones(g *graph.Graph, opts ...BuildOption) (*tree.Tree, []float64, error) {
	res, err := BuildCanonical(g, opts...)
	if err != nil {
		return nil, nil, err
	}
	t, alts := res.Tree, res.Altitudes

	deleted := make([]bool, t.NumNodes())
	for i := t.NumLeaves(); i < t.NumNodes()-1; i++ {
		p, _ := t.Parent(i)
		deleted[i] = alts[i] == alts[p]
	}

	simplified, nodeMap, err := Simplify(t, deleted)
	if err != nil {
		return nil, nil, err
	}
	remapped := make([]float64, len(nodeMap))
	for j, orig := range nodeMap {
		remapped[j] = alts[orig]
	}
	return simplified, remapped, nil
}
