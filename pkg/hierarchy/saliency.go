package hierarchy

import (
	"github.com/hiergraph/hiergraph/pkg/errors"
	"github.com/hiergraph/hiergraph/pkg/graph"
	"github.com/hiergraph/hiergraph/pkg/lca"
	"github.com/hiergraph/hiergraph/pkg/tree"
)

// Saliency maps each query to the altitude of its lowest common ancestor:
// out[i] = altitudes[lcaMap[i]]. It performs no other computation; the
// caller supplies the LCA mapping (see the lca package).
//
// Returns an INDEX_OUT_OF_RANGE error if any entry of lcaMap is not a valid
// index into altitudes.
func Saliency(altitudes []float64, lcaMap []int) ([]float64, error) {
	out := make([]float64, len(lcaMap))
	for i, node := range lcaMap {
		if err := errors.ValidateNodeIndex(node, len(altitudes)); err != nil {
			return nil, errors.Wrap(errors.ErrCodeIndexOutOfRange, err,
				"lca map entry %d is not a node of the hierarchy", i)
		}
		out[i] = altitudes[node]
	}
	return out, nil
}

// SaliencyMap computes the per-edge saliency of g against the hierarchy t:
// for each edge {x, y} the altitude of the node where the leaves x and y
// first merge. The result is indexed like g's edge list.
//
// Returns a SIZE_MISMATCH error if altitudes does not have one entry per
// tree node or if g's vertices are not the leaves of t.
func SaliencyMap(g *graph.Graph, t *tree.Tree, altitudes []float64) ([]float64, error) {
	if err := errors.ValidateLength("altitudes", len(altitudes), t.NumNodes()); err != nil {
		return nil, err
	}
	lcaMap, err := lca.New(t).QueryEdges(g)
	if err != nil {
		return nil, err
	}
	return Saliency(altitudes, lcaMap)
}
