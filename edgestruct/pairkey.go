package edgestruct

import "github.com/katalvlaran/meshtopo/mesh"

// pairKey is a normalized, order-independent node pair used to look up
// internal and border edges by endpoint set.
type pairKey struct {
	a, b mesh.NodeID
}

func normalize(a, b mesh.NodeID) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{a: a, b: b}
}

func buildEdgeIndex(rel *mesh.Relations) map[pairKey]mesh.EdgeID {
	idx := make(map[pairKey]mesh.EdgeID, rel.NumEdges())
	for e := 0; e < rel.NumEdges(); e++ {
		nodes := rel.EdgeNodes(mesh.EdgeID(e))
		idx[normalize(nodes[0], nodes[1])] = mesh.EdgeID(e)
	}
	return idx
}

func buildBorderSet(rel *mesh.Relations) map[pairKey]struct{} {
	out := make(map[pairKey]struct{}, rel.NumBorderEdges())
	for b := 0; b < rel.NumBorderEdges(); b++ {
		nodes := rel.BorderEdgeNodes(b)
		out[normalize(nodes[0], nodes[1])] = struct{}{}
	}
	return out
}
