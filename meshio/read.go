package meshio

import (
	"bufio"
	"fmt"
	"os"

	"github.com/katalvlaran/meshtopo/mesh"
)

// Read parses path into a mesh.Input, ready for mesh.New. It does not
// itself validate mesh invariants (symmetric adjacency, cell arity, …) —
// that is mesh.New's job, a fatal "input invariant violation" distinct
// from a recoverable structure-detection failure.
func Read(path string) (mesh.Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return mesh.Input{}, fmt.Errorf("meshio.Read: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sr, err := scanSections(sc)
	if err != nil {
		return mesh.Input{}, fmt.Errorf("meshio.Read: %w", err)
	}
	for _, name := range requiredInputSections {
		if _, ok := sr.sections[name]; !ok {
			return mesh.Input{}, fmt.Errorf("meshio.Read: %w: %s", ErrMissingSection, name)
		}
	}

	in := mesh.Input{}

	nodeLines, err := sr.lines(secNodeToNode)
	if err != nil {
		return mesh.Input{}, err
	}
	in.NodeToNode = make([]map[mesh.NodeID]struct{}, len(nodeLines))
	for i, line := range nodeLines {
		ints, err := parseInts(line)
		if err != nil {
			return mesh.Input{}, fmt.Errorf("meshio.Read: %s line %d: %w", secNodeToNode, i, err)
		}
		nbrs := make(map[mesh.NodeID]struct{}, len(ints))
		for _, v := range ints {
			nbrs[mesh.NodeID(v)] = struct{}{}
		}
		in.NodeToNode[i] = nbrs
	}

	cellLines, err := sr.lines(secCellToOrdNodes)
	if err != nil {
		return mesh.Input{}, err
	}
	in.CellToOrdNodes = make([]mesh.CellNodes, len(cellLines))
	for i, line := range cellLines {
		ints, err := parseFixedInts(line, 4)
		if err != nil {
			return mesh.Input{}, fmt.Errorf("meshio.Read: %s line %d: %w", secCellToOrdNodes, i, err)
		}
		in.CellToOrdNodes[i] = mesh.CellNodes{
			mesh.NodeID(ints[0]), mesh.NodeID(ints[1]), mesh.NodeID(ints[2]), mesh.NodeID(ints[3]),
		}
	}

	inedgeNodeLines, err := sr.lines(secInedgeToNodes)
	if err != nil {
		return mesh.Input{}, err
	}
	in.InedgeToNodes = make([]mesh.EdgeNodes, len(inedgeNodeLines))
	for i, line := range inedgeNodeLines {
		ints, err := parseFixedInts(line, 2)
		if err != nil {
			return mesh.Input{}, fmt.Errorf("meshio.Read: %s line %d: %w", secInedgeToNodes, i, err)
		}
		in.InedgeToNodes[i] = mesh.EdgeNodes{mesh.NodeID(ints[0]), mesh.NodeID(ints[1])}
	}

	inedgeCellLines, err := sr.lines(secInedgeToCells)
	if err != nil {
		return mesh.Input{}, err
	}
	in.InedgeToCells = make([]mesh.EdgeCells, len(inedgeCellLines))
	for i, line := range inedgeCellLines {
		ints, err := parseFixedInts(line, 2)
		if err != nil {
			return mesh.Input{}, fmt.Errorf("meshio.Read: %s line %d: %w", secInedgeToCells, i, err)
		}
		in.InedgeToCells[i] = mesh.EdgeCells{mesh.CellID(ints[0]), mesh.CellID(ints[1])}
	}

	borderNodeLines, err := sr.lines(secBorderedgeToNodes)
	if err != nil {
		return mesh.Input{}, err
	}
	in.BorderedgeToNodes = make([]mesh.BorderEdgeNodes, len(borderNodeLines))
	for i, line := range borderNodeLines {
		ints, err := parseFixedInts(line, 2)
		if err != nil {
			return mesh.Input{}, fmt.Errorf("meshio.Read: %s line %d: %w", secBorderedgeToNodes, i, err)
		}
		in.BorderedgeToNodes[i] = mesh.BorderEdgeNodes{mesh.NodeID(ints[0]), mesh.NodeID(ints[1])}
	}

	borderCellLines, err := sr.lines(secBorderedgeToCell)
	if err != nil {
		return mesh.Input{}, err
	}
	in.BorderedgeToCell = make([]mesh.CellID, len(borderCellLines))
	for i, line := range borderCellLines {
		ints, err := parseFixedInts(line, 1)
		if err != nil {
			return mesh.Input{}, fmt.Errorf("meshio.Read: %s line %d: %w", secBorderedgeToCell, i, err)
		}
		in.BorderedgeToCell[i] = mesh.CellID(ints[0])
	}

	coordLines, err := sr.lines(secCoordData)
	if err != nil {
		return mesh.Input{}, err
	}
	in.CoordData = make([]mesh.Coord, len(coordLines))
	for i, line := range coordLines {
		x, y, err := parseFloats(line)
		if err != nil {
			return mesh.Input{}, fmt.Errorf("meshio.Read: %s line %d: %w", secCoordData, i, err)
		}
		in.CoordData[i] = mesh.Coord{X: x, Y: y}
	}

	return in, nil
}
