package meshio

import (
	"bufio"
	"fmt"
	"os"
	"sort"

	"github.com/katalvlaran/meshtopo/mesh"
	"github.com/katalvlaran/meshtopo/renumber"
)

// Write emits path as the augmented mesh archive: the original relations
// (orig, unchanged) followed by every renumbered entry the renumbering
// and its application produced.
func Write(path string, orig mesh.Input, renumbering *renumber.Renumbering, applied *renumber.Applied) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("meshio.Write: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	writeOriginal(w, orig)
	writeStructuredNodeRegions(w, renumbering)
	writeStructuredCellRegions(w, renumbering, orig)
	writeStructuredEdgeRegions(w, renumbering, orig)

	writeValueListSection(w, secNewCellToOrdNodes, len(applied.CellToOrdNodes), func(i int) []int {
		n := applied.CellToOrdNodes[i]
		return []int{int(n[0]), int(n[1]), int(n[2]), int(n[3])}
	})
	writeValueListSection(w, secNewInedgeToNodes, len(applied.InedgeToNodes), func(i int) []int {
		n := applied.InedgeToNodes[i]
		return []int{int(n[0]), int(n[1])}
	})
	writeValueListSection(w, secNewInedgeToCells, len(applied.InedgeToCells), func(i int) []int {
		n := applied.InedgeToCells[i]
		return []int{int(n[0]), int(n[1])}
	})
	writeValueListSection(w, secNewBorderedgeToNodes, len(applied.BorderedgeToNodes), func(i int) []int {
		n := applied.BorderedgeToNodes[i]
		return []int{int(n[0]), int(n[1])}
	})
	writeValueListSection(w, secNewBorderedgeToCell, len(applied.BorderedgeToCell), func(i int) []int {
		return []int{int(applied.BorderedgeToCell[i])}
	})

	fmt.Fprintf(w, "#%s\n", secNewCoordData)
	for _, c := range applied.CoordData {
		fmt.Fprintf(w, "%g %g\n", c.X, c.Y)
	}

	writePairSection(w, secOldnodeToNewnode, renumbering.Nodes.OldToNew)
	writePairSection(w, secOldcellToNewcell, renumbering.Cells.OldToNew)
	writePairSection(w, secNewedgeToOldedge, renumbering.Edges.NewToOld)

	return w.Flush()
}

func writeOriginal(w *bufio.Writer, orig mesh.Input) {
	writeValueListSection(w, secNodeToNode, len(orig.NodeToNode), func(i int) []int {
		out := make([]int, 0, len(orig.NodeToNode[i]))
		for n := range orig.NodeToNode[i] {
			out = append(out, int(n))
		}
		sort.Ints(out)
		return out
	})
	writeValueListSection(w, secCellToOrdNodes, len(orig.CellToOrdNodes), func(i int) []int {
		n := orig.CellToOrdNodes[i]
		return []int{int(n[0]), int(n[1]), int(n[2]), int(n[3])}
	})
	writeValueListSection(w, secInedgeToNodes, len(orig.InedgeToNodes), func(i int) []int {
		n := orig.InedgeToNodes[i]
		return []int{int(n[0]), int(n[1])}
	})
	writeValueListSection(w, secInedgeToCells, len(orig.InedgeToCells), func(i int) []int {
		n := orig.InedgeToCells[i]
		return []int{int(n[0]), int(n[1])}
	})
	writeValueListSection(w, secBorderedgeToNodes, len(orig.BorderedgeToNodes), func(i int) []int {
		n := orig.BorderedgeToNodes[i]
		return []int{int(n[0]), int(n[1])}
	})
	writeValueListSection(w, secBorderedgeToCell, len(orig.BorderedgeToCell), func(i int) []int {
		return []int{int(orig.BorderedgeToCell[i])}
	})
	fmt.Fprintf(w, "#%s\n", secCoordData)
	for _, c := range orig.CoordData {
		fmt.Fprintf(w, "%g %g\n", c.X, c.Y)
	}
}

func writeStructuredNodeRegions(w *bufio.Writer, renumbering *renumber.Renumbering) {
	fmt.Fprintf(w, "#%s\n", secStructuredNodeRegions)
	fmt.Fprintln(w, len(renumbering.NodeRegions))
	for i, p := range renumbering.NodeRegions {
		rows, cols := p.Region.Rows(), p.Region.Cols()
		fmt.Fprintf(w, "%d %d %d\n", i, rows, cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c > 0 {
					fmt.Fprint(w, " ")
				}
				fmt.Fprint(w, p.Offset+r*cols+c)
			}
			fmt.Fprintln(w)
		}
	}
}

func writeStructuredCellRegions(w *bufio.Writer, renumbering *renumber.Renumbering, orig mesh.Input) {
	fmt.Fprintf(w, "#%s\n", secStructuredCellRegions)
	fmt.Fprintln(w, len(renumbering.CellRegions))
	structured := 0
	for _, p := range renumbering.CellRegions {
		cr := p.Region
		fmt.Fprintf(w, "%d %d %d %d %d %d %d %d %d\n",
			p.Offset, cr.RowStart, cr.RowFinish, cr.ColStart, cr.ColFinish,
			cr.Compass[0], cr.Compass[1], cr.Compass[2], cr.Compass[3])
		structured += cr.Rows() * cr.Cols()
	}

	fmt.Fprintf(w, "#%s\n", secUnstructuredCellRegions)
	fmt.Fprintf(w, "%d %d\n", len(orig.CellToOrdNodes)-structured, structured)
}

func writeStructuredEdgeRegions(w *bufio.Writer, renumbering *renumber.Renumbering, orig mesh.Input) {
	fmt.Fprintf(w, "#%s\n", secStructuredEdgeRegions)

	writeStrips := func(name string, placements []renumber.EdgeRegionPlacement) int {
		present := make([]renumber.EdgeRegionPlacement, 0, len(placements))
		for _, p := range placements {
			if p.Region != nil {
				present = append(present, p)
			}
		}
		fmt.Fprintf(w, "%s\n", name)
		fmt.Fprintln(w, len(present))
		structured := 0
		for _, p := range present {
			er := p.Region
			fmt.Fprintf(w, "%d %d %d %d %d %d %d %d %d\n",
				p.Offset, er.RowStart, er.RowFinish, er.ColStart, er.ColFinish,
				er.NodeCompass[0], er.NodeCompass[1], er.CellCompass[0], er.CellCompass[1])
			structured += er.Rows() * er.Cols()
		}
		return structured
	}

	structured := writeStrips(secStructuredHEdgeRegions, renumbering.HEdgeRegions)
	structured += writeStrips(secStructuredVEdgeRegions, renumbering.VEdgeRegions)

	fmt.Fprintf(w, "%s\n", secUnstructuredEdgesOffset)
	fmt.Fprintln(w, structured)
}

func writeValueListSection(w *bufio.Writer, name string, n int, values func(i int) []int) {
	fmt.Fprintf(w, "#%s\n", name)
	for i := 0; i < n; i++ {
		vals := values(i)
		for j, v := range vals {
			if j > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprint(w, v)
		}
		fmt.Fprintln(w)
	}
}

func writePairSection(w *bufio.Writer, name string, values []int) {
	fmt.Fprintf(w, "#%s\n", name)
	for a, b := range values {
		fmt.Fprintf(w, "%d %d\n", a, b)
	}
}
