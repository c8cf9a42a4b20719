package core

import (
	"errors"
	"sort"
)

// DefaultMaxSteps caps one path search attempt.
const DefaultMaxSteps = 500000

var (
	// ErrInvalidSize is returned for grids with a non-positive dimension.
	ErrInvalidSize = errors.New("grid dimensions must be positive")
	// ErrStepBudget is returned when the search runs out of steps.
	ErrStepBudget = errors.New("path search exceeded its step budget")
	// ErrNoPath is returned when the search space is exhausted from the chosen start.
	ErrNoPath = errors.New("no hamiltonian path from start cell")
)

// searchFrame is one cell on the DFS stack with the candidates not yet tried.
type searchFrame struct {
	cell  int
	cands []int
}

// pathSearch holds the state of a single search attempt.
type pathSearch struct {
	rows, cols int
	visited    []bool
	rng        Source
}

// GeneratePath searches for a Hamiltonian path over a rows x cols grid.
//
// The search is a randomized depth-first backtracking walk from a uniformly
// random start cell. Candidate moves are shuffled and then ordered by
// Warnsdorff's rule: neighbours with fewer unvisited onward neighbours are
// tried first. Each push counts as one step; once maxSteps is exceeded the
// attempt is abandoned with ErrStepBudget. Callers are expected to retry.
func GeneratePath(rows, cols int, rng Source, maxSteps int) ([]Point, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrInvalidSize
	}
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}

	total := rows * cols
	s := &pathSearch{
		rows:    rows,
		cols:    cols,
		visited: make([]bool, total),
		rng:     rng,
	}

	start := rng.Intn(total)

	// On an odd-sized grid every Hamiltonian path starts and ends on the
	// majority colour of the checkerboard, which is the colour of (0,0).
	if total%2 == 1 && (start/cols+start%cols)%2 == 1 {
		return nil, ErrNoPath
	}

	s.visited[start] = true
	stack := make([]searchFrame, 0, total)
	stack = append(stack, searchFrame{cell: start, cands: s.candidates(start)})
	steps := 1

	for len(stack) > 0 {
		if len(stack) == total {
			return s.toPoints(stack), nil
		}

		top := &stack[len(stack)-1]
		if len(top.cands) == 0 {
			// Dead end: unmark and backtrack
			s.visited[top.cell] = false
			stack = stack[:len(stack)-1]
			continue
		}

		next := top.cands[0]
		top.cands = top.cands[1:]
		if s.visited[next] {
			continue
		}

		steps++
		if steps > maxSteps {
			return nil, ErrStepBudget
		}

		s.visited[next] = true
		stack = append(stack, searchFrame{cell: next, cands: s.candidates(next)})
	}

	return nil, ErrNoPath
}

// neighbors returns the in-bounds 4-neighbours of a cell index.
func (s *pathSearch) neighbors(cell int) []int {
	r, c := cell/s.cols, cell%s.cols
	out := make([]int, 0, 4)
	for _, d := range neighborOffsets {
		nr, nc := r+d[0], c+d[1]
		if nr >= 0 && nr < s.rows && nc >= 0 && nc < s.cols {
			out = append(out, nr*s.cols+nc)
		}
	}
	return out
}

// degree counts the unvisited neighbours of a cell.
func (s *pathSearch) degree(cell int) int {
	n := 0
	for _, nb := range s.neighbors(cell) {
		if !s.visited[nb] {
			n++
		}
	}
	return n
}

// candidates returns the unvisited neighbours of cell in try order:
// random shuffle, then stable sort by ascending degree so ties stay random.
func (s *pathSearch) candidates(cell int) []int {
	cands := make([]int, 0, 4)
	for _, nb := range s.neighbors(cell) {
		if !s.visited[nb] {
			cands = append(cands, nb)
		}
	}

	shuffle(s.rng, len(cands), func(i, j int) {
		cands[i], cands[j] = cands[j], cands[i]
	})

	degrees := make(map[int]int, len(cands))
	for _, c := range cands {
		degrees[c] = s.degree(c)
	}
	sort.SliceStable(cands, func(i, j int) bool {
		return degrees[cands[i]] < degrees[cands[j]]
	})

	return cands
}

func (s *pathSearch) toPoints(stack []searchFrame) []Point {
	path := make([]Point, len(stack))
	for i, f := range stack {
		path[i] = P(f.cell/s.cols, f.cell%s.cols)
	}
	return path
}

// SerpentinePath returns the boustrophedon path: left to right on even
// rows, right to left on odd rows. It always exists and is used as the
// last-resort fallback when random search keeps failing.
func SerpentinePath(rows, cols int) []Point {
	if rows < 1 || cols < 1 {
		return nil
	}
	path := make([]Point, 0, rows*cols)
	for r := 0; r < rows; r++ {
		if r%2 == 0 {
			for c := 0; c < cols; c++ {
				path = append(path, P(r, c))
			}
		} else {
			for c := cols - 1; c >= 0; c-- {
				path = append(path, P(r, c))
			}
		}
	}
	return path
}
