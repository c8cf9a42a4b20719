package core

import (
	"fmt"
	"sort"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// ValidatePath checks that path is a Hamiltonian path of the rows x cols
// grid: it covers every cell exactly once and each step moves to an
// edge-adjacent cell.
func ValidatePath(path []Point, rows, cols int) error {
	if rows < 1 || cols < 1 {
		return ValidationError{Code: "BAD_SIZE", Message: fmt.Sprintf("grid %dx%d", rows, cols)}
	}
	if len(path) != rows*cols {
		return ValidationError{
			Code:    "PATH_LENGTH",
			Message: fmt.Sprintf("path has %d cells, grid has %d", len(path), rows*cols),
		}
	}

	seen := make(map[Point]bool, len(path))
	for i, p := range path {
		if !p.InBounds(rows, cols) {
			return ValidationError{Code: "OUT_OF_BOUNDS", Message: fmt.Sprintf("path[%d] = %s", i, p)}
		}
		if seen[p] {
			return ValidationError{Code: "REVISIT", Message: fmt.Sprintf("path[%d] = %s visited twice", i, p)}
		}
		seen[p] = true
		if i > 0 && !path[i-1].Adjacent(p) {
			return ValidationError{
				Code:    "NOT_ADJACENT",
				Message: fmt.Sprintf("path[%d] = %s does not touch %s", i, p, path[i-1]),
			}
		}
	}
	return nil
}

// ValidateLevel checks the structural invariants of a level:
//   - positive dimensions
//   - checkpoint labels form the dense range 1..MaxNumber
//   - the start point holds label 1
//   - every checkpoint and wall is on the grid, with no duplicate walls
func ValidateLevel(l LevelData) error {
	if l.Rows < 1 || l.Cols < 1 {
		return ValidationError{Code: "BAD_SIZE", Message: fmt.Sprintf("grid %dx%d", l.Rows, l.Cols)}
	}

	if err := validateCheckpoints(l); err != nil {
		return err
	}

	seen := make(map[Wall]bool, len(l.Walls))
	for _, w := range l.Walls {
		if w.Orientation != Horizontal && w.Orientation != Vertical {
			return ValidationError{Code: "BAD_WALL", Message: fmt.Sprintf("wall at %s has unknown orientation", w.At)}
		}
		if !w.InBounds(l.Rows, l.Cols) {
			return ValidationError{Code: "WALL_OUT_OF_BOUNDS", Message: fmt.Sprintf("wall %s off a %dx%d grid", w, l.Rows, l.Cols)}
		}
		if seen[w] {
			return ValidationError{Code: "DUPLICATE_WALL", Message: fmt.Sprintf("wall %s listed twice", w)}
		}
		seen[w] = true
	}

	return nil
}

func validateCheckpoints(l LevelData) error {
	if len(l.Checkpoints) == 0 {
		return ValidationError{Code: "NO_CHECKPOINTS", Message: "level has no checkpoints"}
	}

	labels := make([]int, 0, len(l.Checkpoints))
	for p, n := range l.Checkpoints {
		if !p.InBounds(l.Rows, l.Cols) {
			return ValidationError{Code: "CHECKPOINT_OUT_OF_BOUNDS", Message: fmt.Sprintf("checkpoint %d at %s", n, p)}
		}
		labels = append(labels, n)
	}
	sort.Ints(labels)

	for i, n := range labels {
		if n != i+1 {
			return ValidationError{
				Code:    "LABEL_GAP",
				Message: fmt.Sprintf("labels are not a dense 1..%d range (found %v)", len(labels), labels),
			}
		}
	}
	if l.MaxNumber != len(labels) {
		return ValidationError{
			Code:    "MAX_NUMBER",
			Message: fmt.Sprintf("max number %d but %d checkpoints", l.MaxNumber, len(labels)),
		}
	}
	if n, ok := l.Checkpoints[l.StartPoint]; !ok || n != 1 {
		return ValidationError{Code: "START_POINT", Message: fmt.Sprintf("start %s does not hold label 1", l.StartPoint)}
	}
	return nil
}

// VerifySolution checks that path solves the level: it is Hamiltonian,
// starts at the start point, never crosses a wall, and meets checkpoints
// in ascending label order ending on MaxNumber.
func VerifySolution(l LevelData, path []Point) error {
	if err := ValidatePath(path, l.Rows, l.Cols); err != nil {
		return err
	}
	if path[0] != l.StartPoint {
		return ValidationError{Code: "WRONG_START", Message: fmt.Sprintf("path starts at %s, level at %s", path[0], l.StartPoint)}
	}

	blocked := make(map[Wall]bool, len(l.Walls))
	for _, w := range l.Walls {
		blocked[w] = true
	}

	next := 1
	for i, p := range path {
		if i > 0 {
			if w, _ := WallBetween(path[i-1], p); blocked[w] {
				return ValidationError{Code: "CROSSES_WALL", Message: fmt.Sprintf("step %s -> %s crosses wall %s", path[i-1], p, w)}
			}
		}
		n, ok := l.Checkpoints[p]
		if !ok {
			continue
		}
		if n != next {
			return ValidationError{Code: "CHECKPOINT_ORDER", Message: fmt.Sprintf("reached %d at %s, expected %d", n, p, next)}
		}
		next++
	}

	if next-1 != l.MaxNumber {
		return ValidationError{Code: "MISSED_CHECKPOINT", Message: fmt.Sprintf("reached %d of %d checkpoints", next-1, l.MaxNumber)}
	}
	if l.Checkpoints[path[len(path)-1]] != l.MaxNumber {
		return ValidationError{Code: "WRONG_END", Message: fmt.Sprintf("path ends at %s, not on checkpoint %d", path[len(path)-1], l.MaxNumber)}
	}
	return nil
}
