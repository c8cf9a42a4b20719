package core

// DifficultyParams controls checkpoint spacing and wall density.
type DifficultyParams struct {
	MinGap      int     // Smallest path distance between consecutive checkpoints
	MaxGap      int     // Largest path distance between consecutive checkpoints
	WallDensity float64 // Fraction of candidate walls kept (0-1)
}

// ParamsFor returns the built-in parameters for a difficulty.
// Unknown difficulties get the medium parameters.
func ParamsFor(d Difficulty) DifficultyParams {
	switch d {
	case Easy:
		return DifficultyParams{MinGap: 3, MaxGap: 5, WallDensity: 0.10}
	case Hard:
		return DifficultyParams{MinGap: 8, MaxGap: 15, WallDensity: 0.60}
	default:
		return DifficultyParams{MinGap: 5, MaxGap: 9, WallDensity: 0.30}
	}
}

// BuildParams configures the level builder.
type BuildParams struct {
	Difficulty DifficultyParams

	MaxAttempts  int // Path search attempts per grid size
	MaxSteps     int // Step budget per attempt
	FallbackRows int // Grid used when the requested size keeps failing
	FallbackCols int
}

// DefaultBuildParams returns the builder defaults for a difficulty.
func DefaultBuildParams(d Difficulty) BuildParams {
	return BuildParams{
		Difficulty:   ParamsFor(d),
		MaxAttempts:  20,
		MaxSteps:     DefaultMaxSteps,
		FallbackRows: 4,
		FallbackCols: 4,
	}
}

// Result is the outcome of a build.
// Downgraded is set when the builder gave up on the requested size and
// produced the fallback grid instead; Level.Rows/Cols hold the actual size.
type Result struct {
	Level      LevelData
	Path       []Point // The Hamiltonian path the level was built from
	Requested  Size
	Attempts   int // Total path search attempts across all sizes
	Downgraded bool
}

// GenerateLevel builds a level with the default parameters for d.
func GenerateLevel(d Difficulty, rows, cols int, rng Source) Result {
	return Build(DefaultBuildParams(d), rows, cols, rng)
}

// Build generates a Hamiltonian path and derives a playable level from it.
// It never fails: after MaxAttempts failures at the requested size it
// retries at the fallback size, and if that fails too it uses the
// serpentine path of the fallback grid. Downgraded is set only when the
// level ends up smaller or shaped differently than requested.
func Build(p BuildParams, rows, cols int, rng Source) Result {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = 1
	}
	if p.FallbackRows <= 0 || p.FallbackCols <= 0 {
		p.FallbackRows, p.FallbackCols = 4, 4
	}

	res := Result{Requested: Size{Rows: rows, Cols: cols}}

	path, attempts := searchWithRetries(rows, cols, p, rng)
	res.Attempts += attempts

	if path == nil {
		rows, cols = p.FallbackRows, p.FallbackCols
		res.Downgraded = res.Requested != (Size{Rows: rows, Cols: cols})

		path, attempts = searchWithRetries(rows, cols, p, rng)
		res.Attempts += attempts
		if path == nil {
			path = SerpentinePath(rows, cols)
		}
	}

	res.Path = path
	res.Level = LevelFromPath(path, rows, cols, p.Difficulty, rng)
	return res
}

// searchWithRetries runs up to MaxAttempts path searches.
// Returns a nil path if every attempt failed.
func searchWithRetries(rows, cols int, p BuildParams, rng Source) ([]Point, int) {
	if rows < 1 || cols < 1 {
		return nil, 0
	}
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		path, err := GeneratePath(rows, cols, rng, p.MaxSteps)
		if err == nil {
			return path, attempt
		}
	}
	return nil, p.MaxAttempts
}

// LevelFromPath derives checkpoints and walls from a Hamiltonian path.
// The path must cover the rows x cols grid.
func LevelFromPath(path []Point, rows, cols int, dp DifficultyParams, rng Source) LevelData {
	indices := PlaceCheckpoints(len(path), dp.MinGap, dp.MaxGap, rng)

	checkpoints := make(map[Point]int, len(indices))
	for i, idx := range indices {
		checkpoints[path[idx]] = i + 1
	}

	walls := SelectWalls(CandidateWalls(path, rows, cols), dp.WallDensity, rng)

	return LevelData{
		Rows:        rows,
		Cols:        cols,
		Checkpoints: checkpoints,
		MaxNumber:   len(indices),
		StartPoint:  path[0],
		Walls:       walls,
	}
}

// PlaceCheckpoints picks the path indices that become checkpoints.
// It walks the path in random steps from [minGap, maxGap], always
// including index 0 and the final index. Returned indices are ascending.
func PlaceCheckpoints(pathLen, minGap, maxGap int, rng Source) []int {
	if pathLen <= 0 {
		return nil
	}
	if minGap < 1 {
		minGap = 1
	}
	if maxGap < minGap {
		maxGap = minGap
	}

	last := pathLen - 1
	indices := []int{0}
	for idx := between(rng, minGap, maxGap); idx < last; idx += between(rng, minGap, maxGap) {
		indices = append(indices, idx)
	}
	if last > 0 {
		indices = append(indices, last)
	}
	return indices
}

// CandidateWalls lists every wall that would not cut the path: each pair
// of grid-adjacent cells whose path indices are not consecutive.
// Candidates are returned in row-major order.
func CandidateWalls(path []Point, rows, cols int) []Wall {
	order := make(map[Point]int, len(path))
	for i, p := range path {
		order[p] = i
	}

	var out []Wall
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			here, ok := order[P(r, c)]
			if !ok {
				continue
			}
			if c+1 < cols {
				if right, ok := order[P(r, c+1)]; ok && !consecutive(here, right) {
					out = append(out, Wall{At: P(r, c), Orientation: Vertical})
				}
			}
			if r+1 < rows {
				if down, ok := order[P(r+1, c)]; ok && !consecutive(here, down) {
					out = append(out, Wall{At: P(r, c), Orientation: Horizontal})
				}
			}
		}
	}
	return out
}

// SelectWalls shuffles the candidates and keeps floor(len * density) of them.
// The input slice is not modified.
func SelectWalls(candidates []Wall, density float64, rng Source) []Wall {
	if density <= 0 || len(candidates) == 0 {
		return []Wall{}
	}
	if density > 1 {
		density = 1
	}

	pool := append([]Wall(nil), candidates...)
	shuffle(rng, len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	n := int(float64(len(pool)) * density)
	return pool[:n]
}

func consecutive(a, b int) bool {
	return a-b == 1 || b-a == 1
}
