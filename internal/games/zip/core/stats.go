package core

// LevelStats summarises a level.
type LevelStats struct {
	Cells       int
	Checkpoints int
	Walls       int
	WallRatio   float64 // Walls per interior edge
	MeanGap     float64 // Average path distance between consecutive checkpoints
}

// ComputeLevelStats analyzes a level and returns statistics.
// MeanGap relies on the first and last checkpoints sitting at the ends of
// the solution path, which holds for every built level.
func ComputeLevelStats(l LevelData) LevelStats {
	stats := LevelStats{
		Cells:       l.Rows * l.Cols,
		Checkpoints: len(l.Checkpoints),
		Walls:       len(l.Walls),
	}

	edges := l.Rows*(l.Cols-1) + (l.Rows-1)*l.Cols
	if edges > 0 {
		stats.WallRatio = float64(stats.Walls) / float64(edges)
	}
	if stats.Checkpoints > 1 {
		stats.MeanGap = float64(stats.Cells-1) / float64(stats.Checkpoints-1)
	}
	return stats
}

// Summary aggregates statistics over many levels.
type Summary struct {
	Levels          int
	MeanWalls       float64
	MeanGap         float64
	MeanCheckpoints float64
	Downgrades      int
}

// Add folds one build result into the summary.
func (s *Summary) Add(r Result) {
	st := ComputeLevelStats(r.Level)
	n := float64(s.Levels)
	s.MeanWalls = (s.MeanWalls*n + float64(st.Walls)) / (n + 1)
	s.MeanGap = (s.MeanGap*n + st.MeanGap) / (n + 1)
	s.MeanCheckpoints = (s.MeanCheckpoints*n + float64(st.Checkpoints)) / (n + 1)
	if r.Downgraded {
		s.Downgrades++
	}
	s.Levels++
}
