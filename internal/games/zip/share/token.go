// Package share converts levels to and from compact URL-safe tokens.
//
// A token is the unpadded URL-safe base64 encoding of the JSON array
//
//	[rows, cols, [r, c, flag, ...], [r, c, label, ...], startR, startC]
//
// where flag is 1 for a vertical wall and 0 for a horizontal one.
package share

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/vovakirdan/zip-arcade/internal/games/zip/core"
)

// ErrInvalidToken wraps every deserialization failure.
var ErrInvalidToken = errors.New("invalid level token")

// maxCoordinate bounds every integer accepted from a token.
const maxCoordinate = math.MaxInt32

// Serialize encodes a level as a token.
// Checkpoints are written in label order so equal levels give equal tokens.
// Returns "" if the level could not be encoded.
func Serialize(l core.LevelData) string {
	walls := make([]int, 0, 3*len(l.Walls))
	for _, w := range l.Walls {
		flag := 0
		if w.Orientation == core.Vertical {
			flag = 1
		}
		walls = append(walls, w.At.R, w.At.C, flag)
	}

	points := make([]core.Point, 0, len(l.Checkpoints))
	for p := range l.Checkpoints {
		points = append(points, p)
	}
	sort.Slice(points, func(i, j int) bool {
		li, lj := l.Checkpoints[points[i]], l.Checkpoints[points[j]]
		if li != lj {
			return li < lj
		}
		if points[i].R != points[j].R {
			return points[i].R < points[j].R
		}
		return points[i].C < points[j].C
	})

	checkpoints := make([]int, 0, 3*len(points))
	for _, p := range points {
		checkpoints = append(checkpoints, p.R, p.C, l.Checkpoints[p])
	}

	data := []any{l.Rows, l.Cols, walls, checkpoints, l.StartPoint.R, l.StartPoint.C}
	raw, err := json.Marshal(data)
	if err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(raw)
}

// Deserialize decodes a token back into a level.
// Both the URL-safe and the standard base64 alphabet are accepted, with or
// without padding. MaxNumber is recomputed from the labels. On any failure
// the zero LevelData is returned with an error wrapping ErrInvalidToken;
// a partially decoded level is never returned.
func Deserialize(token string) (core.LevelData, error) {
	raw, err := decodeBase64(token)
	if err != nil {
		return core.LevelData{}, fmt.Errorf("%w: base64: %v", ErrInvalidToken, err)
	}

	var fields []json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return core.LevelData{}, fmt.Errorf("%w: json: %v", ErrInvalidToken, err)
	}
	if len(fields) != 6 {
		return core.LevelData{}, fmt.Errorf("%w: expected 6 fields, got %d", ErrInvalidToken, len(fields))
	}

	level, err := decodeFields(fields)
	if err != nil {
		return core.LevelData{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if err := core.ValidateLevel(level); err != nil {
		return core.LevelData{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return level, nil
}

func decodeBase64(token string) ([]byte, error) {
	s := strings.TrimSpace(token)
	if s == "" {
		return nil, errors.New("empty token")
	}
	s = strings.NewReplacer("+", "-", "/", "_").Replace(s)
	s = strings.TrimRight(s, "=")
	return base64.RawURLEncoding.DecodeString(s)
}

func decodeFields(fields []json.RawMessage) (core.LevelData, error) {
	rows, err := intField(fields[0], "rows")
	if err != nil {
		return core.LevelData{}, err
	}
	cols, err := intField(fields[1], "cols")
	if err != nil {
		return core.LevelData{}, err
	}
	wallData, err := tripleField(fields[2], "walls")
	if err != nil {
		return core.LevelData{}, err
	}
	checkpointData, err := tripleField(fields[3], "checkpoints")
	if err != nil {
		return core.LevelData{}, err
	}
	startR, err := intField(fields[4], "start row")
	if err != nil {
		return core.LevelData{}, err
	}
	startC, err := intField(fields[5], "start col")
	if err != nil {
		return core.LevelData{}, err
	}

	walls := make([]core.Wall, 0, len(wallData)/3)
	for i := 0; i < len(wallData); i += 3 {
		var o core.Orientation
		switch wallData[i+2] {
		case 1:
			o = core.Vertical
		case 0:
			o = core.Horizontal
		default:
			return core.LevelData{}, fmt.Errorf("wall %d: orientation flag %d", i/3, wallData[i+2])
		}
		walls = append(walls, core.Wall{At: core.P(wallData[i], wallData[i+1]), Orientation: o})
	}

	checkpoints := make(map[core.Point]int, len(checkpointData)/3)
	maxNumber := 0
	for i := 0; i < len(checkpointData); i += 3 {
		p := core.P(checkpointData[i], checkpointData[i+1])
		n := checkpointData[i+2]
		if _, dup := checkpoints[p]; dup {
			return core.LevelData{}, fmt.Errorf("checkpoint %s listed twice", p)
		}
		checkpoints[p] = n
		if n > maxNumber {
			maxNumber = n
		}
	}

	return core.LevelData{
		Rows:        rows,
		Cols:        cols,
		Checkpoints: checkpoints,
		MaxNumber:   maxNumber,
		StartPoint:  core.P(startR, startC),
		Walls:       walls,
	}, nil
}

// intField decodes a JSON number holding an integer.
// Whole floats such as 6.0 are accepted, as a JavaScript encoder may emit them.
func intField(raw json.RawMessage, name string) (int, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, fmt.Errorf("%s: %v", name, err)
	}
	n, ok := toInt(v)
	if !ok {
		return 0, fmt.Errorf("%s: expected an integer, got %s", name, string(raw))
	}
	return n, nil
}

// tripleField decodes a JSON array of integers whose length is a multiple of 3.
func tripleField(raw json.RawMessage, name string) ([]int, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("%s: %v", name, err)
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%s: expected an array", name)
	}
	if len(arr)%3 != 0 {
		return nil, fmt.Errorf("%s: %d values is not a whole number of triples", name, len(arr))
	}

	out := make([]int, len(arr))
	for i, elem := range arr {
		n, ok := toInt(elem)
		if !ok {
			return nil, fmt.Errorf("%s[%d]: expected an integer", name, i)
		}
		out[i] = n
	}
	return out, nil
}

func toInt(v any) (int, bool) {
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) || math.Abs(f) > maxCoordinate {
		return 0, false
	}
	return int(f), true
}
