package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strconv"

	"github.com/vovakirdan/zip-arcade/internal/games/zip"
	"github.com/vovakirdan/zip-arcade/internal/games/zip/core"
	"github.com/vovakirdan/zip-arcade/internal/games/zip/share"
	"github.com/vovakirdan/zip-arcade/internal/platform/render"
)

// PointJSON is a grid cell.
type PointJSON struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// CheckpointJSON is a numbered cell.
type CheckpointJSON struct {
	PointJSON
	Label int `json:"label"`
}

// WallJSON is a wall between a cell and its right or lower neighbor.
type WallJSON struct {
	PointJSON
	Orientation string `json:"orientation"`
}

// LevelJSON is the API representation of a level.
type LevelJSON struct {
	Rows        int              `json:"rows"`
	Cols        int              `json:"cols"`
	MaxNumber   int              `json:"max_number"`
	Start       PointJSON        `json:"start"`
	Checkpoints []CheckpointJSON `json:"checkpoints"`
	Walls       []WallJSON       `json:"walls"`
}

// LevelResponse is returned by the level endpoints.
type LevelResponse struct {
	Level      LevelJSON `json:"level"`
	Token      string    `json:"token"`
	URL        string    `json:"url,omitempty"`
	Downgraded bool      `json:"downgraded"`
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewLevelJSON converts a level, listing checkpoints in label order.
func NewLevelJSON(l core.LevelData) LevelJSON {
	out := LevelJSON{
		Rows:        l.Rows,
		Cols:        l.Cols,
		MaxNumber:   l.MaxNumber,
		Start:       PointJSON{Row: l.StartPoint.R, Col: l.StartPoint.C},
		Checkpoints: make([]CheckpointJSON, 0, len(l.Checkpoints)),
		Walls:       make([]WallJSON, 0, len(l.Walls)),
	}
	for p, n := range l.Checkpoints {
		out.Checkpoints = append(out.Checkpoints, CheckpointJSON{PointJSON{p.R, p.C}, n})
	}
	sort.Slice(out.Checkpoints, func(i, j int) bool {
		return out.Checkpoints[i].Label < out.Checkpoints[j].Label
	})
	for _, w := range l.Walls {
		out.Walls = append(out.Walls, WallJSON{PointJSON{w.At.R, w.At.C}, w.Orientation.String()})
	}
	return out
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseGenerateRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res := s.engine.Generate(req)
	token, url := s.engine.Share(res.Level)
	writeJSON(w, http.StatusOK, LevelResponse{
		Level:      NewLevelJSON(res.Level),
		Token:      token,
		URL:        url,
		Downgraded: res.Downgraded,
	})
}

func (s *Server) parseGenerateRequest(r *http.Request) (zip.GenerateRequest, error) {
	q := r.URL.Query()
	var req zip.GenerateRequest

	if v := q.Get("difficulty"); v != "" {
		d, err := core.ParseDifficulty(v)
		if err != nil {
			return req, err
		}
		req.Difficulty = d
	}

	var err error
	if req.Rows, err = intParam(q.Get("rows")); err != nil {
		return req, errors.New("rows must be an integer")
	}
	if req.Cols, err = intParam(q.Get("cols")); err != nil {
		return req, errors.New("cols must be an integer")
	}
	if v := q.Get("seed"); v != "" {
		if req.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return req, errors.New("seed must be an integer")
		}
	}

	req = s.engine.Resolve(req)
	if err := s.engine.CheckSize(req.Rows, req.Cols); err != nil {
		return req, err
	}
	return req, nil
}

func intParam(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}

func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	l, err := s.engine.Load(r.PathValue("token"))
	if err != nil {
		s.logger.Debug("Rejected level token", "err", err, "request_id", RequestID(r.Context()))
		msg := share.ErrInvalidToken.Error()
		if errors.Is(err, zip.ErrGridTooLarge) {
			msg = err.Error()
		}
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	token, url := s.engine.Share(l)
	writeJSON(w, http.StatusOK, LevelResponse{
		Level: NewLevelJSON(l),
		Token: token,
		URL:   url,
	})
}

// handlePlay serves the share link as a text board. A missing or unusable
// token gets a fresh level instead, so shared links never dead-end.
func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	l, generated := s.engine.LoadOrGenerate(r.URL.Query().Get(share.QueryParam), zip.GenerateRequest{})
	token, _ := s.engine.Share(l)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Zip-Level", token)
	if generated {
		w.Header().Set("X-Zip-Generated", "true")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(render.Plain(render.DrawLevel(l)) + "\n"))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// The status code has already been sent; nothing useful to do on failure.
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
