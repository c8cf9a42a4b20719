// Package zip ties the Zip puzzle core to configuration, logging and share
// links. It is the entry point used by the CLI and the share servers.
package zip

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/zip-arcade/internal/config"
	"github.com/vovakirdan/zip-arcade/internal/games/zip/core"
	"github.com/vovakirdan/zip-arcade/internal/games/zip/share"
)

// ErrGridTooLarge is returned for grids outside the configured limits.
var ErrGridTooLarge = errors.New("grid size out of range")

// GenerateRequest describes a level to build.
// Zero values fall back to the configured defaults; Seed 0 seeds from the clock.
type GenerateRequest struct {
	Difficulty core.Difficulty
	Rows       int
	Cols       int
	Seed       int64
}

// Engine builds, shares and loads levels. It is safe for concurrent use.
type Engine struct {
	cfg    config.ZipConfig
	logger *log.Logger
}

// NewEngine creates an engine. A nil logger discards output.
func NewEngine(cfg config.ZipConfig, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{cfg: cfg, logger: logger}
}

// Config returns the engine configuration.
func (e *Engine) Config() config.ZipConfig {
	return e.cfg
}

// Resolve fills zero fields of req from the configuration.
func (e *Engine) Resolve(req GenerateRequest) GenerateRequest {
	if req.Difficulty == "" {
		d, err := e.cfg.DefaultDifficulty()
		if err != nil {
			d = core.Medium
		}
		req.Difficulty = d
	}
	if req.Rows == 0 {
		req.Rows = e.cfg.Grid.Rows
	}
	if req.Cols == 0 {
		req.Cols = e.cfg.Grid.Cols
	}
	return req
}

// CheckSize reports whether a grid is within the configured limits.
func (e *Engine) CheckSize(rows, cols int) error {
	if !e.cfg.Fits(rows, cols) {
		return fmt.Errorf("%w: %dx%d (max %dx%d)", ErrGridTooLarge,
			rows, cols, e.cfg.Grid.MaxRows, e.cfg.Grid.MaxCols)
	}
	return nil
}

// Generate builds a level. It never fails; check Result.Downgraded to
// learn whether the fallback grid was used instead of the requested one.
// Grid limits are not enforced here: call CheckSize on the resolved request
// before generating from untrusted input.
func (e *Engine) Generate(req GenerateRequest) core.Result {
	req = e.Resolve(req)
	rng := core.NewSource(req.Seed)

	res := core.Build(e.cfg.BuildParams(req.Difficulty), req.Rows, req.Cols, rng)

	if res.Downgraded {
		e.logger.Warn("Requested grid could not be generated, using fallback",
			"requested", res.Requested,
			"actual", res.Level.Size(),
			"attempts", res.Attempts,
		)
	}
	e.logger.Debug("Generated level",
		"difficulty", req.Difficulty,
		"size", res.Level.Size(),
		"checkpoints", res.Level.MaxNumber,
		"walls", len(res.Level.Walls),
		"attempts", res.Attempts,
		"seed", req.Seed,
	)
	return res
}

// Share returns the token for a level and its share URL.
// The URL is empty when no base URL is configured or it is malformed.
func (e *Engine) Share(l core.LevelData) (token, url string) {
	token = share.Serialize(l)
	if token == "" || e.cfg.Share.BaseURL == "" {
		return token, ""
	}
	url, err := share.ShareURL(e.cfg.Share.BaseURL, token)
	if err != nil {
		e.logger.Warn("Cannot build share URL", "base_url", e.cfg.Share.BaseURL, "err", err)
		return token, ""
	}
	return token, url
}

// Load decodes a token or share URL into a level.
// Levels larger than the configured limits are rejected.
func (e *Engine) Load(tokenOrURL string) (core.LevelData, error) {
	l, err := share.Deserialize(share.TokenFromURL(tokenOrURL))
	if err != nil {
		return core.LevelData{}, err
	}
	if err := e.CheckSize(l.Rows, l.Cols); err != nil {
		return core.LevelData{}, err
	}
	return l, nil
}

// LoadOrGenerate loads the level in tokenOrURL, or builds a fresh one from
// req when the token is empty or invalid. generated reports which happened.
func (e *Engine) LoadOrGenerate(tokenOrURL string, req GenerateRequest) (l core.LevelData, generated bool) {
	if tokenOrURL != "" {
		l, err := e.Load(tokenOrURL)
		if err == nil {
			return l, false
		}
		e.logger.Warn("Ignoring unusable level token", "err", err)
	}
	return e.Generate(req).Level, true
}
