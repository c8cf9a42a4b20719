package zip_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/zip-arcade/internal/config"
	"github.com/vovakirdan/zip-arcade/internal/games/zip"
	"github.com/vovakirdan/zip-arcade/internal/games/zip/core"
	"github.com/vovakirdan/zip-arcade/internal/games/zip/share"
)

func newEngine(t *testing.T) (*zip.Engine, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	cfg := config.DefaultZipConfig()
	cfg.Share.BaseURL = "https://zip.example/play"
	return zip.NewEngine(cfg, logger), &buf
}

func TestGenerateUsesDefaults(t *testing.T) {
	e, _ := newEngine(t)

	res := e.Generate(zip.GenerateRequest{Seed: 42})
	if res.Level.Rows != 6 || res.Level.Cols != 6 {
		t.Errorf("expected default 6x6, got %s", res.Level.Size())
	}
	if err := core.VerifySolution(res.Level, res.Path); err != nil {
		t.Errorf("generated level not solved by its path: %v", err)
	}
}

func TestGenerateIsDeterministicForSeed(t *testing.T) {
	e, _ := newEngine(t)
	req := zip.GenerateRequest{Difficulty: core.Hard, Rows: 5, Cols: 7, Seed: 1234}

	a := e.Generate(req)
	b := e.Generate(req)
	if !a.Level.Equal(b.Level) {
		t.Error("same seed produced different levels")
	}
}

func TestGenerateLogsDowngrade(t *testing.T) {
	cfg := config.DefaultZipConfig()
	cfg.Generation.MaxSteps = 1
	cfg.Generation.MaxAttempts = 1

	var buf bytes.Buffer
	e := zip.NewEngine(cfg, log.New(&buf))

	res := e.Generate(zip.GenerateRequest{Rows: 6, Cols: 6, Seed: 3})
	if !res.Downgraded {
		t.Fatal("expected downgrade with a 1-step budget")
	}
	if !strings.Contains(buf.String(), "fallback") {
		t.Errorf("expected downgrade warning in log, got %q", buf.String())
	}
}

func TestShareAndLoad(t *testing.T) {
	e, _ := newEngine(t)
	res := e.Generate(zip.GenerateRequest{Difficulty: core.Easy, Seed: 7})

	token, url := e.Share(res.Level)
	if token == "" {
		t.Fatal("empty token")
	}
	if !strings.HasPrefix(url, "https://zip.example/play?level=") {
		t.Errorf("unexpected share url %q", url)
	}

	for _, in := range []string{token, url} {
		l, err := e.Load(in)
		if err != nil {
			t.Fatalf("Load(%q): %v", in, err)
		}
		if !l.Equal(res.Level) {
			t.Errorf("Load(%q) returned a different level", in)
		}
	}
}

func TestShareWithoutBaseURL(t *testing.T) {
	cfg := config.DefaultZipConfig()
	cfg.Share.BaseURL = ""
	e := zip.NewEngine(cfg, nil)

	token, url := e.Share(e.Generate(zip.GenerateRequest{Seed: 1}).Level)
	if token == "" || url != "" {
		t.Errorf("expected token and no url, got %q %q", token, url)
	}
}

func TestLoadRejects(t *testing.T) {
	e, _ := newEngine(t)

	if _, err := e.Load("garbage"); !errors.Is(err, share.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}

	big := core.LevelFromPath(core.SerpentinePath(1, 20), 1, 20, core.ParamsFor(core.Easy), core.NewRNG(1))
	token, _ := e.Share(big)
	if _, err := e.Load(token); !errors.Is(err, zip.ErrGridTooLarge) {
		t.Errorf("expected ErrGridTooLarge, got %v", err)
	}
}

func TestLoadOrGenerate(t *testing.T) {
	e, buf := newEngine(t)
	orig := e.Generate(zip.GenerateRequest{Seed: 5}).Level
	token, _ := e.Share(orig)

	l, generated := e.LoadOrGenerate(token, zip.GenerateRequest{})
	if generated || !l.Equal(orig) {
		t.Error("valid token should load the shared level")
	}

	l, generated = e.LoadOrGenerate("not-a-level", zip.GenerateRequest{Difficulty: core.Easy, Rows: 4, Cols: 4})
	if !generated {
		t.Fatal("invalid token should generate a fresh level")
	}
	if l.Rows != 4 || l.Cols != 4 {
		t.Errorf("expected 4x4 fresh level, got %s", l.Size())
	}
	if err := core.ValidateLevel(l); err != nil {
		t.Errorf("fresh level invalid: %v", err)
	}
	if !strings.Contains(buf.String(), "Ignoring unusable level token") {
		t.Error("expected a warning for the bad token")
	}

	if _, generated = e.LoadOrGenerate("", zip.GenerateRequest{}); !generated {
		t.Error("empty token should generate")
	}
}

func TestCheckSize(t *testing.T) {
	e, _ := newEngine(t)
	if err := e.CheckSize(12, 12); err != nil {
		t.Errorf("12x12 should fit: %v", err)
	}
	if err := e.CheckSize(13, 2); !errors.Is(err, zip.ErrGridTooLarge) {
		t.Errorf("expected ErrGridTooLarge, got %v", err)
	}
}
