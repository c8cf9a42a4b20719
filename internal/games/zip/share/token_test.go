package share_test

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/vovakirdan/zip-arcade/internal/games/zip/core"
	"github.com/vovakirdan/zip-arcade/internal/games/zip/share"
)

var wallOrder = cmpopts.SortSlices(func(a, b core.Wall) bool {
	if a.At.R != b.At.R {
		return a.At.R < b.At.R
	}
	if a.At.C != b.At.C {
		return a.At.C < b.At.C
	}
	return a.Orientation < b.Orientation
})

func tokenOf(json string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(json))
}

func TestRoundTripGeneratedLevels(t *testing.T) {
	rng := core.NewRNG(99)
	for _, d := range core.AllDifficulties() {
		for i := 0; i < 20; i++ {
			res := core.GenerateLevel(d, 5, 6, rng)

			token := share.Serialize(res.Level)
			if token == "" {
				t.Fatalf("%s: empty token", d)
			}
			if strings.ContainsAny(token, "+/=") {
				t.Fatalf("token %q is not URL safe", token)
			}

			got, err := share.Deserialize(token)
			if err != nil {
				t.Fatalf("%s: Deserialize: %v", d, err)
			}
			if diff := cmp.Diff(res.Level, got, wallOrder, cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("%s: round trip mismatch (-want +got):\n%s", d, diff)
			}
		}
	}
}

func TestSerializeIsStable(t *testing.T) {
	res := core.GenerateLevel(core.Hard, 6, 6, core.NewRNG(4))
	a := share.Serialize(res.Level)
	for i := 0; i < 10; i++ {
		if b := share.Serialize(res.Level.Clone()); b != a {
			t.Fatalf("Serialize not stable: %q != %q", a, b)
		}
	}
}

func TestSerializeLayout(t *testing.T) {
	l := core.LevelData{
		Rows: 2,
		Cols: 3,
		Checkpoints: map[core.Point]int{
			core.P(1, 0): 3,
			core.P(0, 0): 1,
			core.P(1, 2): 2,
		},
		MaxNumber:  3,
		StartPoint: core.P(0, 0),
		Walls:      []core.Wall{{At: core.P(0, 0), Orientation: core.Horizontal}},
	}

	raw, err := base64.RawURLEncoding.DecodeString(share.Serialize(l))
	if err != nil {
		t.Fatalf("token is not raw url base64: %v", err)
	}
	want := `[2,3,[0,0,0],[0,0,1,1,2,2,1,0,3],0,0]`
	if string(raw) != want {
		t.Errorf("payload = %s, expected %s", raw, want)
	}
}

func TestDeserializeAcceptsStandardAlphabetAndPadding(t *testing.T) {
	res := core.GenerateLevel(core.Medium, 6, 6, core.NewRNG(12))
	token := share.Serialize(res.Level)

	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		t.Fatal(err)
	}

	variants := map[string]string{
		"std padded":   base64.StdEncoding.EncodeToString(raw),
		"std raw":      base64.RawStdEncoding.EncodeToString(raw),
		"url padded":   base64.URLEncoding.EncodeToString(raw),
		"surrounded":   "  " + token + "\n",
		"url unpadded": token,
	}
	for name, v := range variants {
		got, err := share.Deserialize(v)
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if !got.Equal(res.Level) {
			t.Errorf("%s: decoded level differs", name)
		}
	}
}

func TestDeserializeRecomputesMaxNumber(t *testing.T) {
	l, err := share.Deserialize(tokenOf(`[1,3,[],[0,0,1,0,2,2],0,0]`))
	if err != nil {
		t.Fatal(err)
	}
	if l.MaxNumber != 2 {
		t.Errorf("expected MaxNumber 2, got %d", l.MaxNumber)
	}
	if len(l.Walls) != 0 {
		t.Errorf("expected no walls, got %v", l.Walls)
	}
}

func TestDeserializeAcceptsWholeFloats(t *testing.T) {
	l, err := share.Deserialize(tokenOf(`[1.0,2,[],[0,0,1,0,1,2.0],0,0]`))
	if err != nil {
		t.Fatal(err)
	}
	if l.Rows != 1 || l.Cols != 2 {
		t.Errorf("expected 1x2, got %dx%d", l.Rows, l.Cols)
	}
}

func TestDeserializeRejects(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"not base64", "!!!not-a-token!!!"},
		{"dangling base64", "abcde"},
		{"not json", tokenOf("hello world")},
		{"json object", tokenOf(`{"rows":2}`)},
		{"json number", tokenOf(`42`)},
		{"too few fields", tokenOf(`[2,3,[],[0,0,1],0]`)},
		{"too many fields", tokenOf(`[2,3,[],[0,0,1],0,0,7]`)},
		{"rows is string", tokenOf(`["2",3,[],[0,0,1],0,0]`)},
		{"rows is null", tokenOf(`[null,3,[],[0,0,1],0,0]`)},
		{"fractional", tokenOf(`[2.5,3,[],[0,0,1],0,0]`)},
		{"walls not array", tokenOf(`[2,3,7,[0,0,1],0,0]`)},
		{"walls null", tokenOf(`[2,3,null,[0,0,1],0,0]`)},
		{"incomplete wall", tokenOf(`[2,3,[0,0],[0,0,1],0,0]`)},
		{"incomplete checkpoint", tokenOf(`[2,3,[],[0,0,1,1],0,0]`)},
		{"wall flag", tokenOf(`[2,3,[0,0,2],[0,0,1],0,0]`)},
		{"string in walls", tokenOf(`[2,3,[0,"0",1],[0,0,1],0,0]`)},
		{"duplicate checkpoint", tokenOf(`[1,2,[],[0,0,1,0,0,1],0,0]`)},
		{"no checkpoints", tokenOf(`[2,3,[],[],0,0]`)},
		{"zero rows", tokenOf(`[0,3,[],[0,0,1],0,0]`)},
		{"checkpoint off grid", tokenOf(`[2,3,[],[5,5,1],5,5]`)},
		{"label gap", tokenOf(`[2,3,[],[0,0,1,1,1,3],0,0]`)},
		{"start mismatch", tokenOf(`[2,3,[],[0,0,1,1,1,2],1,1]`)},
		{"wall off grid", tokenOf(`[2,3,[0,2,1],[0,0,1],0,0]`)},
		{"huge value", tokenOf(`[1e300,3,[],[0,0,1],0,0]`)},
		{"trailing data", tokenOf(`[1,1,[],[0,0,1],0,0] []`)},
		{"truncated", tokenOf(`[2,3,[0,0,1],[0,0,`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := share.Deserialize(tt.token)
			if err == nil {
				t.Fatalf("expected error, got level %+v", l)
			}
			if !errors.Is(err, share.ErrInvalidToken) {
				t.Errorf("error %v does not wrap ErrInvalidToken", err)
			}
			if diff := cmp.Diff(core.LevelData{}, l); diff != "" {
				t.Errorf("expected zero level on failure (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDeserializeTruncatedTokens(t *testing.T) {
	res := core.GenerateLevel(core.Hard, 6, 6, core.NewRNG(21))
	token := share.Serialize(res.Level)

	// Every strict prefix must fail cleanly.
	for n := 0; n < len(token); n++ {
		if _, err := share.Deserialize(token[:n]); err == nil {
			t.Fatalf("prefix of length %d decoded without error", n)
		}
	}
}

func FuzzDeserialize(f *testing.F) {
	for _, d := range core.AllDifficulties() {
		f.Add(share.Serialize(core.GenerateLevel(d, 4, 5, core.NewRNG(3)).Level))
	}
	f.Add("")
	f.Add(tokenOf(`[1,2,[],[0,0,1,0,1,2],0,0]`))
	f.Add(tokenOf(`[2,3,[0,0,2],[0,0,1],0,0]`))
	f.Add("!!!")

	f.Fuzz(func(t *testing.T, token string) {
		l, err := share.Deserialize(token)
		if err != nil {
			if !errors.Is(err, share.ErrInvalidToken) {
				t.Fatalf("error %v does not wrap ErrInvalidToken", err)
			}
			if diff := cmp.Diff(core.LevelData{}, l); diff != "" {
				t.Fatalf("non-zero level on failure (-want +got):\n%s", diff)
			}
			return
		}

		if err := core.ValidateLevel(l); err != nil {
			t.Fatalf("accepted level is invalid: %v", err)
		}
		again, err := share.Deserialize(share.Serialize(l))
		if err != nil {
			t.Fatalf("re-encoded level rejected: %v", err)
		}
		if diff := cmp.Diff(l, again, wallOrder, cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
		}
	})
}
