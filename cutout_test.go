package jigsaw

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"honnef.co/go/jigsaw/curve"
)

var testConfigs = []Config{
	{1, 1, "apple"},
	{2, 2, "apple"},
	{5, 5, "apple"},
	{4, 3, "banana"},
	{3, 4, "cherry"},
	{1, 4, "tall"},
	{4, 1, "wide"},
	{7, 6, ""},
}

func mustCutout(t *testing.T, cfg Config) *PieceSet {
	t.Helper()
	set, err := Cutout(cfg)
	if err != nil {
		t.Fatalf("Cutout(%+v): %s", cfg, err)
	}
	return set
}

// startOf returns the absolute point at which p starts drawing the edge in
// slot.
func startOf(p Piece, slot Side) curve.Point {
	pt := p.Move
	for s := Top; s < slot; s++ {
		pt = pt.Translate(p.Edges[s].Delta())
	}
	return pt
}

func TestCutoutDeterministic(t *testing.T) {
	for _, cfg := range testConfigs {
		diff(t, mustCutout(t, cfg), mustCutout(t, cfg))
	}
}

func TestCutoutLayout(t *testing.T) {
	for _, cfg := range testConfigs {
		set := mustCutout(t, cfg)
		if n := len(set.Pieces); n != cfg.PiecesX*cfg.PiecesY {
			t.Fatalf("%+v: got %d pieces, want %d", cfg, n, cfg.PiecesX*cfg.PiecesY)
		}
		for i, p := range set.Pieces {
			if x, y := i%cfg.PiecesX, i/cfg.PiecesX; p.X != x || p.Y != y {
				t.Errorf("%+v: piece %d is at (%d, %d), want (%d, %d)", cfg, i, p.X, p.Y, x, y)
			}
		}
		if set.PiecesX != cfg.PiecesX || set.PiecesY != cfg.PiecesY || set.Seed != cfg.Seed {
			t.Errorf("got set of %d×%d with seed %q, want %+v", set.PiecesX, set.PiecesY, set.Seed, cfg)
		}
	}
}

func TestCutoutSharedEdges(t *testing.T) {
	// Start points are sums of rounded deltas and only agree up to rounding.
	opt := cmpopts.EquateApprox(0, 1e-4)
	for _, cfg := range testConfigs {
		set := mustCutout(t, cfg)
		for _, p := range set.Pieces {
			name := fmt.Sprintf("%+v piece (%d, %d)", cfg, p.X, p.Y)
			if left, ok := set.At(p.X-1, p.Y); ok {
				if d := cmp.Diff(left.Outline(Right), p.Outline(Left)); d != "" {
					t.Errorf("%s: left edge differs from neighbor:\n%s", name, d)
				}
				diff(t, startOf(left, left.Slot(Right)), startOf(p, p.Slot(Left)), opt)
			}
			if top, ok := set.At(p.X, p.Y-1); ok {
				if d := cmp.Diff(top.Outline(Bottom), p.Outline(Top)); d != "" {
					t.Errorf("%s: top edge differs from neighbor:\n%s", name, d)
				}
				diff(t, startOf(top, top.Slot(Bottom)), startOf(p, p.Slot(Top)), opt)
			}
		}
	}
}

func TestCutoutBorders(t *testing.T) {
	for _, cfg := range testConfigs {
		set := mustCutout(t, cfg)
		w, h := 1/float64(cfg.PiecesX), 1/float64(cfg.PiecesY)
		for _, p := range set.Pieces {
			onBorder := [4]bool{
				Top:    p.Y == 0,
				Right:  p.X == cfg.PiecesX-1,
				Bottom: p.Y == cfg.PiecesY-1,
				Left:   p.X == 0,
			}
			for side := Top; side <= Left; side++ {
				e := p.Outline(side)
				if !onBorder[side] {
					if !e.isCurved() {
						t.Errorf("%+v piece (%d, %d): interior %s edge is %v", cfg, p.X, p.Y, side, e)
					}
					continue
				}
				if !e.IsStraight() {
					t.Errorf("%+v piece (%d, %d): border %s edge is %v", cfg, p.X, p.Y, side, e)
					continue
				}
				want := nominalDelta(p, p.Slot(side)).Transform(curve.Scale(w, h))
				diff(t, want, e.Delta())
			}
		}
	}
}

func TestCutoutClosure(t *testing.T) {
	for _, cfg := range testConfigs {
		set := mustCutout(t, cfg)
		for _, p := range set.Pieces {
			var sum curve.Vec2
			for _, e := range p.Edges {
				sum = sum.Add(e.Delta())
			}
			if sum.Hypot() > 1e-4 {
				t.Errorf("%+v piece (%d, %d): outline ends %s away from its start", cfg, p.X, p.Y, sum)
			}
		}
	}
}

func TestCutoutSinglePiece(t *testing.T) {
	set := mustCutout(t, Config{PiecesX: 1, PiecesY: 1, Seed: "apple"})
	want := []Piece{{
		Edges: [4]Edge{
			{LineOf(1, 0)},
			{LineOf(0, 1)},
			{LineOf(-1, 0)},
			{LineOf(0, -1)},
		},
	}}
	diff(t, want, set.Pieces)
}

func TestCutoutMoveFlags(t *testing.T) {
	set := mustCutout(t, Config{PiecesX: 3, PiecesY: 3, Seed: "apple"})
	var got []curve.Point
	for _, p := range set.Pieces {
		got = append(got, p.Move)
	}
	third := 1.0 / 3
	want := []curve.Point{
		curve.Pt(0, 0), curve.Pt(2*third, 0), curve.Pt(2*third, 0),
		curve.Pt(0, 2*third), curve.Pt(2*third, 2*third), curve.Pt(2*third, 2*third),
		curve.Pt(0, 2*third), curve.Pt(2*third, 2*third), curve.Pt(2*third, 2*third),
	}
	diff(t, want, got, cmpopts.EquateApprox(0, 1e-12))
}

func TestCutoutSeed(t *testing.T) {
	apple := mustCutout(t, Config{PiecesX: 2, PiecesY: 2, Seed: "apple"})
	cherry := mustCutout(t, Config{PiecesX: 2, PiecesY: 2, Seed: "cherry"})

	a, _ := apple.At(0, 0)
	c, _ := cherry.At(0, 0)
	if cmp.Equal(a.Outline(Right), c.Outline(Right)) {
		t.Error("different seeds produced the same interior edge")
	}
	diff(t, a.Outline(Top), c.Outline(Top))
	diff(t, a.Outline(Left), c.Outline(Left))
}

func TestCutoutInvalid(t *testing.T) {
	for _, cfg := range []Config{
		{0, 5, "apple"},
		{5, 0, "apple"},
		{-1, -1, ""},
		{1<<62 + 1, 3, "apple"},
		{3, math.MaxInt, "apple"},
	} {
		set, err := Cutout(cfg)
		if !errors.Is(err, ErrInvalidPieces) {
			t.Errorf("Cutout(%+v): got error %v, want ErrInvalidPieces", cfg, err)
		}
		if set != nil {
			t.Errorf("Cutout(%+v): got non-nil set on error", cfg)
		}
	}
}
