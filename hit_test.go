package vista

import "testing"

func regionIDs(rs []Region) []string {
	ids := make([]string, len(rs))
	for i, r := range rs {
		ids[i] = r.ID
	}
	return ids
}

func TestRegionContains(t *testing.T) {
	r := Region{ID: "r", X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"left edge", 10, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 9.9, 40, false},
		{"outside right", 110.1, 40, false},
		{"outside top", 50, 19, false},
		{"outside bottom", 50, 71, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(Vec2{tt.x, tt.y}); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitTestOverlapDeclarationOrder(t *testing.T) {
	regions := []Region{
		{ID: "r1", X: 0, Y: 0, Width: 100, Height: 100},
		{ID: "r2", X: 50, Y: 50, Width: 100, Height: 100},
	}
	hits := HitTest(Vec2{60, 60}, regions)
	if got := regionIDs(hits); len(got) != 2 || got[0] != "r1" || got[1] != "r2" {
		t.Fatalf("HitTest = %v, want [r1 r2]", got)
	}
	first, ok := FirstHit(Vec2{60, 60}, regions)
	if !ok || first.ID != "r1" {
		t.Errorf("FirstHit = %q, %v, want r1", first.ID, ok)
	}

	// Declaration order wins even when the later region is smaller.
	regions = []Region{
		{ID: "big", X: 0, Y: 0, Width: 1000, Height: 1000},
		{ID: "small", X: 55, Y: 55, Width: 10, Height: 10},
	}
	if first, _ := FirstHit(Vec2{60, 60}, regions); first.ID != "big" {
		t.Errorf("FirstHit = %q, want big", first.ID)
	}
}

func TestHitTestSingleAndMiss(t *testing.T) {
	regions := []Region{
		{ID: "a", X: 0, Y: 0, Width: 100, Height: 100},
		{ID: "b", X: 200, Y: 0, Width: 100, Height: 100},
	}
	if got := regionIDs(HitTest(Vec2{250, 50}, regions)); len(got) != 1 || got[0] != "b" {
		t.Errorf("HitTest = %v, want [b]", got)
	}
	if got := HitTest(Vec2{150, 50}, regions); len(got) != 0 {
		t.Errorf("HitTest in gap = %v, want empty", regionIDs(got))
	}
	if got := HitTest(Vec2{50, 50}, nil); len(got) != 0 {
		t.Errorf("HitTest with no regions = %v", regionIDs(got))
	}
	if _, ok := FirstHit(Vec2{150, 50}, regions); ok {
		t.Error("FirstHit in gap should miss")
	}
}

func TestHitTestSharedEdge(t *testing.T) {
	regions := []Region{
		{ID: "left", X: 0, Y: 0, Width: 100, Height: 100},
		{ID: "right", X: 100, Y: 0, Width: 100, Height: 100},
	}
	got := regionIDs(HitTest(Vec2{100, 50}, regions))
	if len(got) != 2 || got[0] != "left" || got[1] != "right" {
		t.Errorf("HitTest on shared edge = %v, want [left right]", got)
	}
}

func TestHitTestZeroSizeRegion(t *testing.T) {
	regions := []Region{{ID: "dot", X: 10, Y: 10}}
	if got := HitTest(Vec2{10, 10}, regions); len(got) != 1 {
		t.Error("zero-size region should contain its own point")
	}
}
