package readtext

import "testing"

func TestGrowthStrategyFloorsAtMinBlock(t *testing.T) {
	g := newGrowthStrategy(8, nil) // 8 bytes/row
	got := g.next(0, 1)
	wantMin := minGrowthBytes / 8
	if got < wantMin {
		t.Errorf("next(0,1) = %d, want at least %d rows (8KiB floor)", got, wantMin)
	}
}

func TestGrowthStrategyGeometric(t *testing.T) {
	g := newGrowthStrategy(8, nil)
	current := 10000
	got := g.next(current, current+1)
	want := current + current/4
	if got != want {
		t.Errorf("next(%d, _) = %d, want %d (×5/4)", current, got, want)
	}
}

func TestGrowthStrategyRespectsNeedAtLeast(t *testing.T) {
	g := newGrowthStrategy(8, nil)
	got := g.next(4, 100)
	if got < 100 {
		t.Errorf("next(4, 100) = %d, want at least 100", got)
	}
}
