package mill

import "testing"

func TestNeighborsRingInternal(t *testing.T) {
	ns := Neighbors(1, 3)
	if len(ns) != 2 {
		t.Fatalf("odd position should have exactly 2 neighbours, got %d: %v", len(ns), ns)
	}
}

func TestNeighborsCrossRingMiddle(t *testing.T) {
	ns := Neighbors(1, 2)
	if len(ns) != 4 {
		t.Fatalf("even middle-ring position should have 4 neighbours (2 ring + 2 cross), got %d: %v", len(ns), ns)
	}
}

func TestNeighborsCrossRingOuter(t *testing.T) {
	ns := Neighbors(2, 0)
	if len(ns) != 3 {
		t.Fatalf("even outer-ring position should have 3 neighbours (2 ring + 1 cross), got %d: %v", len(ns), ns)
	}
}
