package utils

import (
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()

	s.Update(1, 100, 500*time.Millisecond)
	if s.AveragePopulation != 100 {
		t.Fatalf("first average = %v, want 100", s.AveragePopulation)
	}
	if s.GenerationsPerSecond != 2 {
		t.Fatalf("rate = %v, want 2", s.GenerationsPerSecond)
	}

	s.Update(2, 200, 0)
	if s.AveragePopulation != 110 {
		t.Fatalf("moving average = %v, want 110", s.AveragePopulation)
	}
	if s.GenerationsPerSecond != 2 {
		t.Fatal("zero duration should keep the previous rate")
	}
	if s.PeakPopulation != 200 || s.TotalGenerations != 2 {
		t.Fatalf("peak = %d, total = %d", s.PeakPopulation, s.TotalGenerations)
	}
}
