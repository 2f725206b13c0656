package arith

import "testing"

func TestNewModelInitialTotal(t *testing.T) {
	m := NewModel()
	if m.Total() != numSymbols {
		t.Fatalf("initial total = %d, want %d", m.Total(), numSymbols)
	}
	for s := 0; s < numSymbols; s++ {
		lo, hi := m.CumFreq(byte(s))
		if hi-lo != 1 {
			t.Fatalf("symbol %d initial freq = %d, want 1", s, hi-lo)
		}
	}
}

func TestUpdateIncreasesFrequency(t *testing.T) {
	m := NewModel()
	lo0, hi0 := m.CumFreq(5)
	m.Update(5)
	lo1, hi1 := m.CumFreq(5)
	if hi1-lo1 != (hi0-lo0)+1 {
		t.Fatalf("frequency did not increase by 1: before=%d after=%d", hi0-lo0, hi1-lo1)
	}
	if m.Total() != numSymbols+1 {
		t.Fatalf("total = %d, want %d", m.Total(), numSymbols+1)
	}
}

func TestTotalNeverSaturates(t *testing.T) {
	m := NewModel()
	for i := 0; i < 1_000_000; i++ {
		m.Update(byte(i % numSymbols))
		if m.Total() < numSymbols || m.Total() >= rescaleThreshold {
			t.Fatalf("total %d escaped [%d, %d) after %d updates", m.Total(), numSymbols, rescaleThreshold, i)
		}
	}
}

func TestRescaleNeverZeroesFrequency(t *testing.T) {
	m := NewModel()
	// Drive one symbol's frequency up until rescale triggers repeatedly.
	for i := 0; i < 70000; i++ {
		m.Update(0)
		for s := 0; s < numSymbols; s++ {
			lo, hi := m.CumFreq(byte(s))
			if hi-lo == 0 {
				t.Fatalf("symbol %d frequency reached 0 after %d updates", s, i)
			}
		}
	}
}

func TestFindMatchesCumFreq(t *testing.T) {
	m := NewModel()
	m.Update(10)
	m.Update(10)
	m.Update(200)
	for s := 0; s < numSymbols; s++ {
		lo, hi := m.CumFreq(byte(s))
		for t2 := lo; t2 < hi; t2++ {
			got, ok := m.Find(t2)
			if !ok || got != byte(s) {
				t.Fatalf("Find(%d) = (%d, %v), want (%d, true)", t2, got, ok, s)
			}
		}
	}
}

func TestFindOutOfRange(t *testing.T) {
	m := NewModel()
	if _, ok := m.Find(m.Total()); ok {
		t.Fatalf("Find(total) should report corruption")
	}
}
