package arith

// numSymbols is the size of the order-0 alphabet: one symbol per byte
// value.
const numSymbols = 256

// rescaleThreshold is the exclusive upper bound on the total frequency:
// Model halves every frequency before an update would bring the total up
// to it, to keep cumulative totals, and their products with the coder's
// 32-bit range, from overflowing.
const rescaleThreshold = 1 << 15

// Model is an adaptive order-0 frequency table shared by Encoder and
// Decoder. It is reinitialized at the start of every encode/decode call,
// never reused across calls, so two independent streams never influence
// each other's statistics.
type Model struct {
	freq  [numSymbols]uint32
	cum   [numSymbols + 1]uint32
	total uint32
}

// NewModel returns a freshly initialized model: every symbol starts with
// frequency 1, so total = 256.
func NewModel() *Model {
	m := &Model{}
	for i := range m.freq {
		m.freq[i] = 1
	}
	m.rebuildCum()
	return m
}

func (m *Model) rebuildCum() {
	m.cum[0] = 0
	for i := 0; i < numSymbols; i++ {
		m.cum[i+1] = m.cum[i] + m.freq[i]
	}
	m.total = m.cum[numSymbols]
}

// Total returns the current total frequency (always in [256, 2^15)).
func (m *Model) Total() uint32 {
	return m.total
}

// CumFreq returns [cum[sym], cum[sym+1]), the half-open range of
// cumulative frequency assigned to sym.
func (m *Model) CumFreq(sym byte) (lo, hi uint32) {
	return m.cum[sym], m.cum[int(sym)+1]
}

// Find returns the unique symbol whose cumulative range contains target,
// i.e. cum[sym] <= target < cum[sym+1]. ok is false if target is outside
// [0, total), which the caller treats as a signal of stream corruption.
func (m *Model) Find(target uint32) (sym byte, ok bool) {
	if target >= m.total {
		return 0, false
	}
	// Linear scan; the alphabet is fixed at 256 symbols so this stays
	// cheap even without a tree structure.
	for s := 0; s < numSymbols; s++ {
		if target < m.cum[s+1] {
			return byte(s), true
		}
	}
	return 0, false
}

// Update folds sym into the frequency table, rescaling first if the
// table is about to overflow the 2^15 budget.
func (m *Model) Update(sym byte) {
	if m.total+1 >= rescaleThreshold {
		m.rescale()
	}
	m.freq[sym]++
	m.total++
	for i := int(sym) + 1; i <= numSymbols; i++ {
		m.cum[i]++
	}
}

// rescale halves every frequency (never below 1) and rebuilds the
// cumulative table, keeping the model's shape while shrinking its total.
func (m *Model) rescale() {
	for i := range m.freq {
		m.freq[i] = (m.freq[i] + 1) / 2
	}
	m.rebuildCum()
}
