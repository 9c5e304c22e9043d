package font

import "sync"

// coverage is a memory-efficient rune set recording which codepoints a font
// maps. It uses 2 bits per rune: (checked, covered), in 256-rune blocks
// allocated on demand.
//
// coverage is safe for concurrent use.
type coverage struct {
	mu     sync.RWMutex
	blocks map[uint32]*coverageBlock
}

type coverageBlock struct {
	bits [8]uint64
}

func newCoverage() *coverage {
	return &coverage{blocks: make(map[uint32]*coverageBlock)}
}

// get returns (covered, checked).
func (m *coverage) get(r rune) (covered, checked bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	b, ok := m.blocks[uint32(r)>>8]
	if !ok {
		return false, false
	}
	word, pos := bitPosition(r)
	w := b.bits[word]
	return (w>>(pos+1))&1 != 0, (w>>pos)&1 != 0
}

// set records whether r is covered.
func (m *coverage) set(r rune, covered bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := uint32(r) >> 8
	b, ok := m.blocks[idx]
	if !ok {
		b = &coverageBlock{}
		m.blocks[idx] = b
	}
	word, pos := bitPosition(r)
	b.bits[word] |= 1 << pos
	if covered {
		b.bits[word] |= 1 << (pos + 1)
	} else {
		b.bits[word] &^= 1 << (pos + 1)
	}
}

func bitPosition(r rune) (word, pos uint32) {
	bit := (uint32(r) & 0xFF) * 2
	return bit / 64, bit % 64
}
