package cellgrid

import "sort"

// sectionMod records an explicit size override for one section. Mods are
// kept sorted by Index, strictly increasing, exactly one per modified
// section (even if its size was set equal to the base size) — spec §3.
type sectionMod struct {
	index  int
	offset int
	size   int
}

// SectionList maps between section indices, pixel offsets and sizes for a
// logically unbounded row or column list, storing only the sections whose
// size has been explicitly overridden from the list's uniform base size.
// All queries are O(log k) and all mutations O(k), where k is the number of
// mods — never the section count. SectionList is not safe for concurrent
// use; per the core's single-threaded cooperative model (spec §5) callers
// serialize their own access.
type SectionList struct {
	baseSize  int
	count     int
	totalSize int
	mods      []sectionMod
}

// NewSectionList creates a list of count uniform sections of baseSize each.
// Negative inputs are clamped to zero.
func NewSectionList(baseSize, count int) *SectionList {
	if baseSize < 0 {
		baseSize = 0
	}
	if count < 0 {
		count = 0
	}
	return &SectionList{baseSize: baseSize, count: count, totalSize: baseSize * count}
}

// BaseSize returns the uniform size given to sections with no mod.
func (l *SectionList) BaseSize() int { return l.baseSize }

// Count returns the number of sections.
func (l *SectionList) Count() int { return l.count }

// TotalSize returns the sum of all section sizes.
func (l *SectionList) TotalSize() int { return l.totalSize }

// modIndexOf returns the index into l.mods of the mod with the given section
// index, or -1 if there is none. Binary search, lower-bound semantics.
func (l *SectionList) modIndexOf(sectionIndex int) int {
	i := sort.Search(len(l.mods), func(i int) bool { return l.mods[i].index >= sectionIndex })
	if i < len(l.mods) && l.mods[i].index == sectionIndex {
		return i
	}
	return -1
}

// precedingMod returns the last mod with index < sectionIndex, or nil.
func (l *SectionList) precedingMod(sectionIndex int) *sectionMod {
	i := sort.Search(len(l.mods), func(i int) bool { return l.mods[i].index >= sectionIndex })
	if i == 0 {
		return nil
	}
	return &l.mods[i-1]
}

// SectionOffset returns the pixel offset at which the section starts, or
// (0, false) if index is out of range.
func (l *SectionList) SectionOffset(index int) (int, bool) {
	if index < 0 || index >= l.count {
		return 0, false
	}
	if mi := l.modIndexOf(index); mi >= 0 {
		return l.mods[mi].offset, true
	}
	if m := l.precedingMod(index); m != nil {
		gap := index - m.index - 1
		return m.offset + m.size + gap*l.baseSize, true
	}
	return index * l.baseSize, true
}

// SectionSize returns the size of the section, or (0, false) if index is
// out of range.
func (l *SectionList) SectionSize(index int) (int, bool) {
	if index < 0 || index >= l.count {
		return 0, false
	}
	if mi := l.modIndexOf(index); mi >= 0 {
		return l.mods[mi].size, true
	}
	return l.baseSize, true
}

// SectionIndex returns the section covering the given pixel offset, or
// (0, false) if offset does not fall within [0, TotalSize()).
func (l *SectionList) SectionIndex(offset int) (int, bool) {
	if offset < 0 || offset >= l.totalSize || l.count == 0 {
		return 0, false
	}
	if len(l.mods) == 0 {
		if l.baseSize <= 0 {
			return 0, false
		}
		idx := offset / l.baseSize
		if idx >= l.count {
			return 0, false
		}
		return idx, true
	}
	i := sort.Search(len(l.mods), func(i int) bool {
		return l.mods[i].offset+l.mods[i].size > offset
	})
	if i < len(l.mods) && offset >= l.mods[i].offset && offset < l.mods[i].offset+l.mods[i].size {
		return l.mods[i].index, true
	}
	// Miss: offset falls in uniform territory before mods[i] (or after the
	// last mod). Use the nearest preceding mod, or plain division if there
	// is none before this offset.
	if i == 0 {
		if l.baseSize <= 0 {
			return 0, false
		}
		idx := offset / l.baseSize
		if idx >= l.count {
			return 0, false
		}
		return idx, true
	}
	m := l.mods[i-1]
	if l.baseSize <= 0 {
		return m.index + 1, true
	}
	idx := m.index + 1 + (offset-(m.offset+m.size))/l.baseSize
	if idx >= l.count {
		return 0, false
	}
	return idx, true
}

// ResizeSection sets the size of one section. newSize is clamped to >= 0.
// Out-of-range index is a no-op. The size delta propagates to every
// subsequent mod's offset and to TotalSize.
func (l *SectionList) ResizeSection(index, newSize int) {
	if index < 0 || index >= l.count {
		return
	}
	if newSize < 0 {
		newSize = 0
	}
	oldSize, _ := l.SectionSize(index)
	if newSize == oldSize {
		if l.modIndexOf(index) >= 0 {
			return
		}
		// Falls through: still need to materialize a mod per spec §3 even
		// when new size equals the current (base) size.
	}
	delta := newSize - oldSize
	offset, _ := l.SectionOffset(index)

	if mi := l.modIndexOf(index); mi >= 0 {
		l.mods[mi].size = newSize
	} else {
		mi = sort.Search(len(l.mods), func(i int) bool { return l.mods[i].index >= index })
		l.mods = append(l.mods, sectionMod{})
		copy(l.mods[mi+1:], l.mods[mi:])
		l.mods[mi] = sectionMod{index: index, offset: offset, size: newSize}
	}
	for i := l.modIndexOf(index) + 1; i < len(l.mods); i++ {
		l.mods[i].offset += delta
	}
	l.totalSize += delta
}

// InsertSections inserts n uniform sections before index. index is clamped
// to [0, Count()].
func (l *SectionList) InsertSections(index, n int) {
	if n <= 0 {
		return
	}
	if index < 0 {
		index = 0
	}
	if index > l.count {
		index = l.count
	}
	shiftOffset := n * l.baseSize
	at := sort.Search(len(l.mods), func(i int) bool { return l.mods[i].index >= index })
	for i := at; i < len(l.mods); i++ {
		l.mods[i].index += n
		l.mods[i].offset += shiftOffset
	}
	l.count += n
	l.totalSize += shiftOffset
}

// RemoveSections removes up to n sections starting at index. n is clamped
// to the remaining count from index.
func (l *SectionList) RemoveSections(index, n int) {
	if index < 0 || index >= l.count || n <= 0 {
		return
	}
	if n > l.count-index {
		n = l.count - index
	}
	removedSpan := n * l.baseSize
	lo := sort.Search(len(l.mods), func(i int) bool { return l.mods[i].index >= index })
	hi := sort.Search(len(l.mods), func(i int) bool { return l.mods[i].index >= index+n })
	for i := lo; i < hi; i++ {
		removedSpan += l.mods[i].size - l.baseSize
	}
	remaining := make([]sectionMod, 0, len(l.mods)-(hi-lo))
	remaining = append(remaining, l.mods[:lo]...)
	for i := hi; i < len(l.mods); i++ {
		m := l.mods[i]
		m.index -= n
		m.offset -= removedSpan
		remaining = append(remaining, m)
	}
	l.mods = remaining
	l.count -= n
	l.totalSize -= removedSpan
}

// Clear resets the list to zero sections.
func (l *SectionList) Clear() {
	l.count = 0
	l.totalSize = 0
	l.mods = nil
}

// SetBaseSize rescales every unmodified section to newSize, leaving
// explicit mods untouched (supplemental to spec.md, grounded on the
// uniform-rescale feature of the original terminal's column/line-density
// modes). Negative values are clamped to zero.
func (l *SectionList) SetBaseSize(newSize int) {
	if newSize < 0 {
		newSize = 0
	}
	if newSize == l.baseSize {
		return
	}
	l.baseSize = newSize

	offset := 0
	prevIndex := -1
	modSizeTotal := 0
	for i := range l.mods {
		gap := l.mods[i].index - prevIndex - 1
		offset += gap * newSize
		l.mods[i].offset = offset
		offset += l.mods[i].size
		modSizeTotal += l.mods[i].size
		prevIndex = l.mods[i].index
	}

	uniformSections := l.count - len(l.mods)
	l.totalSize = uniformSections*newSize + modSizeTotal
}
