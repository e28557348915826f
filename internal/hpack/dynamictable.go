package hpack

import "hpackd/internal/logging"

// dynamicTable is the per-connection FIFO described by RFC 7541 §2.3.2: a
// bounded circular buffer of HeaderField, addressed externally in the
// combined index space starting at staticTableSize+1 (62), with the most
// recently inserted entry always at that first dynamic index.
//
// Physical storage is a ring of maxSize/entryOverhead slots (at least one),
// set at construction and on a growing Resize. Every entry costs at least
// entryOverhead, so the byte budget evicts before that ring overflows;
// ensureCapacity still doubles the ring should it ever be physically full.
type dynamicTable struct {
	buf           []HeaderField
	cap           int
	headInsertIdx int // next physical slot to write; newest entry is at headInsertIdx-1
	count         int

	size    uint32
	maxSize uint32

	insertOrdinal uint64 // total inserts ever performed; newest entry's ordinal

	// fingerprints map a key to the ordinal of the most recent live
	// insert carrying it. Only ever purged on eviction of the ordinal
	// they currently point at — older, already-overwritten ordinals are
	// never reachable from a lookup, so they never need purging.
	exactFP map[HeaderField]uint64
	nameFP  map[string]uint64

	logger logging.Logger
}

// SetLogger attaches a debug logger; eviction tracing is a no-op until one
// is set, and skipped entirely when the logger's own level is above debug.
func (t *dynamicTable) SetLogger(l logging.Logger) {
	t.logger = l
}

func newDynamicTable(maxSize uint32) *dynamicTable {
	capEntries := int(maxSize / entryOverhead)
	if capEntries < 1 {
		capEntries = 1
	}
	return &dynamicTable{
		buf:     make([]HeaderField, capEntries),
		cap:     capEntries,
		maxSize: maxSize,
		exactFP: make(map[HeaderField]uint64),
		nameFP:  make(map[string]uint64),
	}
}

func properMod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// combinedIndex translates a live insertion ordinal to its current
// combined index. Callers must only pass ordinals obtained from exactFP or
// nameFP, which by construction never hold an evicted ordinal.
func (t *dynamicTable) combinedIndex(ord uint64) int {
	offsetFromNewest := t.insertOrdinal - ord
	return staticTableSize + 1 + int(offsetFromNewest)
}

// Lookup reports the current combined indices of the best exact and
// name-only matches for (name, value). Either return is 0 when absent.
func (t *dynamicTable) Lookup(name, value string) (exact, nameOnly int) {
	if ord, ok := t.exactFP[HeaderField{Name: name, Value: value}]; ok {
		exact = t.combinedIndex(ord)
	}
	if ord, ok := t.nameFP[name]; ok {
		nameOnly = t.combinedIndex(ord)
	}
	return exact, nameOnly
}

// Get returns the dynamic-table entry at combined index
// staticTableSize+1 .. staticTableSize+count.
func (t *dynamicTable) Get(index int) (HeaderField, bool) {
	if index < staticTableSize+1 || index > staticTableSize+t.count {
		return HeaderField{}, false
	}
	offsetFromNewest := index - (staticTableSize + 1)
	offset := properMod(t.headInsertIdx-1-offsetFromNewest, t.cap)
	return t.buf[offset], true
}

// Insert evicts from the tail until the new entry fits, then stores it at
// the head and records its fingerprints. An entry larger than maxSize on
// its own empties the table and is discarded, per RFC 7541 §4.4.
func (t *dynamicTable) Insert(name, value string) {
	f := HeaderField{Name: name, Value: value}
	sz := f.Size()

	for t.count > 0 && t.maxSize-t.size < sz {
		t.evictOne()
	}
	if sz > t.maxSize {
		return
	}

	t.ensureCapacity()

	t.insertOrdinal++
	ord := t.insertOrdinal

	t.buf[t.headInsertIdx] = f
	t.headInsertIdx = (t.headInsertIdx + 1) % t.cap
	t.count++
	t.size += sz

	t.exactFP[f] = ord
	t.nameFP[name] = ord
}

func (t *dynamicTable) evictOne() {
	if t.count == 0 {
		return
	}
	offset := properMod(t.headInsertIdx-t.count, t.cap)
	f := t.buf[offset]
	ord := t.insertOrdinal - uint64(t.count) + 1

	t.size -= f.Size()
	t.count--

	if dl, ok := t.logger.(interface{ IsDebug() bool }); ok && dl.IsDebug() {
		t.logger.Log(logging.LogLevelDebug, "hpack: evicting %q (ordinal %d, %d bytes)", f.Name, ord, f.Size())
	}

	if o, ok := t.exactFP[f]; ok && o == ord {
		delete(t.exactFP, f)
	}
	if o, ok := t.nameFP[f.Name]; ok && o == ord {
		delete(t.nameFP, f.Name)
	}
}

// ensureCapacity doubles the physical ring when it is full, independent of
// maxSize — the byte budget is enforced by Insert's eviction loop, not by
// physical capacity.
func (t *dynamicTable) ensureCapacity() {
	if t.count < t.cap {
		return
	}
	newCap := t.cap * 2
	if newCap == 0 {
		newCap = 1
	}
	t.regrow(newCap)
}

func (t *dynamicTable) regrow(newCap int) {
	newBuf := make([]HeaderField, newCap)
	for i := 0; i < t.count; i++ {
		offset := properMod(t.headInsertIdx-t.count+i, t.cap)
		newBuf[i] = t.buf[offset]
	}
	t.buf = newBuf
	t.cap = newCap
	t.headInsertIdx = t.count % newCap
}

// Resize changes maxSize. Growing reallocates to a capacity derived from
// the new size (never shrinking below the live entry count); shrinking
// evicts from the tail until size fits the new cap.
func (t *dynamicTable) Resize(newMax uint32) {
	if newMax > t.maxSize {
		desired := int(newMax / entryOverhead)
		if desired < t.count {
			desired = t.count
		}
		if desired < 1 {
			desired = 1
		}
		if desired > t.cap {
			t.regrow(desired)
		}
		t.maxSize = newMax
		return
	}

	t.maxSize = newMax
	for t.count > 0 && t.size > t.maxSize {
		t.evictOne()
	}
}
