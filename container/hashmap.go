package container

// HashmapInitialBaseSize is the smallest base size a hashmap will take, at
// creation or through shrinking. Actual table sizes are the next prime at
// or above the base size; a prime size makes the double-hash probe
// sequence visit every slot before repeating.
const HashmapInitialBaseSize = 11

// Primes feeding the two independent string hashes.
const (
	hashmapPrime1 = 101
	hashmapPrime2 = 173
)

// Load factor thresholds, in percent. Insert grows the table above the
// increase threshold; a confirmed deletion shrinks it below the decrease
// threshold.
const (
	hashmapLoadIncrease = 70
	hashmapLoadDecrease = 10
)

// slotState is the three-state cell marker: never used, vacated by a
// deletion, or holding a record. Tombstones keep probe sequences walking
// past vacated positions and are dropped whenever the table is rebuilt.
type slotState uint8

const (
	slotEmpty slotState = iota
	slotTombstone
	slotOccupied
)

type record[V any] struct {
	key   string
	value V
}

type slot[V any] struct {
	state slotState
	rec   record[V]
}

// Hashmap maps string keys to values using open addressing with double
// hashing over a prime-sized backing array.
//
// When a release callback is supplied, the map owns its values for as long
// as they are in it: replacing and deleting release the outgoing value,
// and Free(true) releases every remaining one. Without a callback, values
// are borrowed and simply dropped. Contrast with [Vector], which never
// owns its elements.
type Hashmap[V any] struct {
	baseSize int
	size     int // actual backing size, always prime
	count    int // live records
	slots    []slot[V]
	release  func(V)
	tracker  *Tracker
}

// NewHashmap creates a map whose actual size is the next prime at or above
// baseSize, never below HashmapInitialBaseSize. release may be nil when
// the map should not own its values.
func NewHashmap[V any](baseSize int, release func(V)) *Hashmap[V] {
	if baseSize < HashmapInitialBaseSize {
		baseSize = HashmapInitialBaseSize
	}
	h := &Hashmap[V]{
		baseSize: baseSize,
		size:     NextPrime(baseSize),
		release:  release,
	}
	h.slots = make([]slot[V], h.size)
	return h
}

// Instrument attaches an allocation tracker, counting the backing array
// and every record currently live.
func (h *Hashmap[V]) Instrument(t *Tracker) {
	h.tracker = t
	t.add(1 + h.count)
}

// Count returns the number of live records.
func (h *Hashmap[V]) Count() int { return h.count }

// Size returns the actual (prime) backing array size.
func (h *Hashmap[V]) Size() int { return h.size }

// BaseSize returns the nominal requested size.
func (h *Hashmap[V]) BaseSize() int { return h.baseSize }

// powMod computes base^exp mod m without overflowing intermediate values.
func powMod(base, exp, m int) int {
	result := 1 % m
	base %= m
	for exp > 0 {
		if exp&1 == 1 {
			result = result * base % m
		}
		base = base * base % m
		exp >>= 1
	}
	return result
}

// hashString is the polynomial string hash: character i contributes
// prime^(L-1-i) * key[i], reduced modulo the table size at every step to
// bound intermediate magnitude.
func hashString(key string, prime, size int) int {
	hash := 0
	length := len(key)
	for i := 0; i < length; i++ {
		hash = (hash + powMod(prime, length-1-i, size)*int(key[i])) % size
	}
	return hash
}

// probe returns the slot index for the given attempt of the double-hash
// sequence. A zero secondary hash is substituted with 1; otherwise the
// sequence would collapse to a single repeated slot.
func (h *Hashmap[V]) probe(key string, attempt int) int {
	hashA := hashString(key, hashmapPrime1, h.size)
	hashB := hashString(key, hashmapPrime2, h.size)
	if hashB == 0 {
		hashB = 1
	}
	return (hashA + attempt*hashB) % h.size
}

// drop releases a value through the release callback when one exists.
func (h *Hashmap[V]) drop(value V) {
	if h.release != nil {
		h.release(value)
	}
}

// Insert adds or updates the record for key. When the load factor is above
// the growth threshold the table first resizes to double its base size.
// Updating an existing key releases the outgoing value and leaves the
// count unchanged. New records land in the first reusable slot (empty or
// tombstone) on the probe walk, but only after the walk has ruled out a
// duplicate further along.
func (h *Hashmap[V]) Insert(key string, value V) {
	if h.count*100/h.size > hashmapLoadIncrease {
		h.Resize(h.baseSize << 1)
	}

	reuse := -1
	for attempt := 0; attempt < h.size; attempt++ {
		index := h.probe(key, attempt)
		s := &h.slots[index]
		switch s.state {
		case slotOccupied:
			if s.rec.key == key {
				h.drop(s.rec.value)
				s.rec.value = value
				return
			}
		case slotTombstone:
			if reuse < 0 {
				reuse = index
			}
		case slotEmpty:
			if reuse < 0 {
				reuse = index
			}
			h.place(reuse, key, value)
			return
		}
	}

	if reuse >= 0 {
		// The probe cycle found no empty slot, only tombstones; the
		// earliest one takes the record.
		h.place(reuse, key, value)
		return
	}

	// Every slot on the cycle is occupied by another key. Resizing at the
	// growth threshold prevents this in practice; grow and retry anyway.
	h.Resize(h.baseSize << 1)
	h.Insert(key, value)
}

func (h *Hashmap[V]) place(index int, key string, value V) {
	h.slots[index] = slot[V]{state: slotOccupied, rec: record[V]{key: key, value: value}}
	h.count++
	h.tracker.acquire()
}

// Search returns the value stored for key. The boolean reports whether the
// key was found; a miss is additionally logged as a notify diagnostic. The
// walk probes past tombstones and stops at the first never-used slot.
func (h *Hashmap[V]) Search(key string) (V, bool) {
	for attempt := 0; attempt < h.size; attempt++ {
		index := h.probe(key, attempt)
		s := &h.slots[index]
		if s.state == slotEmpty {
			break
		}
		if s.state == slotOccupied && s.rec.key == key {
			return s.rec.value, true
		}
	}

	notifyf("container: no value associated to key %q in hashmap", key)
	var zero V
	return zero, false
}

// Delete removes the record for key, leaving a tombstone so probe
// sequences running through the slot stay intact. After a confirmed
// deletion the table shrinks to half its base size when the load factor
// has fallen below the shrink threshold; a miss is logged and changes
// nothing.
func (h *Hashmap[V]) Delete(key string) {
	for attempt := 0; attempt < h.size; attempt++ {
		index := h.probe(key, attempt)
		s := &h.slots[index]
		if s.state == slotEmpty {
			break
		}
		if s.state == slotOccupied && s.rec.key == key {
			h.drop(s.rec.value)
			*s = slot[V]{state: slotTombstone}
			h.count--
			h.tracker.release()

			if h.count*100/h.size < hashmapLoadDecrease {
				h.Resize(h.baseSize >> 1)
			}
			return
		}
	}

	notifyf("container: could not delete record with key %q from hashmap", key)
}

// Resize rebuilds the table at the given base size. Requests below the
// initial base size are ignored. Live records are reinserted one by one so
// their probe positions are recomputed against the new size; records are
// never copied across differently sized tables. Tombstones are dropped,
// and the detached old backing array is discarded without touching the
// reinserted data.
func (h *Hashmap[V]) Resize(baseSize int) {
	if baseSize < HashmapInitialBaseSize {
		return
	}

	fresh := &Hashmap[V]{
		baseSize: baseSize,
		size:     NextPrime(baseSize),
		release:  h.release,
	}
	fresh.slots = make([]slot[V], fresh.size)

	old := h.slots
	for i := range old {
		if old[i].state == slotOccupied {
			fresh.Insert(old[i].rec.key, old[i].rec.value)
		}
	}

	h.baseSize = fresh.baseSize
	h.size = fresh.size
	h.count = fresh.count
	h.slots = fresh.slots
}

// Free tears the table down. When recursive, every live value is released
// through the release callback; a missing callback is reported and the
// value dropped plainly. Records are always discarded regardless of
// recursive, and the backing array goes last. Safe to call twice.
func (h *Hashmap[V]) Free(recursive bool) {
	if h.slots == nil {
		return
	}

	for i := range h.slots {
		s := &h.slots[i]
		if s.state != slotOccupied {
			continue
		}

		if recursive {
			if h.release != nil {
				h.release(s.rec.value)
			} else {
				notifyf("container: no release function was provided for hashmap")
			}
		}

		*s = slot[V]{}
		h.count--
		h.tracker.release()
	}

	h.slots = nil
	h.tracker.release()
}
