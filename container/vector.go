package container

// VectorInitialCapacity is the slot count of a freshly created vector and
// the floor below which shrinking never goes.
const VectorInitialCapacity = 4

// Vector is a growable, contiguous, randomly indexable sequence. Capacity
// doubles when a push finds it full and halves when a deletion leaves it a
// quarter full, amortizing reallocation to O(1) per push.
//
// A vector never owns its elements: Free releases the backing buffer only,
// and any resources the elements reference remain the caller's to release.
// This is deliberately asymmetric with [Hashmap], which can own its values
// through a release callback; keep the two disciplines distinct.
type Vector[T any] struct {
	data    []T
	size    int
	tracker *Tracker
}

// NewVector creates an empty vector with the initial capacity.
func NewVector[T any]() *Vector[T] {
	return &Vector[T]{data: make([]T, VectorInitialCapacity)}
}

// Instrument attaches an allocation tracker. The live backing buffer is
// counted immediately.
func (v *Vector[T]) Instrument(t *Tracker) {
	v.tracker = t
	t.acquire()
}

// Len returns the number of occupied slots. Distinct from Cap, which is
// how many slots are allocated.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the allocated slot count.
func (v *Vector[T]) Cap() int { return len(v.data) }

// Resize reallocates the backing buffer to exactly capacity slots.
// Requests below one slot are ignored. Shrinking below the current size
// drops the trailing elements and clamps the size.
func (v *Vector[T]) Resize(capacity int) {
	if capacity < 1 {
		return
	}

	data := make([]T, capacity)
	n := v.size
	if n > capacity {
		n = capacity
	}
	copy(data, v.data[:n])
	v.data = data
	v.size = n
}

// Push appends data to the end of the vector, doubling the capacity first
// when it is full.
func (v *Vector[T]) Push(data T) {
	if len(v.data) == 0 {
		v.Resize(VectorInitialCapacity)
	} else if v.size == len(v.data) {
		v.Resize(len(v.data) << 1)
	}

	v.data[v.size] = data
	v.size++
}

// At returns the element at index. Out-of-bounds access reports an error
// and returns the zero value rather than panicking.
func (v *Vector[T]) At(index int) T {
	if index < 0 || index >= v.size {
		Logf("container: At index %d out of vector bounds (size %d)", index, v.size)
		var zero T
		return zero
	}
	return v.data[index]
}

// Set overwrites the element at index, with the same bounds contract as At.
func (v *Vector[T]) Set(index int, data T) {
	if index < 0 || index >= v.size {
		Logf("container: Set index %d out of vector bounds (size %d)", index, v.size)
		return
	}
	v.data[index] = data
}

// Front returns the first element, or the zero value for an empty vector.
func (v *Vector[T]) Front() T { return v.At(0) }

// Back returns the last element, or the zero value for an empty vector.
func (v *Vector[T]) Back() T { return v.At(v.size - 1) }

// Delete removes the element at index, shifting every subsequent element
// left by one to close the gap. The vacated trailing slot is zeroed so the
// vector holds no stale reference. When the size falls to a quarter of the
// capacity, the buffer is halved, never below the initial capacity.
func (v *Vector[T]) Delete(index int) {
	if index < 0 || index >= v.size {
		Logf("container: Delete index %d out of vector bounds (size %d)", index, v.size)
		return
	}

	copy(v.data[index:], v.data[index+1:v.size])
	v.size--
	var zero T
	v.data[v.size] = zero

	if v.size > 0 && v.size <= len(v.data)/4 && len(v.data)>>1 >= VectorInitialCapacity {
		v.Resize(len(v.data) >> 1)
	}
}

// Free releases the backing buffer. Elements are not followed; release
// anything they reference before calling this. Safe to call twice.
func (v *Vector[T]) Free() {
	if v.data == nil {
		return
	}
	v.data = nil
	v.size = 0
	v.tracker.release()
}
