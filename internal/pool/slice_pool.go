package pool

import "sync"

var uint32SlicePool = sync.Pool{
	New: func() any { return &[]uint32{} },
}

// GetUint32Slice retrieves a zero-length uint32 slice with at least size capacity.
//
// The caller must call the returned cleanup function once the slice is no
// longer referenced.
//
// Example:
//
//	points, cleanup := pool.GetUint32Slice(2*len(ranges) + 1)
//	defer cleanup()
func GetUint32Slice(size int) ([]uint32, func()) {
	ptr, _ := uint32SlicePool.Get().(*[]uint32)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]uint32, 0, size)
	}
	*ptr = slice

	return slice, func() { uint32SlicePool.Put(ptr) }
}
