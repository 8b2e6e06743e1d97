package collection

import "fmt"

// CheckIndex validates an element index against [0, size).
func CheckIndex(index, size int) error {
	if index < 0 || index >= size {
		return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, size)
	}
	return nil
}

// CheckPosition validates an insertion position against [0, size].
func CheckPosition(index, size int) error {
	if index < 0 || index > size {
		return fmt.Errorf("%w: position %d, size %d", ErrIndexOutOfRange, index, size)
	}
	return nil
}

// CheckRange validates a half-open range [from, to) against size.
func CheckRange(from, to, size int) error {
	if from < 0 || to > size || from > to {
		return fmt.Errorf("%w: range [%d, %d), size %d", ErrIndexOutOfRange, from, to, size)
	}
	return nil
}

// CheckCopy validates copying count elements into a destination of dstLen
// starting at start. A nil destination is reported by the caller passing
// isNil.
func CheckCopy(isNil bool, dstLen, start, count int) error {
	if isNil {
		return fmt.Errorf("%w: destination is nil", ErrInvalidArgument)
	}
	if dstLen-start < count {
		return fmt.Errorf("%w: destination of length %d cannot hold %d elements from index %d",
			ErrInvalidArgument, dstLen, count, start)
	}
	if start < 0 || start >= dstLen {
		return fmt.Errorf("%w: start index %d outside destination of length %d",
			ErrInvalidArgument, start, dstLen)
	}
	return nil
}

// CheckCapacity validates an initial capacity.
func CheckCapacity(capacity int) error {
	if capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidArgument, capacity)
	}
	return nil
}
