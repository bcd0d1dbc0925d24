package either

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"sync"
)

var (
	outputMu sync.RWMutex
	output   io.Writer
)

// SetOutput redirects Log and LogAndContinue to w and returns the previous
// writer. A nil w restores the default, the current os.Stdout.
func SetOutput(w io.Writer) io.Writer {
	outputMu.Lock()
	defer outputMu.Unlock()

	prev := output
	output = w
	if prev == nil {
		return os.Stdout
	}
	return prev
}

func writer() io.Writer {
	outputMu.RLock()
	defer outputMu.RUnlock()

	if output == nil {
		return os.Stdout
	}
	return output
}

// Contains compares the payload with value using ==. The tag is not
// consulted, so Left(5).Contains(5) is true. Payloads whose dynamic type is
// not comparable never match.
func (e *Either[T]) Contains(value T) bool {
	return e.ContainsBy(value, sameValue[T])
}

// ContainsBy is Contains with a caller supplied equality. It is tag-blind
// as well.
func (e *Either[T]) ContainsBy(value T, equal func(a, b T) bool) bool {
	return equal(e.value, value)
}

func sameValue[T any](a, b T) bool {
	x, y := any(a), any(b)
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	tx := reflect.TypeOf(x)
	if tx != reflect.TypeOf(y) || !tx.Comparable() {
		return false
	}
	defer func() { recover() }() // interface fields may still hold uncomparable values
	return x == y
}

// Swap flips the tag of the receiver in place and returns the receiver
// itself. Every holder of the same pointer sees the new tag.
func (e *Either[T]) Swap() *Either[T] {
	e.tag = e.tag.flip()
	return e
}

// ToSlice returns an empty slice for a Left and a single element slice for a
// Right.
func (e *Either[T]) ToSlice() []T {
	if e.IsLeft() {
		return []T{}
	}
	return []T{e.value}
}

// ToSet returns an empty set for a Left and a singleton for a Right.
func ToSet[T comparable](e *Either[T]) map[T]struct{} {
	if e.IsLeft() {
		return map[T]struct{}{}
	}
	return map[T]struct{}{e.value: {}}
}

// String renders the container as Left(<value>) or Right(<value>).
func (e *Either[T]) String() string {
	if e.IsRight() {
		return fmt.Sprintf("Right(%v)", e.value)
	}
	return fmt.Sprintf("Left(%v)", e.value)
}

func (e *Either[T]) ToStr() string {
	return e.String()
}

// Log writes String() as a single line to the diagnostic output.
func (e *Either[T]) Log() {
	_, _ = fmt.Fprintln(writer(), e.String())
}

// LogAndContinue logs like Log and returns the receiver, for inspection in
// the middle of a chain.
func (e *Either[T]) LogAndContinue() *Either[T] {
	e.Log()
	return e
}
