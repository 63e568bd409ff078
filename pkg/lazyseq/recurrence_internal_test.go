package lazyseq

import (
	"errors"
	"runtime"
	"testing"
	"weak"

	"go.llib.dev/testcase/assert"
)

func TestRecurrence_ownerExpired(t *testing.T) {
	gen := &recurrence[int]{arity: 1, rule: func(w View[int]) int { return w.Get(0) }}

	_, err := gen.Next()
	assert.True(t, errors.Is(err, ErrOwnerExpired))

	_, err = FromGenerator[int](gen).Get(0)
	assert.True(t, errors.Is(err, ErrOwnerExpired), "the generator reads its owner, not the sequence it is wrapped into")
}

func TestRecurrence_ownerCollected(t *testing.T) {
	var gen *recurrence[int]
	func() {
		owner, err := Recurrence([]int{1}, 1, func(w View[int]) int { return w.Get(0) + 1 })
		assert.NoError(t, err)
		gen = owner.gen.(*recurrence[int])
		v, err := owner.Get(3)
		assert.NoError(t, err)
		assert.Equal(t, 4, v)
	}()
	runtime.GC()

	if gen.owner.Value() != nil {
		t.Skip("owner was not collected yet")
	}
	_, err := gen.Next()
	assert.True(t, errors.Is(err, ErrOwnerExpired))
}

func TestRecurrence_windowHoldsTrailingElements(t *testing.T) {
	var last []int
	owner, err := Recurrence([]int{1, 2, 3, 4}, 3, func(w View[int]) int {
		last = last[:0]
		for i := 0; i < w.Len(); i++ {
			last = append(last, w.Get(i))
		}
		return w.Get(0) + w.Get(1) + w.Get(2)
	})
	assert.NoError(t, err)

	v, err := owner.Get(4)
	assert.NoError(t, err)
	assert.Equal(t, 9, v)
	assert.Equal(t, []int{2, 3, 4}, last)
	assert.True(t, weak.Make(owner) == owner.gen.(*recurrence[int]).owner)
}
