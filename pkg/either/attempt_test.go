package either

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttempt_ParsesIdentifiers(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	res := Attempt(func() (uuid.UUID, error) { return uuid.Parse(id.String()) })
	require.True(t, res.IsRight())
	assert.Equal(t, id, res.Get())

	bad := Attempt(func() (uuid.UUID, error) { return uuid.Parse("not-a-uuid") })
	require.True(t, bad.IsLeft())
	err, ok := bad.Get().(error)
	require.True(t, ok)
	assert.Error(t, err)
}

func TestFromTuple(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	l := FromTuple(0, boom)
	assert.True(t, l.IsLeft())
	assert.True(t, errors.Is(l.Get().(error), boom))

	r := FromTuple("v", nil)
	assert.True(t, r.IsRight())
	assert.Equal(t, "v", r.Get())
}

func TestAttempt_ChainsWithGuards(t *testing.T) {
	t.Parallel()

	notNil := func(v any) bool { return v.(uuid.UUID) != uuid.Nil }
	version := func(v any) any { return int(v.(uuid.UUID).Version()) }

	res := Attempt(func() (uuid.UUID, error) { return uuid.Parse(uuid.Nil.String()) }).
		FilterOrElse(notNil, Left[any]("nil id")).
		Map(version)
	assert.Equal(t, "Left(nil id)", res.String())

	res = Attempt(func() (uuid.UUID, error) { return uuid.NewRandom() }).
		FilterOrElse(notNil, Left[any]("nil id")).
		Map(version)
	assert.Equal(t, "Right(4)", res.String())
}
