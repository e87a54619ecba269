package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFields_Register(t *testing.T) {
	f := NewFields[record]()

	require.NoError(t, f.Register("Name", func(r record) any { return r.Name }))
	assert.ErrorIs(t, f.Register("Name", func(r record) any { return r.Name }), ErrFieldDuplicate)
	assert.ErrorIs(t, f.Register("name", func(r record) any { return r.Name }), ErrFieldDuplicate)
	assert.ErrorIs(t, f.Register(" ", func(r record) any { return r.Name }), ErrFieldNameEmpty)
	assert.ErrorIs(t, f.Register("Price", nil), ErrFieldAccessor)

	assert.Equal(t, []string{"Name"}, f.Names())
}

func TestFields_Lookup(t *testing.T) {
	f := recordFields()

	get, ok := f.Lookup("Price")
	require.True(t, ok)
	assert.Equal(t, 7, get(record{Price: 7}))

	_, ok = f.Lookup("price")
	assert.True(t, ok)

	_, ok = f.Lookup("Colour")
	assert.False(t, ok)
}

func TestFields_MustRegisterPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewFields[record]().MustRegister("", func(r record) any { return nil })
	})
}
