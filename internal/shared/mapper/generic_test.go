package mapper

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID    uint
	Value int
}

type item struct {
	Value int
}

func TestMapSlicePtrWithID(t *testing.T) {
	toItem := func(r *row) (*item, error) {
		if r.Value < 0 {
			return nil, errors.New("negative value")
		}
		return &item{Value: r.Value * 2}, nil
	}
	getID := func(r *row) uint { return r.ID }

	t.Run("maps all elements", func(t *testing.T) {
		rows := []*row{{ID: 1, Value: 1}, {ID: 2, Value: 2}}
		items, err := MapSlicePtrWithID(rows, toItem, getID)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, 2, items[0].Value)
		assert.Equal(t, 4, items[1].Value)
	})

	t.Run("nil input yields nil output", func(t *testing.T) {
		items, err := MapSlicePtrWithID(nil, toItem, getID)
		require.NoError(t, err)
		assert.Nil(t, items)
	})

	t.Run("skips nil elements", func(t *testing.T) {
		rows := []*row{{ID: 1, Value: 1}, nil, {ID: 3, Value: 3}}
		items, err := MapSlicePtrWithID(rows, toItem, getID)
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("error names the failing ID", func(t *testing.T) {
		rows := []*row{{ID: 1, Value: 1}, {ID: 42, Value: -1}}
		_, err := MapSlicePtrWithID(rows, toItem, getID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), strconv.Itoa(42))
	})

	t.Run("skips nil mapped outputs", func(t *testing.T) {
		dropOdd := func(r *row) (*item, error) {
			if r.Value%2 == 1 {
				return nil, nil
			}
			return &item{Value: r.Value}, nil
		}
		rows := []*row{{ID: 1, Value: 1}, {ID: 2, Value: 2}}
		items, err := MapSlicePtrWithID(rows, dropOdd, getID)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, 2, items[0].Value)
	})
}
