package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   int
	Name string
}

func seeded(t *testing.T, ids ...int) *Collection[record] {
	t.Helper()
	c := NewCollection[record](len(ids))
	for _, id := range ids {
		require.NoError(t, c.Add(id, record{ID: id, Name: "r"}))
	}
	return c
}

func TestCollection_AddAndFind(t *testing.T) {
	c := NewCollection[record](2)

	require.NoError(t, c.Add(7, record{ID: 7, Name: "seven"}))

	got, err := c.Find(7)
	require.NoError(t, err)
	assert.Equal(t, record{ID: 7, Name: "seven"}, got)
	assert.True(t, c.Contains(7))
	assert.Equal(t, 1, c.Len())
}

func TestCollection_AddDuplicate(t *testing.T) {
	c := seeded(t, 1, 2)
	before := c.List()

	err := c.Add(1, record{ID: 1, Name: "other"})

	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.Equal(t, before, c.List())
}

func TestCollection_FindMissing(t *testing.T) {
	c := seeded(t, 1)

	_, err := c.Find(2)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCollection_Replace(t *testing.T) {
	testCases := []struct {
		name     string
		id       int
		wantErr  error
		expected []record
	}{
		{
			name:    "overwrites present record in place",
			id:      2,
			wantErr: nil,
			expected: []record{
				{ID: 1, Name: "r"}, {ID: 2, Name: "changed"}, {ID: 3, Name: "r"},
			},
		},
		{
			name:    "rejects absent record",
			id:      9,
			wantErr: ErrNotFound,
			expected: []record{
				{ID: 1, Name: "r"}, {ID: 2, Name: "r"}, {ID: 3, Name: "r"},
			},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			c := seeded(t, 1, 2, 3)

			err := c.Replace(tt.id, record{ID: tt.id, Name: "changed"})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, c.List())
		})
	}
}

func TestCollection_DeleteKeepsOrder(t *testing.T) {
	c := seeded(t, 4, 1, 3, 2)

	require.NoError(t, c.Delete(1))

	ids := []int{}
	for _, r := range c.List() {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []int{4, 3, 2}, ids)

	// index positions must follow the shifted entries
	got, err := c.Find(2)
	require.NoError(t, err)
	assert.Equal(t, 2, got.ID)
	assert.False(t, c.Contains(1))
}

func TestCollection_DeleteMissing(t *testing.T) {
	c := seeded(t, 1, 2)
	before := c.List()

	err := c.Delete(3)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, before, c.List())
}

func TestCollection_ReAddAfterDelete(t *testing.T) {
	c := seeded(t, 1, 2)
	require.NoError(t, c.Delete(1))

	require.NoError(t, c.Add(1, record{ID: 1, Name: "again"}))

	list := c.List()
	require.Len(t, list, 2)
	assert.Equal(t, 2, list[0].ID)
	assert.Equal(t, "again", list[1].Name)
}

func TestCollection_Any(t *testing.T) {
	c := NewCollection[record](2)
	require.NoError(t, c.Add(1, record{ID: 1, Name: "Bread"}))

	assert.True(t, c.Any(func(r record) bool { return r.Name == "Bread" }))
	assert.False(t, c.Any(func(r record) bool { return r.Name == "Soup" }))
}

func TestCollection_EmptyList(t *testing.T) {
	c := NewCollection[record](0)

	list := c.List()

	assert.NotNil(t, list)
	assert.Empty(t, list)
}
