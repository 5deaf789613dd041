package store

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID        int
	Name      string
	UpdatedAt time.Time
}

func newTestCollection(seed ...record) *Collection[record] {
	return NewCollection(func(r record) int { return r.ID }, seed...)
}

func TestInsertAssignsMaxPlusOne(t *testing.T) {
	c := newTestCollection(record{ID: 3}, record{ID: 7}, record{ID: 5})

	inserted := c.Insert(func(id int, now time.Time) record {
		return record{ID: id, Name: "new", UpdatedAt: now}
	})

	assert.Equal(t, 8, inserted.ID)
	assert.Equal(t, 4, c.Len())
}

func TestInsertIntoEmptyCollectionStartsAtOne(t *testing.T) {
	c := newTestCollection()

	inserted := c.Insert(func(id int, now time.Time) record {
		return record{ID: id}
	})

	assert.Equal(t, 1, inserted.ID)
}

func TestGetAfterInsertRoundTrips(t *testing.T) {
	c := newTestCollection()
	inserted := c.Insert(func(id int, now time.Time) record {
		return record{ID: id, Name: "alpha", UpdatedAt: now}
	})

	got, ok := c.Get(inserted.ID)
	require.True(t, ok)
	assert.Equal(t, inserted, got)
}

func TestUpdateMissingLeavesCollectionUntouched(t *testing.T) {
	c := newTestCollection(record{ID: 1, Name: "a"}, record{ID: 2, Name: "b"})
	before := c.List()

	_, ok := c.Update(99, func(cur record, now time.Time) record {
		cur.Name = "mutated"
		return cur
	})

	assert.False(t, ok)
	assert.Equal(t, before, c.List())
}

func TestUpdateMergesAndKeepsPosition(t *testing.T) {
	c := newTestCollection(record{ID: 1, Name: "a"}, record{ID: 2, Name: "b"}, record{ID: 3, Name: "c"})

	updated, ok := c.Update(2, func(cur record, now time.Time) record {
		cur.Name = "b2"
		cur.UpdatedAt = now
		return cur
	})

	require.True(t, ok)
	assert.Equal(t, "b2", updated.Name)
	items := c.List()
	assert.Equal(t, []int{1, 2, 3}, []int{items[0].ID, items[1].ID, items[2].ID})
	assert.Equal(t, "b2", items[1].Name)
}

func TestRemoveShrinksByOne(t *testing.T) {
	c := newTestCollection(record{ID: 1}, record{ID: 2}, record{ID: 3})

	require.True(t, c.Remove(2))

	assert.Equal(t, 2, c.Len())
	_, ok := c.Get(2)
	assert.False(t, ok)
	items := c.List()
	assert.Equal(t, []int{1, 3}, []int{items[0].ID, items[1].ID})
}

func TestRemoveMissingReportsFalse(t *testing.T) {
	c := newTestCollection(record{ID: 1})
	assert.False(t, c.Remove(42))
	assert.Equal(t, 1, c.Len())
}

func TestListReturnsIsolatedCopy(t *testing.T) {
	c := newTestCollection(record{ID: 1, Name: "a"})

	list := c.List()
	list[0].Name = "mutated"

	got, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, "a", got.Name)
}

func TestConcurrentInsertsAssignUniqueIDs(t *testing.T) {
	c := newTestCollection()

	const n = 100
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Insert(func(id int, now time.Time) record {
				return record{ID: id}
			})
		}()
	}
	wg.Wait()

	require.Equal(t, n, c.Len())
	seen := make(map[int]bool, n)
	for _, item := range c.List() {
		assert.False(t, seen[item.ID], "duplicate id %d", item.ID)
		seen[item.ID] = true
	}
}
