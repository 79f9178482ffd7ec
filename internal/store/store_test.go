package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carpark-status-backend/internal/model"
)

func TestMemStore_ReplaceAndRead(t *testing.T) {
	s := NewMemStore()
	assert.Empty(t, s.Carparks())

	set := []model.Carpark{
		{ID: "ACB", Address: "ALBERT CENTRE", Available: 42},
		{ID: "ACM", Address: "ALJUNIED CRESCENT"},
	}
	status := LoadStatus{LoadedAt: time.Now().UTC(), StaticCount: 2, LiveRecords: 1}
	s.Replace(set, status)

	got := s.Carparks()
	require.Len(t, got, 2)
	assert.Equal(t, "ACB", got[0].ID)
	assert.Equal(t, status, s.Status())
}

func TestMemStore_GetIsCaseInsensitive(t *testing.T) {
	s := NewMemStore()
	s.Replace([]model.Carpark{{ID: "ACB", Available: 42}}, LoadStatus{})

	cp, ok := s.Get("acb")
	require.True(t, ok)
	assert.Equal(t, 42, cp.Available)

	cp, ok = s.Get(" ACB ")
	require.True(t, ok)
	assert.Equal(t, "ACB", cp.ID)

	_, ok = s.Get("missing")
	assert.False(t, ok)
}

func TestMemStore_CarparksReturnsACopy(t *testing.T) {
	s := NewMemStore()
	s.Replace([]model.Carpark{{ID: "ACB"}}, LoadStatus{})

	first := s.Carparks()
	first[0].ID = "MUTATED"

	second := s.Carparks()
	assert.Equal(t, "ACB", second[0].ID, "callers must not be able to mutate the snapshot")
}

func TestMemStore_ReplaceSwapsWholesale(t *testing.T) {
	s := NewMemStore()
	s.Replace([]model.Carpark{{ID: "OLD"}}, LoadStatus{StaticCount: 1})
	s.Replace([]model.Carpark{{ID: "NEW1"}, {ID: "NEW2"}}, LoadStatus{StaticCount: 2})

	got := s.Carparks()
	require.Len(t, got, 2)
	_, ok := s.Get("OLD")
	assert.False(t, ok)
	assert.Equal(t, 2, s.Status().StaticCount)
}
