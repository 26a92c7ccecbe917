package slotcache

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

func snapshotAt(hour int) Snapshot {
	start := time.Date(2025, 3, 29, hour, 0, 0, 0, time.UTC)
	return Snapshot{
		Slot: domain.TimeSlot{
			Start: start,
			End:   start.Add(50 * time.Minute),
			Primary: domain.ProposedBooking{
				AppointmentTypeID: 2,
				Start:             start,
				DurationMinutes:   50,
			},
		},
	}
}

func TestCachePutGet(t *testing.T) {
	cache := New(time.Hour, 10, nil)

	cache.Put("session-1", "slot-a", snapshotAt(12))

	got, ok := cache.Get("session-1", "slot-a")
	require.True(t, ok)
	assert.Equal(t, snapshotAt(12), got)

	_, ok = cache.Get("session-1", "slot-b")
	assert.False(t, ok)
	_, ok = cache.Get("session-2", "slot-a")
	assert.False(t, ok, "snapshots are scoped per session")
}

func TestCacheExpiry(t *testing.T) {
	current := time.Date(2025, 3, 29, 10, 0, 0, 0, time.UTC)
	cache := New(time.Hour, 10, func() time.Time { return current })

	cache.Put("session-1", "slot-a", snapshotAt(12))

	// За минуту до истечения снапшот жив
	current = current.Add(59 * time.Minute)
	_, ok := cache.Get("session-1", "slot-a")
	require.True(t, ok)

	// Обращение продлило idle-период
	current = current.Add(59 * time.Minute)
	_, ok = cache.Get("session-1", "slot-a")
	require.True(t, ok)

	// После часа простоя сессия истекает
	current = current.Add(61 * time.Minute)
	_, ok = cache.Get("session-1", "slot-a")
	assert.False(t, ok)
}

func TestCacheDelete(t *testing.T) {
	cache := New(time.Hour, 10, nil)

	cache.Put("session-1", "slot-a", snapshotAt(12))
	cache.Delete("session-1", "slot-a")

	_, ok := cache.Get("session-1", "slot-a")
	assert.False(t, ok)
}

func TestCacheEviction(t *testing.T) {
	cache := New(time.Hour, 2, nil)

	for i := 0; i < 3; i++ {
		cache.Put(fmt.Sprintf("session-%d", i), "slot-a", snapshotAt(12))
	}

	// Ёмкость ограничена: одна из сессий вытеснена
	alive := 0
	for i := 0; i < 3; i++ {
		if _, ok := cache.Get(fmt.Sprintf("session-%d", i), "slot-a"); ok {
			alive++
		}
	}
	assert.Equal(t, 2, alive)
}
