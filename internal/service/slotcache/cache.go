// Package slotcache хранит снапшоты вычисленных слотов между показом
// пользователю и бронированием: позже пришедший запрос на бронирование
// использует ровно тот интервал и решение о буфере, которые были показаны.
//
// Кэш сессионный и истекающий: снапшоты сессии живут фиксированный idle-период
// и продлеваются при обращении. Это простая истекающая мапа, а не примитив
// синхронизации: одновременные бронирования по пересекающимся снапшотам могут
// гоняться, сериализуемость между запросами не гарантируется.
package slotcache

import (
	"sync"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Snapshot зафиксированный на момент показа слот
type Snapshot struct {
	Slot domain.TimeSlot
}

// Cache сессионный истекающий кэш снапшотов
type Cache struct {
	mu          sync.RWMutex
	now         func() time.Time
	ttl         time.Duration
	maxSessions int
	sessions    map[string]*sessionEntry
}

type sessionEntry struct {
	slots     map[string]Snapshot
	expiresAt time.Time
}

// New создает кэш. now == nil означает time.Now (подменяется в тестах).
func New(ttl time.Duration, maxSessions int, now func() time.Time) *Cache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	if maxSessions <= 0 {
		maxSessions = 1024
	}
	if now == nil {
		now = time.Now
	}
	return &Cache{
		now:         now,
		ttl:         ttl,
		maxSessions: maxSessions,
		sessions:    make(map[string]*sessionEntry),
	}
}

// Put сохраняет снапшот слота в сессии и продлевает её время жизни
func (c *Cache) Put(sessionID, slotID string, snapshot Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cleanupLocked()

	entry, ok := c.sessions[sessionID]
	if !ok {
		if len(c.sessions) >= c.maxSessions {
			c.evictOneLocked()
		}
		entry = &sessionEntry{slots: make(map[string]Snapshot)}
		c.sessions[sessionID] = entry
	}

	entry.slots[slotID] = snapshot
	entry.expiresAt = c.now().Add(c.ttl)
}

// Get возвращает снапшот по сессии и slot id; обращение продлевает сессию
func (c *Cache) Get(sessionID, slotID string) (Snapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.sessions[sessionID]
	if !ok {
		return Snapshot{}, false
	}
	if c.now().After(entry.expiresAt) {
		delete(c.sessions, sessionID)
		return Snapshot{}, false
	}

	snapshot, ok := entry.slots[slotID]
	if !ok {
		return Snapshot{}, false
	}

	entry.expiresAt = c.now().Add(c.ttl)
	return snapshot, true
}

// Delete удаляет снапшот из сессии (после успешного бронирования)
func (c *Cache) Delete(sessionID, slotID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.sessions[sessionID]; ok {
		delete(entry.slots, slotID)
		if len(entry.slots) == 0 {
			delete(c.sessions, sessionID)
		}
	}
}

func (c *Cache) cleanupLocked() {
	now := c.now()
	for id, entry := range c.sessions {
		if now.After(entry.expiresAt) {
			delete(c.sessions, id)
		}
	}
}

func (c *Cache) evictOneLocked() {
	for id := range c.sessions {
		delete(c.sessions, id)
		return
	}
}
