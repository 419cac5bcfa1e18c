package timetable

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/acadhub/campus-resource-backend/internal/schedule"
)

// memoryRepository is an in-memory Repository used by tests.
type memoryRepository struct {
	mu      sync.Mutex
	entries map[string]*Entry
	nextID  int
}

func NewMemoryRepository() Repository {
	return &memoryRepository{
		entries: make(map[string]*Entry),
	}
}

func (r *memoryRepository) conflictLocked(e *Entry, excludeID string) bool {
	candidate := schedule.Range{Start: e.StartTime, End: e.EndTime}
	for _, existing := range r.entries {
		if existing.ID == excludeID {
			continue
		}
		if existing.CourseID != e.CourseID || existing.DayOfWeek != e.DayOfWeek {
			continue
		}
		if schedule.Overlaps(candidate, schedule.Range{Start: existing.StartTime, End: existing.EndTime}) {
			return true
		}
	}
	return false
}

func (r *memoryRepository) Admit(_ context.Context, e *Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.conflictLocked(e, "") {
		return ErrTimeConflict
	}

	r.nextID++
	e.ID = fmt.Sprintf("entry-%d", r.nextID)
	e.CreatedAt = time.Now().UTC()
	e.UpdatedAt = e.CreatedAt

	stored := *e
	r.entries[e.ID] = &stored
	return nil
}

func (r *memoryRepository) AdmitUpdate(_ context.Context, e *Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[e.ID]; !ok {
		return ErrNotFound
	}
	if r.conflictLocked(e, e.ID) {
		return ErrTimeConflict
	}

	e.UpdatedAt = time.Now().UTC()
	stored := *e
	r.entries[e.ID] = &stored
	return nil
}

func (r *memoryRepository) GetByID(_ context.Context, id string) (*Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *e
	return &copied, nil
}

func (r *memoryRepository) List(_ context.Context) ([]*Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := make([]*Entry, 0, len(r.entries))
	for _, e := range r.entries {
		copied := *e
		entries = append(entries, &copied)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].StartTime.Before(entries[j].StartTime)
	})
	return entries, nil
}

func (r *memoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[id]; !ok {
		return ErrNotFound
	}
	delete(r.entries, id)
	return nil
}
