package booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/acadhub/campus-resource-backend/internal/schedule"
)

// memoryRepository is an in-memory Repository used by tests. The mutex
// makes Admit a critical section per repository, giving the same
// one-winner guarantee the advisory lock gives the Postgres path.
type memoryRepository struct {
	mu       sync.Mutex
	bookings map[string]*Booking
	nextID   int
}

func NewMemoryRepository() Repository {
	return &memoryRepository{
		bookings: make(map[string]*Booking),
	}
}

func (r *memoryRepository) Admit(_ context.Context, b *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	candidate := schedule.Range{Start: b.StartTime, End: b.EndTime}
	for _, existing := range r.bookings {
		if existing.RoomID != b.RoomID {
			continue
		}
		if schedule.Overlaps(candidate, schedule.Range{Start: existing.StartTime, End: existing.EndTime}) {
			return ErrTimeConflict
		}
	}

	r.nextID++
	b.ID = fmt.Sprintf("booking-%d", r.nextID)
	b.CreatedAt = time.Now().UTC()

	stored := *b
	r.bookings[b.ID] = &stored
	return nil
}

func (r *memoryRepository) GetByID(_ context.Context, id string) (*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *memoryRepository) List(_ context.Context) ([]*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bookings := make([]*Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		copied := *b
		bookings = append(bookings, &copied)
	}
	return bookings, nil
}

func (r *memoryRepository) Delete(_ context.Context, id string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return "", ErrNotFound
	}
	delete(r.bookings, id)
	return b.RoomID, nil
}
