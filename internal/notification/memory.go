package notification

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// memoryRepository is an in-memory Repository used by tests.
type memoryRepository struct {
	mu            sync.Mutex
	notifications []*Notification
	nextID        int

	// failFor simulates a storage failure for specific recipients.
	failFor map[string]error
}

func NewMemoryRepository() Repository {
	return &memoryRepository{
		failFor: make(map[string]error),
	}
}

// FailFor makes Create return err for the given recipient.
func (r *memoryRepository) FailFor(recipientID string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failFor[recipientID] = err
}

func (r *memoryRepository) Create(_ context.Context, n *Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err, ok := r.failFor[n.RecipientID]; ok {
		return err
	}

	r.nextID++
	n.ID = fmt.Sprintf("notification-%d", r.nextID)
	n.CreatedAt = time.Now().UTC()

	stored := *n
	r.notifications = append(r.notifications, &stored)
	return nil
}

func (r *memoryRepository) ListByRecipient(_ context.Context, recipientID string, page, pageSize int) ([]*Notification, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*Notification
	for _, n := range r.notifications {
		if n.RecipientID == recipientID {
			copied := *n
			matched = append(matched, &copied)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	return matched, len(matched), nil
}
