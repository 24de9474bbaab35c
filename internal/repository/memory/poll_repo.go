package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"polls-api/internal/domain/poll"
)

// PollRepo keeps every poll in a single map guarded by one RWMutex.
// Contention is expected to be low, so a per-record lock is not worth it.
type PollRepo struct {
	mu    sync.RWMutex
	polls map[string]*poll.Poll
}

func NewPollRepo() *PollRepo {
	return &PollRepo{polls: make(map[string]*poll.Poll)}
}

func (r *PollRepo) Create(ctx context.Context, p *poll.Poll) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.polls[p.ID]; exists {
		return fmt.Errorf("poll with id %s already exists", p.ID)
	}

	stored := clonePoll(p)
	if len(stored.Votes) != len(stored.Options) {
		stored.Votes = make([]int64, len(stored.Options))
	}
	stored.Voters = make(map[string]struct{})
	r.polls[p.ID] = stored
	return nil
}

func (r *PollRepo) GetByID(ctx context.Context, id string) (*poll.Poll, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.polls[id]
	if !ok {
		return nil, poll.ErrPollNotFound
	}
	return clonePoll(p), nil
}

// List returns newest polls first.
func (r *PollRepo) List(ctx context.Context) ([]poll.Poll, error) {
	r.mu.RLock()
	res := make([]poll.Poll, 0, len(r.polls))
	for _, p := range r.polls {
		res = append(res, *clonePoll(p))
	}
	r.mu.RUnlock()

	sort.Slice(res, func(i, j int) bool {
		if !res[i].CreatedAt.Equal(res[j].CreatedAt) {
			return res[i].CreatedAt.After(res[j].CreatedAt)
		}
		return res[i].ID > res[j].ID
	})
	return res, nil
}

func (r *PollRepo) RecordVote(ctx context.Context, id string, optionIndex int, voterID string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.polls[id]
	if !ok {
		return "", poll.ErrPollNotFound
	}
	if p.Status == poll.StatusClosed {
		return "", poll.ErrPollClosed
	}
	if optionIndex < 0 || optionIndex >= len(p.Options) {
		return "", poll.ErrInvalidOption
	}
	if _, voted := p.Voters[voterID]; voted {
		return "", poll.ErrAlreadyVoted
	}

	p.Votes[optionIndex]++
	p.Voters[voterID] = struct{}{}
	return p.Options[optionIndex], nil
}

func (r *PollRepo) Close(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.polls[id]
	if !ok {
		return poll.ErrPollNotFound
	}
	if p.Status == poll.StatusClosed {
		return poll.ErrAlreadyClosed
	}
	p.Status = poll.StatusClosed
	return nil
}

func (r *PollRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.polls[id]; !ok {
		return poll.ErrPollNotFound
	}
	delete(r.polls, id)
	return nil
}

// Count reports how many polls are stored.
func (r *PollRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.polls)
}

// Reset drops every poll. Intended for tests.
func (r *PollRepo) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.polls = make(map[string]*poll.Poll)
}

// clonePoll copies everything except the voter set, which never leaves the repo.
func clonePoll(p *poll.Poll) *poll.Poll {
	c := *p
	c.Options = append([]string(nil), p.Options...)
	c.Votes = append([]int64(nil), p.Votes...)
	c.Voters = nil
	return &c
}
