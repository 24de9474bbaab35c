package poll

import (
	"context"
	"time"
)

type Status string

const (
	StatusActive Status = "active"
	StatusClosed Status = "closed"
)

// Poll is the stored record. Voters is only ever used for membership checks
// and is never copied out of the repository.
type Poll struct {
	ID        string
	Question  string
	Options   []string
	Votes     []int64
	Status    Status
	CreatedAt time.Time
	Voters    map[string]struct{}
}

func (p *Poll) TotalVotes() int64 {
	var total int64
	for _, v := range p.Votes {
		total += v
	}
	return total
}

type View struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Options   []string  `json:"options"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type Summary struct {
	ID         string    `json:"id"`
	Question   string    `json:"question"`
	Status     Status    `json:"status"`
	TotalVotes int64     `json:"totalVotes"`
	CreatedAt  time.Time `json:"createdAt"`
}

type OptionResult struct {
	Option     string  `json:"option"`
	Votes      int64   `json:"votes"`
	Percentage float64 `json:"percentage"`
}

type Results struct {
	PollID     string         `json:"pollId"`
	Question   string         `json:"question"`
	Status     Status         `json:"status"`
	TotalVotes int64          `json:"totalVotes"`
	Options    []OptionResult `json:"results"`
	CreatedAt  time.Time      `json:"createdAt"`
}

type Receipt struct {
	PollID string `json:"pollId"`
	Option string `json:"option"`
}

// Repository holds poll records. Implementations must apply RecordVote and
// Close atomically and return copies from reads.
type Repository interface {
	Create(ctx context.Context, p *Poll) error
	GetByID(ctx context.Context, id string) (*Poll, error)
	List(ctx context.Context) ([]Poll, error)
	RecordVote(ctx context.Context, id string, optionIndex int, voterID string) (string, error)
	Close(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
