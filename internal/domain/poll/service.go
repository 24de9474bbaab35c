package poll

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrPollNotFound     = errors.New("poll not found")
	ErrPollClosed       = errors.New("poll is closed")
	ErrAlreadyClosed    = errors.New("poll is already closed")
	ErrAlreadyVoted     = errors.New("voter already voted in this poll")
	ErrInvalidOption    = errors.New("invalid option index")
	ErrQuestionRequired = errors.New("question is required")
	ErrTooFewOptions    = errors.New("poll must have at least 2 options")
	ErrVoterRequired    = errors.New("voter identity is required")
)

const minOptions = 2

type Service struct {
	repo  Repository
	now   func() time.Time
	newID func() (string, error)
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:  repo,
		now:   time.Now,
		newID: newPollID,
	}
}

// newPollID returns a UUIDv7: a millisecond timestamp followed by random bits.
func newPollID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func (s *Service) Create(ctx context.Context, question string, options []string) (View, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return View{}, ErrQuestionRequired
	}
	if len(options) < minOptions {
		return View{}, ErrTooFewOptions
	}

	cleaned := make([]string, 0, len(options))
	for _, o := range options {
		if o = strings.TrimSpace(o); o != "" {
			cleaned = append(cleaned, o)
		}
	}
	if len(cleaned) < minOptions {
		return View{}, ErrTooFewOptions
	}

	id, err := s.newID()
	if err != nil {
		return View{}, err
	}

	p := &Poll{
		ID:        id,
		Question:  question,
		Options:   cleaned,
		Votes:     make([]int64, len(cleaned)),
		Status:    StatusActive,
		CreatedAt: s.now().UTC(),
		Voters:    make(map[string]struct{}),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return View{}, err
	}
	return toView(p), nil
}

func (s *Service) Get(ctx context.Context, id string) (View, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return View{}, err
	}
	return toView(p), nil
}

func (s *Service) Vote(ctx context.Context, id string, optionIndex int, voterID string) (Receipt, error) {
	voterID = strings.TrimSpace(voterID)
	if voterID == "" {
		return Receipt{}, ErrVoterRequired
	}
	option, err := s.repo.RecordVote(ctx, id, optionIndex, voterID)
	if err != nil {
		return Receipt{}, err
	}
	return Receipt{PollID: id, Option: option}, nil
}

func (s *Service) Results(ctx context.Context, id string) (Results, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Results{}, err
	}

	total := p.TotalVotes()
	res := Results{
		PollID:     p.ID,
		Question:   p.Question,
		Status:     p.Status,
		TotalVotes: total,
		Options:    make([]OptionResult, len(p.Options)),
		CreatedAt:  p.CreatedAt,
	}
	for i, text := range p.Options {
		res.Options[i] = OptionResult{
			Option:     text,
			Votes:      p.Votes[i],
			Percentage: percentage(p.Votes[i], total),
		}
	}
	return res, nil
}

func (s *Service) Close(ctx context.Context, id string) error {
	return s.repo.Close(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Summary, error) {
	polls, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]Summary, 0, len(polls))
	for i := range polls {
		p := &polls[i]
		res = append(res, Summary{
			ID:         p.ID,
			Question:   p.Question,
			Status:     p.Status,
			TotalVotes: p.TotalVotes(),
			CreatedAt:  p.CreatedAt,
		})
	}
	return res, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// percentage is rounded to one decimal place.
func percentage(votes, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(votes)*1000/float64(total)) / 10
}

func toView(p *Poll) View {
	opts := make([]string, len(p.Options))
	copy(opts, p.Options)
	return View{
		ID:        p.ID,
		Question:  p.Question,
		Options:   opts,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
	}
}
