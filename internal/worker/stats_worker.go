package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"polls-api/internal/metrics"
)

type VoteEvent struct {
	PollID      string
	OptionIndex int
	At          time.Time
}

// StatsWorker drains vote events and keeps per-poll running counts for
// logging. It never reads or writes the poll store.
type StatsWorker struct {
	ch     <-chan VoteEvent
	logger *slog.Logger
	every  rate.Sometimes

	mu     sync.Mutex
	total  int64
	byPoll map[string]int64
}

func NewStatsWorker(ch <-chan VoteEvent, logger *slog.Logger, summaryInterval time.Duration) *StatsWorker {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatsWorker{
		ch:     ch,
		logger: logger,
		every:  rate.Sometimes{First: 1, Interval: summaryInterval},
		byPoll: make(map[string]int64),
	}
}

// Run blocks until ctx is done or the channel is closed.
func (w *StatsWorker) Run(ctx context.Context) {
	w.logger.Info("stats worker started")
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("stats worker stopped", "processed", w.Processed())
			return
		case ev, ok := <-w.ch:
			if !ok {
				w.logger.Info("stats worker stopped", "processed", w.Processed())
				return
			}
			w.handle(ev)
		}
	}
}

func (w *StatsWorker) handle(ev VoteEvent) {
	w.mu.Lock()
	w.total++
	w.byPoll[ev.PollID]++
	total, pollVotes, polls := w.total, w.byPoll[ev.PollID], len(w.byPoll)
	w.mu.Unlock()

	metrics.IncVoteEvent()
	w.logger.Debug("vote event",
		"poll_id", ev.PollID,
		"option_index", ev.OptionIndex,
		"poll_votes", pollVotes,
	)
	w.every.Do(func() {
		w.logger.Info("vote stats", "total_events", total, "polls_seen", polls)
	})
}

func (w *StatsWorker) Processed() int64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.total
}
