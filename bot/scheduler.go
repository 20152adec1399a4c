package bot

import (
	"sync"
	"time"

	"github.com/noasueur88-blip/lounge-senpai-3/logging"
)

// Scheduler owns the bot's background goroutines: the temp-ban expiry
// sweeper and periodic housekeeping.
type Scheduler struct {
	bot  *Bot
	done chan struct{}
	wg   sync.WaitGroup
}

func NewScheduler(b *Bot) *Scheduler {
	return &Scheduler{
		bot:  b,
		done: make(chan struct{}),
	}
}

// Start launches all scheduled tasks.
func (s *Scheduler) Start() {
	s.bot.Sweeper.Start(s.done, &s.wg)

	s.wg.Add(1)
	go s.startHousekeeping()
}

// Stop terminates all scheduled tasks and waits for them to finish.
func (s *Scheduler) Stop() {
	logging.L().Info("stopping scheduler")
	close(s.done)
	s.wg.Wait()
	logging.L().Info("scheduler stopped")
}

func (s *Scheduler) startHousekeeping() {
	defer s.wg.Done()
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.bot.Spam.Prune()
		case <-s.done:
			return
		}
	}
}
