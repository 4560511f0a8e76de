package board

import (
	"sync"
	"time"

	"github.com/Shivanand-hulikatti/activity-board/internal/model"
)

// DefaultMessageTTL is how long a status message stays visible.
const DefaultMessageTTL = 5 * time.Second

type stopper interface {
	Stop() bool
}

// StatusLine holds the single visible status message. Every Show replaces
// the message and restarts the hide timer; a timer started for an older
// message never hides a newer one.
type StatusLine struct {
	mu      sync.Mutex
	ttl     time.Duration
	msg     model.StatusMessage
	visible bool
	gen     uint64
	timer   stopper

	afterFunc func(time.Duration, func()) stopper
}

// NewStatusLine returns a StatusLine that hides messages after ttl.
func NewStatusLine(ttl time.Duration) *StatusLine {
	if ttl <= 0 {
		ttl = DefaultMessageTTL
	}
	return &StatusLine{
		ttl: ttl,
		afterFunc: func(d time.Duration, f func()) stopper {
			return time.AfterFunc(d, f)
		},
	}
}

// Show makes msg the visible message.
func (s *StatusLine) Show(text string, severity model.Severity) {
	if severity == "" {
		severity = model.SeverityInfo
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	s.msg = model.StatusMessage{Text: text, Severity: severity}
	s.visible = true
	if s.timer != nil {
		s.timer.Stop()
	}
	gen := s.gen
	s.timer = s.afterFunc(s.ttl, func() { s.hide(gen) })
}

func (s *StatusLine) hide(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return
	}
	s.visible = false
	s.timer = nil
}

// Current returns the last message and whether it is still visible.
func (s *StatusLine) Current() (model.StatusMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.msg, s.visible
}

// TTL returns the auto-hide window.
func (s *StatusLine) TTL() time.Duration {
	return s.ttl
}
