package storefront

import (
	"math"
	"sync"
)

// ScrollPercent is the share of the scrollable distance already traversed,
// in [0,100]. Content no taller than the viewport reports 0.
func ScrollPercent(offset, documentHeight, viewportHeight float64) float64 {
	scrollable := documentHeight - viewportHeight
	if !(scrollable > 0) {
		return 0
	}
	p := offset / scrollable * 100
	switch {
	case math.IsNaN(p), p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}

// Viewport is the scrolling surface a ScrollProgress listens to.
type Viewport interface {
	ScrollOffset() float64
	DocumentHeight() float64
	ViewportHeight() float64
	// OnScroll registers fn for scroll events and returns its removal.
	OnScroll(fn func()) (remove func())
}

// ScrollProgress tracks how far a Viewport has been scrolled and publishes
// every recomputed value to onChange.
type ScrollProgress struct {
	vp       Viewport
	onChange func(percent float64)

	mu       sync.Mutex
	progress float64
	remove   func()
}

func NewScrollProgress(vp Viewport, onChange func(percent float64)) *ScrollProgress {
	return &ScrollProgress{vp: vp, onChange: onChange}
}

// Mount subscribes to scroll events and takes an initial reading. Mounting
// twice keeps a single subscription.
func (s *ScrollProgress) Mount() {
	s.mu.Lock()
	if s.remove != nil {
		s.mu.Unlock()
		return
	}
	s.remove = s.vp.OnScroll(s.update)
	s.mu.Unlock()
	s.update()
}

// Unmount drops the scroll subscription.
func (s *ScrollProgress) Unmount() {
	s.mu.Lock()
	remove := s.remove
	s.remove = nil
	s.mu.Unlock()
	if remove != nil {
		remove()
	}
}

func (s *ScrollProgress) update() {
	p := ScrollPercent(s.vp.ScrollOffset(), s.vp.DocumentHeight(), s.vp.ViewportHeight())
	s.mu.Lock()
	s.progress = p
	s.mu.Unlock()
	if s.onChange != nil {
		s.onChange(p)
	}
}

func (s *ScrollProgress) Progress() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progress
}

// Fraction is the bar fill, Progress()/100.
func (s *ScrollProgress) Fraction() float64 { return s.Progress() / 100 }
