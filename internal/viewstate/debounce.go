package viewstate

import "time"

const DefaultDebounce = 300 * time.Millisecond

// SearchBox debounces typing inside an event loop that cannot run
// callbacks of its own: every keystroke gets a sequence number, the loop
// schedules a tick for it and only the tick of the last keystroke fires.
type SearchBox struct {
	Delay time.Duration
	text  string
	fired string
	seq   int
}

func NewSearchBox(delay time.Duration) *SearchBox {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &SearchBox{Delay: delay}
}

// Type records the new input and returns the sequence to schedule.
func (s *SearchBox) Type(text string) int {
	s.text = text
	s.seq++
	return s.seq
}

// Fire reports the text to search for when seq is still the latest
// keystroke and the text differs from the last search.
func (s *SearchBox) Fire(seq int) (string, bool) {
	if seq != s.seq || s.text == s.fired {
		return "", false
	}
	s.fired = s.text
	return s.text, true
}

func (s *SearchBox) Text() string {
	return s.text
}
