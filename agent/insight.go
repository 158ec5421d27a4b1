package agent

import "sync"

// Insight holds the analysis text currently shown to the user.
//
// Adoption is deliberately last-writer-wins: a result that resolves after
// the ledger changed still replaces whatever was displayed. There is no
// staleness check; the user asked, the user gets the answer.
type Insight struct {
	mu   sync.Mutex
	text string
}

// Adopt replaces the displayed insight with the resolved request's text.
func (i *Insight) Adopt(r *Analysis) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.text = r.Text()
}

// Text returns the currently adopted insight, or "" when none has resolved.
func (i *Insight) Text() string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.text
}
