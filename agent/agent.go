// Package agent is the gateway to the remote AI analyst. It turns the
// ledger into a textual digest, sends it to Gemini, and shields the caller
// from every possible remote failure: the worst outcome of an analysis is a
// fixed fallback message, never an error.
package agent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"

	"github.com/abrnc/ledger"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-3-flash-preview"

// Fallback is the text returned to the user when the remote call fails,
// whatever the reason.
const Fallback = "Unable to generate AI analysis at this time."

const instruction = "Analyze the following receipt ledger and provide a short executive summary of business health, focusing on revenue vs pending/cancelled amounts:\n\n"

const systemInstruction = "You are a senior financial analyst. Be concise, professional, and focus on actionable insights."

// ErrNoEntries is returned when an analysis is requested on an empty
// ledger, before any remote call is made.
var ErrNoEntries = errors.New("the ledger has no entries to analyze")

// Digest renders the entries as one line each, the form the analyst prompt
// expects. It fails when there is nothing to digest.
func Digest(entries []ledger.ReceiptEntry) (string, error) {
	if len(entries) == 0 {
		return "", ErrNoEntries
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("Date: %s, Item: %s, Total: %s, Status: %s",
			e.Date, e.ItemDescription, e.TotalAmount, e.Status))
	}
	return strings.Join(lines, "\n"), nil
}

// Analyst asks Gemini for a financial-health summary of the ledger.
type Analyst struct {
	Model string

	// generate performs the remote call. Swappable so tests can run
	// without a client or a network.
	generate func(ctx context.Context, prompt string) (string, error)

	client *genai.Client
}

// NewAnalyst creates an Analyst on top of a Gemini client. The client picks
// its credential up from the environment (GEMINI_API_KEY); the agent never
// sees it.
func NewAnalyst(client *genai.Client) *Analyst {
	a := &Analyst{Model: DefaultModel, client: client}
	a.generate = a.generateContent
	return a
}

func (a *Analyst) generateContent(ctx context.Context, prompt string) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
	}
	resp, err := a.client.Models.GenerateContent(ctx, a.Model, genai.Text(prompt), config)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from model %s", a.Model)
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

// Analyze starts an analysis of the entries and returns the in-flight
// request. It fails synchronously when the ledger is empty; after that the
// request cannot fail, only resolve to the fallback text.
//
// The ledger may keep mutating while the request is in flight; the result
// describes the entries as they were when Analyze was called.
func (a *Analyst) Analyze(ctx context.Context, entries []ledger.ReceiptEntry) (*Analysis, error) {
	digest, err := Digest(entries)
	if err != nil {
		return nil, err
	}

	req := &Analysis{done: make(chan struct{})}
	go func() {
		defer close(req.done)
		text, err := a.generate(ctx, instruction+digest)
		if err != nil {
			log.Printf("analysis failed: %v", err)
			req.text = Fallback
			return
		}
		req.text = text
	}()
	return req, nil
}

// Analysis is one in-flight analysis request.
type Analysis struct {
	done chan struct{}
	text string
}

// Done is closed when the request has resolved.
func (r *Analysis) Done() <-chan struct{} { return r.done }

// Text returns the resolved insight, or the fallback message if the remote
// call failed. It must not be called before Done is closed.
func (r *Analysis) Text() string { return r.text }

// Wait blocks until the request resolves or the context is cancelled.
func (r *Analysis) Wait(ctx context.Context) (string, error) {
	select {
	case <-r.done:
		return r.text, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
