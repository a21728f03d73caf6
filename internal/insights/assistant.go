package insights

import (
	"context"
	"fmt"

	"studysync/internal/session"
	"studysync/internal/ui"
)

// maxCapturePerBreak bounds the number of concepts collected at one break.
const maxCapturePerBreak = 3

// Assistant drives the interactive side of concept learning: capture during
// breaks and reviewing what is due. It satisfies the session runner's
// ConceptCapturer.
type Assistant struct {
	store   *Store
	console *ui.Console
	clock   ui.Clock
}

// NewAssistant creates an Assistant.
func NewAssistant(store *Store, console *ui.Console, clock ui.Clock) *Assistant {
	return &Assistant{store: store, console: console, clock: clock}
}

// Capture prompts for up to three key concepts and appends them to the
// topic's document. An empty entry ends the capture early.
func (a *Assistant) Capture(ctx context.Context, topic string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	a.console.Panel("Capture Key Concepts", "")
	a.console.Warn("What are 1-3 key concepts you learned in this session?")
	a.console.Dim("(Press Enter with empty input when done)")

	var concepts []Concept
	for i := 1; i <= maxCapturePerBreak; i++ {
		content := a.console.AskString(fmt.Sprintf("Concept %d", i), "")
		if content == "" {
			break
		}
		concepts = append(concepts, NewConcept(content, topic, a.clock.Now()))
	}

	if len(concepts) == 0 {
		return nil
	}
	if err := a.store.AppendConcepts(topic, concepts, a.clock.Now()); err != nil {
		return err
	}
	a.console.Success(fmt.Sprintf("Saved %d concepts for future review!", len(concepts)))
	return nil
}

// ReviewDue walks every concept of the topic that is due today, asks whether
// it was remembered, and reschedules it. Returns false when nothing is due.
func (a *Assistant) ReviewDue(topic string) (bool, error) {
	today := a.clock.Now().Format(session.DateLayout)
	ti := a.store.Load(topic)
	due := Due(ti, today)
	if len(due) == 0 {
		return false, nil
	}

	a.console.Panel(fmt.Sprintf("Concept Review for %s", topic), "")
	a.console.Warn(fmt.Sprintf("You have %d concepts due for review.", len(due)))

	for i, concept := range due {
		a.console.Title(fmt.Sprintf("\nConcept %d/%d:", i+1, len(due)))
		a.console.Panel("", concept.Content)

		remembered := a.console.Confirm("Did you remember this concept?", true)
		if err := a.store.ReviewConcept(topic, concept.Content, concept.CreatedAt, remembered, a.clock.Now()); err != nil {
			return true, err
		}
	}

	a.console.Success("\nConcept review completed and saved!")
	return true, nil
}
