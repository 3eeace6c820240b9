package ports

// EventLog collects untimestamped event lines for the whole run.
type EventLog interface {
	AddEntry(text string)
}
