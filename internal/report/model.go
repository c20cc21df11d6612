// Package report assembles page view models from decoded records.
//
// Everything here is pure: inputs are in-memory snapshots and outputs are
// plain structs ready for JSON encoding.
package report

// State describes how a page section was resolved.
type State string

const (
	StateReady   State = "ready"
	StateEmpty   State = "empty"
	StateFailed  State = "failed"
	StatePending State = "pending"
)

// Section is an independently rendered region of a page.
type Section[T any] struct {
	Title   string `json:"title,omitempty"`
	State   State  `json:"state"`
	Message string `json:"message,omitempty"`
	Items   []T    `json:"items"`
}

// Feed is one collection as delivered by its fetch. Pending means the fetch
// had not settled when the page was assembled.
type Feed[T any] struct {
	Items   []T
	Err     error
	Pending bool
}

func (f Feed[T]) OK() bool { return f.Err == nil && !f.Pending }

func sectionOf[T any](items []T, emptyMessage string) Section[T] {
	if len(items) == 0 {
		return Section[T]{State: StateEmpty, Message: emptyMessage, Items: []T{}}
	}
	return Section[T]{State: StateReady, Items: items}
}

// unavailable is the section for a feed that failed or never settled.
func unavailable[T, U any](feed Feed[U], failedMessage string) Section[T] {
	if feed.Pending {
		return Section[T]{State: StatePending, Items: []T{}}
	}
	return Section[T]{State: StateFailed, Message: failedMessage, Items: []T{}}
}

// Tone picks a pill colour.
type Tone string

const (
	TonePink   Tone = "pink"
	ToneBlue   Tone = "blue"
	ToneYellow Tone = "yellow"
)

type Pill struct {
	Kind string `json:"kind"`
	Tone Tone   `json:"tone"`
	Text string `json:"text"`
}
