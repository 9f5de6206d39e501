// Package queue defines the domain events exchanged over the message
// broker and the publisher/consumer that move them.
package queue

// ClientCreatedEvent is published after a client, its weekly
// availability and its 30-day booking horizon have been committed.
// Consumers get enough context to notify or log without querying the
// primary database.
type ClientCreatedEvent struct {
    EventID    string `json:"event_id"`
    ClientID   uint64 `json:"client_id"`
    Name       string `json:"name"`
    City       string `json:"city,omitempty"`
    Status     string `json:"status"`
    OccurredAt string `json:"occurred_at"`
}

// ClientDeletedEvent is published after a client and all dependent
// records have been removed.
type ClientDeletedEvent struct {
    EventID    string `json:"event_id"`
    ClientID   uint64 `json:"client_id"`
    OccurredAt string `json:"occurred_at"`
}
