package mocks

import "github.com/switchergame/switcher-go/internal/model"

// PublishedEvent records one Publish call
type PublishedEvent struct {
	Topic   model.Topic
	GameID  model.GameID
	Payload any
}

// MockPublisher records published events for assertions in tests
type MockPublisher struct {
	Events []PublishedEvent
}

// NewMockPublisher creates a new MockPublisher
func NewMockPublisher() *MockPublisher {
	return &MockPublisher{}
}

// Publish records the event
func (p *MockPublisher) Publish(topic model.Topic, gameID model.GameID, payload any) {
	p.Events = append(p.Events, PublishedEvent{Topic: topic, GameID: gameID, Payload: payload})
}

// ByTopic returns the recorded events for one topic, in publish order
func (p *MockPublisher) ByTopic(topic model.Topic) []PublishedEvent {
	var out []PublishedEvent
	for _, e := range p.Events {
		if e.Topic == topic {
			out = append(out, e)
		}
	}
	return out
}

// Reset clears all recorded events
func (p *MockPublisher) Reset() {
	p.Events = nil
}
