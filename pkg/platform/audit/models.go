package audit

import "time"

// EventCategory classifies audit events by their primary purpose so sinks can
// apply different retention.
type EventCategory string

const (
	// CategoryCompliance covers events with regulatory significance, such as
	// an entity being added to the watch list.
	CategoryCompliance EventCategory = "compliance"

	// CategorySecurity covers events relevant to security monitoring.
	CategorySecurity EventCategory = "security"

	// CategoryOperations covers routine activity useful for debugging.
	CategoryOperations EventCategory = "operations"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Category  EventCategory
	Timestamp time.Time
	Action    string
	// Subject identifies what the event is about: the entry ID for accepted
	// entities, the rejected field list otherwise. Raw input never goes here.
	Subject   string
	Decision  string
	Reason    string
	RequestID string
	ClientIP  string
	// Client is the browser family parsed from the User-Agent.
	Client string
}

type AuditEvent string

const (
	EventEntityAdded    AuditEvent = "entity_added"
	EventEntityRejected AuditEvent = "entity_rejected"
	EventUnsafeInput    AuditEvent = "unsafe_input_rejected"
)

var eventCategories = map[AuditEvent]EventCategory{
	EventEntityAdded:    CategoryCompliance,
	EventEntityRejected: CategoryOperations,
	EventUnsafeInput:    CategorySecurity,
}

// Category returns the EventCategory for this audit event.
// Unknown events default to CategoryOperations.
func (e AuditEvent) Category() EventCategory {
	if cat, ok := eventCategories[e]; ok {
		return cat
	}
	return CategoryOperations
}
