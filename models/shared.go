package models

// GeoLocation is an opaque latitude/longitude pair. No bounds are enforced
// beyond the values being finite; it is never interpreted as a projected
// distance.
type GeoLocation struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// ServiceCategory enumerates the trades a professional can offer.
type ServiceCategory string

const (
	CategoryPlumber     ServiceCategory = "Plumber"
	CategoryElectrician ServiceCategory = "Electrician"
	CategoryCleaner     ServiceCategory = "Cleaner"
	CategoryCarpenter   ServiceCategory = "Carpenter"
	CategoryMechanic    ServiceCategory = "Mechanic"
	CategoryPainter     ServiceCategory = "Painter"
)

// ParticipantKind tags the non-owner side of a conversation. Dispatch on
// the kind, never on an id comparison.
type ParticipantKind string

const (
	ParticipantUser         ParticipantKind = "user"
	ParticipantProfessional ParticipantKind = "professional"
	ParticipantAssistant    ParticipantKind = "assistant"
)

// Participant is the tagged variant identifying who sits on the other side
// of a conversation.
type Participant struct {
	Kind        ParticipantKind `json:"kind"`
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	ServiceType ServiceCategory `json:"serviceType,omitempty"`
	Rating      float64         `json:"rating,omitempty"`
	AvatarURL   string          `json:"avatarUrl,omitempty"`
}

// AssistantID is the reserved identity of the scripted assistant
// participant. It is seeded at startup and never collides with a genuine
// professional.
const AssistantID = "ai-assistant"

// AssistantParticipant returns the fixed assistant identity.
func AssistantParticipant() Participant {
	return Participant{
		Kind:      ParticipantAssistant,
		ID:        AssistantID,
		Name:      "AI Assistant",
		Rating:    5,
		AvatarURL: "https://picsum.photos/100/100?random=100",
	}
}
