package models

// Professional represents a tradesperson available for booking.
type Professional struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	ServiceType  ServiceCategory `json:"serviceType"`
	Experience   int             `json:"experience"` // years in trade
	Rate         float64         `json:"rate"`       // hourly rate
	Rating       float64         `json:"rating"`     // 0-5
	Availability bool            `json:"availability"`
	Location     GeoLocation     `json:"location"`
	AvatarURL    string          `json:"avatarUrl"`
}

// AsParticipant projects the professional into a conversation participant.
func (p Professional) AsParticipant() Participant {
	return Participant{
		Kind:        ParticipantProfessional,
		ID:          p.ID,
		Name:        p.Name,
		ServiceType: p.ServiceType,
		Rating:      p.Rating,
		AvatarURL:   p.AvatarURL,
	}
}
