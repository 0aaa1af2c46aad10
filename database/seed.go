package database

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"prolink/models"
)

// insert adds a record without the simulated network delay. Seeding runs
// at process start, before any caller exists to observe latency.
func (c *Collection) insert(doc any) {
	c.mu.Lock()
	c.docs = append(c.docs, doc)
	c.mu.Unlock()
}

func seedProfessionals() []models.Professional {
	return []models.Professional{
		{ID: "pro1", Name: "Gary the Plumber", ServiceType: models.CategoryPlumber, Experience: 10, Rate: 80, Rating: 4.8, Availability: true, Location: models.GeoLocation{Lat: 48.8580, Lon: 2.3550}, AvatarURL: "https://picsum.photos/100/100?random=1"},
		{ID: "pro2", Name: "Eleanor Electric", ServiceType: models.CategoryElectrician, Experience: 8, Rate: 95, Rating: 4.9, Availability: true, Location: models.GeoLocation{Lat: 48.8555, Lon: 2.3510}, AvatarURL: "https://picsum.photos/100/100?random=2"},
		{ID: "pro3", Name: "Carlos Carpenter", ServiceType: models.CategoryCarpenter, Experience: 15, Rate: 70, Rating: 4.7, Availability: true, Location: models.GeoLocation{Lat: 48.8595, Lon: 2.3500}, AvatarURL: "https://picsum.photos/100/100?random=3"},
		{ID: "pro4", Name: "Penny Painter", ServiceType: models.CategoryPainter, Experience: 5, Rate: 60, Rating: 4.6, Availability: true, Location: models.GeoLocation{Lat: 48.8540, Lon: 2.3580}, AvatarURL: "https://picsum.photos/100/100?random=4"},
		{ID: "pro5", Name: "Mike Mechanic", ServiceType: models.CategoryMechanic, Experience: 12, Rate: 85, Rating: 4.8, Availability: false, Location: models.GeoLocation{Lat: 48.8600, Lon: 2.3490}, AvatarURL: "https://picsum.photos/100/100?random=5"},
		{ID: "pro6", Name: "Connie Cleaner", ServiceType: models.CategoryCleaner, Experience: 3, Rate: 50, Rating: 4.9, Availability: true, Location: models.GeoLocation{Lat: 48.8560, Lon: 2.3480}, AvatarURL: "https://picsum.photos/100/100?random=6"},
	}
}

// Seed loads the demo dataset: six professionals, the reserved assistant
// identity's conversation, one consumer, a booking history covering every
// state, and the label bundles served by the localization boundary.
func (s *Store) Seed() error {
	pros := seedProfessionals()
	proCol, err := s.Resolve(EntityProfessionals)
	if err != nil {
		return err
	}
	for _, p := range pros {
		proCol.insert(p)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	userCol, err := s.Resolve(EntityUsers)
	if err != nil {
		return err
	}
	demoUser := models.User{
		ID:           "user123",
		Name:         "John Doe",
		Email:        "john.doe@example.com",
		PasswordHash: string(hash),
		Phone:        "555-1234",
		Location:     models.GeoLocation{Lat: 48.8566, Lon: 2.3522},
		AvatarURL:    "https://picsum.photos/100/100?random=99",
	}
	userCol.insert(demoUser)

	now := time.Now()
	ended := now.Add(-2*24*time.Hour + 2*time.Hour)
	bookingCol, err := s.Resolve(EntityBookings)
	if err != nil {
		return err
	}
	bookings := []models.Booking{
		{ID: "booking123", UserID: demoUser.ID, ProfessionalID: "pro1", Professional: pros[0], ServiceType: models.CategoryPlumber, Status: models.BookingInProgress, StartTime: now, LiveTracking: true},
		{ID: "booking456", UserID: demoUser.ID, ProfessionalID: "pro2", Professional: pros[1], ServiceType: models.CategoryElectrician, Status: models.BookingConfirmed, StartTime: now.Add(24 * time.Hour), TotalPrice: 95},
		{ID: "booking789", UserID: demoUser.ID, ProfessionalID: "pro4", Professional: pros[3], ServiceType: models.CategoryPainter, Status: models.BookingCompleted, StartTime: now.Add(-2 * 24 * time.Hour), EndTime: &ended, TotalPrice: 120},
		{ID: "booking101", UserID: demoUser.ID, ProfessionalID: "pro3", Professional: pros[2], ServiceType: models.CategoryCarpenter, Status: models.BookingCancelled, StartTime: now.Add(-5 * 24 * time.Hour)},
	}
	for _, b := range bookings {
		bookingCol.insert(b)
	}

	msgCol, err := s.Resolve(EntityMessages)
	if err != nil {
		return err
	}
	messages := []models.Message{
		{ID: "msg1", SenderID: models.AssistantID, ReceiverID: demoUser.ID, Text: "Hello! I am your AI booking assistant. How can I help you today?", Timestamp: now.Add(-10 * time.Second), IsAIMessage: true},
		{ID: "msg2", SenderID: demoUser.ID, ReceiverID: "pro1", Text: "Are you nearby?", Timestamp: now.Add(-3605 * time.Second)},
		{ID: "msg3", SenderID: "pro1", ReceiverID: demoUser.ID, Text: "I'm on my way!", Timestamp: now.Add(-3600 * time.Second)},
	}
	for _, m := range messages {
		msgCol.insert(m)
	}

	convoCol, err := s.Resolve(EntityConversations)
	if err != nil {
		return err
	}
	conversations := []models.Conversation{
		{ID: "convo-ai", OwnerID: demoUser.ID, Participant: models.AssistantParticipant(), LastMessage: "I can help you book a service. What do you need?", Timestamp: now, UnreadCount: 1},
		{ID: "convo1", OwnerID: demoUser.ID, Participant: pros[0].AsParticipant(), LastMessage: "I'm on my way!", Timestamp: now.Add(-time.Hour)},
		{ID: "convo2", OwnerID: demoUser.ID, Participant: pros[3].AsParticipant(), LastMessage: "Thanks for the great review!", Timestamp: now.Add(-2 * 24 * time.Hour)},
	}
	for _, c := range conversations {
		convoCol.insert(c)
	}

	i18nCol, err := s.Resolve(EntityTranslations)
	if err != nil {
		return err
	}
	for _, b := range seedTranslations() {
		i18nCol.insert(b)
	}
	return nil
}

func seedTranslations() []models.TranslationBundle {
	return []models.TranslationBundle{
		{Lang: "en", Labels: map[string]any{
			"nav":      map[string]any{"home": "Home", "bookings": "Bookings", "messages": "Messages", "profile": "Profile"},
			"bookings": map[string]any{"title": "My Bookings", "active": "Active", "completed": "Completed", "trackPrompt": "Tap to track professional"},
			"tracking": map[string]any{"back": "Back", "title": "Tracking Your Pro", "eta": "Estimated Arrival", "minutes": "min"},
			"status":   map[string]any{"Pending": "Pending", "Confirmed": "Confirmed", "InProgress": "In Progress", "Completed": "Completed", "Cancelled": "Cancelled"},
		}},
		{Lang: "es", Labels: map[string]any{
			"nav":      map[string]any{"home": "Inicio", "bookings": "Reservas", "messages": "Mensajes", "profile": "Perfil"},
			"bookings": map[string]any{"title": "Mis Reservas", "active": "Activas", "completed": "Completadas", "trackPrompt": "Toca para seguir al profesional"},
			"tracking": map[string]any{"back": "Volver", "title": "Siguiendo a tu Pro", "eta": "Llegada Estimada", "minutes": "min"},
			"status":   map[string]any{"Pending": "Pendiente", "Confirmed": "Confirmada", "InProgress": "En Progreso", "Completed": "Completada", "Cancelled": "Cancelada"},
		}},
		{Lang: "fr", Labels: map[string]any{
			"nav":      map[string]any{"home": "Accueil", "bookings": "Réservations", "messages": "Messages", "profile": "Profil"},
			"bookings": map[string]any{"title": "Mes Réservations", "active": "Actives", "completed": "Terminées", "trackPrompt": "Appuyez pour suivre le professionnel"},
			"tracking": map[string]any{"back": "Retour", "title": "Suivi de votre Pro", "eta": "Arrivée Prévue", "minutes": "min"},
			"status":   map[string]any{"Pending": "En attente", "Confirmed": "Confirmée", "InProgress": "En cours", "Completed": "Terminée", "Cancelled": "Annulée"},
		}},
	}
}
