package models

// Emergency contact types.
const (
	ContactEmergency  = "emergency"
	ContactAssistance = "assistance"
)

// EmergencyContact is a phone number shown on the explorer emergency screen.
// A fixed set of contacts is seeded on first run and can be extended or
// deleted by the user afterwards.
type EmergencyContact struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Number string `json:"number"`
	Type   string `json:"type"`
}

// DefaultEmergencyContacts returns the contacts seeded into an empty store.
func DefaultEmergencyContacts() []EmergencyContact {
	return []EmergencyContact{
		{ID: "default-1", Name: "Soccorso Stradale BMW", Number: "800 123 456", Type: ContactAssistance},
		{ID: "default-2", Name: "Emergenza", Number: "112", Type: ContactEmergency},
		{ID: "default-3", Name: "ACI Soccorso", Number: "803 116", Type: ContactAssistance},
	}
}
