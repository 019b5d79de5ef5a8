package models

// LogbookSnapshot is the self-describing export of the whole logbook domain.
// It is valid input to the logbook import on a fresh store: list collections
// are restored with replace semantics, the profile with upsert semantics.
type LogbookSnapshot struct {
	ExportDate  string             `json:"exportDate"`
	AppVersion  string             `json:"appVersion"`
	Profile     *Profile           `json:"profile,omitempty"`
	Trips       []Trip             `json:"trips"`
	Maintenance []MaintenanceEntry `json:"maintenance"`
	Fuel        []FuelEntry        `json:"fuel"`
}

// ExplorerSnapshot is the full export of the explorer domain.
type ExplorerSnapshot struct {
	ExportDate        string             `json:"exportDate"`
	AppVersion        string             `json:"appVersion"`
	Restaurants       []Restaurant       `json:"restaurants"`
	Links             []Link             `json:"links"`
	Waypoints         []Waypoint         `json:"waypoints"`
	EmergencyContacts []EmergencyContact `json:"emergencyContacts"`
	ToolPrefs         []ToolPref         `json:"toolsPrefs"`
}
