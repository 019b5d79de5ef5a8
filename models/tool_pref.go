package models

// ToolPref stores per-tool preferences, keyed by the tool name so a repeated
// save overwrites the previous value. Settings is free-form.
type ToolPref struct {
	ID       string            `json:"id"`
	ToolName string            `json:"toolName"`
	Settings map[string]string `json:"settings,omitempty"`
}
