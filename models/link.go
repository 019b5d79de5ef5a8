package models

import "time"

// Link categories.
const (
	LinkForum    = "forum"
	LinkResource = "resource"
	LinkCustom   = "custom"
)

// Link is a saved external URL shown in the explorer link list.
type Link struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	Category  string    `json:"category"`
	Icon      string    `json:"icon,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
