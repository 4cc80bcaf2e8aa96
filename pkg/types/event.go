// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// EventStatus places a news event on the upcoming, recent, or archive page.
type EventStatus string

const (
	EventUpcoming EventStatus = "upcoming"
	EventRecent   EventStatus = "recent"
	EventArchived EventStatus = "archived"
)

// Event is one news item or event.
type Event struct {
	ID          string      `json:"id" yaml:"id" mapstructure:"id"`
	Type        string      `json:"type" yaml:"type" mapstructure:"type"`
	Status      EventStatus `json:"status" yaml:"status" mapstructure:"status"`
	Title       string      `json:"title" yaml:"title" mapstructure:"title"`
	Date        string      `json:"date" yaml:"date" mapstructure:"date"`
	EndDate     string      `json:"end_date,omitempty" yaml:"end_date,omitempty" mapstructure:"end_date"`
	Time        string      `json:"time,omitempty" yaml:"time,omitempty" mapstructure:"time"`
	Location    string      `json:"location,omitempty" yaml:"location,omitempty" mapstructure:"location"`
	Icon        string      `json:"icon,omitempty" yaml:"icon,omitempty" mapstructure:"icon"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`
	URL         string      `json:"url,omitempty" yaml:"url,omitempty" mapstructure:"url"`
	Page        string      `json:"page,omitempty" yaml:"page,omitempty" mapstructure:"page"`
	LinkText    string      `json:"link_text,omitempty" yaml:"link_text,omitempty" mapstructure:"link_text"`
}
