package api

import "time"

// Filter is a filter list subscription as reported by the control API.
type Filter struct {
	ID          int64      `json:"id"`
	Enabled     bool       `json:"enabled"`
	URL         string     `json:"url"`
	Name        string     `json:"name"`
	RulesCount  int64      `json:"rules_count"`
	LastUpdated *time.Time `json:"last_updated,omitempty"`
	Checksum    string     `json:"checksum,omitempty"`
}

// FilteringStatus is the response of GET /control/filtering/status.
type FilteringStatus struct {
	Enabled          bool     `json:"enabled"`
	Interval         int      `json:"interval"`
	Filters          []Filter `json:"filters"`
	WhitelistFilters []Filter `json:"whitelist_filters"`
	UserRules        []string `json:"user_rules"`
}

// AddURLRequest subscribes to a new list.
type AddURLRequest struct {
	Name      string `json:"name"`
	URL       string `json:"url"`
	Whitelist bool   `json:"whitelist"`
}

// RemoveURLRequest unsubscribes from a list.
type RemoveURLRequest struct {
	URL       string `json:"url"`
	Whitelist bool   `json:"whitelist"`
}

// FilterData is the editable part of a subscription.
type FilterData struct {
	Name    string `json:"name"`
	URL     string `json:"url"`
	Enabled bool   `json:"enabled"`
}

// SetURLRequest updates the subscription currently at URL.
type SetURLRequest struct {
	URL       string     `json:"url"`
	Whitelist bool       `json:"whitelist"`
	Data      FilterData `json:"data"`
}

// RefreshRequest asks the appliance to re-download lists.
type RefreshRequest struct {
	Whitelist bool `json:"whitelist"`
}

// RefreshResponse reports how many lists changed.
type RefreshResponse struct {
	Updated int `json:"updated"`
}
