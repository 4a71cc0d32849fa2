package models

import "time"

// AnalyticsDashboard is the aggregated view served by the analytics
// endpoint. Counters cover the requested period only.
type AnalyticsDashboard struct {
	Period             string         `json:"period"`
	Start              time.Time      `json:"start"`
	End                time.Time      `json:"end"`
	TotalConversations int            `json:"totalConversations"`
	TotalBookings      int            `json:"totalBookings"`
	TotalRevenue       float64        `json:"totalRevenue"`
	ConversionRate     int            `json:"conversionRate"` // percent
	ByContext          map[string]int `json:"byContext"`
	ByService          map[string]int `json:"byService"`
	ByStylist          map[string]int `json:"byStylist"`
}
