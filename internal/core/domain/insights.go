package domain

import (
	"fmt"
	"sort"
)

const (
	// RecentActivityCount is how many activities the dashboard lists.
	RecentActivityCount = 5
	// categoryTrackingThreshold is the per-category count under which a
	// tracking recommendation is emitted.
	categoryTrackingThreshold = 5
	// progressThreshold is the total count above which the general
	// encouragement is appended.
	progressThreshold = 20
)

const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"

	CategoryGeneral = "general"
)

// DashboardStats summarises an owner's full activity history.
type DashboardStats struct {
	TotalActivities    int         `json:"total_activities"`
	EnergySaved        float64     `json:"energy_saved"`
	WaterSaved         float64     `json:"water_saved"`
	TransportEmissions float64     `json:"transport_emissions"`
	WasteReduced       float64     `json:"waste_reduced"`
	RecentActivities   []*Activity `json:"recent_activities"`
}

// Recommendation is a fixed-text suggestion produced by Recommend.
type Recommendation struct {
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// categoryRules lists the per-category recommendations in evaluation order.
var categoryRules = []Recommendation{
	{
		Category:    CategoryEnergy,
		Title:       "Track Your Energy Usage",
		Description: "Start logging your daily energy consumption to identify saving opportunities.",
		Priority:    PriorityHigh,
	},
	{
		Category:    CategoryWater,
		Title:       "Monitor Water Conservation",
		Description: "Track your water usage to reduce waste and save resources.",
		Priority:    PriorityHigh,
	},
	{
		Category:    CategoryTransport,
		Title:       "Log Your Commute",
		Description: "Record your transportation methods to calculate your carbon footprint.",
		Priority:    PriorityMedium,
	},
	{
		Category:    CategoryWaste,
		Title:       "Track Waste Reduction",
		Description: "Monitor your recycling and waste reduction efforts.",
		Priority:    PriorityMedium,
	},
}

// Summarize computes dashboard totals over activities. Categories match by
// exact, case-sensitive equality; anything else only counts towards the total.
// The input slice is not modified.
func Summarize(activities []*Activity) *DashboardStats {
	stats := &DashboardStats{
		TotalActivities:  len(activities),
		RecentActivities: []*Activity{},
	}

	for _, a := range activities {
		switch a.Category {
		case CategoryEnergy:
			stats.EnergySaved += a.Value
		case CategoryWater:
			stats.WaterSaved += a.Value
		case CategoryTransport:
			stats.TransportEmissions += a.Value
		case CategoryWaste:
			stats.WasteReduced += a.Value
		}
	}

	sorted := make([]*Activity, len(activities))
	copy(sorted, activities)
	SortByDateDesc(sorted)
	if len(sorted) > RecentActivityCount {
		sorted = sorted[:RecentActivityCount]
	}
	stats.RecentActivities = append(stats.RecentActivities, sorted...)

	return stats
}

// Recommend evaluates the fixed rule set against the owner's activities.
func Recommend(activities []*Activity) []Recommendation {
	counts := make(map[string]int, len(categoryRules))
	for _, a := range activities {
		counts[a.Category]++
	}

	out := make([]Recommendation, 0, len(categoryRules)+1)
	for _, rule := range categoryRules {
		if counts[rule.Category] < categoryTrackingThreshold {
			out = append(out, rule)
		}
	}

	if total := len(activities); total > progressThreshold {
		out = append(out, Recommendation{
			Category:    CategoryGeneral,
			Title:       "Great Progress!",
			Description: fmt.Sprintf("You've logged %d activities. Keep up the excellent work!", total),
			Priority:    PriorityLow,
		})
	}

	return out
}

// SortByDateDesc orders activities newest first, breaking ties by id.
func SortByDateDesc(activities []*Activity) {
	sort.SliceStable(activities, func(i, j int) bool {
		if !activities[i].Date.Equal(activities[j].Date) {
			return activities[i].Date.After(activities[j].Date)
		}
		return activities[i].ID > activities[j].ID
	})
}
