package domain

import (
	"testing"
	"time"
)

func activityAt(id int64, category string, value float64, at time.Time) *Activity {
	return &Activity{ID: id, UserID: 1, Category: category, Action: "a", Value: value, Unit: "u", Date: at}
}

func TestSummarize_SumsExactCategories(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	acts := []*Activity{
		activityAt(1, CategoryEnergy, 2.5, base),
		activityAt(2, CategoryEnergy, 1.5, base.Add(time.Minute)),
		activityAt(3, CategoryWater, 10, base.Add(2*time.Minute)),
		activityAt(4, CategoryTransport, -3, base.Add(3*time.Minute)),
		activityAt(5, CategoryWaste, 0.25, base.Add(4*time.Minute)),
		activityAt(6, "Energy", 100, base.Add(5*time.Minute)),
		activityAt(7, "food", 7, base.Add(6*time.Minute)),
	}

	stats := Summarize(acts)

	if stats.TotalActivities != 7 {
		t.Errorf("total: want 7, got %d", stats.TotalActivities)
	}
	if stats.EnergySaved != 4 {
		t.Errorf("energy: want 4, got %v", stats.EnergySaved)
	}
	if stats.WaterSaved != 10 {
		t.Errorf("water: want 10, got %v", stats.WaterSaved)
	}
	if stats.TransportEmissions != -3 {
		t.Errorf("transport: want -3, got %v", stats.TransportEmissions)
	}
	if stats.WasteReduced != 0.25 {
		t.Errorf("waste: want 0.25, got %v", stats.WasteReduced)
	}
}

func TestSummarize_RecentActivitiesNewestFirst(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	var acts []*Activity
	for i := int64(1); i <= 8; i++ {
		acts = append(acts, activityAt(i, CategoryWater, 1, base.Add(time.Duration(i)*time.Hour)))
	}

	stats := Summarize(acts)

	if len(stats.RecentActivities) != RecentActivityCount {
		t.Fatalf("want %d recent, got %d", RecentActivityCount, len(stats.RecentActivities))
	}
	for i, want := range []int64{8, 7, 6, 5, 4} {
		if stats.RecentActivities[i].ID != want {
			t.Errorf("recent[%d]: want id %d, got %d", i, want, stats.RecentActivities[i].ID)
		}
	}
	if acts[0].ID != 1 {
		t.Error("input slice must not be reordered")
	}
}

func TestSummarize_Empty(t *testing.T) {
	stats := Summarize(nil)
	if stats.TotalActivities != 0 || stats.EnergySaved != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.RecentActivities == nil {
		t.Fatal("recent activities must be an empty slice, not nil")
	}
}

func TestRecommend_NoActivities(t *testing.T) {
	recs := Recommend(nil)

	want := []struct{ category, priority string }{
		{CategoryEnergy, PriorityHigh},
		{CategoryWater, PriorityHigh},
		{CategoryTransport, PriorityMedium},
		{CategoryWaste, PriorityMedium},
	}
	if len(recs) != len(want) {
		t.Fatalf("want %d recommendations, got %d", len(want), len(recs))
	}
	for i, w := range want {
		if recs[i].Category != w.category || recs[i].Priority != w.priority {
			t.Errorf("rec[%d]: want %s/%s, got %s/%s", i, w.category, w.priority, recs[i].Category, recs[i].Priority)
		}
	}
}

func TestRecommend_SkipsWellTrackedCategories(t *testing.T) {
	now := time.Now().UTC()
	var acts []*Activity
	for i := int64(0); i < 5; i++ {
		acts = append(acts, activityAt(i, CategoryEnergy, 1, now))
	}
	for i := int64(5); i < 9; i++ {
		acts = append(acts, activityAt(i, CategoryWater, 1, now))
	}

	recs := Recommend(acts)

	if len(recs) != 3 {
		t.Fatalf("want 3 recommendations, got %d: %+v", len(recs), recs)
	}
	if recs[0].Category != CategoryWater {
		t.Errorf("first rec: want water, got %s", recs[0].Category)
	}
}

func TestRecommend_GeneralAppendedAboveTwenty(t *testing.T) {
	now := time.Now().UTC()
	var acts []*Activity
	for i := int64(0); i < 21; i++ {
		acts = append(acts, activityAt(i, "misc", 1, now))
	}

	recs := Recommend(acts)

	if len(recs) != 5 {
		t.Fatalf("want 5 recommendations, got %d", len(recs))
	}
	last := recs[4]
	if last.Category != CategoryGeneral || last.Priority != PriorityLow {
		t.Errorf("unexpected general rec: %+v", last)
	}
	if last.Description != "You've logged 21 activities. Keep up the excellent work!" {
		t.Errorf("unexpected description: %q", last.Description)
	}
}

func TestRecommend_ExactlyTwentyHasNoGeneral(t *testing.T) {
	now := time.Now().UTC()
	var acts []*Activity
	for i := int64(0); i < 20; i++ {
		acts = append(acts, activityAt(i, "misc", 1, now))
	}

	for _, r := range Recommend(acts) {
		if r.Category == CategoryGeneral {
			t.Fatal("general recommendation must require more than 20 activities")
		}
	}
}

func TestValidationError_Message(t *testing.T) {
	err := NewValidationError("unit", "unit is required").Add("action", "action is required")
	if got := err.Error(); got != "action is required; unit is required" {
		t.Fatalf("unexpected message: %q", got)
	}
}
