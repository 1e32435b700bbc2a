package handler

import (
	"time"

	"github.com/sustainlite/sustainlite-api/internal/core/domain"
	"github.com/sustainlite/sustainlite-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateActivityInput(req createActivityRequest) ports.CreateActivityInput {
	in := ports.CreateActivityInput{
		Category: req.Category,
		Action:   req.Action,
		Unit:     req.Unit,
		Notes:    req.Notes,
	}
	if req.Value != nil {
		in.Value = *req.Value
	}
	return in
}

// --- Service result → HTTP response ---

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.UTC(),
	}
}

func toTokenResponse(t *domain.Token, now time.Time) tokenResponse {
	expiresIn := int64(t.ExpiresAt.Sub(now).Round(time.Second).Seconds())
	if expiresIn < 0 {
		expiresIn = 0
	}
	return tokenResponse{
		AccessToken: t.AccessToken,
		TokenType:   t.TokenType,
		ExpiresIn:   expiresIn,
	}
}

func toActivityResponse(a *domain.Activity) activityResponse {
	return activityResponse{
		ID:       a.ID,
		UserID:   a.UserID,
		Category: a.Category,
		Action:   a.Action,
		Value:    a.Value,
		Unit:     a.Unit,
		Notes:    a.Notes,
		Date:     a.Date.UTC(),
	}
}

func toActivityListResponse(items []*domain.Activity) []activityResponse {
	out := make([]activityResponse, len(items))
	for i, a := range items {
		out[i] = toActivityResponse(a)
	}
	return out
}

func toDashboardResponse(s *domain.DashboardStats) dashboardResponse {
	return dashboardResponse{
		TotalActivities:    s.TotalActivities,
		EnergySaved:        s.EnergySaved,
		WaterSaved:         s.WaterSaved,
		TransportEmissions: s.TransportEmissions,
		WasteReduced:       s.WasteReduced,
		RecentActivities:   toActivityListResponse(s.RecentActivities),
	}
}

func toRecommendationsResponse(recs []domain.Recommendation) recommendationsResponse {
	out := make([]recommendationResponse, len(recs))
	for i, r := range recs {
		out[i] = recommendationResponse{
			Category:    r.Category,
			Title:       r.Title,
			Description: r.Description,
			Priority:    r.Priority,
		}
	}
	return recommendationsResponse{Recommendations: out}
}
