package handler

import "time"

// errorResponse documents the error envelope rendered by the API error handler.
type errorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

// --- Auth ---

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// loginRequest accepts both the OAuth2 password form and a JSON body.
type loginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type userResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// --- Activities ---

type createActivityRequest struct {
	Category string   `json:"category" validate:"required"`
	Action   string   `json:"action"   validate:"required"`
	Value    *float64 `json:"value"    validate:"required"`
	Unit     string   `json:"unit"     validate:"required"`
	Notes    *string  `json:"notes"`
}

type activityResponse struct {
	ID       int64     `json:"id"`
	UserID   int64     `json:"user_id"`
	Category string    `json:"category"`
	Action   string    `json:"action"`
	Value    float64   `json:"value"`
	Unit     string    `json:"unit"`
	Notes    *string   `json:"notes"`
	Date     time.Time `json:"date"`
}

// --- Insights ---

type dashboardResponse struct {
	TotalActivities    int                `json:"total_activities"`
	EnergySaved        float64            `json:"energy_saved"`
	WaterSaved         float64            `json:"water_saved"`
	TransportEmissions float64            `json:"transport_emissions"`
	WasteReduced       float64            `json:"waste_reduced"`
	RecentActivities   []activityResponse `json:"recent_activities"`
}

type recommendationResponse struct {
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

type recommendationsResponse struct {
	Recommendations []recommendationResponse `json:"recommendations"`
}
