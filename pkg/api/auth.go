package api

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserSummary is the public view of a user returned after login.
// It never carries the password hash.
type UserSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// LoginResponse is returned on a successful login.
type LoginResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    UserSummary `json:"user"`
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Message string `json:"message"`
}

// ReportResponse carries the embed URL of the Power BI report.
type ReportResponse struct {
	URL string `json:"url"`
}

// ErrorResponse is the error envelope for every non-2xx response.
type ErrorResponse struct {
	Message string `json:"message"`
}
