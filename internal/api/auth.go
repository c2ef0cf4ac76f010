package api

import (
	"context"
	"net/url"
)

// Role is the authorization role carried by a user record.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// User is the authenticated identity as returned by the platform.
// Login and register responses carry only the first four fields;
// /auth/me fills in the rest.
type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	Role      Role   `json:"role"`
	IsActive  bool   `json:"is_active,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	FullName          string `json:"full_name"`
	Grade             string `json:"grade,omitempty"`
	PreferredLanguage string `json:"preferred_language,omitempty"`
}

// TokenResponse is the credential pair issued on login and registration.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	User         User   `json:"user"`
}

// StudentProfile is the extended profile attached to /auth/me.
type StudentProfile struct {
	Grade             string   `json:"grade"`
	PreferredLanguage string   `json:"preferred_language"`
	LearningStyle     string   `json:"learning_style"`
	StudyHoursPerDay  int      `json:"study_hours_per_day"`
	AcademicGoals     string   `json:"academic_goals"`
	Interests         []string `json:"interests"`
	Strengths         []string `json:"strengths"`
	Weaknesses        []string `json:"weaknesses"`
}

// MeResponse is the full current-user record from GET /auth/me.
type MeResponse struct {
	User
	Profile StudentProfile `json:"profile"`
}

// ProfileUpdate is the body of PUT /auth/profile. Zero fields are omitted
// and left unchanged server-side.
type ProfileUpdate struct {
	FullName          string   `json:"full_name,omitempty"`
	Grade             string   `json:"grade,omitempty"`
	PreferredLanguage string   `json:"preferred_language,omitempty"`
	LearningStyle     string   `json:"learning_style,omitempty"`
	StudyHoursPerDay  int      `json:"study_hours_per_day,omitempty"`
	AcademicGoals     string   `json:"academic_goals,omitempty"`
	Interests         []string `json:"interests,omitempty"`
}

// Login exchanges credentials for a token pair.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	var out TokenResponse
	if err := c.post(ctx, "/auth/login", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account and returns its first token pair.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*TokenResponse, error) {
	var out TokenResponse
	if err := c.post(ctx, "/auth/register", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me fetches the current user with profile.
func (c *Client) Me(ctx context.Context) (*MeResponse, error) {
	var out MeResponse
	if err := c.get(ctx, "/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile applies a partial profile update.
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) error {
	return c.put(ctx, "/auth/profile", nil, update, nil)
}

// LogoutRemote tells the platform the session ended. Token invalidation is
// client-side; this call is best-effort bookkeeping.
func (c *Client) LogoutRemote(ctx context.Context) error {
	return c.post(ctx, "/auth/logout", nil, nil, nil)
}

// Refresh exchanges a refresh token for a new access token.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (string, error) {
	q := url.Values{"refresh_token": {refreshToken}}
	var out struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := c.post(ctx, "/auth/refresh", q, nil, &out); err != nil {
		return "", err
	}
	return out.AccessToken, nil
}
