package api

import "time"

// Role identifies what an authenticated actor is allowed to act as.
type Role string

const (
	RoleParticipant Role = "Participant"
	RoleLeader      Role = "Leader"
	RoleMember      Role = "Member"
	RoleAdmin       Role = "Admin"
	RoleSuperAdmin  Role = "SuperAdmin"
)

// Identity represents the authenticated actor for the lifetime of a session.
type Identity struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      Role      `json:"role"`
	TeamID    string    `json:"team_id,omitempty"`
	LoginTime time.Time `json:"login_time,omitempty"`
}

// TeamMember is a single member of a team, including the leader.
type TeamMember struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Role     Role   `json:"role"`
}

// Team is a denormalized snapshot of a team: leader, members and the
// selections the team has made. It is never authoritative on the client.
type Team struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Leader           *TeamMember  `json:"leader,omitempty"`
	Members          []TeamMember `json:"members"`
	Theme            string       `json:"theme,omitempty"`
	ProblemStatement string       `json:"problem_statement,omitempty"`
	PaymentVerified  bool         `json:"payment_verified"`
}

// Theme is a hackathon theme participants can select.
type Theme struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
}

// ProblemStatement is a problem statement under a theme.
type ProblemStatement struct {
	ID          string    `json:"id"`
	ThemeID     string    `json:"theme_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	SelectedBy  []string  `json:"selected_by,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

// Result is a declared (or draft) competition result for one team.
type Result struct {
	ID       string  `json:"id"`
	TeamID   string  `json:"team_id"`
	TeamName string  `json:"team_name,omitempty"`
	Rank     int     `json:"rank"`
	Score    float64 `json:"score"`
	Declared bool    `json:"declared"`
}

// Accommodation is a booking for team members staying on site.
type Accommodation struct {
	ID        string    `json:"id"`
	TeamID    string    `json:"team_id"`
	MemberIDs []string  `json:"member_ids"`
	CheckIn   time.Time `json:"check_in"`
	CheckOut  time.Time `json:"check_out"`
	Status    string    `json:"status"`
}

// PaymentStatus describes the verification state of a team's payment.
type PaymentStatus struct {
	TeamID      string    `json:"team_id"`
	Reference   string    `json:"reference,omitempty"`
	Verified    bool      `json:"verified"`
	SubmittedAt time.Time `json:"submitted_at,omitempty"`
}

// SubAdmin is an admin account whose capabilities are granted individually.
type SubAdmin struct {
	ID          string   `json:"id"`
	Email       string   `json:"email"`
	FullName    string   `json:"full_name"`
	Permissions []string `json:"permissions"`
}

// CurrentUserResponse is the payload of the authenticated "get current user"
// endpoint. Its team shape differs by role: when the caller is the leader the
// leader field may be absent and must be derived from the user; when the
// caller is a member the leader is embedded among the team data.
type CurrentUserResponse struct {
	User              Identity           `json:"user"`
	Team              *Team              `json:"team,omitempty"`
	Theme             string             `json:"theme,omitempty"`
	ProblemStatements []ProblemStatement `json:"problem_statements,omitempty"`
}

// LoginResponse is returned by login, OTP verification and token refresh.
type LoginResponse struct {
	Token string   `json:"token"`
	User  Identity `json:"user"`
	Team  *Team    `json:"team,omitempty"`
}

// RegisterRequest creates a new participant account and, optionally, a team.
type RegisterRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone,omitempty"`
	TeamName string `json:"team_name,omitempty"`
}

// PaymentRequest submits a payment reference for verification.
type PaymentRequest struct {
	TeamID    string `json:"team_id"`
	Reference string `json:"reference"`
	Amount    int64  `json:"amount"`
}
