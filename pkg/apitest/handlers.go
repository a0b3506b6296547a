package apitest

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/devpulse/hackhub/pkg/api"
	"github.com/devpulse/hackhub/pkg/httputil"
)

type identityKey struct{}

func withIdentity(ctx context.Context, identity api.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

func identityFrom(ctx context.Context) (api.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(api.Identity)
	return identity, ok
}

// --- auth ---

func (s *Server) handleSendOTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	if !httputil.RequireNonEmpty(w, "email", req.Email) {
		return
	}
	s.mu.Lock()
	if _, ok := s.otps[req.Email]; !ok {
		s.otps[req.Email] = "123456"
	}
	s.mu.Unlock()
	s.writeMessage(w, "otp sent")
}

func (s *Server) handleVerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
		Code  string `json:"code"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	s.mu.Lock()
	expected, ok := s.otps[req.Email]
	s.mu.Unlock()
	if !ok || expected != req.Code {
		s.writeError(w, http.StatusUnauthorized, "invalid passcode")
		return
	}
	identity := s.findOrCreateUser(req.Email)
	token := s.issueToken(identity)
	s.writeJSON(w, http.StatusOK, api.LoginResponse{Token: token, User: identity, Team: s.teamOf(identity)})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req api.RegisterRequest
	if !s.decode(w, r, &req) {
		return
	}
	if !httputil.RequireNonEmpty(w, "email", req.Email, "full name", req.FullName) {
		return
	}
	identity := api.Identity{
		ID:       uuid.NewString(),
		Email:    req.Email,
		FullName: req.FullName,
		Role:     api.RoleParticipant,
	}
	if req.TeamName != "" {
		team := api.Team{
			ID:   uuid.NewString(),
			Name: req.TeamName,
			Leader: &api.TeamMember{
				ID:       identity.ID,
				FullName: identity.FullName,
				Email:    identity.Email,
				Role:     api.RoleLeader,
			},
		}
		identity.Role = api.RoleLeader
		identity.TeamID = team.ID
		s.mu.Lock()
		s.teams[team.ID] = &team
		s.mu.Unlock()
	}
	token := s.issueToken(identity)
	s.writeJSON(w, http.StatusCreated, api.LoginResponse{Token: token, User: identity, Team: s.teamOf(identity)})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	identity, ok := s.userByEmail(req.Email)
	if !ok || req.Password == "" {
		s.writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	token := s.issueToken(identity)
	s.writeJSON(w, http.StatusOK, api.LoginResponse{Token: token, User: identity, Team: s.teamOf(identity)})
}

func (s *Server) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	identity, ok := s.userByEmail(req.Email)
	if !ok || req.Password == "" {
		s.writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	s.mu.Lock()
	_, isSubAdmin := s.permissions[identity.Email]
	s.mu.Unlock()
	if identity.Role != api.RoleAdmin && identity.Role != api.RoleSuperAdmin && !isSubAdmin {
		s.writeError(w, http.StatusForbidden, "not an admin account")
		return
	}
	token := s.issueToken(identity)
	s.writeJSON(w, http.StatusOK, api.LoginResponse{Token: token, User: identity})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if token, ok := httputil.BearerToken(r); ok {
		s.mu.Lock()
		delete(s.tokens, token)
		s.mu.Unlock()
	}
	s.writeMessage(w, "logged out")
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	identity, _ := identityFrom(r.Context())
	token := s.issueToken(identity)
	s.writeJSON(w, http.StatusOK, api.LoginResponse{Token: token, User: identity})
}

func (s *Server) handleSubmitPayment(w http.ResponseWriter, r *http.Request) {
	var req api.PaymentRequest
	if !s.decode(w, r, &req) {
		return
	}
	identity, _ := identityFrom(r.Context())
	teamID := req.TeamID
	if teamID == "" {
		teamID = identity.TeamID
	}
	s.mu.Lock()
	s.payments[teamID] = &api.PaymentStatus{
		TeamID:      teamID,
		Reference:   req.Reference,
		SubmittedAt: time.Now(),
	}
	s.mu.Unlock()
	s.writeJSON(w, http.StatusAccepted, map[string]string{"message": "payment submitted"})
}

func (s *Server) handlePaymentStatus(w http.ResponseWriter, r *http.Request) {
	identity, _ := identityFrom(r.Context())
	s.mu.Lock()
	status, ok := s.payments[identity.TeamID]
	s.mu.Unlock()
	if !ok {
		httputil.WriteNotFound(w, "no payment on record")
		return
	}
	s.writeJSON(w, http.StatusOK, status)
}

// --- user ---

func (s *Server) handleCurrentUser(w http.ResponseWriter, r *http.Request) {
	identity, _ := identityFrom(r.Context())
	resp := api.CurrentUserResponse{User: identity, Team: s.teamOf(identity)}
	// Leaders get their team without the redundant leader field; members get
	// the leader embedded. Mirrors the production payload shapes.
	if resp.Team != nil && identity.Role == api.RoleLeader {
		team := *resp.Team
		team.Leader = nil
		resp.Team = &team
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req api.Identity
	if !s.decode(w, r, &req) {
		return
	}
	identity, _ := identityFrom(r.Context())
	s.mu.Lock()
	stored := s.users[identity.ID]
	if req.FullName != "" {
		stored.FullName = req.FullName
	}
	s.users[identity.ID] = stored
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, stored)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	s.mu.Lock()
	identity, ok := s.users[id]
	s.mu.Unlock()
	if !ok {
		httputil.WriteNotFound(w, "user not found")
		return
	}
	s.writeJSON(w, http.StatusOK, identity)
}

func (s *Server) handleAddTeamMember(w http.ResponseWriter, r *http.Request) {
	var member api.TeamMember
	if !s.decode(w, r, &member) {
		return
	}
	identity, _ := identityFrom(r.Context())
	if identity.Role != api.RoleLeader {
		s.writeError(w, http.StatusForbidden, "only the team leader can add members")
		return
	}
	member.ID = uuid.NewString()
	member.Role = api.RoleMember
	s.mu.Lock()
	if team, ok := s.teams[identity.TeamID]; ok {
		team.Members = append(team.Members, member)
	}
	s.mu.Unlock()
	s.writeJSON(w, http.StatusCreated, member)
}

func (s *Server) handleUpdateTeamMember(w http.ResponseWriter, r *http.Request) {
	var member api.TeamMember
	if !s.decode(w, r, &member) {
		return
	}
	id := mux.Vars(r)["id"]
	identity, _ := identityFrom(r.Context())
	s.mu.Lock()
	defer s.mu.Unlock()
	team, ok := s.teams[identity.TeamID]
	if !ok {
		httputil.WriteNotFound(w, "no team")
		return
	}
	for i := range team.Members {
		if team.Members[i].ID == id {
			member.ID = id
			member.Role = api.RoleMember
			team.Members[i] = member
			s.writeJSON(w, http.StatusOK, member)
			return
		}
	}
	httputil.WriteNotFound(w, "member not found")
}

func (s *Server) handleRemoveTeamMember(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	identity, _ := identityFrom(r.Context())
	s.mu.Lock()
	defer s.mu.Unlock()
	team, ok := s.teams[identity.TeamID]
	if !ok {
		httputil.WriteNotFound(w, "no team")
		return
	}
	for i := range team.Members {
		if team.Members[i].ID == id {
			team.Members = append(team.Members[:i], team.Members[i+1:]...)
			s.writeMessage(w, "member removed")
			return
		}
	}
	httputil.WriteNotFound(w, "member not found")
}

func (s *Server) handleAcceptTerms(w http.ResponseWriter, r *http.Request) {
	s.writeMessage(w, "terms accepted")
}

// --- themes ---

func (s *Server) handleListThemes(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := make([]api.Theme, 0, len(s.themes))
	for _, theme := range s.themes {
		out = append(out, *theme)
	}
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	theme, ok := s.themes[mux.Vars(r)["id"]]
	s.mu.Unlock()
	if !ok {
		httputil.WriteNotFound(w, "theme not found")
		return
	}
	s.writeJSON(w, http.StatusOK, theme)
}

func (s *Server) handleSelectTheme(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	identity, _ := identityFrom(r.Context())
	s.mu.Lock()
	defer s.mu.Unlock()
	theme, ok := s.themes[id]
	if !ok {
		httputil.WriteNotFound(w, "theme not found")
		return
	}
	if !theme.Active {
		s.writeError(w, http.StatusBadRequest, "theme is not active")
		return
	}
	if team, ok := s.teams[identity.TeamID]; ok {
		team.Theme = theme.Name
	}
	s.writeMessage(w, "theme selected")
}

func (s *Server) handleCreateTheme(w http.ResponseWriter, r *http.Request) {
	var theme api.Theme
	if !s.decode(w, r, &theme) {
		return
	}
	if !httputil.RequireNonEmpty(w, "theme name", theme.Name) {
		return
	}
	theme.ID = uuid.NewString()
	theme.CreatedAt = time.Now()
	s.mu.Lock()
	s.themes[theme.ID] = &theme
	s.mu.Unlock()
	s.writeJSON(w, http.StatusCreated, theme)
}

func (s *Server) handleUpdateTheme(w http.ResponseWriter, r *http.Request) {
	var update api.Theme
	if !s.decode(w, r, &update) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	theme, ok := s.themes[mux.Vars(r)["id"]]
	if !ok {
		httputil.WriteNotFound(w, "theme not found")
		return
	}
	theme.Name = update.Name
	theme.Description = update.Description
	theme.UpdatedAt = time.Now()
	s.writeJSON(w, http.StatusOK, theme)
}

func (s *Server) handleDeleteTheme(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	s.mu.Lock()
	_, ok := s.themes[id]
	delete(s.themes, id)
	s.mu.Unlock()
	if !ok {
		httputil.WriteNotFound(w, "theme not found")
		return
	}
	s.writeMessage(w, "theme deleted")
}

func (s *Server) handleActivateTheme(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	theme, ok := s.themes[mux.Vars(r)["id"]]
	if !ok {
		httputil.WriteNotFound(w, "theme not found")
		return
	}
	theme.Active = true
	s.writeJSON(w, http.StatusOK, theme)
}

func (s *Server) handleDeactivateAllThemes(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	for _, theme := range s.themes {
		theme.Active = false
	}
	s.mu.Unlock()
	s.writeMessage(w, "all themes deactivated")
}

// --- problems ---

func (s *Server) handleListProblems(w http.ResponseWriter, r *http.Request) {
	themeID := r.URL.Query().Get("theme_id")
	s.mu.Lock()
	out := make([]api.ProblemStatement, 0, len(s.problems))
	for _, problem := range s.problems {
		if themeID != "" && problem.ThemeID != themeID {
			continue
		}
		out = append(out, *problem)
	}
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetProblem(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	problem, ok := s.problems[mux.Vars(r)["id"]]
	s.mu.Unlock()
	if !ok {
		httputil.WriteNotFound(w, "problem statement not found")
		return
	}
	s.writeJSON(w, http.StatusOK, problem)
}

func (s *Server) handleSelectProblem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TeamID string `json:"team_id"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	problem, ok := s.problems[mux.Vars(r)["id"]]
	if !ok {
		httputil.WriteNotFound(w, "problem statement not found")
		return
	}
	problem.SelectedBy = append(problem.SelectedBy, req.TeamID)
	if team, ok := s.teams[req.TeamID]; ok {
		team.ProblemStatement = problem.Title
	}
	s.writeMessage(w, "problem statement selected")
}

func (s *Server) handleCreateProblem(w http.ResponseWriter, r *http.Request) {
	var problem api.ProblemStatement
	if !s.decode(w, r, &problem) {
		return
	}
	if !httputil.RequireNonEmpty(w, "title", problem.Title) {
		return
	}
	problem.ID = uuid.NewString()
	problem.CreatedAt = time.Now()
	s.mu.Lock()
	s.problems[problem.ID] = &problem
	s.mu.Unlock()
	s.writeJSON(w, http.StatusCreated, problem)
}

func (s *Server) handleUpdateProblem(w http.ResponseWriter, r *http.Request) {
	var update api.ProblemStatement
	if !s.decode(w, r, &update) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	problem, ok := s.problems[mux.Vars(r)["id"]]
	if !ok {
		httputil.WriteNotFound(w, "problem statement not found")
		return
	}
	problem.Title = update.Title
	problem.Description = update.Description
	problem.ThemeID = update.ThemeID
	s.writeJSON(w, http.StatusOK, problem)
}

func (s *Server) handleDeleteProblem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	s.mu.Lock()
	_, ok := s.problems[id]
	delete(s.problems, id)
	s.mu.Unlock()
	if !ok {
		httputil.WriteNotFound(w, "problem statement not found")
		return
	}
	s.writeMessage(w, "problem statement deleted")
}

// --- results ---

func (s *Server) handleListResults(w http.ResponseWriter, r *http.Request) {
	identity, _ := identityFrom(r.Context())
	isAdmin := identity.Role == api.RoleAdmin || identity.Role == api.RoleSuperAdmin
	s.mu.Lock()
	out := make([]api.Result, 0, len(s.results))
	for _, result := range s.results {
		if !isAdmin && !result.Declared {
			continue
		}
		out = append(out, *result)
	}
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateResult(w http.ResponseWriter, r *http.Request) {
	var result api.Result
	if !s.decode(w, r, &result) {
		return
	}
	result.ID = uuid.NewString()
	result.Declared = false
	s.mu.Lock()
	s.results[result.ID] = &result
	s.mu.Unlock()
	s.writeJSON(w, http.StatusCreated, result)
}

func (s *Server) handleUpdateResult(w http.ResponseWriter, r *http.Request) {
	var update api.Result
	if !s.decode(w, r, &update) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	result, ok := s.results[mux.Vars(r)["id"]]
	if !ok {
		httputil.WriteNotFound(w, "result not found")
		return
	}
	result.Rank = update.Rank
	result.Score = update.Score
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleDeleteResult(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	s.mu.Lock()
	_, ok := s.results[id]
	delete(s.results, id)
	s.mu.Unlock()
	if !ok {
		httputil.WriteNotFound(w, "result not found")
		return
	}
	s.writeMessage(w, "result deleted")
}

func (s *Server) handleBulkDeleteResults(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs []string `json:"ids"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	s.mu.Lock()
	for _, id := range req.IDs {
		delete(s.results, id)
	}
	s.mu.Unlock()
	s.writeMessage(w, "results deleted")
}

func (s *Server) handleDeclareResults(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	for _, result := range s.results {
		result.Declared = true
	}
	s.declared = true
	s.mu.Unlock()
	s.writeMessage(w, "results declared")
}

// --- accommodation ---

func (s *Server) handleListBookings(w http.ResponseWriter, r *http.Request) {
	identity, _ := identityFrom(r.Context())
	s.mu.Lock()
	out := make([]api.Accommodation, 0, len(s.bookings))
	for _, booking := range s.bookings {
		if identity.TeamID != "" && booking.TeamID != identity.TeamID {
			continue
		}
		out = append(out, *booking)
	}
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateBooking(w http.ResponseWriter, r *http.Request) {
	var booking api.Accommodation
	if !s.decode(w, r, &booking) {
		return
	}
	identity, _ := identityFrom(r.Context())
	booking.ID = uuid.NewString()
	if booking.TeamID == "" {
		booking.TeamID = identity.TeamID
	}
	booking.Status = "pending"
	s.mu.Lock()
	s.bookings[booking.ID] = &booking
	s.mu.Unlock()
	s.writeJSON(w, http.StatusCreated, booking)
}

func (s *Server) handleUpdateBooking(w http.ResponseWriter, r *http.Request) {
	var update api.Accommodation
	if !s.decode(w, r, &update) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	booking, ok := s.bookings[mux.Vars(r)["id"]]
	if !ok {
		httputil.WriteNotFound(w, "booking not found")
		return
	}
	booking.CheckIn = update.CheckIn
	booking.CheckOut = update.CheckOut
	booking.MemberIDs = update.MemberIDs
	s.writeJSON(w, http.StatusOK, booking)
}

func (s *Server) handleCancelBooking(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	s.mu.Lock()
	_, ok := s.bookings[id]
	delete(s.bookings, id)
	s.mu.Unlock()
	if !ok {
		httputil.WriteNotFound(w, "booking not found")
		return
	}
	s.writeMessage(w, "booking cancelled")
}

// --- admin: teams, payments, sub-admins, permissions ---

func (s *Server) handleListTeams(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := make([]api.Team, 0, len(s.teams))
	for _, team := range s.teams {
		out = append(out, *team)
	}
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleVerifyPayment(w http.ResponseWriter, r *http.Request) {
	teamID := mux.Vars(r)["id"]
	s.mu.Lock()
	defer s.mu.Unlock()
	team, ok := s.teams[teamID]
	if !ok {
		httputil.WriteNotFound(w, "team not found")
		return
	}
	team.PaymentVerified = true
	if status, ok := s.payments[teamID]; ok {
		status.Verified = true
	}
	s.writeMessage(w, "payment verified")
}

func (s *Server) handleListSubAdmins(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := make([]api.SubAdmin, 0, len(s.subAdmins))
	for _, subAdmin := range s.subAdmins {
		out = append(out, *subAdmin)
	}
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateSubAdmin(w http.ResponseWriter, r *http.Request) {
	var subAdmin api.SubAdmin
	if !s.decode(w, r, &subAdmin) {
		return
	}
	if !httputil.RequireNonEmpty(w, "email", subAdmin.Email) {
		return
	}
	subAdmin.ID = uuid.NewString()
	s.mu.Lock()
	s.subAdmins[subAdmin.ID] = &subAdmin
	s.permissions[subAdmin.Email] = append([]string(nil), subAdmin.Permissions...)
	s.mu.Unlock()
	s.writeJSON(w, http.StatusCreated, subAdmin)
}

func (s *Server) handleUpdateSubAdmin(w http.ResponseWriter, r *http.Request) {
	var update api.SubAdmin
	if !s.decode(w, r, &update) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	subAdmin, ok := s.subAdmins[mux.Vars(r)["id"]]
	if !ok {
		httputil.WriteNotFound(w, "sub-admin not found")
		return
	}
	subAdmin.FullName = update.FullName
	subAdmin.Permissions = update.Permissions
	s.permissions[subAdmin.Email] = append([]string(nil), update.Permissions...)
	s.writeJSON(w, http.StatusOK, subAdmin)
}

func (s *Server) handleDeleteSubAdmin(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	subAdmin, ok := s.subAdmins[mux.Vars(r)["id"]]
	if !ok {
		httputil.WriteNotFound(w, "sub-admin not found")
		return
	}
	delete(s.permissions, subAdmin.Email)
	delete(s.subAdmins, subAdmin.ID)
	s.writeMessage(w, "sub-admin removed")
}

func (s *Server) handleGetPermissions(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		s.writeError(w, http.StatusBadRequest, "email query parameter is required")
		return
	}
	s.mu.Lock()
	granted := append([]string(nil), s.permissions[email]...)
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, map[string][]string{"permissions": granted})
}

func (s *Server) handleSetPermissions(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email       string   `json:"email"`
		Permissions []string `json:"permissions"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	if !httputil.RequireNonEmpty(w, "email", req.Email) {
		return
	}
	s.mu.Lock()
	s.permissions[req.Email] = append([]string(nil), req.Permissions...)
	s.mu.Unlock()
	s.writeMessage(w, "permissions updated")
}

// --- internal helpers ---

func (s *Server) findOrCreateUser(email string) api.Identity {
	if identity, ok := s.userByEmail(email); ok {
		return identity
	}
	identity := api.Identity{ID: uuid.NewString(), Email: email, Role: api.RoleParticipant}
	s.mu.Lock()
	s.users[identity.ID] = identity
	s.mu.Unlock()
	return identity
}

func (s *Server) userByEmail(email string) (api.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, identity := range s.users {
		if identity.Email == email {
			return identity, true
		}
	}
	return api.Identity{}, false
}

func (s *Server) teamOf(identity api.Identity) *api.Team {
	if identity.TeamID == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	team, ok := s.teams[identity.TeamID]
	if !ok {
		return nil
	}
	copied := *team
	return &copied
}
