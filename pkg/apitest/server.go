package apitest

import (
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/devpulse/hackhub/pkg/api"
	"github.com/devpulse/hackhub/pkg/httputil"
)

// Server is an in-memory stand-in for the hackathon API. It enforces the
// same authentication and capability rules the real backend does: missing or
// unknown bearer tokens get 401, admin routes without the required
// capability get 403, and the Admin and SuperAdmin roles bypass capability
// checks entirely.
type Server struct {
	logger *logrus.Logger
	router *mux.Router

	mu          sync.Mutex
	tokens      map[string]api.Identity
	permissions map[string][]string
	otps        map[string]string
	users       map[string]api.Identity
	teams       map[string]*api.Team
	themes      map[string]*api.Theme
	problems    map[string]*api.ProblemStatement
	results     map[string]*api.Result
	bookings    map[string]*api.Accommodation
	subAdmins   map[string]*api.SubAdmin
	payments    map[string]*api.PaymentStatus
	declared    bool
}

// NewServer creates an empty fake API. Seed methods populate fixtures.
func NewServer(logger *logrus.Logger) *Server {
	if logger == nil {
		logger = logrus.New()
		logger.SetLevel(logrus.WarnLevel)
	}
	s := &Server{
		logger:      logger,
		tokens:      make(map[string]api.Identity),
		permissions: make(map[string][]string),
		otps:        make(map[string]string),
		users:       make(map[string]api.Identity),
		teams:       make(map[string]*api.Team),
		themes:      make(map[string]*api.Theme),
		problems:    make(map[string]*api.ProblemStatement),
		results:     make(map[string]*api.Result),
		bookings:    make(map[string]*api.Accommodation),
		subAdmins:   make(map[string]*api.SubAdmin),
		payments:    make(map[string]*api.PaymentStatus),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// SeedToken registers a valid bearer token for an identity.
func (s *Server) SeedToken(token string, identity api.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = identity
	s.users[identity.ID] = identity
}

// SeedPermissions grants capability tokens to an admin email.
func (s *Server) SeedPermissions(email string, permissions []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.permissions[email] = append([]string(nil), permissions...)
}

// SeedTeam installs a team fixture.
func (s *Server) SeedTeam(team api.Team) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teams[team.ID] = &team
}

// SeedTheme installs a theme fixture.
func (s *Server) SeedTheme(theme api.Theme) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.themes[theme.ID] = &theme
}

// SeedProblem installs a problem statement fixture.
func (s *Server) SeedProblem(problem api.ProblemStatement) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.problems[problem.ID] = &problem
}

// SeedResult installs a result fixture.
func (s *Server) SeedResult(result api.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[result.ID] = &result
}

// SeedOTP fixes the passcode that VerifyOTP will accept for an email.
func (s *Server) SeedOTP(email, code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.otps[email] = code
}

// SeedDemo loads a small self-consistent fixture set for the mock-server
// command: one admin, one sub-admin limited to themes, one participant team.
func (s *Server) SeedDemo() {
	admin := api.Identity{ID: "admin-1", Email: "admin@hackhub.dev", FullName: "Admin", Role: api.RoleAdmin}
	sub := api.Identity{ID: "sub-1", Email: "themes@hackhub.dev", FullName: "Theme Admin", Role: api.RoleParticipant}
	leader := api.Identity{ID: "lead-1", Email: "lead@hackhub.dev", FullName: "Ada", Role: api.RoleLeader, TeamID: "team-1"}

	s.SeedToken("admin-token", admin)
	s.SeedToken("sub-token", sub)
	s.SeedToken("leader-token", leader)
	s.SeedPermissions(sub.Email, []string{"viewThemes", "createTheme", "editTheme"})
	s.SeedTeam(api.Team{
		ID:      "team-1",
		Name:    "Bitwise",
		Leader:  &api.TeamMember{ID: "lead-1", FullName: "Ada", Email: "lead@hackhub.dev", Role: api.RoleLeader},
		Members: []api.TeamMember{{ID: "mem-1", FullName: "Grace", Role: api.RoleMember}},
	})
	s.SeedTheme(api.Theme{ID: "theme-1", Name: "FinTech", Active: true})
	s.SeedTheme(api.Theme{ID: "theme-2", Name: "HealthTech"})
	s.SeedProblem(api.ProblemStatement{ID: "prob-1", ThemeID: "theme-1", Title: "Fraud detection"})
}

func (s *Server) routes() {
	r := mux.NewRouter()
	r.Use(
		httputil.LoggingMiddleware(s.logger),
		httputil.RecoveryMiddleware(s.logger),
		httputil.MaxBytesMiddleware(1<<20),
	)

	// Auth routes are the only unauthenticated surface.
	r.HandleFunc("/auth/otp/send", s.handleSendOTP).Methods(http.MethodPost)
	r.HandleFunc("/auth/otp/verify", s.handleVerifyOTP).Methods(http.MethodPost)
	r.HandleFunc("/auth/register", s.handleRegister).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/auth/admin/login", s.handleAdminLogin).Methods(http.MethodPost)

	authed := r.NewRoute().Subrouter()
	authed.Use(s.requireAuth)

	authed.HandleFunc("/auth/logout", s.handleLogout).Methods(http.MethodPost)
	authed.HandleFunc("/auth/refresh", s.handleRefresh).Methods(http.MethodPost)
	authed.HandleFunc("/auth/payment", s.handleSubmitPayment).Methods(http.MethodPost)
	authed.HandleFunc("/auth/payment/status", s.handlePaymentStatus).Methods(http.MethodGet)

	authed.HandleFunc("/user/me", s.handleCurrentUser).Methods(http.MethodGet)
	authed.HandleFunc("/user/me", s.handleUpdateProfile).Methods(http.MethodPut)
	authed.HandleFunc("/user/team/members", s.handleAddTeamMember).Methods(http.MethodPost)
	authed.HandleFunc("/user/team/members/{id}", s.handleUpdateTeamMember).Methods(http.MethodPut)
	authed.HandleFunc("/user/team/members/{id}", s.handleRemoveTeamMember).Methods(http.MethodDelete)
	authed.HandleFunc("/user/terms", s.handleAcceptTerms).Methods(http.MethodPost)
	authed.HandleFunc("/user/{id}", s.handleGetUser).Methods(http.MethodGet)

	authed.HandleFunc("/theme", s.handleListThemes).Methods(http.MethodGet)
	authed.HandleFunc("/theme/{id}", s.handleGetTheme).Methods(http.MethodGet)
	authed.HandleFunc("/theme/{id}/select", s.handleSelectTheme).Methods(http.MethodPost)

	authed.HandleFunc("/problem", s.handleListProblems).Methods(http.MethodGet)
	authed.HandleFunc("/problem/{id}", s.handleGetProblem).Methods(http.MethodGet)
	authed.HandleFunc("/problem/{id}/select", s.handleSelectProblem).Methods(http.MethodPost)

	authed.HandleFunc("/result", s.handleListResults).Methods(http.MethodGet)

	// Historical spelling preserved to match the deployed API.
	authed.HandleFunc("/accomodations", s.handleListBookings).Methods(http.MethodGet)
	authed.HandleFunc("/accomodations", s.handleCreateBooking).Methods(http.MethodPost)
	authed.HandleFunc("/accomodations/{id}", s.handleUpdateBooking).Methods(http.MethodPut)
	authed.HandleFunc("/accomodations/{id}", s.handleCancelBooking).Methods(http.MethodDelete)

	// The /admin and /s/admin families expose the same handlers; only the
	// prefix differs.
	for _, prefix := range []string{"/admin", "/s/admin"} {
		admin := r.PathPrefix(prefix).Subrouter()
		admin.Use(s.requireAuth)

		admin.Handle("/theme", s.gated("createTheme", s.handleCreateTheme)).Methods(http.MethodPost)
		admin.Handle("/theme/deactivate-all", s.gated("editTheme", s.handleDeactivateAllThemes)).Methods(http.MethodPost)
		admin.Handle("/theme/{id}", s.gated("editTheme", s.handleUpdateTheme)).Methods(http.MethodPut)
		admin.Handle("/theme/{id}", s.gated("deleteTheme", s.handleDeleteTheme)).Methods(http.MethodDelete)
		admin.Handle("/theme/{id}/activate", s.gated("editTheme", s.handleActivateTheme)).Methods(http.MethodPost)

		admin.Handle("/problem", s.gated("createProblemStatement", s.handleCreateProblem)).Methods(http.MethodPost)
		admin.Handle("/problem/{id}", s.gated("editProblemStatement", s.handleUpdateProblem)).Methods(http.MethodPut)
		admin.Handle("/problem/{id}", s.gated("deleteProblemStatement", s.handleDeleteProblem)).Methods(http.MethodDelete)

		admin.Handle("/result", s.gated("manageResults", s.handleCreateResult)).Methods(http.MethodPost)
		admin.Handle("/result/bulk-delete", s.gated("manageResults", s.handleBulkDeleteResults)).Methods(http.MethodPost)
		admin.Handle("/result/declare", s.gated("declareResults", s.handleDeclareResults)).Methods(http.MethodPost)
		admin.Handle("/result/{id}", s.gated("manageResults", s.handleUpdateResult)).Methods(http.MethodPut)
		admin.Handle("/result/{id}", s.gated("manageResults", s.handleDeleteResult)).Methods(http.MethodDelete)

		admin.Handle("/teams", s.gated("viewTeams", s.handleListTeams)).Methods(http.MethodGet)
		admin.Handle("/teams/{id}/verify-payment", s.gated("verifyPayment", s.handleVerifyPayment)).Methods(http.MethodPost)

		admin.Handle("/subadmins", s.gated("manageSubAdmins", s.handleListSubAdmins)).Methods(http.MethodGet)
		admin.Handle("/subadmins", s.gated("manageSubAdmins", s.handleCreateSubAdmin)).Methods(http.MethodPost)
		admin.Handle("/subadmins/{id}", s.gated("manageSubAdmins", s.handleUpdateSubAdmin)).Methods(http.MethodPut)
		admin.Handle("/subadmins/{id}", s.gated("manageSubAdmins", s.handleDeleteSubAdmin)).Methods(http.MethodDelete)
	}

	// Permission introspection lives only under /s/admin. Any authenticated
	// admin account may read its own grants; writing requires the sub-admin
	// management capability.
	sadmin := r.PathPrefix("/s/admin").Subrouter()
	sadmin.Use(s.requireAuth)
	sadmin.HandleFunc("/permissions", s.handleGetPermissions).Methods(http.MethodGet)
	sadmin.Handle("/permissions", s.gated("manageSubAdmins", http.HandlerFunc(s.handleSetPermissions))).Methods(http.MethodPut)

	s.router = r
}

// requireAuth resolves the bearer token to an identity or replies 401.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := s.identityFor(r)
		if !ok {
			httputil.WriteUnauthorized(w, "invalid or missing token")
			return
		}
		next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), identity)))
	})
}

// gated enforces one capability token. Admin and SuperAdmin bypass the check.
func (s *Server) gated(capability string, next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, _ := identityFrom(r.Context())
		if identity.Role != api.RoleAdmin && identity.Role != api.RoleSuperAdmin {
			if !s.hasPermission(identity.Email, capability) {
				httputil.WriteForbidden(w, "missing permission: "+capability)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) identityFor(r *http.Request) (api.Identity, bool) {
	token, ok := httputil.BearerToken(r)
	if !ok {
		return api.Identity{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	identity, found := s.tokens[token]
	return identity, found
}

func (s *Server) hasPermission(email, capability string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, granted := range s.permissions[email] {
		if granted == capability {
			return true
		}
	}
	return false
}

func (s *Server) issueToken(identity api.Identity) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.tokens[token] = identity
	s.users[identity.ID] = identity
	s.mu.Unlock()
	return token
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	if err := httputil.WriteJSON(w, status, v); err != nil {
		s.logger.WithError(err).Error("failed to encode response")
	}
}

func (s *Server) writeMessage(w http.ResponseWriter, message string) {
	if err := httputil.WriteMessage(w, message); err != nil {
		s.logger.WithError(err).Error("failed to encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	httputil.WriteErrorMessage(w, status, message)
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	return httputil.ParseJSONOrError(w, r, v)
}
