package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devpulse/hackhub/pkg/api"
)

// recordingHandler captures the last method and path and replies with body.
func recordingHandler(method, path *string, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		*method = r.Method
		*path = r.URL.RequestURI()
		w.Write([]byte(body))
	}
}

func TestSendOTPUsesAuthRoute(t *testing.T) {
	var method, path string
	f := newFixture(t, recordingHandler(&method, &path, `{}`))

	require.NoError(t, f.client.SendOTP(context.Background(), "p@hackhub.dev"))
	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "/auth/otp/send", path)
}

func TestVerifyOTPDecodesLoginResponse(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(api.LoginResponse{
			Token: "tok-1",
			User:  api.Identity{Email: "p@hackhub.dev", Role: api.RoleLeader},
		})
	})

	resp, err := f.client.VerifyOTP(context.Background(), "p@hackhub.dev", "123456")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", resp.Token)
	assert.Equal(t, api.RoleLeader, resp.User.Role)
}

func TestThemeAdminVariants(t *testing.T) {
	var method, path string
	f := newFixture(t, recordingHandler(&method, &path, `{}`))
	ctx := context.Background()

	_, err := f.client.CreateTheme(ctx, VariantAdmin, api.Theme{Name: "FinTech"})
	require.NoError(t, err)
	assert.Equal(t, "/admin/theme", path)

	require.NoError(t, f.client.ActivateTheme(ctx, VariantSubAdmin, "t-1"))
	assert.Equal(t, "/s/admin/theme/t-1/activate", path)

	require.NoError(t, f.client.DeactivateAllThemes(ctx, VariantAdmin))
	assert.Equal(t, "/admin/theme/deactivate-all", path)
}

func TestListProblemsThemeFilter(t *testing.T) {
	var method, path string
	f := newFixture(t, recordingHandler(&method, &path, `[]`))

	_, err := f.client.ListProblems(context.Background(), "t 1")
	require.NoError(t, err)
	assert.Equal(t, "/problem?theme_id=t+1", path)
}

func TestResultBulkDeleteAndDeclare(t *testing.T) {
	var method, path string
	f := newFixture(t, recordingHandler(&method, &path, `{}`))
	ctx := context.Background()

	require.NoError(t, f.client.BulkDeleteResults(ctx, VariantAdmin, []string{"r-1", "r-2"}))
	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "/admin/result/bulk-delete", path)

	require.NoError(t, f.client.DeclareResults(ctx, VariantSubAdmin))
	assert.Equal(t, "/s/admin/result/declare", path)
}

func TestAccommodationRouteSpelling(t *testing.T) {
	var method, path string
	f := newFixture(t, recordingHandler(&method, &path, `[]`))

	_, err := f.client.ListBookings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/accomodations", path)
}

func TestGetPermissionsQueryAndShape(t *testing.T) {
	var path string
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.RequestURI()
		w.Write([]byte(`{"permissions":["viewThemes","createTheme"]}`))
	})

	perms, err := f.client.GetPermissions(context.Background(), "sub@hackhub.dev")
	require.NoError(t, err)
	assert.Equal(t, "/s/admin/permissions?email=sub%40hackhub.dev", path)
	assert.Equal(t, []string{"viewThemes", "createTheme"}, perms)
}
