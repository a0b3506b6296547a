package dashboard

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devpulse/hackhub/pkg/api"
	"github.com/devpulse/hackhub/pkg/events"
	"github.com/devpulse/hackhub/pkg/observability"
	"github.com/devpulse/hackhub/pkg/permissions"
)

func newDashboard(tabs []Tab) (*Dashboard, *events.Bus) {
	bus := events.NewBus()
	logger := observability.NewLogger(observability.ErrorLevel, io.Discard)
	return New(tabs, bus, logger), bus
}

func tabIDs(tabs []Tab) []TabID {
	ids := make([]TabID, len(tabs))
	for i, tab := range tabs {
		ids[i] = tab.ID
	}
	return ids
}

func TestInitialStateIsNoPermissions(t *testing.T) {
	dash, _ := newDashboard(TabsForRole(api.RoleAdmin))

	assert.True(t, dash.NoPermissions())
	assert.Empty(t, dash.VisibleTabs())
}

func TestVisibleTabsMatchPermissionSet(t *testing.T) {
	dash, _ := newDashboard(TabsForRole(api.RoleAdmin))

	dash.UpdatePermissions(permissions.NewSet("viewThemes", "viewResults"))

	assert.Equal(t, []TabID{TabThemes, TabResults}, tabIDs(dash.VisibleTabs()))
}

func TestEveryVisibleTabIsPermitted(t *testing.T) {
	dash, _ := newDashboard(TabsForRole(api.RoleAdmin))
	dash.UpdatePermissions(permissions.NewSet("viewTeams", "viewAccommodations", "manageSubAdmins"))

	for _, tab := range dash.VisibleTabs() {
		assert.True(t, dash.HasTabPermission(tab.ID), "visible tab %s must be permitted", tab.ID)
	}
}

func TestFirstPermittedTabBecomesActive(t *testing.T) {
	dash, _ := newDashboard(TabsForRole(api.RoleAdmin))

	dash.UpdatePermissions(permissions.NewSet("viewResults", "viewAccommodations"))

	active, ok := dash.ActiveTab()
	require.True(t, ok)
	assert.Equal(t, TabResults, active, "display order decides the initial tab")
}

func TestActivatePermittedTab(t *testing.T) {
	dash, _ := newDashboard(TabsForRole(api.RoleAdmin))
	dash.UpdatePermissions(permissions.NewSet("viewThemes", "viewResults"))

	require.NoError(t, dash.Activate(TabResults))

	active, _ := dash.ActiveTab()
	assert.Equal(t, TabResults, active)
}

func TestActivateDeniedPublishesEventAndKeepsState(t *testing.T) {
	dash, bus := newDashboard(TabsForRole(api.RoleAdmin))
	dash.UpdatePermissions(permissions.NewSet("viewThemes"))

	var denied []events.AuthorizationDenied
	sub := bus.SubscribeAuthorizationDenied(func(e events.AuthorizationDenied) {
		denied = append(denied, e)
	})
	defer sub.Close()

	err := dash.Activate(TabResults)

	assert.ErrorIs(t, err, ErrTabDenied)
	require.Len(t, denied, 1)
	assert.Equal(t, "dashboard/manage-results", denied[0].Path)
	assert.Equal(t, "viewResults", denied[0].Capability)

	active, ok := dash.ActiveTab()
	require.True(t, ok)
	assert.Equal(t, TabThemes, active, "denied activation must not move the active tab")
}

func TestActivateUnknownTab(t *testing.T) {
	dash, _ := newDashboard(TabsForRole(api.RoleAdmin))
	dash.UpdatePermissions(permissions.NewSet("viewThemes"))

	assert.ErrorIs(t, dash.Activate(TabID("made-up")), ErrUnknownTab)
}

func TestRevokedPermissionEvictsActiveTab(t *testing.T) {
	dash, _ := newDashboard(TabsForRole(api.RoleAdmin))
	dash.UpdatePermissions(permissions.NewSet("viewThemes", "viewResults"))
	require.NoError(t, dash.Activate(TabResults))

	dash.UpdatePermissions(permissions.NewSet("viewThemes"))

	active, ok := dash.ActiveTab()
	require.True(t, ok)
	assert.Equal(t, TabThemes, active)
}

func TestRevokingEverythingEntersNoPermissions(t *testing.T) {
	dash, _ := newDashboard(TabsForRole(api.RoleAdmin))
	dash.UpdatePermissions(permissions.NewSet("viewThemes"))
	require.False(t, dash.NoPermissions())

	dash.UpdatePermissions(permissions.NewSet())

	assert.True(t, dash.NoPermissions())
	assert.Empty(t, dash.VisibleTabs())
}

func TestUnchangedSetLeavesStateAlone(t *testing.T) {
	dash, _ := newDashboard(TabsForRole(api.RoleAdmin))
	dash.UpdatePermissions(permissions.NewSet("viewThemes", "viewResults"))
	require.NoError(t, dash.Activate(TabResults))

	dash.UpdatePermissions(permissions.NewSet("viewResults", "viewThemes"))

	active, _ := dash.ActiveTab()
	assert.Equal(t, TabResults, active, "an identical poll result must not reset the tab")
	assert.Equal(t, []TabID{TabThemes, TabResults}, tabIDs(dash.VisibleTabs()))
}

func TestSubAdminTabsExcludeSubAdminAdministration(t *testing.T) {
	for _, tab := range SubAdminTabs() {
		assert.NotEqual(t, TabSubAdmins, tab.ID)
	}
	assert.Len(t, SubAdminTabs(), len(TabsForRole(api.RoleAdmin))-1)
}

func TestNonAdminRolesHaveNoTabs(t *testing.T) {
	assert.Nil(t, TabsForRole(api.RoleParticipant))
	assert.Nil(t, TabsForRole(api.RoleLeader))
	assert.Nil(t, TabsForRole(api.RoleMember))
}

// Scenario: a sub-admin granted only viewThemes sees exactly the Manage Theme
// tab; forcing any other section shows the denied modal and keeps the active
// tab where it was.
func TestViewThemesOnlyEndToEnd(t *testing.T) {
	dash, bus := newDashboard(SubAdminTabs())

	var denied int
	sub := bus.SubscribeAuthorizationDenied(func(events.AuthorizationDenied) { denied++ })
	defer sub.Close()

	dash.UpdatePermissions(permissions.NewSet("viewThemes"))

	visible := dash.VisibleTabs()
	require.Len(t, visible, 1)
	assert.Equal(t, TabThemes, visible[0].ID)

	active, ok := dash.ActiveTab()
	require.True(t, ok)
	assert.Equal(t, TabThemes, active)

	for _, id := range []TabID{TabProblems, TabTeams, TabResults, TabAccommodations} {
		assert.ErrorIs(t, dash.Activate(id), ErrTabDenied)
	}
	assert.Equal(t, 4, denied)

	active, _ = dash.ActiveTab()
	assert.Equal(t, TabThemes, active)
}
