package dashboard

import (
	"github.com/devpulse/hackhub/pkg/api"
	"github.com/devpulse/hackhub/pkg/permissions"
)

// TabID identifies one dashboard section.
type TabID string

const (
	TabThemes         TabID = "manage-theme"
	TabProblems       TabID = "manage-problem-statement"
	TabTeams          TabID = "manage-teams"
	TabResults        TabID = "manage-results"
	TabAccommodations TabID = "manage-accommodation"
	TabSubAdmins      TabID = "manage-sub-admins"
)

// Tab describes one dashboard section and the capabilities it needs. A tab is
// visible only when every required token is present in the current set.
type Tab struct {
	ID       TabID
	Title    string
	Required []permissions.Capability
}

// adminTabs is the full tab set in display order. Sub-admin dashboards use
// the same list minus sub-admin administration; what actually renders is
// decided per-account by the permission set, not by the list.
var adminTabs = []Tab{
	{ID: TabThemes, Title: "Manage Theme", Required: []permissions.Capability{permissions.CapViewThemes}},
	{ID: TabProblems, Title: "Manage Problem Statements", Required: []permissions.Capability{permissions.CapViewProblemStatements}},
	{ID: TabTeams, Title: "Manage Teams", Required: []permissions.Capability{permissions.CapViewTeams}},
	{ID: TabResults, Title: "Manage Results", Required: []permissions.Capability{permissions.CapViewResults}},
	{ID: TabAccommodations, Title: "Manage Accommodation", Required: []permissions.Capability{permissions.CapViewAccommodations}},
	{ID: TabSubAdmins, Title: "Manage Sub-Admins", Required: []permissions.Capability{permissions.CapManageSubAdmins}},
}

// TabsForRole returns the candidate tab list for a role. Non-admin roles have
// no gated dashboard and get an empty list.
func TabsForRole(role api.Role) []Tab {
	switch role {
	case api.RoleAdmin, api.RoleSuperAdmin:
		return cloneTabs(adminTabs)
	default:
		return nil
	}
}

// SubAdminTabs is the candidate list for sub-admin accounts: everything an
// admin sees except sub-admin administration itself.
func SubAdminTabs() []Tab {
	tabs := make([]Tab, 0, len(adminTabs)-1)
	for _, tab := range adminTabs {
		if tab.ID == TabSubAdmins {
			continue
		}
		tabs = append(tabs, tab)
	}
	return tabs
}

func cloneTabs(tabs []Tab) []Tab {
	out := make([]Tab, len(tabs))
	copy(out, tabs)
	return out
}
