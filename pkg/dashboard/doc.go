// Package dashboard implements capability-gated tab routing for the admin
// and sub-admin dashboards.
//
// # Overview
//
// A Dashboard holds a candidate tab list and the latest permission set
// delivered by the permissions resolver. Tabs render only when every
// required capability token is present, and activating a tab re-checks the
// raw set even when the tab was visible. Denied activations publish an
// authorization-denied event on the shared bus instead of changing state.
//
// # Usage
//
//	dash := dashboard.New(dashboard.TabsForRole(user.Role), bus, logger)
//	resolver.OnChange(dash.UpdatePermissions)
//
//	if err := dash.Activate(dashboard.TabResults); errors.Is(err, dashboard.ErrTabDenied) {
//		// the denied event has already been published; render the modal
//	}
package dashboard
