package dashboard

import (
	"errors"
	"sync"

	"github.com/devpulse/hackhub/pkg/events"
	"github.com/devpulse/hackhub/pkg/observability"
	"github.com/devpulse/hackhub/pkg/permissions"
)

// ErrTabDenied is returned when activation of a tab is blocked because the
// current permission set lacks a required capability.
var ErrTabDenied = errors.New("dashboard: tab requires a capability the current permission set lacks")

// ErrUnknownTab is returned when the requested tab is not part of this
// dashboard's candidate list.
var ErrUnknownTab = errors.New("dashboard: unknown tab")

// Dashboard routes between feature tabs based on the current permission set.
//
// It is a two-state machine: either no tab is permitted (NoPermissions) and
// an explanatory message renders instead of any section, or exactly one tab
// is active. Every permission-set change recomputes the visible list; every
// activation is re-checked against the raw set, independent of whether the
// tab was visible, so a stale or forged tab reference still cannot open a
// section.
type Dashboard struct {
	tabs   []Tab
	bus    *events.Bus
	logger *observability.Logger

	mu      sync.RWMutex
	current permissions.Set
	active  TabID
}

// New creates a dashboard over the given candidate tabs. The initial state is
// NoPermissions until the first UpdatePermissions call.
func New(tabs []Tab, bus *events.Bus, logger *observability.Logger) *Dashboard {
	return &Dashboard{
		tabs:    cloneTabs(tabs),
		bus:     bus,
		logger:  logger,
		current: permissions.NewSet(),
	}
}

// UpdatePermissions installs a new permission set and reconciles the active
// tab against it. If the active tab is no longer permitted the dashboard
// moves to the first permitted tab, or to NoPermissions when none qualify.
// An unchanged set leaves the state untouched.
func (d *Dashboard) UpdatePermissions(set permissions.Set) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.current.Equal(set) {
		return
	}
	d.current = set.Clone()

	if d.active != "" && d.permittedLocked(d.active) {
		return
	}
	previous := d.active
	d.active = d.firstPermittedLocked()
	if d.active != previous {
		d.logger.WithFields(map[string]interface{}{
			"previous_tab": string(previous),
			"active_tab":   string(d.active),
		}).Info("dashboard reconciled active tab")
	}
}

// VisibleTabs returns the tabs whose required capabilities are all present,
// in display order.
func (d *Dashboard) VisibleTabs() []Tab {
	d.mu.RLock()
	defer d.mu.RUnlock()

	visible := make([]Tab, 0, len(d.tabs))
	for _, tab := range d.tabs {
		if d.current.HasAll(tab.Required...) {
			visible = append(visible, tab)
		}
	}
	return visible
}

// HasTabPermission reports whether the raw permission set allows the tab. It
// deliberately consults the set, not the filtered visible list.
func (d *Dashboard) HasTabPermission(id TabID) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.permittedLocked(id)
}

// Activate switches to the given tab. A denied activation publishes an
// authorization-denied event and leaves the active tab unchanged.
func (d *Dashboard) Activate(id TabID) error {
	d.mu.Lock()
	tab, ok := d.findLocked(id)
	if !ok {
		d.mu.Unlock()
		return ErrUnknownTab
	}
	if !d.current.HasAll(tab.Required...) {
		missing := d.missingLocked(tab)
		d.mu.Unlock()
		d.logger.WithFields(map[string]interface{}{
			"tab":        string(id),
			"capability": string(missing),
		}).Warn("tab activation denied")
		d.bus.PublishAuthorizationDenied(events.AuthorizationDenied{
			Path:       "dashboard/" + string(id),
			Capability: string(missing),
		})
		return ErrTabDenied
	}
	d.active = id
	d.mu.Unlock()
	return nil
}

// ActiveTab returns the active tab ID, or false when the dashboard is in the
// NoPermissions state.
func (d *Dashboard) ActiveTab() (TabID, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.active, d.active != ""
}

// NoPermissions reports whether no tab at all is currently permitted.
func (d *Dashboard) NoPermissions() bool {
	_, ok := d.ActiveTab()
	return !ok
}

func (d *Dashboard) permittedLocked(id TabID) bool {
	tab, ok := d.findLocked(id)
	return ok && d.current.HasAll(tab.Required...)
}

func (d *Dashboard) firstPermittedLocked() TabID {
	for _, tab := range d.tabs {
		if d.current.HasAll(tab.Required...) {
			return tab.ID
		}
	}
	return ""
}

func (d *Dashboard) findLocked(id TabID) (Tab, bool) {
	for _, tab := range d.tabs {
		if tab.ID == id {
			return tab, true
		}
	}
	return Tab{}, false
}

func (d *Dashboard) missingLocked(tab Tab) permissions.Capability {
	for _, capability := range tab.Required {
		if !d.current.Has(capability) {
			return capability
		}
	}
	return ""
}
