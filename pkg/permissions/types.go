package permissions

import "sort"

// Capability is a string token identifying one permitted action or feature.
// The set of tokens granted to an admin account is the sole source of truth
// for gating: nothing renders as enabled unless its token is present.
type Capability string

const (
	// Theme management
	CapViewThemes  Capability = "viewThemes"
	CapCreateTheme Capability = "createTheme"
	CapEditTheme   Capability = "editTheme"
	CapDeleteTheme Capability = "deleteTheme"

	// Problem statement management
	CapViewProblemStatements  Capability = "viewProblemStatements"
	CapCreateProblemStatement Capability = "createProblemStatement"
	CapEditProblemStatement   Capability = "editProblemStatement"
	CapDeleteProblemStatement Capability = "deleteProblemStatement"

	// Team management
	CapViewTeams     Capability = "viewTeams"
	CapManageTeams   Capability = "manageTeams"
	CapVerifyPayment Capability = "verifyPayment"

	// Results
	CapViewResults    Capability = "viewResults"
	CapManageResults  Capability = "manageResults"
	CapDeclareResults Capability = "declareResults"

	// Accommodation
	CapViewAccommodations   Capability = "viewAccommodations"
	CapManageAccommodations Capability = "manageAccommodations"

	// Sub-admin administration
	CapManageSubAdmins Capability = "manageSubAdmins"
)

// Set is an immutable-by-convention set of capability tokens.
type Set map[Capability]struct{}

// NewSet builds a set from raw tokens.
func NewSet(tokens ...string) Set {
	set := make(Set, len(tokens))
	for _, token := range tokens {
		set[Capability(token)] = struct{}{}
	}
	return set
}

// Has reports whether the capability is present.
func (s Set) Has(capability Capability) bool {
	_, ok := s[capability]
	return ok
}

// HasAll reports whether every given capability is present.
func (s Set) HasAll(capabilities ...Capability) bool {
	for _, capability := range capabilities {
		if !s.Has(capability) {
			return false
		}
	}
	return true
}

// Equal reports whether both sets contain exactly the same tokens.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for capability := range s {
		if !other.Has(capability) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (s Set) Clone() Set {
	clone := make(Set, len(s))
	for capability := range s {
		clone[capability] = struct{}{}
	}
	return clone
}

// Tokens returns the sorted raw tokens, for logging and persistence.
func (s Set) Tokens() []string {
	tokens := make([]string, 0, len(s))
	for capability := range s {
		tokens = append(tokens, string(capability))
	}
	sort.Strings(tokens)
	return tokens
}
