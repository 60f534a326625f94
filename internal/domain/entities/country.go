package entities

import "strings"

// CountryStatus is a country's stage in the expansion pipeline.
//
// The order is the commitment depth:
// none < proposed < ambassador < signed < development < operating.
type CountryStatus string

const (
	CountryStatusNone        CountryStatus = "none"
	CountryStatusProposed    CountryStatus = "proposed"
	CountryStatusAmbassador  CountryStatus = "ambassador"
	CountryStatusSigned      CountryStatus = "signed"
	CountryStatusDevelopment CountryStatus = "development"
	CountryStatusOperating   CountryStatus = "operating"
)

// AllCountryStatuses lists every status in commitment order.
var AllCountryStatuses = []CountryStatus{
	CountryStatusNone,
	CountryStatusProposed,
	CountryStatusAmbassador,
	CountryStatusSigned,
	CountryStatusDevelopment,
	CountryStatusOperating,
}

// ParseCountryStatus never fails: unknown or empty values are treated as none.
func ParseCountryStatus(s string) CountryStatus {
	st := CountryStatus(strings.ToLower(strings.TrimSpace(s)))
	if st.Valid() {
		return st
	}
	return CountryStatusNone
}

func (s CountryStatus) Valid() bool {
	switch s {
	case CountryStatusNone, CountryStatusProposed, CountryStatusAmbassador,
		CountryStatusSigned, CountryStatusDevelopment, CountryStatusOperating:
		return true
	}
	return false
}

// Rank returns the ordinal position of the status (none=0 ... operating=5).
func (s CountryStatus) Rank() int {
	for i, st := range AllCountryStatuses {
		if st == s {
			return i
		}
	}
	return 0
}

// HasAmbassador reports whether the status implies an assigned ambassador.
func (s CountryStatus) HasAmbassador() bool {
	switch s {
	case CountryStatusAmbassador, CountryStatusSigned, CountryStatusDevelopment, CountryStatusOperating:
		return true
	}
	return false
}

// Color is the map fill color for the status.
func (s CountryStatus) Color() string {
	switch s {
	case CountryStatusProposed:
		return "#A7A9B2"
	case CountryStatusAmbassador:
		return "#D9A441"
	case CountryStatusSigned:
		return "#F97316"
	case CountryStatusDevelopment:
		return "#3F5B4C"
	case CountryStatusOperating:
		return "#988ACF"
	default:
		return "#2E344D"
	}
}

func (s CountryStatus) Label() string {
	switch s {
	case CountryStatusNone, "":
		return "Available Market"
	case CountryStatusProposed:
		return "Land Proposed"
	default:
		return string(s)
	}
}

// RecordSource tells whether a CountryProgress was synthesized or loaded from the store.
type RecordSource string

const (
	RecordSourceDerived RecordSource = "derived"
	RecordSourceStored  RecordSource = "stored"
)

// Ambassador is the local representative assigned to a country.
type Ambassador struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	AvatarURL          string `json:"avatar_url"`
	JoinedDate         string `json:"joined_date"`
	ContributionPoints int    `json:"contribution_points"`
}

// CountryProgress is one country's expansion state.
//
// Invariants:
//   - Progress is within [0,100]
//   - Ambassador != nil iff Status.HasAmbassador()
//   - every current sub-metric is <= its target
type CountryProgress struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Status      CountryStatus `json:"status"`
	Progress    int           `json:"progress"`
	Description string        `json:"description,omitempty"`
	Ambassador  *Ambassador   `json:"ambassador,omitempty"`
	Source      RecordSource  `json:"source"`

	LocationsProposed      int  `json:"locations_proposed"`
	LocationsTarget        int  `json:"locations_target"`
	ArchitectsRecommended  int  `json:"architects_recommended"`
	ArchitectsTarget       int  `json:"architects_target"`
	LawyerRecommended      bool `json:"lawyer_recommended"`
	AmbassadorApplications int  `json:"ambassador_applications"`
	AmbassadorTarget       int  `json:"ambassador_target"`

	HospitalityPartner    bool `json:"hospitality_partner"`
	ContentCreators       int  `json:"content_creators"`
	ContentCreatorsTarget int  `json:"content_creators_target"`
	MediaPartners         bool `json:"media_partners"`
	B2BClients            int  `json:"b2b_clients"`
	B2BClientsTarget      int  `json:"b2b_clients_target"`
}
