package entities

// Opportunity is a fractional-ownership cabin listed on the marketplace.
// It is immutable once fetched; AvailableSharesPct only changes through a
// share purchase.
type Opportunity struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	Images             []string `json:"images"`
	Location           string   `json:"location"`
	CountryID          string   `json:"country_id,omitempty"`
	Country            string   `json:"country"`
	Capacity           int      `json:"capacity"`
	Amenities          []string `json:"amenities"`
	Tags               []string `json:"tags"`
	DistanceFromCity   string   `json:"distance_from_city"`
	TotalPrice         float64  `json:"total_price"`
	AvailableSharesPct float64  `json:"available_shares_pct"`
	ExpectedRoiPct     float64  `json:"expected_roi_pct"`
}

// CoverImage returns the first image or an empty string.
func (o Opportunity) CoverImage() string {
	if len(o.Images) == 0 {
		return ""
	}
	return o.Images[0]
}
