package entities

// LeaderboardEntry is one row of the community leaderboard.
type LeaderboardEntry struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Country   string `json:"country"`
	AvatarURL string `json:"avatar_url"`
	Points    int    `json:"points"`
	Change    int    `json:"change"`
}

type TimeframeStats struct {
	Value  float64 `json:"value"`
	Change float64 `json:"change"`
}

type CountryHighlight struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Code  string  `json:"code"`
}

type ActiveCountriesStats struct {
	// Development counts countries in development or operating.
	Development int `json:"development"`
	// TotalProposed counts every country past none.
	TotalProposed int `json:"total_proposed"`
}

type CommunityPoints struct {
	Weekly  TimeframeStats `json:"weekly"`
	Monthly TimeframeStats `json:"monthly"`
	AllTime TimeframeStats `json:"all_time"`
}

type NightsGoal struct {
	Current int `json:"current"`
	Target  int `json:"target"`
}

// GlobalStats aggregates the dashboard headline numbers.
type GlobalStats struct {
	TotalDistributed         float64              `json:"total_distributed"`
	ActiveCountriesOccupancy CountryHighlight     `json:"active_countries_occupancy"`
	ActiveCountriesNights    CountryHighlight     `json:"active_countries_nights"`
	ActiveCountriesStats     ActiveCountriesStats `json:"active_countries_stats"`
	CommunityPoints          CommunityPoints      `json:"community_points"`
	MonthlyNightsGoal        NightsGoal           `json:"monthly_nights_goal"`
}
