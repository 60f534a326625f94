package progress

// Tables is the static data the engine reads. It is injected so tests and
// deployments can substitute their own names.
type Tables struct {
	// AmbassadorNames maps an alpha-3 country code to its ambassador.
	AmbassadorNames map[string]string
	AvatarURLFormat string
	JoinedDate      string
	ContributionPts int
	DescriptionFmt  string
}

// DefaultTables returns the demo ambassador roster.
func DefaultTables() Tables {
	return Tables{
		AmbassadorNames: map[string]string{
			"BGR": "Elena Popova",
			"AUT": "Lukas Gruber",
			"ROU": "Andrei Ionescu",
			"GRC": "Nikos Papadopoulos",
			"SVN": "Maja Novak",
			"ITA": "Sofia Rossi",
			"MYS": "Ahmad Bin Ali",
			"CYP": "Eleni Christou",
			"FRA": "Camille Dubois",
			"DEU": "Marcus Weber",
			"GBR": "Sarah Jenkins",
		},
		AvatarURLFormat: "https://picsum.photos/60/60?random=%s",
		JoinedDate:      "2024-01-15",
		ContributionPts: 1250,
		DescriptionFmt:  "Expanding to the stunning landscapes of %s with rich history and local charm.",
	}
}

func (t Tables) withDefaults() Tables {
	d := DefaultTables()
	if t.AmbassadorNames == nil {
		t.AmbassadorNames = map[string]string{}
	}
	if t.AvatarURLFormat == "" {
		t.AvatarURLFormat = d.AvatarURLFormat
	}
	if t.JoinedDate == "" {
		t.JoinedDate = d.JoinedDate
	}
	if t.ContributionPts == 0 {
		t.ContributionPts = d.ContributionPts
	}
	if t.DescriptionFmt == "" {
		t.DescriptionFmt = d.DescriptionFmt
	}
	return t
}
