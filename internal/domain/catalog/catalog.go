// Package catalog holds the demo data served when the backing store is
// unreachable or empty.
package catalog

import "nextribe/internal/domain/entities"

// CountryStatusMap is the demo expansion state, keyed by alpha-3 code.
func CountryStatusMap() map[string]entities.CountryStatus {
	return map[string]entities.CountryStatus{
		"BGR": entities.CountryStatusDevelopment,
		"AUT": entities.CountryStatusSigned,
		"ROU": entities.CountryStatusAmbassador,
		"GRC": entities.CountryStatusAmbassador,
		"SVN": entities.CountryStatusAmbassador,
		"ITA": entities.CountryStatusAmbassador,
		"MYS": entities.CountryStatusAmbassador,
		"CYP": entities.CountryStatusAmbassador,
		"FRA": entities.CountryStatusAmbassador,
		"DEU": entities.CountryStatusAmbassador,
		"GBR": entities.CountryStatusAmbassador,
		"LTU": entities.CountryStatusProposed,
		"POL": entities.CountryStatusProposed,
		"JPN": entities.CountryStatusProposed,
		"USA": entities.CountryStatusNone,
		"TUR": entities.CountryStatusNone,
		"HRV": entities.CountryStatusNone,
	}
}

func GlobalStats() entities.GlobalStats {
	return entities.GlobalStats{
		TotalDistributed:         124500,
		ActiveCountriesOccupancy: entities.CountryHighlight{Name: "Greece", Value: 88, Code: "gr"},
		ActiveCountriesNights:    entities.CountryHighlight{Name: "Spain", Value: 1240, Code: "es"},
		ActiveCountriesStats:     entities.ActiveCountriesStats{Development: 4, TotalProposed: 14},
		CommunityPoints: entities.CommunityPoints{
			Weekly:  entities.TimeframeStats{Value: 1250, Change: 12},
			Monthly: entities.TimeframeStats{Value: 5400, Change: 8},
			AllTime: entities.TimeframeStats{Value: 45200, Change: 150},
		},
		MonthlyNightsGoal: entities.NightsGoal{Current: 8420, Target: 10000},
	}
}

func Leaderboard() []entities.LeaderboardEntry {
	return []entities.LeaderboardEntry{
		{ID: "1", Name: "Elena Popova", Country: "Bulgaria", Points: 4500, Change: 120, AvatarURL: "https://picsum.photos/50/50?random=1"},
		{ID: "2", Name: "Marcus Weber", Country: "Germany", Points: 4100, Change: -50, AvatarURL: "https://picsum.photos/50/50?random=2"},
		{ID: "3", Name: "Sofia Rossi", Country: "Italy", Points: 3850, Change: 200, AvatarURL: "https://picsum.photos/50/50?random=3"},
		{ID: "4", Name: "John Smith", Country: "UK", Points: 3200, Change: 10, AvatarURL: "https://picsum.photos/50/50?random=4"},
		{ID: "5", Name: "Ana Silva", Country: "Portugal", Points: 2900, Change: 80, AvatarURL: "https://picsum.photos/50/50?random=5"},
	}
}

// DemoProfileID identifies the profile returned when none is stored.
const DemoProfileID = "demo"

func Profile() entities.Profile {
	return entities.Profile{
		ID:                   DemoProfileID,
		Name:                 "Admin User",
		AvatarURL:            "https://picsum.photos/200/200?random=user",
		Level:                "Visionary Investor",
		TotalPoints:          12450,
		NextLevelPoints:      15000,
		TotalInvested:        85000,
		TotalYearlyReturn:    9350,
		TotalYearlyReturnPct: 11.2,
		RemainingFreeNights:  14,
		Investments: []entities.Investment{
			{
				ID:              "inv-1",
				ProfileID:       DemoProfileID,
				Name:            "Alpine Retreat Cabin",
				Location:        "Julian Alps",
				Country:         "Slovenia",
				Image:           "https://images.unsplash.com/photo-1449156493391-d2cfa28e468b?q=80&w=400&auto=format&fit=crop",
				Status:          entities.InvestmentStatusApproved,
				InvestmentSize:  45000,
				YearlyReturnVal: 5400,
				YearlyReturnPct: 12,
			},
			{
				ID:              "inv-2",
				ProfileID:       DemoProfileID,
				Name:            "Coastal Tiny Home",
				Location:        "Peloponnese",
				Country:         "Greece",
				Image:           "https://images.unsplash.com/photo-1499793983690-e29da59ef1c2?q=80&w=400&auto=format&fit=crop",
				Status:          entities.InvestmentStatusApproved,
				InvestmentSize:  40000,
				YearlyReturnVal: 3950,
				YearlyReturnPct: 9.8,
			},
		},
	}
}

func Opportunities() []entities.Opportunity {
	return []entities.Opportunity{
		{
			ID:    "opt-1",
			Title: "Forest Edge Eco-Cabin",
			Images: []string{
				"https://images.unsplash.com/photo-1587595431973-160d0d94add1?q=80&w=600&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1510798831971-661eb04b3739?q=80&w=600&auto=format&fit=crop",
			},
			Location:           "Transylvania",
			CountryID:          "ROU",
			Country:            "Romania",
			Capacity:           4,
			Amenities:          []string{"Hot Tub", "Fireplace", "Smart Home", "EV Charger"},
			Tags:               []string{"Forest View", "Pet Friendly", "Strong Wifi"},
			DistanceFromCity:   "45 min from Cluj-Napoca",
			TotalPrice:         120000,
			AvailableSharesPct: 60,
			ExpectedRoiPct:     11.5,
		},
		{
			ID:    "opt-2",
			Title: "Lakeside Mirror House",
			Images: []string{
				"https://images.unsplash.com/photo-1470770903676-69b98201ea1c?q=80&w=600&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1464822759023-fed622ff2c3b?q=80&w=600&auto=format&fit=crop",
			},
			Location:           "Lake Bled",
			CountryID:          "SVN",
			Country:            "Slovenia",
			Capacity:           2,
			Amenities:          []string{"Private Dock", "Sauna", "Panorama Glass", "Kayak"},
			Tags:               []string{"Lake View", "Sunrise View", "Romantic"},
			DistanceFromCity:   "30 min from Ljubljana",
			TotalPrice:         180000,
			AvailableSharesPct: 25,
			ExpectedRoiPct:     9.8,
		},
		{
			ID:    "opt-3",
			Title: "River Canyon Lodge",
			Images: []string{
				"https://images.unsplash.com/photo-1520250497591-112f2f40a3f4?q=80&w=600&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1518780664697-55e3ad937233?q=80&w=600&auto=format&fit=crop",
			},
			Location:           "Tara Canyon",
			CountryID:          "MNE",
			Country:            "Montenegro",
			Capacity:           6,
			Amenities:          []string{"Large Deck", "BBQ Station", "River Access", "Starlink"},
			Tags:               []string{"Next to River", "Kids Friendly", "Nature Immersion"},
			DistanceFromCity:   "1.5h from Podgorica",
			TotalPrice:         145000,
			AvailableSharesPct: 85,
			ExpectedRoiPct:     12.2,
		},
		{
			ID:    "opt-4",
			Title: "Tropical Jungle Dome",
			Images: []string{
				"https://images.unsplash.com/photo-1571003123894-1f0594d2b5d9?q=80&w=600&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1583608205776-bfd35f0d9f8e?q=80&w=600&auto=format&fit=crop",
			},
			Location:           "Ubud",
			CountryID:          "IDN",
			Country:            "Indonesia",
			Capacity:           2,
			Amenities:          []string{"Infinity Pool", "Jungle View", "Yoga Deck", "Scooter Incl."},
			Tags:               []string{"Tropical", "Sunset View", "Wellness"},
			DistanceFromCity:   "1h from Denpasar",
			TotalPrice:         95000,
			AvailableSharesPct: 40,
			ExpectedRoiPct:     13.5,
		},
		{
			ID:    "opt-5",
			Title: "Nordic Aurora Glass Igloo",
			Images: []string{
				"https://images.unsplash.com/photo-1518182170546-0766ca6fdd69?q=80&w=600&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1445548671936-e1ff8a6a6b20?q=80&w=600&auto=format&fit=crop",
			},
			Location:           "Rovaniemi",
			CountryID:          "FIN",
			Country:            "Finland",
			Capacity:           2,
			Amenities:          []string{"Glass Roof", "Private Sauna", "Floor Heating", "Reindeer Safari"},
			Tags:               []string{"Aurora View", "Snow", "Romantic"},
			DistanceFromCity:   "15 min from Airport",
			TotalPrice:         165000,
			AvailableSharesPct: 15,
			ExpectedRoiPct:     10.2,
		},
		{
			ID:    "opt-6",
			Title: "Desert Oasis Tiny Home",
			Images: []string{
				"https://images.unsplash.com/photo-1469854523086-cc02fe5d8800?q=80&w=600&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1542324623-05c77e9b087d?q=80&w=600&auto=format&fit=crop",
			},
			Location:           "Joshua Tree",
			CountryID:          "USA",
			Country:            "USA",
			Capacity:           4,
			Amenities:          []string{"Fire Pit", "Stargazing Deck", "Outdoor Shower", "Solar Power"},
			Tags:               []string{"Desert", "Stargazing", "Pet Friendly"},
			DistanceFromCity:   "2h from LA",
			TotalPrice:         135000,
			AvailableSharesPct: 70,
			ExpectedRoiPct:     11.0,
		},
	}
}
