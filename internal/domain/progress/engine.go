// Package progress derives a country's expansion progress from its status.
//
// Two scoring regimes exist. Statuses with a commercial relationship
// (ambassador and beyond) get a fixed progress tier. Statuses without one
// (none, proposed) score the completed prerequisite tasks.
package progress

import (
	"fmt"
	"math"

	"nextribe/internal/domain/entities"
)

const (
	LocationsTarget       = 10
	ArchitectsTarget      = 3
	AmbassadorTarget      = 5
	ContentCreatorsTarget = 2
	B2BClientsTarget      = 3

	locationsWeight  = 40
	architectsWeight = 40
	lawyerWeight     = 20

	// Sampling thresholds: the boolean is true when Float64() exceeds them.
	lawyerThreshold      = 0.5
	hospitalityThreshold = 0.5
	mediaThreshold       = 0.7
)

// Engine synthesizes CountryProgress records. It is safe for concurrent use.
type Engine struct {
	rnd    Rand
	tables Tables
}

// NewEngine builds an engine over rnd. A nil rnd uses the global source.
func NewEngine(rnd Rand, tables Tables) *Engine {
	if rnd == nil {
		rnd = globalRand{}
	} else if _, ok := rnd.(*lockedRand); !ok {
		rnd = &lockedRand{src: rnd}
	}
	return &Engine{rnd: rnd, tables: tables.withDefaults()}
}

// NewSeeded is a deterministic engine with the default tables.
func NewSeeded(seed uint64) *Engine {
	return NewEngine(NewSeededRand(seed), DefaultTables())
}

// Derive builds the record for (id, name, status). Unknown statuses are
// treated as none. It never fails.
func (e *Engine) Derive(id, name string, status entities.CountryStatus) entities.CountryProgress {
	if !status.Valid() {
		status = entities.CountryStatusNone
	}

	rec := entities.CountryProgress{
		ID:                    id,
		Name:                  name,
		Status:                status,
		Source:                entities.RecordSourceDerived,
		LocationsProposed:     e.rnd.IntN(LocationsTarget),
		LocationsTarget:       LocationsTarget,
		ArchitectsRecommended: e.rnd.IntN(ArchitectsTarget),
		ArchitectsTarget:      ArchitectsTarget,
		LawyerRecommended:     e.rnd.Float64() > lawyerThreshold,
	}

	switch status {
	case entities.CountryStatusOperating:
		rec.Progress = 100
		rec.LocationsProposed = LocationsTarget
		rec.ArchitectsRecommended = ArchitectsTarget
		rec.LawyerRecommended = true
	case entities.CountryStatusDevelopment:
		rec.Progress = 60 + e.rnd.IntN(10)
		rec.LocationsProposed = 8
	case entities.CountryStatusSigned:
		rec.Progress = 30
	case entities.CountryStatusAmbassador:
		rec.Progress = 20
	case entities.CountryStatusProposed:
		rec.LocationsProposed = 5 + e.rnd.IntN(3)
	}

	// Task-derived regime: anything set above is discarded, not blended.
	if status == entities.CountryStatusNone || status == entities.CountryStatusProposed {
		rec.Progress = ScoreTasks(rec.LocationsProposed, rec.LocationsTarget,
			rec.ArchitectsRecommended, rec.ArchitectsTarget, rec.LawyerRecommended)
	}

	rec.AmbassadorApplications = e.rnd.IntN(AmbassadorTarget)
	rec.AmbassadorTarget = AmbassadorTarget
	rec.HospitalityPartner = e.rnd.Float64() > hospitalityThreshold
	rec.ContentCreators = e.rnd.IntN(ContentCreatorsTarget)
	rec.ContentCreatorsTarget = ContentCreatorsTarget
	rec.MediaPartners = e.rnd.Float64() > mediaThreshold
	rec.B2BClients = e.rnd.IntN(B2BClientsTarget)
	rec.B2BClientsTarget = B2BClientsTarget

	if status.HasAmbassador() {
		rec.Ambassador = e.ambassadorFor(id, name)
	}
	rec.Description = e.DefaultDescription(name)
	return rec
}

// DefaultDescription is the templated blurb used until (or instead of) a
// generated one.
func (e *Engine) DefaultDescription(name string) string {
	return fmt.Sprintf(e.tables.DescriptionFmt, name)
}

func (e *Engine) ambassadorFor(id, name string) *entities.Ambassador {
	ambName, ok := e.tables.AmbassadorNames[id]
	if !ok || ambName == "" {
		ambName = "Ambassador of " + name
	}
	return &entities.Ambassador{
		ID:                 "amb-" + id,
		Name:               ambName,
		AvatarURL:          fmt.Sprintf(e.tables.AvatarURLFormat, id),
		JoinedDate:         e.tables.JoinedDate,
		ContributionPoints: e.tables.ContributionPts,
	}
}

// ScoreTasks is the weighted completion score of the task-derived regime:
// round(40·loc/locTarget + 40·arch/archTarget + 20·lawyer). Zero targets
// contribute nothing.
func ScoreTasks(loc, locTarget, arch, archTarget int, lawyer bool) int {
	score := 0.0
	if locTarget > 0 {
		score += float64(loc) / float64(locTarget) * locationsWeight
	}
	if archTarget > 0 {
		score += float64(arch) / float64(archTarget) * architectsWeight
	}
	if lawyer {
		score += lawyerWeight
	}
	p := int(math.Round(score))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
