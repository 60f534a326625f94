package progress

import (
	"math"
	"sync"
	"testing"

	"nextribe/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRand replays fixed values; IntN results are taken modulo n.
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (s *scriptedRand) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *scriptedRand) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func TestEngine_OperatingIsPinned(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		rec := NewSeeded(seed).Derive("BGR", "Bulgaria", entities.CountryStatusOperating)

		assert.Equal(t, 100, rec.Progress)
		assert.Equal(t, 10, rec.LocationsProposed)
		assert.Equal(t, 3, rec.ArchitectsRecommended)
		assert.True(t, rec.LawyerRecommended)
		require.NotNil(t, rec.Ambassador)
	}
}

func TestEngine_TaskRegimeConsistency(t *testing.T) {
	for _, status := range []entities.CountryStatus{entities.CountryStatusNone, entities.CountryStatusProposed} {
		for seed := uint64(0); seed < 200; seed++ {
			rec := NewSeeded(seed).Derive("POL", "Poland", status)

			lawyer := 0.0
			if rec.LawyerRecommended {
				lawyer = 20
			}
			want := int(math.Round(40*float64(rec.LocationsProposed)/10 + 40*float64(rec.ArchitectsRecommended)/3 + lawyer))
			assert.Equal(t, want, rec.Progress, "status=%s seed=%d", status, seed)
			assert.GreaterOrEqual(t, rec.Progress, 0)
			assert.LessOrEqual(t, rec.Progress, 100)
			assert.Nil(t, rec.Ambassador)
		}
	}
}

func TestEngine_ProposedBoostsLocations(t *testing.T) {
	for seed := uint64(0); seed < 100; seed++ {
		rec := NewSeeded(seed).Derive("JPN", "Japan", entities.CountryStatusProposed)
		assert.GreaterOrEqual(t, rec.LocationsProposed, 5)
		assert.LessOrEqual(t, rec.LocationsProposed, 7)
	}
}

func TestEngine_FixedTiers(t *testing.T) {
	for seed := uint64(0); seed < 100; seed++ {
		e := NewSeeded(seed)

		dev := e.Derive("BGR", "Bulgaria", entities.CountryStatusDevelopment)
		assert.GreaterOrEqual(t, dev.Progress, 60)
		assert.Less(t, dev.Progress, 70)
		assert.Equal(t, 8, dev.LocationsProposed)

		assert.Equal(t, 30, e.Derive("AUT", "Austria", entities.CountryStatusSigned).Progress)
		assert.Equal(t, 20, e.Derive("ITA", "Italy", entities.CountryStatusAmbassador).Progress)
	}
}

func TestEngine_AmbassadorPresence(t *testing.T) {
	e := NewSeeded(7)
	for _, st := range entities.AllCountryStatuses {
		rec := e.Derive("XXX", "Atlantis", st)
		assert.Equal(t, st.HasAmbassador(), rec.Ambassador != nil, "status=%s", st)
	}
}

func TestEngine_AmbassadorRecord(t *testing.T) {
	e := NewSeeded(1)

	rec := e.Derive("BGR", "Bulgaria", entities.CountryStatusSigned)
	require.NotNil(t, rec.Ambassador)
	assert.Equal(t, "amb-BGR", rec.Ambassador.ID)
	assert.Equal(t, "Elena Popova", rec.Ambassador.Name)
	assert.Equal(t, "https://picsum.photos/60/60?random=BGR", rec.Ambassador.AvatarURL)
	assert.Equal(t, "2024-01-15", rec.Ambassador.JoinedDate)
	assert.Equal(t, 1250, rec.Ambassador.ContributionPoints)

	rec = e.Derive("ESP", "Spain", entities.CountryStatusSigned)
	require.NotNil(t, rec.Ambassador)
	assert.Equal(t, "Ambassador of Spain", rec.Ambassador.Name)
}

func TestEngine_InjectedTables(t *testing.T) {
	e := NewEngine(NewSeededRand(3), Tables{AmbassadorNames: map[string]string{"ESP": "Lucia Garcia"}})

	rec := e.Derive("ESP", "Spain", entities.CountryStatusAmbassador)
	require.NotNil(t, rec.Ambassador)
	assert.Equal(t, "Lucia Garcia", rec.Ambassador.Name)
	assert.Equal(t, "Expanding to the stunning landscapes of Spain with rich history and local charm.", rec.Description)
}

func TestEngine_UnknownStatusIsNone(t *testing.T) {
	rec := NewSeeded(9).Derive("XXX", "Nowhere", entities.CountryStatus("archived"))
	assert.Equal(t, entities.CountryStatusNone, rec.Status)
	assert.Nil(t, rec.Ambassador)
}

func TestEngine_ScriptedSampling(t *testing.T) {
	// baseline loc=4 arch=2 lawyer(0.9) | proposed boost 2 -> loc=7 | optional metrics
	rnd := &scriptedRand{
		ints:   []int{4, 2, 2, 3, 1, 2},
		floats: []float64{0.9, 0.4, 0.8},
	}
	rec := NewEngine(rnd, DefaultTables()).Derive("LTU", "Lithuania", entities.CountryStatusProposed)

	assert.Equal(t, 7, rec.LocationsProposed)
	assert.Equal(t, 2, rec.ArchitectsRecommended)
	assert.True(t, rec.LawyerRecommended)
	// 40*0.7 + 40*2/3 + 20 = 74.67
	assert.Equal(t, 75, rec.Progress)
	assert.Equal(t, 3, rec.AmbassadorApplications)
	assert.False(t, rec.HospitalityPartner)
	assert.Equal(t, 1, rec.ContentCreators)
	assert.True(t, rec.MediaPartners)
	assert.Equal(t, 2, rec.B2BClients)
}

func TestEngine_SubMetricsWithinTargets(t *testing.T) {
	e := NewSeeded(11)
	for i := 0; i < 300; i++ {
		st := entities.AllCountryStatuses[i%len(entities.AllCountryStatuses)]
		rec := e.Derive("GRC", "Greece", st)
		assert.LessOrEqual(t, rec.LocationsProposed, rec.LocationsTarget)
		assert.LessOrEqual(t, rec.ArchitectsRecommended, rec.ArchitectsTarget)
		assert.LessOrEqual(t, rec.AmbassadorApplications, rec.AmbassadorTarget)
		assert.LessOrEqual(t, rec.ContentCreators, rec.ContentCreatorsTarget)
		assert.LessOrEqual(t, rec.B2BClients, rec.B2BClientsTarget)
	}
}

func TestEngine_SameSeedSameRecord(t *testing.T) {
	a := NewSeeded(42).Derive("ROU", "Romania", entities.CountryStatusNone)
	b := NewSeeded(42).Derive("ROU", "Romania", entities.CountryStatusNone)
	assert.Equal(t, a, b)
}

func TestEngine_ConcurrentDerive(t *testing.T) {
	e := NewSeeded(5)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				rec := e.Derive("FRA", "France", entities.CountryStatusProposed)
				if rec.Progress < 0 || rec.Progress > 100 {
					t.Errorf("progress out of range: %d", rec.Progress)
				}
			}
		}()
	}
	wg.Wait()
}

func TestScoreTasks(t *testing.T) {
	assert.Equal(t, 100, ScoreTasks(10, 10, 3, 3, true))
	assert.Equal(t, 0, ScoreTasks(0, 10, 0, 3, false))
	assert.Equal(t, 20, ScoreTasks(0, 0, 0, 0, true))
	assert.Equal(t, 13, ScoreTasks(0, 10, 1, 3, false))
}
