package services

import (
	"math/rand"
	"time"

	"claims-insights/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

// encounterProfile ties an encounter classification to the service category
// its claims usually land in.
type encounterProfile struct {
	Group           string
	Type            string
	ServiceCategory string
}

const (
	maxClaimLines      = 4
	claimIDDigits      = "##########"
	minPaidInpatient   = 1500.00
	maxPaidInpatient   = 45000.00
	minPaidOutpatient  = 80.00
	maxPaidOutpatient  = 3500.00
	minPaidOfficeBased = 40.00
	maxPaidOfficeBased = 600.00
)

type claimGenerator struct {
	encounterPool []encounterProfile
	faker         *gofakeit.Faker
	rng           *rand.Rand
}

// NewClaimGenerator creates a new claim generator
func NewClaimGenerator() ClaimGeneratorInterface {
	seed := time.Now().UnixNano()
	return &claimGenerator{
		encounterPool: initializeEncounterPool(),
		faker:         gofakeit.New(uint64(seed)),
		rng:           rand.New(rand.NewSource(seed)),
	}
}

// initializeEncounterPool lists the encounter classifications claims are
// drawn from, weighted by repetition.
func initializeEncounterPool() []encounterProfile {
	return []encounterProfile{
		// Office based dominates claim volume.
		{"office based", "office visit", "office visit"},
		{"office based", "office visit", "office visit"},
		{"office based", "office visit", "office visit"},
		{"office based", "office visit", "office visit"},
		{"office based", "telehealth visit", "office visit"},
		{"office based", "office visit - injection", "office visit"},
		{"office based", "office visit - radiology", "ancillary"},
		{"office based", "office visit - surgery", "office visit"},

		// Outpatient
		{"outpatient", "emergency department", "emergency department"},
		{"outpatient", "emergency department", "emergency department"},
		{"outpatient", "urgent care", "urgent care"},
		{"outpatient", "outpatient hospital or clinic", "outpatient hospital or clinic"},
		{"outpatient", "outpatient hospital or clinic", "outpatient hospital or clinic"},
		{"outpatient", "ambulatory surgery center", "ambulatory surgery center"},
		{"outpatient", "dialysis", "dialysis"},
		{"outpatient", "outpatient rehabilitation", "outpatient rehabilitation"},

		// Inpatient
		{"inpatient", "acute inpatient", "acute inpatient"},
		{"inpatient", "acute inpatient", "acute inpatient"},
		{"inpatient", "skilled nursing", "skilled nursing"},
		{"inpatient", "inpatient rehabilitation", "inpatient rehabilitation"},
		{"inpatient", "inpatient psychiatric", "inpatient psychiatric"},

		// Other
		{"other", "ambulance", "ambulance"},
		{"other", "home health", "home health"},
		{"other", "hospice", "hospice"},
		{"other", "durable medical equipment", "durable medical equipment"},
		{"other", "lab", "lab"},
		{"other", "lab", "lab"},
	}
}

// GenerateClaims produces claimCount synthetic claims for one source. Each
// claim carries one or more lines sharing the claim ID, with start dates
// spread uniformly across the window.
func (g *claimGenerator) GenerateClaims(source string, claimCount int, startDate, endDate time.Time) []models.ClaimRecord {
	records := make([]models.ClaimRecord, 0, claimCount)

	for i := 0; i < claimCount; i++ {
		profile := g.selectEncounterProfile()
		claimID := g.faker.Numerify(claimIDDigits)
		claimType := g.generateClaimType(source, profile.Group)
		claimDate := g.generateClaimDate(startDate, endDate)
		lineCount := g.generateLineCount(profile.Group)

		for line := 1; line <= lineCount; line++ {
			records = append(records, models.ClaimRecord{
				DataSource:       source,
				ClaimID:          claimID,
				ClaimLineNumber:  line,
				ClaimType:        claimType,
				EncounterGroup:   profile.Group,
				EncounterType:    profile.Type,
				ServiceCategory1: profile.ServiceCategory,
				ClaimStartDate:   claimDate,
				PaidAmount:       g.generatePaidAmount(profile.Group),
			})
		}
	}

	return records
}

func (g *claimGenerator) selectEncounterProfile() encounterProfile {
	return g.encounterPool[g.rng.Intn(len(g.encounterPool))]
}

// generateClaimType assigns institutional or professional. Inpatient claims
// are always institutional. The professional share among the rest differs by
// source so the two tables produce distinguishable mixes.
func (g *claimGenerator) generateClaimType(source, encounterGroup string) string {
	if encounterGroup == "inpatient" {
		return models.ClaimTypeInstitutional
	}

	professionalShare := 0.70
	if source == models.DataSourceCMSSynthetic {
		professionalShare = 0.45
	}

	if g.rng.Float64() < professionalShare {
		return models.ClaimTypeProfessional
	}
	return models.ClaimTypeInstitutional
}

func (g *claimGenerator) generateClaimDate(startDate, endDate time.Time) time.Time {
	diff := endDate.Sub(startDate)
	if diff <= 0 {
		return startDate
	}

	offset := time.Duration(g.rng.Int63n(int64(diff)))
	date := startDate.Add(offset)
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}

func (g *claimGenerator) generateLineCount(encounterGroup string) int {
	if encounterGroup == "inpatient" {
		return 1 + g.rng.Intn(maxClaimLines)
	}
	return 1 + g.rng.Intn(2)
}

func (g *claimGenerator) generatePaidAmount(encounterGroup string) decimal.Decimal {
	var minValue, maxValue float64
	switch encounterGroup {
	case "inpatient":
		minValue, maxValue = minPaidInpatient, maxPaidInpatient
	case "outpatient":
		minValue, maxValue = minPaidOutpatient, maxPaidOutpatient
	default:
		minValue, maxValue = minPaidOfficeBased, maxPaidOfficeBased
	}

	amount := minValue + g.rng.Float64()*(maxValue-minValue)
	return decimal.NewFromFloat(amount).Round(2)
}
