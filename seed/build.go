// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seed

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/danielhkuo/whr-dashboard/models"
)

// DefaultYears is the window covered by the published reports.
var DefaultYears = []int{2015, 2016, 2017, 2018, 2019, 2020, 2021, 2022, 2023, 2024}

// Dataset holds rows for every table in dependency order.
type Dataset struct {
	Regions     []models.Region
	Countries   []models.Country
	Reports     []models.HappinessReport
	Economic    []models.EconomicIndicator
	Social      []models.SocialIndicator
	Perceptions []models.PerceptionIndicator
}

// Skipped is a record Build could not turn into a report.
type Skipped struct {
	Year    int
	Country string
	Reason  string
}

func (s Skipped) String() string {
	return fmt.Sprintf("%d %s: %s", s.Year, s.Country, s.Reason)
}

// Build turns yearly records into a Dataset. Report ids are assigned in
// record order starting at 1 and each indicator row reuses its report id.
// Indicator rows are only created when at least one of their values is
// present. Records that cannot become a report are returned as skipped.
func Build(regions []models.Region, countries []models.Country, records []Record) (Dataset, []Skipped) {
	ds := Dataset{Regions: regions, Countries: countries}

	byName := make(map[string]int, len(countries))
	for _, c := range countries {
		byName[normalizeName(c.Name)] = c.ID
	}

	type key struct{ country, year int }
	seen := make(map[key]bool, len(records))

	var skipped []Skipped
	nextID := 1
	for _, rec := range records {
		skip := func(reason string) {
			skipped = append(skipped, Skipped{Year: rec.Year, Country: rec.CountryName, Reason: reason})
		}

		countryID, ok := byName[normalizeName(rec.CountryName)]
		switch {
		case !ok:
			skip("unknown country")
			continue
		case !rec.HappinessScore.Valid:
			skip("missing happiness score")
			continue
		case rec.Ranking <= 0:
			skip("missing ranking")
			continue
		case seen[key{countryID, rec.Year}]:
			skip("duplicate country and year")
			continue
		}
		seen[key{countryID, rec.Year}] = true

		id := nextID
		nextID++

		ds.Reports = append(ds.Reports, models.HappinessReport{
			ID:               id,
			CountryID:        countryID,
			Year:             rec.Year,
			Ranking:          rec.Ranking,
			HappinessScore:   rec.HappinessScore,
			DystopiaResidual: rec.DystopiaResidual,
		})
		if rec.GDPPerCapita.Valid {
			ds.Economic = append(ds.Economic, models.EconomicIndicator{
				ID: id, ReportID: id, GDPPerCapita: rec.GDPPerCapita,
			})
		}
		if rec.SocialSupport.Valid || rec.LifeExpectancy.Valid || rec.Freedom.Valid {
			ds.Social = append(ds.Social, models.SocialIndicator{
				ID: id, ReportID: id,
				SocialSupport:  rec.SocialSupport,
				LifeExpectancy: rec.LifeExpectancy,
				Freedom:        rec.Freedom,
			})
		}
		if rec.Generosity.Valid || rec.Corruption.Valid {
			ds.Perceptions = append(ds.Perceptions, models.PerceptionIndicator{
				ID: id, ReportID: id,
				Generosity: rec.Generosity,
				Corruption: rec.Corruption,
			})
		}
	}
	return ds, skipped
}

// Synthetic generates a complete dataset over the reference countries for
// the given years. The same seed always yields the same rows. Rankings
// follow the generated scores within each year.
func Synthetic(years []int, seed uint64) Dataset {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	countries := ReferenceCountries()

	var records []Record
	for _, year := range years {
		yearly := make([]Record, len(countries))
		for i, c := range countries {
			yearly[i] = Record{
				Year:             year,
				CountryName:      c.Name,
				HappinessScore:   uniform(rng, 2.5, 7.8),
				DystopiaResidual: uniform(rng, 1.0, 2.5),
				GDPPerCapita:     uniform(rng, 0.0, 1.5),
				SocialSupport:    uniform(rng, 0.5, 1.5),
				LifeExpectancy:   uniform(rng, 0.3, 1.0),
				Freedom:          uniform(rng, 0.2, 0.6),
				Generosity:       uniform(rng, -0.1, 0.3),
				Corruption:       uniform(rng, 0.05, 0.5),
			}
		}
		sort.SliceStable(yearly, func(i, j int) bool {
			return yearly[i].HappinessScore.Decimal.GreaterThan(yearly[j].HappinessScore.Decimal)
		})
		for i := range yearly {
			yearly[i].Ranking = i + 1
		}
		records = append(records, yearly...)
	}

	ds, _ := Build(ReferenceRegions(), countries, records)
	return ds
}

func uniform(rng *rand.Rand, lo, hi float64) models.Number {
	v := lo + rng.Float64()*(hi-lo)
	return models.Number{Decimal: decimal.NewFromFloat(math.Round(v*1000) / 1000), Valid: true}
}

func normalizeName(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
