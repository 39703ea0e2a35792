// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seed

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/whr-dashboard/cliparse"
	"github.com/danielhkuo/whr-dashboard/db"
	"github.com/danielhkuo/whr-dashboard/models"
	"github.com/danielhkuo/whr-dashboard/testutil"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func countRows(t *testing.T, conn *sqlx.DB, table string) int {
	t.Helper()
	var n int
	if err := conn.Get(&n, "SELECT COUNT(*) FROM "+table); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}

func TestReferenceSets(t *testing.T) {
	regions := ReferenceRegions()
	countries := ReferenceCountries()

	if len(regions) != 10 {
		t.Errorf("Expected 10 regions, got %d", len(regions))
	}
	if len(countries) != 171 {
		t.Errorf("Expected 171 countries, got %d", len(countries))
	}

	regionIDs := map[int]bool{}
	for _, r := range regions {
		regionIDs[r.ID] = true
	}

	ids := map[int]bool{}
	names := map[string]bool{}
	for _, c := range countries {
		if ids[c.ID] {
			t.Errorf("duplicate country id %d", c.ID)
		}
		if names[c.Name] {
			t.Errorf("duplicate country name %q", c.Name)
		}
		if !regionIDs[c.RegionID] {
			t.Errorf("%s references unknown region %d", c.Name, c.RegionID)
		}
		ids[c.ID] = true
		names[c.Name] = true
	}
}

func TestReadYearFile_JSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "world_happiness_2015.json", `[
		{"ranking": 1, "country_name": "Switzerland", "region_name": "Western Europe",
		 "happiness_score": 7.587, "gdp_per_capita": 1.39651, "social_support": 1.34951,
		 "healthy_life_expectancy": 0.94143, "freedom_to_make_life_choices": 0.66557,
		 "generosity": 0.29678, "perceptions_of_corruption": 0.41978, "dystopia_residual": 2.51738},
		{"ranking": 2, "country_name": " Iceland ", "happiness_score": 7.561, "dystopia_residual": null}
	]`)

	records, err := ReadYearFile(path)
	if err != nil {
		t.Fatalf("ReadYearFile: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}

	sw := records[0]
	if sw.Year != 2015 || sw.Ranking != 1 || sw.CountryName != "Switzerland" {
		t.Errorf("unexpected first record: %+v", sw)
	}
	if sw.HappinessScore.String() != "7.587" {
		t.Errorf("Expected exact score 7.587, got %s", sw.HappinessScore)
	}
	if records[1].CountryName != "Iceland" {
		t.Errorf("Expected trimmed name, got %q", records[1].CountryName)
	}
	if records[1].DystopiaResidual.Valid || records[1].GDPPerCapita.Valid {
		t.Error("Expected absent values to stay missing")
	}
}

func TestReadYearFile_CSV(t *testing.T) {
	path := writeFile(t, t.TempDir(), "world_happiness_2020.csv",
		"\ufeffRanking;Country;Regional indicator;Happiness score;GDP per capita;Social support;Healthy life expectancy;Freedom to make life choices;Generosity;Perceptions of corruption\n"+
			"1;Finland;Western Europe;7,809;1,285;1,5;0,961;0,662;0,16;0,478\n"+
			"2;Denmark;Western Europe;7,646;;n/a;0,979;0,665;0,243;0,495\n"+
			";;;;;;;;;\n")

	records, err := ReadYearFile(path)
	if err != nil {
		t.Fatalf("ReadYearFile: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}

	fi := records[0]
	if fi.Year != 2020 || fi.Ranking != 1 || fi.RegionName != "Western Europe" {
		t.Errorf("unexpected record: %+v", fi)
	}
	if fi.HappinessScore.String() != "7.809" {
		t.Errorf("Expected decimal comma to parse, got %s", fi.HappinessScore)
	}
	if fi.DystopiaResidual.Valid {
		t.Error("Expected dystopia residual to be missing without a column")
	}

	dk := records[1]
	if dk.GDPPerCapita.Valid || dk.SocialSupport.Valid {
		t.Error("Expected empty and non-numeric cells to be missing")
	}
	if !dk.LifeExpectancy.Valid {
		t.Error("Expected life expectancy to parse")
	}
}

func TestReadYearFile_BadName(t *testing.T) {
	path := writeFile(t, t.TempDir(), "happiness.json", "[]")
	if _, err := ReadYearFile(path); !errors.Is(err, ErrFileName) {
		t.Errorf("Expected ErrFileName, got %v", err)
	}
}

func TestReadDir_PrefersJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "world_happiness_2016.csv", "Ranking,Country,Happiness score\n1,Denmark,7.526\n")
	writeFile(t, dir, "world_happiness_2015.json", `[{"ranking": 1, "country_name": "Switzerland", "happiness_score": 7.587}]`)
	writeFile(t, dir, "world_happiness_2015.csv", "Ranking,Country,Happiness score\n1,Iceland,1.0\n")
	writeFile(t, dir, "notes.txt", "ignored")

	records, err := ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[0].Year != 2015 || records[0].CountryName != "Switzerland" {
		t.Errorf("Expected 2015 JSON record first, got %+v", records[0])
	}
	if records[1].Year != 2016 || records[1].CountryName != "Denmark" {
		t.Errorf("Expected 2016 CSV record second, got %+v", records[1])
	}
}

func TestReadDir_Empty(t *testing.T) {
	if _, err := ReadDir(t.TempDir()); !errors.Is(err, ErrFileName) {
		t.Errorf("Expected ErrFileName, got %v", err)
	}
}

func TestBuild(t *testing.T) {
	records := []Record{
		{Year: 2015, Ranking: 1, CountryName: "Switzerland", HappinessScore: models.NumberOf(7.587),
			GDPPerCapita: models.NumberOf(1.397), Generosity: models.NumberOf(0.297)},
		{Year: 2015, Ranking: 2, CountryName: "iceland", HappinessScore: models.NumberOf(7.561)},
		{Year: 2015, Ranking: 3, CountryName: "Atlantis", HappinessScore: models.NumberOf(9)},
		{Year: 2015, Ranking: 4, CountryName: "Denmark"},
		{Year: 2015, Ranking: 0, CountryName: "Norway", HappinessScore: models.NumberOf(7.5)},
		{Year: 2015, Ranking: 5, CountryName: "Switzerland", HappinessScore: models.NumberOf(7.0)},
	}

	ds, skipped := Build(ReferenceRegions(), ReferenceCountries(), records)

	if len(ds.Reports) != 2 {
		t.Fatalf("Expected 2 reports, got %d", len(ds.Reports))
	}
	if len(skipped) != 4 {
		t.Fatalf("Expected 4 skipped records, got %d: %v", len(skipped), skipped)
	}

	reasons := map[string]string{}
	for _, s := range skipped {
		reasons[s.Country] = s.Reason
	}
	if reasons["Atlantis"] != "unknown country" || reasons["Denmark"] != "missing happiness score" ||
		reasons["Norway"] != "missing ranking" || reasons["Switzerland"] != "duplicate country and year" {
		t.Errorf("unexpected skip reasons: %v", reasons)
	}

	if ds.Reports[0].ID != 1 || ds.Reports[0].CountryID != 1 {
		t.Errorf("unexpected first report: %+v", ds.Reports[0])
	}
	if ds.Reports[1].CountryID != 2 {
		t.Errorf("Expected case-insensitive match for Iceland, got country %d", ds.Reports[1].CountryID)
	}

	// Indicator rows only exist where at least one value is present.
	if len(ds.Economic) != 1 || ds.Economic[0].ReportID != 1 || ds.Economic[0].ID != 1 {
		t.Errorf("unexpected economic rows: %+v", ds.Economic)
	}
	if len(ds.Social) != 0 {
		t.Errorf("Expected no social rows, got %d", len(ds.Social))
	}
	if len(ds.Perceptions) != 1 || ds.Perceptions[0].Corruption.Valid {
		t.Errorf("Expected one perception row with missing corruption, got %+v", ds.Perceptions)
	}
}

func TestSynthetic(t *testing.T) {
	years := []int{2015, 2016}
	a := Synthetic(years, 7)
	b := Synthetic(years, 7)

	if len(a.Reports) != 171*len(years) {
		t.Fatalf("Expected %d reports, got %d", 171*len(years), len(a.Reports))
	}
	if len(a.Economic) != len(a.Reports) || len(a.Social) != len(a.Reports) || len(a.Perceptions) != len(a.Reports) {
		t.Error("Expected every synthetic report to carry all indicators")
	}

	for i := range a.Reports {
		if !a.Reports[i].HappinessScore.Decimal.Equal(b.Reports[i].HappinessScore.Decimal) {
			t.Fatal("Expected the same seed to produce the same data")
		}
	}

	for _, year := range years {
		byRank := map[int]models.HappinessReport{}
		for _, r := range a.Reports {
			if r.Year == year {
				byRank[r.Ranking] = r
			}
		}
		if len(byRank) != 171 {
			t.Fatalf("%d: expected 171 distinct ranks, got %d", year, len(byRank))
		}
		for rank := 1; rank < 171; rank++ {
			hi, lo := byRank[rank], byRank[rank+1]
			if hi.HappinessScore.Decimal.LessThan(lo.HappinessScore.Decimal) {
				t.Errorf("%d: rank %d scored below rank %d", year, rank, rank+1)
			}
		}
	}
}

func TestLoad(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	ctx := context.Background()
	ds := Synthetic([]int{2015, 2016}, 1)

	if err := Load(ctx, conn, ds); err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := map[string]int{
		"region":               10,
		"country":              171,
		"happiness_report":     342,
		"economic_indicator":   342,
		"social_indicator":     342,
		"perception_indicator": 342,
	}
	for table, n := range want {
		if got := countRows(t, conn, table); got != n {
			t.Errorf("%s: expected %d rows, got %d", table, n, got)
		}
	}

	t.Run("reload without clear fails and rolls back", func(t *testing.T) {
		err := Load(ctx, conn, ds)
		if !errors.Is(err, db.ErrUniqueViolation) {
			t.Fatalf("Expected ErrUniqueViolation, got %v", err)
		}
		if got := countRows(t, conn, "region"); got != 10 {
			t.Errorf("Expected rollback to keep 10 regions, got %d", got)
		}
	})

	t.Run("clear then reload", func(t *testing.T) {
		if err := Clear(ctx, conn); err != nil {
			t.Fatalf("Clear: %v", err)
		}
		for _, table := range db.Tables {
			if got := countRows(t, conn, table); got != 0 {
				t.Errorf("%s: expected empty table, got %d", table, got)
			}
		}
		if err := Load(ctx, conn, ds); err != nil {
			t.Fatalf("reload: %v", err)
		}
	})
}

func TestLoad_ForeignKeyViolation(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	ds := Dataset{
		Regions:   []models.Region{{ID: 1, Name: "Western Europe"}},
		Countries: []models.Country{{ID: 1, Name: "Switzerland", RegionID: 99}},
	}

	err := Load(context.Background(), conn, ds)
	if !errors.Is(err, db.ErrForeignKeyViolation) {
		t.Fatalf("Expected ErrForeignKeyViolation, got %v", err)
	}
	if got := countRows(t, conn, "region"); got != 0 {
		t.Errorf("Expected nothing committed, got %d regions", got)
	}
}

func TestLoad_KeepsMissingValuesNull(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	records := []Record{
		{Year: 2015, Ranking: 1, CountryName: "Switzerland", HappinessScore: models.NumberOf(7.587),
			SocialSupport: models.NumberOf(1.35)},
	}
	ds, _ := Build(ReferenceRegions(), ReferenceCountries(), records)
	if err := Load(context.Background(), conn, ds); err != nil {
		t.Fatalf("Load: %v", err)
	}

	var nulls int
	err := conn.Get(&nulls, `
		SELECT COUNT(*) FROM happiness_report hr
		JOIN social_indicator si ON si.report_id = hr.report_id
		WHERE hr.dystopia_residual IS NULL
		  AND si.healthy_life_expectancy IS NULL
		  AND si.freedom_to_make_life_choices IS NULL
	`)
	if err != nil {
		t.Fatal(err)
	}
	if nulls != 1 {
		t.Errorf("Expected missing values stored as NULL, got %d matching rows", nulls)
	}
	if got := countRows(t, conn, "economic_indicator"); got != 0 {
		t.Errorf("Expected no economic row, got %d", got)
	}
}

func TestFromSource(t *testing.T) {
	ds, err := FromSource(cliparse.LoadSynthetic)
	if err != nil {
		t.Fatal(err)
	}
	if len(ds.Reports) != 171*len(DefaultYears) {
		t.Errorf("Expected %d synthetic reports, got %d", 171*len(DefaultYears), len(ds.Reports))
	}

	dir := t.TempDir()
	writeFile(t, dir, "world_happiness_2015.json", `[
		{"ranking": 1, "country_name": "Switzerland", "happiness_score": 7.587},
		{"ranking": 2, "country_name": "Nowhere", "happiness_score": 7.5}
	]`)
	ds, err = FromSource(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(ds.Reports) != 1 || len(ds.Countries) != 171 {
		t.Errorf("Expected 1 report over the reference countries, got %d reports, %d countries", len(ds.Reports), len(ds.Countries))
	}
}
