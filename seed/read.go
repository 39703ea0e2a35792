// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/danielhkuo/whr-dashboard/models"
)

var ErrFileName = errors.New("expected world_happiness_<year>.json or .csv")

var yearFile = regexp.MustCompile(`^world_happiness_(\d{4})\.(json|csv)$`)

// Record is one country's row from a yearly report file. Any measure
// may be missing.
type Record struct {
	Year             int           `json:"year"`
	Ranking          int           `json:"ranking"`
	CountryName      string        `json:"country_name"`
	RegionName       string        `json:"region_name"`
	HappinessScore   models.Number `json:"happiness_score"`
	DystopiaResidual models.Number `json:"dystopia_residual"`
	GDPPerCapita     models.Number `json:"gdp_per_capita"`
	SocialSupport    models.Number `json:"social_support"`
	LifeExpectancy   models.Number `json:"healthy_life_expectancy"`
	Freedom          models.Number `json:"freedom_to_make_life_choices"`
	Generosity       models.Number `json:"generosity"`
	Corruption       models.Number `json:"perceptions_of_corruption"`
}

// ReadYearFile reads world_happiness_<year>.json (cleaned records) or
// world_happiness_<year>.csv (raw export). The year comes from the file name.
func ReadYearFile(path string) ([]Record, error) {
	m := yearFile.FindStringSubmatch(filepath.Base(path))
	if m == nil {
		return nil, fmt.Errorf("%s: %w", path, ErrFileName)
	}
	year, _ := strconv.Atoi(m[1])

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []Record
	switch m[2] {
	case "json":
		records, err = decodeJSON(f)
	case "csv":
		records, err = decodeCSV(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	for i := range records {
		records[i].Year = year
	}
	return records, nil
}

// ReadDir reads every year file in dir, oldest year first. When a year
// exists in both formats the JSON file wins.
func ReadDir(dir string) ([]Record, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	byYear := map[string]string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m := yearFile.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		if prev, ok := byYear[m[1]]; ok && strings.HasSuffix(prev, ".json") {
			continue
		}
		byYear[m[1]] = filepath.Join(dir, e.Name())
	}
	if len(byYear) == 0 {
		return nil, fmt.Errorf("no year files in %s: %w", dir, ErrFileName)
	}

	years := make([]string, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Strings(years)

	var all []Record
	for _, y := range years {
		records, err := ReadYearFile(byYear[y])
		if err != nil {
			return nil, err
		}
		all = append(all, records...)
	}
	return all, nil
}

func decodeJSON(r io.Reader) ([]Record, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, err
	}
	for i := range records {
		records[i].CountryName = strings.TrimSpace(records[i].CountryName)
		records[i].RegionName = strings.TrimSpace(records[i].RegionName)
	}
	return records, nil
}

// Column headers of the raw yearly export.
var csvColumns = map[string]func(*Record, string){
	"ranking":                      func(r *Record, v string) { r.Ranking = parseRank(v) },
	"country":                      func(r *Record, v string) { r.CountryName = v },
	"regional indicator":           func(r *Record, v string) { r.RegionName = v },
	"happiness score":              func(r *Record, v string) { r.HappinessScore = parseCell(v) },
	"gdp per capita":               func(r *Record, v string) { r.GDPPerCapita = parseCell(v) },
	"social support":               func(r *Record, v string) { r.SocialSupport = parseCell(v) },
	"healthy life expectancy":      func(r *Record, v string) { r.LifeExpectancy = parseCell(v) },
	"freedom to make life choices": func(r *Record, v string) { r.Freedom = parseCell(v) },
	"generosity":                   func(r *Record, v string) { r.Generosity = parseCell(v) },
	"perceptions of corruption":    func(r *Record, v string) { r.Corruption = parseCell(v) },
	"dystopia residual":            func(r *Record, v string) { r.DystopiaResidual = parseCell(v) },
	"dystopia + residual":          func(r *Record, v string) { r.DystopiaResidual = parseCell(v) },
}

func decodeCSV(r io.Reader) ([]Record, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	text := strings.TrimPrefix(string(raw), "\ufeff")

	cr := csv.NewReader(strings.NewReader(text))
	first, _, _ := strings.Cut(text, "\n")
	if strings.Contains(first, ";") {
		cr.Comma = ';'
	}
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	setters := make([]func(*Record, string), len(header))
	for i, h := range header {
		setters[i] = csvColumns[strings.ToLower(strings.TrimSpace(h))]
	}

	var records []Record
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		var rec Record
		for i, v := range row {
			if i < len(setters) && setters[i] != nil {
				setters[i](&rec, strings.TrimSpace(v))
			}
		}
		if rec.CountryName != "" {
			records = append(records, rec)
		}
	}
	return records, nil
}

func parseCell(v string) models.Number {
	var n models.Number
	n.Scan(v)
	return n
}

func parseRank(v string) int {
	d, ok := models.ParseNumber(v)
	if !ok {
		return 0
	}
	return int(d.IntPart())
}
