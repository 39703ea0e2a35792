// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"log/slog"

	"github.com/goccy/go-json"

	"github.com/danielhkuo/whr-dashboard/cache"
	"github.com/danielhkuo/whr-dashboard/metrics"
	"github.com/danielhkuo/whr-dashboard/models"
)

// Cached serves catalog results from a cache keyed by query name and
// parameters. Cache failures are logged and the query runs against the
// wrapped catalog; they never reach the caller.
type Cached struct {
	next  Catalog
	cache cache.Cache
}

func NewCached(next Catalog, c cache.Cache) *Cached {
	return &Cached{next: next, cache: c}
}

var _ Catalog = (*Cached)(nil)

// Purge drops every cached result. Call it after the tables change.
func (c *Cached) Purge(ctx context.Context) error {
	return c.cache.Purge(ctx)
}

func through[T any](ctx context.Context, c cache.Cache, name string, load func() (T, error), params ...any) (T, error) {
	key := cache.Key(name, params...)

	if b, ok, err := c.Get(ctx, key); err != nil {
		slog.Warn("cache read failed", "query", name, "key", key, "error", err)
	} else if ok {
		var v T
		if err := json.Unmarshal(b, &v); err == nil {
			metrics.CacheHits.WithLabelValues(name).Inc()
			return v, nil
		}
		slog.Warn("cache entry undecodable", "query", name, "key", key)
	}
	metrics.CacheMisses.WithLabelValues(name).Inc()

	v, err := load()
	if err != nil {
		return v, err
	}

	b, err := json.Marshal(v)
	if err != nil {
		slog.Warn("cache encode failed", "query", name, "error", err)
		return v, nil
	}
	if err := c.Set(ctx, key, b); err != nil {
		slog.Warn("cache write failed", "query", name, "key", key, "error", err)
	}
	return v, nil
}

func (c *Cached) ReportsByYear(ctx context.Context, year int) ([]models.YearReport, error) {
	return through(ctx, c.cache, QueryReportsByYear, func() ([]models.YearReport, error) {
		return c.next.ReportsByYear(ctx, year)
	}, year)
}

func (c *Cached) EconomicByYear(ctx context.Context, year int) ([]models.EconomicRow, error) {
	return through(ctx, c.cache, QueryEconomicByYear, func() ([]models.EconomicRow, error) {
		return c.next.EconomicByYear(ctx, year)
	}, year)
}

func (c *Cached) SocialByYear(ctx context.Context, year int) ([]models.SocialRow, error) {
	return through(ctx, c.cache, QuerySocialByYear, func() ([]models.SocialRow, error) {
		return c.next.SocialByYear(ctx, year)
	}, year)
}

func (c *Cached) PerceptionByYear(ctx context.Context, year int) ([]models.PerceptionRow, error) {
	return through(ctx, c.cache, QueryPerceptionByYear, func() ([]models.PerceptionRow, error) {
		return c.next.PerceptionByYear(ctx, year)
	}, year)
}

func (c *Cached) EconomicAllYears(ctx context.Context) ([]models.EconomicAverage, error) {
	return through(ctx, c.cache, QueryEconomicAll, func() ([]models.EconomicAverage, error) {
		return c.next.EconomicAllYears(ctx)
	})
}

func (c *Cached) SocialAllYears(ctx context.Context) ([]models.SocialAverage, error) {
	return through(ctx, c.cache, QuerySocialAll, func() ([]models.SocialAverage, error) {
		return c.next.SocialAllYears(ctx)
	})
}

func (c *Cached) PerceptionAllYears(ctx context.Context) ([]models.PerceptionAverage, error) {
	return through(ctx, c.cache, QueryPerceptionAll, func() ([]models.PerceptionAverage, error) {
		return c.next.PerceptionAllYears(ctx)
	})
}

func (c *Cached) GlobalStatistics(ctx context.Context) (models.GlobalStats, error) {
	return through(ctx, c.cache, QueryGlobalStatistics, func() (models.GlobalStats, error) {
		return c.next.GlobalStatistics(ctx)
	})
}

func (c *Cached) CountryAveragesAllYears(ctx context.Context) ([]models.CountryAverage, error) {
	return through(ctx, c.cache, QueryCountryAverages, func() ([]models.CountryAverage, error) {
		return c.next.CountryAveragesAllYears(ctx)
	})
}

func (c *Cached) RegionSummaryByYear(ctx context.Context, year int) ([]models.RegionSummary, error) {
	return through(ctx, c.cache, QueryRegionSummary, func() ([]models.RegionSummary, error) {
		return c.next.RegionSummaryByYear(ctx, year)
	}, year)
}

func (c *Cached) ReportsByCountry(ctx context.Context, countryID int) ([]models.IndicatorRow, error) {
	return through(ctx, c.cache, QueryReportsByCountry, func() ([]models.IndicatorRow, error) {
		return c.next.ReportsByCountry(ctx, countryID)
	}, countryID)
}

func (c *Cached) Years(ctx context.Context) ([]int, error) {
	return through(ctx, c.cache, QueryYears, func() ([]int, error) {
		return c.next.Years(ctx)
	})
}

func (c *Cached) Regions(ctx context.Context) ([]models.RegionCount, error) {
	return through(ctx, c.cache, QueryRegions, func() ([]models.RegionCount, error) {
		return c.next.Regions(ctx)
	})
}

func (c *Cached) Countries(ctx context.Context, regionID int) ([]models.Country, error) {
	return through(ctx, c.cache, QueryCountries, func() ([]models.Country, error) {
		return c.next.Countries(ctx, regionID)
	}, regionID)
}

func (c *Cached) TopCountries(ctx context.Context, year, limit int) ([]models.IndicatorRow, error) {
	limit = clampLimit(limit)
	return through(ctx, c.cache, QueryTopCountries, func() ([]models.IndicatorRow, error) {
		return c.next.TopCountries(ctx, year, limit)
	}, year, limit)
}

func (c *Cached) BottomCountries(ctx context.Context, year, limit int) ([]models.IndicatorRow, error) {
	limit = clampLimit(limit)
	return through(ctx, c.cache, QueryBottomCountries, func() ([]models.IndicatorRow, error) {
		return c.next.BottomCountries(ctx, year, limit)
	}, year, limit)
}

func (c *Cached) Overview(ctx context.Context) (models.Overview, error) {
	return through(ctx, c.cache, QueryOverview, func() (models.Overview, error) {
		return c.next.Overview(ctx)
	})
}
