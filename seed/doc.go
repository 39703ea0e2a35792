// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package seed performs the bulk load of reference and report data.

# Sources

Reports come from yearly files named world_happiness_<year>.json (cleaned
records) or world_happiness_<year>.csv (raw export, ';' or ',' separated,
decimal commas accepted), or from Synthetic for development databases:

	records, err := seed.ReadDir("data")
	ds, skipped := seed.Build(seed.ReferenceRegions(), seed.ReferenceCountries(), records)

Records naming a country outside the reference set, or lacking a score or
ranking, are skipped and reported. Missing measures stay NULL; they are
never written as 0.

# Loading

	if err := seed.Load(ctx, conn, ds); errors.Is(err, db.ErrUniqueViolation) {
		// tables already loaded; seed.Clear first
	}

Load runs in a single transaction and inserts in foreign key order. It is
not idempotent.
*/
package seed
