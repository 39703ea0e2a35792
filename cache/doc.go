// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cache keeps encoded catalog results keyed by query name and parameters.

Two implementations satisfy Cache:

  - Memory: expirable LRU inside the process
  - Redis: shared between dashboard instances, entries expire after the TTL

Entries are safe to lose; a miss only means the query runs again. Purge
drops everything this process wrote and is called after a bulk load.
*/
package cache
