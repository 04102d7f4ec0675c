// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import "strings"

// SQLiteDSN decorates a database path with the pragmas the service needs:
// WAL so readers never block on a writer, and a busy timeout so competing
// writers queue instead of failing with SQLITE_BUSY.
func SQLiteDSN(path string) string {
	if !strings.HasPrefix(path, "file:") {
		path = "file:" + path
	}

	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}

	return path + sep + "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}
