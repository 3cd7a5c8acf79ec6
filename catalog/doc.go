// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package catalog holds the proposals listed on the dashboard.

The list starts from Defaults or a JSON file:

	[
	  {"id": "1", "title": "...", "description": "...", "status": "active",
	   "ends_at": "2024-12-25T00:00:00Z", "total_votes": 1247}
	]

Entries whose id is a number can be refreshed from the voting contract with
Refresh; other entries stay as loaded.
*/
package catalog
