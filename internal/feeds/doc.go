// Package feeds fetches RSS feeds and normalises their items into
// domain Articles. Fetching is rate limited per fetcher; normalisation
// applies the two-tier body fallback (encoded body, then description)
// and explicit "N/A" sentinels for missing optional fields.
package feeds
