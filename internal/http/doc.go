// Package http retrieves individual archive resources.
//
// The client performs one buffered GET per resource with a bounded timeout
// and no retries; transient failures are reported to the caller, which
// skips the item and moves on. By default any response body is returned
// verbatim, including 4xx/5xx bodies, matching the archive-scraping
// behavior this tool replaces. StrictStatus turns those into errors.
//
// # Usage
//
//	client := http.NewClient(http.Options{Timeout: 30 * time.Second})
//	body, status, err := client.Fetch(ctx, url)
package http
