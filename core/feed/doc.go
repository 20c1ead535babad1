// Package feed provides the read-side collaborator for the fixture source.
//
// It wraps a single HTTP GET against the league's fixture endpoint and decodes
// the response into raw match records. The package performs no validation
// beyond JSON decoding; the normalizer in feature/fixture turns raw records
// into typed matches and rejects malformed ones.
//
// # Failure Semantics
//
// Any transport, status, or decode failure is returned as a *FetchError and
// aborts the sync run before the calendar is touched.
//
// # Usage
//
//	client := feed.NewClient(cfg.Feed)
//	raw, err := client.FetchMatches(ctx)
package feed
