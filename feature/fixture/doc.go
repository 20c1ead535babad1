// Package fixture implements the sports-fixture sync domain: normalizing raw
// feed records into canonical matches, mapping matches onto calendar event
// drafts, selecting run scope by mode, and orchestrating a full run through
// the reconcile engine.
//
// Matches are ephemeral, rebuilt from the feed on every run; the calendar
// store is the only state carried between runs, keyed by the ownership
// marker each owned event embeds.
package fixture
