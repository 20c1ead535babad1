package feed

// Config holds configuration for the fixture feed.
type Config struct {
	// URL is the fixture endpoint returning the full match list as JSON.
	URL string `mapstructure:"url" default:"https://www.superleaguekerala.com/api/match-tickets"`
	// Timezone is the IANA zone the feed expresses kickoff times in.
	Timezone string `mapstructure:"timezone" default:"Asia/Kolkata"`
	// UserAgent is sent with every feed request.
	UserAgent string `mapstructure:"user_agent" default:"matchcal/1.0"`
	// TimeoutSeconds is the request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
