package fixture

// Config holds sync-level settings.
type Config struct {
	// EventDurationMinutes is the nominal match duration used for event
	// end times; the feed supplies no end time.
	EventDurationMinutes int `mapstructure:"event_duration_minutes" default:"120"`
	// Schedule is the cron expression the watch command runs on.
	Schedule string `mapstructure:"schedule" default:"*/30 * * * *"`
}
