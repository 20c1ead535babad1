package calendar

// Config holds configuration for the calendar provider.
type Config struct {
	// CalendarID is the target Google calendar.
	CalendarID string `mapstructure:"calendar_id" default:""`
	// CredentialsFile is the path to a service-account JSON key.
	CredentialsFile string `mapstructure:"credentials_file" default:""`
	// Timezone is the IANA zone written on event start/end times.
	Timezone string `mapstructure:"timezone" default:"Asia/Kolkata"`
	// RequestsPerSecond caps write calls against the provider's quota.
	RequestsPerSecond float64 `mapstructure:"requests_per_second" default:"5"`
	// ReminderMinutes is the popup reminder lead time on created events.
	ReminderMinutes int `mapstructure:"reminder_minutes" default:"60"`
}
