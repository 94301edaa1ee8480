package usecase

import "time"

// Config carries the display and fetch settings of the calendar use case.
type Config struct {
	Location      *time.Location
	WeekStart     time.Weekday
	DateLayout    string
	UpcomingLimit int
	HorizonDays   int
	FetchTimeout  time.Duration
	SessionSize   int
	SessionTTL    time.Duration
	ProductID     string // iCalendar PRODID
}

const (
	defaultFetchTimeout = 10 * time.Second
	defaultSessionSize  = 1000
	defaultSessionTTL   = 12 * time.Hour
	defaultProductID    = "-//Kwikr Directory//Worker Calendar//EN"
)
