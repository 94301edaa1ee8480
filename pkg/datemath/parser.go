package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Parser resolves date phrases ("2024-08-20", "today", "in 3 days",
// "next monday") to calendar dates in a fixed location.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "America/Toronto"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// NewParserIn creates a parser for an already-resolved location.
func NewParserIn(loc *time.Location) *Parser {
	return &Parser{location: loc}
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse resolves phrase relative to baseTime. An empty phrase means today.
func (p *Parser) Parse(phrase string, baseTime time.Time) (Date, error) {
	phrase = strings.ToLower(strings.TrimSpace(phrase))
	today := DateOf(baseTime, p.location)

	switch phrase {
	case "", "today":
		return today, nil
	case "tomorrow":
		return today.AddDays(1), nil
	case "yesterday":
		return today.AddDays(-1), nil
	}

	if d, err := ParseDate(phrase); err == nil {
		return d, nil
	}

	if strings.HasPrefix(phrase, "in ") {
		return p.parseInDuration(phrase, today)
	}

	if strings.HasPrefix(phrase, "next ") {
		return p.parseNextWeekday(phrase, today)
	}

	return Date{}, fmt.Errorf("unrecognised date %q", phrase)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(phrase string, today Date) (Date, error) {
	matches := inDurationRe.FindStringSubmatch(phrase)
	if len(matches) != 3 {
		return Date{}, fmt.Errorf("invalid duration format: %q", phrase)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return today.AddDays(amount), nil
	case strings.HasPrefix(unit, "week"):
		return today.AddDays(amount * 7), nil
	default:
		return NewDate(today.Year, today.Month+time.Month(amount), today.Day), nil
	}
}

// parseNextWeekday handles patterns like "next monday". The same weekday
// as today resolves to one week later.
func (p *Parser) parseNextWeekday(phrase string, today Date) (Date, error) {
	dayName := strings.TrimPrefix(phrase, "next ")
	target, ok := weekdays[dayName]
	if !ok {
		return Date{}, fmt.Errorf("unknown weekday: %q", dayName)
	}

	daysUntil := int(target - today.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return today.AddDays(daysUntil), nil
}
