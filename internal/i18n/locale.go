// locale.go
//
// Shelter waiting list data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of waitinglist.
// waitinglist is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// waitinglist is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with waitinglist.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package i18n

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Clock supplies the current instant
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns T
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }

// Locale formats messages for one language and does date arithmetic in one time zone.
// Calendar dates are carried as UTC midnight.
type Locale struct {
	tag     language.Tag
	zone    *time.Location
	clock   Clock
	printer *message.Printer
}

// New builds a Locale for a BCP 47 tag and IANA zone name. A nil clock uses the system clock.
func New(locale, timezone string, clock Clock) (*Locale, error) {
	if _, err := language.Parse(locale); err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	zone, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	if clock == nil {
		clock = SystemClock{}
	}

	// catalogs are keyed by base language
	base, _ := message.MatchLanguage(locale).Base()
	tag := language.Make(base.String())
	return &Locale{
		tag:     tag,
		zone:    zone,
		clock:   clock,
		printer: message.NewPrinter(tag),
	}, nil
}

// Tag is the catalog language selected for this locale
func (l *Locale) Tag() language.Tag {
	return l.tag
}

// T translates key and formats it with args
func (l *Locale) T(key string, args ...any) string {
	return l.printer.Sprintf(key, args...)
}

// Now is the current instant in UTC
func (l *Locale) Now() time.Time {
	return l.clock.Now().UTC()
}

// Today is the current calendar date in the configured zone
func (l *Locale) Today() time.Time {
	return DateOf(l.clock.Now().In(l.zone))
}

// TodayOffset is today plus days
func (l *Locale) TodayOffset(days int) time.Time {
	return AddDays(l.Today(), days)
}

// DateDiff describes the span between two dates as days below a week, otherwise whole weeks
func (l *Locale) DateDiff(from, to time.Time) string {
	days := DaysBetween(from, to)
	if days < 7 {
		return l.T(msgDays, days)
	}
	return l.T(msgWeeks, days/7)
}

// DateOf truncates t to its calendar date as UTC midnight
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AddDays moves t by whole days
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// SubtractYears moves t back by whole years
func SubtractYears(t time.Time, years int) time.Time {
	return t.AddDate(-years, 0, 0)
}

// After reports whether a is strictly later than b
func After(a, b time.Time) bool {
	return a.After(b)
}

// DaysBetween counts calendar days from a to b, negative when b is earlier
func DaysBetween(a, b time.Time) int {
	return int(DateOf(b).Sub(DateOf(a)).Hours() / 24)
}
