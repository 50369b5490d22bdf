package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const isoDate = "2006-01-02"

var indonesianMonths = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// FormatRupiah formats a whole-Rupiah amount with id-ID digit grouping,
// e.g. 1500000 -> "Rp 1.500.000". Amounts carry no minor units.
func FormatRupiah(amount int) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.Itoa(amount)
	var grouped strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(r)
	}

	if negative {
		return "-Rp " + grouped.String()
	}

	return "Rp " + grouped.String()
}

// FormatDateID renders an ISO calendar date in Indonesian long form,
// e.g. "2026-09-12" -> "12 September 2026". An unparseable input is
// returned unchanged.
func FormatDateID(dateString string) string {
	date, err := time.Parse(isoDate, dateString)
	if err != nil {
		return dateString
	}

	return fmt.Sprintf("%d %s %d", date.Day(), indonesianMonths[date.Month()-1], date.Year())
}

// ParseDate parses an ISO calendar date. Dates are calendar dates, not
// instants; callers compare them in local time without timezone handling.
func ParseDate(dateString string) (time.Time, error) {
	return time.Parse(isoDate, dateString)
}
