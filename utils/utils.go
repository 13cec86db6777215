package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	birthdateRe = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
	emailRe     = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	digitsRe    = regexp.MustCompile(`^\d+$`)
)

// ValidateDate checks a GG/MM/AAAA birthdate: shape, calendar validity
// (31/02/2025 is rejected) and year range 1900-2299.
func ValidateDate(s string) bool {
	if !birthdateRe.MatchString(s) {
		return false
	}
	d, err := time.Parse("02/01/2006", s)
	if err != nil {
		return false
	}
	year := d.Year()
	return year >= 1900 && year <= 2299
}

// ValidateEmail requires an @ with a domain-like suffix.
func ValidateEmail(s string) bool {
	return emailRe.MatchString(s)
}

// ValidatePhone requires exactly 10 digits.
func ValidatePhone(s string) bool {
	return len(s) == 10 && digitsRe.MatchString(s)
}

// AllDigits reports whether s is non-empty and numeric.
func AllDigits(s string) bool {
	return digitsRe.MatchString(s)
}

var italianWeekdays = [...]string{
	"domenica", "lunedì", "martedì", "mercoledì", "giovedì", "venerdì", "sabato",
}

var italianMonths = [...]string{
	"gennaio", "febbraio", "marzo", "aprile", "maggio", "giugno",
	"luglio", "agosto", "settembre", "ottobre", "novembre", "dicembre",
}

// FormatDate renders an ISO calendar date the way the it-IT long format
// does: "domenica 15 settembre 2025". Unparsable input is returned as is.
func FormatDate(isoDate string) string {
	d, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return isoDate
	}
	return fmt.Sprintf("%s %d %s %d",
		italianWeekdays[d.Weekday()], d.Day(), italianMonths[d.Month()-1], d.Year())
}

var filenameRe = regexp.MustCompile(`[^a-zA-Z0-9]`)

// SanitizeFilename keeps export filenames shell and header safe.
func SanitizeFilename(name string) string {
	clean := filenameRe.ReplaceAllString(name, "_")
	if strings.Trim(clean, "_") == "" {
		return "file"
	}
	return clean
}
