// Package calendar renders exam records as iCalendar documents.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/pfrederiksen/syllabus-exams/internal/exam"
)

// Exam sittings are four hours: morning 08:30-12:30, afternoon 14:00-18:00.
const sittingDuration = 4 * time.Hour

// GenerateICS renders the records as a single iCalendar document with one
// VEVENT per exam sitting.
func GenerateICS(records []exam.Record) string {
	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//syllabus-exams//syllabus-exams//EN\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")

	now := time.Now().UTC()
	for _, r := range records {
		writeEvent(&ics, r, now)
	}

	ics.WriteString("END:VCALENDAR\r\n")

	return ics.String()
}

// writeEvent appends one VEVENT for a record.
func writeEvent(ics *strings.Builder, r exam.Record, stamp time.Time) {
	ics.WriteString("BEGIN:VEVENT\r\n")

	// UID - deterministic per course code and sitting time
	ics.WriteString(fmt.Sprintf("UID:%s-%s@syllabus-exams\r\n", r.Code, r.When.Format("20060102T1504")))

	ics.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", formatICSTime(stamp)))
	ics.WriteString(fmt.Sprintf("DTSTART:%s\r\n", formatICSTime(r.When)))
	ics.WriteString(fmt.Sprintf("DTEND:%s\r\n", formatICSTime(r.When.Add(sittingDuration))))

	summary := fmt.Sprintf("Exam: %s - %s", r.Code, r.Title)
	ics.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS(summary)))

	description := fmt.Sprintf("Examination for %s - %s", r.Code, r.Title)
	ics.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICS(description)))

	ics.WriteString("STATUS:CONFIRMED\r\n")
	ics.WriteString("SEQUENCE:0\r\n")
	ics.WriteString("TRANSP:OPAQUE\r\n")

	ics.WriteString("END:VEVENT\r\n")
}

// formatICSTime formats a time.Time as an iCalendar datetime string
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICS escapes special characters for iCalendar format
func escapeICS(s string) string {
	// Replace special characters according to RFC 5545
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
