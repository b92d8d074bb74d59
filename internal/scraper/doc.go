// Package scraper provides HTTP fetching and HTML parsing for course
// syllabus pages.
//
// The scraper builds a deterministic lookup URL from a course code and an
// academic year, fetches the page, and extracts the course title and the
// examination schedule. The schedule lives in tables preceded by an
// "Examination dates" label; within each, rows labeled "Examination" carry
// a list of sitting dates in their eighth column.
package scraper
