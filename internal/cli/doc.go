// Package cli implements the command-line interface for syllabus-exams.
//
// The cli package provides the Cobra-based CLI that reads course codes from
// arguments or a course list file, fetches each syllabus page, and prints
// the upcoming exams sorted chronologically. It coordinates the scraper,
// exam, config, and progress packages.
package cli
