package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/syllabus-exams/internal/calendar"
	"github.com/pfrederiksen/syllabus-exams/internal/codes"
	"github.com/pfrederiksen/syllabus-exams/internal/config"
	"github.com/pfrederiksen/syllabus-exams/internal/exam"
	"github.com/pfrederiksen/syllabus-exams/internal/logger"
	"github.com/pfrederiksen/syllabus-exams/internal/progress"
	"github.com/pfrederiksen/syllabus-exams/internal/scraper"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

const defaultCourseFile = "courses.txt"

var (
	flagCourseCodes []string
	flagYear        int
	flagLogging     string
	flagFormat      string
	flagConfig      string
	flagICS         string
	flagAll         bool
	flagDays        int
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "syllabus-exams",
		Short: "List upcoming exam dates from course syllabus pages",
		Long: `Fetches the course syllabus page for each requested course code, extracts
the examination dates, and prints upcoming exams sorted chronologically.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, os.Stdout, os.Stderr)
		},
	}

	// Define flags
	cmd.Flags().StringSliceVarP(&flagCourseCodes, "course_code", "c", []string{defaultCourseFile},
		"Course codes; arguments containing a '.' are read as files of newline-delimited codes")
	cmd.Flags().IntVarP(&flagYear, "year", "y", 2024, "Academic year (selects the year/year+1 syllabus)")
	cmd.Flags().StringVarP(&flagLogging, "logging", "l", "warning", "Log level: info, debug, warning or error")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	cmd.Flags().StringVar(&flagICS, "ics", "", "Also write the exams to an iCalendar file at this path")
	cmd.Flags().BoolVar(&flagAll, "all", false, "Include exams that have already passed")
	cmd.Flags().IntVar(&flagDays, "days", 0, "Only show exams within this many days (0 = no limit)")

	return cmd
}

// runLookup is the main command logic. Program output goes to stdout,
// logging and the progress bar to stderr.
func runLookup(cmd *cobra.Command, stdout, stderr io.Writer) error {
	cfg := config.Default()
	if flagConfig != "" {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	// Flags take precedence over config file values.
	year := flagYear
	if !cmd.Flags().Changed("year") && cfg.Year > 0 {
		year = cfg.Year
	}
	levelName := flagLogging
	if !cmd.Flags().Changed("logging") && cfg.Logging.Level != "" {
		levelName = cfg.Logging.Level
	}
	courseArgs := flagCourseCodes
	if !cmd.Flags().Changed("course_code") && cfg.CourseFile != "" {
		courseArgs = []string{cfg.CourseFile}
	}

	level, err := logger.ParseLevel(levelName)
	if err != nil {
		return err
	}
	logger.SetDefault(logger.New(level, stderr))

	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	logger.Info("starting lookup", logger.Fields{
		"year": year,
		"args": strings.Join(courseArgs, ","),
	})

	courseCodes, err := codes.Expand(courseArgs)
	if err != nil {
		return err
	}
	logger.Debug("expanded course codes", logger.Fields{"codes": strings.Join(courseCodes, ",")})

	sc := scraper.NewWithTemplate(cfg.URLTemplate, cfg.Timeout(), cfg.HTTP.UserAgent)

	fmt.Fprintf(stdout, "Course codes: (%s)\n", strings.Join(courseCodes, ", "))

	records, err := lookupCourses(sc, courseCodes, year, stdout, stderr)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(stdout, "No courses found")
		return nil
	}

	now := time.Now()
	if !flagAll {
		records = exam.Upcoming(records, now)
	}
	records = exam.WithinDays(records, now, flagDays)
	records = exam.Dedupe(records)
	exam.Sort(records)

	if flagICS != "" {
		if err := os.WriteFile(flagICS, []byte(calendar.GenerateICS(records)), 0644); err != nil {
			return fmt.Errorf("writing calendar file: %w", err)
		}
		logger.Info("wrote calendar file", logger.Fields{"path": flagICS, "exams": len(records)})
	}

	return WriteOutput(stdout, records, format)
}

// lookupCourses fetches every course code in order and collects the exam
// records, rendering a progress bar on stderr while it works. Codes whose
// syllabus page has no main content region are logged and skipped, with an
// empty placeholder line printed in their place.
func lookupCourses(sc *scraper.Scraper, courseCodes []string, year int, stdout, stderr io.Writer) ([]exam.Record, error) {
	bar := progress.New(stderr, len(courseCodes), "Looking up courses")

	var records []exam.Record
	for _, code := range courseCodes {
		bar.SetDescription(fmt.Sprintf("Looking up course %s", code))
		logger.Info("looking up course", logger.Fields{
			"code": code,
			"url":  sc.CourseURL(code, year),
		})

		course, err := sc.FetchCourse(code, year)
		if errors.Is(err, scraper.ErrCourseNotFound) {
			logger.Warn("course not found", logger.Fields{"code": code})
			fmt.Fprintln(stdout)
			bar.Increment()
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("looking up course %s: %w", code, err)
		}

		logger.Debug("parsed course", logger.Fields{
			"code":  code,
			"title": course.Title,
			"exams": len(course.Exams),
		})
		records = append(records, course.Exams...)
		bar.Increment()
	}
	bar.Finish()

	return records, nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
