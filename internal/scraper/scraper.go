package scraper

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/syllabus-exams/internal/exam"
)

const (
	// DefaultURLTemplate is the syllabus lookup URL. {code} is the course
	// code, {year}/{nextYear} the academic year span, e.g. 2024/2025.
	DefaultURLTemplate = "https://www.chalmers.se/en/education/your-studies/find-course-and-programme-syllabi/course-syllabus/{code}/?acYear={year}%2F{nextYear}"
	UserAgent          = "syllabus-exams-cli/1.0 (github.com/pfrederiksen/syllabus-exams)"
	Timeout            = 30 * time.Second
)

// examDatesLabel precedes each examination schedule table on a syllabus page.
const examDatesLabel = "Examination dates"

// ErrCourseNotFound means the syllabus page had no main content region,
// which is how the site renders unknown course codes.
var ErrCourseNotFound = errors.New("course not found")

// Course is the result of scraping a single syllabus page.
type Course struct {
	Code  string
	Title string
	Exams []exam.Record
}

// Scraper fetches and parses course syllabus pages.
type Scraper struct {
	client      *http.Client
	urlTemplate string
	userAgent   string
}

// New creates a Scraper with the default URL template and timeout.
func New() *Scraper {
	return NewWithTemplate(DefaultURLTemplate, Timeout, UserAgent)
}

// NewWithTemplate creates a Scraper with a custom URL template, HTTP timeout
// and User-Agent. The template may use the {code}, {year} and {nextYear}
// placeholders.
func NewWithTemplate(urlTemplate string, timeout time.Duration, userAgent string) *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: timeout,
		},
		urlTemplate: urlTemplate,
		userAgent:   userAgent,
	}
}

// CourseURL returns the syllabus lookup URL for a course code and academic year.
func (s *Scraper) CourseURL(code string, year int) string {
	r := strings.NewReplacer(
		"{code}", code,
		"{year}", strconv.Itoa(year),
		"{nextYear}", strconv.Itoa(year+1),
	)
	return r.Replace(s.urlTemplate)
}

// FetchCourse retrieves and parses the syllabus page for one course code.
// Returns ErrCourseNotFound if the page has no main content region.
func (s *Scraper) FetchCourse(code string, year int) (*Course, error) {
	req, err := http.NewRequest("GET", s.CourseURL(code, year), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return s.parseCourse(resp.Body, code)
}

// parseCourse extracts the course title and exam records from syllabus HTML.
func (s *Scraper) parseCourse(r io.Reader, code string) (*Course, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	main := doc.Find("main").First()
	if main.Length() == 0 {
		return nil, ErrCourseNotFound
	}

	course := &Course{
		Code:  code,
		Title: courseTitle(main),
	}

	var parseErr error
	main.Find("*").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		// Only leaf elements, so nested wrappers around the label
		// don't yield the same table twice.
		if sel.Children().Length() != 0 || strings.TrimSpace(sel.Text()) != examDatesLabel {
			return true
		}

		records, err := examTable(sel, code, course.Title)
		if err != nil {
			parseErr = err
			return false
		}
		course.Exams = append(course.Exams, records...)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return course, nil
}

// courseTitle reads the first heading under the main content region and
// drops its course-code prefix (the first three whitespace-separated tokens).
func courseTitle(main *goquery.Selection) string {
	heading := main.Find("div").First().Find("h1").First()
	tokens := strings.Fields(heading.Text())
	if len(tokens) <= 3 {
		return ""
	}
	return strings.Join(tokens[3:], " ")
}

// examTable walks up from an "Examination dates" label to the enclosing
// table block and extracts one record per listed examination sitting.
func examTable(label *goquery.Selection, code, title string) ([]exam.Record, error) {
	var tbody *goquery.Selection
	for parent := label.Parent(); parent.Length() > 0; parent = parent.Parent() {
		if body := parent.Find("tbody").First(); body.Length() > 0 {
			tbody = body
			break
		}
	}
	if tbody == nil {
		return nil, nil
	}

	var records []exam.Record
	var parseErr error
	tbody.Find("tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		cells := row.Find("td")
		if cells.Length() < 8 {
			return true
		}
		if !strings.Contains(cells.Eq(0).Text(), "Examination") {
			return true
		}

		// The eighth cell holds a list element whose items are the
		// individual sittings.
		list := cells.Eq(7).Children().First()
		if list.Length() == 0 {
			return true
		}

		list.Children().EachWithBreak(func(_ int, item *goquery.Selection) bool {
			when, err := exam.ParseDate(strings.TrimSpace(item.Text()))
			if err != nil {
				parseErr = fmt.Errorf("course %s: %w", code, err)
				return false
			}
			records = append(records, exam.Record{When: when, Code: code, Title: title})
			return true
		})
		return parseErr == nil
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return records, nil
}
