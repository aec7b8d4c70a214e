package parser

import (
	"regexp"
	"strings"

	"resumelens/internal/types"
)

var (
	bulletMarkerRegex = regexp.MustCompile(`^[•\-*]\s*`)
	jobSplitRegex     = regexp.MustCompile(`[-–—,|]`)
	schoolHintRegex   = regexp.MustCompile(`(?i)university|college|school|institute`)
	degreeHintRegex   = regexp.MustCompile(`(?i)bachelor|master|phd|bs|ba|ms|ma|degree`)
)

// parseExperienceSection breaks the lines of an experience section into
// job entries. A line carrying a date range or a month-year token opens
// a new job: the date is stripped and the remainder split into title
// and company. Bulleted lines attach to the open job; a plain line fills
// in a missing title. Jobs still lacking a company or title when the
// next header arrives are dropped.
func parseExperienceSection(lines []string) []types.JobEntry {
	jobs := []types.JobEntry{}

	var current *types.JobEntry

	flush := func() {
		if current != nil && current.Company != "" && current.Title != "" {
			jobs = append(jobs, *current)
		}
	}

	for _, line := range lines {
		dateRange := dateRangeRegex.FindString(line)
		if dateRange == "" {
			dateRange = monthYearRegex.FindString(line)
		}

		if dateRange != "" {
			flush()

			withoutDate := strings.TrimSpace(strings.Replace(line, dateRange, "", 1))
			parts := jobSplitRegex.Split(withoutDate, -1)

			current = &types.JobEntry{
				DateRange: strings.TrimSpace(dateRange),
				Bullets:   []string{},
			}
			if len(parts) >= 2 {
				current.Title = strings.TrimSpace(parts[0])
				current.Company = strings.TrimSpace(parts[1])
			} else {
				current.Company = withoutDate
			}
			continue
		}

		if current == nil {
			continue
		}
		if bulletMarkerRegex.MatchString(line) {
			current.Bullets = append(current.Bullets, strings.TrimSpace(bulletMarkerRegex.ReplaceAllString(line, "")))
		} else if current.Title == "" && current.Company != "" {
			current.Title = line
		}
	}
	flush()

	return jobs
}

// parseEducationSection breaks the lines of an education section into
// education entries. A line containing a year or a school word opens a
// new entry with the date stripped out of the school name; the first
// following line with a degree keyword becomes the degree, and every
// other line accumulates into details.
func parseEducationSection(lines []string) []types.EducationEntry {
	entries := []types.EducationEntry{}

	var current *types.EducationEntry

	flush := func() {
		if current != nil && current.School != "" {
			entries = append(entries, *current)
		}
	}

	for _, line := range lines {
		hasDate := dateRangeRegex.MatchString(line) || bareYearRegex.MatchString(line)

		if hasDate || schoolHintRegex.MatchString(line) {
			flush()

			dateRange := dateRangeRegex.FindString(line)
			if dateRange == "" {
				dateRange = bareYearRegex.FindString(line)
			}

			current = &types.EducationEntry{
				School:    strings.TrimSpace(strings.Replace(line, dateRange, "", 1)),
				DateRange: strings.TrimSpace(dateRange),
				Details:   []string{},
			}
			continue
		}

		if current == nil {
			continue
		}
		if current.Degree == "" && degreeHintRegex.MatchString(line) {
			current.Degree = line
		} else {
			current.Details = append(current.Details, line)
		}
	}
	flush()

	return entries
}
