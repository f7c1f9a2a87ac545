// Package clusters ingests free-text cluster documents, splits them into
// discrete project records keyed by HORIZON project codes, and manages the
// loaded collection.
package clusters

import (
	"regexp"
	"strings"

	"github.com/consortium-kit/horizon-scout/model"
)

// projectCodePattern matches codes like HORIZON-CL4-2024-DIGITAL-EMERGING-01-01
// or HORIZON-MSCA-2024-2025-PF-01: an uppercase alphanumeric segment, a year
// group of one or two 4-digit parts, and any further hyphenated segments.
var projectCodePattern = regexp.MustCompile(`HORIZON-[A-Z0-9]+-[0-9]{4}(?:-[0-9]{4})?(?:-[A-Z0-9-]+)*`)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 2000
)

// ParseProjects splits document content into project records. Each occurrence of
// a project code starts a record; the span up to the next code (or end of text)
// holds its title and description. Content with no codes yields no records.
//
// Duplicate codes within one document produce distinct records on purpose;
// lookups resolve to the first in document order.
func ParseProjects(content, clusterName string) []model.ClusterProject {
	if content == "" {
		return nil
	}

	locations := projectCodePattern.FindAllStringIndex(content, -1)
	if len(locations) == 0 {
		return nil
	}

	var projects []model.ClusterProject
	for i, loc := range locations {
		code := content[loc[0]:loc[1]]

		end := len(content)
		if i+1 < len(locations) {
			end = locations[i+1][0]
		}
		span := strings.TrimSpace(content[loc[1]:end])

		title, description, ok := splitTitleAndDescription(span)
		if !ok {
			// A bare code with no content span identifies nothing.
			continue
		}

		projects = append(projects, model.NewClusterProject(code, title, description, clusterName))
	}

	return projects
}

// splitTitleAndDescription takes the non-blank lines of a span: the first is the
// title (length-capped), the rest accumulate into the description until the
// cumulative cap or a line that itself starts another project code.
func splitTitleAndDescription(span string) (string, string, bool) {
	var lines []string
	for _, line := range strings.Split(span, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) == 0 {
		return "", "", false
	}

	// Cap counts runes, not bytes, so a multibyte title never gets cut
	// mid-character.
	title := lines[0]
	if runes := []rune(title); len(runes) > maxTitleLength {
		title = string(runes[:maxTitleLength])
	}

	var descriptionLines []string
	for _, line := range lines[1:] {
		if len(strings.Join(descriptionLines, "\n")) > maxDescriptionLength {
			break
		}
		if strings.HasPrefix(line, "HORIZON-") {
			break
		}
		descriptionLines = append(descriptionLines, line)
	}

	return title, strings.Join(descriptionLines, "\n"), true
}
