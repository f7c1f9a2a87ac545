// Package projectinfo extracts structured call fields from raw row data by
// probing ordered lists of candidate header names. There is no required input
// schema; the first present, non-blank candidate wins and absence is not an
// error.
package projectinfo

import "github.com/consortium-kit/horizon-scout/model"

// Candidate header names per semantic field, probed in priority order.
var (
	titleKeys       = []string{"Title", "title", "Project Title", "PROJECT_TITLE", "Call title", "Topic title", "Topic"}
	callIDKeys      = []string{"Call ID", "Call identifier", "Topic ID", "Identifier", "ID", "Topic identifier"}
	deadlineKeys    = []string{"Deadline", "Submission deadline", "Closing date", "Deadline date", "Deadline model"}
	openingKeys     = []string{"Opening date", "Opening", "Start date"}
	budgetKeys      = []string{"Budget", "Total budget", "Funding", "Budget (EUR)", "EU contribution", "Indicative budget"}
	partnerKeys     = []string{"Partners", "Number of partners", "Expected partners", "Consortium size", "Min partners", "Max partners", "Planned number of grants"}
	coordinatorKeys = []string{"Coordinator", "Coordinating entity", "Lead partner"}
	actionKeys      = []string{"Type of Action", "Action type", "Type", "Action", "Type of action"}
	topicKeys       = []string{"Topics", "Research topics", "Themes", "Call", "Destination"}
	descriptionKeys = []string{"Description", "Call description", "Topic description", "Summary", "Expected Outcome"}
	outcomeKeys     = []string{"Expected outcomes", "Outcomes", "Expected impacts", "Specific challenge"}
	scopeKeys       = []string{"Scope", "Call scope", "Topic scope"}
	urlKeys         = []string{"URL", "Link", "Web link", "Call URL"}
)

// Info holds the extracted semantic fields. Empty string means the field could
// not be found in the row.
type Info struct {
	Title            string `json:"title"`
	CallID           string `json:"call_id"`
	Deadline         string `json:"deadline"`
	OpeningDate      string `json:"opening_date"`
	Budget           string `json:"budget"`
	Partners         string `json:"partners"`
	Coordinator      string `json:"coordinator"`
	TypeOfAction     string `json:"type_of_action"`
	Topics           string `json:"topics"`
	Description      string `json:"description"`
	ExpectedOutcomes string `json:"expected_outcomes"`
	Scope            string `json:"scope"`
	URL              string `json:"url"`
}

// Extract probes the row for every semantic field.
func Extract(row model.ProjectRow) Info {
	return Info{
		Title:            FirstValid(row, titleKeys),
		CallID:           FirstValid(row, callIDKeys),
		Deadline:         FirstValid(row, deadlineKeys),
		OpeningDate:      FirstValid(row, openingKeys),
		Budget:           FirstValid(row, budgetKeys),
		Partners:         FirstValid(row, partnerKeys),
		Coordinator:      FirstValid(row, coordinatorKeys),
		TypeOfAction:     FirstValid(row, actionKeys),
		Topics:           FirstValid(row, topicKeys),
		Description:      FirstValid(row, descriptionKeys),
		ExpectedOutcomes: FirstValid(row, outcomeKeys),
		Scope:            FirstValid(row, scopeKeys),
		URL:              FirstValid(row, urlKeys),
	}
}

// FirstValid returns the first non-blank value among the candidate keys, or ""
// when none is present.
func FirstValid(row model.ProjectRow, keys []string) string {
	for _, key := range keys {
		if v := row.StringValue(key); v != "" {
			return v
		}
	}
	return ""
}
