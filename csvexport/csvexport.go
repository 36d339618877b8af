// Package csvexport serializes submissions into the staff-facing CSV
// format. The column order and quoting regime are fixed: Description and
// Requirements are always double-quoted (with internal quotes doubled),
// the remaining columns are written bare unless their content would break
// the row.
package csvexport

import (
	"fmt"
	"strings"
	"time"

	"github.com/opsfront/intake-backend/intake"
)

const Header = "ID,Timestamp,Name,Email,Company,Phone,Project Type,Timeline,Budget,Status,Description,Requirements"

// Filename returns the default export filename for the given date, e.g.
// "submissions-2025-03-14.csv".
func Filename(date time.Time) string {
	return fmt.Sprintf("submissions-%s.csv", date.Format("2006-01-02"))
}

// Export renders the given submissions as a CSV document, one row per
// submission, in the order supplied by the caller.
func Export(subms []intake.Submission) string {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteString("\n")
	for _, subm := range subms {
		b.WriteString(row(subm))
		b.WriteString("\n")
	}
	return b.String()
}

func row(subm intake.Submission) string {
	fields := []string{
		plainField(subm.ID),
		plainField(subm.SubmittedAt.UTC().Format(time.RFC3339)),
		plainField(subm.ContactInfo.Name),
		plainField(subm.ContactInfo.Email),
		plainField(subm.ContactInfo.Company),
		plainField(subm.ContactInfo.Phone),
		plainField(subm.ProjectDetails.ProjectType),
		plainField(subm.ProjectDetails.Timeline),
		plainField(subm.ProjectDetails.Budget),
		plainField(string(subm.Status)),
		quotedField(subm.ProjectDetails.Description),
		quotedField(subm.ProjectDetails.Requirements),
	}
	return strings.Join(fields, ",")
}

// quotedField always wraps the value in double quotes, doubling any
// quotes inside so the standard CSV unescape reproduces the original
// string exactly.
func quotedField(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}

// plainField is written bare unless the content would corrupt the row.
func plainField(value string) string {
	if strings.ContainsAny(value, "\",\n\r") {
		return quotedField(value)
	}
	return value
}
