package audit

import (
	"fmt"
	"strings"
	"time"
)

const (
	// SectionSeparator splits the missing section from the duplicate
	// section in a combined message body.
	SectionSeparator = "-Additionally-"

	// NothingToNotify is the placeholder body used for admin-only sends
	// when no detection fired.
	NothingToNotify = "Nothing to notify - Admin Only Message"

	isoDate = "2006-01-02"
)

// Composer renders detection results into notification titles and
// bodies. It is a pure formatter; all inputs are already validated.
type Composer struct {
	ProjectName string
	TrackerURL  string
}

// Title is "<project> Notice | YYYY-MM-DD" for the given day.
func (c Composer) Title(today time.Time) string {
	return c.ProjectName + " Notice | " + Day(today).Format(isoDate)
}

// MissingBody lists the missing dates one per line between a fixed
// preamble and call-to-action footer. The tracker URL, when configured,
// is appended as a final line so the recipient can jump straight to the
// entry form.
func (c Composer) MissingBody(missing []time.Time) string {
	lines := make([]string, len(missing))
	for i, d := range missing {
		lines[i] = Day(d).Format(isoDate)
	}

	var b strings.Builder
	b.WriteString("Missing data for...\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\n(Date format is Year, Month, Day)\n\n")
	b.WriteString("Please enter the data ASAP\nbefore you forget how the\nday went!")
	if c.TrackerURL != "" {
		b.WriteString("\n\n" + c.TrackerURL)
	}
	return b.String()
}

// DuplicateBody lists each duplicated date with its occurrence count
// between a fixed preamble and remediation footer.
func (c Composer) DuplicateBody(dupes []Duplicate) string {
	lines := make([]string, len(dupes))
	for i, d := range dupes {
		lines[i] = fmt.Sprintf("%s | Duplicated %d times", Day(d.Date).Format(isoDate), d.Count)
	}

	return "Duplicate dates detected...\n" +
		strings.Join(lines, "\n") +
		"\n\nPlease fix this in the data"
}

// CombinedBody picks the body variant for the detection state: missing
// only, duplicates only, both sections joined by the separator marker
// (missing always first), or the placeholder when nothing was detected.
func (c Composer) CombinedBody(missing []time.Time, dupes []Duplicate) string {
	switch {
	case len(missing) > 0 && len(dupes) > 0:
		return c.MissingBody(missing) + "\n\n" + SectionSeparator + "\n\n" + c.DuplicateBody(dupes)
	case len(missing) > 0:
		return c.MissingBody(missing)
	case len(dupes) > 0:
		return c.DuplicateBody(dupes)
	default:
		return NothingToNotify
	}
}

// ErrorNotice enumerates every recorded stage failure, verbatim, for
// the administrator.
func (c Composer) ErrorNotice(errs []StageError) string {
	lines := make([]string, len(errs))
	for i, e := range errs {
		lines[i] = fmt.Sprintf("%s: %s", e.Stage, e.Detail)
	}

	return "ADMIN ONLY NOTICE:\n\nThere were errors running the script...\n\n" +
		strings.Join(lines, "\n")
}
