package audit

import (
	"strings"
	"testing"
	"time"
)

func TestTitle(t *testing.T) {
	c := Composer{ProjectName: "Everything Tracker"}
	got := c.Title(time.Date(2022, time.March, 1, 18, 4, 0, 0, time.UTC))
	if got != "Everything Tracker Notice | 2022-03-01" {
		t.Fatalf("unexpected title: %q", got)
	}
}

func TestMissingBody(t *testing.T) {
	c := Composer{}
	body := c.MissingBody([]time.Time{d(2022, time.February, 28), d(2022, time.March, 2)})

	if !strings.HasPrefix(body, "Missing data for...\n2022-02-28\n2022-03-02\n") {
		t.Fatalf("missing dates not listed one per line: %q", body)
	}
	if !strings.Contains(body, "Please enter the data ASAP") {
		t.Fatalf("call-to-action footer missing: %q", body)
	}
}

func TestMissingBodyTrackerURL(t *testing.T) {
	c := Composer{TrackerURL: "https://forms.example/tracker"}
	body := c.MissingBody([]time.Time{d(2022, time.February, 28)})
	if !strings.HasSuffix(body, "\n\nhttps://forms.example/tracker") {
		t.Fatalf("tracker URL not appended: %q", body)
	}
}

func TestDuplicateBody(t *testing.T) {
	c := Composer{}
	body := c.DuplicateBody([]Duplicate{{Date: d(2022, time.February, 27), Count: 2}})

	if !strings.Contains(body, "2022-02-27 | Duplicated 2 times") {
		t.Fatalf("duplicate line not rendered: %q", body)
	}
	if !strings.HasSuffix(body, "Please fix this in the data") {
		t.Fatalf("remediation footer missing: %q", body)
	}
}

func TestCombinedBodySectionOrder(t *testing.T) {
	c := Composer{}
	missing := []time.Time{d(2022, time.February, 28)}
	dupes := []Duplicate{{Date: d(2022, time.February, 27), Count: 2}}

	body := c.CombinedBody(missing, dupes)

	sep := strings.Index(body, SectionSeparator)
	if sep < 0 {
		t.Fatalf("separator marker missing: %q", body)
	}
	missingIdx := strings.Index(body, "Missing data for...")
	dupeIdx := strings.Index(body, "Duplicate dates detected...")
	if missingIdx < 0 || dupeIdx < 0 {
		t.Fatalf("expected both sections: %q", body)
	}
	if !(missingIdx < sep && sep < dupeIdx) {
		t.Fatalf("missing section must precede the duplicate section: %q", body)
	}
}

func TestCombinedBodySingleVariants(t *testing.T) {
	c := Composer{}
	missing := []time.Time{d(2022, time.February, 28)}
	dupes := []Duplicate{{Date: d(2022, time.February, 27), Count: 2}}

	if body := c.CombinedBody(missing, nil); strings.Contains(body, SectionSeparator) {
		t.Fatalf("missing-only body must not contain the separator: %q", body)
	}
	if body := c.CombinedBody(nil, dupes); strings.Contains(body, "Missing data") {
		t.Fatalf("duplicate-only body must not contain the missing section: %q", body)
	}
	if body := c.CombinedBody(nil, nil); body != NothingToNotify {
		t.Fatalf("expected placeholder body, got %q", body)
	}
}

func TestErrorNotice(t *testing.T) {
	c := Composer{}
	notice := c.ErrorNotice([]StageError{
		{Stage: StageColumnPull, Detail: "sheets API returned status 403"},
		{Stage: StageDateRange, Detail: `start date "nope": not a YYYY-MM-DD date`},
	})

	if !strings.HasPrefix(notice, "ADMIN ONLY NOTICE:") {
		t.Fatalf("notice must be marked admin only: %q", notice)
	}
	if !strings.Contains(notice, "Sheet Date Column Pull: sheets API returned status 403") {
		t.Fatalf("first stage error not surfaced verbatim: %q", notice)
	}
	if !strings.Contains(notice, "Date Range for Checking") {
		t.Fatalf("second stage error not surfaced: %q", notice)
	}
}
