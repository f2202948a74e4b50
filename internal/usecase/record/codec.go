package record

import (
	"strconv"
	"time"
)

// ---- transcode helpers ----

func fmtID(id uint64) string { return strconv.FormatUint(id, 10) }

func fmtTime(t time.Time) string { return t.UTC().Format(time.RFC3339) }

func fmtDate(t time.Time) string { return t.Format(time.DateOnly) }

func fmtDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := fmtDate(*t)
	return &s
}

// mustDate parses a YYYY-MM-DD string that already passed the dateonly tag.
func mustDate(s string) time.Time {
	t, _ := time.Parse(time.DateOnly, s)
	return t
}

func mustDatePtr(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t := mustDate(*s)
	return &t
}
