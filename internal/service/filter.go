package service

import (
	"alcyxob/exercise-tracker/internal/domain"
	"time"
)

// LogQuery carries the raw, optional filters of a log read.
type LogQuery struct {
	From  string
	To    string
	Limit string
}

// logFilter is a parsed LogQuery. A nil bound or zero limit means "not set".
type logFilter struct {
	from  *time.Time
	to    *time.Time
	limit int
}

// parseLogQuery validates q. Date filtering only applies when both bounds are
// given, so a lone bound is dropped. A limit that is missing, non-numeric or
// not positive means no limit.
func parseLogQuery(q LogQuery) (logFilter, error) {
	var f logFilter

	if q.From != "" && q.To != "" {
		from, err := domain.ParseDate(q.From)
		if err != nil {
			return f, invalid("from %q is not a valid date", q.From)
		}
		to, err := domain.ParseDate(q.To)
		if err != nil {
			return f, invalid("to %q is not a valid date", q.To)
		}
		f.from, f.to = &from, &to
	}

	if n, ok := parseLeadingInt(q.Limit); ok && n > 0 {
		f.limit = n
	}
	return f, nil
}

// apply returns the entries kept by f, in their original order.
// The input slice is never modified.
func (f logFilter) apply(entries []domain.Exercise) []domain.Exercise {
	out := make([]domain.Exercise, 0, len(entries))
	for _, e := range entries {
		if f.from != nil && f.to != nil {
			d, err := domain.ParseDate(e.Date)
			if err != nil || d.Before(*f.from) || d.After(*f.to) {
				continue
			}
		}
		out = append(out, e)
	}
	if f.limit > 0 && len(out) > f.limit {
		out = out[:f.limit]
	}
	return out
}
