package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/spf13/pflag"
)

// dateValue is a pflag.Value holding a YYYY-MM-DD day.
type dateValue struct {
	t *time.Time
}

var _ pflag.Value = (*dateValue)(nil)

func (d *dateValue) String() string {
	if d.t == nil || d.t.IsZero() {
		return ""
	}
	return domain.FormatDate(*d.t)
}

func (d *dateValue) Set(s string) error {
	t, err := domain.ParseDate(s)
	if err != nil {
		return err
	}
	*d.t = t
	return nil
}

func (d *dateValue) Type() string { return "date" }

func dateFlag(fs *pflag.FlagSet, p *time.Time, name, usage string) {
	fs.Var(&dateValue{t: p}, name, usage)
}

// todayFlag registers --today, which pins the reference day for alert and
// bucket computation.
func todayFlag(fs *pflag.FlagSet, p *time.Time) {
	dateFlag(fs, p, "today", "Reference day (YYYY-MM-DD, default: current day)")
}

// enumValue is a pflag.Value restricted to a fixed set of upper-case values.
// Input is case-insensitive.
type enumValue struct {
	p       *string
	allowed []string
}

var _ pflag.Value = (*enumValue)(nil)

func (e *enumValue) String() string { return *e.p }

func (e *enumValue) Set(s string) error {
	up := strings.ToUpper(strings.TrimSpace(s))
	for _, a := range e.allowed {
		if a == up {
			*e.p = up
			return nil
		}
	}
	return fmt.Errorf("must be one of %s", strings.Join(e.allowed, ", "))
}

func (e *enumValue) Type() string { return "string" }

func priorityFlag(fs *pflag.FlagSet, p *string) {
	fs.Var(&enumValue{p: p, allowed: []string{
		string(domain.PriorityHigh), string(domain.PriorityMedium), string(domain.PriorityLow),
	}}, "priority", "Priority (HIGH, MEDIUM, LOW)")
}

func monthFlag(fs *pflag.FlagSet, p *time.Time) {
	fs.Var(&monthValue{t: p}, "month", "Month to show (YYYY-MM)")
}

// monthValue is a pflag.Value holding the first day of a YYYY-MM month.
type monthValue struct {
	t *time.Time
}

func (m *monthValue) String() string {
	if m.t == nil || m.t.IsZero() {
		return ""
	}
	return m.t.Format("2006-01")
}

func (m *monthValue) Set(s string) error {
	t, err := time.ParseInLocation("2006-01", s, time.Local)
	if err != nil {
		return fmt.Errorf("invalid month %q (expected YYYY-MM)", s)
	}
	*m.t = t
	return nil
}

func (m *monthValue) Type() string { return "month" }
