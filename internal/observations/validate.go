package observations

import (
	"fmt"
	"time"

	"go.uber.org/multierr"
)

// Validate reports every structural problem in the document. Numeric values
// are not interpreted.
func (d *Document) Validate() error {
	var err error
	for i, h := range d.Smryh {
		where := fmt.Sprintf("smryh[%d]", i)
		if h.Key == "" {
			err = multierr.Append(err, fmt.Errorf("%s: missing key", where))
		}
		if h.Histvec == "" {
			err = multierr.Append(err, fmt.Errorf("%s: missing histvec", where))
		}
		if h.TimeIndex != "" {
			if tiErr := h.TimeIndex.Validate(); tiErr != nil {
				err = multierr.Append(err, fmt.Errorf("%s: %w", where, tiErr))
			}
		}
	}

	for i, s := range d.Smry {
		where := fmt.Sprintf("smry[%d]", i)
		if s.Key == "" {
			err = multierr.Append(err, fmt.Errorf("%s: missing key", where))
		}
		if len(s.Observations) == 0 {
			err = multierr.Append(err, fmt.Errorf("%s: no observations", where))
		}
		for j, p := range s.Observations {
			err = multierr.Append(err, p.validate(fmt.Sprintf("%s.observations[%d]", where, j)))
		}
	}
	return err
}

func (p Point) validate(where string) error {
	var err error
	if p.Value == nil {
		err = multierr.Append(err, fmt.Errorf("%s: missing value", where))
	}
	if p.Error == nil {
		err = multierr.Append(err, fmt.Errorf("%s: missing error", where))
	}
	switch {
	case p.Date == "":
		err = multierr.Append(err, fmt.Errorf("%s: missing date", where))
	default:
		if _, perr := time.Parse(DateLayout, p.Date); perr != nil {
			err = multierr.Append(err, fmt.Errorf("%s: invalid date %q, want YYYY-MM-DD", where, p.Date))
		}
	}
	return err
}

// Problems flattens a Validate error into one message per problem.
func Problems(err error) []string {
	if err == nil {
		return nil
	}
	errs := multierr.Errors(err)
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Error())
	}
	return out
}
