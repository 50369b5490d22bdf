package content

import (
	"fmt"
	"log/slog"

	"kumoart/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Issue is a single validation or parse problem found while loading a
// content source. Records with issues are still returned; the report exists
// so authoring mistakes surface at load time instead of at render time.
type Issue struct {
	Source string `json:"source"` // File name or array index.
	Field  string `json:"field"`  // Offending field, empty for parse errors.
	Reason string `json:"reason"`
}

func (i Issue) String() string {
	if i.Field == "" {
		return fmt.Sprintf("%s: %s", i.Source, i.Reason)
	}

	return fmt.Sprintf("%s: field %s: %s", i.Source, i.Field, i.Reason)
}

// Report aggregates the issues of one content load.
type Report struct {
	Records int     `json:"records"`
	Issues  []Issue `json:"issues"`
}

// OK reports whether the load produced no issues.
func (r *Report) OK() bool {
	return len(r.Issues) == 0
}

func (r *Report) add(source, field, reason string) {
	r.Issues = append(r.Issues, Issue{Source: source, Field: field, Reason: reason})
}

// validateRecord runs struct validation and folds violations into the report.
func (r *Report) validateRecord(validate *validator.Validate, source string, record any) {
	err := validate.Struct(record)
	if err == nil {
		return
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		r.add(source, "", err.Error())

		return
	}

	for _, fe := range fieldErrs {
		r.add(source, fe.Field(), fmt.Sprintf("failed %q constraint", fe.Tag()))
	}
}

// log emits one warning per issue on the given logger.
func (r *Report) log(logger *slog.Logger, kind string) {
	for _, issue := range r.Issues {
		logger.Warn("content record has issues",
			slog.String("kind", kind),
			slog.String("source", issue.Source),
			slog.String("field", issue.Field),
			slog.String("reason", issue.Reason),
		)
	}
}
