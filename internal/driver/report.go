package driver

import (
	"fmt"
	"io"
	"strings"

	"schema-composer/internal/compose"
	"schema-composer/internal/diagnostic"
	"schema-composer/internal/typedref"
)

// Report aggregates the outcomes of one batch run.
type Report struct {
	// Mode the run was executed in.
	Mode Mode

	// Documents holds one entry per document that was loaded and
	// analyzed, in target order.
	Documents []DocumentReport

	// Processed counts documents that completed the pipeline, whether or
	// not they changed. Skipped and failed documents are not counted.
	Processed int

	// Diags collects every skip and failure.
	Diags diagnostic.Diagnostics
}

// DocumentReport describes what the pipeline did to one document.
type DocumentReport struct {
	Name string

	// Kept lists direct-group fields left inline.
	Kept []compose.GroupFields

	// Absorbed lists fields moved behind each component reference.
	Absorbed []compose.GroupFields

	// Own lists fields matching no group.
	Own []string

	// TypedRefs holds per-field outcomes of a typed-reference run.
	TypedRefs []typedref.FieldOutcome

	// Changed is true when the candidate output differs from the stored
	// bytes.
	Changed bool

	// Persisted is true when the candidate was written back.
	Persisted bool
}

// Failed returns true when any document hard-failed, as opposed to being
// skipped for absence.
func (r *Report) Failed() bool {
	return r.Diags.HasErrors()
}

// Render writes a human-readable run summary.
func (r *Report) Render(w io.Writer) {
	if r.Mode == ModePreview {
		fmt.Fprintln(w, "[preview] no documents will be written")
	}

	for _, d := range r.Documents {
		fmt.Fprintf(w, "\n%s:\n", d.Name)

		for _, gf := range d.Kept {
			fmt.Fprintf(w, "  %s fields kept direct: %s\n", gf.Group, joinOrNone(gf.Fields))
		}

		for _, gf := range d.Absorbed {
			fmt.Fprintf(w, "  %s fields composed: %s\n", gf.Group, joinOrNone(gf.Fields))
		}

		if d.Own != nil {
			fmt.Fprintf(w, "  own fields: %s\n", joinOrNone(d.Own))
		}

		for _, o := range d.TypedRefs {
			if !o.Found {
				continue
			}

			suffix := ""
			if o.Nullable {
				suffix = " (nullable)"
			}

			fmt.Fprintf(w, "  %s -> %s%s\n", o.Field, o.Ref, suffix)
		}

		switch {
		case d.Persisted:
			fmt.Fprintf(w, "  updated\n")
		case d.Changed:
			fmt.Fprintf(w, "  would update\n")
		default:
			fmt.Fprintf(w, "  unchanged\n")
		}
	}

	for _, diag := range r.Diags.Warnings {
		fmt.Fprintf(w, "\nwarning: %s\n", diag.String())
	}

	for _, diag := range r.Diags.Errors {
		fmt.Fprintf(w, "\nerror: %s\n", diag.String())
	}

	fmt.Fprintf(w, "\n%d document(s) processed (%s mode)\n", r.Processed, r.Mode)
}

func joinOrNone(fields []string) string {
	if len(fields) == 0 {
		return "(none)"
	}

	return strings.Join(fields, ", ")
}
