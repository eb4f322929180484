package driver

import (
	"bytes"
	"errors"

	"schema-composer/internal/classify"
	"schema-composer/internal/compose"
	"schema-composer/internal/config"
	"schema-composer/internal/diagnostic"
	"schema-composer/internal/schemadoc"
	"schema-composer/internal/store"
	"schema-composer/internal/typedref"
)

// Mode selects whether a run persists its results.
type Mode int

const (
	// ModeApply persists every changed document.
	ModeApply Mode = iota
	// ModePreview computes and reports the full transformation without
	// writing anything.
	ModePreview
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeApply:
		return "apply"
	case ModePreview:
		return "preview"
	default:
		return "unknown"
	}
}

// Driver applies the configured pipelines against a backing store.
type Driver struct {
	st  store.Store
	cfg *config.Config
}

// New validates the configuration eagerly and returns a Driver. A
// configuration error aborts before any document is touched.
func New(st store.Store, cfg *config.Config) (*Driver, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	return &Driver{st: st, cfg: cfg}, nil
}

// Compose runs the composition pipeline over every configured target.
func (d *Driver) Compose(mode Mode) *Report {
	report := &Report{Mode: mode}

	for _, name := range d.cfg.Targets {
		doc, data, ok := d.load(name, report)
		if !ok {
			continue
		}

		res := classify.Classify(doc.Properties(), d.cfg.Groups)
		out := compose.Apply(doc, res, d.cfg)
		compose.Annotate(doc, out.Absorbed, d.cfg.Note)

		dr := DocumentReport{
			Name:     name,
			Kept:     out.Kept,
			Absorbed: out.Absorbed,
			Own:      out.Own,
		}

		d.finish(doc, data, &dr, report)
	}

	return report
}

// RewriteTypedRefs runs the typed-reference rewriter over every
// configured document. Preview is supported here exactly as for Compose.
func (d *Driver) RewriteTypedRefs(mode Mode) *Report {
	report := &Report{Mode: mode}

	for _, docRefs := range d.cfg.TypedRefs {
		doc, data, ok := d.load(docRefs.Document, report)
		if !ok {
			continue
		}

		outcomes := typedref.Rewrite(doc, docRefs.Fields)
		for _, o := range outcomes {
			if !o.Found {
				report.Diags.AddWarning(diagnostic.CodeFieldNotFound,
					"configured field absent from properties", docRefs.Document, o.Field)
			}
		}

		dr := DocumentReport{Name: docRefs.Document, TypedRefs: outcomes}
		d.finish(doc, data, &dr, report)
	}

	return report
}

// load reads and parses one target. Absence is a warning skip, unparsable
// content a hard per-document failure; both leave ok false.
func (d *Driver) load(name string, report *Report) (*schemadoc.Document, []byte, bool) {
	data, err := d.st.Read(name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			report.Diags.AddWarning(diagnostic.CodeDocumentNotFound, err.Error(), name, "")
		} else {
			report.Diags.AddError(diagnostic.CodePersistenceError, err.Error(), name, "")
		}

		return nil, nil, false
	}

	doc, err := schemadoc.Parse(data)
	if err != nil {
		report.Diags.AddError(diagnostic.CodeMalformedDocument, err.Error(), name, "")
		return nil, nil, false
	}

	return doc, data, true
}

// finish encodes the candidate output, persists it when applying, and
// records the document report.
func (d *Driver) finish(doc *schemadoc.Document, original []byte, dr *DocumentReport, report *Report) {
	encoded := doc.Encode()
	dr.Changed = !bytes.Equal(encoded, original)

	if dr.Changed && report.Mode == ModeApply {
		if err := d.st.Write(dr.Name, encoded); err != nil {
			report.Diags.AddError(diagnostic.CodePersistenceError, err.Error(), dr.Name, "")
			report.Documents = append(report.Documents, *dr)

			return
		}

		dr.Persisted = true
	}

	report.Processed++
	report.Documents = append(report.Documents, *dr)
}
