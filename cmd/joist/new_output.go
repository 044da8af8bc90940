// Package main provides the entry point for the joist CLI.
package main

import (
	"strconv"

	"github.com/gorewood/joist/internal/output"
	"github.com/gorewood/joist/internal/scaffold"
)

// printHeading prints the run banner in human format.
func printHeading(printer *output.Printer, styles newStyleSet, name string, flags *newFlags) {
	mode := "joist new:"
	if flags.dryRun {
		mode = "Dry run: joist new:"
	}
	printer.Println()
	printer.Print("%s %s\n", styles.heading.Render(mode), styles.accent.Render(name))
	printer.Println()
}

// printOutcome prints one per-file result line in human format.
// A failed parent directory gets its own line, matching the two log
// lines the filesystem pass actually attempts.
func printOutcome(printer *output.Printer, styles newStyleSet, o scaffold.Outcome) {
	if o.DirStatus == scaffold.DirFailed {
		printer.Print("  %s %s %s\n",
			styles.fail.Render("XX"), o.Dir,
			styles.dim.Render("(failed to create directory: "+o.DirErr+")"))
	}
	printer.Print("  %s %s %s\n", styledOutcomeIcon(styles, o.Action), o.Path,
		styles.dim.Render("("+describeOutcome(o)+")"))
}

// styledOutcomeIcon returns a styled icon for a per-file action.
func styledOutcomeIcon(styles newStyleSet, action scaffold.Action) string {
	switch action {
	case scaffold.ActionCreated, scaffold.ActionOverwritten:
		return styles.pass.Render("ok")
	case scaffold.ActionExists:
		return styles.skip.Render("--")
	case scaffold.ActionPlanned:
		return styles.accent.Render(">")
	case scaffold.ActionFailed:
		return styles.fail.Render("XX")
	default:
		return "??"
	}
}

// describeOutcome renders the message for a per-file action.
func describeOutcome(o scaffold.Outcome) string {
	content := "empty"
	if o.Template {
		content = "template content"
	}

	switch o.Action {
	case scaffold.ActionCreated:
		return "created, " + content
	case scaffold.ActionOverwritten:
		return "overwritten, " + content
	case scaffold.ActionExists:
		return "already exists and is non-empty"
	case scaffold.ActionPlanned:
		if o.Dir != "" {
			return "would create directory " + o.Dir + "; would create/overwrite file, " + content
		}
		return "would create/overwrite file, " + content
	case scaffold.ActionFailed:
		return "failed to write file: " + o.Err
	default:
		return string(o.Action)
	}
}

// printSummary prints the aggregate counts after a run.
func printSummary(printer *output.Printer, styles newStyleSet, result scaffold.Result) {
	printer.Println()
	if result.Planned > 0 {
		printer.Print("%s\n", styles.dim.Render("Dry run: no directories or files were touched."))
		return
	}

	printer.KeyValue("Created", strconv.Itoa(result.Created))
	printer.KeyValue("Overwritten", strconv.Itoa(result.Overwritten))
	printer.KeyValue("Skipped", strconv.Itoa(result.Exists))
	if result.Failed > 0 {
		printer.Warn("%d file(s) failed; see the lines above", result.Failed)
		return
	}
	printer.Println()
	printer.Print("%s\n", styles.heading.Render(styles.pass.Render("Project skeleton ready.")))
}
