// Package scaffold materializes a rendered manifest on disk.
//
// Apply processes entries strictly in order. Every entry is handled
// independently: a failure is recorded in the result and processing
// moves on to the next entry, so a run never aborts early. There is no
// rollback; the only externally observable effect is the created
// directories and files.
package scaffold

import (
	"os"
	"path"
	"path/filepath"

	"github.com/gorewood/joist/internal/manifest"
)

// Action classifies what happened (or would happen) to one file.
type Action string

const (
	// ActionCreated means the file was written and did not exist before.
	ActionCreated Action = "created"
	// ActionOverwritten means the file existed and was rewritten because
	// overwrite was requested.
	ActionOverwritten Action = "overwritten"
	// ActionExists means the file exists non-empty and was left alone.
	ActionExists Action = "exists"
	// ActionPlanned means dry-run mode reported the intent only.
	ActionPlanned Action = "planned"
	// ActionFailed means the write failed; Err carries the cause.
	ActionFailed Action = "failed"
)

// DirStatus classifies the parent-directory step of one entry.
type DirStatus string

const (
	// DirNone means the entry lives in the target root directly.
	DirNone DirStatus = ""
	// DirCreated means MkdirAll succeeded (including "already existed").
	DirCreated DirStatus = "created"
	// DirPlanned means dry-run mode reported the intent only.
	DirPlanned DirStatus = "planned"
	// DirFailed means directory creation failed; DirErr carries the cause.
	DirFailed DirStatus = "failed"
)

// Outcome records the processing of a single manifest entry.
type Outcome struct {
	Path      string    `json:"path"`
	Dir       string    `json:"dir,omitempty"`
	DirStatus DirStatus `json:"dir_status,omitempty"`
	DirErr    string    `json:"dir_error,omitempty"`
	Action    Action    `json:"action"`
	Template  bool      `json:"template"`
	Err       string    `json:"error,omitempty"`
}

// Result aggregates the outcomes of one run, in manifest order.
type Result struct {
	Outcomes    []Outcome `json:"files"`
	Created     int       `json:"created"`
	Overwritten int       `json:"overwritten"`
	Exists      int       `json:"exists"`
	Planned     int       `json:"planned"`
	Failed      int       `json:"failed"`
}

// Options controls one materializer run.
type Options struct {
	// Dir is the target directory; empty means the working directory.
	Dir string
	// DryRun reports intended actions without touching the filesystem.
	DryRun bool
	// Overwrite rewrites existing non-empty files with default content.
	Overwrite bool
	// Observe, when set, receives each outcome as it is decided. The
	// caller owns all logging; the package keeps no logger state.
	Observe func(Outcome)
}

// Apply ensures every rendered file exists with its default content.
//
// A file is written when it is missing, exists with zero size, or
// Overwrite is set; otherwise it is left untouched and recorded as
// ActionExists. Writes truncate. The action is ActionOverwritten only
// when Overwrite was set and the file existed beforehand.
func Apply(files []manifest.File, opts Options) Result {
	result := Result{Outcomes: make([]Outcome, 0, len(files))}
	for _, file := range files {
		outcome := applyOne(file, opts)
		result.record(outcome)
		if opts.Observe != nil {
			opts.Observe(outcome)
		}
	}
	return result
}

func applyOne(file manifest.File, opts Options) Outcome {
	outcome := Outcome{
		Path:     file.Path,
		Template: file.Content != "",
	}

	if dir := path.Dir(file.Path); dir != "." {
		outcome.Dir = dir
		outcome.DirStatus = ensureDir(filepath.Join(opts.Dir, filepath.FromSlash(dir)), opts.DryRun, &outcome)
	}

	if opts.DryRun {
		outcome.Action = ActionPlanned
		return outcome
	}

	target := filepath.Join(opts.Dir, filepath.FromSlash(file.Path))
	existed, empty := statFile(target)

	if existed && !empty && !opts.Overwrite {
		outcome.Action = ActionExists
		return outcome
	}

	if err := os.WriteFile(target, []byte(file.Content), 0o644); err != nil {
		outcome.Action = ActionFailed
		outcome.Err = err.Error()
		return outcome
	}

	if opts.Overwrite && existed {
		outcome.Action = ActionOverwritten
	} else {
		outcome.Action = ActionCreated
	}
	return outcome
}

// ensureDir creates the parent directory chain. Failures are recorded on
// the outcome but do not stop the entry: the write is still attempted so
// its own failure surfaces the same way the directory failure did.
func ensureDir(dir string, dryRun bool, outcome *Outcome) DirStatus {
	if dryRun {
		return DirPlanned
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		outcome.DirErr = err.Error()
		return DirFailed
	}
	return DirCreated
}

// statFile reports whether the target exists and whether it is empty.
func statFile(target string) (existed, empty bool) {
	info, err := os.Stat(target)
	if err != nil {
		return false, false
	}
	return true, info.Size() == 0
}

func (r *Result) record(outcome Outcome) {
	r.Outcomes = append(r.Outcomes, outcome)
	switch outcome.Action {
	case ActionCreated:
		r.Created++
	case ActionOverwritten:
		r.Overwritten++
	case ActionExists:
		r.Exists++
	case ActionPlanned:
		r.Planned++
	case ActionFailed:
		r.Failed++
	}
}
