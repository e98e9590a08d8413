// Package checklist defines the compliance checklist data model: rules,
// detectors, and the registry that holds the rule set for one building-code
// edition.
//
// A Registry is immutable after construction and safe to share across
// concurrent evaluations without locking. Construction fails fast on
// configuration errors (empty or duplicate rule codes, malformed detector
// patterns) so a broken checklist can never serve requests.
//
// Checklists can be loaded from YAML files, and a Store plus Watcher pair
// supports atomically swapping in a new registry when the checklist file
// changes on disk. The watcher never swaps in a registry that failed
// validation; the previous registry stays active.
package checklist
