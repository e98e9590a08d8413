// Package compliance implements the rule evaluation engine: it decides, for
// each rule in a checklist registry, whether the rule's detector finds
// evidence in the extracted plan text, and aggregates the outcome into a
// pass rate and an ordered list of failed criteria.
//
// Evaluate is a pure function over its two inputs. It performs no I/O, holds
// no state between calls, and is deterministic, so it is safe under
// unbounded concurrent invocation against a shared registry.
package compliance
