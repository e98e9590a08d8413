// Package extract turns uploaded building-plan PDFs into the normalized
// plain text the rule evaluator consumes.
//
// Extraction reads a bounded number of pages, concatenates their text, and
// skips pages that fail to parse rather than failing the whole document.
// Malformed PDF bytes are an input error surfaced to the caller before any
// evaluation happens. Page and document boundaries are irrelevant to rule
// matching, so the output is a single string.
package extract
