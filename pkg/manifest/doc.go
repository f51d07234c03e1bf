// Package manifest reads the project manifest consumed by tagcheck.
//
// A manifest is a JSON document owned by the repository being released; the
// only field this package interprets is the top-level `version` string.
package manifest
