// Package domain defines the core data models and interfaces shared across the app.
// It contains plain types (codes, outcomes, profile, check-ins) and contracts only;
// the concrete types live in the types subpackage and are aliased here.
package domain
