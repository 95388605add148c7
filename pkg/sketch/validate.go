package sketch

import "fmt"

// ValidationSeverity indicates whether a validation finding rejects the
// sketch or is merely informational.
type ValidationSeverity int

const (
	SeverityError   ValidationSeverity = iota // rejects the sketch
	SeverityWarning                           // informational
)

func (s ValidationSeverity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("ValidationSeverity(%d)", int(s))
	}
}

// ValidationError describes a single validation finding.
type ValidationError struct {
	EntryID  EntryID            // which entry has the problem (zero if sketch-level)
	Message  string             // human-readable description
	Severity ValidationSeverity // error or warning
}

func (e ValidationError) Error() string {
	if e.EntryID.IsZero() {
		return fmt.Sprintf("[%s] %s", e.Severity, e.Message)
	}
	return fmt.Sprintf("[%s] entry %s: %s", e.Severity, e.EntryID.Short(), e.Message)
}

// ValidationWarning describes a non-blocking advisory finding.
type ValidationWarning struct {
	EntryID EntryID
	Message string
}

// ValidationResult bundles errors (blocking) and warnings (advisory)
// from structural and geometric validation.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// OK reports whether the result has no errors.
func (r ValidationResult) OK() bool { return len(r.Errors) == 0 }

// Validate runs the structural checks and returns the errors found. An
// empty slice means the sketch is well formed. It never mutates s.
func Validate(s *Sketch) []ValidationError {
	var errs []ValidationError
	errs = append(errs, validateEntries(s)...)
	errs = append(errs, validateNames(s)...)
	return errs
}

// ValidateAll runs the structural and geometric checks and returns a
// ValidationResult with separated errors and warnings.
func ValidateAll(s *Sketch) ValidationResult {
	var result ValidationResult
	for _, e := range Validate(s) {
		if e.Severity == SeverityWarning {
			result.Warnings = append(result.Warnings, ValidationWarning{
				EntryID: e.EntryID,
				Message: e.Message,
			})
		} else {
			result.Errors = append(result.Errors, e)
		}
	}
	result.Warnings = append(result.Warnings, validateGeometry(s)...)
	return result
}

// validateEntries checks that every entry has an ID and a shape, that IDs
// are unique, and that ByID agrees with Entries.
func validateEntries(s *Sketch) []ValidationError {
	var errs []ValidationError
	seen := make(map[EntryID]int)

	for i, e := range s.Entries {
		if e == nil {
			errs = append(errs, ValidationError{
				Message:  fmt.Sprintf("entry %d is nil", i),
				Severity: SeverityError,
			})
			continue
		}
		if e.ID.IsZero() {
			errs = append(errs, ValidationError{
				Message:  fmt.Sprintf("entry %d has no id", i),
				Severity: SeverityError,
			})
		}
		if e.Shape == nil {
			errs = append(errs, ValidationError{
				EntryID:  e.ID,
				Message:  "entry has no shape",
				Severity: SeverityError,
			})
		}
		if first, dup := seen[e.ID]; dup && !e.ID.IsZero() {
			errs = append(errs, ValidationError{
				EntryID:  e.ID,
				Message:  fmt.Sprintf("duplicate id: entries %d and %d", first, i),
				Severity: SeverityError,
			})
		} else {
			seen[e.ID] = i
		}
		if s.ByID[e.ID] == nil {
			errs = append(errs, ValidationError{
				EntryID:  e.ID,
				Message:  "entry missing from id index",
				Severity: SeverityError,
			})
		}
	}

	return errs
}

// validateNames checks that the name index only references existing
// entries and that no two entries share a name.
func validateNames(s *Sketch) []ValidationError {
	var errs []ValidationError

	for name, id := range s.NameIndex {
		if _, ok := s.ByID[id]; !ok {
			errs = append(errs, ValidationError{
				Message:  fmt.Sprintf("name index entry %q references non-existent entry %s", name, id.Short()),
				Severity: SeverityError,
			})
		}
	}

	nameToEntries := make(map[string]int)
	for _, e := range s.Entries {
		if e != nil && e.Name != "" {
			nameToEntries[e.Name]++
		}
	}
	for name, n := range nameToEntries {
		if n > 1 {
			errs = append(errs, ValidationError{
				Message:  fmt.Sprintf("duplicate name %q assigned to %d entries", name, n),
				Severity: SeverityError,
			})
		}
	}

	return errs
}
