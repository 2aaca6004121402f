package portal

import "lavapp/internal/cep"

// BeginLookup stamps a new address lookup and returns its sequence number
// together with the digits to resolve. Each call supersedes every earlier
// in-flight lookup: only the completion carrying the latest sequence number
// will be applied, so fast sequential keystrokes cannot leave a stale
// directory answer on the form.
func (s *Session) BeginLookup() (seq uint64, digits string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lookupSeq++
	return s.lookupSeq, s.cepDigits
}

// ApplyLookup delivers a completed lookup. Stale completions (seq older
// than the latest issued) are discarded and the session reports false. A
// failed lookup clears street, neighborhood and city so incorrect data is
// never silently kept, and raises the error flag; a successful one
// overwrites the three fields and clears the flag. User-typed overrides
// after the lookup resolve are still possible through SetField.
func (s *Session) ApplyLookup(seq uint64, addr cep.Address, lookupErr error) (applied bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.lookupSeq {
		return false
	}

	if lookupErr != nil {
		s.cepError = true
		s.form.set(FieldStreet, "")
		s.form.set(FieldNeighborhood, "")
		s.form.set(FieldCity, "")
		return true
	}

	s.cepError = false
	s.form.set(FieldStreet, addr.Street)
	s.form.set(FieldNeighborhood, addr.Neighborhood)
	s.form.set(FieldCity, addr.City)
	return true
}
