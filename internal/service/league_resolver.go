package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/maxviazov/league-registry/internal/model"
	"github.com/maxviazov/league-registry/internal/repository"
)

// ResolutionKind tells which outcome a Resolution describes.
type ResolutionKind int

const (
	// Resolved means exactly one league was selected.
	Resolved ResolutionKind = iota
	// NotFound means no league has the requested name.
	NotFound
	// AmbiguousNoQualifier means several leagues share the name and no country was given.
	AmbiguousNoQualifier
	// AmbiguousQualifierMismatch means several leagues share the name and none is in the given country.
	AmbiguousQualifierMismatch
	// QualifierMismatchSingle means the only league with the name is in another country.
	QualifierMismatchSingle
)

func (k ResolutionKind) String() string {
	switch k {
	case Resolved:
		return "resolved"
	case NotFound:
		return "not_found"
	case AmbiguousNoQualifier:
		return "ambiguous_no_qualifier"
	case AmbiguousQualifierMismatch:
		return "ambiguous_qualifier_mismatch"
	case QualifierMismatchSingle:
		return "qualifier_mismatch_single"
	default:
		return fmt.Sprintf("resolution(%d)", int(k))
	}
}

// Resolution is the outcome of resolving a league name. Only the fields of
// its Kind are set.
type Resolution struct {
	Kind     ResolutionKind
	LeagueID int64
	// Name is the league name as requested.
	Name string
	// Country is the requested country; empty when none was given.
	Country string
	// Actual is the country of the single candidate; empty when NULL.
	Actual string
	// Available lists the distinct non-empty countries of all candidates in storage order.
	Available []string
}

// Err converts a failed resolution into a service error. It returns nil for Resolved.
func (r Resolution) Err() error {
	switch r.Kind {
	case Resolved:
		return nil
	case NotFound:
		return notFoundError(`No league found with name: "%s"`, r.Name)
	case QualifierMismatchSingle:
		return notFoundError(`League "%s" exists, but not in country "%s". It is in "%s".`, r.Name, r.Country, orNA(r.Actual))
	case AmbiguousNoQualifier:
		return validationError(`Multiple leagues exist with name "%s". Please provide league_country to specify.`, r.Name)
	case AmbiguousQualifierMismatch:
		return notFoundError(`League "%s" found, but not in country "%s". Available in: %s.`, r.Name, r.Country, orNA(strings.Join(r.Available, ", ")))
	default:
		return fmt.Errorf("unknown resolution kind %s", r.Kind)
	}
}

// LeagueResolver turns a league name plus optional country into one league id.
type LeagueResolver struct {
	leagues repository.LeagueFinder
}

func NewLeagueResolver(leagues repository.LeagueFinder) *LeagueResolver {
	return &LeagueResolver{leagues: leagues}
}

// Resolve looks up all leagues named exactly name and narrows them down with
// country, compared case-insensitively. Absence and ambiguity are reported in
// the Resolution; the error is reserved for storage failures.
func (r *LeagueResolver) Resolve(ctx context.Context, name, country string) (Resolution, error) {
	candidates, err := r.leagues.FindByName(ctx, name)
	if err != nil {
		return Resolution{}, fmt.Errorf("find leagues by name: %w", err)
	}
	return resolve(candidates, name, country), nil
}

func resolve(candidates []model.League, name, country string) Resolution {
	switch len(candidates) {
	case 0:
		return Resolution{Kind: NotFound, Name: name}
	case 1:
		only := candidates[0]
		if country == "" || countryMatches(only.Country, country) {
			return Resolution{Kind: Resolved, LeagueID: only.ID}
		}
		return Resolution{Kind: QualifierMismatchSingle, Name: name, Country: country, Actual: deref(only.Country)}
	}

	if country == "" {
		return Resolution{Kind: AmbiguousNoQualifier, Name: name}
	}
	for _, l := range candidates {
		if countryMatches(l.Country, country) {
			return Resolution{Kind: Resolved, LeagueID: l.ID}
		}
	}

	available := make([]string, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))
	for _, l := range candidates {
		c := deref(l.Country)
		if c == "" {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		available = append(available, c)
	}
	return Resolution{Kind: AmbiguousQualifierMismatch, Name: name, Country: country, Available: available}
}

// countryMatches treats a NULL stored country as never matching.
func countryMatches(stored *string, requested string) bool {
	return stored != nil && strings.EqualFold(*stored, requested)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
