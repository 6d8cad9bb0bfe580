package rules

import (
	"context"
	"fmt"
	"sort"

	"worktime/internal/rules/models"
	id "worktime/pkg/domain"
)

// AssignmentStore reads rule assignments joined with their versions.
type AssignmentStore interface {
	ListBindings(ctx context.Context, companyID id.CompanyID) ([]models.Binding, error)
}

// Resolver merges priority-ordered assignments with the default catalog.
type Resolver struct {
	store   AssignmentStore
	catalog *Catalog
}

// NewResolver constructs a Resolver. A nil catalog means no fallbacks.
func NewResolver(store AssignmentStore, catalog *Catalog) *Resolver {
	return &Resolver{store: store, catalog: catalog}
}

// Load fetches every binding for a company so a batch can resolve many
// employees from one read.
func (r *Resolver) Load(ctx context.Context, companyID id.CompanyID) ([]models.Binding, error) {
	bindings, err := r.store.ListBindings(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("load rule assignments: %w", err)
	}
	return bindings, nil
}

// Resolve loads and resolves in one call.
func (r *Resolver) Resolve(ctx context.Context, companyID id.CompanyID, employeeID *id.EmployeeID, date id.Date) (models.RuleSet, error) {
	bindings, err := r.Load(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return r.ResolveFrom(bindings, employeeID, date), nil
}

// ResolveFrom picks the effective rule per code:
//  1. keep active assignments whose scope covers employeeID and whose
//     version is effective on date
//  2. order by priority descending, then most recently created, then id
//  3. the first assignment carrying a code wins it
//  4. codes no assignment carries come from the catalog; codes absent from
//     both are left out and therefore not evaluated
func (r *Resolver) ResolveFrom(bindings []models.Binding, employeeID *id.EmployeeID, date id.Date) models.RuleSet {
	applicable := make([]models.Binding, 0, len(bindings))
	for _, b := range bindings {
		if !b.Assignment.IsActive || !b.Assignment.AppliesTo(employeeID) || !b.Version.EffectiveOn(date) {
			continue
		}
		applicable = append(applicable, b)
	}
	SortByPrecedence(applicable)

	set := make(models.RuleSet)
	for _, b := range applicable {
		for code, params := range b.Version.Payload {
			if _, taken := set[code]; taken {
				continue
			}
			versionID := b.Version.ID
			assignmentID := b.Assignment.ID
			set[code] = models.EffectiveRule{
				Code:          code,
				Limit:         params.Limit,
				Severity:      r.severityFor(code, params.Severity),
				Source:        models.SourceAssignment,
				RuleVersionID: &versionID,
				AssignmentID:  &assignmentID,
				Priority:      b.Assignment.Priority,
			}
		}
	}

	for _, code := range r.catalog.Codes() {
		if _, taken := set[code]; taken {
			continue
		}
		params, _ := r.catalog.Lookup(code)
		set[code] = models.EffectiveRule{
			Code:     code,
			Limit:    params.Limit,
			Severity: params.Severity,
			Source:   models.SourceDefault,
		}
	}
	return set
}

func (r *Resolver) severityFor(code models.RuleCode, s models.Severity) models.Severity {
	if s.IsValid() {
		return s
	}
	if params, ok := r.catalog.Lookup(code); ok {
		return params.Severity
	}
	return DefaultSeverity(code)
}

// SortByPrecedence orders bindings highest priority first. Equal priorities
// go to the most recently created assignment, then the lower id.
func SortByPrecedence(bindings []models.Binding) {
	sort.SliceStable(bindings, func(i, j int) bool {
		a, b := bindings[i].Assignment, bindings[j].Assignment
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID.String() < b.ID.String()
	})
}
