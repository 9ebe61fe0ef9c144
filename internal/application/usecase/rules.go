// Package usecase holds the application operations driven by the CLI and TUI.
package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/bnema/kkc-shortcuts/internal/application/port"
	"github.com/bnema/kkc-shortcuts/internal/domain/entity"
	"github.com/bnema/kkc-shortcuts/internal/logging"
)

// ListRulesUseCase lists the rules offered in the rule chooser.
type ListRulesUseCase struct {
	catalog port.RuleCatalog
}

// NewListRulesUseCase creates a new ListRulesUseCase.
func NewListRulesUseCase(catalog port.RuleCatalog) *ListRulesUseCase {
	return &ListRulesUseCase{catalog: catalog}
}

// Execute returns every rule in display order.
func (uc *ListRulesUseCase) Execute(ctx context.Context) ([]entity.RuleMetadata, error) {
	if uc == nil || uc.catalog == nil {
		return nil, fmt.Errorf("rule catalog is nil")
	}

	rules, err := uc.catalog.ListRules(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rules: %w", err)
	}

	logging.FromContext(ctx).Debug().Int("count", len(rules)).Msg("rules: listed")
	return rules, nil
}

// FindRule returns the position of name in rules. A missing name selects
// the first row so the chooser always has a selection.
func FindRule(rules []entity.RuleMetadata, name string) int {
	idx := slices.IndexFunc(rules, func(r entity.RuleMetadata) bool {
		return r.Name == name
	})
	if idx < 0 {
		return 0
	}
	return idx
}

// ActiveRuleUseCase reads and records the rule the editor opens with.
type ActiveRuleUseCase struct {
	store   port.ActiveRuleStore
	catalog port.RuleCatalog
}

// NewActiveRuleUseCase creates a new ActiveRuleUseCase. catalog may be nil,
// in which case Load does not check that the stored rule still exists.
func NewActiveRuleUseCase(store port.ActiveRuleStore, catalog port.RuleCatalog) *ActiveRuleUseCase {
	return &ActiveRuleUseCase{store: store, catalog: catalog}
}

// Load returns the stored rule name, "default" when nothing is stored, or
// the first catalog rule when the stored one is gone.
func (uc *ActiveRuleUseCase) Load(ctx context.Context) (string, error) {
	if uc == nil || uc.store == nil {
		return "", fmt.Errorf("active rule store is nil")
	}
	log := logging.FromContext(ctx)

	name, err := uc.store.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("load active rule: %w", err)
	}
	if name == "" {
		name = entity.DefaultRuleName
	}

	if uc.catalog == nil {
		return name, nil
	}

	rules, err := uc.catalog.ListRules(ctx)
	if err != nil {
		return "", fmt.Errorf("list rules: %w", err)
	}
	if len(rules) == 0 || slices.ContainsFunc(rules, func(r entity.RuleMetadata) bool { return r.Name == name }) {
		return name, nil
	}

	fallback := rules[FindRule(rules, name)].Name
	log.Info().Str("stored", name).Str("rule", fallback).Msg("rules: stored rule not found, using first rule")
	return fallback, nil
}

// Save records name as the active rule.
func (uc *ActiveRuleUseCase) Save(ctx context.Context, name string) error {
	if uc == nil || uc.store == nil {
		return fmt.Errorf("active rule store is nil")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("rule name is required")
	}

	if err := uc.store.Save(ctx, name); err != nil {
		return fmt.Errorf("save active rule: %w", err)
	}
	return nil
}
