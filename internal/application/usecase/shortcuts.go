package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/bnema/kkc-shortcuts/internal/application/port"
	"github.com/bnema/kkc-shortcuts/internal/application/shortcut"
	"github.com/bnema/kkc-shortcuts/internal/domain/entity"
	"github.com/bnema/kkc-shortcuts/internal/logging"
)

// AddShortcutInput is a binding as typed by the user.
type AddShortcutInput struct {
	Mode    entity.InputMode
	Key     string
	Command string
}

// AddShortcutUseCase validates user input and adds it to the registry.
type AddShortcutUseCase struct {
	engine   port.ConversionEngine
	registry *shortcut.Registry
}

// NewAddShortcutUseCase creates a new AddShortcutUseCase.
func NewAddShortcutUseCase(engine port.ConversionEngine, registry *shortcut.Registry) *AddShortcutUseCase {
	return &AddShortcutUseCase{engine: engine, registry: registry}
}

// Execute parses the key, checks the command and adds the binding. The
// registry is untouched unless every check passes.
func (uc *AddShortcutUseCase) Execute(ctx context.Context, input AddShortcutInput) (entity.Binding, error) {
	if uc == nil || uc.engine == nil || uc.registry == nil {
		return entity.Binding{}, fmt.Errorf("add shortcut use case is not wired")
	}

	if !input.Mode.Valid() {
		return entity.Binding{}, fmt.Errorf("invalid input mode %d", int(input.Mode))
	}

	command := strings.TrimSpace(input.Command)
	if !slices.Contains(uc.engine.Commands(), command) {
		return entity.Binding{}, fmt.Errorf("%w: %q", entity.ErrUnknownCommand, command)
	}

	event, err := uc.engine.ParseKeyDescription(input.Key)
	if err != nil {
		return entity.Binding{}, err
	}

	if !uc.registry.Loaded() {
		return entity.Binding{}, entity.ErrNoRuleLoaded
	}

	binding := entity.NewBinding(command, event, uc.engine.CommandLabel(command), input.Mode)
	if !uc.registry.Add(ctx, binding) {
		return entity.Binding{}, fmt.Errorf("%w: %s in %s", entity.ErrKeyConflict, event, input.Mode.DisplayName())
	}

	logging.FromContext(ctx).Info().
		Str("mode", input.Mode.String()).
		Str("key", event.String()).
		Str("command", command).
		Msg("shortcuts: added")
	return binding, nil
}

// RemoveShortcutInput names an existing binding by mode and key.
type RemoveShortcutInput struct {
	Mode entity.InputMode
	Key  string
}

// RemoveShortcutUseCase removes a binding identified by its key.
type RemoveShortcutUseCase struct {
	engine   port.ConversionEngine
	registry *shortcut.Registry
}

// NewRemoveShortcutUseCase creates a new RemoveShortcutUseCase.
func NewRemoveShortcutUseCase(engine port.ConversionEngine, registry *shortcut.Registry) *RemoveShortcutUseCase {
	return &RemoveShortcutUseCase{engine: engine, registry: registry}
}

// Execute removes the entry for (mode, key) and returns it.
func (uc *RemoveShortcutUseCase) Execute(ctx context.Context, input RemoveShortcutInput) (entity.Binding, error) {
	if uc == nil || uc.engine == nil || uc.registry == nil {
		return entity.Binding{}, fmt.Errorf("remove shortcut use case is not wired")
	}

	event, err := uc.engine.ParseKeyDescription(input.Key)
	if err != nil {
		return entity.Binding{}, err
	}
	if !uc.registry.Loaded() {
		return entity.Binding{}, entity.ErrNoRuleLoaded
	}

	row := uc.registry.IndexOf(input.Mode, event)
	if row < 0 {
		return entity.Binding{}, fmt.Errorf("%w: %s in %s", entity.ErrBindingNotFound, event, input.Mode.DisplayName())
	}

	binding, _ := uc.registry.At(row)
	uc.registry.Remove(ctx, row)
	return binding, nil
}

// SwitchDecision is the user's answer when switching away from unsaved edits.
type SwitchDecision int

const (
	// DecisionSave persists the current rule, then switches.
	DecisionSave SwitchDecision = iota
	// DecisionDiscard switches and drops the unsaved edits.
	DecisionDiscard
	// DecisionCancel keeps the current rule selected.
	DecisionCancel
)

func (d SwitchDecision) String() string {
	switch d {
	case DecisionSave:
		return "save"
	case DecisionDiscard:
		return "discard"
	case DecisionCancel:
		return "cancel"
	default:
		return fmt.Sprintf("SwitchDecision(%d)", int(d))
	}
}

// SwitchRuleUseCase loads another rule into the registry.
type SwitchRuleUseCase struct {
	registry *shortcut.Registry
}

// NewSwitchRuleUseCase creates a new SwitchRuleUseCase.
func NewSwitchRuleUseCase(registry *shortcut.Registry) *SwitchRuleUseCase {
	return &SwitchRuleUseCase{registry: registry}
}

// Execute switches to name. decision only matters when there are unsaved
// edits. It reports whether the registry now shows name. A failed save
// still switches; the save error is returned with switched set to true.
func (uc *SwitchRuleUseCase) Execute(ctx context.Context, name string, decision SwitchDecision) (bool, error) {
	if uc == nil || uc.registry == nil {
		return false, fmt.Errorf("shortcut registry is nil")
	}
	log := logging.FromContext(ctx)

	var saveErr error
	if uc.registry.NeedSave() {
		switch decision {
		case DecisionCancel:
			log.Debug().Str("rule", name).Msg("rules: switch cancelled")
			return false, nil
		case DecisionSave:
			if saveErr = uc.registry.Save(ctx); saveErr != nil {
				log.Warn().Err(saveErr).Str("rule", uc.registry.ActiveRule()).Msg("rules: save before switch failed")
			}
		case DecisionDiscard:
			log.Debug().Str("rule", uc.registry.ActiveRule()).Msg("rules: discarding unsaved changes")
		default:
			return false, fmt.Errorf("unknown switch decision %s", decision)
		}
	}

	if err := uc.registry.Load(ctx, name); err != nil {
		return false, errors.Join(saveErr, err)
	}
	return true, saveErr
}

// SaveShortcutsUseCase flushes the registry and records the active rule.
type SaveShortcutsUseCase struct {
	registry   *shortcut.Registry
	activeRule *ActiveRuleUseCase
}

// NewSaveShortcutsUseCase creates a new SaveShortcutsUseCase.
func NewSaveShortcutsUseCase(registry *shortcut.Registry, activeRule *ActiveRuleUseCase) *SaveShortcutsUseCase {
	return &SaveShortcutsUseCase{registry: registry, activeRule: activeRule}
}

// Execute saves the registry, then writes ruleName to the active-rule file.
// The file is written even when some modes failed to persist.
func (uc *SaveShortcutsUseCase) Execute(ctx context.Context, ruleName string) error {
	if uc == nil || uc.registry == nil || uc.activeRule == nil {
		return fmt.Errorf("save shortcuts use case is not wired")
	}

	saveErr := uc.registry.Save(ctx)
	if saveErr != nil {
		logging.FromContext(ctx).Error().Err(saveErr).Str("rule", ruleName).Msg("shortcuts: save incomplete")
	}

	return errors.Join(saveErr, uc.activeRule.Save(ctx, ruleName))
}
