package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/kkc-shortcuts/internal/application/port"
	"github.com/bnema/kkc-shortcuts/internal/application/port/mocks"
	"github.com/bnema/kkc-shortcuts/internal/application/shortcut"
	"github.com/bnema/kkc-shortcuts/internal/domain/entity"
	"github.com/bnema/kkc-shortcuts/internal/logging"
)

const basePath = "/base"

var (
	keyEscape = entity.NewKeyEvent(0xff1b, "Escape", entity.ModNone)
	keyCtrlG  = entity.NewKeyEvent(0x67, "g", entity.ModControl)
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// engineFixture backs a real registry with mocked engine ports. Bindings set
// through the keymaps are kept per mode so conflicts behave like the engine.
type engineFixture struct {
	engine   *mocks.MockConversionEngine
	userRule *mocks.MockUserRule
	registry *shortcut.Registry

	bound      map[entity.InputMode]map[entity.KeySlot]string
	persisted  []entity.InputMode
	persistErr error
}

func newEngineFixture(t *testing.T) *engineFixture {
	t.Helper()
	f := &engineFixture{
		engine:   mocks.NewMockConversionEngine(t),
		userRule: mocks.NewMockUserRule(t),
		bound:    make(map[entity.InputMode]map[entity.KeySlot]string),
	}

	f.engine.EXPECT().ResolveRule(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, name string) (entity.RuleMetadata, error) {
			if name == "missing" {
				return entity.RuleMetadata{}, entity.ErrRuleNotFound
			}
			return entity.RuleMetadata{Name: name}, nil
		}).Maybe()
	f.engine.EXPECT().OpenUserRule(mock.Anything, mock.Anything, basePath).Return(f.userRule, nil).Maybe()
	f.engine.EXPECT().Commands().Return([]string{"abort", "commit", "next-candidate"}).Maybe()
	f.engine.EXPECT().CommandLabel(mock.Anything).
		RunAndReturn(func(command string) string { return "label:" + command }).Maybe()
	f.engine.EXPECT().ParseKeyDescription(mock.Anything).
		RunAndReturn(func(raw string) (entity.KeyEvent, error) {
			switch raw {
			case "Escape":
				return keyEscape, nil
			case "C-g":
				return keyCtrlG, nil
			}
			return entity.KeyEvent{}, fmt.Errorf("%w: %q", entity.ErrParse, raw)
		}).Maybe()

	f.userRule.EXPECT().Keymap(mock.Anything).
		RunAndReturn(func(mode entity.InputMode) (port.Keymap, error) {
			return f.keymap(t, mode), nil
		}).Maybe()
	f.userRule.EXPECT().Persist(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, mode entity.InputMode) error {
			f.persisted = append(f.persisted, mode)
			return f.persistErr
		}).Maybe()
	f.userRule.EXPECT().Close().Return(nil).Maybe()

	f.registry = shortcut.NewRegistry(f.engine, basePath)
	return f
}

func (f *engineFixture) keymap(t *testing.T, mode entity.InputMode) *mocks.MockKeymap {
	slots, ok := f.bound[mode]
	if !ok {
		slots = make(map[entity.KeySlot]string)
		f.bound[mode] = slots
	}

	km := mocks.NewMockKeymap(t)
	km.EXPECT().Entries().Return(nil).Maybe()
	km.EXPECT().Lookup(mock.Anything).
		RunAndReturn(func(event entity.KeyEvent) (string, bool) {
			command, ok := slots[event.Slot()]
			return command, ok
		}).Maybe()
	km.EXPECT().Set(mock.Anything, mock.Anything).
		RunAndReturn(func(event entity.KeyEvent, command string) {
			if command == "" {
				delete(slots, event.Slot())
				return
			}
			slots[event.Slot()] = command
		}).Maybe()
	km.EXPECT().Close().Return(nil).Maybe()
	return km
}

func (f *engineFixture) load(t *testing.T, name string) {
	t.Helper()
	require.NoError(t, f.registry.Load(testCtx(), name))
	require.True(t, f.registry.Loaded())
}
