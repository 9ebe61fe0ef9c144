package shortcut_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/kkc-shortcuts/internal/application/port"
	"github.com/bnema/kkc-shortcuts/internal/application/port/mocks"
	"github.com/bnema/kkc-shortcuts/internal/application/shortcut"
	"github.com/bnema/kkc-shortcuts/internal/domain/entity"
	"github.com/bnema/kkc-shortcuts/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

var (
	keyEscape = entity.NewKeyEvent(0xff1b, "Escape", entity.ModNone)
	keyCtrlG  = entity.NewKeyEvent(0x67, "g", entity.ModControl)
	keyCtrlJ  = entity.NewKeyEvent(0x6a, "j", entity.ModControl)
	keySpace  = entity.NewKeyEvent(0x20, "space", entity.ModNone)
	keyF7     = entity.NewKeyEvent(0xffc4, "F7", entity.ModNone)
)

// memoryEngine keeps a persisted keymap per mode and hands out user rules
// whose live keymaps start as copies of it.
type memoryEngine struct {
	rules  map[string]entity.RuleMetadata
	stored map[entity.InputMode][]port.KeymapEntry

	failPersist map[entity.InputMode]bool
	opened      int
	closed      int
}

func newMemoryEngine() *memoryEngine {
	return &memoryEngine{
		rules: map[string]entity.RuleMetadata{
			"default": {Name: "default", Label: "Default", Priority: 0},
			"act":     {Name: "act", Label: "ACT", Priority: 10},
		},
		stored:      map[entity.InputMode][]port.KeymapEntry{},
		failPersist: map[entity.InputMode]bool{},
	}
}

func (e *memoryEngine) ListRules(context.Context) ([]entity.RuleMetadata, error) {
	var out []entity.RuleMetadata
	for _, meta := range e.rules {
		out = append(out, meta)
	}
	return out, nil
}

func (e *memoryEngine) ResolveRule(_ context.Context, name string) (entity.RuleMetadata, error) {
	meta, ok := e.rules[name]
	if !ok {
		return entity.RuleMetadata{}, fmt.Errorf("%w: %s", entity.ErrRuleNotFound, name)
	}
	return meta, nil
}

func (e *memoryEngine) OpenUserRule(context.Context, entity.RuleMetadata, string) (port.UserRule, error) {
	e.opened++
	live := map[entity.InputMode][]port.KeymapEntry{}
	for mode, entries := range e.stored {
		live[mode] = slices.Clone(entries)
	}
	return &memoryRule{engine: e, live: live}, nil
}

func (e *memoryEngine) ParseKeyDescription(raw string) (entity.KeyEvent, error) {
	return entity.KeyEvent{}, fmt.Errorf("%w: %s", entity.ErrParse, raw)
}

func (e *memoryEngine) CommandLabel(command string) string {
	return "label:" + command
}

func (e *memoryEngine) Commands() []string {
	return []string{"abort", "commit"}
}

type memoryRule struct {
	engine *memoryEngine
	live   map[entity.InputMode][]port.KeymapEntry
}

func (r *memoryRule) Keymap(mode entity.InputMode) (port.Keymap, error) {
	return &memoryKeymap{rule: r, mode: mode}, nil
}

func (r *memoryRule) Persist(_ context.Context, mode entity.InputMode) error {
	if r.engine.failPersist[mode] {
		return errors.New("disk full")
	}
	r.engine.stored[mode] = slices.Clone(r.live[mode])
	return nil
}

func (r *memoryRule) Close() error {
	r.engine.closed++
	return nil
}

type memoryKeymap struct {
	rule *memoryRule
	mode entity.InputMode
}

func (k *memoryKeymap) Entries() []port.KeymapEntry {
	return slices.Clone(k.rule.live[k.mode])
}

func (k *memoryKeymap) Lookup(event entity.KeyEvent) (string, bool) {
	for _, e := range k.rule.live[k.mode] {
		if e.Event.Equal(event) && e.Command != "" {
			return e.Command, true
		}
	}
	return "", false
}

func (k *memoryKeymap) Set(event entity.KeyEvent, command string) {
	entries := k.rule.live[k.mode]
	idx := slices.IndexFunc(entries, func(e port.KeymapEntry) bool { return e.Event.Equal(event) })
	switch {
	case command == "" && idx >= 0:
		entries = slices.Delete(entries, idx, idx+1)
	case idx >= 0:
		entries[idx].Command = command
	case command != "":
		entries = append(entries, port.KeymapEntry{Command: command, Event: event})
	}
	k.rule.live[k.mode] = entries
}

func (k *memoryKeymap) Close() error { return nil }

type recordingObserver struct {
	events []string
}

func (o *recordingObserver) RegistryReset(begin bool) {
	if begin {
		o.events = append(o.events, "reset-begin")
		return
	}
	o.events = append(o.events, "reset-end")
}

func (o *recordingObserver) RowInserted(row int) {
	o.events = append(o.events, fmt.Sprintf("inserted:%d", row))
}

func (o *recordingObserver) RowRemoved(row int) {
	o.events = append(o.events, fmt.Sprintf("removed:%d", row))
}

func (o *recordingObserver) DirtyChanged(dirty bool) {
	o.events = append(o.events, fmt.Sprintf("dirty:%t", dirty))
}

func loadedRegistry(t *testing.T, engine *memoryEngine) *shortcut.Registry {
	t.Helper()
	reg := shortcut.NewRegistry(engine, t.TempDir())
	require.NoError(t, reg.Load(testContext(), "default"))
	require.True(t, reg.Loaded())
	return reg
}

func TestRegistry_Add_RejectsSecondBindingOnSameSlot(t *testing.T) {
	ctx := testContext()
	reg := loadedRegistry(t, newMemoryEngine())

	ok := reg.Add(ctx, entity.NewBinding("abort", keyEscape, "Cancel", entity.InputModeHiragana))
	require.True(t, ok)
	assert.Equal(t, 1, reg.Len())
	assert.True(t, reg.NeedSave())

	ok = reg.Add(ctx, entity.NewBinding("other", keyEscape, "Other", entity.InputModeHiragana))
	assert.False(t, ok)
	assert.Equal(t, 1, reg.Len())

	got, _ := reg.At(0)
	assert.Equal(t, "abort", got.Command)
}

func TestRegistry_Add_SameKeyInOtherModeIsAllowed(t *testing.T) {
	ctx := testContext()
	reg := loadedRegistry(t, newMemoryEngine())

	require.True(t, reg.Add(ctx, entity.NewBinding("abort", keyEscape, "", entity.InputModeHiragana)))
	assert.True(t, reg.Add(ctx, entity.NewBinding("abort", keyEscape, "", entity.InputModeKatakana)))
	assert.Equal(t, 2, reg.Len())
}

func TestRegistry_Add_ConflictWithParentBinding(t *testing.T) {
	ctx := testContext()
	engine := newMemoryEngine()
	engine.stored[entity.InputModeLatin] = []port.KeymapEntry{{Command: "commit", Event: keyCtrlJ}}
	reg := loadedRegistry(t, engine)
	obs := &recordingObserver{}
	reg.Subscribe(obs)

	ok := reg.Add(ctx, entity.NewBinding("abort", keyCtrlJ, "", entity.InputModeLatin))

	assert.False(t, ok)
	assert.False(t, reg.NeedSave())
	assert.Empty(t, obs.events)
}

func TestRegistry_Add_WithoutLoadedRule(t *testing.T) {
	reg := shortcut.NewRegistry(newMemoryEngine(), t.TempDir())

	ok := reg.Add(testContext(), entity.NewBinding("abort", keyEscape, "", entity.InputModeHiragana))

	assert.False(t, ok)
	assert.Zero(t, reg.Len())
	assert.False(t, reg.NeedSave())
}

func TestRegistry_Load_OrdersByModeThenEngineOrder(t *testing.T) {
	engine := newMemoryEngine()
	engine.stored[entity.InputModeKatakana] = []port.KeymapEntry{
		{Command: "commit", Event: keyCtrlJ},
	}
	engine.stored[entity.InputModeHiragana] = []port.KeymapEntry{
		{Command: "abort", Event: keyCtrlG},
		{Command: "", Event: keyF7},
		{Command: "next-candidate", Event: keySpace},
	}

	reg := loadedRegistry(t, engine)

	require.Equal(t, 3, reg.Len())
	assert.False(t, reg.NeedSave())
	entries := reg.Entries()
	assert.Equal(t, "abort", entries[0].Command)
	assert.Equal(t, "label:abort", entries[0].Label)
	assert.Equal(t, entity.InputModeHiragana, entries[0].Mode)
	assert.Equal(t, "next-candidate", entries[1].Command)
	assert.Equal(t, "commit", entries[2].Command)
	assert.Equal(t, entity.InputModeKatakana, entries[2].Mode)
	assert.Equal(t, "default", reg.ActiveRule())
}

func TestRegistry_Load_DiscardsUnsavedChanges(t *testing.T) {
	ctx := testContext()
	engine := newMemoryEngine()
	reg := loadedRegistry(t, engine)
	require.True(t, reg.Add(ctx, entity.NewBinding("abort", keyEscape, "", entity.InputModeHiragana)))

	require.NoError(t, reg.Load(ctx, "default"))

	assert.Zero(t, reg.Len())
	assert.False(t, reg.NeedSave())
	assert.Empty(t, engine.stored[entity.InputModeHiragana])
	assert.Equal(t, 2, engine.opened)
	assert.Equal(t, 1, engine.closed)
}

func TestRegistry_Load_NotifiesResetAndClearsDirty(t *testing.T) {
	ctx := testContext()
	reg := loadedRegistry(t, newMemoryEngine())
	require.True(t, reg.Add(ctx, entity.NewBinding("abort", keyEscape, "", entity.InputModeHiragana)))
	obs := &recordingObserver{}
	reg.Subscribe(obs)

	require.NoError(t, reg.Load(ctx, "act"))

	assert.Equal(t, []string{"dirty:false", "reset-begin", "reset-end"}, obs.events)
	assert.Equal(t, "act", reg.ActiveRule())
}

func TestRegistry_Load_UnknownRuleLeavesRegistryEmpty(t *testing.T) {
	ctx := testContext()
	engine := newMemoryEngine()
	engine.stored[entity.InputModeHiragana] = []port.KeymapEntry{{Command: "abort", Event: keyCtrlG}}
	reg := loadedRegistry(t, engine)
	require.Equal(t, 1, reg.Len())

	err := reg.Load(ctx, "missing")

	require.NoError(t, err)
	assert.Zero(t, reg.Len())
	assert.False(t, reg.Loaded())
	assert.Empty(t, reg.ActiveRule())
	assert.False(t, reg.Add(ctx, entity.NewBinding("abort", keyEscape, "", entity.InputModeHiragana)))
}

func TestRegistry_Load_OpenFailureLeavesRegistryEmpty(t *testing.T) {
	ctx := testContext()
	engine := mocks.NewMockConversionEngine(t)
	meta := entity.RuleMetadata{Name: "default"}
	engine.EXPECT().ResolveRule(mock.Anything, "default").Return(meta, nil)
	engine.EXPECT().OpenUserRule(mock.Anything, meta, "/base").
		Return(nil, fmt.Errorf("%w: permission denied", entity.ErrRuleOpen))

	reg := shortcut.NewRegistry(engine, "/base")
	err := reg.Load(ctx, "default")

	require.NoError(t, err)
	assert.Zero(t, reg.Len())
	assert.False(t, reg.Loaded())
}

func TestRegistry_Load_CancelledContext(t *testing.T) {
	engine := mocks.NewMockConversionEngine(t)
	ctx, cancel := context.WithCancel(testContext())
	cancel()

	reg := shortcut.NewRegistry(engine, "/base")
	err := reg.Load(ctx, "default")

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, reg.Len())
}

func TestRegistry_Remove_ClearsEngineBinding(t *testing.T) {
	ctx := testContext()
	engine := newMemoryEngine()
	engine.stored[entity.InputModeHiragana] = []port.KeymapEntry{
		{Command: "abort", Event: keyCtrlG},
		{Command: "next-candidate", Event: keySpace},
	}
	reg := loadedRegistry(t, engine)
	obs := &recordingObserver{}
	reg.Subscribe(obs)

	reg.Remove(ctx, 0)

	require.Equal(t, 1, reg.Len())
	assert.True(t, reg.NeedSave())
	assert.Equal(t, []string{"removed:0", "dirty:true"}, obs.events)

	// The slot is free again.
	assert.True(t, reg.Add(ctx, entity.NewBinding("commit", keyCtrlG, "", entity.InputModeHiragana)))
}

func TestRegistry_Remove_OutOfRangeIsIgnored(t *testing.T) {
	ctx := testContext()
	reg := loadedRegistry(t, newMemoryEngine())
	require.True(t, reg.Add(ctx, entity.NewBinding("abort", keyEscape, "", entity.InputModeHiragana)))
	require.NoError(t, reg.Save(ctx))
	obs := &recordingObserver{}
	reg.Subscribe(obs)

	reg.Remove(ctx, -1)
	reg.Remove(ctx, 1)

	assert.Equal(t, 1, reg.Len())
	assert.False(t, reg.NeedSave())
	assert.Empty(t, obs.events)
}

func TestRegistry_RemoveAfterAdd_RestoresKeymap(t *testing.T) {
	ctx := testContext()
	engine := newMemoryEngine()
	engine.stored[entity.InputModeHiragana] = []port.KeymapEntry{{Command: "abort", Event: keyCtrlG}}
	reg := loadedRegistry(t, engine)

	require.True(t, reg.Add(ctx, entity.NewBinding("commit", keyCtrlJ, "", entity.InputModeHiragana)))
	reg.Remove(ctx, reg.Len()-1)

	assert.Equal(t, 1, reg.Len())
	assert.Equal(t, -1, reg.IndexOf(entity.InputModeHiragana, keyCtrlJ))
	assert.True(t, reg.NeedSave())
}

func TestRegistry_AddTwoSaveReload(t *testing.T) {
	ctx := testContext()
	engine := newMemoryEngine()
	reg := loadedRegistry(t, engine)

	require.True(t, reg.Add(ctx, entity.NewBinding("abort", keyEscape, "", entity.InputModeHiragana)))
	require.True(t, reg.Add(ctx, entity.NewBinding("commit", keyCtrlJ, "", entity.InputModeLatin)))
	require.NoError(t, reg.Save(ctx))
	assert.False(t, reg.NeedSave())

	require.NoError(t, reg.Load(ctx, "default"))

	require.Equal(t, 2, reg.Len())
	assert.Equal(t, 0, reg.IndexOf(entity.InputModeHiragana, keyEscape))
	assert.Equal(t, 1, reg.IndexOf(entity.InputModeLatin, keyCtrlJ))
}

func TestRegistry_Save_NoopWhenClean(t *testing.T) {
	ctx := testContext()
	engine := mocks.NewMockConversionEngine(t)
	userRule := mocks.NewMockUserRule(t)
	keymap := mocks.NewMockKeymap(t)
	meta := entity.RuleMetadata{Name: "default"}

	engine.EXPECT().ResolveRule(mock.Anything, "default").Return(meta, nil)
	engine.EXPECT().OpenUserRule(mock.Anything, meta, "/base").Return(userRule, nil)
	userRule.EXPECT().Keymap(mock.Anything).Return(keymap, nil)
	keymap.EXPECT().Entries().Return(nil)
	keymap.EXPECT().Close().Return(nil)

	reg := shortcut.NewRegistry(engine, "/base")
	require.NoError(t, reg.Load(ctx, "default"))

	require.NoError(t, reg.Save(ctx))
	require.NoError(t, reg.Save(ctx))

	userRule.AssertNotCalled(t, "Persist", mock.Anything, mock.Anything)
}

func TestRegistry_Save_IsIdempotent(t *testing.T) {
	ctx := testContext()
	engine := newMemoryEngine()
	reg := loadedRegistry(t, engine)
	require.True(t, reg.Add(ctx, entity.NewBinding("abort", keyEscape, "", entity.InputModeHiragana)))
	obs := &recordingObserver{}
	reg.Subscribe(obs)

	require.NoError(t, reg.Save(ctx))
	snapshot := slices.Clone(engine.stored[entity.InputModeHiragana])
	require.NoError(t, reg.Save(ctx))

	assert.Equal(t, snapshot, engine.stored[entity.InputModeHiragana])
	assert.Equal(t, []string{"dirty:false"}, obs.events)
}

func TestRegistry_Save_ReportsFailedModesAndClearsDirty(t *testing.T) {
	ctx := testContext()
	engine := newMemoryEngine()
	engine.failPersist[entity.InputModeKatakana] = true
	engine.failPersist[entity.InputModeDirect] = true
	reg := loadedRegistry(t, engine)
	require.True(t, reg.Add(ctx, entity.NewBinding("abort", keyEscape, "", entity.InputModeHiragana)))
	require.True(t, reg.Add(ctx, entity.NewBinding("commit", keyCtrlJ, "", entity.InputModeLatin)))

	err := reg.Save(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrPersist)
	assert.Contains(t, err.Error(), "katakana")
	assert.Contains(t, err.Error(), "direct")
	assert.False(t, reg.NeedSave())
	assert.Len(t, engine.stored[entity.InputModeHiragana], 1)
	// Modes after a failing one are still persisted.
	assert.Len(t, engine.stored[entity.InputModeLatin], 1)
}

func TestRegistry_DirtyNotifiedOnlyOnTransitions(t *testing.T) {
	ctx := testContext()
	reg := loadedRegistry(t, newMemoryEngine())
	obs := &recordingObserver{}
	reg.Subscribe(obs)

	require.True(t, reg.Add(ctx, entity.NewBinding("abort", keyEscape, "", entity.InputModeHiragana)))
	require.True(t, reg.Add(ctx, entity.NewBinding("commit", keyCtrlJ, "", entity.InputModeHiragana)))
	reg.Remove(ctx, 0)

	assert.Equal(t, []string{"inserted:0", "dirty:true", "inserted:1", "removed:0"}, obs.events)
}

func TestRegistry_Subscribe_Unsubscribe(t *testing.T) {
	ctx := testContext()
	reg := loadedRegistry(t, newMemoryEngine())
	var inserted []int
	unsubscribe := reg.Subscribe(shortcut.ObserverFuncs{
		OnRowInserted: func(row int) { inserted = append(inserted, row) },
	})

	require.True(t, reg.Add(ctx, entity.NewBinding("abort", keyEscape, "", entity.InputModeHiragana)))
	unsubscribe()
	require.True(t, reg.Add(ctx, entity.NewBinding("commit", keyCtrlJ, "", entity.InputModeHiragana)))

	assert.Equal(t, []int{0}, inserted)
}

func TestRegistry_Close_ReleasesRule(t *testing.T) {
	ctx := testContext()
	engine := newMemoryEngine()
	reg := loadedRegistry(t, engine)
	require.True(t, reg.Add(ctx, entity.NewBinding("abort", keyEscape, "", entity.InputModeHiragana)))

	reg.Close(ctx)

	assert.Equal(t, 1, engine.closed)
	assert.Zero(t, reg.Len())
	assert.False(t, reg.NeedSave())
	assert.Empty(t, engine.stored[entity.InputModeHiragana])
}

func TestRegistry_Cell(t *testing.T) {
	ctx := testContext()
	reg := loadedRegistry(t, newMemoryEngine())
	require.True(t, reg.Add(ctx, entity.NewBinding("abort", keyEscape, "Abort", entity.InputModeHankakuKatakana)))

	assert.Equal(t, "Half width Katakana", reg.Cell(0, shortcut.ColumnMode))
	assert.Equal(t, keyEscape.String(), reg.Cell(0, shortcut.ColumnKey))
	assert.Equal(t, "Abort", reg.Cell(0, shortcut.ColumnLabel))
	assert.Empty(t, reg.Cell(0, shortcut.ColumnCount))
	assert.Empty(t, reg.Cell(1, shortcut.ColumnMode))
	assert.Empty(t, reg.Cell(-1, shortcut.ColumnKey))
}

func TestRegistry_KeymapCloseErrorIsLogged(t *testing.T) {
	var buf bytes.Buffer
	ctx := logging.WithContext(context.Background(), zerolog.New(&buf).Level(zerolog.DebugLevel))
	engine := mocks.NewMockConversionEngine(t)
	userRule := mocks.NewMockUserRule(t)
	keymap := mocks.NewMockKeymap(t)
	meta := entity.RuleMetadata{Name: "default"}
	closeErr := errors.New("handle busy")

	engine.EXPECT().ResolveRule(mock.Anything, "default").Return(meta, nil)
	engine.EXPECT().OpenUserRule(mock.Anything, meta, "/base").Return(userRule, nil)
	engine.EXPECT().CommandLabel("abort").Return("Abort")
	userRule.EXPECT().Keymap(mock.Anything).Return(keymap, nil)
	keymap.EXPECT().Entries().Return([]port.KeymapEntry{{Command: "abort", Event: keyCtrlG}})
	keymap.EXPECT().Set(keyCtrlG, "").Return()
	keymap.EXPECT().Close().Return(closeErr)

	reg := shortcut.NewRegistry(engine, "/base")
	require.NoError(t, reg.Load(ctx, "default"))
	require.Equal(t, entity.InputModeCount, strings.Count(buf.String(), "registry: closing keymap"))
	buf.Reset()

	// The stub keymap answers every mode, so each mode holds one binding.
	require.Equal(t, entity.InputModeCount, reg.Len())
	reg.Remove(ctx, 0)

	assert.Equal(t, entity.InputModeCount-1, reg.Len())
	assert.True(t, reg.NeedSave())
	assert.Contains(t, buf.String(), "registry: closing keymap")
	assert.Contains(t, buf.String(), "handle busy")
}
