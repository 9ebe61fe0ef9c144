package kkc

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/bnema/kkc-shortcuts/internal/application/port"
	"github.com/bnema/kkc-shortcuts/internal/domain/entity"
	"github.com/bnema/kkc-shortcuts/internal/infrastructure/cache"
	"github.com/bnema/kkc-shortcuts/internal/logging"
)

// orderedKeymap is a keymap that remembers insertion order. Rebinding a key
// keeps its position; clearing it drops the entry.
type orderedKeymap struct {
	entries []port.KeymapEntry
	index   map[entity.KeySlot]int
}

func newOrderedKeymap() *orderedKeymap {
	return &orderedKeymap{index: make(map[entity.KeySlot]int)}
}

func (k *orderedKeymap) lookup(event entity.KeyEvent) (string, bool) {
	i, ok := k.index[event.Slot()]
	if !ok {
		return "", false
	}
	return k.entries[i].Command, true
}

func (k *orderedKeymap) set(event entity.KeyEvent, command string) {
	slot := event.Slot()
	i, exists := k.index[slot]

	switch {
	case command == "" && exists:
		k.entries = slices.Delete(k.entries, i, i+1)
		delete(k.index, slot)
		for j := i; j < len(k.entries); j++ {
			k.index[k.entries[j].Event.Slot()] = j
		}
	case command == "":
	case exists:
		k.entries[i].Command = command
	default:
		k.index[slot] = len(k.entries)
		k.entries = append(k.entries, port.KeymapEntry{Command: command, Event: event})
	}
}

func (k *orderedKeymap) clone() *orderedKeymap {
	out := &orderedKeymap{
		entries: slices.Clone(k.entries),
		index:   make(map[entity.KeySlot]int, len(k.index)),
	}
	for slot, i := range k.index {
		out.index[slot] = i
	}
	return out
}

// keymapLoader reads libkkc keymap files and follows their includes.
//
// A keymap file looks like:
//
//	{"include": ["default", "other-rule/default"],
//	 "define": {"keymap": {"C-g": "abort", "(control j)": null}}}
//
// Includes are applied first, in order, then the local definitions. A null
// command clears a binding inherited from an include.
type keymapLoader struct {
	catalog  *Catalog
	visiting map[string]bool
}

func newKeymapLoader(catalog *Catalog) *keymapLoader {
	return &keymapLoader{catalog: catalog, visiting: make(map[string]bool)}
}

// loadMode reads the keymap of mode from ruleDir. A rule without a keymap
// file for the mode yields an empty keymap.
func (l *keymapLoader) loadMode(ctx context.Context, ruleDir string, mode entity.InputMode) (*orderedKeymap, error) {
	km := newOrderedKeymap()
	if err := l.load(ctx, ruleDir, mode.FileName(), km, false); err != nil {
		return nil, err
	}
	return km, nil
}

func (l *keymapLoader) load(ctx context.Context, ruleDir, name string, into *orderedKeymap, required bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := filepath.Join(ruleDir, keymapDir, name+".json")
	if l.visiting[path] {
		return fmt.Errorf("%w: include cycle at %s", entity.ErrParse, path)
	}
	l.visiting[path] = true
	defer delete(l.visiting, path)

	file, err := l.read(ctx, path)
	if errors.Is(err, fs.ErrNotExist) && !required {
		return nil
	}
	if err != nil {
		return err
	}

	for _, include := range file.includes {
		incDir, incName, err := l.resolveInclude(ctx, ruleDir, include)
		if err != nil {
			return fmt.Errorf("keymap %s: %w", path, err)
		}
		if err := l.load(ctx, incDir, incName, into, true); err != nil {
			return err
		}
	}
	for _, def := range file.defs {
		into.set(def.event, def.command)
	}
	return nil
}

// read returns the parsed keymap file at path, from the catalog cache when
// the file is unchanged since it was last parsed.
func (l *keymapLoader) read(ctx context.Context, path string) (*keymapFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("read keymap %s: %w", path, err)
	}
	stamp := cache.StampOf(info)

	if l.catalog != nil {
		if file, ok := l.catalog.files.Get(path, stamp); ok {
			return file, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keymap %s: %w", path, err)
	}
	file, err := parseKeymapFile(ctx, path, data)
	if err != nil {
		return nil, err
	}
	if l.catalog != nil {
		l.catalog.files.Put(path, stamp, file)
	}
	return file, nil
}

// keymapDef is one "define.keymap" entry. An empty command clears the key.
type keymapDef struct {
	event   entity.KeyEvent
	command string
}

// keymapFile is a parsed keymap file. It is shared through the cache and
// never modified after parsing.
type keymapFile struct {
	includes []string
	defs     []keymapDef
}

func parseKeymapFile(ctx context.Context, path string, data []byte) (*keymapFile, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: %s is not valid JSON", entity.ErrParse, path)
	}

	file := &keymapFile{}
	for _, include := range gjson.GetBytes(data, "include").Array() {
		file.includes = append(file.includes, include.String())
	}

	log := logging.FromContext(ctx)
	gjson.GetBytes(data, "define.keymap").ForEach(func(key, value gjson.Result) bool {
		event, err := ParseKeyEvent(key.String())
		if err != nil {
			log.Debug().Err(err).Str("file", path).Msg("kkc: keymap entry skipped")
			return true
		}
		def := keymapDef{event: event}
		if value.Type != gjson.Null {
			def.command = value.String()
		}
		file.defs = append(file.defs, def)
		return true
	})
	return file, nil
}

// resolveInclude maps "name" to a keymap of the same rule and "rule/name"
// to a keymap of another rule on the search path.
func (l *keymapLoader) resolveInclude(ctx context.Context, ruleDir, include string) (string, string, error) {
	ruleName, keymapName, found := strings.Cut(include, "/")
	if !found {
		return ruleDir, include, nil
	}
	if l.catalog == nil {
		return "", "", fmt.Errorf("%w: %s", entity.ErrRuleNotFound, ruleName)
	}
	meta, err := l.catalog.ResolveRule(ctx, ruleName)
	if err != nil {
		return "", "", err
	}
	return meta.BaseDir, keymapName, nil
}
