package kkc

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/bnema/kkc-shortcuts/internal/application/port"
	"github.com/bnema/kkc-shortcuts/internal/domain/entity"
	"github.com/bnema/kkc-shortcuts/internal/infrastructure/filesystem"
)

const (
	ruleDirPerm  = 0o755
	ruleFilePerm = 0o644
)

var _ port.KeymapStore = (*JSONStore)(nil)

// JSONStore keeps user overrides as a libkkc rule directory, so the engine
// itself picks them up:
//
//	<base>/<prefix>:<parent>/metadata.json
//	<base>/<prefix>:<parent>/keymap/<mode>.json
//
// Each keymap file includes the parent's keymap for the mode and defines the
// overrides, with null for cleared keys.
type JSONStore struct {
	basePath string
	prefix   string
}

// NewJSONStore creates a store rooted at basePath.
func NewJSONStore(basePath, prefix string) *JSONStore {
	if prefix == "" {
		prefix = DefaultUserRulePrefix
	}
	return &JSONStore{basePath: basePath, prefix: prefix}
}

// RuleDir returns the directory of the user rule derived from parent.
func (s *JSONStore) RuleDir(parent string) string {
	return filepath.Join(s.basePath, s.prefix+userRuleSeparator+parent)
}

func (s *JSONStore) keymapPath(parent string, mode entity.InputMode) string {
	return filepath.Join(s.RuleDir(parent), keymapDir, mode.FileName()+".json")
}

// EnsureRule creates the rule directory and its metadata when missing.
func (s *JSONStore) EnsureRule(_ context.Context, rule entity.RuleMetadata) error {
	dir := s.RuleDir(rule.Name)
	if err := os.MkdirAll(filepath.Join(dir, keymapDir), ruleDirPerm); err != nil {
		return fmt.Errorf("create user rule dir: %w", err)
	}

	metaPath := filepath.Join(dir, metadataFile)
	exists, err := filesystem.Exists(metaPath)
	if err != nil {
		return fmt.Errorf("stat user rule metadata: %w", err)
	}
	if exists {
		return nil
	}

	doc := "{}"
	for _, field := range []struct {
		path  string
		value any
	}{
		{"name", rule.DisplayName()},
		{"description", rule.Description},
		{"filter", rule.Filter},
		{"priority", rule.Priority},
	} {
		if doc, err = sjson.Set(doc, field.path, field.value); err != nil {
			return fmt.Errorf("build user rule metadata: %w", err)
		}
	}

	return filesystem.WriteFileAtomic(metaPath, pretty.Pretty([]byte(doc)), ruleFilePerm)
}

// LoadOverrides reads the overrides stored for mode. A missing file has none.
func (s *JSONStore) LoadOverrides(_ context.Context, rule string, mode entity.InputMode) ([]port.KeymapOverride, error) {
	path := s.keymapPath(rule, mode)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: %s is not valid JSON", entity.ErrParse, path)
	}

	var overrides []port.KeymapOverride
	gjson.GetBytes(data, "define.keymap").ForEach(func(key, value gjson.Result) bool {
		o := port.KeymapOverride{Key: key.String()}
		if value.Type != gjson.Null {
			o.Command = value.String()
		}
		overrides = append(overrides, o)
		return true
	})
	return overrides, nil
}

// SaveOverrides rewrites the keymap file of mode.
func (s *JSONStore) SaveOverrides(_ context.Context, rule string, mode entity.InputMode, overrides []port.KeymapOverride) error {
	doc, err := sjson.Set("{}", "include", []string{rule + "/" + mode.FileName()})
	if err != nil {
		return fmt.Errorf("build keymap: %w", err)
	}
	if doc, err = sjson.SetRaw(doc, "define.keymap", "{}"); err != nil {
		return fmt.Errorf("build keymap: %w", err)
	}

	for _, o := range overrides {
		path := "define.keymap." + gjson.Escape(o.Key)
		if o.Command == "" {
			doc, err = sjson.SetRaw(doc, path, "null")
		} else {
			doc, err = sjson.Set(doc, path, o.Command)
		}
		if err != nil {
			return fmt.Errorf("build keymap entry %q: %w", o.Key, err)
		}
	}

	if err := os.MkdirAll(filepath.Join(s.RuleDir(rule), keymapDir), ruleDirPerm); err != nil {
		return fmt.Errorf("create keymap dir: %w", err)
	}
	return filesystem.WriteFileAtomic(s.keymapPath(rule, mode), pretty.Pretty([]byte(doc)), ruleFilePerm)
}
