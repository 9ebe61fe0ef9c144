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
	"golang.org/x/sync/errgroup"

	"github.com/bnema/kkc-shortcuts/internal/domain/entity"
	"github.com/bnema/kkc-shortcuts/internal/infrastructure/cache"
	"github.com/bnema/kkc-shortcuts/internal/logging"
)

const (
	metadataFile = "metadata.json"
	keymapDir    = "keymap"

	// keymapCacheSize bounds the parsed keymap files kept between opens.
	keymapCacheSize = 128

	// userRuleSeparator joins the user rule prefix and the parent rule name.
	userRuleSeparator = ":"
)

// Catalog finds rules under a list of search roots. Roots are ordered most
// specific first; a rule name found in an earlier root hides later ones.
type Catalog struct {
	roots []string
	files *cache.FileCache[*keymapFile]
}

// NewCatalog creates a catalog over roots. Empty entries are ignored.
func NewCatalog(roots []string) *Catalog {
	clean := make([]string, 0, len(roots))
	for _, root := range roots {
		if root = strings.TrimSpace(root); root != "" {
			clean = append(clean, root)
		}
	}
	return &Catalog{roots: clean, files: cache.NewFileCache[*keymapFile](keymapCacheSize)}
}

// Roots returns the search roots.
func (c *Catalog) Roots() []string {
	return slices.Clone(c.roots)
}

// ListRules scans every root concurrently and returns the rules sorted by
// priority, highest first, then by name.
func (c *Catalog) ListRules(ctx context.Context) ([]entity.RuleMetadata, error) {
	log := logging.FromContext(ctx)

	found := make([][]entity.RuleMetadata, len(c.roots))
	g, gctx := errgroup.WithContext(ctx)
	for i, root := range c.roots {
		g.Go(func() error {
			rules, err := scanRoot(gctx, root)
			if err != nil {
				return err
			}
			found[i] = rules
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var rules []entity.RuleMetadata
	for _, perRoot := range found {
		for _, rule := range perRoot {
			if _, dup := seen[rule.Name]; dup {
				continue
			}
			seen[rule.Name] = struct{}{}
			rules = append(rules, rule)
		}
	}

	slices.SortFunc(rules, func(a, b entity.RuleMetadata) int {
		if a.Priority != b.Priority {
			return b.Priority - a.Priority
		}
		return strings.Compare(a.Name, b.Name)
	})

	log.Debug().Int("roots", len(c.roots)).Int("rules", len(rules)).Msg("catalog: rules listed")
	return rules, nil
}

// ResolveRule returns the first rule called name on the search path.
func (c *Catalog) ResolveRule(ctx context.Context, name string) (entity.RuleMetadata, error) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return entity.RuleMetadata{}, fmt.Errorf("%w: %q", entity.ErrRuleNotFound, name)
	}

	for _, root := range c.roots {
		if err := ctx.Err(); err != nil {
			return entity.RuleMetadata{}, err
		}
		meta, err := readMetadata(filepath.Join(root, name), name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			logging.FromContext(ctx).Warn().Err(err).Str("root", root).Str("rule", name).Msg("catalog: unreadable rule skipped")
			continue
		}
		return meta, nil
	}

	return entity.RuleMetadata{}, fmt.Errorf("%w: %s", entity.ErrRuleNotFound, name)
}

// scanRoot lists the rule directories of one root. A missing root is empty.
func scanRoot(ctx context.Context, root string) ([]entity.RuleMetadata, error) {
	dirEntries, err := os.ReadDir(root)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read rule root %s: %w", root, err)
	}

	var rules []entity.RuleMetadata
	for _, de := range dirEntries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !de.IsDir() || strings.Contains(de.Name(), userRuleSeparator) {
			continue
		}
		meta, err := readMetadata(filepath.Join(root, de.Name()), de.Name())
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				logging.FromContext(ctx).Warn().Err(err).Str("dir", de.Name()).Msg("catalog: unreadable rule skipped")
			}
			continue
		}
		rules = append(rules, meta)
	}
	return rules, nil
}

// readMetadata parses dir/metadata.json.
func readMetadata(dir, name string) (entity.RuleMetadata, error) {
	data, err := os.ReadFile(filepath.Join(dir, metadataFile))
	if err != nil {
		return entity.RuleMetadata{}, err
	}
	if !gjson.ValidBytes(data) {
		return entity.RuleMetadata{}, fmt.Errorf("%w: %s is not valid JSON", entity.ErrParse, filepath.Join(dir, metadataFile))
	}

	fields := gjson.GetManyBytes(data, "name", "description", "filter", "priority")
	return entity.RuleMetadata{
		Name:        name,
		Label:       fields[0].String(),
		Description: fields[1].String(),
		Filter:      fields[2].String(),
		Priority:    int(fields[3].Int()),
		BaseDir:     dir,
	}, nil
}
