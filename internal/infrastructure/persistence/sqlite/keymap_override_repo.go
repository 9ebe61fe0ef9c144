package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bnema/kkc-shortcuts/internal/application/port"
	"github.com/bnema/kkc-shortcuts/internal/domain/entity"
	"github.com/bnema/kkc-shortcuts/internal/logging"
)

const (
	upsertUserRuleSQL = `
INSERT INTO user_rules (name, label, description, filter, priority)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(name) DO UPDATE SET
    label = excluded.label,
    description = excluded.description,
    filter = excluded.filter,
    priority = excluded.priority`

	listOverridesSQL = `
SELECT key, command FROM keymap_overrides
WHERE rule = ? AND mode = ?
ORDER BY position`

	deleteOverridesSQL = `DELETE FROM keymap_overrides WHERE rule = ? AND mode = ?`

	insertOverrideSQL = `
INSERT INTO keymap_overrides (rule, mode, position, key, command)
VALUES (?, ?, ?, ?, ?)`

	touchUserRuleSQL = `UPDATE user_rules SET updated_at = CURRENT_TIMESTAMP WHERE name = ?`
)

type keymapOverrideRepo struct {
	provider port.DatabaseProvider
}

// NewKeymapOverrideRepository creates a SQLite-backed keymap store. The
// database is opened on first use.
func NewKeymapOverrideRepository(provider port.DatabaseProvider) port.KeymapStore {
	return &keymapOverrideRepo{provider: provider}
}

func (r *keymapOverrideRepo) EnsureRule(ctx context.Context, rule entity.RuleMetadata) error {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return err
	}

	logging.FromContext(ctx).Debug().Str("rule", rule.Name).Msg("ensuring user rule row")

	_, err = db.ExecContext(ctx, upsertUserRuleSQL,
		rule.Name, rule.DisplayName(), rule.Description, rule.Filter, rule.Priority)
	if err != nil {
		return fmt.Errorf("upsert user rule %s: %w", rule.Name, err)
	}
	return nil
}

func (r *keymapOverrideRepo) LoadOverrides(
	ctx context.Context,
	rule string,
	mode entity.InputMode,
) ([]port.KeymapOverride, error) {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, listOverridesSQL, rule, mode.FileName())
	if err != nil {
		return nil, fmt.Errorf("list overrides: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var overrides []port.KeymapOverride
	for rows.Next() {
		var (
			key     string
			command sql.NullString
		)
		if err := rows.Scan(&key, &command); err != nil {
			return nil, fmt.Errorf("scan override: %w", err)
		}
		overrides = append(overrides, port.KeymapOverride{Key: key, Command: command.String})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate overrides: %w", err)
	}
	return overrides, nil
}

func (r *keymapOverrideRepo) SaveOverrides(
	ctx context.Context,
	rule string,
	mode entity.InputMode,
	overrides []port.KeymapOverride,
) error {
	log := logging.FromContext(ctx)

	db, err := r.provider.DB(ctx)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, deleteOverridesSQL, rule, mode.FileName()); err != nil {
		return fmt.Errorf("clear overrides: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, insertOverrideSQL)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, o := range overrides {
		command := sql.NullString{String: o.Command, Valid: o.Command != ""}
		if _, err := stmt.ExecContext(ctx, rule, mode.FileName(), i, o.Key, command); err != nil {
			return fmt.Errorf("insert override %q: %w", o.Key, err)
		}
	}

	if _, err := tx.ExecContext(ctx, touchUserRuleSQL, rule); err != nil {
		return fmt.Errorf("touch user rule: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit overrides: %w", err)
	}

	log.Debug().
		Str("rule", rule).
		Str("mode", mode.String()).
		Int("overrides", len(overrides)).
		Msg("keymap overrides saved")
	return nil
}
