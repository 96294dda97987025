package sqlite

import (
	"context"
	"fmt"
	"math"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/louisbranch/translating.space/internal/services/translate/storage"
)

var unitColumns = []string{
	"u.id", "u.translation_id", "u.checksum", "u.position", "u.priority",
	"u.source", "u.target", "u.context", "u.state",
}

// CountUnits counts the units of a translation matching filter.
func (s *Store) CountUnits(ctx context.Context, translationID int64, filter storage.UnitFilter) (int, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}
	where, err := s.unitConditions(ctx, translationID, filter)
	if err != nil {
		return 0, err
	}
	row, err := s.queryRow(ctx, s.sq.Select("COUNT(*)").From("units u").Where(where))
	if err != nil {
		return 0, err
	}
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("count units: %w", err)
	}
	return count, nil
}

// ListUnits returns a window of the units of a translation matching filter in
// natural order. A non-positive limit lists everything from offset.
func (s *Store) ListUnits(ctx context.Context, translationID int64, filter storage.UnitFilter, offset int, limit int) ([]storage.Unit, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	where, err := s.unitConditions(ctx, translationID, filter)
	if err != nil {
		return nil, err
	}
	query := s.sq.Select(unitColumns...).
		From("units u").
		Where(where).
		OrderBy("u.priority", "u.position", "u.id")
	if offset < 0 {
		offset = 0
	}
	if limit > 0 {
		query = query.Limit(uint64(limit))
	} else if offset > 0 {
		// SQLite only accepts OFFSET after LIMIT.
		query = query.Limit(math.MaxInt64)
	}
	if offset > 0 {
		query = query.Offset(uint64(offset))
	}

	rows, err := s.query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()

	units := make([]storage.Unit, 0)
	for rows.Next() {
		unit, err := scanUnit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		units = append(units, unit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate units: %w", err)
	}
	return units, nil
}

// GetUnitsByChecksums returns the units of a translation keyed by checksum.
// Checksums without a unit are absent from the result.
func (s *Store) GetUnitsByChecksums(ctx context.Context, translationID int64, checksums []string) (map[string]storage.Unit, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	units := make(map[string]storage.Unit, len(checksums))
	if len(checksums) == 0 {
		return units, nil
	}
	rows, err := s.query(ctx, s.sq.Select(unitColumns...).
		From("units u").
		Where(sq.Eq{"u.translation_id": translationID, "u.checksum": checksums}))
	if err != nil {
		return nil, fmt.Errorf("get units by checksum: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		unit, err := scanUnit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		units[unit.Checksum] = unit
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate units: %w", err)
	}
	return units, nil
}

// SummarizeSource aggregates unit, source check and source comment counts for
// a translation standing in for its component's source strings.
func (s *Store) SummarizeSource(ctx context.Context, translationID int64) (storage.SourceSummary, error) {
	if err := s.ready(); err != nil {
		return storage.SourceSummary{}, err
	}
	translation, err := s.getTranslation(ctx, translationID)
	if err != nil {
		return storage.SourceSummary{}, err
	}

	var summary storage.SourceSummary
	if summary.Total, err = s.CountUnits(ctx, translationID, storage.UnitFilter{Kind: storage.FilterAll}); err != nil {
		return storage.SourceSummary{}, err
	}
	if summary.SourceChecks, err = s.CountUnits(ctx, translationID, storage.UnitFilter{Kind: storage.FilterSourceChecks}); err != nil {
		return storage.SourceSummary{}, err
	}
	if summary.SourceComments, err = s.CountUnits(ctx, translationID, storage.UnitFilter{Kind: storage.FilterSourceComments}); err != nil {
		return storage.SourceSummary{}, err
	}

	unitChecksums := s.sq.Select("checksum").From("units").Where(sq.Eq{"translation_id": translationID})
	inUnits, err := inSubquery("c.checksum", unitChecksums)
	if err != nil {
		return storage.SourceSummary{}, err
	}
	rows, err := s.query(ctx, s.sq.Select("c.name", "COUNT(DISTINCT c.checksum)").
		From("checks c").
		Where(sq.Eq{"c.component_id": translation.ComponentID, "c.language_id": nil, "c.ignore": 0}).
		Where(inUnits).
		GroupBy("c.name").
		OrderBy("c.name"))
	if err != nil {
		return storage.SourceSummary{}, fmt.Errorf("summarize checks: %w", err)
	}
	defer rows.Close()

	summary.Checks = make([]storage.CheckCount, 0)
	for rows.Next() {
		var count storage.CheckCount
		if err := rows.Scan(&count.Name, &count.Count); err != nil {
			return storage.SourceSummary{}, fmt.Errorf("scan check count: %w", err)
		}
		summary.Checks = append(summary.Checks, count)
	}
	if err := rows.Err(); err != nil {
		return storage.SourceSummary{}, fmt.Errorf("iterate check counts: %w", err)
	}
	return summary, nil
}

// unitConditions translates a UnitFilter into a WHERE clause over "units u".
func (s *Store) unitConditions(ctx context.Context, translationID int64, filter storage.UnitFilter) (sq.And, error) {
	where := sq.And{sq.Eq{"u.translation_id": translationID}}
	if checksum := strings.TrimSpace(filter.Checksum); checksum != "" {
		return append(where, sq.Eq{"u.checksum": checksum}), nil
	}

	switch filter.Kind {
	case storage.FilterFuzzy:
		return append(where, sq.Eq{"u.state": string(storage.UnitFuzzy)}), nil
	case storage.FilterUntranslated:
		return append(where, sq.NotEq{"u.state": string(storage.UnitTranslated)}), nil
	case storage.FilterNotTranslated:
		return append(where, sq.Eq{"u.state": string(storage.UnitUntranslated)}), nil
	case storage.FilterTranslated:
		return append(where, sq.Eq{"u.state": string(storage.UnitTranslated)}), nil
	case storage.FilterSourceComments, storage.FilterTargetComments,
		storage.FilterAllChecks, storage.FilterSourceChecks, storage.FilterNamedCheck:
	default:
		return where, nil
	}

	translation, err := s.getTranslation(ctx, translationID)
	if err != nil {
		return nil, err
	}
	ignore := boolToInt(filter.Ignored)

	var sub sq.SelectBuilder
	switch filter.Kind {
	case storage.FilterSourceComments:
		sub = s.sq.Select("checksum").From("comments").
			Where(sq.Eq{"component_id": translation.ComponentID, "language_id": nil})
	case storage.FilterTargetComments:
		sub = s.sq.Select("checksum").From("comments").
			Where(sq.Eq{"component_id": translation.ComponentID, "language_id": translation.Language.ID})
	case storage.FilterAllChecks:
		sub = s.sq.Select("checksum").From("checks").
			Where(sq.Eq{"component_id": translation.ComponentID, "language_id": translation.Language.ID, "ignore": ignore})
	case storage.FilterSourceChecks:
		sub = s.sq.Select("checksum").From("checks").
			Where(sq.Eq{"component_id": translation.ComponentID, "language_id": nil, "ignore": ignore})
	case storage.FilterNamedCheck:
		var language any = translation.Language.ID
		if filter.SourceCheck {
			language = nil
		}
		sub = s.sq.Select("checksum").From("checks").
			Where(sq.Eq{"component_id": translation.ComponentID, "language_id": language, "ignore": ignore, "name": filter.CheckName})
	}

	condition, err := inSubquery("u.checksum", sub)
	if err != nil {
		return nil, err
	}
	return append(where, condition), nil
}

func inSubquery(column string, sub sq.SelectBuilder) (sq.Sqlizer, error) {
	sqlStr, args, err := sub.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build subquery: %w", err)
	}
	return sq.Expr(column+" IN ("+sqlStr+")", args...), nil
}

func scanUnit(row rowScanner) (storage.Unit, error) {
	var unit storage.Unit
	var state string
	if err := row.Scan(
		&unit.ID,
		&unit.TranslationID,
		&unit.Checksum,
		&unit.Position,
		&unit.Priority,
		&unit.Source,
		&unit.Target,
		&unit.Context,
		&state,
	); err != nil {
		return storage.Unit{}, err
	}
	unit.State = storage.UnitState(state)
	return unit, nil
}
