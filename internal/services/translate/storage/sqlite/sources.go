package sqlite

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/louisbranch/translating.space/internal/services/translate/storage"
)

var sourceColumns = []string{"id", "component_id", "checksum", "priority", "check_flags", "screenshot"}

// GetSource loads source-string metadata by id.
func (s *Store) GetSource(ctx context.Context, id int64) (storage.Source, error) {
	if err := s.ready(); err != nil {
		return storage.Source{}, err
	}
	row, err := s.queryRow(ctx, s.sq.Select(sourceColumns...).From("sources").Where(sq.Eq{"id": id}).Limit(1))
	if err != nil {
		return storage.Source{}, err
	}
	source, err := scanSource(row)
	if err != nil {
		return storage.Source{}, notFound(fmt.Errorf("get source: %w", err))
	}
	return source, nil
}

// ListSourcesByChecksums returns component source metadata keyed by checksum.
func (s *Store) ListSourcesByChecksums(ctx context.Context, componentID int64, checksums []string) (map[string]storage.Source, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	sources := make(map[string]storage.Source, len(checksums))
	if len(checksums) == 0 {
		return sources, nil
	}
	rows, err := s.query(ctx, s.sq.Select(sourceColumns...).
		From("sources").
		Where(sq.Eq{"component_id": componentID, "checksum": checksums}))
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		source, err := scanSource(rows)
		if err != nil {
			return nil, fmt.Errorf("scan source: %w", err)
		}
		sources[source.Checksum] = source
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sources: %w", err)
	}
	return sources, nil
}

// UpdateSourcePriority writes the priority column of one source.
func (s *Store) UpdateSourcePriority(ctx context.Context, id int64, priority int) error {
	return s.updateSourceField(ctx, id, "priority", priority)
}

// UpdateSourceCheckFlags writes the check_flags column of one source.
func (s *Store) UpdateSourceCheckFlags(ctx context.Context, id int64, flags string) error {
	return s.updateSourceField(ctx, id, "check_flags", flags)
}

// UpdateSourceScreenshot writes the screenshot column of one source.
func (s *Store) UpdateSourceScreenshot(ctx context.Context, id int64, screenshot string) error {
	return s.updateSourceField(ctx, id, "screenshot", screenshot)
}

func (s *Store) updateSourceField(ctx context.Context, id int64, column string, value any) error {
	if err := s.ready(); err != nil {
		return err
	}
	if err := s.execOne(ctx, s.sq.Update("sources").Set(column, value).Where(sq.Eq{"id": id})); err != nil {
		return fmt.Errorf("update source %s: %w", column, err)
	}
	return nil
}

func scanSource(row rowScanner) (storage.Source, error) {
	var source storage.Source
	if err := row.Scan(
		&source.ID,
		&source.ComponentID,
		&source.Checksum,
		&source.Priority,
		&source.CheckFlags,
		&source.Screenshot,
	); err != nil {
		return storage.Source{}, err
	}
	return source, nil
}
