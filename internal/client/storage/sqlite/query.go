package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"strings"

	"github.com/iudanet/tasksync/internal/client/storage"
)

// maxParams ограничивает число параметров в одном IN (...)
const maxParams = 500

// querier общий интерфейс *sql.DB и *sql.Tx
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// queryIDPairs читает пары (remote_id, id) из результата запроса
func queryIDPairs(ctx context.Context, q querier, query string, args ...any) ([]storage.IDPair, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ids: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var pairs []storage.IDPair
	for rows.Next() {
		var p storage.IDPair
		if err := rows.Scan(&p.RemoteID, &p.LocalID); err != nil {
			return nil, fmt.Errorf("failed to scan ids: %w", err)
		}
		pairs = append(pairs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ids: %w", err)
	}
	return pairs, nil
}

// idsByRemote returns (remote_id, id) pairs of table rows whose remote id
// is listed, ordered by remote id and then local id.
func idsByRemote(ctx context.Context, q querier, table string, remoteIDs []int64) ([]storage.IDPair, error) {
	ids := slices.Clone(remoteIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	var pairs []storage.IDPair
	for chunk := range slices.Chunk(ids, maxParams) {
		args := make([]any, len(chunk))
		for i, id := range chunk {
			args[i] = id
		}
		query := fmt.Sprintf(
			"SELECT remote_id, id FROM %s WHERE remote_id IN (%s) ORDER BY remote_id, id",
			table, placeholders(len(chunk)))

		part, err := queryIDPairs(ctx, q, query, args...)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, part...)
	}
	return pairs, nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

func deleteByID(ctx context.Context, q querier, table string, id int64) error {
	if _, err := q.ExecContext(ctx, "DELETE FROM "+table+" WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	return nil
}
