//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateTestProfile inserts a minimal health profile and returns its user id.
func CreateTestProfile(t *testing.T, db DBLike, userID string) string {
	t.Helper()

	basic := fmt.Sprintf(`{"nickname":"user-%s","birth_date":"1990-05","age":35,"gender":"male","height":175,"weight":68}`, userID)
	health := `{"lifestyle_habits":["late nights"],"allergies":["pollen"],"medical_history":[],"adverse_reactions":[],"family_history":[],"surgery_history":[]}`
	other := `{"vaccinations":[]}`

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO health_profiles (user_id, basic_info, health_info, other_info, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())
		ON CONFLICT (user_id) DO NOTHING`,
		userID, basic, health, other)
	require.NoError(t, err)

	return userID
}

// SetTestLocation fills in the profile's weather location.
func SetTestLocation(t *testing.T, db DBLike, userID, province, city string) {
	t.Helper()

	ctx := context.Background()
	tag, err := db.Exec(ctx,
		"UPDATE health_profiles SET location_province = $2, location_city = $3, updated_at = now() WHERE user_id = $1",
		userID, province, city)
	require.NoError(t, err)
	require.EqualValues(t, 1, tag.RowsAffected())
}

// CreateTestPushRecord inserts a push history row directly and returns its id.
func CreateTestPushRecord(t *testing.T, db DBLike, userID, pushType, content string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	ctx := context.Background()
	err := db.QueryRow(ctx,
		"INSERT INTO push_history (user_id, push_type, content) VALUES ($1, $2, $3) RETURNING id",
		userID, pushType, content).Scan(&id)
	require.NoError(t, err)

	return id
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
