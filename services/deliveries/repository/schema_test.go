package repository_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readMigration(t *testing.T, name string) string {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join("..", "..", "..", "migrations", name))
	require.NoError(t, err)
	return strings.Join(strings.Fields(string(raw)), " ")
}

// CreateAssignment sets riders.current_task_id before the task row exists,
// which only commits if the foreign key is checked at the end of the transaction.
func TestDeliveryTasksSchema_RiderClaimReferenceIsDeferred(t *testing.T) {
	up := readMigration(t, "000003_create_delivery_tasks.up.sql")

	assert.Contains(t, up,
		"ADD CONSTRAINT fk_riders_current_task FOREIGN KEY (current_task_id) REFERENCES delivery_tasks (id) DEFERRABLE INITIALLY DEFERRED;")
}

func TestDeliveryTasksSchema_OneRiderPerTask(t *testing.T) {
	up := readMigration(t, "000003_create_delivery_tasks.up.sql")
	down := readMigration(t, "000003_create_delivery_tasks.down.sql")

	assert.Contains(t, up,
		"CREATE UNIQUE INDEX IF NOT EXISTS uq_riders_current_task ON riders (current_task_id) WHERE current_task_id IS NOT NULL;")
	assert.Contains(t, down, "DROP INDEX IF EXISTS uq_riders_current_task;")
	assert.Less(t, strings.Index(down, "uq_riders_current_task"), strings.Index(down, "DROP TABLE IF EXISTS delivery_tasks"))
}
