package database

import (
	"context"
	"testing"

	"github.com/davlindh/zeppelin-cloud-flight-sub002/config"
	"github.com/davlindh/zeppelin-cloud-flight-sub002/drafts"
	"github.com/davlindh/zeppelin-cloud-flight-sub002/errs"
	"github.com/davlindh/zeppelin-cloud-flight-sub002/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// dryRunDB builds statements without a server.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(dialector("host=localhost user=test dbname=test sslmode=disable"), &gorm.Config{
		DryRun:                 true,
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)
	return db
}

func TestDatabase_ListRelationshipsDryRun(t *testing.T) {
	d := New(dryRunDB(t))

	rel, err := d.ListRelationships(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rel.Participants)
	assert.Empty(t, rel.Voting)

	projects, err := d.ListProjects(context.Background())
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestDatabase_ListTable(t *testing.T) {
	d := New(dryRunDB(t))

	for _, table := range AdminTables {
		_, err := d.ListTable(context.Background(), table)
		assert.NoError(t, err, table)
	}

	_, err := d.ListTable(context.Background(), "submission_drafts")
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestDraftRepo_StatementShape(t *testing.T) {
	db := dryRunDB(t)
	repo := NewDraftRepo(db)

	stmt := db.Session(&gorm.Session{DryRun: true}).
		Delete(&models.SubmissionDraft{}, "session_id = ?", "s1").Statement
	assert.Contains(t, stmt.SQL.String(), `DELETE FROM "submission_drafts"`)

	require.NoError(t, repo.Save(context.Background(), "s1", drafts.Draft{FormData: map[string]any{"title": "x"}}))
	require.NoError(t, repo.Delete(context.Background(), "s1"))
}

func TestOpen_RequiresHost(t *testing.T) {
	_, err := Open(config.Database{})
	assert.Error(t, err)
}
