package config

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetString(t *testing.T) {
	cfg := map[string]string{"PORT": "9000"}
	assert.Equal(t, "9000", GetString(cfg, "PORT", "8080"))
	assert.Equal(t, "8080", GetString(cfg, "MISSING", "8080"))
	assert.Equal(t, "8080", GetString(nil, "PORT", "8080"))
}

func TestGetInt(t *testing.T) {
	cfg := map[string]string{"A": "12", "B": "twelve"}
	assert.Equal(t, 12, GetInt(cfg, "A", 1))
	assert.Equal(t, 1, GetInt(cfg, "B", 1))
	assert.Equal(t, 1, GetInt(cfg, "C", 1))
}

func TestGetBool(t *testing.T) {
	cfg := map[string]string{"ON": "true", "OFF": "0", "BAD": "yes please"}
	assert.True(t, GetBool(cfg, "ON", false))
	assert.False(t, GetBool(cfg, "OFF", true))
	assert.True(t, GetBool(cfg, "BAD", true))
	assert.False(t, GetBool(nil, "ON", false))
}

func TestLoadFrom(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadFrom(map[string]string{})
		require.NoError(t, err)
		assert.Equal(t, "postgres", cfg.DataSource)
		assert.Equal(t, 2*time.Second, cfg.DraftDebounce)
		assert.Equal(t, "submissions", cfg.Storage.UploadBucket)
		assert.Equal(t, int64(50<<20), cfg.MaxUploadBytes)
		assert.Equal(t, []string{"http://localhost:5173"}, cfg.AcceptedOrigins)
	})

	t.Run("overrides", func(t *testing.T) {
		cfg, err := LoadFrom(map[string]string{
			"DATA_SOURCE":      "fixtures",
			"DRAFT_DEBOUNCE":   "500ms",
			"ACCEPTED_ORIGINS": "https://a.se,https://b.se",
			"NOTIFY_EMAILS":    "[email protected]",
			"SUPABASE_DB_HOST": "db.example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, "fixtures", cfg.DataSource)
		assert.Equal(t, 500*time.Millisecond, cfg.DraftDebounce)
		assert.Equal(t, []string{"https://a.se", "https://b.se"}, cfg.AcceptedOrigins)
		assert.Equal(t, []string{"[email protected]"}, cfg.Notify.EmailRecipients)
		assert.Contains(t, cfg.Database.DSN(cfg.Database.Host), "host=db.example.com")
	})

	t.Run("invalid duration", func(t *testing.T) {
		_, err := LoadFrom(map[string]string{"DRAFT_DEBOUNCE": "soon"})
		assert.Error(t, err)
	})
}

type fakeSSM struct {
	pages []*ssm.GetParametersByPathOutput
	calls int
}

func (f *fakeSSM) GetParametersByPath(_ context.Context, _ *ssm.GetParametersByPathInput, _ ...func(*ssm.Options)) (*ssm.GetParametersByPathOutput, error) {
	page := f.pages[f.calls]
	f.calls++
	return page, nil
}

func TestFetchSSMParameters(t *testing.T) {
	client := &fakeSSM{pages: []*ssm.GetParametersByPathOutput{
		{
			Parameters: []types.Parameter{{Name: aws.String("/festival/prod/ADMIN_JWT_SECRET"), Value: aws.String("s3cret")}},
			NextToken:  aws.String("next"),
		},
		{
			Parameters: []types.Parameter{{Name: aws.String("/festival/prod/S3_ACCESS_KEY_ID"), Value: aws.String("key")}},
		},
	}}

	params, err := fetchSSMParameters(context.Background(), client, "/festival/prod")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"ADMIN_JWT_SECRET": "s3cret", "S3_ACCESS_KEY_ID": "key"}, params)
	assert.Equal(t, 2, client.calls)
}

func TestMerge(t *testing.T) {
	base := map[string]string{"A": "env"}
	merged := Merge(base, map[string]string{"A": "ssm", "B": "ssm"})
	assert.Equal(t, "env", merged["A"])
	assert.Equal(t, "ssm", merged["B"])
}
