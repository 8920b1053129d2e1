package bootstrap

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/equintero/jobboard-api/internal/config"
	"github.com/equintero/jobboard-api/internal/jobboard"
)

func TestNewDependencies_MemoryPath(t *testing.T) {
	cfg := &config.Config{DBPath: ":memory:"}

	deps, err := NewDependencies(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer deps.Close()

	assert.Nil(t, deps.DB, "memory store does not hold a database handle")

	// The wired services share one store: a cascade survives the wiring.
	ctx := context.Background()
	created := deps.Offers.Add(ctx, jobboard.CreateJobOffer{
		Title:        "Engineer X",
		Description:  "Build things",
		Location:     "Remote City",
		Salary:       50000,
		ContractType: "Full time",
	})
	require.True(t, created.IsSuccess)

	applied := deps.Applications.Add(ctx, jobboard.CreateJobApplication{
		CandidateName:  "A B",
		CandidateEmail: "a@b.com",
		JobOfferID:     created.Data.ID,
	})
	require.True(t, applied.IsSuccess)

	require.True(t, deps.Offers.Delete(ctx, created.Data.ID).IsSuccess)
	gone := deps.Applications.GetByID(ctx, applied.Data.ID)
	assert.False(t, gone.IsSuccess, "application should be cascaded away")

	assert.NoError(t, deps.Close())
}

func TestNewDependencies_FilePath(t *testing.T) {
	cfg := &config.Config{DBPath: filepath.Join(t.TempDir(), "jobboard.sqlite")}

	deps, err := NewDependencies(context.Background(), cfg, nil)
	require.NoError(t, err)

	assert.NotNil(t, deps.DB)
	assert.NoError(t, deps.Close())
}

func TestIsMemoryPath(t *testing.T) {
	assert.True(t, isMemoryPath(":memory:"))
	assert.True(t, isMemoryPath("file::memory:?cache=shared"))
	assert.False(t, isMemoryPath("jobboard.sqlite"))
	assert.False(t, isMemoryPath("/var/data/board.sqlite"))
}
