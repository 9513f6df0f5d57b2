package review_test

import (
	"testing"

	"github.com/duskward/labyrinth/internal/storage"
	"github.com/duskward/labyrinth/internal/storage/review"
	"github.com/stretchr/testify/assert"
)

func TestNewGitHubSubmitter_RequiresConfig(t *testing.T) {
	_, err := review.NewGitHubSubmitter(review.Config{})
	assert.ErrorIs(t, err, storage.ErrReviewsNotConfigured)
}

func TestNewGitHubSubmitter_DefaultsBranch(t *testing.T) {
	g, err := review.NewGitHubSubmitter(review.Config{
		RepoOwner: "owner",
		RepoName:  "repo",
		Token:     "token",
	})
	assert.NoError(t, err)
	assert.NotNil(t, g)
}
