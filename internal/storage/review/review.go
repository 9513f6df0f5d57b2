// Package review implements storage.ReviewSubmitter against the GitHub
// Contents API: each submission becomes a new text file committed to a
// configured repository, adapted in shape (not content) from the
// original implementation's GitHub-backed review submission.
package review

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/duskward/labyrinth/internal/storage"
)

// Config names the target repository a GitHubSubmitter writes to.
type Config struct {
	RepoOwner string
	RepoName  string
	Branch    string
	Token     string
	// PathPrefix is the subdirectory submissions are written under, e.g.
	// "reviews". Empty means the repository root.
	PathPrefix string
}

// GitHubSubmitter is a storage.ReviewSubmitter backed by the GitHub
// Contents API.
type GitHubSubmitter struct {
	cfg    Config
	client *http.Client
}

// NewGitHubSubmitter returns a GitHubSubmitter, or an error if cfg is
// missing the fields required to authenticate and locate the repository
// (spec §7: review submitter not configured fails explicitly).
func NewGitHubSubmitter(cfg Config) (*GitHubSubmitter, error) {
	if cfg.Token == "" || cfg.RepoOwner == "" || cfg.RepoName == "" {
		return nil, storage.ErrReviewsNotConfigured
	}
	if cfg.Branch == "" {
		cfg.Branch = "main"
	}
	return &GitHubSubmitter{cfg: cfg, client: &http.Client{Timeout: 15 * time.Second}}, nil
}

type contentsRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
	Branch  string `json:"branch,omitempty"`
}

type contentsResponse struct {
	Content struct {
		SHA     string `json:"sha"`
		HTMLURL string `json:"html_url"`
	} `json:"content"`
}

// Submit commits rev as a new text file under the configured repository
// and returns where it landed.
//
// Precondition: rev.Rating is in [1,5] (validated by the engine before
// reaching this layer, per spec §6.4).
func (g *GitHubSubmitter) Submit(ctx context.Context, rev storage.Review) (storage.ReviewResult, error) {
	id := uuid.NewString()[:8]
	ts := time.Now().UTC().Format("20060102T150405Z")
	filename := fmt.Sprintf("%s_%s_%dof5.txt", ts, id, rev.Rating)

	relPath := filename
	if g.cfg.PathPrefix != "" {
		relPath = g.cfg.PathPrefix + "/" + filename
	}

	body := fmt.Sprintf("Rating: %d/5\nTimestamp: %s\nDevice: %s\n", rev.Rating, ts, rev.DeviceID)
	if rev.Text != "" {
		body += "\n" + rev.Text + "\n"
	}

	reqBody := contentsRequest{
		Message: fmt.Sprintf("Add review %s rating %d/5", id, rev.Rating),
		Content: base64.StdEncoding.EncodeToString([]byte(body)),
		Branch:  g.cfg.Branch,
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return storage.ReviewResult{}, fmt.Errorf("marshalling review payload: %w", err)
	}

	url := fmt.Sprintf("https://api.github.com/repos/%s/%s/contents/%s", g.cfg.RepoOwner, g.cfg.RepoName, relPath)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(payload))
	if err != nil {
		return storage.ReviewResult{}, fmt.Errorf("building review request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.cfg.Token)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return storage.ReviewResult{}, fmt.Errorf("submitting review: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return storage.ReviewResult{}, fmt.Errorf("review submission failed: status %d", resp.StatusCode)
	}

	var out contentsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return storage.ReviewResult{}, fmt.Errorf("decoding review response: %w", err)
	}

	return storage.ReviewResult{Path: relPath, URL: out.Content.HTMLURL}, nil
}
