// Package git implements the git area of the Azure DevOps REST API, which
// manages repositories, refs, commits, pushes and pull requests.
package git

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/iver-wharf/azuredevops-go/internal/parseutil"
	"github.com/iver-wharf/azuredevops-go/pkg/connection"
	"github.com/iver-wharf/azuredevops-go/pkg/webapi"
)

const apiVersion = "7.1"

// Client is used to talk with the git area of the Azure DevOps API. All
// requests are scoped to the project of the connection.
type Client interface {
	GetRepositories(ctx context.Context) ([]Repository, error)
	// GetRepository gets a repository by name or ID.
	GetRepository(ctx context.Context, repoNameOrID string) (Repository, error)
	CreateRepository(ctx context.Context, repo NewRepository) (Repository, error)
	UpdateRepository(ctx context.Context, repoID string, update RepositoryUpdate) (Repository, error)
	// DeleteRepository moves a repository to the recycle bin.
	DeleteRepository(ctx context.Context, repoID string) error
	// GetRefs gets the refs of a repository. The filter is a ref name prefix
	// without the leading "refs/", e.g "heads/" or "tags/v1".
	GetRefs(ctx context.Context, repoNameOrID, filter string) ([]Ref, error)
	// GetBranches gets the branches of a repository, marking the repository's
	// default branch.
	GetBranches(ctx context.Context, repoNameOrID string) ([]Branch, error)
	// GetItemContent gets the raw content of a file. The version is a branch
	// name, a "refs/heads/" ref or a "refs/tags/" ref. An empty version means
	// the default branch.
	GetItemContent(ctx context.Context, repoNameOrID, path, version string) (string, error)
	GetCommits(ctx context.Context, repoNameOrID string, opts *GetCommitsOptions) ([]Commit, error)
	GetCommit(ctx context.Context, repoNameOrID, commitID string) (Commit, error)
	GetPushes(ctx context.Context, repoNameOrID string, opts *GetPushesOptions) ([]Push, error)
	GetPullRequests(ctx context.Context, repoNameOrID string, opts *GetPullRequestsOptions) ([]PullRequest, error)
	GetPullRequest(ctx context.Context, repoNameOrID string, pullRequestID int) (PullRequest, error)
	CreatePullRequest(ctx context.Context, repoNameOrID string, pr NewPullRequest) (PullRequest, error)
	UpdatePullRequest(ctx context.Context, repoNameOrID string, pullRequestID int, update PullRequestUpdate) (PullRequest, error)
	GetPullRequestReviewers(ctx context.Context, repoNameOrID string, pullRequestID int) ([]IdentityRefWithVote, error)
}

type client struct {
	conn *connection.Connection
}

// NewClient creates a new git Client.
func NewClient(conn *connection.Connection) Client {
	return &client{conn: conn}
}

func (c *client) url(queries interface{}, format string, values ...interface{}) (*url.URL, error) {
	return c.conn.ProjectURL(connection.ServiceDefault, apiVersion, queries, format, values...)
}

func (c *client) GetRepositories(ctx context.Context) ([]Repository, error) {
	u, err := c.url(nil, "git/repositories")
	if err != nil {
		return nil, err
	}
	var repos webapi.List[Repository]
	if err := c.conn.GetUnmarshalJSON(ctx, &repos, u); err != nil {
		return nil, fmt.Errorf("get repositories: %w", err)
	}
	return repos.Value, nil
}

func (c *client) GetRepository(ctx context.Context, repoNameOrID string) (Repository, error) {
	u, err := c.url(nil, "git/repositories/%s", repoNameOrID)
	if err != nil {
		return Repository{}, err
	}
	var repo Repository
	if err := c.conn.GetUnmarshalJSON(ctx, &repo, u); err != nil {
		return Repository{}, fmt.Errorf("get repository %q: %w", repoNameOrID, err)
	}
	return repo, nil
}

func (c *client) CreateRepository(ctx context.Context, repo NewRepository) (Repository, error) {
	u, err := c.url(nil, "git/repositories")
	if err != nil {
		return Repository{}, err
	}
	var created Repository
	if err := c.conn.PostJSON(ctx, &created, u, repo); err != nil {
		return Repository{}, fmt.Errorf("create repository %q: %w", repo.Name, err)
	}
	return created, nil
}

func (c *client) UpdateRepository(ctx context.Context, repoID string, update RepositoryUpdate) (Repository, error) {
	u, err := c.url(nil, "git/repositories/%s", repoID)
	if err != nil {
		return Repository{}, err
	}
	var repo Repository
	if err := c.conn.PatchJSON(ctx, &repo, u, update); err != nil {
		return Repository{}, fmt.Errorf("update repository %q: %w", repoID, err)
	}
	return repo, nil
}

func (c *client) DeleteRepository(ctx context.Context, repoID string) error {
	u, err := c.url(nil, "git/repositories/%s", repoID)
	if err != nil {
		return err
	}
	if err := c.conn.Delete(ctx, nil, u); err != nil {
		return fmt.Errorf("delete repository %q: %w", repoID, err)
	}
	return nil
}

func (c *client) GetRefs(ctx context.Context, repoNameOrID, filter string) ([]Ref, error) {
	q := url.Values{}
	if filter != "" {
		q.Set("filter", strings.TrimPrefix(filter, "refs/"))
	}
	u, err := c.url(q, "git/repositories/%s/refs", repoNameOrID)
	if err != nil {
		return nil, err
	}
	var refs webapi.List[Ref]
	if err := c.conn.GetUnmarshalJSON(ctx, &refs, u); err != nil {
		return nil, fmt.Errorf("get refs of repository %q: %w", repoNameOrID, err)
	}
	return refs.Value, nil
}

func (c *client) GetBranches(ctx context.Context, repoNameOrID string) ([]Branch, error) {
	repo, err := c.GetRepository(ctx, repoNameOrID)
	if err != nil {
		return nil, err
	}
	refs, err := c.GetRefs(ctx, repoNameOrID, "heads/")
	if err != nil {
		return nil, err
	}
	branches := make([]Branch, 0, len(refs))
	for _, ref := range refs {
		branches = append(branches, Branch{
			Name:          parseutil.TrimRefPrefix(ref.Name),
			Ref:           ref.Name,
			ObjectID:      ref.ObjectID,
			DefaultBranch: ref.Name == repo.DefaultBranchRef,
		})
	}
	return branches, nil
}

func (c *client) GetItemContent(ctx context.Context, repoNameOrID, path, version string) (string, error) {
	q := url.Values{
		"scopePath":  {path},
		"download":   {"false"},
		"$format":    {"octetStream"},
		"resolveLfs": {"true"},
	}
	if version != "" {
		versionType := "branch"
		if parseutil.IsTagRef(version) {
			versionType = "tag"
		}
		q.Set("versionDescriptor.version", parseutil.TrimRefPrefix(version))
		q.Set("versionDescriptor.versionType", versionType)
	}
	u, err := c.url(q, "git/repositories/%s/items", repoNameOrID)
	if err != nil {
		return "", err
	}
	content, err := c.conn.GetAsString(ctx, u)
	if err != nil {
		return "", fmt.Errorf("get item %q from repository %q: %w", path, repoNameOrID, err)
	}
	return content, nil
}

func (c *client) GetCommits(ctx context.Context, repoNameOrID string, opts *GetCommitsOptions) ([]Commit, error) {
	u, err := c.url(opts, "git/repositories/%s/commits", repoNameOrID)
	if err != nil {
		return nil, err
	}
	var commits webapi.List[Commit]
	if err := c.conn.GetUnmarshalJSON(ctx, &commits, u); err != nil {
		return nil, fmt.Errorf("get commits of repository %q: %w", repoNameOrID, err)
	}
	return commits.Value, nil
}

func (c *client) GetCommit(ctx context.Context, repoNameOrID, commitID string) (Commit, error) {
	u, err := c.url(nil, "git/repositories/%s/commits/%s", repoNameOrID, commitID)
	if err != nil {
		return Commit{}, err
	}
	var commit Commit
	if err := c.conn.GetUnmarshalJSON(ctx, &commit, u); err != nil {
		return Commit{}, fmt.Errorf("get commit %q of repository %q: %w", commitID, repoNameOrID, err)
	}
	return commit, nil
}

func (c *client) GetPushes(ctx context.Context, repoNameOrID string, opts *GetPushesOptions) ([]Push, error) {
	u, err := c.url(opts, "git/repositories/%s/pushes", repoNameOrID)
	if err != nil {
		return nil, err
	}
	var pushes webapi.List[Push]
	if err := c.conn.GetUnmarshalJSON(ctx, &pushes, u); err != nil {
		return nil, fmt.Errorf("get pushes of repository %q: %w", repoNameOrID, err)
	}
	return pushes.Value, nil
}

func (c *client) GetPullRequests(ctx context.Context, repoNameOrID string, opts *GetPullRequestsOptions) ([]PullRequest, error) {
	u, err := c.url(opts, "git/repositories/%s/pullrequests", repoNameOrID)
	if err != nil {
		return nil, err
	}
	var prs webapi.List[PullRequest]
	if err := c.conn.GetUnmarshalJSON(ctx, &prs, u); err != nil {
		return nil, fmt.Errorf("get pull requests of repository %q: %w", repoNameOrID, err)
	}
	return prs.Value, nil
}

func (c *client) GetPullRequest(ctx context.Context, repoNameOrID string, pullRequestID int) (PullRequest, error) {
	u, err := c.url(nil, "git/repositories/%s/pullrequests/%d", repoNameOrID, pullRequestID)
	if err != nil {
		return PullRequest{}, err
	}
	var pr PullRequest
	if err := c.conn.GetUnmarshalJSON(ctx, &pr, u); err != nil {
		return PullRequest{}, fmt.Errorf("get pull request %d of repository %q: %w", pullRequestID, repoNameOrID, err)
	}
	return pr, nil
}

func (c *client) CreatePullRequest(ctx context.Context, repoNameOrID string, pr NewPullRequest) (PullRequest, error) {
	pr.SourceRefName = parseutil.BranchRef(pr.SourceRefName)
	pr.TargetRefName = parseutil.BranchRef(pr.TargetRefName)
	u, err := c.url(nil, "git/repositories/%s/pullrequests", repoNameOrID)
	if err != nil {
		return PullRequest{}, err
	}
	var created PullRequest
	if err := c.conn.PostJSON(ctx, &created, u, pr); err != nil {
		return PullRequest{}, fmt.Errorf("create pull request in repository %q: %w", repoNameOrID, err)
	}
	return created, nil
}

func (c *client) UpdatePullRequest(ctx context.Context, repoNameOrID string, pullRequestID int, update PullRequestUpdate) (PullRequest, error) {
	u, err := c.url(nil, "git/repositories/%s/pullrequests/%d", repoNameOrID, pullRequestID)
	if err != nil {
		return PullRequest{}, err
	}
	var pr PullRequest
	if err := c.conn.PatchJSON(ctx, &pr, u, update); err != nil {
		return PullRequest{}, fmt.Errorf("update pull request %d of repository %q: %w", pullRequestID, repoNameOrID, err)
	}
	return pr, nil
}

func (c *client) GetPullRequestReviewers(ctx context.Context, repoNameOrID string, pullRequestID int) ([]IdentityRefWithVote, error) {
	u, err := c.url(nil, "git/repositories/%s/pullrequests/%d/reviewers", repoNameOrID, pullRequestID)
	if err != nil {
		return nil, err
	}
	var reviewers webapi.List[IdentityRefWithVote]
	if err := c.conn.GetUnmarshalJSON(ctx, &reviewers, u); err != nil {
		return nil, fmt.Errorf("get reviewers of pull request %d: %w", pullRequestID, err)
	}
	return reviewers.Value, nil
}
