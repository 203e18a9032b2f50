package github

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/statscard/statscard/pkg/integrations"
)

// ErrUserNotFound is returned when the requested login does not exist.
var ErrUserNotFound = errors.New("user not found")

// userInfoQuery collects every total the badge needs in one round trip,
// plus the first page of repositories ordered by stargazers. Follow-up
// pages reuse the same query with a cursor.
const userInfoQuery = `
query userInfo($login: String!, $after: String) {
  user(login: $login) {
    name
    login
    followers { totalCount }
    contributionsCollection {
      totalCommitContributions
      totalPullRequestReviewContributions
    }
    repositoriesContributedTo(first: 1, contributionTypes: [COMMIT, ISSUE, PULL_REQUEST, REPOSITORY]) { totalCount }
    pullRequests(first: 1) { totalCount }
    mergedPullRequests: pullRequests(states: MERGED) { totalCount }
    openIssues: issues(states: OPEN) { totalCount }
    closedIssues: issues(states: CLOSED) { totalCount }
    repositoryDiscussions { totalCount }
    repositoryDiscussionComments(onlyAnswers: true) { totalCount }
    repositories(first: 100, ownerAffiliations: OWNER, orderBy: {direction: DESC, field: STARGAZERS}, after: $after) {
      totalCount
      nodes { stargazers { totalCount } }
      pageInfo { hasNextPage endCursor }
    }
  }
}`

// Client provides access to the GitHub API for user statistics.
// It handles HTTP requests with caching, automatic retries, and authentication.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a GitHub API client. The GraphQL API rejects
// unauthenticated requests, so a personal access token is required.
func NewClient(token string, cacheTTL time.Duration) (*Client, error) {
	if token == "" {
		return nil, errors.New("github: a personal access token is required")
	}
	cache, err := integrations.NewCache(cacheTTL)
	if err != nil {
		return nil, err
	}

	headers := map[string]string{
		"Accept":        "application/vnd.github.v3+json",
		"Authorization": "Bearer " + token,
	}

	return &Client{
		Client:  integrations.NewClient(cache, headers),
		baseURL: "https://api.github.com",
	}, nil
}

// FetchUserStats retrieves a user's aggregated contribution statistics.
// If refresh is true, cached data is bypassed.
func (c *Client) FetchUserStats(ctx context.Context, username string, opts FetchOptions, refresh bool) (*UserStats, error) {
	if err := ValidateUsername(username); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("github:stats:%s:all=%t", strings.ToLower(username), opts.AllCommits)

	var stats UserStats
	err := c.Cached(ctx, key, refresh, &stats, func() error {
		return c.fetchStats(ctx, username, opts, &stats)
	})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) fetchStats(ctx context.Context, username string, opts FetchOptions, stats *UserStats) error {
	user, err := c.fetchUserInfo(ctx, username)
	if err != nil {
		return err
	}

	totalPRs := user.PullRequests.TotalCount
	merged := user.MergedPullRequests.TotalCount
	mergedPct := 0.0
	if totalPRs > 0 {
		mergedPct = float64(merged) / float64(totalPRs) * 100
	}

	*stats = UserStats{
		Login:               user.Login,
		Name:                user.Name,
		TotalStars:          sumStars(user),
		TotalCommits:        user.ContributionsCollection.TotalCommitContributions,
		TotalPRs:            totalPRs,
		TotalPRsMerged:      merged,
		MergedPRsPercentage: mergedPct,
		TotalReviews:        user.ContributionsCollection.TotalPullRequestReviewContributions,
		TotalIssues:         user.OpenIssues.TotalCount + user.ClosedIssues.TotalCount,
		DiscussionsStarted:  user.RepositoryDiscussions.TotalCount,
		DiscussionsAnswered: user.RepositoryDiscussionComments.TotalCount,
		ContributedTo:       user.RepositoriesContributedTo.TotalCount,
		Followers:           user.Followers.TotalCount,
	}
	if stats.Name == "" {
		stats.Name = user.Login
	}

	if opts.AllCommits {
		total, err := c.fetchLifetimeCommits(ctx, username)
		if err != nil {
			return err
		}
		stats.TotalCommits = total
	}
	return nil
}

// fetchUserInfo runs the GraphQL query, following repository pages so the
// star total covers every owned repository, not just the first hundred.
func (c *Client) fetchUserInfo(ctx context.Context, username string) (*userNode, error) {
	var user *userNode
	after := ""

	for {
		vars := map[string]any{"login": username}
		if after != "" {
			vars["after"] = after
		}

		var resp graphQLResponse
		err := c.Post(ctx, c.baseURL+"/graphql", graphQLRequest{Query: userInfoQuery, Variables: vars}, &resp)
		if err != nil {
			return nil, err
		}
		if err := checkGraphQLErrors(resp.Errors, username); err != nil {
			return nil, err
		}
		if resp.Data.User == nil {
			return nil, fmt.Errorf("%w: %s", ErrUserNotFound, username)
		}

		page := resp.Data.User
		if user == nil {
			user = page
		} else {
			user.Repositories.Nodes = append(user.Repositories.Nodes, page.Repositories.Nodes...)
			user.Repositories.PageInfo = page.Repositories.PageInfo
		}

		if !page.Repositories.PageInfo.HasNextPage {
			return user, nil
		}
		after = page.Repositories.PageInfo.EndCursor
	}
}

// fetchLifetimeCommits counts commits across the account's lifetime via
// the REST search API, which GraphQL has no equivalent for.
func (c *Client) fetchLifetimeCommits(ctx context.Context, username string) (int, error) {
	var resp commitSearchResponse
	url := fmt.Sprintf("%s/search/commits?q=author:%s", c.baseURL, username)
	headers := map[string]string{"Accept": "application/vnd.github.cloak-preview"}
	if err := c.GetWithHeaders(ctx, url, headers, &resp); err != nil {
		return 0, err
	}
	return resp.TotalCount, nil
}

func checkGraphQLErrors(errs []graphQLError, username string) error {
	if len(errs) == 0 {
		return nil
	}
	for _, e := range errs {
		if e.Type == "NOT_FOUND" {
			return fmt.Errorf("%w: %s", ErrUserNotFound, username)
		}
		if e.Type == "RATE_LIMITED" {
			return fmt.Errorf("%w: %s", integrations.ErrRateLimited, e.Message)
		}
	}
	return fmt.Errorf("github graphql: %s", errs[0].Message)
}

func sumStars(user *userNode) int {
	total := 0
	for _, repo := range user.Repositories.Nodes {
		total += repo.Stargazers.TotalCount
	}
	return total
}
