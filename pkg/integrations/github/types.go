package github

// UserStats is the aggregated contribution profile of one user, already
// reduced from the raw API responses to the totals the badge needs.
type UserStats struct {
	Login string `json:"login"`
	Name  string `json:"name"`

	TotalStars          int     `json:"total_stars"`
	TotalCommits        int     `json:"total_commits"`
	TotalPRs            int     `json:"total_prs"`
	TotalPRsMerged      int     `json:"total_prs_merged"`
	MergedPRsPercentage float64 `json:"merged_prs_percentage"`
	TotalReviews        int     `json:"total_reviews"`
	TotalIssues         int     `json:"total_issues"`
	DiscussionsStarted  int     `json:"discussions_started"`
	DiscussionsAnswered int     `json:"discussions_answered"`
	ContributedTo       int     `json:"contributed_to"`
	Followers           int     `json:"followers"`
}

// FetchOptions tune what FetchUserStats collects.
type FetchOptions struct {
	// AllCommits counts commits across the account's lifetime instead of
	// the trailing year. Requires an extra REST query.
	AllCommits bool
}

// graphQLRequest is the POST body of a GraphQL call.
type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// graphQLResponse is the envelope every GraphQL reply arrives in.
type graphQLResponse struct {
	Data   userInfoData   `json:"data"`
	Errors []graphQLError `json:"errors"`
}

type graphQLError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type userInfoData struct {
	User *userNode `json:"user"`
}

type userNode struct {
	Name                    string     `json:"name"`
	Login                   string     `json:"login"`
	Followers               totalCount `json:"followers"`
	ContributionsCollection struct {
		TotalCommitContributions            int `json:"totalCommitContributions"`
		TotalPullRequestReviewContributions int `json:"totalPullRequestReviewContributions"`
	} `json:"contributionsCollection"`
	RepositoriesContributedTo     totalCount `json:"repositoriesContributedTo"`
	PullRequests                  totalCount `json:"pullRequests"`
	MergedPullRequests            totalCount `json:"mergedPullRequests"`
	OpenIssues                    totalCount `json:"openIssues"`
	ClosedIssues                  totalCount `json:"closedIssues"`
	RepositoryDiscussions         totalCount `json:"repositoryDiscussions"`
	RepositoryDiscussionComments  totalCount `json:"repositoryDiscussionComments"`
	Repositories                  repoPage   `json:"repositories"`
}

type totalCount struct {
	TotalCount int `json:"totalCount"`
}

type repoPage struct {
	TotalCount int `json:"totalCount"`
	Nodes      []struct {
		Stargazers totalCount `json:"stargazers"`
	} `json:"nodes"`
	PageInfo struct {
		HasNextPage bool   `json:"hasNextPage"`
		EndCursor   string `json:"endCursor"`
	} `json:"pageInfo"`
}

// commitSearchResponse is the REST reply used for all-time commit counts.
type commitSearchResponse struct {
	TotalCount int `json:"total_count"`
}
