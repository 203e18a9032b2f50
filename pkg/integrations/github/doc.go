// Package github fetches user contribution statistics from the GitHub
// GraphQL API.
//
// # Usage
//
//	client, err := github.NewClient(token, 30*time.Minute)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	stats, err := client.FetchUserStats(ctx, "octocat", github.FetchOptions{}, false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Stars:", stats.TotalStars)
//
// # Authentication
//
// The GraphQL API requires a personal access token; NewClient returns an
// error without one. Reads typically stay well inside the 5000 points/hour
// budget since one user costs a handful of points.
//
// # Counting commits
//
// The GraphQL contributions collection only covers the trailing year. With
// FetchOptions.AllCommits the client issues an extra REST search query for
// the all-time commit count, which is more expensive and can lag behind
// reality by a few hours.
//
// # Caching
//
// Responses are cached to reduce API calls. The cache TTL is set when
// creating the client. Pass refresh=true to bypass the cache.
package github
