package github

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/statscard/statscard/pkg/httputil"
	"github.com/statscard/statscard/pkg/integrations"
)

func testClient(t *testing.T, serverURL string) *Client {
	t.Helper()
	cache, err := httputil.NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	headers := map[string]string{
		"Accept":        "application/vnd.github.v3+json",
		"Authorization": "Bearer test-token",
	}
	return &Client{
		Client:  integrations.NewClient(cache, headers),
		baseURL: serverURL,
	}
}

func graphQLUser() map[string]any {
	return map[string]any{
		"name":      "The Octocat",
		"login":     "octocat",
		"followers": map[string]int{"totalCount": 300},
		"contributionsCollection": map[string]int{
			"totalCommitContributions":            1000,
			"totalPullRequestReviewContributions": 50,
		},
		"repositoriesContributedTo":    map[string]int{"totalCount": 60},
		"pullRequests":                 map[string]int{"totalCount": 200},
		"mergedPullRequests":           map[string]int{"totalCount": 150},
		"openIssues":                   map[string]int{"totalCount": 30},
		"closedIssues":                 map[string]int{"totalCount": 70},
		"repositoryDiscussions":        map[string]int{"totalCount": 10},
		"repositoryDiscussionComments": map[string]int{"totalCount": 4},
		"repositories": map[string]any{
			"totalCount": 2,
			"nodes": []map[string]any{
				{"stargazers": map[string]int{"totalCount": 400}},
				{"stargazers": map[string]int{"totalCount": 100}},
			},
			"pageInfo": map[string]any{"hasNextPage": false, "endCursor": ""},
		},
	}
}

func TestClient_FetchUserStats(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/graphql" {
			http.NotFound(w, r)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"user": graphQLUser()},
		})
	}))
	defer server.Close()

	stats, err := testClient(t, server.URL).FetchUserStats(context.Background(), "octocat", FetchOptions{}, true)
	if err != nil {
		t.Fatalf("FetchUserStats() failed: %v", err)
	}

	if stats.Name != "The Octocat" {
		t.Errorf("Name = %q", stats.Name)
	}
	if stats.TotalStars != 500 {
		t.Errorf("TotalStars = %d, want 500", stats.TotalStars)
	}
	if stats.TotalCommits != 1000 {
		t.Errorf("TotalCommits = %d, want 1000", stats.TotalCommits)
	}
	if stats.TotalIssues != 100 {
		t.Errorf("TotalIssues = %d, want open+closed = 100", stats.TotalIssues)
	}
	if stats.MergedPRsPercentage != 75 {
		t.Errorf("MergedPRsPercentage = %v, want 75", stats.MergedPRsPercentage)
	}
	if stats.TotalReviews != 50 || stats.Followers != 300 || stats.ContributedTo != 60 {
		t.Errorf("unexpected totals: %+v", stats)
	}
}

func TestClient_FetchUserStatsPaginatesRepos(t *testing.T) {
	page := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := graphQLUser()
		if page == 0 {
			user["repositories"] = map[string]any{
				"totalCount": 150,
				"nodes": []map[string]any{
					{"stargazers": map[string]int{"totalCount": 400}},
				},
				"pageInfo": map[string]any{"hasNextPage": true, "endCursor": "cursor-1"},
			}
		} else {
			var req graphQLRequest
			json.NewDecoder(r.Body).Decode(&req)
			if req.Variables["after"] != "cursor-1" {
				t.Errorf("second page cursor = %v", req.Variables["after"])
			}
			user["repositories"] = map[string]any{
				"totalCount": 150,
				"nodes": []map[string]any{
					{"stargazers": map[string]int{"totalCount": 25}},
				},
				"pageInfo": map[string]any{"hasNextPage": false, "endCursor": ""},
			}
		}
		page++
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"user": user},
		})
	}))
	defer server.Close()

	stats, err := testClient(t, server.URL).FetchUserStats(context.Background(), "octocat", FetchOptions{}, true)
	if err != nil {
		t.Fatalf("FetchUserStats() failed: %v", err)
	}
	if page != 2 {
		t.Errorf("server saw %d pages, want 2", page)
	}
	if stats.TotalStars != 425 {
		t.Errorf("TotalStars = %d, want stars summed across pages", stats.TotalStars)
	}
}

func TestClient_FetchUserStatsAllCommits(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/graphql":
			json.NewEncoder(w).Encode(map[string]any{
				"data": map[string]any{"user": graphQLUser()},
			})
		case "/search/commits":
			if q := r.URL.Query().Get("q"); q != "author:octocat" {
				t.Errorf("search query = %q", q)
			}
			json.NewEncoder(w).Encode(commitSearchResponse{TotalCount: 9001})
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	stats, err := testClient(t, server.URL).FetchUserStats(context.Background(), "octocat", FetchOptions{AllCommits: true}, true)
	if err != nil {
		t.Fatalf("FetchUserStats() failed: %v", err)
	}
	if stats.TotalCommits != 9001 {
		t.Errorf("TotalCommits = %d, want lifetime count", stats.TotalCommits)
	}
}

func TestClient_FetchUserStatsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"data":   map[string]any{"user": nil},
			"errors": []map[string]string{{"type": "NOT_FOUND", "message": "no such user"}},
		})
	}))
	defer server.Close()

	_, err := testClient(t, server.URL).FetchUserStats(context.Background(), "ghost", FetchOptions{}, true)
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("error = %v, want ErrUserNotFound", err)
	}
}

func TestClient_FetchUserStatsInvalidUsername(t *testing.T) {
	c := testClient(t, "http://unused")
	for _, bad := range []string{"", "-leading", "way-too-long-for-a-github-username-aaaaaaaaaaa", "has space"} {
		if _, err := c.FetchUserStats(context.Background(), bad, FetchOptions{}, true); err == nil {
			t.Errorf("FetchUserStats(%q) accepted invalid username", bad)
		}
	}
}

func TestValidateUsername(t *testing.T) {
	valid := []string{"octocat", "a", "user-name", "User123"}
	for _, u := range valid {
		if err := ValidateUsername(u); err != nil {
			t.Errorf("ValidateUsername(%q) = %v, want nil", u, err)
		}
	}
	invalid := []string{"", "-octocat", "user name", "user/name"}
	for _, u := range invalid {
		if err := ValidateUsername(u); err == nil {
			t.Errorf("ValidateUsername(%q) = nil, want error", u)
		}
	}
}

func TestNewClientRequiresToken(t *testing.T) {
	if _, err := NewClient("", time.Hour); err == nil {
		t.Error("NewClient(\"\") = nil error, want token requirement")
	}
}
