package githubapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const profileFixture = `{
	"createdAt": "2021-03-14T09:26:53Z",
	"repositories": {
		"totalCount": 12,
		"nodes": [
			{"stargazerCount": 3},
			{"stargazerCount": 0},
			{"stargazerCount": 41}
		]
	},
	"followers": {"totalCount": 7}
}`

const contributionsFixture = `{
	"contributionsCollection": {
		"totalCommitContributions": 284,
		"totalPullRequestContributions": 19,
		"totalPullRequestReviewContributions": 4,
		"totalIssueContributions": 11,
		"commitContributionsByRepository": [
			{
				"repository": {
					"isFork": false,
					"languages": {
						"edges": [
							{"size": 52310, "node": {"name": "Go", "color": "#00ADD8"}},
							{"size": 1044, "node": {"name": "Makefile", "color": "#427819"}}
						]
					}
				}
			},
			{
				"repository": {
					"isFork": true,
					"languages": {
						"edges": [
							{"size": 900, "node": {"name": "Python", "color": "#3572A5"}}
						]
					}
				}
			}
		]
	}
}`

// graphQLStub serves canned account payloads and records the queries it
// receives. mode selects the envelope key: "viewer" or "user".
func graphQLStub(t *testing.T, mode, payload string, queries *[]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var req graphQLRequest
		if err := json.Unmarshal(body, &req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		*queries = append(*queries, req.Query)

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"data":{"`+mode+`":`+payload+`}}`)
	}))
}

func TestFetchProfile_Viewer(t *testing.T) {
	var queries []string
	srv := graphQLStub(t, "viewer", profileFixture, &queries)
	defer srv.Close()

	c := NewClient(srv.URL, "t", "Sora4431", WithViewer(true))

	p, err := c.FetchProfile(context.Background())
	if err != nil {
		t.Fatalf("FetchProfile() error = %v", err)
	}

	if len(queries) != 1 {
		t.Fatalf("queries = %d, want 1", len(queries))
	}
	if !strings.Contains(queries[0], "viewer") {
		t.Errorf("query should address viewer, got %q", queries[0])
	}
	if strings.Contains(queries[0], "user(login:") {
		t.Errorf("viewer mode must not query user(login:), got %q", queries[0])
	}

	if got, want := p.CreatedAt, time.Date(2021, 3, 14, 9, 26, 53, 0, time.UTC); !got.Equal(want) {
		t.Errorf("CreatedAt = %v, want %v", got, want)
	}
	if p.RepoCount != 12 {
		t.Errorf("RepoCount = %d, want 12", p.RepoCount)
	}
	if p.TotalStars != 44 {
		t.Errorf("TotalStars = %d, want 44", p.TotalStars)
	}
	if p.Followers != 7 {
		t.Errorf("Followers = %d, want 7", p.Followers)
	}
}

func TestFetchProfile_UserLogin(t *testing.T) {
	var queries []string
	srv := graphQLStub(t, "user", profileFixture, &queries)
	defer srv.Close()

	c := NewClient(srv.URL, "t", "Sora4431")

	if _, err := c.FetchProfile(context.Background()); err != nil {
		t.Fatalf("FetchProfile() error = %v", err)
	}

	if !strings.Contains(queries[0], "user(login: $login)") {
		t.Errorf("query should address user(login: $login), got %q", queries[0])
	}
}

func TestFetchProfile_UnknownUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"data":{"user":null}}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "t", "ghost")

	if _, err := c.FetchProfile(context.Background()); err == nil {
		t.Fatal("FetchProfile() expected error for null user")
	}
}

func TestFetchContributions(t *testing.T) {
	var queries []string
	srv := graphQLStub(t, "viewer", contributionsFixture, &queries)
	defer srv.Close()

	c := NewClient(srv.URL, "t", "Sora4431", WithViewer(true))

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC)

	contrib, err := c.FetchContributions(context.Background(), from, to)
	if err != nil {
		t.Fatalf("FetchContributions() error = %v", err)
	}

	if !strings.Contains(queries[0], "contributionsCollection(from: $from, to: $to)") {
		t.Errorf("query should window the collection, got %q", queries[0])
	}

	if contrib.Commits != 284 {
		t.Errorf("Commits = %d, want 284", contrib.Commits)
	}
	if contrib.PullRequests != 19 {
		t.Errorf("PullRequests = %d, want 19", contrib.PullRequests)
	}
	if contrib.Reviews != 4 {
		t.Errorf("Reviews = %d, want 4", contrib.Reviews)
	}
	if contrib.Issues != 11 {
		t.Errorf("Issues = %d, want 11", contrib.Issues)
	}

	if len(contrib.Repositories) != 2 {
		t.Fatalf("Repositories = %d, want 2", len(contrib.Repositories))
	}
	if contrib.Repositories[0].IsFork {
		t.Error("Repositories[0].IsFork = true, want false")
	}
	if !contrib.Repositories[1].IsFork {
		t.Error("Repositories[1].IsFork = false, want true")
	}

	langs := contrib.Repositories[0].Languages
	if len(langs) != 2 {
		t.Fatalf("Languages = %d, want 2", len(langs))
	}
	if langs[0].Name != "Go" || langs[0].Color != "#00ADD8" || langs[0].Size != 52310 {
		t.Errorf("Languages[0] = %+v, want Go/#00ADD8/52310", langs[0])
	}
}

func TestFetchContributions_TimeFormat(t *testing.T) {
	var gotVars map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var req graphQLRequest
		json.Unmarshal(body, &req)
		gotVars = req.Variables

		io.WriteString(w, `{"data":{"viewer":{"contributionsCollection":{}}}}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "t", "Sora4431", WithViewer(true))

	from := time.Date(2023, 6, 1, 12, 30, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	if _, err := c.FetchContributions(context.Background(), from, to); err != nil {
		t.Fatalf("FetchContributions() error = %v", err)
	}

	if got, want := gotVars["from"], "2023-06-01T12:30:00Z"; got != want {
		t.Errorf("from = %v, want %v", got, want)
	}
	if got, want := gotVars["to"], "2024-06-01T12:30:00Z"; got != want {
		t.Errorf("to = %v, want %v", got, want)
	}
}
