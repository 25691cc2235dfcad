package githubapi

import (
	"encoding/json"
	"fmt"
	"time"
)

// Profile holds basic account numbers used by the overview card.
type Profile struct {
	CreatedAt  time.Time // Account creation time (zero if not returned)
	RepoCount  int       // Owned, non-fork repositories
	TotalStars int       // Stars across those repositories
	Followers  int       // Follower count
}

// Contributions holds contribution totals for one query window.
type Contributions struct {
	Commits      int // Commit contributions
	PullRequests int // Pull request contributions
	Reviews      int // Pull request review contributions
	Issues       int // Issue contributions
	Repositories []RepoContribution
}

// RepoContribution describes one repository committed to in a window.
type RepoContribution struct {
	IsFork    bool
	Languages []LanguageEdge // Top languages by size, largest first
}

// LanguageEdge is one language slice of a repository.
type LanguageEdge struct {
	Name  string
	Color string // Hex color from GitHub, may be empty
	Size  int64  // Bytes of code
}

// accountEnvelope unwraps the viewer{} / user(login:){} response key.
type accountEnvelope struct {
	Viewer json.RawMessage `json:"viewer"`
	User   json.RawMessage `json:"user"`
}

func (e *accountEnvelope) account() (json.RawMessage, error) {
	if present(e.Viewer) {
		return e.Viewer, nil
	}
	if present(e.User) {
		return e.User, nil
	}
	return nil, fmt.Errorf("response has neither viewer nor user data")
}

func present(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}

func unmarshalAccount(raw json.RawMessage, into any) error {
	if err := json.Unmarshal(raw, into); err != nil {
		return fmt.Errorf("unmarshal account data: %w", err)
	}
	return nil
}

// profileData mirrors the profile query response shape.
type profileData struct {
	CreatedAt    time.Time `json:"createdAt"`
	Repositories struct {
		TotalCount int `json:"totalCount"`
		Nodes      []struct {
			StargazerCount int `json:"stargazerCount"`
		} `json:"nodes"`
	} `json:"repositories"`
	Followers struct {
		TotalCount int `json:"totalCount"`
	} `json:"followers"`
}

// contributionsData mirrors the contributionsCollection response shape.
type contributionsData struct {
	ContributionsCollection struct {
		TotalCommitContributions            int `json:"totalCommitContributions"`
		TotalPullRequestContributions       int `json:"totalPullRequestContributions"`
		TotalPullRequestReviewContributions int `json:"totalPullRequestReviewContributions"`
		TotalIssueContributions             int `json:"totalIssueContributions"`
		CommitContributionsByRepository     []struct {
			Repository struct {
				IsFork    bool `json:"isFork"`
				Languages struct {
					Edges []struct {
						Size int64 `json:"size"`
						Node struct {
							Name  string `json:"name"`
							Color string `json:"color"`
						} `json:"node"`
					} `json:"edges"`
				} `json:"languages"`
			} `json:"repository"`
		} `json:"commitContributionsByRepository"`
	} `json:"contributionsCollection"`
}
