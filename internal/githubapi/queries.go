package githubapi

import (
	"context"
	"fmt"
	"time"
)

const profileFields = `
createdAt
repositories(ownerAffiliations: OWNER, isFork: false, first: 100) {
    totalCount
    nodes { stargazerCount }
}
followers { totalCount }`

const contributionFields = `
contributionsCollection(from: $from, to: $to) {
    totalCommitContributions
    totalPullRequestContributions
    totalPullRequestReviewContributions
    totalIssueContributions
    commitContributionsByRepository(maxRepositories: 100) {
        repository {
            isFork
            languages(first: 8, orderBy: {field: SIZE, direction: DESC}) {
                edges { size node { name color } }
            }
        }
    }
}`

// timeFormat is the timestamp layout the GraphQL DateTime scalar expects.
const timeFormat = "2006-01-02T15:04:05Z"

// FetchProfile fetches account creation date, repository and follower counts.
func (c *Client) FetchProfile(ctx context.Context) (*Profile, error) {
	var (
		q    string
		vars map[string]any
	)
	if c.viewer {
		q = "query { viewer {" + profileFields + "\n} }"
	} else {
		q = "query($login: String!) { user(login: $login) {" + profileFields + "\n} }"
		vars = map[string]any{"login": c.login}
	}

	var envelope accountEnvelope
	if err := c.query(ctx, q, vars, &envelope); err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}

	raw, err := envelope.account()
	if err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}

	var data profileData
	if err := unmarshalAccount(raw, &data); err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}

	profile := &Profile{
		CreatedAt: data.CreatedAt,
		RepoCount: data.Repositories.TotalCount,
		Followers: data.Followers.TotalCount,
	}
	for _, node := range data.Repositories.Nodes {
		profile.TotalStars += node.StargazerCount
	}

	return profile, nil
}

// FetchContributions fetches contribution totals for [from, to).
// The window must not exceed 365 days; the API rejects longer ranges.
func (c *Client) FetchContributions(ctx context.Context, from, to time.Time) (*Contributions, error) {
	vars := map[string]any{
		"from": from.UTC().Format(timeFormat),
		"to":   to.UTC().Format(timeFormat),
	}

	var q string
	if c.viewer {
		q = "query($from: DateTime!, $to: DateTime!) { viewer {" + contributionFields + "\n} }"
	} else {
		q = "query($login: String!, $from: DateTime!, $to: DateTime!) { user(login: $login) {" + contributionFields + "\n} }"
		vars["login"] = c.login
	}

	var envelope accountEnvelope
	if err := c.query(ctx, q, vars, &envelope); err != nil {
		return nil, fmt.Errorf("fetch contributions %s..%s: %w", vars["from"], vars["to"], err)
	}

	raw, err := envelope.account()
	if err != nil {
		return nil, fmt.Errorf("fetch contributions: %w", err)
	}

	var data contributionsData
	if err := unmarshalAccount(raw, &data); err != nil {
		return nil, fmt.Errorf("fetch contributions: %w", err)
	}

	cc := data.ContributionsCollection
	contribs := &Contributions{
		Commits:      cc.TotalCommitContributions,
		PullRequests: cc.TotalPullRequestContributions,
		Reviews:      cc.TotalPullRequestReviewContributions,
		Issues:       cc.TotalIssueContributions,
	}

	for _, byRepo := range cc.CommitContributionsByRepository {
		repo := RepoContribution{IsFork: byRepo.Repository.IsFork}
		for _, edge := range byRepo.Repository.Languages.Edges {
			repo.Languages = append(repo.Languages, LanguageEdge{
				Name:  edge.Node.Name,
				Color: edge.Node.Color,
				Size:  edge.Size,
			})
		}
		contribs.Repositories = append(contribs.Repositories, repo)
	}

	return contribs, nil
}
