package service

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"beacon/internal/local/engine"
	"beacon/internal/local/models"
	id "beacon/pkg/domain"
	dErrors "beacon/pkg/domain-errors"
	pstrings "beacon/pkg/platform/strings"
)

// BuildLocalIssuesForProject synthesizes one issue per gap, computing the
// scorecard if needed. When a publisher is configured the issues are published
// before returning, and a publish failure fails the call.
func (s *Service) BuildLocalIssuesForProject(ctx context.Context, projectID id.ProjectID, target models.IssueTarget) ([]models.Issue, error) {
	sc, err := s.GetProjectScorecard(ctx, projectID)
	if err != nil {
		return nil, err
	}
	issues := engine.BuildIssues(sc, s.GenerateGaps(sc), target)

	if s.publisher == nil || len(issues) == 0 {
		return issues, nil
	}
	if err := s.publisher.Publish(ctx, issues); err != nil {
		s.metrics.AddIssuesPublished("error", len(issues))
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to publish local issues")
	}
	s.metrics.AddIssuesPublished("success", len(issues))
	return issues, nil
}

// BuildLocalIssuesForProjectReadOnly synthesizes issues from the cached
// scorecard only. A cache miss yields an empty list and never loads signals.
func (s *Service) BuildLocalIssuesForProjectReadOnly(ctx context.Context, projectID id.ProjectID, target models.IssueTarget) ([]models.Issue, error) {
	sc, err := s.GetCachedProjectScorecard(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if sc == nil {
		return []models.Issue{}, nil
	}
	return engine.BuildIssues(sc, s.GenerateGaps(sc), target), nil
}

// BuildLocalIssuesForProjects runs the read-only synthesis for many projects with
// bounded concurrency. Blank and repeated ids are skipped. The first failure
// cancels the rest.
func (s *Service) BuildLocalIssuesForProjects(ctx context.Context, projectIDs []id.ProjectID, target models.IssueTarget) (map[id.ProjectID][]models.Issue, error) {
	projectIDs = pstrings.DedupeAndTrim(projectIDs)
	result := make(map[id.ProjectID][]models.Issue, len(projectIDs))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.bulkConcurrency)
	for _, projectID := range projectIDs {
		projectID := projectID
		g.Go(func() error {
			issues, err := s.BuildLocalIssuesForProjectReadOnly(gctx, projectID, target)
			if err != nil {
				return err
			}
			mu.Lock()
			result[projectID] = issues
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}
