package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"beacon/internal/local/models"
	configStore "beacon/internal/local/store/config"
	coverageStore "beacon/internal/local/store/coverage"
	signalStore "beacon/internal/local/store/signal"
	id "beacon/pkg/domain"
	dErrors "beacon/pkg/domain-errors"
	"beacon/pkg/requestcontext"
	"beacon/pkg/testutil"
)

type ServiceSuite struct {
	suite.Suite
	signals  *signalStore.InMemoryStore
	configs  *configStore.InMemoryStore
	coverage *coverageStore.InMemoryStore
	service  *Service
	ctx      context.Context
	now      time.Time
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.signals = signalStore.NewInMemory()
	s.configs = configStore.NewInMemory()
	s.coverage = coverageStore.NewInMemory()
	svc, err := New(s.signals, s.configs, s.coverage)
	s.Require().NoError(err)
	s.service = svc
	s.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.now)
}

func (s *ServiceSuite) addSignal(projectID id.ProjectID, t models.SignalType) {
	_, err := s.service.AddSignal(s.ctx, &models.AddSignalRequest{
		ProjectID:  projectID,
		SignalType: string(t),
		Label:      "signal " + string(t),
	})
	s.Require().NoError(err)
}

func (s *ServiceSuite) declarePhysical(projectID id.ProjectID) {
	_, err := s.service.UpdateProjectLocalConfig(s.ctx, projectID, &models.LocalConfigPatch{
		HasPhysicalLocation: boolPtr(true),
	})
	s.Require().NoError(err)
}

func boolPtr(v bool) *bool { return &v }

func (s *ServiceSuite) TestNew() {
	_, err := New(nil, s.configs, s.coverage)
	s.Error(err)
}

func (s *ServiceSuite) TestDetermineApplicability() {
	s.Run("no config is unknown", func() {
		app, err := s.service.DetermineApplicability(s.ctx, "proj-none")
		s.Require().NoError(err)
		s.Equal(models.ApplicabilityUnknown, app.Status)
		s.Equal([]models.ApplicabilityReason{models.ReasonNoLocalIndicators}, app.Reasons)
	})

	s.Run("declared physical location is applicable", func() {
		s.declarePhysical("proj-phys")
		app, err := s.service.DetermineApplicability(s.ctx, "proj-phys")
		s.Require().NoError(err)
		s.True(app.IsApplicable())
		s.Contains(app.Reasons, models.ReasonMerchantDeclaredPhysicalPresence)
	})

	s.Run("global only config is not applicable", func() {
		_, err := s.service.UpdateProjectLocalConfig(s.ctx, "proj-global", &models.LocalConfigPatch{
			Enabled: boolPtr(false),
		})
		s.Require().NoError(err)
		app, err := s.service.DetermineApplicability(s.ctx, "proj-global")
		s.Require().NoError(err)
		s.Equal(models.ApplicabilityNotApplicable, app.Status)
		s.Equal([]models.ApplicabilityReason{models.ReasonGlobalOnlyConfig}, app.Reasons)
	})

	s.Run("empty project id is rejected", func() {
		_, err := s.service.DetermineApplicability(s.ctx, "")
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func (s *ServiceSuite) TestComputeProjectScorecard() {
	s.Run("single location signal scores 31 weak", func() {
		s.declarePhysical("proj-31")
		s.addSignal("proj-31", models.SignalLocationPresence)

		sc, err := s.service.ComputeProjectScorecard(s.ctx, "proj-31")
		s.Require().NoError(err)
		s.Require().NotNil(sc.Score)
		s.Equal(31, *sc.Score)
		s.Equal(models.CoverageWeak, *sc.Status)
		s.Equal(1, sc.MissingLocalSignalsCount)
		s.True(s.now.Equal(sc.ComputedAt))
	})

	s.Run("not applicable project is not scored", func() {
		_, err := s.service.UpdateProjectLocalConfig(s.ctx, "proj-na", &models.LocalConfigPatch{
			HasPhysicalLocation: boolPtr(false),
		})
		s.Require().NoError(err)
		s.addSignal("proj-na", models.SignalLocationPresence)

		sc, err := s.service.ComputeProjectScorecard(s.ctx, "proj-na")
		s.Require().NoError(err)
		s.Nil(sc.Score)
		s.Nil(sc.Status)
		s.Equal(0, sc.MissingLocalSignalsCount)
		s.Equal(1, sc.SignalCounts[models.SignalLocationPresence])
		s.Empty(s.service.GenerateGaps(sc))
	})

	s.Run("recompute is idempotent", func() {
		s.declarePhysical("proj-idem")
		s.addSignal("proj-idem", models.SignalLocalIntentCoverage)
		s.addSignal("proj-idem", models.SignalLocalIntentCoverage)

		first, err := s.service.ComputeProjectScorecard(s.ctx, "proj-idem")
		s.Require().NoError(err)
		second, err := s.service.ComputeProjectScorecard(s.ctx, "proj-idem")
		s.Require().NoError(err)
		s.Equal(*first.Score, *second.Score)
		s.Equal(*first.Status, *second.Status)
		s.Equal(first.SignalCounts, second.SignalCounts)
	})
}

func (s *ServiceSuite) TestGetProjectScorecard_CacheCorrectness() {
	projectID := id.ProjectID("proj-cache")
	s.declarePhysical(projectID)
	s.addSignal(projectID, models.SignalLocationPresence)

	first, err := s.service.GetProjectScorecard(s.ctx, projectID)
	s.Require().NoError(err)
	s.Equal(31, *first.Score)

	cached, err := s.service.GetCachedProjectScorecard(s.ctx, projectID)
	s.Require().NoError(err)
	s.Require().NotNil(cached)
	s.Equal(31, *cached.Score)

	s.Run("adding a signal is visible on the next read", func() {
		s.addSignal(projectID, models.SignalLocalIntentCoverage)
		sc, err := s.service.GetProjectScorecard(s.ctx, projectID)
		s.Require().NoError(err)
		s.Equal(59, *sc.Score)
		s.Equal(models.CoverageNeedsImprovement, *sc.Status)
		s.Equal(0, sc.MissingLocalSignalsCount)
	})

	s.Run("config update is visible on the next read", func() {
		_, err := s.service.UpdateProjectLocalConfig(s.ctx, projectID, &models.LocalConfigPatch{
			HasPhysicalLocation: boolPtr(false),
		})
		s.Require().NoError(err)
		sc, err := s.service.GetProjectScorecard(s.ctx, projectID)
		s.Require().NoError(err)
		s.Equal(models.ApplicabilityNotApplicable, sc.ApplicabilityStatus)
		s.Nil(sc.Score)
	})
}

func (s *ServiceSuite) TestGetCachedProjectScorecard() {
	s.Run("miss returns nil without computing", func() {
		sc, err := s.service.GetCachedProjectScorecard(s.ctx, "proj-cold")
		s.Require().NoError(err)
		s.Nil(sc)

		_, err = s.coverage.FindLatest(s.ctx, "proj-cold")
		s.Error(err)
	})

	s.Run("not applicable snapshot round-trips without a score", func() {
		_, err := s.service.GetProjectScorecard(s.ctx, "proj-unknown")
		s.Require().NoError(err)

		sc, err := s.service.GetCachedProjectScorecard(s.ctx, "proj-unknown")
		s.Require().NoError(err)
		s.Require().NotNil(sc)
		s.Equal(models.ApplicabilityUnknown, sc.ApplicabilityStatus)
		s.Nil(sc.Score)
		s.Nil(sc.Status)
	})

	s.Run("inconsistent snapshot is treated as a miss", func() {
		s.Require().NoError(s.coverage.Save(s.ctx, &models.CoverageRecord{
			ProjectID:            "proj-bad",
			ApplicabilityStatus:  string(models.ApplicabilityApplicable),
			ApplicabilityReasons: []string{string(models.ReasonGlobalOnlyConfig)},
			Score:                80,
			Status:               string(models.CoverageStrong),
			ComputedAt:           s.now,
		}))

		sc, err := s.service.GetCachedProjectScorecard(s.ctx, "proj-bad")
		s.Require().NoError(err)
		s.Nil(sc)

		recomputed, err := s.service.GetProjectScorecard(s.ctx, "proj-bad")
		s.Require().NoError(err)
		s.Equal(models.ApplicabilityUnknown, recomputed.ApplicabilityStatus)
	})
}

func (s *ServiceSuite) TestInvalidateCoverage() {
	s.declarePhysical("proj-inv")
	_, err := s.service.GetProjectScorecard(s.ctx, "proj-inv")
	s.Require().NoError(err)

	s.Require().NoError(s.service.InvalidateCoverage(s.ctx, "proj-inv"))

	sc, err := s.service.GetCachedProjectScorecard(s.ctx, "proj-inv")
	s.Require().NoError(err)
	s.Nil(sc)
}

func (s *ServiceSuite) TestAddSignal() {
	s.Run("normalizes and stores the signal", func() {
		url := "  https://example.com/boulder  "
		blank := "   "
		signal, err := s.service.AddSignal(s.ctx, &models.AddSignalRequest{
			ProjectID:  " proj-add ",
			SignalType: "location_presence",
			Label:      " Boulder store ",
			URL:        &url,
			Evidence:   &blank,
		})
		s.Require().NoError(err)
		s.Equal(id.ProjectID("proj-add"), signal.ProjectID)
		s.Equal("Boulder store", signal.Label)
		s.Equal("https://example.com/boulder", *signal.URL)
		s.Nil(signal.Evidence)
		s.False(signal.ID.IsNil())
		s.True(s.now.Equal(signal.CreatedAt))

		stored, err := s.signals.ListByProject(s.ctx, "proj-add")
		s.Require().NoError(err)
		s.Len(stored, 1)
	})

	s.Run("rejects unknown signal types", func() {
		_, err := s.service.AddSignal(s.ctx, &models.AddSignalRequest{
			ProjectID:  "proj-add",
			SignalType: "store_hours",
			Label:      "Hours",
		})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("rejects a missing label", func() {
		_, err := s.service.AddSignal(s.ctx, &models.AddSignalRequest{
			ProjectID:  "proj-add",
			SignalType: "location_presence",
		})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("rejects a nil request", func() {
		_, err := s.service.AddSignal(s.ctx, nil)
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
	})
}

func (s *ServiceSuite) TestUpdateProjectLocalConfig() {
	s.Run("creates config from a patch", func() {
		area := "Front Range"
		cfg, err := s.service.UpdateProjectLocalConfig(s.ctx, "proj-cfg", &models.LocalConfigPatch{
			Enabled:                boolPtr(true),
			ServiceAreaDescription: &area,
		})
		s.Require().NoError(err)
		s.True(cfg.Enabled)
		s.False(cfg.HasPhysicalLocation)
		s.Equal("Front Range", *cfg.ServiceAreaDescription)
		s.True(s.now.Equal(cfg.UpdatedAt))
	})

	s.Run("merges onto the existing config", func() {
		cfg, err := s.service.UpdateProjectLocalConfig(s.ctx, "proj-cfg", &models.LocalConfigPatch{
			HasPhysicalLocation: boolPtr(true),
		})
		s.Require().NoError(err)
		s.True(cfg.Enabled)
		s.True(cfg.HasPhysicalLocation)
		s.Require().NotNil(cfg.ServiceAreaDescription)
	})

	s.Run("rejects a nil patch", func() {
		_, err := s.service.UpdateProjectLocalConfig(s.ctx, "proj-cfg", nil)
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
	})
}

func (s *ServiceSuite) TestBuildLocalIssues() {
	projectID := id.ProjectID("proj-issues")
	s.declarePhysical(projectID)
	s.addSignal(projectID, models.SignalLocationPresence)

	s.Run("read-only miss returns an empty list", func() {
		issues, err := s.service.BuildLocalIssuesForProjectReadOnly(s.ctx, projectID, models.IssueTarget{})
		s.Require().NoError(err)
		s.NotNil(issues)
		s.Empty(issues)
	})

	s.Run("one issue per missing signal type", func() {
		issues, err := s.service.BuildLocalIssuesForProject(s.ctx, projectID, models.IssueTarget{
			FocusKey: "city:boulder",
		})
		s.Require().NoError(err)
		s.Require().Len(issues, 3)
		s.Equal(models.GapMissingLocalIntentCoverage, issues[0].LocalGapType)
		s.Equal(models.SeverityCritical, issues[0].Severity)
		s.Equal("local-fix:proj-issues:project:missing_local_intent_coverage:local_intent_coverage:city:boulder:city_section",
			issues[0].FixWorkKey)
		s.Equal(models.SeverityWarning, issues[2].Severity)
	})

	s.Run("read-only hit matches the computed issues", func() {
		issues, err := s.service.BuildLocalIssuesForProjectReadOnly(s.ctx, projectID, models.IssueTarget{
			FocusKey: "city:boulder",
		})
		s.Require().NoError(err)
		s.Len(issues, 3)
	})

	s.Run("bulk listing only reports cached projects", func() {
		result, err := s.service.BuildLocalIssuesForProjects(s.ctx,
			[]id.ProjectID{projectID, "proj-never-computed", " proj-issues ", ""}, models.IssueTarget{})
		s.Require().NoError(err)
		s.Len(result, 2)
		s.Len(result[projectID], 3)
		s.Empty(result["proj-never-computed"])

		sc, err := s.service.GetCachedProjectScorecard(s.ctx, "proj-never-computed")
		s.Require().NoError(err)
		s.Nil(sc)
	})
}

// Mutate-then-reread, phrased the way product describes it.
func TestCoverageCacheInvalidation(t *testing.T) {
	ctx := requestcontext.WithTime(context.Background(), time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	svc, err := New(signalStore.NewInMemory(), configStore.NewInMemory(), coverageStore.NewInMemory())
	require.NoError(t, err)
	projectID := id.ProjectID("proj-123")

	testutil.Given(t, "an applicable project with a cached full scorecard", func(t *testing.T) {
		_, err := svc.UpdateProjectLocalConfig(ctx, projectID, &models.LocalConfigPatch{Enabled: boolPtr(true)})
		require.NoError(t, err)
		for _, st := range models.SignalTypes {
			_, err := svc.AddSignal(ctx, &models.AddSignalRequest{ProjectID: projectID, SignalType: string(st), Label: "x"})
			require.NoError(t, err)
		}
		sc, err := svc.GetProjectScorecard(ctx, projectID)
		require.NoError(t, err)
		assert.Equal(t, 100, *sc.Score)
		assert.Empty(t, svc.GenerateGaps(sc))

		testutil.When(t, "the manual override is switched off", func(t *testing.T) {
			_, err := svc.UpdateProjectLocalConfig(ctx, projectID, &models.LocalConfigPatch{Enabled: boolPtr(false)})
			require.NoError(t, err)

			testutil.Then(t, "the next read is no longer scored", func(t *testing.T) {
				sc, err := svc.GetProjectScorecard(ctx, projectID)
				require.NoError(t, err)
				assert.Equal(t, models.ApplicabilityNotApplicable, sc.ApplicabilityStatus)
				assert.Nil(t, sc.Score)
				assert.Equal(t, 4, len(sc.SignalCounts))
			})
		})
	})
}
