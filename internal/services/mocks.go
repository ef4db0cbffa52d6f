package services

import (
	"context"

	"github.com/Tomas-vilte/MateReview/internal/domain/models"
	"github.com/stretchr/testify/mock"
)

type MockGitLabHost struct {
	mock.Mock
}

func (m *MockGitLabHost) GetMergeRequest(ctx context.Context, iid int) (models.MergeRequestMeta, error) {
	args := m.Called(ctx, iid)
	return args.Get(0).(models.MergeRequestMeta), args.Error(1)
}

func (m *MockGitLabHost) ListCommits(ctx context.Context, iid int) ([]models.Commit, error) {
	args := m.Called(ctx, iid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Commit), args.Error(1)
}

func (m *MockGitLabHost) ListChanges(ctx context.Context, iid int) ([]models.ChangedFile, error) {
	args := m.Called(ctx, iid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChangedFile), args.Error(1)
}

func (m *MockGitLabHost) ListTree(ctx context.Context, path, ref string) ([]models.TreeEntry, error) {
	args := m.Called(ctx, path, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TreeEntry), args.Error(1)
}

func (m *MockGitLabHost) GetRawBlob(ctx context.Context, blobID string) ([]byte, error) {
	args := m.Called(ctx, blobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockGitLabHost) ListCommitBranches(ctx context.Context, sha string) ([]string, error) {
	args := m.Called(ctx, sha)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockEvidenceCollector struct {
	mock.Mock
}

func (m *MockEvidenceCollector) CollectSummaryEvidence(ctx context.Context, iid int, progress func(string)) (*models.SummaryEvidence, error) {
	args := m.Called(ctx, iid, progress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SummaryEvidence), args.Error(1)
}

func (m *MockEvidenceCollector) CollectReviewEvidence(ctx context.Context, iid int, progress func(string)) (*models.ReviewEvidence, error) {
	args := m.Called(ctx, iid, progress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReviewEvidence), args.Error(1)
}

type MockReportGenerator struct {
	mock.Mock
}

func (m *MockReportGenerator) GenerateReport(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

type MockReportWriter struct {
	mock.Mock
}

func (m *MockReportWriter) Write(filename string, content string) error {
	args := m.Called(filename, content)
	return args.Error(0)
}
