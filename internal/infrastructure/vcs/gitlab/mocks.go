package gitlab

import (
	"github.com/stretchr/testify/mock"
	gitlab "gitlab.com/gitlab-org/api/client-go"
)

type MockMergeRequestsService struct {
	mock.Mock
}

func (m *MockMergeRequestsService) GetMergeRequest(pid interface{}, mergeRequest int, opt *gitlab.GetMergeRequestsOptions, options ...gitlab.RequestOptionFunc) (*gitlab.MergeRequest, *gitlab.Response, error) {
	args := m.Called(pid, mergeRequest, opt)
	if args.Get(0) == nil {
		return nil, args.Get(1).(*gitlab.Response), args.Error(2)
	}
	return args.Get(0).(*gitlab.MergeRequest), args.Get(1).(*gitlab.Response), args.Error(2)
}

func (m *MockMergeRequestsService) GetMergeRequestCommits(pid interface{}, mergeRequest int, opt *gitlab.GetMergeRequestCommitsOptions, options ...gitlab.RequestOptionFunc) ([]*gitlab.Commit, *gitlab.Response, error) {
	args := m.Called(pid, mergeRequest, opt)
	if args.Get(0) == nil {
		return nil, args.Get(1).(*gitlab.Response), args.Error(2)
	}
	return args.Get(0).([]*gitlab.Commit), args.Get(1).(*gitlab.Response), args.Error(2)
}

func (m *MockMergeRequestsService) ListMergeRequestDiffs(pid interface{}, mergeRequest int, opt *gitlab.ListMergeRequestDiffsOptions, options ...gitlab.RequestOptionFunc) ([]*gitlab.MergeRequestDiff, *gitlab.Response, error) {
	args := m.Called(pid, mergeRequest, opt)
	if args.Get(0) == nil {
		return nil, args.Get(1).(*gitlab.Response), args.Error(2)
	}
	return args.Get(0).([]*gitlab.MergeRequestDiff), args.Get(1).(*gitlab.Response), args.Error(2)
}

type MockRepositoriesService struct {
	mock.Mock
}

func (m *MockRepositoriesService) ListTree(pid interface{}, opt *gitlab.ListTreeOptions, options ...gitlab.RequestOptionFunc) ([]*gitlab.TreeNode, *gitlab.Response, error) {
	args := m.Called(pid, opt)
	if args.Get(0) == nil {
		return nil, args.Get(1).(*gitlab.Response), args.Error(2)
	}
	return args.Get(0).([]*gitlab.TreeNode), args.Get(1).(*gitlab.Response), args.Error(2)
}

func (m *MockRepositoriesService) RawBlobContent(pid interface{}, sha string, options ...gitlab.RequestOptionFunc) ([]byte, *gitlab.Response, error) {
	args := m.Called(pid, sha)
	if args.Get(0) == nil {
		return nil, args.Get(1).(*gitlab.Response), args.Error(2)
	}
	return args.Get(0).([]byte), args.Get(1).(*gitlab.Response), args.Error(2)
}

type MockCommitsService struct {
	mock.Mock
}

func (m *MockCommitsService) GetCommitRefs(pid interface{}, sha string, opt *gitlab.GetCommitRefsOptions, options ...gitlab.RequestOptionFunc) ([]*gitlab.CommitRef, *gitlab.Response, error) {
	args := m.Called(pid, sha, opt)
	if args.Get(0) == nil {
		return nil, args.Get(1).(*gitlab.Response), args.Error(2)
	}
	return args.Get(0).([]*gitlab.CommitRef), args.Get(1).(*gitlab.Response), args.Error(2)
}
