package gitlab

import (
	"context"
	"errors"
	"net/http"
	"testing"

	domainErrors "github.com/Tomas-vilte/MateReview/internal/domain/errors"
	"github.com/Tomas-vilte/MateReview/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	gitlab "gitlab.com/gitlab-org/api/client-go"
)

func newTestService(mr *MockMergeRequestsService, repo *MockRepositoriesService, commits *MockCommitsService) *GitLabService {
	trans, _ := i18n.NewTranslations("en", "")
	return NewGitLabServiceWithServices(mr, repo, commits, "group/project", trans)
}

func okResponse() *gitlab.Response {
	return &gitlab.Response{Response: &http.Response{StatusCode: http.StatusOK}}
}

func TestGitLabService_GetMergeRequest(t *testing.T) {
	t.Run("should map merge request metadata", func(t *testing.T) {
		mockMR := &MockMergeRequestsService{}
		service := newTestService(mockMR, &MockRepositoriesService{}, &MockCommitsService{})

		mr := &gitlab.MergeRequest{}
		mr.IID = 42
		mr.Title = "Add login"
		mr.Description = "Implements the login flow"
		mr.SourceBranch = "feature/login"
		mr.TargetBranch = "main"

		mockMR.On("GetMergeRequest", "group/project", 42, mock.Anything).
			Return(mr, okResponse(), nil)

		meta, err := service.GetMergeRequest(context.Background(), 42)

		require.NoError(t, err)
		assert.Equal(t, 42, meta.IID)
		assert.Equal(t, "Add login", meta.Title)
		assert.Equal(t, "Implements the login flow", meta.Description)
		assert.Equal(t, "feature/login", meta.SourceBranch)
		assert.Equal(t, "main", meta.TargetBranch)
		mockMR.AssertExpectations(t)
	})

	t.Run("should surface a typed host error with the status code", func(t *testing.T) {
		mockMR := &MockMergeRequestsService{}
		service := newTestService(mockMR, &MockRepositoriesService{}, &MockCommitsService{})

		resp := &gitlab.Response{Response: &http.Response{StatusCode: http.StatusNotFound}}
		mockMR.On("GetMergeRequest", "group/project", 999, mock.Anything).
			Return(nil, resp, errors.New("404 Not Found"))

		_, err := service.GetMergeRequest(context.Background(), 999)

		require.Error(t, err)
		var hostErr *domainErrors.HostError
		require.ErrorAs(t, err, &hostErr)
		assert.Equal(t, http.StatusNotFound, hostErr.StatusCode)
	})
}

func TestGitLabService_ListCommits(t *testing.T) {
	t.Run("should paginate to completion preserving order", func(t *testing.T) {
		mockMR := &MockMergeRequestsService{}
		service := newTestService(mockMR, &MockRepositoriesService{}, &MockCommitsService{})

		firstPage := []*gitlab.Commit{
			{ID: "sha-a", Title: "A"},
			{ID: "sha-b", Title: "B"},
		}
		secondPage := []*gitlab.Commit{
			{ID: "sha-c", Title: "C"},
		}

		mockMR.On("GetMergeRequestCommits", "group/project", 42, mock.MatchedBy(func(opt *gitlab.GetMergeRequestCommitsOptions) bool {
			return opt.Page == 1
		})).Return(firstPage, &gitlab.Response{Response: &http.Response{StatusCode: http.StatusOK}, NextPage: 2}, nil)

		mockMR.On("GetMergeRequestCommits", "group/project", 42, mock.MatchedBy(func(opt *gitlab.GetMergeRequestCommitsOptions) bool {
			return opt.Page == 2
		})).Return(secondPage, okResponse(), nil)

		commits, err := service.ListCommits(context.Background(), 42)

		require.NoError(t, err)
		require.Len(t, commits, 3)
		assert.Equal(t, "A", commits[0].Title)
		assert.Equal(t, "B", commits[1].Title)
		assert.Equal(t, "C", commits[2].Title)
		assert.Equal(t, "sha-c", commits[2].SHA)
		mockMR.AssertNumberOfCalls(t, "GetMergeRequestCommits", 2)
	})

	t.Run("should return an empty list when the MR has no commits", func(t *testing.T) {
		mockMR := &MockMergeRequestsService{}
		service := newTestService(mockMR, &MockRepositoriesService{}, &MockCommitsService{})

		mockMR.On("GetMergeRequestCommits", "group/project", 7, mock.Anything).
			Return([]*gitlab.Commit{}, okResponse(), nil)

		commits, err := service.ListCommits(context.Background(), 7)

		require.NoError(t, err)
		assert.Empty(t, commits)
	})
}

func TestGitLabService_ListChanges(t *testing.T) {
	t.Run("should map diffs and the deleted flag in host order", func(t *testing.T) {
		mockMR := &MockMergeRequestsService{}
		service := newTestService(mockMR, &MockRepositoriesService{}, &MockCommitsService{})

		diffs := []*gitlab.MergeRequestDiff{
			{NewPath: "src/a.py", Diff: "+1 line", DeletedFile: false},
			{NewPath: "src/b.py", Diff: "", DeletedFile: true},
		}
		mockMR.On("ListMergeRequestDiffs", "group/project", 42, mock.Anything).
			Return(diffs, okResponse(), nil)

		files, err := service.ListChanges(context.Background(), 42)

		require.NoError(t, err)
		require.Len(t, files, 2)
		assert.Equal(t, "src/a.py", files[0].Path)
		assert.Equal(t, "+1 line", files[0].Diff)
		assert.False(t, files[0].Deleted)
		assert.Equal(t, "", files[1].Diff)
		assert.True(t, files[1].Deleted)
	})
}

func TestGitLabService_ListTree(t *testing.T) {
	t.Run("should request the directory on the given ref", func(t *testing.T) {
		mockRepo := &MockRepositoriesService{}
		service := newTestService(&MockMergeRequestsService{}, mockRepo, &MockCommitsService{})

		nodes := []*gitlab.TreeNode{
			{ID: "blob-1", Name: "a.py"},
			{ID: "blob-2", Name: "b.py"},
		}
		mockRepo.On("ListTree", "group/project", mock.MatchedBy(func(opt *gitlab.ListTreeOptions) bool {
			return opt.Path != nil && *opt.Path == "src" && opt.Ref != nil && *opt.Ref == "feature/login"
		})).Return(nodes, okResponse(), nil)

		entries, err := service.ListTree(context.Background(), "src", "feature/login")

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "blob-1", entries[0].ID)
		assert.Equal(t, "a.py", entries[0].Name)
		mockRepo.AssertExpectations(t)
	})
}

func TestGitLabService_GetRawBlob(t *testing.T) {
	t.Run("should return the raw bytes", func(t *testing.T) {
		mockRepo := &MockRepositoriesService{}
		service := newTestService(&MockMergeRequestsService{}, mockRepo, &MockCommitsService{})

		mockRepo.On("RawBlobContent", "group/project", "blob-1").
			Return([]byte("print('hola')\n"), okResponse(), nil)

		data, err := service.GetRawBlob(context.Background(), "blob-1")

		require.NoError(t, err)
		assert.Equal(t, "print('hola')\n", string(data))
	})
}

func TestGitLabService_ListCommitBranches(t *testing.T) {
	t.Run("should return branch names in host order", func(t *testing.T) {
		mockCommits := &MockCommitsService{}
		service := newTestService(&MockMergeRequestsService{}, &MockRepositoriesService{}, mockCommits)

		refs := []*gitlab.CommitRef{
			{Type: "branch", Name: "feature/login"},
			{Type: "branch", Name: "main"},
		}
		mockCommits.On("GetCommitRefs", "group/project", "sha-a", mock.MatchedBy(func(opt *gitlab.GetCommitRefsOptions) bool {
			return opt.Type != nil && *opt.Type == "branch"
		})).Return(refs, okResponse(), nil)

		branches, err := service.ListCommitBranches(context.Background(), "sha-a")

		require.NoError(t, err)
		assert.Equal(t, []string{"feature/login", "main"}, branches)
	})
}
