package gitlab

import (
	gitlab "gitlab.com/gitlab-org/api/client-go"
)

// Interfaces finitas sobre los servicios del SDK de GitLab que usamos,
// para poder inyectar mocks en los tests.

type MergeRequestsService interface {
	GetMergeRequest(pid interface{}, mergeRequest int, opt *gitlab.GetMergeRequestsOptions, options ...gitlab.RequestOptionFunc) (*gitlab.MergeRequest, *gitlab.Response, error)
	GetMergeRequestCommits(pid interface{}, mergeRequest int, opt *gitlab.GetMergeRequestCommitsOptions, options ...gitlab.RequestOptionFunc) ([]*gitlab.Commit, *gitlab.Response, error)
	ListMergeRequestDiffs(pid interface{}, mergeRequest int, opt *gitlab.ListMergeRequestDiffsOptions, options ...gitlab.RequestOptionFunc) ([]*gitlab.MergeRequestDiff, *gitlab.Response, error)
}

type RepositoriesService interface {
	ListTree(pid interface{}, opt *gitlab.ListTreeOptions, options ...gitlab.RequestOptionFunc) ([]*gitlab.TreeNode, *gitlab.Response, error)
	RawBlobContent(pid interface{}, sha string, options ...gitlab.RequestOptionFunc) ([]byte, *gitlab.Response, error)
}

type CommitsService interface {
	GetCommitRefs(pid interface{}, sha string, opt *gitlab.GetCommitRefsOptions, options ...gitlab.RequestOptionFunc) ([]*gitlab.CommitRef, *gitlab.Response, error)
}
