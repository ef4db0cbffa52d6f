package gitlab

import (
	"context"

	domainErrors "github.com/Tomas-vilte/MateReview/internal/domain/errors"
	"github.com/Tomas-vilte/MateReview/internal/domain/models"
	"github.com/Tomas-vilte/MateReview/internal/domain/ports"
	"github.com/Tomas-vilte/MateReview/internal/i18n"
	gitlab "gitlab.com/gitlab-org/api/client-go"
)

var _ ports.GitLabHost = (*GitLabService)(nil)

const perPage = 100

// GitLabService implementa ports.GitLabHost sobre el SDK oficial de GitLab.
// Todas las llamadas son secuenciales, sin reintentos propios.
type GitLabService struct {
	mrService      MergeRequestsService
	repoService    RepositoriesService
	commitsService CommitsService
	projectID      string
	trans          *i18n.Translations
}

func NewGitLabService(baseURL, token, projectID string, trans *i18n.Translations) (*GitLabService, error) {
	client, err := gitlab.NewClient(token, gitlab.WithBaseURL(baseURL))
	if err != nil {
		return nil, domainErrors.NewHostError(0, err.Error(), err)
	}

	return &GitLabService{
		mrService:      client.MergeRequests,
		repoService:    client.Repositories,
		commitsService: client.Commits,
		projectID:      projectID,
		trans:          trans,
	}, nil
}

func NewGitLabServiceWithServices(
	mrService MergeRequestsService,
	repoService RepositoriesService,
	commitsService CommitsService,
	projectID string,
	trans *i18n.Translations,
) *GitLabService {
	return &GitLabService{
		mrService:      mrService,
		repoService:    repoService,
		commitsService: commitsService,
		projectID:      projectID,
		trans:          trans,
	}
}

// hostError mapea un error del SDK al error tipado de dominio, con el status
// code de la respuesta cuando está disponible.
func hostError(resp *gitlab.Response, err error) error {
	statusCode := 0
	if resp != nil && resp.Response != nil {
		statusCode = resp.StatusCode
	}
	return domainErrors.NewHostError(statusCode, err.Error(), err)
}

func (s *GitLabService) GetMergeRequest(ctx context.Context, iid int) (models.MergeRequestMeta, error) {
	mr, resp, err := s.mrService.GetMergeRequest(s.projectID, iid, nil, gitlab.WithContext(ctx))
	if err != nil {
		return models.MergeRequestMeta{}, hostError(resp, err)
	}

	return models.MergeRequestMeta{
		IID:          mr.IID,
		Title:        mr.Title,
		Description:  mr.Description,
		SourceBranch: mr.SourceBranch,
		TargetBranch: mr.TargetBranch,
	}, nil
}

func (s *GitLabService) ListCommits(ctx context.Context, iid int) ([]models.Commit, error) {
	opt := &gitlab.GetMergeRequestCommitsOptions{
		Page:    1,
		PerPage: perPage,
	}

	var commits []models.Commit
	for {
		page, resp, err := s.mrService.GetMergeRequestCommits(s.projectID, iid, opt, gitlab.WithContext(ctx))
		if err != nil {
			return nil, hostError(resp, err)
		}
		for _, commit := range page {
			commits = append(commits, models.Commit{
				SHA:   commit.ID,
				Title: commit.Title,
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}
	return commits, nil
}

func (s *GitLabService) ListChanges(ctx context.Context, iid int) ([]models.ChangedFile, error) {
	opt := &gitlab.ListMergeRequestDiffsOptions{
		ListOptions: gitlab.ListOptions{
			Page:    1,
			PerPage: perPage,
		},
	}

	var files []models.ChangedFile
	for {
		page, resp, err := s.mrService.ListMergeRequestDiffs(s.projectID, iid, opt, gitlab.WithContext(ctx))
		if err != nil {
			return nil, hostError(resp, err)
		}
		for _, diff := range page {
			files = append(files, models.ChangedFile{
				Path:    diff.NewPath,
				Diff:    diff.Diff,
				Deleted: diff.DeletedFile,
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}
	return files, nil
}

func (s *GitLabService) ListTree(ctx context.Context, path, ref string) ([]models.TreeEntry, error) {
	opt := &gitlab.ListTreeOptions{
		ListOptions: gitlab.ListOptions{
			Page:    1,
			PerPage: perPage,
		},
		Path: gitlab.Ptr(path),
		Ref:  gitlab.Ptr(ref),
	}

	var entries []models.TreeEntry
	for {
		page, resp, err := s.repoService.ListTree(s.projectID, opt, gitlab.WithContext(ctx))
		if err != nil {
			return nil, hostError(resp, err)
		}
		for _, node := range page {
			entries = append(entries, models.TreeEntry{
				ID:   node.ID,
				Name: node.Name,
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}
	return entries, nil
}

func (s *GitLabService) GetRawBlob(ctx context.Context, blobID string) ([]byte, error) {
	data, resp, err := s.repoService.RawBlobContent(s.projectID, blobID, gitlab.WithContext(ctx))
	if err != nil {
		return nil, hostError(resp, err)
	}
	return data, nil
}

func (s *GitLabService) ListCommitBranches(ctx context.Context, sha string) ([]string, error) {
	opt := &gitlab.GetCommitRefsOptions{
		ListOptions: gitlab.ListOptions{
			Page:    1,
			PerPage: perPage,
		},
		Type: gitlab.Ptr("branch"),
	}

	var branches []string
	for {
		page, resp, err := s.commitsService.GetCommitRefs(s.projectID, sha, opt, gitlab.WithContext(ctx))
		if err != nil {
			return nil, hostError(resp, err)
		}
		for _, ref := range page {
			branches = append(branches, ref.Name)
		}
		if resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}
	return branches, nil
}
