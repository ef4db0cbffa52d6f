package services

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/Tomas-vilte/MateReview/internal/domain/errors"
	"github.com/Tomas-vilte/MateReview/internal/domain/models"
	"github.com/Tomas-vilte/MateReview/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newEvidenceService(host *MockGitLabHost, annotate bool) *EvidenceService {
	trans, _ := i18n.NewTranslations("en", "")
	return NewEvidenceService(host, "group/project", annotate, trans)
}

func metaMR42() models.MergeRequestMeta {
	return models.MergeRequestMeta{
		IID:          42,
		Title:        "Add login",
		Description:  "Implements the login flow",
		SourceBranch: "feature/login",
		TargetBranch: "main",
	}
}

func TestEvidenceService_CollectSummaryEvidence(t *testing.T) {
	t.Run("should build commit lines and concatenated diffs for MR 42", func(t *testing.T) {
		host := &MockGitLabHost{}
		service := newEvidenceService(host, false)

		host.On("GetMergeRequest", mock.Anything, 42).Return(metaMR42(), nil)
		host.On("ListCommits", mock.Anything, 42).Return([]models.Commit{
			{SHA: "sha-a", Title: "A"},
			{SHA: "sha-b", Title: "B"},
			{SHA: "sha-c", Title: "C"},
		}, nil)
		host.On("ListChanges", mock.Anything, 42).Return([]models.ChangedFile{
			{Path: "src/a.py", Diff: "+1 line"},
			{Path: "src/b.py", Diff: "", Deleted: true},
		}, nil)

		evidence, err := service.CollectSummaryEvidence(context.Background(), 42, nil)

		require.NoError(t, err)
		assert.Equal(t, "- A\n- B\n- C", evidence.CommitMessages)
		// el diff vacío de b.py entra como segmento vacío: "sin diff textual"
		// no es lo mismo que "omitido"
		assert.Equal(t, "+1 line\n", evidence.CodeDiffs)
		assert.Equal(t, 3, evidence.CommitCount)
		assert.Equal(t, 2, evidence.FileCount)
		assert.Equal(t, metaMR42(), evidence.Meta)
	})

	t.Run("should yield empty commit text when the MR has no commits", func(t *testing.T) {
		host := &MockGitLabHost{}
		service := newEvidenceService(host, false)

		host.On("GetMergeRequest", mock.Anything, 7).Return(metaMR42(), nil)
		host.On("ListCommits", mock.Anything, 7).Return([]models.Commit{}, nil)
		host.On("ListChanges", mock.Anything, 7).Return([]models.ChangedFile{}, nil)

		evidence, err := service.CollectSummaryEvidence(context.Background(), 7, nil)

		require.NoError(t, err)
		assert.Equal(t, "", evidence.CommitMessages)
		assert.Equal(t, "", evidence.CodeDiffs)
		assert.Equal(t, 0, evidence.CommitCount)
	})

	t.Run("should abort the run on a host error", func(t *testing.T) {
		host := &MockGitLabHost{}
		service := newEvidenceService(host, false)

		hostErr := domainErrors.NewHostError(404, "404 Not Found", errors.New("404 Not Found"))
		host.On("GetMergeRequest", mock.Anything, 999).Return(models.MergeRequestMeta{}, hostErr)

		evidence, err := service.CollectSummaryEvidence(context.Background(), 999, nil)

		assert.Nil(t, evidence)
		var typed *domainErrors.HostError
		require.ErrorAs(t, err, &typed)
		assert.Equal(t, 404, typed.StatusCode)
	})

	t.Run("should annotate commit lines with the branch category when enabled", func(t *testing.T) {
		host := &MockGitLabHost{}
		service := newEvidenceService(host, true)

		host.On("GetMergeRequest", mock.Anything, 42).Return(metaMR42(), nil)
		host.On("ListCommits", mock.Anything, 42).Return([]models.Commit{
			{SHA: "sha-a", Title: "A"},
			{SHA: "sha-b", Title: "B"},
			{SHA: "sha-c", Title: "C"},
		}, nil)
		// la primera candidata que no es source ni target define la categoría
		host.On("ListCommitBranches", mock.Anything, "sha-a").Return([]string{"feature/login", "main", "fix/crash"}, nil)
		// sin separador de path no hay categoría determinable
		host.On("ListCommitBranches", mock.Anything, "sha-b").Return([]string{"develop"}, nil)
		// un fallo del lookup no aborta el loop, la línea queda sin anotar
		host.On("ListCommitBranches", mock.Anything, "sha-c").Return(nil, errors.New("boom"))
		host.On("ListChanges", mock.Anything, 42).Return([]models.ChangedFile{}, nil)

		evidence, err := service.CollectSummaryEvidence(context.Background(), 42, nil)

		require.NoError(t, err)
		assert.Equal(t, "- [fix] A\n- B\n- C", evidence.CommitMessages)
	})
}

func TestEvidenceService_CollectReviewEvidence(t *testing.T) {
	t.Run("should exclude deleted and empty-diff files from the review sections", func(t *testing.T) {
		host := &MockGitLabHost{}
		service := newEvidenceService(host, false)

		host.On("GetMergeRequest", mock.Anything, 42).Return(metaMR42(), nil)
		host.On("ListCommits", mock.Anything, 42).Return([]models.Commit{{SHA: "sha-a", Title: "A"}}, nil)
		host.On("ListChanges", mock.Anything, 42).Return([]models.ChangedFile{
			{Path: "src/a.py", Diff: "+1 line"},
			{Path: "src/b.py", Diff: "", Deleted: true},
			{Path: "src/c.py", Diff: "", Deleted: false},
		}, nil)
		host.On("ListTree", mock.Anything, "src", "feature/login").Return([]models.TreeEntry{
			{ID: "blob-a", Name: "a.py"},
		}, nil)
		host.On("GetRawBlob", mock.Anything, "blob-a").Return([]byte("print('a')\n"), nil)

		evidence, err := service.CollectReviewEvidence(context.Background(), 42, nil)

		require.NoError(t, err)
		assert.Equal(t, "--- FILE DIFF: src/a.py ---\n+1 line", evidence.LabeledCodeDiffs)
		assert.Contains(t, evidence.FullFilesContent, "--- BEGIN FULL FILE CONTENT: src/a.py ---")
		assert.Contains(t, evidence.FullFilesContent, "print('a')")
		assert.NotContains(t, evidence.FullFilesContent, "b.py")
		assert.NotContains(t, evidence.LabeledCodeDiffs, "b.py")
		assert.NotContains(t, evidence.LabeledCodeDiffs, "c.py")

		require.Len(t, evidence.ContentOutcomes, 3)
		assert.True(t, evidence.ContentOutcomes[0].Included)
		assert.False(t, evidence.ContentOutcomes[1].Included)
		assert.False(t, evidence.ContentOutcomes[2].Included)
	})

	t.Run("should keep sibling files when one file's content fetch fails", func(t *testing.T) {
		host := &MockGitLabHost{}
		service := newEvidenceService(host, false)

		host.On("GetMergeRequest", mock.Anything, 42).Return(metaMR42(), nil)
		host.On("ListCommits", mock.Anything, 42).Return([]models.Commit{{SHA: "sha-a", Title: "A"}}, nil)
		host.On("ListChanges", mock.Anything, 42).Return([]models.ChangedFile{
			{Path: "src/x.py", Diff: "+x"},
			{Path: "src/y.py", Diff: "+y"},
		}, nil)
		// x: el lookup del árbol falla; y: todo bien
		host.On("ListTree", mock.Anything, "src", "feature/login").Return([]models.TreeEntry{
			{ID: "blob-y", Name: "y.py"},
		}, nil)
		host.On("GetRawBlob", mock.Anything, "blob-y").Return([]byte("y = 1\n"), nil)

		var warnings []string
		evidence, err := service.CollectReviewEvidence(context.Background(), 42, func(msg string) {
			warnings = append(warnings, msg)
		})

		require.NoError(t, err)
		assert.Contains(t, evidence.LabeledCodeDiffs, "--- FILE DIFF: src/x.py ---")
		assert.Contains(t, evidence.LabeledCodeDiffs, "--- FILE DIFF: src/y.py ---")
		assert.NotContains(t, evidence.FullFilesContent, "x.py")
		assert.Contains(t, evidence.FullFilesContent, "--- BEGIN FULL FILE CONTENT: src/y.py ---")

		require.Len(t, evidence.ContentOutcomes, 2)
		assert.False(t, evidence.ContentOutcomes[0].Included)
		assert.NotEmpty(t, evidence.ContentOutcomes[0].Reason)
		assert.True(t, evidence.ContentOutcomes[1].Included)
		assert.NotEmpty(t, warnings)
	})

	t.Run("should treat non-UTF-8 content as a per-file failure", func(t *testing.T) {
		host := &MockGitLabHost{}
		service := newEvidenceService(host, false)

		host.On("GetMergeRequest", mock.Anything, 42).Return(metaMR42(), nil)
		host.On("ListCommits", mock.Anything, 42).Return([]models.Commit{{SHA: "sha-a", Title: "A"}}, nil)
		host.On("ListChanges", mock.Anything, 42).Return([]models.ChangedFile{
			{Path: "img/logo.png", Diff: "Binary files differ"},
		}, nil)
		host.On("ListTree", mock.Anything, "img", "feature/login").Return([]models.TreeEntry{
			{ID: "blob-img", Name: "logo.png"},
		}, nil)
		host.On("GetRawBlob", mock.Anything, "blob-img").Return([]byte{0xff, 0xfe, 0x00, 0x89}, nil)

		evidence, err := service.CollectReviewEvidence(context.Background(), 42, nil)

		require.NoError(t, err)
		assert.Contains(t, evidence.LabeledCodeDiffs, "img/logo.png")
		assert.Empty(t, evidence.FullFilesContent)
		require.Len(t, evidence.ContentOutcomes, 1)
		assert.False(t, evidence.ContentOutcomes[0].Included)
	})

	t.Run("should look up root-level files with an empty tree path", func(t *testing.T) {
		host := &MockGitLabHost{}
		service := newEvidenceService(host, false)

		host.On("GetMergeRequest", mock.Anything, 42).Return(metaMR42(), nil)
		host.On("ListCommits", mock.Anything, 42).Return([]models.Commit{{SHA: "sha-a", Title: "A"}}, nil)
		host.On("ListChanges", mock.Anything, 42).Return([]models.ChangedFile{
			{Path: "README.md", Diff: "+hola"},
		}, nil)
		host.On("ListTree", mock.Anything, "", "feature/login").Return([]models.TreeEntry{
			{ID: "blob-readme", Name: "README.md"},
		}, nil)
		host.On("GetRawBlob", mock.Anything, "blob-readme").Return([]byte("# MateReview\n"), nil)

		evidence, err := service.CollectReviewEvidence(context.Background(), 42, nil)

		require.NoError(t, err)
		assert.Contains(t, evidence.FullFilesContent, "--- BEGIN FULL FILE CONTENT: README.md ---")
		host.AssertCalled(t, "ListTree", mock.Anything, "", "feature/login")
	})
}

func TestSplitPath(t *testing.T) {
	t.Run("should split directory and base name", func(t *testing.T) {
		dir, base := splitPath("src/services/auth.py")
		assert.Equal(t, "src/services", dir)
		assert.Equal(t, "auth.py", base)
	})

	t.Run("should return empty dir for root-level files", func(t *testing.T) {
		dir, base := splitPath("main.py")
		assert.Equal(t, "", dir)
		assert.Equal(t, "main.py", base)
	})
}
