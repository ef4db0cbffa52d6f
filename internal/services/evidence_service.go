package services

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Tomas-vilte/MateReview/internal/domain/models"
	"github.com/Tomas-vilte/MateReview/internal/domain/ports"
	"github.com/Tomas-vilte/MateReview/internal/i18n"
)

var _ ports.EvidenceCollector = (*EvidenceService)(nil)

// EvidenceService recolecta la evidencia de un merge request contra el host
// de GitLab. Las llamadas son secuenciales y la evidencia se arma una sola
// vez por corrida.
type EvidenceService struct {
	host             ports.GitLabHost
	projectID        string
	annotateBranches bool
	trans            *i18n.Translations
}

func NewEvidenceService(host ports.GitLabHost, projectID string, annotateBranches bool, trans *i18n.Translations) *EvidenceService {
	return &EvidenceService{
		host:             host,
		projectID:        projectID,
		annotateBranches: annotateBranches,
		trans:            trans,
	}
}

func (s *EvidenceService) CollectSummaryEvidence(ctx context.Context, iid int, progress func(string)) (*models.SummaryEvidence, error) {
	notify := notifier(progress)

	notify(s.trans.GetMessage("evidence.fetching", 0, map[string]interface{}{
		"IID":     iid,
		"Project": s.projectID,
	}))

	meta, err := s.host.GetMergeRequest(ctx, iid)
	if err != nil {
		return nil, err
	}

	commitMessages, commitCount, err := s.collectCommitMessages(ctx, meta, notify)
	if err != nil {
		return nil, err
	}

	changes, err := s.host.ListChanges(ctx, iid)
	if err != nil {
		return nil, err
	}
	notify(s.trans.GetMessage("evidence.found_changes", len(changes), map[string]interface{}{
		"Count": len(changes),
	}))

	diffs := make([]string, len(changes))
	for i, file := range changes {
		diffs[i] = file.Diff
	}

	return &models.SummaryEvidence{
		Meta:           meta,
		CommitMessages: commitMessages,
		CodeDiffs:      strings.Join(diffs, "\n"),
		CommitCount:    commitCount,
		FileCount:      len(changes),
	}, nil
}

func (s *EvidenceService) CollectReviewEvidence(ctx context.Context, iid int, progress func(string)) (*models.ReviewEvidence, error) {
	notify := notifier(progress)

	notify(s.trans.GetMessage("evidence.fetching", 0, map[string]interface{}{
		"IID":     iid,
		"Project": s.projectID,
	}))

	meta, err := s.host.GetMergeRequest(ctx, iid)
	if err != nil {
		return nil, err
	}

	commitMessages, commitCount, err := s.collectCommitMessages(ctx, meta, notify)
	if err != nil {
		return nil, err
	}

	changes, err := s.host.ListChanges(ctx, iid)
	if err != nil {
		return nil, err
	}
	notify(s.trans.GetMessage("evidence.found_changes", len(changes), map[string]interface{}{
		"Count": len(changes),
	}))
	notify(s.trans.GetMessage("evidence.fetching_contents", 0, nil))

	var labeledDiffs []string
	var contentBlocks []string
	outcomes := make([]models.FileOutcome, 0, len(changes))

	for _, file := range changes {
		// Un archivo borrado no tiene contenido en la rama de origen, y un
		// diff vacío no aporta nada que revisar: se excluye entero.
		if file.Diff == "" || file.Deleted {
			outcomes = append(outcomes, models.FileOutcome{
				Path:   file.Path,
				Reason: "diff vacío o archivo borrado",
			})
			continue
		}

		labeledDiffs = append(labeledDiffs, fmt.Sprintf("--- FILE DIFF: %s ---\n%s", file.Path, file.Diff))

		block, err := s.fetchFileContent(ctx, file.Path, meta.SourceBranch)
		if err != nil {
			notify(s.trans.GetMessage("evidence.file_content_warning", 0, map[string]interface{}{
				"Path":  file.Path,
				"Error": err.Error(),
			}))
			outcomes = append(outcomes, models.FileOutcome{
				Path:   file.Path,
				Reason: err.Error(),
			})
			continue
		}

		contentBlocks = append(contentBlocks, block)
		outcomes = append(outcomes, models.FileOutcome{
			Path:     file.Path,
			Included: true,
		})
	}

	return &models.ReviewEvidence{
		Meta:             meta,
		CommitMessages:   commitMessages,
		LabeledCodeDiffs: strings.Join(labeledDiffs, "\n\n"),
		FullFilesContent: strings.Join(contentBlocks, "\n\n"),
		CommitCount:      commitCount,
		FileCount:        len(changes),
		ContentOutcomes:  outcomes,
	}, nil
}

func (s *EvidenceService) collectCommitMessages(ctx context.Context, meta models.MergeRequestMeta, notify func(string)) (string, int, error) {
	commits, err := s.host.ListCommits(ctx, meta.IID)
	if err != nil {
		return "", 0, err
	}
	notify(s.trans.GetMessage("evidence.found_commits", len(commits), map[string]interface{}{
		"Count": len(commits),
	}))

	lines := make([]string, 0, len(commits))
	for _, commit := range commits {
		line := "- " + commit.Title
		if s.annotateBranches {
			if category, ok := s.branchCategory(ctx, commit.SHA, meta); ok {
				line = fmt.Sprintf("- [%s] %s", category, commit.Title)
			}
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n"), len(commits), nil
}

// branchCategory infiere la categoría de la rama de origen de un commit:
// se excluyen las ramas source y target del propio MR, se toma la primera
// candidata restante y la categoría es el segmento antes del primer "/".
// Es una heurística de mejor esfuerzo, depende del orden en que GitLab
// devuelve las ramas; un fallo acá nunca aborta la recolección.
func (s *EvidenceService) branchCategory(ctx context.Context, sha string, meta models.MergeRequestMeta) (string, bool) {
	branches, err := s.host.ListCommitBranches(ctx, sha)
	if err != nil {
		return "", false
	}

	for _, branch := range branches {
		if branch == meta.SourceBranch || branch == meta.TargetBranch {
			continue
		}
		idx := strings.Index(branch, "/")
		if idx <= 0 {
			return "", false
		}
		return branch[:idx], true
	}
	return "", false
}

// fetchFileContent ubica el blob del archivo listando el árbol de su
// directorio en la ref dada (coincidencia exacta por nombre base, sin
// búsqueda recursiva), trae los bytes crudos y exige texto UTF-8 válido.
func (s *EvidenceService) fetchFileContent(ctx context.Context, filePath, ref string) (string, error) {
	dir, base := splitPath(filePath)

	entries, err := s.host.ListTree(ctx, dir, ref)
	if err != nil {
		return "", err
	}

	blobID := ""
	for _, entry := range entries {
		if entry.Name == base {
			blobID = entry.ID
			break
		}
	}
	if blobID == "" {
		return "", fmt.Errorf("no se encontró %s en el árbol de %s", base, ref)
	}

	data, err := s.host.GetRawBlob(ctx, blobID)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("el contenido de %s no es texto UTF-8 válido", filePath)
	}

	return fmt.Sprintf("--- BEGIN FULL FILE CONTENT: %s ---\n%s\n--- END FULL FILE CONTENT: %s ---", filePath, string(data), filePath), nil
}

func splitPath(p string) (dir, base string) {
	idx := strings.LastIndex(p, "/")
	if idx < 0 {
		return "", p
	}
	return p[:idx], p[idx+1:]
}

func notifier(progress func(string)) func(string) {
	if progress == nil {
		return func(string) {}
	}
	return progress
}
