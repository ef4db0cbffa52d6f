package ports

import (
	"context"

	"github.com/Tomas-vilte/MateReview/internal/domain/models"
)

// GitLabHost define la capacidad que el recolector de evidencia necesita del
// host de GitLab. Cualquier fallo a nivel del merge request se reporta como
// *errors.HostError con el status code de la API.
type GitLabHost interface {
	// GetMergeRequest resuelve el MR por su IID dentro del proyecto configurado.
	GetMergeRequest(ctx context.Context, iid int) (models.MergeRequestMeta, error)

	// ListCommits lista TODOS los commits del MR, paginando hasta el final.
	// El orden es el que devuelve GitLab, no se reordena.
	ListCommits(ctx context.Context, iid int) ([]models.Commit, error)

	// ListChanges lista los archivos modificados del MR con su diff.
	// Un diff ausente se normaliza a string vacío, nunca a nil.
	ListChanges(ctx context.Context, iid int) ([]models.ChangedFile, error)

	// ListTree lista las entradas del directorio path en la ref dada
	// (listado plano, no recursivo).
	ListTree(ctx context.Context, path, ref string) ([]models.TreeEntry, error)

	// GetRawBlob trae los bytes crudos de un blob por su id.
	GetRawBlob(ctx context.Context, blobID string) ([]byte, error)

	// ListCommitBranches lista los nombres de las ramas que contienen al commit,
	// en el orden que los devuelve GitLab.
	ListCommitBranches(ctx context.Context, sha string) ([]string, error)
}
