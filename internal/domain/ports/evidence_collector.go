package ports

import (
	"context"

	"github.com/Tomas-vilte/MateReview/internal/domain/models"
)

// EvidenceCollector arma el paquete de evidencia de un merge request.
// La evidencia se recolecta una sola vez por corrida y es inmutable:
// todos los prompts se derivan del mismo snapshot.
type EvidenceCollector interface {
	// CollectSummaryEvidence junta commits y diffs para los resúmenes de release.
	CollectSummaryEvidence(ctx context.Context, iid int, progress func(string)) (*models.SummaryEvidence, error)

	// CollectReviewEvidence junta además el contenido completo de los archivos
	// modificados. Los fallos por archivo no abortan la recolección.
	CollectReviewEvidence(ctx context.Context, iid int, progress func(string)) (*models.ReviewEvidence, error)
}
