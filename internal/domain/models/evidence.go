package models

type (
	// MergeRequestMeta es la foto de los metadatos del MR, se obtiene una sola vez por corrida.
	MergeRequestMeta struct {
		IID          int
		Title        string
		Description  string
		SourceBranch string
		TargetBranch string
	}

	// Commit representa un commit del merge request, en el orden que lo devuelve GitLab.
	Commit struct {
		SHA   string
		Title string
	}

	// ChangedFile es un archivo modificado con su diff en formato unified.
	// Un diff vacío es válido (ej: rename sin cambios de contenido).
	ChangedFile struct {
		Path    string
		Diff    string
		Deleted bool
	}

	// TreeEntry es una entrada del listado de árbol de un directorio del repositorio.
	TreeEntry struct {
		ID   string
		Name string
	}

	// FileOutcome registra el resultado por archivo al intentar traer su contenido
	// completo durante la recolección de evidencia para code review.
	FileOutcome struct {
		Path     string
		Included bool
		Reason   string
	}

	// SummaryEvidence es el paquete de evidencia para los resúmenes de release.
	// Es inmutable una vez construido: todos los estilos de una corrida
	// se generan a partir del mismo snapshot.
	SummaryEvidence struct {
		Meta           MergeRequestMeta
		CommitMessages string
		CodeDiffs      string
		CommitCount    int
		FileCount      int
	}

	// ReviewEvidence es el paquete de evidencia para el code review: diffs
	// etiquetados con su path y contenido completo de los archivos modificados.
	ReviewEvidence struct {
		Meta             MergeRequestMeta
		CommitMessages   string
		LabeledCodeDiffs string
		FullFilesContent string
		CommitCount      int
		FileCount        int
		ContentOutcomes  []FileOutcome
	}

	// GeneratedReport es el texto generado por la IA para un estilo, tal cual
	// se escribe en el archivo de salida.
	GeneratedReport struct {
		Style    string
		Text     string
		Filename string
	}
)
