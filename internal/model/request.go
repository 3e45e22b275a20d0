package model

// GenerationRequest parâmetros de uma geração de fichas. Os campos JSON
// seguem o formato do config.json.
type GenerationRequest struct {
	SourceFile      string `json:"source_file"`      // planilha base (.xlsx)
	TargetYear      int    `json:"target_year"`      // ano alvo
	TargetMonth     int    `json:"target_month"`     // mês alvo (1-12)
	OutputDirectory string `json:"output_directory"` // vazio = diretório da planilha base
}
