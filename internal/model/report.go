package model

import "time"

// SheetResult resultado do processamento de uma aba.
type SheetResult struct {
	Nome            string `json:"nome"`
	Atualizada      bool   `json:"atualizada"`
	Motivo          string `json:"motivo,omitempty"` // preenchido quando a aba foi pulada total ou parcialmente
	Alunos          int    `json:"alunos"`
	Aniversariantes int    `json:"aniversariantes"`
}

// GenerationReport relatório final de uma geração.
type GenerationReport struct {
	RunID          string        `json:"runId"`
	SourceFile     string        `json:"arquivoOrigem"`
	OutputPath     string        `json:"arquivoGerado"`
	TargetYear     int           `json:"ano"`
	TargetMonth    int           `json:"mes"`
	MonthName      string        `json:"nomeMes"`
	Sundays        []string      `json:"domingos"` // datas no formato 2006-01-02
	Sheets         []SheetResult `json:"abas"`
	CopiesRemoved  int           `json:"copiasRemovidas"`
	TotalStudents  int           `json:"totalAlunos"`
	TotalBirthdays int           `json:"totalAniversariantes"`
	Duration       time.Duration `json:"-"`
	DurationMillis int64         `json:"duracaoMs"`
}
