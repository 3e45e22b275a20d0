package planilha

import (
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Prefixo do rótulo de mês gravado no topo de cada aba.
const monthLabelPrefix = "Mês: "

// Fragmentos procurados no cabeçalho para achar as colunas da lista.
const (
	nameFragment  = "nome"
	birthFragment = "nasc"
)

// Options parâmetros de layout reconhecidos pelo motor.
type Options struct {
	// HeaderRow linha dos cabeçalhos de aluno/presença.
	HeaderRow int
	// SectionLabels seções sincronizadas com os domingos do mês.
	SectionLabels []string
	// BirthdayLabel rótulo da lista de aniversariantes.
	BirthdayLabel string
	// StopKeywords fragmentos que encerram a leitura da lista de alunos.
	StopKeywords []string
}

// DefaultOptions devolve os parâmetros do layout das fichas da EBD.
func DefaultOptions() Options {
	return Options{
		HeaderRow:     5,
		SectionLabels: []string{"ASSUNTO DAS AULAS:", "VISITAS:"},
		BirthdayLabel: "ANIVERSARIANTES:",
		StopKeywords:  []string{"present", "ausent", "total", "visit", "assunto", "anivers"},
	}
}

// Engine aplica as transformações de uma geração sobre as abas de uma
// planilha aberta. Toda mutação é feita direto no arquivo em memória.
type Engine struct {
	f    *excelize.File
	opts Options
}

// New cria o motor para a planilha aberta.
func New(f *excelize.File, opts Options) *Engine {
	if opts.HeaderRow <= 0 {
		opts = DefaultOptions()
	}
	return &Engine{f: f, opts: opts}
}

// SheetStats resume o que foi feito em uma aba.
type SheetStats struct {
	DateColumns int  // colunas do bloco de datas (0 = aba sem chamada)
	HasRoster   bool // cabeçalho traz colunas de nome e nascimento
	Students    int
	Birthdays   int
}

// ProcessSheet atualiza uma aba para o mês alvo: rótulo do mês, colunas de
// data do cabeçalho, seções de datas e aniversariantes. Abas sem bloco de
// datas ou sem colunas de nome/nascimento são deixadas como estão do ponto
// em que o reconhecimento falhou.
func (e *Engine) ProcessSheet(sheet string, sundays []time.Time, monthName string, targetMonth int) SheetStats {
	stats := SheetStats{}

	e.updateMonthLabel(sheet, monthName)

	targets := e.updateHeaderDates(sheet, sundays)
	if len(targets) == 0 {
		return stats
	}
	stats.DateColumns = len(targets)

	nameCol, birthCol := e.findHeaderColumns(sheet)
	if nameCol == 0 || birthCol == 0 {
		return stats
	}
	stats.HasRoster = true

	students := e.collectStudents(sheet, nameCol, birthCol)
	stats.Students = len(students)

	for _, label := range e.opts.SectionLabels {
		e.updateSectionDates(sheet, label, sundays)
	}

	entries := birthdayEntries(students, targetMonth)
	stats.Birthdays = len(entries)
	e.updateBirthdays(sheet, entries)

	return stats
}

// updateMonthLabel troca qualquer célula das três primeiras linhas que
// mencione o mês pelo rótulo novo.
func (e *Engine) updateMonthLabel(sheet, monthName string) {
	rows, err := e.f.GetRows(sheet)
	if err != nil {
		return
	}
	label := monthLabelPrefix + monthName
	limit := 3
	if len(rows) < limit {
		limit = len(rows)
	}
	for r := 0; r < limit; r++ {
		for c, value := range rows[r] {
			if strings.Contains(Normalize(value), "mes") {
				setCell(e.f, sheet, c+1, r+1, label)
			}
		}
	}
}

// findHeaderColumns localiza as colunas de nome e nascimento no cabeçalho
// (primeira ocorrência de cada, da esquerda para a direita). Zero = ausente.
func (e *Engine) findHeaderColumns(sheet string) (nameCol, birthCol int) {
	row := e.opts.HeaderRow
	width := rowWidth(e.f, sheet, row)
	for col := 1; col <= width; col++ {
		norm := Normalize(getCell(e.f, sheet, col, row))
		if norm == "" {
			continue
		}
		if nameCol == 0 && strings.Contains(norm, nameFragment) {
			nameCol = col
		}
		if birthCol == 0 && strings.Contains(norm, birthFragment) {
			birthCol = col
		}
	}
	return nameCol, birthCol
}
