package generator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/santosml/igreja-escola/internal/model"
	"github.com/santosml/igreja-escola/internal/planilha"
)

// Erros de validação e de entrada reconhecidos pelos chamadores.
var (
	ErrIncompleteConfig = errors.New("configuração incompleta")
	ErrNonNumeric       = errors.New("ano e mês precisam ser numéricos")
	ErrMonthOutOfRange  = errors.New("mês deve estar entre 1 e 12")
	ErrSourceNotFound   = errors.New("arquivo de origem não encontrado")
)

// Generator produz as fichas de um mês a partir de uma planilha base.
type Generator struct {
	opts planilha.Options
}

// New cria o gerador com os parâmetros de layout dados.
func New(opts planilha.Options) *Generator {
	return &Generator{opts: opts}
}

// ProgressEvent evento de progresso de uma geração
type ProgressEvent struct {
	Type      string      `json:"type"`      // inicio/aba/aviso/concluido/erro
	Message   string      `json:"message"`   // mensagem do evento
	Data      interface{} `json:"data"`      // dados adicionais
	Timestamp time.Time   `json:"timestamp"` // momento do evento
}

// Generate executa a geração de forma síncrona e devolve o relatório.
func (g *Generator) Generate(req model.GenerationRequest) (*model.GenerationReport, error) {
	return g.generate(req, func(ProgressEvent) {})
}

// GenerateStream executa a geração em segundo plano e devolve o canal de
// progresso. O canal é fechado ao final; o último evento é "concluido" com o
// relatório em Data, ou "erro" com a mensagem da falha.
func (g *Generator) GenerateStream(req model.GenerationRequest) <-chan ProgressEvent {
	progressChan := make(chan ProgressEvent, 100)

	go func() {
		defer close(progressChan)

		emit := func(event ProgressEvent) {
			select {
			case progressChan <- event:
			default:
				// Canal cheio, evento descartado.
			}
		}

		report, err := g.generate(req, emit)
		if err != nil {
			emit(ProgressEvent{
				Type:      "erro",
				Message:   err.Error(),
				Timestamp: time.Now(),
			})
			return
		}
		emit(ProgressEvent{
			Type:      "concluido",
			Message:   fmt.Sprintf("Arquivo gerado: %s", report.OutputPath),
			Data:      report,
			Timestamp: time.Now(),
		})
	}()

	return progressChan
}

// generate aplica a geração completa: valida a entrada, abre a planilha,
// remove abas de cópia, processa cada aba restante e salva o resultado.
func (g *Generator) generate(req model.GenerationRequest, emit func(ProgressEvent)) (*model.GenerationReport, error) {
	startTime := time.Now()

	if req.TargetMonth < 1 || req.TargetMonth > 12 {
		return nil, ErrMonthOutOfRange
	}
	if _, err := os.Stat(req.SourceFile); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, req.SourceFile)
	}

	monthName := planilha.MonthNames[req.TargetMonth]
	sundays := planilha.Sundays(req.TargetYear, req.TargetMonth)

	report := &model.GenerationReport{
		RunID:       uuid.NewString(),
		SourceFile:  req.SourceFile,
		TargetYear:  req.TargetYear,
		TargetMonth: req.TargetMonth,
		MonthName:   monthName,
		Sheets:      []model.SheetResult{},
	}
	for _, d := range sundays {
		report.Sundays = append(report.Sundays, d.Format("2006-01-02"))
	}

	emit(ProgressEvent{
		Type:    "inicio",
		Message: fmt.Sprintf("Gerando fichas de %s/%d", monthName, req.TargetYear),
		Data: map[string]string{
			"runId":   report.RunID,
			"arquivo": filepath.Base(req.SourceFile),
		},
		Timestamp: time.Now(),
	})

	file, err := excelize.OpenFile(req.SourceFile)
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir a planilha: %w", err)
	}
	defer file.Close()

	engine := planilha.New(file, g.opts)

	// A lista é congelada antes do laço: remover abas durante a iteração
	// direto em GetSheetList embaralharia a ordem.
	sheetList := file.GetSheetList()
	for _, sheetName := range sheetList {
		if strings.HasPrefix(planilha.Normalize(sheetName), "copia") {
			if err := file.DeleteSheet(sheetName); err != nil {
				emit(ProgressEvent{
					Type:      "aviso",
					Message:   fmt.Sprintf("Não foi possível remover a aba de cópia \"%s\": %v", sheetName, err),
					Timestamp: time.Now(),
				})
				continue
			}
			report.CopiesRemoved++
			emit(ProgressEvent{
				Type:      "aba",
				Message:   fmt.Sprintf("Aba de cópia removida: %s", sheetName),
				Timestamp: time.Now(),
			})
			continue
		}

		stats := engine.ProcessSheet(sheetName, sundays, monthName, req.TargetMonth)
		result := model.SheetResult{
			Nome:            sheetName,
			Atualizada:      stats.DateColumns > 0 && stats.HasRoster,
			Alunos:          stats.Students,
			Aniversariantes: stats.Birthdays,
		}
		switch {
		case stats.DateColumns == 0:
			result.Motivo = "sem colunas de chamada"
		case !stats.HasRoster:
			result.Motivo = "cabeçalho sem colunas de nome/nascimento"
		}
		report.Sheets = append(report.Sheets, result)
		report.TotalStudents += stats.Students
		report.TotalBirthdays += stats.Birthdays

		emit(ProgressEvent{
			Type:    "aba",
			Message: fmt.Sprintf("Aba \"%s\" processada", sheetName),
			Data: map[string]interface{}{
				"aba":             sheetName,
				"atualizada":      result.Atualizada,
				"alunos":          stats.Students,
				"aniversariantes": stats.Birthdays,
			},
			Timestamp: time.Now(),
		})
	}

	outputDir := req.OutputDirectory
	if outputDir == "" {
		outputDir = filepath.Dir(req.SourceFile)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("falha ao criar o diretório de saída: %w", err)
	}

	outputPath := filepath.Join(outputDir, OutputFileName(req.SourceFile, monthName))
	if err := file.SaveAs(outputPath); err != nil {
		return nil, fmt.Errorf("falha ao salvar a planilha gerada: %w", err)
	}

	report.OutputPath = outputPath
	report.Duration = time.Since(startTime)
	report.DurationMillis = report.Duration.Milliseconds()
	return report, nil
}

// OutputFileName monta o nome do arquivo gerado: o nome base da origem com o
// mês por extenso, por exemplo "Chamada EBD - Março.xlsx".
func OutputFileName(sourcePath, monthName string) string {
	base := filepath.Base(sourcePath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return fmt.Sprintf("%s - %s.xlsx", stem, monthName)
}
