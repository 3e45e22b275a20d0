package v1

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/santosml/igreja-escola/internal/generator"
	"github.com/santosml/igreja-escola/internal/model"
)

// Validade do link de download emitido ao final da geração.
const downloadTTL = 15 * time.Minute

// Gerar gera as fichas do mês (resposta SSE com progresso)
// POST /api/gerar
func (h *Handler) Gerar(c *gin.Context) {
	ano, err := strconv.Atoi(c.PostForm("ano"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ano inválido"})
		return
	}
	mes, err := strconv.Atoi(c.PostForm("mes"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mês inválido"})
		return
	}
	if mes < 1 || mes > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mês deve estar entre 1 e 12"})
		return
	}

	// A planilha base vem do upload ou de um caminho já conhecido do
	// servidor (campo "fonte"). Uploads ganham um prefixo de época no nome
	// gravado; originalName preserva o nome que o usuário enviou.
	var sourcePath, originalName string
	if file, err := c.FormFile("arquivo"); err == nil {
		originalName = filepath.Base(file.Filename)
		sourcePath = filepath.Join(h.uploadsDir,
			fmt.Sprintf("%d_%s", time.Now().Unix(), originalName))
		if err := c.SaveUploadedFile(file, sourcePath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "falha ao salvar o arquivo enviado"})
			return
		}
	} else {
		sourcePath = c.PostForm("fonte")
		if sourcePath == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "envie o arquivo ou informe o campo 'fonte'"})
			return
		}
		originalName = filepath.Base(sourcePath)
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "resposta em stream não suportada"})
		return
	}

	progressChan := h.generator.GenerateStream(model.GenerationRequest{
		SourceFile:      sourcePath,
		TargetYear:      ano,
		TargetMonth:     mes,
		OutputDirectory: h.exportsDir,
	})

	var logID int64
	var report *model.GenerationReport
	var failure string

	for event := range progressChan {
		switch event.Type {
		case "inicio":
			if data, ok := event.Data.(map[string]string); ok {
				if id, err := h.store.CreateGenerationLog(data["runId"], sourcePath, ano, mes); err == nil {
					logID = id
				}
			}
		case "concluido":
			if r, ok := event.Data.(*model.GenerationReport); ok {
				report = r
				downloadName := generator.OutputFileName(originalName, r.MonthName)
				token := h.downloads.put(r.OutputPath, downloadName, ano, mes, downloadTTL)
				event.Data = gin.H{
					"relatorio":   r,
					"downloadUrl": fmt.Sprintf("/api/download/%s", token),
				}
			}
		case "erro":
			failure = event.Message
		}

		eventData, err := json.Marshal(event)
		if err != nil {
			continue
		}

		// Formato SSE: data: {json}\n\n
		fmt.Fprintf(c.Writer, "data: %s\n\n", eventData)
		flusher.Flush()
	}

	if logID == 0 {
		return
	}
	if report != nil {
		updated, skipped := 0, 0
		for _, aba := range report.Sheets {
			if aba.Atualizada {
				updated++
			} else {
				skipped++
			}
		}
		_ = h.store.FinishGenerationLog(logID, report.OutputPath,
			len(report.Sheets), updated, skipped, report.CopiesRemoved,
			report.TotalStudents, report.TotalBirthdays, "done", "")
		_ = h.store.SetLastYearMonth(ano, mes)
		_ = h.store.SetLastSource(sourcePath)
	} else {
		_ = h.store.FinishGenerationLog(logID, "", 0, 0, 0, 0, 0, 0, "error", failure)
	}
}
