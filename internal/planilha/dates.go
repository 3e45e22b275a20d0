package planilha

import (
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
)

// Formato de exibição aplicado a todas as datas gravadas.
const dayMonthFormat = "dd/mm"

// Janelas de serial aceitas ao reconhecer células de data. Números fora da
// janela são contagens ou códigos, não datas.
const (
	birthSerialMin  = 366.0   // 1901: limite inferior para datas de nascimento
	headerSerialMin = 20000.0 // 1954: datas de chamada são sempre recentes
	serialMax       = 80000.0 // ~2119
)

// dateCellValue devolve a data guardada na célula quando ela é de fato uma
// célula de data: valor bruto numérico com formato de data aplicado (o valor
// formatado difere do bruto), ou uma data ISO nativa. Texto que apenas parece
// data ("03/03/2024" digitado) não conta.
func dateCellValue(f *excelize.File, sheet string, col, row int, minSerial float64) (time.Time, bool) {
	raw := getCellRaw(f, sheet, col, row)
	if raw == "" {
		return time.Time{}, false
	}
	serial, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		if cellType, typeErr := f.GetCellType(sheet, cellName(col, row)); typeErr != nil || cellType != excelize.CellTypeDate {
			return time.Time{}, false
		}
		return parseISODate(raw)
	}
	if raw == getCell(f, sheet, col, row) {
		// Sem formato numérico aplicado: número comum.
		return time.Time{}, false
	}
	if serial < minSerial || serial > serialMax {
		return time.Time{}, false
	}
	value, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return time.Time{}, false
	}
	return value, true
}

// parseISODate cobre células armazenadas como data ISO (tipo "d" do xlsx).
func parseISODate(raw string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02"} {
		if value, err := time.Parse(layout, raw); err == nil {
			return value, true
		}
	}
	return time.Time{}, false
}

// setDateCell grava a data com formato de exibição dd/mm, preservando o
// restante do estilo que a célula já tinha (bordas, preenchimento, fonte).
func setDateCell(f *excelize.File, sheet string, col, row int, value time.Time) {
	cell := cellName(col, row)
	_ = f.SetCellValue(sheet, cell, value)

	styleID, err := f.GetCellStyle(sheet, cell)
	if err != nil {
		return
	}
	style, err := f.GetStyle(styleID)
	if err != nil || style == nil {
		style = &excelize.Style{}
	}
	format := dayMonthFormat
	style.CustomNumFmt = &format
	if newID, err := f.NewStyle(style); err == nil {
		_ = f.SetCellStyle(sheet, cell, cell, newID)
	}
}
