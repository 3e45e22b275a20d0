package planilha

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// cellName converte (coluna, linha) 1-based para o endereço A1.
func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

// colName converte o índice 1-based da coluna para a letra (1 -> "A").
func colName(col int) string {
	name, _ := excelize.ColumnNumberToName(col)
	return name
}

// getCell devolve o valor formatado da célula, vazio quando inexistente.
func getCell(f *excelize.File, sheet string, col, row int) string {
	value, _ := f.GetCellValue(sheet, cellName(col, row))
	return value
}

// getCellRaw devolve o valor bruto da célula, sem aplicar formato numérico.
// Datas aparecem como o serial do Excel.
func getCellRaw(f *excelize.File, sheet string, col, row int) string {
	value, _ := f.GetCellValue(sheet, cellName(col, row), excelize.Options{RawCellValue: true})
	return value
}

// setCell grava um valor simples, ignorando erros de coordenada.
func setCell(f *excelize.File, sheet string, col, row int, value interface{}) {
	_ = f.SetCellValue(sheet, cellName(col, row), value)
}

// maxRow última linha com conteúdo na aba.
func maxRow(f *excelize.File, sheet string) int {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return 0
	}
	return len(rows)
}

// rowWidth última coluna com conteúdo em uma linha específica.
func rowWidth(f *excelize.File, sheet string, row int) int {
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < row {
		return 0
	}
	return len(rows[row-1])
}

// containsAny verifica se o texto contém algum dos fragmentos.
func containsAny(text string, fragments []string) bool {
	for _, fragment := range fragments {
		if strings.Contains(text, fragment) {
			return true
		}
	}
	return false
}

// containsInt verifica presença em uma lista de índices.
func containsInt(list []int, value int) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
