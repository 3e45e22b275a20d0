package planilha

import (
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

// newWorkbook cria uma planilha em memória com uma única aba nomeada.
func newWorkbook(t *testing.T, sheet string) *excelize.File {
	t.Helper()

	f := excelize.NewFile()
	defaultSheet := f.GetSheetName(f.GetActiveSheetIndex())
	if defaultSheet != sheet {
		if _, err := f.NewSheet(sheet); err != nil {
			t.Fatalf("NewSheet %s: %v", sheet, err)
		}
		if err := f.DeleteSheet(defaultSheet); err != nil {
			t.Fatalf("DeleteSheet %s: %v", defaultSheet, err)
		}
	}
	return f
}

// setRow grava uma linha inteira a partir da coluna A.
func setRow(t *testing.T, f *excelize.File, sheet string, row int, values ...interface{}) {
	t.Helper()

	cell := fmt.Sprintf("A%d", row)
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		t.Fatalf("SetSheetRow %s linha %d: %v", sheet, row, err)
	}
}

// date atalho para uma data com hora zerada.
func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// cellDate lê a célula como data via serial do Excel.
func cellDate(t *testing.T, f *excelize.File, sheet string, col, row int) time.Time {
	t.Helper()

	raw, err := f.GetCellValue(sheet, cellName(col, row), excelize.Options{RawCellValue: true})
	if err != nil {
		t.Fatalf("GetCellValue %s: %v", cellName(col, row), err)
	}
	serial, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		t.Fatalf("célula %s não contém data, valor bruto %q", cellName(col, row), raw)
	}
	value, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		t.Fatalf("serial inválido em %s: %v", cellName(col, row), err)
	}
	return value
}

// cellText lê o valor formatado da célula.
func cellText(t *testing.T, f *excelize.File, sheet string, col, row int) string {
	t.Helper()

	value, err := f.GetCellValue(sheet, cellName(col, row))
	if err != nil {
		t.Fatalf("GetCellValue %s: %v", cellName(col, row), err)
	}
	return value
}
