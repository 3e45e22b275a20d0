package planilha

import (
	"strings"
	"time"
)

// findLabelCell procura a primeira célula (varrendo por linha) cujo texto
// normalizado seja exatamente o rótulo. Devolve linha e coluna 1-based.
func (e *Engine) findLabelCell(sheet, label string) (row, col int, found bool) {
	rows, err := e.f.GetRows(sheet)
	if err != nil {
		return 0, 0, false
	}
	want := Normalize(label)
	for r, cells := range rows {
		for c, value := range cells {
			if Normalize(value) == want {
				return r + 1, c + 1, true
			}
		}
	}
	return 0, 0, false
}

// syncLabelBlock redimensiona o bloco de linhas sob o rótulo para conter
// exatamente count valores. O bloco termina na primeira célula abaixo, na
// mesma coluna, cujo texto normalizado termina em ":" e difere do rótulo
// (ou no fim da aba). Blocos curtos crescem por inserção de linhas; os
// valores são gravados pelo write; linhas que sobraram de listas maiores
// são esvaziadas. Sem o rótulo na aba, nada é feito.
func (e *Engine) syncLabelBlock(sheet, label string, count int, write func(col, row, idx int)) {
	labelRow, labelCol, found := e.findLabelCell(sheet, label)
	if !found {
		return
	}
	normLabel := Normalize(label)

	nextRow := labelRow + 1
	last := maxRow(e.f, sheet)
	for nextRow <= last {
		norm := Normalize(getCell(e.f, sheet, labelCol, nextRow))
		if strings.HasSuffix(norm, ":") && norm != normLabel {
			break
		}
		nextRow++
	}

	available := nextRow - labelRow - 1
	if available < count {
		_ = e.f.InsertRows(sheet, nextRow, count-available)
		nextRow += count - available
	}

	for i := 0; i < count; i++ {
		write(labelCol, labelRow+1+i, i)
	}
	for row := labelRow + 1 + count; row < nextRow; row++ {
		setCell(e.f, sheet, labelCol, row, "")
	}
}

// updateSectionDates preenche a seção rotulada com os domingos do mês, um
// por linha, no formato dd/mm.
func (e *Engine) updateSectionDates(sheet, label string, sundays []time.Time) {
	e.syncLabelBlock(sheet, label, len(sundays), func(col, row, idx int) {
		setDateCell(e.f, sheet, col, row, sundays[idx])
	})
}
