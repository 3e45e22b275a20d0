package planilha

import (
	"sort"
	"time"
)

// ensureColumnStyle copia a largura e o estilo de todas as células de uma
// coluna para outra. Usado ao criar colunas novas, para que fiquem iguais às
// vizinhas.
func (e *Engine) ensureColumnStyle(sheet string, srcCol, destCol int) {
	if width, err := e.f.GetColWidth(sheet, colName(srcCol)); err == nil {
		_ = e.f.SetColWidth(sheet, colName(destCol), colName(destCol), width)
	}
	last := maxRow(e.f, sheet)
	for row := 1; row <= last; row++ {
		styleID, err := e.f.GetCellStyle(sheet, cellName(srcCol, row))
		if err != nil {
			continue
		}
		dest := cellName(destCol, row)
		_ = e.f.SetCellStyle(sheet, dest, dest, styleID)
	}
}

// ensureDateColumns garante um bloco contíguo de colunas de data no
// cabeçalho com exatamente len(sundays) colunas, ancorado na primeira coluna
// de data existente. Devolve as colunas alvo em ordem crescente; vazio
// quando a aba não tem bloco de datas (não é uma ficha de chamada).
func (e *Engine) ensureDateColumns(sheet string, sundays []time.Time) []int {
	headerRow := e.opts.HeaderRow

	var existing []int
	width := rowWidth(e.f, sheet, headerRow)
	for col := 1; col <= width; col++ {
		if _, ok := dateCellValue(e.f, sheet, col, headerRow, headerSerialMin); ok {
			existing = append(existing, col)
		}
	}
	if len(existing) == 0 {
		return nil
	}

	first := existing[0]
	needed := make([]int, len(sundays))
	for i := range sundays {
		needed[i] = first + i
	}

	// Preenche lacunas inserindo colunas, renumerando os índices existentes
	// a cada inserção para manter o bloco contíguo.
	for _, col := range needed {
		if containsInt(existing, col) {
			continue
		}
		_ = e.f.InsertCols(sheet, colName(col), 1)
		for i, c := range existing {
			if c >= col {
				existing[i] = c + 1
			}
		}
		existing = append(existing, col)
		sort.Ints(existing)
		e.ensureColumnStyle(sheet, col-1, col)
	}

	// Se o bloco original tinha menos colunas que o necessário, acrescenta à
	// direita copiando o estilo da coluna anterior.
	for len(needed) > len(existing) {
		insert := existing[len(existing)-1] + 1
		_ = e.f.InsertCols(sheet, colName(insert), 1)
		e.ensureColumnStyle(sheet, insert-1, insert)
		existing = append(existing, insert)
	}

	return needed
}

// updateHeaderDates alinha o bloco de datas e grava os domingos no
// cabeçalho. Devolve as colunas alvo, vazio quando a aba não tem chamada.
func (e *Engine) updateHeaderDates(sheet string, sundays []time.Time) []int {
	targets := e.ensureDateColumns(sheet, sundays)
	if len(targets) == 0 {
		return nil
	}

	for i, col := range targets {
		setDateCell(e.f, sheet, col, e.opts.HeaderRow, sundays[i])
	}
	e.clearExtraHeaderColumns(sheet, targets)

	// Garante que a última coluna do bloco fique com o mesmo estilo da
	// anterior mesmo quando nenhuma inserção aconteceu nesta rodada.
	lastCol := targets[len(targets)-1]
	prevCol := lastCol
	if len(targets) >= 2 {
		prevCol = targets[len(targets)-2]
	}
	e.ensureColumnStyle(sheet, prevCol, lastCol)

	return targets
}

// clearExtraHeaderColumns apaga rótulos de cabeçalho que sobraram à direita
// do bloco (meses anteriores com mais domingos). Para na primeira célula
// vazia.
func (e *Engine) clearExtraHeaderColumns(sheet string, targets []int) {
	col := targets[len(targets)-1] + 1
	for {
		if getCell(e.f, sheet, col, e.opts.HeaderRow) == "" {
			break
		}
		setCell(e.f, sheet, col, e.opts.HeaderRow, "")
		col++
	}
}
