package planilha

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/santosml/igreja-escola/internal/model"
)

var digitGroups = regexp.MustCompile(`\d+`)

// collectStudents lê a lista de alunos abaixo do cabeçalho. Três células de
// nome vazias (ou não textuais) em sequência encerram a leitura, assim como
// um texto que normalizado termina em ":" ou contém palavra de seção.
func (e *Engine) collectStudents(sheet string, nameCol, birthCol int) []model.Aluno {
	var students []model.Aluno
	emptyStreak := 0
	last := maxRow(e.f, sheet)

	for row := e.opts.HeaderRow + 1; row <= last; row++ {
		name := strings.TrimSpace(getCell(e.f, sheet, nameCol, row))
		if name == "" || !isTextCell(e.f, sheet, nameCol, row) {
			emptyStreak++
			if emptyStreak >= 3 {
				break
			}
			continue
		}

		norm := Normalize(name)
		if strings.HasSuffix(norm, ":") || containsAny(norm, e.opts.StopKeywords) {
			break
		}

		emptyStreak = 0
		students = append(students, model.Aluno{
			Nome:       name,
			Nascimento: e.parseBirth(sheet, birthCol, row),
		})
	}
	return students
}

// isTextCell descarta células vazias ou com valor bruto numérico: números e
// datas na coluna de nome não contam como aluno.
func isTextCell(f *excelize.File, sheet string, col, row int) bool {
	raw := getCellRaw(f, sheet, col, row)
	if raw == "" {
		return false
	}
	if _, err := strconv.ParseFloat(raw, 64); err == nil {
		return false
	}
	return true
}

// parseBirth interpreta a célula de nascimento: uma célula de data devolve o
// par (dia, mês); texto livre precisa de ao menos dois grupos numéricos, dia
// e mês nessa ordem, dentro dos limites 1-31 e 1-12. Qualquer outra coisa
// (incluindo os marcadores "-" e "--") vira desconhecido.
func (e *Engine) parseBirth(sheet string, col, row int) *model.Nascimento {
	if value, ok := dateCellValue(e.f, sheet, col, row, birthSerialMin); ok {
		return &model.Nascimento{Dia: value.Day(), Mes: int(value.Month())}
	}
	if !isTextCell(e.f, sheet, col, row) {
		return nil
	}

	text := strings.TrimSpace(getCell(e.f, sheet, col, row))
	if text == "" || text == "-" || text == "--" {
		return nil
	}
	nums := digitGroups.FindAllString(text, -1)
	if len(nums) < 2 {
		return nil
	}
	day, _ := strconv.Atoi(nums[0])
	month, _ := strconv.Atoi(nums[1])
	if day < 1 || day > 31 || month < 1 || month > 12 {
		return nil
	}
	return &model.Nascimento{Dia: day, Mes: month}
}
