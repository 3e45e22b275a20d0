package planilha

import (
	"fmt"
	"sort"

	"github.com/santosml/igreja-escola/internal/model"
)

// birthdayEntries filtra os aniversariantes do mês alvo e monta as linhas de
// exibição ordenadas por dia crescente, com empate decidido pelo nome
// normalizado.
func birthdayEntries(students []model.Aluno, targetMonth int) []string {
	type entry struct {
		day  int
		key  string
		nome string
	}
	var list []entry
	for _, aluno := range students {
		if aluno.Nascimento == nil || aluno.Nascimento.Mes != targetMonth {
			continue
		}
		list = append(list, entry{
			day:  aluno.Nascimento.Dia,
			key:  Normalize(aluno.Nome),
			nome: aluno.Nome,
		})
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].day != list[j].day {
			return list[i].day < list[j].day
		}
		return list[i].key < list[j].key
	})

	out := make([]string, 0, len(list))
	for _, item := range list {
		out = append(out, fmt.Sprintf("%s - %02d/%02d", item.nome, item.day, targetMonth))
	}
	return out
}

// updateBirthdays posiciona a lista de aniversariantes sob o rótulo próprio,
// texto simples, uma linha por aluno.
func (e *Engine) updateBirthdays(sheet string, entries []string) {
	e.syncLabelBlock(sheet, e.opts.BirthdayLabel, len(entries), func(col, row, idx int) {
		setCell(e.f, sheet, col, row, entries[idx])
	})
}
