package planilha

import (
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

const testSheet = "Turma A"

// buildHeaderSheet monta uma aba com cabeçalho na linha 5: rótulos fixos,
// colunas de data a partir de D e células extras opcionais à direita.
func buildHeaderSheet(t *testing.T, dates []time.Time, trailing ...interface{}) *excelize.File {
	t.Helper()

	f := newWorkbook(t, testSheet)
	row := []interface{}{"Nº", "Nome do Aluno", "Nascimento"}
	for _, d := range dates {
		row = append(row, d)
	}
	row = append(row, trailing...)
	setRow(t, f, testSheet, 5, row...)
	setRow(t, f, testSheet, 6, 1, "Ana Souza", "15/03/1990")
	setRow(t, f, testSheet, 7, 2, "Bruno Lima", "02/03/1992")
	return f
}

func TestUpdateHeaderDatesInsertsMissingColumn(t *testing.T) {
	t.Parallel()

	february := Sundays(2024, 2) // 4 domingos
	f := buildHeaderSheet(t, february, "Total")

	if err := f.SetColWidth(testSheet, "D", "G", 6.5); err != nil {
		t.Fatalf("SetColWidth: %v", err)
	}
	fillID, err := f.NewStyle(&excelize.Style{Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}}})
	if err != nil {
		t.Fatalf("NewStyle: %v", err)
	}
	if err := f.SetCellStyle(testSheet, "D6", "G7", fillID); err != nil {
		t.Fatalf("SetCellStyle: %v", err)
	}

	march := Sundays(2024, 3) // 5 domingos
	engine := New(f, DefaultOptions())
	targets := engine.updateHeaderDates(testSheet, march)

	if len(targets) != 5 {
		t.Fatalf("targets = %v, want 5 colunas", targets)
	}
	for i, col := range targets {
		if col != 4+i {
			t.Fatalf("targets = %v, want colunas contíguas a partir de D", targets)
		}
		got := cellDate(t, f, testSheet, col, 5)
		if !got.Equal(march[i]) {
			t.Fatalf("coluna %d = %v, want %v", col, got, march[i])
		}
	}

	// O rótulo "Total" foi empurrado para I e depois apagado como sobra.
	if got := cellText(t, f, testSheet, 9, 5); got != "" {
		t.Fatalf("célula I5 = %q, want vazia", got)
	}

	// A coluna nova herda largura e estilo da vizinha.
	width, err := f.GetColWidth(testSheet, "H")
	if err != nil {
		t.Fatalf("GetColWidth: %v", err)
	}
	if width != 6.5 {
		t.Fatalf("largura da coluna H = %v, want 6.5", width)
	}
	srcStyle, _ := f.GetCellStyle(testSheet, "G6")
	gotStyle, _ := f.GetCellStyle(testSheet, "H6")
	if gotStyle != srcStyle {
		t.Fatalf("estilo de H6 = %d, want o mesmo de G6 (%d)", gotStyle, srcStyle)
	}

	// Todas as células do bloco exibem dia/mês.
	for _, col := range targets {
		styleID, _ := f.GetCellStyle(testSheet, cellName(col, 5))
		style, err := f.GetStyle(styleID)
		if err != nil {
			t.Fatalf("GetStyle: %v", err)
		}
		if style.CustomNumFmt == nil || *style.CustomNumFmt != "dd/mm" {
			t.Fatalf("coluna %d sem formato dd/mm", col)
		}
	}
}

func TestUpdateHeaderDatesBlanksStaleColumns(t *testing.T) {
	t.Parallel()

	march := Sundays(2024, 3) // 5 domingos
	f := buildHeaderSheet(t, march)

	february := Sundays(2024, 2) // 4 domingos
	engine := New(f, DefaultOptions())
	targets := engine.updateHeaderDates(testSheet, february)

	if len(targets) != 4 {
		t.Fatalf("targets = %v, want 4 colunas", targets)
	}
	for i, col := range targets {
		got := cellDate(t, f, testSheet, col, 5)
		if !got.Equal(february[i]) {
			t.Fatalf("coluna %d = %v, want %v", col, got, february[i])
		}
	}
	// A quinta coluna de data do mês anterior foi esvaziada, não removida.
	if got := cellText(t, f, testSheet, 8, 5); got != "" {
		t.Fatalf("célula H5 = %q, want vazia", got)
	}
}

func TestUpdateHeaderDatesIdempotent(t *testing.T) {
	t.Parallel()

	march := Sundays(2024, 3)
	f := buildHeaderSheet(t, Sundays(2024, 2))

	engine := New(f, DefaultOptions())
	first := engine.updateHeaderDates(testSheet, march)
	second := engine.updateHeaderDates(testSheet, march)

	if len(first) != 5 || len(second) != 5 {
		t.Fatalf("contagem de colunas mudou entre execuções: %v depois %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("colunas alvo mudaram: %v depois %v", first, second)
		}
		got := cellDate(t, f, testSheet, second[i], 5)
		if !got.Equal(march[i]) {
			t.Fatalf("coluna %d = %v, want %v", second[i], got, march[i])
		}
	}
}

func TestEnsureDateColumnsNoBlock(t *testing.T) {
	t.Parallel()

	f := newWorkbook(t, testSheet)
	setRow(t, f, testSheet, 5, "Nº", "Nome do Aluno", "Nascimento", "Observações")

	engine := New(f, DefaultOptions())
	if targets := engine.updateHeaderDates(testSheet, Sundays(2024, 3)); targets != nil {
		t.Fatalf("aba sem bloco de datas devolveu %v, want nil", targets)
	}
}

func TestEnsureDateColumnsFillsGap(t *testing.T) {
	t.Parallel()

	f := newWorkbook(t, testSheet)
	// Bloco com lacuna: data em D, texto em E, data em F.
	setRow(t, f, testSheet, 5, "Nº", "Nome do Aluno", "Nascimento",
		date(2024, 2, 4), "X", date(2024, 2, 11))

	sundays := Sundays(2024, 3)[:3]
	engine := New(f, DefaultOptions())
	targets := engine.updateHeaderDates(testSheet, sundays)

	want := []int{4, 5, 6}
	if len(targets) != len(want) {
		t.Fatalf("targets = %v, want %v", targets, want)
	}
	for i, col := range want {
		if targets[i] != col {
			t.Fatalf("targets = %v, want %v", targets, want)
		}
		got := cellDate(t, f, testSheet, col, 5)
		if !got.Equal(sundays[i]) {
			t.Fatalf("coluna %d = %v, want %v", col, got, sundays[i])
		}
	}
	// O texto deslocado e a data antiga viraram sobras e foram apagados.
	if got := cellText(t, f, testSheet, 7, 5); got != "" {
		t.Fatalf("célula G5 = %q, want vazia", got)
	}
	if got := cellText(t, f, testSheet, 8, 5); got != "" {
		t.Fatalf("célula H5 = %q, want vazia", got)
	}
}
