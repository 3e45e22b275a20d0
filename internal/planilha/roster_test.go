package planilha

import (
	"testing"
)

func TestFindHeaderColumns(t *testing.T) {
	t.Parallel()

	f := newWorkbook(t, testSheet)
	setRow(t, f, testSheet, 5, "Nº", "Nome do Aluno", "Data de Nascimento", date(2024, 3, 3))

	engine := New(f, DefaultOptions())
	nameCol, birthCol := engine.findHeaderColumns(testSheet)
	if nameCol != 2 || birthCol != 3 {
		t.Fatalf("colunas = (%d, %d), want (2, 3)", nameCol, birthCol)
	}
}

func TestFindHeaderColumnsMissing(t *testing.T) {
	t.Parallel()

	f := newWorkbook(t, testSheet)
	setRow(t, f, testSheet, 5, "Nº", "Aluno", "Data", date(2024, 3, 3))

	engine := New(f, DefaultOptions())
	nameCol, birthCol := engine.findHeaderColumns(testSheet)
	if nameCol != 0 || birthCol != 0 {
		t.Fatalf("colunas = (%d, %d), want (0, 0)", nameCol, birthCol)
	}
}

func TestCollectStudentsStopsOnSectionKeyword(t *testing.T) {
	t.Parallel()

	f := newWorkbook(t, testSheet)
	setRow(t, f, testSheet, 5, "Nº", "Nome do Aluno", "Nascimento")
	setRow(t, f, testSheet, 6, 1, "Ana Souza", "15/03/1990")
	setRow(t, f, testSheet, 7, 2, "Bruno Lima", "02/03/1992")
	setRow(t, f, testSheet, 8, "", "Total de Presentes")
	setRow(t, f, testSheet, 9, "", "Carla Dias", "01/01/2000")

	engine := New(f, DefaultOptions())
	students := engine.collectStudents(testSheet, 2, 3)

	if len(students) != 2 {
		t.Fatalf("%d alunos, want 2 (a leitura para na linha de totais)", len(students))
	}
	if students[0].Nome != "Ana Souza" || students[1].Nome != "Bruno Lima" {
		t.Fatalf("alunos = %v", students)
	}
}

func TestCollectStudentsStopsOnLabelRow(t *testing.T) {
	t.Parallel()

	f := newWorkbook(t, testSheet)
	setRow(t, f, testSheet, 5, "Nº", "Nome do Aluno", "Nascimento")
	setRow(t, f, testSheet, 6, 1, "Ana Souza", "15/03/1990")
	setRow(t, f, testSheet, 7, "", "Observações:")
	setRow(t, f, testSheet, 8, "", "Daniel Rocha", "09/09/1999")

	engine := New(f, DefaultOptions())
	students := engine.collectStudents(testSheet, 2, 3)

	if len(students) != 1 {
		t.Fatalf("%d alunos, want 1 (linha terminada em dois-pontos encerra)", len(students))
	}
}

func TestCollectStudentsStopsAfterThreeEmpties(t *testing.T) {
	t.Parallel()

	f := newWorkbook(t, testSheet)
	setRow(t, f, testSheet, 5, "Nº", "Nome do Aluno", "Nascimento")
	setRow(t, f, testSheet, 6, 1, "Ana Souza", "15/03/1990")
	// Linhas 7 a 9 sem nome.
	setRow(t, f, testSheet, 10, "", "Perdido Na Planilha", "01/01/2001")

	engine := New(f, DefaultOptions())
	students := engine.collectStudents(testSheet, 2, 3)

	if len(students) != 1 {
		t.Fatalf("%d alunos, want 1 (três vazios encerram a leitura)", len(students))
	}
	if students[0].Nome != "Ana Souza" {
		t.Fatalf("aluno = %q, want Ana Souza", students[0].Nome)
	}
}

func TestCollectStudentsIgnoresNumericCells(t *testing.T) {
	t.Parallel()

	f := newWorkbook(t, testSheet)
	setRow(t, f, testSheet, 5, "Nº", "Nome do Aluno", "Nascimento")
	setRow(t, f, testSheet, 6, 1, "Ana Souza", "15/03/1990")
	setRow(t, f, testSheet, 7, 2, 12345, "")
	setRow(t, f, testSheet, 8, 3, "Bruno Lima", "02/03/1992")

	engine := New(f, DefaultOptions())
	students := engine.collectStudents(testSheet, 2, 3)

	if len(students) != 2 {
		t.Fatalf("%d alunos, want 2 (célula numérica não é nome)", len(students))
	}
	if students[1].Nome != "Bruno Lima" {
		t.Fatalf("segundo aluno = %q, want Bruno Lima", students[1].Nome)
	}
}

func TestParseBirth(t *testing.T) {
	t.Parallel()

	f := newWorkbook(t, testSheet)
	// Uma célula por linha na coluna C, cobrindo os formatos aceitos.
	cells := []interface{}{
		date(1990, 3, 15), // data nativa
		"15/03/1990",      // texto com dia e mês
		"5-12",            // separador alternativo
		"--",              // marcador de desconhecido
		"-",
		"abc",
		"99/99",
		"12",      // um único grupo numérico
		31.5,      // número comum, não é data
		"31/12/2000",
	}
	for i, v := range cells {
		setRow(t, f, testSheet, i+1, "", "", v)
	}

	type pair struct{ dia, mes int }
	want := []*pair{
		{15, 3},
		{15, 3},
		{5, 12},
		nil,
		nil,
		nil,
		nil,
		nil,
		nil,
		{31, 12},
	}

	engine := New(f, DefaultOptions())
	for i, w := range want {
		got := engine.parseBirth(testSheet, 3, i+1)
		if w == nil {
			if got != nil {
				t.Fatalf("linha %d: parseBirth = %+v, want nil", i+1, got)
			}
			continue
		}
		if got == nil || got.Dia != w.dia || got.Mes != w.mes {
			t.Fatalf("linha %d: parseBirth = %+v, want %d/%d", i+1, got, w.dia, w.mes)
		}
	}
}
