package model

// Nascimento par dia/mês extraído da coluna de nascimento.
type Nascimento struct {
	Dia int `json:"dia"`
	Mes int `json:"mes"`
}

// Aluno uma linha da lista de chamada de uma turma.
type Aluno struct {
	Nome       string      `json:"nome"`
	Nascimento *Nascimento `json:"nascimento,omitempty"` // nil quando a célula não traz uma data reconhecível
}
