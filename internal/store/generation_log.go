package store

import (
	"database/sql"
	"fmt"
)

// GenerationLogEntry linha do histórico de gerações
type GenerationLogEntry struct {
	ID             int64  `json:"id"`
	RunID          string `json:"runId"`
	SourceFile     string `json:"arquivoOrigem"`
	TargetYear     int    `json:"ano"`
	TargetMonth    int    `json:"mes"`
	OutputPath     string `json:"arquivoGerado,omitempty"`
	TotalSheets    int    `json:"totalAbas"`
	UpdatedSheets  int    `json:"abasAtualizadas"`
	SkippedSheets  int    `json:"abasIgnoradas"`
	RemovedCopies  int    `json:"copiasRemovidas"`
	TotalStudents  int    `json:"totalAlunos"`
	TotalBirthdays int    `json:"totalAniversariantes"`
	Status         string `json:"status"`
	ErrorMessage   string `json:"mensagemErro,omitempty"`
	StartedAt      string `json:"iniciadoEm"`
	CompletedAt    string `json:"concluidoEm,omitempty"`
}

// CreateGenerationLog registra o início de uma geração e devolve o id
func (s *Store) CreateGenerationLog(runID, sourceFile string, targetYear, targetMonth int) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO generation_logs (run_id, source_file, target_year, target_month, status)
		VALUES (?, ?, ?, ?, 'processing')
	`, runID, sourceFile, targetYear, targetMonth)
	if err != nil {
		return 0, fmt.Errorf("failed to create generation log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get generation log id: %w", err)
	}
	return id, nil
}

// FinishGenerationLog completa o registro de uma geração
func (s *Store) FinishGenerationLog(id int64, outputPath string, totalSheets, updatedSheets, skippedSheets, removedCopies, totalStudents, totalBirthdays int, status, errorMessage string) error {
	_, err := s.db.Exec(`
		UPDATE generation_logs SET
			output_path = ?,
			total_sheets = ?,
			updated_sheets = ?,
			skipped_sheets = ?,
			removed_copies = ?,
			total_students = ?,
			total_birthdays = ?,
			status = ?,
			error_message = ?,
			completed_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, outputPath, totalSheets, updatedSheets, skippedSheets, removedCopies, totalStudents, totalBirthdays, status, errorMessage, id)
	if err != nil {
		return fmt.Errorf("failed to update generation log: %w", err)
	}
	return nil
}

// ListRecentGenerations devolve as gerações mais recentes primeiro
func (s *Store) ListRecentGenerations(limit int) ([]GenerationLogEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, run_id, source_file, target_year, target_month, output_path,
			total_sheets, updated_sheets, skipped_sheets, removed_copies,
			total_students, total_birthdays, status, error_message,
			started_at, completed_at
		FROM generation_logs
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list generation logs: %w", err)
	}
	defer rows.Close()

	var entries []GenerationLogEntry
	for rows.Next() {
		var entry GenerationLogEntry
		var outputPath, errorMessage, completedAt sql.NullString
		if err := rows.Scan(
			&entry.ID, &entry.RunID, &entry.SourceFile, &entry.TargetYear, &entry.TargetMonth,
			&outputPath, &entry.TotalSheets, &entry.UpdatedSheets, &entry.SkippedSheets,
			&entry.RemovedCopies, &entry.TotalStudents, &entry.TotalBirthdays,
			&entry.Status, &errorMessage, &entry.StartedAt, &completedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan generation log: %w", err)
		}
		entry.OutputPath = outputPath.String
		entry.ErrorMessage = errorMessage.String
		entry.CompletedAt = completedAt.String
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// CountGenerations total de gerações registradas
func (s *Store) CountGenerations() (int, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM generation_logs").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count generation logs: %w", err)
	}
	return count, nil
}
