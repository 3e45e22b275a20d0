package store

import (
	"database/sql"
	"fmt"
	"strconv"
)

// GetConfig lê um item de configuração
func (s *Store) GetConfig(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM config WHERE key = ?", key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("config key not found: %s", key)
		}
		return "", err
	}
	return value, nil
}

// GetConfigInt lê um item de configuração inteiro
func (s *Store) GetConfigInt(key string) (int, error) {
	value, err := s.GetConfig(key)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(value)
}

// SetConfig grava um item de configuração
func (s *Store) SetConfig(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO config (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = ?, updated_at = CURRENT_TIMESTAMP
	`, key, value, value)
	return err
}

// SetConfigInt grava um item de configuração inteiro
func (s *Store) SetConfigInt(key string, value int) error {
	return s.SetConfig(key, strconv.Itoa(value))
}

// GetLastYearMonth devolve o ano e mês da última geração
func (s *Store) GetLastYearMonth() (year, month int, err error) {
	year, err = s.GetConfigInt("last_year")
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get last_year: %w", err)
	}

	month, err = s.GetConfigInt("last_month")
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get last_month: %w", err)
	}

	return year, month, nil
}

// SetLastYearMonth registra o ano e mês da última geração
func (s *Store) SetLastYearMonth(year, month int) error {
	if err := s.SetConfigInt("last_year", year); err != nil {
		return err
	}
	if err := s.SetConfigInt("last_month", month); err != nil {
		return err
	}
	return nil
}

// GetLastSource devolve o caminho da última planilha base usada
func (s *Store) GetLastSource() (string, error) {
	return s.GetConfig("last_source")
}

// SetLastSource registra o caminho da última planilha base usada
func (s *Store) SetLastSource(path string) error {
	return s.SetConfig("last_source", path)
}
