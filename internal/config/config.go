package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/santosml/igreja-escola/internal/planilha"
)

// AppConfig configuração da aplicação
type AppConfig struct {
	Server   ServerConfig   `toml:"server"`
	Data     DataConfig     `toml:"data"`
	Planilha PlanilhaConfig `toml:"planilha"`
}

// ServerConfig configuração do servidor
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig configuração dos diretórios de dados
type DataConfig struct {
	DataDir string `toml:"data_dir"`
}

// PlanilhaConfig parâmetros de layout das fichas. Campos vazios usam o
// layout padrão da EBD.
type PlanilhaConfig struct {
	HeaderRow     int      `toml:"header_row"`
	SectionLabels []string `toml:"section_labels"`
	BirthdayLabel string   `toml:"birthday_label"`
	StopKeywords  []string `toml:"stop_keywords"`
}

// LoadConfigInfo metadados do carregamento da configuração
type LoadConfigInfo struct {
	PortSpecified bool
}

// DefaultConfig configuração padrão
func DefaultConfig() *AppConfig {
	opts := planilha.DefaultOptions()
	return &AppConfig{
		Server: ServerConfig{
			Port:    8732,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir: "data",
		},
		Planilha: PlanilhaConfig{
			HeaderRow:     opts.HeaderRow,
			SectionLabels: opts.SectionLabels,
			BirthdayLabel: opts.BirthdayLabel,
			StopKeywords:  opts.StopKeywords,
		},
	}
}

// EngineOptions converte a configuração nos parâmetros do motor de
// planilhas, completando campos vazios com o layout padrão.
func (c *AppConfig) EngineOptions() planilha.Options {
	opts := planilha.DefaultOptions()
	if c.Planilha.HeaderRow > 0 {
		opts.HeaderRow = c.Planilha.HeaderRow
	}
	if len(c.Planilha.SectionLabels) > 0 {
		opts.SectionLabels = c.Planilha.SectionLabels
	}
	if c.Planilha.BirthdayLabel != "" {
		opts.BirthdayLabel = c.Planilha.BirthdayLabel
	}
	if len(c.Planilha.StopKeywords) > 0 {
		opts.StopKeywords = c.Planilha.StopKeywords
	}
	return opts
}

func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}

	serverAny, ok := raw["server"]
	if !ok {
		return false
	}

	serverMap, ok := serverAny.(map[string]any)
	if !ok {
		return false
	}

	_, ok = serverMap["port"]
	return ok
}

// GetExeDir devolve o diretório do executável
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfigWithInfo carrega o config.toml e devolve os metadados do
// carregamento. O arquivo fica ao lado do executável; sem ele, vale a
// configuração padrão.
func LoadConfigWithInfo() (*AppConfig, LoadConfigInfo, error) {
	info := LoadConfigInfo{}
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		// Sem o diretório do executável, usa o diretório corrente.
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Arquivo de configuração ausente, segue com o padrão.
			return config, info, nil
		}
		return nil, info, err
	}

	info.PortSpecified = isPortSpecifiedInToml(data)

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, info, err
	}

	// Variável de ambiente sobrepõe o diretório de dados (testes e execução
	// local).
	if v := os.Getenv("IGREJA_DATA_DIR"); v != "" {
		config.Data.DataDir = v
	}

	return config, info, nil
}

// LoadConfig carrega a configuração do config.toml
func LoadConfig() (*AppConfig, error) {
	config, _, err := LoadConfigWithInfo()
	return config, err
}

// SaveConfig grava a configuração no config.toml
func SaveConfig(config *AppConfig) error {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// EnsureDataDir garante o diretório de dados e seus subdiretórios
// O diretório fica ao lado do executável quando o caminho é relativo
func EnsureDataDir(config *AppConfig) (string, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	dataDir := config.Data.DataDir
	if !filepath.IsAbs(dataDir) {
		dataDir = filepath.Join(exeDir, dataDir)
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	subdirs := []string{"uploads", "exports"}
	for _, subdir := range subdirs {
		path := filepath.Join(dataDir, subdir)
		if err := os.MkdirAll(path, 0755); err != nil {
			return "", err
		}
	}

	return dataDir, nil
}

// GetDataPath monta o caminho de um arquivo dentro do diretório de dados
func GetDataPath(config *AppConfig, subdir, filename string) string {
	if filepath.IsAbs(config.Data.DataDir) {
		return filepath.Join(config.Data.DataDir, subdir, filename)
	}
	exeDir, _ := GetExeDir()
	if exeDir == "" {
		exeDir = "."
	}
	return filepath.Join(exeDir, config.Data.DataDir, subdir, filename)
}
