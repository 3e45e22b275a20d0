package generator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/santosml/igreja-escola/internal/model"
)

// LoadRequest lê o pedido de geração de um config.json. Caminhos relativos
// (arquivo de origem e diretório de saída) são resolvidos contra o diretório
// do próprio arquivo de configuração, não contra o diretório corrente.
func LoadRequest(path string) (model.GenerationRequest, error) {
	var req model.GenerationRequest

	data, err := os.ReadFile(path)
	if err != nil {
		return req, fmt.Errorf("falha ao ler o arquivo de configuração: %w", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return req, fmt.Errorf("falha ao interpretar o arquivo de configuração: %w", err)
	}

	for _, field := range []string{"source_file", "target_year", "target_month"} {
		if _, ok := raw[field]; !ok {
			return req, fmt.Errorf("%w: campo ausente '%s'", ErrIncompleteConfig, field)
		}
	}

	req.SourceFile = stringValue(raw["source_file"])
	if req.TargetYear, err = intValue(raw["target_year"]); err != nil {
		return req, err
	}
	if req.TargetMonth, err = intValue(raw["target_month"]); err != nil {
		return req, err
	}
	if req.TargetMonth < 1 || req.TargetMonth > 12 {
		return req, ErrMonthOutOfRange
	}

	req.OutputDirectory = "."
	if value, ok := raw["output_directory"]; ok {
		req.OutputDirectory = stringValue(value)
	}

	base := filepath.Dir(path)
	req.SourceFile = resolvePath(base, req.SourceFile)
	req.OutputDirectory = resolvePath(base, req.OutputDirectory)
	return req, nil
}

func stringValue(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// intValue aceita números JSON (truncando a parte fracionária) e texto com
// dígitos. Qualquer outra coisa vira ErrNonNumeric.
func intValue(v interface{}) (int, error) {
	switch value := v.(type) {
	case float64:
		return int(value), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return 0, ErrNonNumeric
		}
		return n, nil
	default:
		return 0, ErrNonNumeric
	}
}

func resolvePath(base, path string) string {
	if !filepath.IsAbs(path) {
		path = filepath.Join(base, path)
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
