package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/santosml/igreja-escola/internal/config"
	"github.com/santosml/igreja-escola/internal/generator"
	"github.com/santosml/igreja-escola/internal/model"
	"github.com/santosml/igreja-escola/internal/server"
	"github.com/santosml/igreja-escola/internal/util"
)

var (
	configPath = flag.String("config", "config.json", "arquivo de configuração da geração")
	serve      = flag.Bool("serve", false, "inicia o servidor web")
	port       = flag.Int("port", 0, "porta do servidor (config.toml tem prioridade; vale só quando port não foi configurado)")
	devMode    = flag.Bool("dev", false, "modo de desenvolvimento")
	dataDir    = flag.String("dataDir", "", "diretório de dados (sobrepõe o arquivo de configuração)")
	ano        = flag.Int("ano", 0, "ano alvo (sobrepõe o config.json)")
	mes        = flag.Int("mes", 0, "mês alvo (sobrepõe o config.json)")
)

func main() {
	flag.Parse()

	if *serve {
		runServer()
		return
	}

	runOnce()
}

// runOnce gera as fichas uma única vez a partir do config.json
func runOnce() {
	cfg, err := config.LoadConfig()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	req, err := generator.LoadRequest(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Erro: %v\n", err)
		os.Exit(1)
	}
	if *ano > 0 {
		req.TargetYear = *ano
	}
	if *mes > 0 {
		req.TargetMonth = *mes
	}

	gen := generator.New(cfg.EngineOptions())

	var report *model.GenerationReport
	for event := range gen.GenerateStream(req) {
		switch event.Type {
		case "erro":
			fmt.Fprintf(os.Stderr, "Erro: %s\n", event.Message)
			os.Exit(1)
		case "concluido":
			if r, ok := event.Data.(*model.GenerationReport); ok {
				report = r
			}
			fmt.Println(event.Message)
		default:
			fmt.Println(event.Message)
		}
	}

	if report != nil {
		fmt.Printf("Domingos de %s/%d: %d\n", report.MonthName, report.TargetYear, len(report.Sundays))
		fmt.Printf("Alunos: %d | Aniversariantes: %d\n", report.TotalStudents, report.TotalBirthdays)
	}
}

// runServer inicia o servidor web com a interface embutida
func runServer() {
	fmt.Println("==========================================")
	fmt.Println("  Igreja Escola - Fichas de Chamada (EBD)")
	fmt.Println("==========================================")

	// Carrega configuração
	cfg, info, err := config.LoadConfigWithInfo()
	if err != nil {
		log.Printf("Falha ao carregar a configuração, usando padrões: %v", err)
		cfg = config.DefaultConfig()
		info = config.LoadConfigInfo{}
	}

	// Parâmetros de linha de comando sobrepõem a configuração
	if *port > 0 && !info.PortSpecified {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}

	// Garante o diretório de dados
	dir, err := config.EnsureDataDir(cfg)
	if err != nil {
		log.Printf("Falha ao criar o diretório de dados: %v", err)
	} else {
		fmt.Printf("Diretório de dados: %s\n", dir)
	}

	// Cria o servidor
	srv := server.NewServer(cfg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	// Inicia o servidor
	go func() {
		fmt.Printf("Servidor iniciando na porta %d ...\n", cfg.Server.Port)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("Falha ao iniciar o servidor: %v", err)
		}
	}()

	// Abre o navegador
	if !cfg.Server.DevMode {
		fmt.Printf("Abrindo o navegador: %s\n", url)
		if err := util.OpenBrowserWithFallback(url); err != nil {
			fmt.Printf("Não foi possível abrir o navegador, acesse: %s\n", url)
		}
	} else {
		fmt.Printf("Modo de desenvolvimento: acesse %s\n", url)
	}

	fmt.Println("\nPressione Ctrl+C para encerrar...")

	// Aguarda sinal de término
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nEncerrando o serviço...")
}
