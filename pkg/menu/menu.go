package menu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"agromon/pkg/field/service"
	"agromon/pkg/report"
	"agromon/pkg/stress"
)

// Menu drives the single interactive control loop. One operation runs
// to completion before the next; prompts block until the operator
// answers or the input closes.
type Menu struct {
	sc       *bufio.Scanner
	out      io.Writer
	svc      service.FieldService
	rules    *stress.Table
	xlsxPath string
}

func New(in io.Reader, out io.Writer, svc service.FieldService, rules *stress.Table, xlsxPath string) *Menu {
	return &Menu{sc: bufio.NewScanner(in), out: out, svc: svc, rules: rules, xlsxPath: xlsxPath}
}

// Run loops until the operator picks exit or stdin closes.
func (m *Menu) Run() {
	for {
		fmt.Fprint(m.out, "\n==============================\n")
		fmt.Fprint(m.out, "  SISTEMA AGROTECH - FEIJÃO\n")
		fmt.Fprint(m.out, "==============================\n")
		fmt.Fprint(m.out, "1. Cadastrar Novo Talhão e Monitorar\n")
		fmt.Fprint(m.out, "2. Gerar Relatório de Alertas\n")
		fmt.Fprint(m.out, "3. Exportar Relatório (XLSX)\n")
		fmt.Fprint(m.out, "4. Sair\n")

		choice, ok := m.prompt("Escolha uma opção: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			m.register()
		case "2":
			fmt.Fprint(m.out, report.Render(m.svc.Records()))
		case "3":
			m.export()
		case "4":
			fmt.Fprint(m.out, "Encerrando o sistema de monitoramento. Até breve!\n")
			return
		default:
			fmt.Fprint(m.out, "Opção inválida. Tente novamente.\n")
		}
	}
}

func (m *Menu) register() {
	fmt.Fprint(m.out, "\n--- CADASTRO DE NOVO TALHÃO ---\n")

	area, ok := m.promptPositiveFloat("Área do Talhão (em hectares): ",
		"Entrada inválida. Digite um número positivo para a área.")
	if !ok {
		return
	}
	yield, ok := m.promptPositiveFloat("Produtividade Esperada (em Toneladas): ",
		"Entrada inválida. Digite um número positivo para a produtividade.")
	if !ok {
		return
	}
	cultivar, ok := m.prompt("Tipo de Feijão (Ex: Carioca, Preto): ")
	if !ok {
		return
	}
	level, ok := m.promptStressLevel()
	if !ok {
		return
	}

	rec, err := m.svc.Register(service.RegisterInput{
		AreaHectares:      area,
		ExpectedYieldTons: yield,
		Cultivar:          cultivar,
		StressLevel:       level,
	})
	if err != nil {
		fmt.Fprintf(m.out, "ERRO ao registrar talhão: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "\n[SUCESSO] Talhão %d cadastrado e monitorado.\n", rec.ID)
}

func (m *Menu) export() {
	records := m.svc.Records()
	if len(records) == 0 {
		fmt.Fprintf(m.out, "\n%s\n", report.EmptyNotice)
		return
	}
	if err := report.WriteXLSX(records, m.xlsxPath); err != nil {
		fmt.Fprintf(m.out, "ERRO ao exportar relatório: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "Relatório exportado para %s\n", m.xlsxPath)
}

// prompt reads one trimmed line; ok=false means the input closed.
func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.sc.Text()), true
}

func (m *Menu) promptPositiveFloat(label, invalidMsg string) (float64, bool) {
	for {
		raw, ok := m.prompt(label)
		if !ok {
			return 0, false
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v <= 0 {
			fmt.Fprintln(m.out, invalidMsg)
			continue
		}
		return v, true
	}
}

func (m *Menu) promptStressLevel() (string, bool) {
	levels := strings.Join(m.rules.Levels(), ", ")
	for {
		raw, ok := m.prompt(fmt.Sprintf("Nível de Estresse (%s): ", levels))
		if !ok {
			return "", false
		}
		if m.rules.HasLevel(raw) {
			return stress.Normalize(raw), true
		}
		fmt.Fprintf(m.out, "Nível inválido. Escolha entre: %s\n", levels)
	}
}
