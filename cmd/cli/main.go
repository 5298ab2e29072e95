package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/marcelofdiniz/paysim/internal/adapter/http/dto"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "paysim-cli",
		Short: "paysim CLI tool",
		Long:  `A command line interface for running 99Pay yield simulations against the paysim API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the paysim API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(simulateCmd())
	rootCmd.AddCommand(compareCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func simulateCmd() *cobra.Command {
	var (
		principal  string
		days       int
		rate       string
		bonus      string
		showLedger bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a yield simulation",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := buildSimulateRequest(principal, days, rate, bonus, showLedger)
			if err != nil {
				return err
			}

			var resp dto.SimulationResponse
			if err := postJSON("/api/v1/simulations", req, &resp); err != nil {
				return err
			}

			printSimulation(&resp, showLedger)
			return nil
		},
	}

	cmd.Flags().StringVar(&principal, "principal", "", "Initial deposit (required), e.g. 5000.00")
	cmd.Flags().IntVar(&days, "days", 0, "Investment horizon in days (required)")
	cmd.Flags().StringVar(&rate, "rate", "", "Annual CDI rate in percent (default: service default)")
	cmd.Flags().StringVar(&bonus, "bonus", "", "Tier-1 bonus in percentage points, e.g. 10 for 120%")
	cmd.Flags().BoolVar(&showLedger, "ledger", false, "Print the full daily ledger")
	cmd.MarkFlagRequired("principal")
	cmd.MarkFlagRequired("days")

	return cmd
}

func compareCmd() *cobra.Command {
	var (
		principal string
		days      int
		rate      string
		bonuses   []string
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare bonus scenarios side by side",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := buildCompareRequest(principal, days, rate, bonuses)
			if err != nil {
				return err
			}

			var resp dto.ComparisonResponse
			if err := postJSON("/api/v1/simulations/compare", req, &resp); err != nil {
				return err
			}

			printComparison(&resp)
			return nil
		},
	}

	cmd.Flags().StringVar(&principal, "principal", "", "Initial deposit (required)")
	cmd.Flags().IntVar(&days, "days", 0, "Investment horizon in days (required)")
	cmd.Flags().StringVar(&rate, "rate", "", "Annual CDI rate in percent (default: service default)")
	cmd.Flags().StringSliceVar(&bonuses, "bonus", nil, "Bonus variations to compare, e.g. --bonus 10,20")
	cmd.MarkFlagRequired("principal")
	cmd.MarkFlagRequired("days")

	return cmd
}

func buildSimulateRequest(principal string, days int, rate, bonus string, includeLedger bool) (*dto.RunSimulationRequest, error) {
	p, err := decimal.NewFromString(principal)
	if err != nil {
		return nil, fmt.Errorf("invalid principal %q: %w", principal, err)
	}

	req := &dto.RunSimulationRequest{
		Principal:     &p,
		Days:          &days,
		IncludeLedger: includeLedger,
	}

	if rate != "" {
		r, err := decimal.NewFromString(rate)
		if err != nil {
			return nil, fmt.Errorf("invalid rate %q: %w", rate, err)
		}
		req.AnnualRatePercent = &r
	}
	if bonus != "" {
		b, err := decimal.NewFromString(bonus)
		if err != nil {
			return nil, fmt.Errorf("invalid bonus %q: %w", bonus, err)
		}
		req.BonusPercent = &b
	}

	return req, nil
}

func buildCompareRequest(principal string, days int, rate string, bonuses []string) (*dto.CompareRequest, error) {
	p, err := decimal.NewFromString(principal)
	if err != nil {
		return nil, fmt.Errorf("invalid principal %q: %w", principal, err)
	}

	req := &dto.CompareRequest{
		Principal: &p,
		Days:      &days,
	}

	if rate != "" {
		r, err := decimal.NewFromString(rate)
		if err != nil {
			return nil, fmt.Errorf("invalid rate %q: %w", rate, err)
		}
		req.AnnualRatePercent = &r
	}

	for _, raw := range bonuses {
		b, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid bonus %q: %w", raw, err)
		}
		req.BonusPercents = append(req.BonusPercents, b)
	}

	return req, nil
}

func postJSON(path string, request, response any) error {
	body, err := json.Marshal(request)
	if err != nil {
		return err
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr dto.ErrorResponse
		if err := json.Unmarshal(data, &apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("%s: %s", apiErr.Error, apiErr.Message)
		}
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(data))
	}

	return json.Unmarshal(data, response)
}

func printSimulation(resp *dto.SimulationResponse, showLedger bool) {
	fmt.Printf("Simulação %s\n\n", resp.ID)
	fmt.Printf("Valor Investido:   %s\n", formatCurrency(resp.Principal))
	fmt.Printf("Período:           %s\n", formatPeriod(resp.Days))
	fmt.Printf("Taxa CDI:          %s%% a.a.\n", resp.AnnualRatePercent)
	if resp.BonusPercent.IsPositive() {
		fmt.Printf("Bônus Faixa 1:     +%s pontos (faixa 1 a %s%%)\n",
			resp.BonusPercent, decimal.NewFromInt(110).Add(resp.BonusPercent))
	}
	fmt.Println()
	fmt.Printf("Valor Final:       %s\n", formatCurrency(resp.Summary.FinalValue))
	fmt.Printf("Rendimento Total:  %s (%s%%)\n",
		formatCurrency(resp.Summary.TotalYield), resp.Summary.PercentYield.StringFixed(2))
	if resp.Baseline != nil {
		fmt.Printf("Sem bônus (110%%):  %s (%s%%)\n",
			formatCurrency(resp.Baseline.FinalValue), resp.Baseline.PercentYield.StringFixed(2))
	}
	if resp.Savings.Applicable && resp.Savings.PercentYield != nil {
		fmt.Printf("Poupança (est.):   %s (%s%%)\n",
			formatCurrency(resp.Savings.TotalYield), resp.Savings.PercentYield.StringFixed(2))
	} else {
		fmt.Println("Poupança (est.):   N/A (requer no mínimo 30 dias)")
	}

	if showLedger && len(resp.Ledger) > 0 {
		fmt.Println()
		printLedger(resp.Ledger)
	}
}

func printLedger(ledger []dto.DailyRecordResponse) {
	fmt.Printf("%5s  %16s  %14s  %14s  %14s  %16s\n",
		"Dia", "Valor Inicial", "Faixa 1", "Faixa 2", "Total Dia", "Valor Final")
	for _, row := range ledger {
		fmt.Printf("%5d  %16s  %14s  %14s  %14s  %16s\n",
			row.Day,
			formatCurrency(row.StartBalance),
			formatCurrency(row.Tier1Yield),
			formatCurrency(row.Tier2Yield),
			formatCurrency(row.TotalYield),
			formatCurrency(row.EndBalance),
		)
	}
}

func printComparison(resp *dto.ComparisonResponse) {
	fmt.Printf("Comparação: %s por %s a %s%% a.a.\n\n",
		formatCurrency(resp.Principal), formatPeriod(resp.Days), resp.AnnualRatePercent)

	fmt.Printf("%-18s  %16s  %16s  %10s\n", "Cenário", "Valor Final", "Rendimento", "%")
	for _, sc := range resp.Scenarios {
		label := fmt.Sprintf("99Pay (%s%%)", sc.Tier1Percent.StringFixed(0))
		fmt.Printf("%-18s  %16s  %16s  %9s%%\n",
			label,
			formatCurrency(sc.Summary.FinalValue),
			formatCurrency(sc.Summary.TotalYield),
			sc.Summary.PercentYield.StringFixed(2),
		)
	}

	if resp.Savings.Applicable && resp.Savings.PercentYield != nil {
		fmt.Printf("%-18s  %16s  %16s  %9s%%\n",
			"Poupança",
			formatCurrency(resp.Savings.FinalValue),
			formatCurrency(resp.Savings.TotalYield),
			resp.Savings.PercentYield.StringFixed(2),
		)
	} else {
		fmt.Printf("%-18s  %16s\n", "Poupança", "N/A")
	}
}

// formatCurrency renders a value in the Brazilian locale: R$ 1.234,56.
func formatCurrency(value decimal.Decimal) string {
	s := value.StringFixed(2)

	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(intPart[i])
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("R$ %s%s,%s", sign, b.String(), fracPart)
}

// formatPeriod renders a horizon in days as a friendlier unit when it divides
// evenly: years, months (30-day), or weeks.
func formatPeriod(days int) string {
	if days <= 0 {
		return fmt.Sprintf("%d dias", days)
	}
	if days == 1 {
		return "1 dia"
	}

	if days%365 == 0 {
		years := days / 365
		if years == 1 {
			return fmt.Sprintf("1 ano (%d dias)", days)
		}
		return fmt.Sprintf("%d anos (%d dias)", years, days)
	}

	// 31 days reads better as one calendar month than as "31 dias".
	if days == 31 {
		return "1 mês (31 dias)"
	}
	if days%30 == 0 {
		months := days / 30
		if months == 1 {
			return fmt.Sprintf("1 mês (%d dias)", days)
		}
		return fmt.Sprintf("%d meses (%d dias)", months, days)
	}

	if days%7 == 0 {
		weeks := days / 7
		if weeks == 1 {
			return fmt.Sprintf("1 semana (%d dias)", days)
		}
		return fmt.Sprintf("%d semanas (%d dias)", weeks, days)
	}

	return fmt.Sprintf("%d dias", days)
}
