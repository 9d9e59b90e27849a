package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"vitaldeck/internal/ledger"
	"vitaldeck/internal/patient"
	"vitaldeck/internal/predictor"
	"vitaldeck/internal/projector"
	"vitaldeck/internal/report"
)

var (
	predictName    string
	predictVitals  [8]string
	predictSummary bool
	predictReport  bool
)

// vitalFlagNames matches the patient.ParseVitals field order.
var vitalFlagNames = [8]string{
	"pregnancies", "glucose", "blood-pressure", "skin-thickness",
	"insulin", "bmi", "dpf", "age",
}

// predictCmd runs a single prediction round-trip from the command line.
var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Run one prediction and print the risk assessment",
	Long: `Submits a single set of vitals to the prediction service and prints the
risk assessment. Missing or non-numeric vitals are forwarded as-is; the
service owns interpretation.

Example:
  vitaldeck predict --name Alice --glucose 180 --bmi 26.4 --age 45 --report`,
	RunE: runPredict,
}

func init() {
	predictCmd.Flags().StringVar(&predictName, "name", "", "patient name (defaults to Anonymous)")
	for i, flag := range vitalFlagNames {
		predictCmd.Flags().StringVar(&predictVitals[i], flag, "", flag+" value")
	}
	predictCmd.Flags().BoolVar(&predictSummary, "chart", false, "also print the confidence chart")
	predictCmd.Flags().BoolVar(&predictReport, "report", false, "export the PDF report after a successful prediction")
}

func runPredict(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, lg := newCollaborators(cfg)
	lg.Load()

	in := patient.ParseVitals(predictName, predictVitals[:]...)
	logger.Info("submitting prediction",
		zap.String("patient", in.Name),
		zap.String("server", cfg.Predictor.BaseURL))

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Predictor.RequestTimeout())
	defer cancel()

	s, err := client.Submit(ctx, in)
	if err != nil {
		var remote *predictor.RemoteError
		if errors.As(err, &remote) {
			// Single notice, no state recorded.
			return fmt.Errorf("prediction service unavailable: %w", err)
		}
		return err
	}

	a := s.Assessment
	fmt.Println("Disease Risk Assessment")
	fmt.Println(projector.RiskSummary(a))
	fmt.Println()
	fmt.Println("Doctor Recommendation")
	fmt.Println(projector.Advisory(a))
	fmt.Println()
	fmt.Println("Precautions")
	for _, p := range projector.Precautions(a) {
		fmt.Println("  - " + p)
	}
	fmt.Println()
	fmt.Println("Recommended Tests")
	fmt.Println(projector.RecommendedTests(a))

	if predictSummary {
		fmt.Println()
		fmt.Println("Risk Confidence (%)")
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		for _, bar := range projector.ChartSeries(a, rng) {
			fmt.Printf("  %-9s %3d%%\n", bar.Label, bar.Value)
		}
	}

	lg.Append(s)
	fmt.Println()
	fmt.Println("Recorded:", ledger.Line(s))

	if predictReport {
		path, err := report.Export(&s, cfg.Export.Dir)
		if err != nil {
			return fmt.Errorf("report export failed: %w", err)
		}
		fmt.Println("Report saved:", path)
	}

	return nil
}
