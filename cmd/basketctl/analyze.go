// Basketlytics - Market Basket Analysis and Association Rule Mining
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketlytics

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/basketlytics/internal/models"
	"github.com/tomtom215/basketlytics/internal/validation"
)

// requestFlags are the flags shared by analyze and daily. Flags override the
// matching request field only when set on the command line.
type requestFlags struct {
	input         string
	algorithm     string
	minSupport    float64
	minConfidence float64
	compare       bool
	pretty        bool
}

func (f *requestFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.input, "input", "i", "-", "request JSON file, - for stdin")
	cmd.Flags().StringVar(&f.algorithm, "algorithm", "", "mining algorithm (eclat, fpgrowth)")
	cmd.Flags().Float64Var(&f.minSupport, "min-support", 0, "minimum support in (0, 1]")
	cmd.Flags().Float64Var(&f.minConfidence, "min-confidence", 0, "minimum confidence in (0, 1]")
	cmd.Flags().BoolVar(&f.compare, "compare", false, "run every algorithm and compare the results")
	cmd.Flags().BoolVar(&f.pretty, "pretty", false, "indent the JSON output")
}

// apply copies the flags the user set onto req.
func (f *requestFlags) apply(cmd *cobra.Command, req *models.AnalyzeRequest) {
	flags := cmd.Flags()
	if flags.Changed("algorithm") {
		req.Algorithm = f.algorithm
	}
	if flags.Changed("min-support") {
		v := f.minSupport
		req.MinSupport = &v
	}
	if flags.Changed("min-confidence") {
		v := f.minConfidence
		req.MinConfidence = &v
	}
	if flags.Changed("compare") {
		req.CompareAlgorithms = f.compare
	}
}

func analyzeCmd(a *app) *cobra.Command {
	f := &requestFlags{}

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Mine frequent itemsets and association rules",
		Long: `Read an analysis request and print the itemsets and rules as JSON.

The request has the same shape as the body of POST /api/v1/analyze.`,
		Example: `  basketctl analyze --input basket.json --min-support 0.05
  cat basket.json | basketctl analyze --algorithm fpgrowth --compare --pretty`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var req models.AnalyzeRequest
			if err := readRequest(cmd, f.input, &req); err != nil {
				return err
			}
			f.apply(cmd, &req)
			if err := validateRequest(&req); err != nil {
				return err
			}

			result, err := a.engine.Analyze(cmd.Context(), req.ToAnalysisRequest(""))
			if err != nil {
				return fmt.Errorf("analysis failed: %w", err)
			}
			return writeJSON(cmd.OutOrStdout(), models.NewAnalyzeResponse(result, req.Names()), f.pretty)
		},
	}

	f.register(cmd)
	return cmd
}

func dailyCmd(a *app) *cobra.Command {
	f := &requestFlags{}
	var date string

	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Analyze the transactions of the day before a target date",
		Long: `Read an analysis request, keep the transactions dated the day before the
target date, and print the daily analysis as JSON.

The target date comes from --date or the request's targetDate field.`,
		Example: `  basketctl daily --input basket.json --date 2010-12-02`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var req models.DailyAnalyzeRequest
			if err := readRequest(cmd, f.input, &req); err != nil {
				return err
			}
			f.apply(cmd, &req.AnalyzeRequest)
			if cmd.Flags().Changed("date") {
				req.TargetDate = date
			}
			if err := validateRequest(&req); err != nil {
				return err
			}

			result, err := a.engine.AnalyzeDaily(cmd.Context(), req.ToDailyRequest(""))
			if err != nil {
				return fmt.Errorf("daily analysis failed: %w", err)
			}
			return writeJSON(cmd.OutOrStdout(), models.NewDailyResponse(result, req.Names()), f.pretty)
		},
	}

	f.register(cmd)
	cmd.Flags().StringVar(&date, "date", "", "target date (YYYY-MM-DD, DD/MM/YYYY, MM/DD/YYYY)")
	return cmd
}

func algorithmsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the available mining algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defaultAlg := a.engine.Config().DefaultAlgorithm
			out := cmd.OutOrStdout()
			for _, m := range a.engine.Miners() {
				marker := " "
				if m.Algorithm() == defaultAlg {
					marker = "*"
				}
				if _, err := fmt.Fprintf(out, "%s %-10s %s\n", marker, m.Name(), m.Description()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// validateRequest runs the same struct validation as the HTTP API.
func validateRequest(req interface{}) error {
	if verr := validation.ValidateStruct(req); verr != nil {
		return errors.New(verr.ToAPIError().Message)
	}
	return nil
}
