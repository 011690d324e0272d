package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rokayasamy05/Mini-EHR-Console/internal/config"
	"github.com/rokayasamy05/Mini-EHR-Console/internal/domain/clinical"
	"github.com/rokayasamy05/Mini-EHR-Console/internal/domain/patient"
	"github.com/rokayasamy05/Mini-EHR-Console/internal/platform/console"
	"github.com/rokayasamy05/Mini-EHR-Console/internal/platform/logging"
	"github.com/rokayasamy05/Mini-EHR-Console/internal/platform/metrics"
	"github.com/rokayasamy05/Mini-EHR-Console/pkg/pagination"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "ehr-console",
		Short:        "Patient vitals record manager",
		SilenceUsage: true,
		RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, _ []string) error {
			return a.interactive(ctx, cmd)
		}),
	}

	rootCmd.PersistentFlags().String("file", "", "Backing file (overrides DATA_FILE)")
	rootCmd.PersistentFlags().Int("capacity", 0, "Maximum records held, 0 for unlimited (overrides MAX_PATIENTS)")

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(addCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(summaryCmd())

	return rootCmd
}

// app is the wired set of components shared by every subcommand.
type app struct {
	cfg     *config.Config
	logger  zerolog.Logger
	svc     *patient.Service
	metrics *metrics.Collector
}

func newApp(ctx context.Context, cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("file") {
		cfg.DataFile, _ = cmd.Flags().GetString("file")
	}
	if cmd.Flags().Changed("capacity") {
		cfg.MaxPatients, _ = cmd.Flags().GetInt("capacity")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.FromConfig(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return nil, err
	}
	logger, _ = logging.WithSession(logger)

	collector := metrics.NewCollector()
	svc := patient.NewService(patient.NewFileRepository(cfg.DataFile), cfg.MaxPatients, logger)
	svc.SetObserver(collector)

	n, err := svc.Load(ctx)
	if err != nil {
		logger.Error().Err(err).Str("file", cfg.DataFile).Msg("failed to load patients")
		return nil, fmt.Errorf("load patients: %w", err)
	}
	logger.Info().Str("file", cfg.DataFile).Int("count", n).Msg("patients loaded")

	return &app{cfg: cfg, logger: logger, svc: svc, metrics: collector}, nil
}

// close flushes metrics when a textfile is configured.
func (a *app) close() {
	if a.cfg.MetricsFile == "" {
		return
	}
	if err := a.metrics.WriteTextfile(a.cfg.MetricsFile); err != nil {
		a.logger.Error().Err(err).Str("file", a.cfg.MetricsFile).Msg("failed to write metrics")
	}
}

func withApp(fn func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		a, err := newApp(ctx, cmd)
		if err != nil {
			return err
		}
		defer a.close()
		return fn(ctx, cmd, a, args)
	}
}

func (a *app) interactive(ctx context.Context, cmd *cobra.Command) error {
	session := console.NewSession(a.svc, cmd.InOrStdin(), cmd.OutOrStdout(), a.logger)
	session.SetRecorder(a.metrics)
	return session.Run(ctx)
}

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the interactive patient menu",
		RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, _ []string) error {
			return a.interactive(ctx, cmd)
		}),
	}
}

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append one patient record",
		RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, _ []string) error {
			f := cmd.Flags()
			var r patient.Record
			r.ID, _ = f.GetInt("id")
			r.Name, _ = f.GetString("name")
			r.Age, _ = f.GetInt("age")
			r.Gender, _ = f.GetString("gender")
			r.WeightKg, _ = f.GetFloat64("weight")
			r.HeightM, _ = f.GetFloat64("height")
			r.TemperatureC, _ = f.GetFloat64("temperature")
			r.SystolicBP, _ = f.GetInt("systolic")
			r.DiastolicBP, _ = f.GetInt("diastolic")
			r.HeartRate, _ = f.GetInt("heart-rate")

			a.metrics.Action("add")
			if err := patient.ValidateEntry(r); err != nil {
				return err
			}
			if err := a.svc.Add(ctx, r); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Patient added successfully!")
			return nil
		}),
	}
	cmd.Flags().Int("id", 0, "Patient ID")
	cmd.Flags().String("name", "", "Patient name")
	cmd.Flags().Int("age", 0, "Age in years")
	cmd.Flags().String("gender", "", "Gender")
	cmd.Flags().Float64("weight", 0, "Weight in kg")
	cmd.Flags().Float64("height", 0, "Height in m")
	cmd.Flags().Float64("temperature", 0, "Body temperature in °C")
	cmd.Flags().Int("systolic", 0, "Systolic blood pressure")
	cmd.Flags().Int("diastolic", 0, "Diastolic blood pressure")
	cmd.Flags().Int("heart-rate", 0, "Heart rate in bpm")
	for _, name := range []string{"id", "name", "age", "gender", "weight", "height", "temperature", "systolic", "diastolic", "heart-rate"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List patients sorted by BMI",
		RunE: withApp(func(_ context.Context, cmd *cobra.Command, a *app, _ []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			offset, _ := cmd.Flags().GetInt("offset")
			p := pagination.New(limit, offset)

			a.metrics.Action("display")
			records := a.svc.ListByBMI()
			out := cmd.OutOrStdout()
			console.WriteRecords(out, pagination.Page(records, p))
			fmt.Fprintln(out, p.Footer(len(records)))
			return nil
		}),
	}
	cmd.Flags().Int("limit", pagination.DefaultLimit, "Records per page")
	cmd.Flags().Int("offset", 0, "Records to skip")
	return cmd
}

func searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <id>",
		Short: "Find a patient by ID",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(_ context.Context, cmd *cobra.Command, a *app, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("patient id must be a whole number: %w", err)
			}

			a.metrics.Action("search")
			idx, found := a.svc.FindByID(id)
			var r patient.Record
			if found {
				r = a.svc.Get(idx)
			}
			console.WriteSearchResult(cmd.OutOrStdout(), r, found)
			return nil
		}),
	}
}

func summaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Generate the daily summary",
		RunE: withApp(func(_ context.Context, cmd *cobra.Command, a *app, _ []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")

			a.metrics.Action("summary")
			sum, err := clinical.Summarize(a.svc.Records())
			if !asJSON {
				console.WriteSummary(cmd.OutOrStdout(), sum, err)
				return nil
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err != nil {
				return enc.Encode(map[string]interface{}{"total_count": 0, "error": err.Error()})
			}
			return enc.Encode(sum)
		}),
	}
	cmd.Flags().Bool("json", false, "Print the summary as JSON")
	return cmd
}
