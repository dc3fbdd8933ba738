package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/spigell/land-advisor/internal/ai"
	"github.com/spigell/land-advisor/internal/ai/gemini"
	"github.com/spigell/land-advisor/internal/land"
	"github.com/spigell/land-advisor/internal/loader"
	"github.com/spigell/land-advisor/internal/logger"
	"github.com/spigell/land-advisor/internal/secrets"
	"github.com/spigell/land-advisor/internal/store"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptBack         = "back"
	PromptShowReports  = "Show full reports"
	PromptSimulate     = "Simulate investment returns"
	PromptSaveReports  = "Save reports to the store"
	PromptDumpToFile   = "Dump reports to file"
	PromptAICommentary = "AI commentary on a parcel"
	PromptExit         = "Exit"
)

var errExit = errors.New("exit requested")

var analyzePrompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptShowReports, PromptSimulate, PromptSaveReports, PromptDumpToFile, PromptAICommentary, PromptExit},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Evaluate a batch of land parcels and assemble analysis reports",
	Run: func(cmd *cobra.Command, _ []string) {
		analyze(cmd)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("parcels", "p", "", "parcels file (.json or .csv)")
	analyzeCmd.Flags().String("comps", "", "comparable sales file for the comps estimator")
	analyzeCmd.Flags().String("estimator", "heuristic", "price estimator: heuristic or comps")
	analyzeCmd.Flags().BoolP("auto-save", "y", false, "save all reports to the store and exit without prompting")
	analyzeCmd.Flags().Int("hold-years", 5, "holding period for return simulations")

	viper.BindPFlag("parcels", analyzeCmd.Flags().Lookup("parcels"))
	viper.BindPFlag("comps", analyzeCmd.Flags().Lookup("comps"))
}

// analyze is the main evaluation command for the cli.
func analyze(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the land-advisor", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	parcelsFile := viper.GetString("parcels")
	if parcelsFile == "" {
		logger.Fatal("parcels file is required",
			zap.String("hint", "pass --parcels or set the 'parcels' key in the configuration file"),
		)
	}

	parcels, skipped, err := loader.ParcelsFromFile(parcelsFile)
	if err != nil {
		logger.Fatal("loading parcels", zap.Error(err))
	}
	for _, reason := range skipped {
		logger.Warn("skipping parcel row", zap.String("reason", reason))
	}

	if len(parcels) == 0 {
		logger.Info("exiting", zap.String("reason", "no usable parcels in the file"))
		return
	}

	estimator, err := buildEstimator(cmd, logger)
	if err != nil {
		logger.Fatal("building the price estimator", zap.Error(err))
	}

	assembler := land.NewAssembler(estimator)

	reports := &land.Reports{}
	for _, p := range parcels {
		report, err := assembler.Assemble(p)
		if err != nil {
			logger.Warn("skipping parcel", zap.String("address", p.Address), zap.Error(err))
			continue
		}
		reports.Items = append(reports.Items, report)
	}

	if reports.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no parcels survived evaluation"))
		return
	}

	logger.Info("assembled analysis reports", zap.Int("count", reports.Len()))
	fmt.Print(renderSummary(reports))

	if cmd.Flag("auto-save").Value.String() == "true" {
		if err := saveReports(config, logger, reports); err != nil {
			logger.Fatal("saving reports", zap.Error(err))
		}
		return
	}

	for {
		_, action, err := analyzePrompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAnalyzeAction(ctx, action, cmd, config, logger, reports); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAnalyzeAction(ctx context.Context, action string, cmd *cobra.Command, config *Config, logger *zap.Logger, reports *land.Reports) error {
	switch action {
	case PromptShowReports:
		for _, report := range reports.Items {
			fmt.Print(renderReport(report))
		}
		return nil
	case PromptSimulate:
		return simulateReturns(cmd, reports)
	case PromptSaveReports:
		return saveReports(config, logger, reports)
	case PromptDumpToFile:
		filename, err := reports.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump reports to file: %w", err)
		}
		logger.Info("dumping reports to file", zap.String("filename", filename))
		return nil
	case PromptAICommentary:
		return commentOnParcel(ctx, config, logger, reports)
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// buildEstimator selects the price model. The comps estimator needs a deals
// file; everything else falls back to the official-price heuristic.
func buildEstimator(cmd *cobra.Command, logger *zap.Logger) (land.Estimator, error) {
	name := strings.TrimSpace(strings.ToLower(cmd.Flag("estimator").Value.String()))
	switch name {
	case "", "heuristic":
		return land.HeuristicEstimator{}, nil
	case "comps":
		compsFile := viper.GetString("comps")
		if compsFile == "" {
			return nil, errors.New("comps file is required for the comps estimator")
		}

		comps, err := loader.TransactionsFromFile(compsFile)
		if err != nil {
			return nil, err
		}

		logger.Info("using the comps estimator", zap.Int("transactions", len(comps)))
		return land.NewCompsEstimator(comps)
	default:
		return nil, fmt.Errorf("unsupported estimator: %s", name)
	}
}

func saveReports(config *Config, logger *zap.Logger, reports *land.Reports) error {
	st, err := store.Open(config.Store)
	if err != nil {
		return fmt.Errorf("opening store %q: %w", config.Store, err)
	}
	defer st.Close()

	if err := st.EnsureSchema(); err != nil {
		return fmt.Errorf("ensuring store schema: %w", err)
	}

	for _, report := range reports.Items {
		if err := st.SaveReport(report); err != nil {
			return fmt.Errorf("saving report for %q: %w", report.Parcel.Address, err)
		}
	}

	logger.Info("saved reports to the store",
		zap.Int("count", reports.Len()),
		zap.String("store", config.Store),
	)
	return nil
}

// pickReport lets the user choose one report by address. A nil result means
// the user backed out.
func pickReport(reports *land.Reports) (*land.AnalysisResult, error) {
	items := make([]string, 0, reports.Len()+1)
	for _, report := range reports.Items {
		items = append(items, report.Parcel.Address)
	}

	reportPrompt := promptui.Select{
		Label: "Choose a parcel and press ENTER",
		Items: append(items, PromptBack),
	}

	_, selected, err := reportPrompt.Run()
	if err != nil {
		return nil, err
	}
	if selected == PromptBack {
		return nil, nil
	}

	report := reports.FindByAddress(selected)
	if report == nil {
		return nil, fmt.Errorf("there is no report for address %s", selected)
	}
	return report, nil
}

func simulateReturns(cmd *cobra.Command, reports *land.Reports) error {
	report, err := pickReport(reports)
	if err != nil || report == nil {
		return err
	}

	holdYears, err := cmd.Flags().GetInt("hold-years")
	if err != nil {
		return err
	}

	projection, err := land.SimulateReturn(report.Price.TotalPrice, report.Parcel, holdYears)
	if err != nil {
		return fmt.Errorf("simulating returns for %q: %w", report.Parcel.Address, err)
	}

	fmt.Print(renderProjection(report, projection))
	return nil
}

func commentOnParcel(ctx context.Context, config *Config, logger *zap.Logger, reports *land.Reports) error {
	if config.AI == nil || !config.AI.Enabled {
		return errors.New("ai commentary is not enabled in the configuration")
	}

	commentator, err := newAICommentator(ctx, config.AI, logger)
	if err != nil {
		return fmt.Errorf("building ai commentator: %w", err)
	}

	report, err := pickReport(reports)
	if err != nil || report == nil {
		return err
	}

	commentary, err := commentator.Comment(ctx, report)
	if err != nil {
		return fmt.Errorf("generating commentary for %q: %w", report.Parcel.Address, err)
	}

	fmt.Print(renderCommentary(report, commentary))
	return nil
}

func newAICommentator(ctx context.Context, cfg *AIConfig, logger *zap.Logger) (ai.Commentator, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	if cfg.Gemini == nil {
		return nil, errors.New("gemini configuration is required when ai commentary is enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: cfg.Gemini.APIKey,
		Env:   "GEMINI_API_KEY",
		File:  cfg.Gemini.APIKeyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key, ai.gemini.api-key-file or GEMINI_API_KEY)", err)
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model)
	if err != nil {
		return nil, err
	}

	return gemini.NewCommentator(generator, logger, cfg.Gemini.MaxRetries, cfg.Gemini.MaxLogLength), nil
}
