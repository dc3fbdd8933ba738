package cmd

import (
	"fmt"
	"log"

	"github.com/spigell/land-advisor/internal/land"
	"github.com/spigell/land-advisor/internal/loader"
	"github.com/spigell/land-advisor/internal/logger"
	"github.com/spigell/land-advisor/internal/match"
	"github.com/spigell/land-advisor/internal/store"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank analysis reports against a buyer profile",
	Run: func(cmd *cobra.Command, _ []string) {
		runMatch(cmd)
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringP("buyer", "b", "", "name of a buyer profile saved in the store")
	matchCmd.Flags().String("parcels", "", "evaluate this parcels file instead of using stored reports")
	matchCmd.Flags().Int("limit", 50, "maximum number of stored reports to rank")
	matchCmd.Flags().Bool("save-profile", false, "save the buyer profile from the config to the store")
}

func runMatch(cmd *cobra.Command) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	st, err := store.Open(config.Store)
	if err != nil {
		logger.Fatal("opening the store", zap.String("store", config.Store), zap.Error(err))
	}
	defer st.Close()

	if err := st.EnsureSchema(); err != nil {
		logger.Fatal("ensuring store schema", zap.Error(err))
	}

	profile, err := resolveProfile(cmd, config, st, logger)
	if err != nil {
		logger.Fatal("resolving the buyer profile", zap.Error(err))
	}

	reports, err := collectReports(cmd, st)
	if err != nil {
		logger.Fatal("collecting analysis reports", zap.Error(err))
	}

	if reports.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no analysis reports to rank"))
		return
	}

	logger.Info("ranking reports for buyer",
		zap.String("buyer", profile.Name),
		zap.Int("reports", reports.Len()),
	)

	registry := match.NewRegistry()
	if _, err := registry.Add(profile); err != nil {
		logger.Fatal("registering the buyer profile", zap.Error(err))
	}

	results, err := registry.Recommend(profile.Name, reports)
	if err != nil {
		logger.Fatal("ranking reports", zap.Error(err))
	}

	fmt.Print(renderMatches(profile, results))
}

// resolveProfile loads the buyer either from the store by name or from the
// buyer section of the config.
func resolveProfile(cmd *cobra.Command, config *Config, st *store.Store, logger *zap.Logger) (match.BuyerProfile, error) {
	name := cmd.Flag("buyer").Value.String()
	if name != "" {
		profile, ok, err := st.GetProfile(name)
		if err != nil {
			return match.BuyerProfile{}, err
		}
		if !ok {
			return match.BuyerProfile{}, fmt.Errorf("buyer profile %q is not in the store", name)
		}
		return profile, nil
	}

	if config.Buyer == nil {
		return match.BuyerProfile{}, fmt.Errorf("buyer profile is required: pass --buyer or set the 'buyer' section in the configuration file")
	}

	profile, err := loader.ProfileFromMap(config.Buyer)
	if err != nil {
		return match.BuyerProfile{}, err
	}

	if cmd.Flag("save-profile").Value.String() == "true" {
		stored, err := st.SaveProfile(profile)
		if err != nil {
			return match.BuyerProfile{}, fmt.Errorf("saving buyer profile: %w", err)
		}
		logger.Info("saved buyer profile to the store",
			zap.String("buyer", stored.Name),
			zap.String("id", stored.ID),
		)
		return stored, nil
	}

	return profile, nil
}

// collectReports ranks either a fresh evaluation of a parcels file or the
// reports already saved in the store.
func collectReports(cmd *cobra.Command, st *store.Store) (*land.Reports, error) {
	parcelsFile := cmd.Flag("parcels").Value.String()
	if parcelsFile == "" {
		limit, err := cmd.Flags().GetInt("limit")
		if err != nil {
			return nil, err
		}
		return st.ListReports(limit)
	}

	parcels, _, err := loader.ParcelsFromFile(parcelsFile)
	if err != nil {
		return nil, err
	}

	assembler := land.NewAssembler(nil)
	reports := &land.Reports{}
	for _, p := range parcels {
		report, err := assembler.Assemble(p)
		if err != nil {
			continue
		}
		reports.Items = append(reports.Items, report)
	}
	return reports, nil
}
