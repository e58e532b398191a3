package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/appcontext"
	"github.com/RoyceAzure/lab/storefront/internal/config"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/spf13/cobra"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load users and products from a YAML file",
	Long: `依 YAML 檔建立使用者與商品.
已存在的使用者(email)與商品(name)會略過, 可以重複執行.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "seed/seed.yaml", "seed data file")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	f, err := os.Open(seedFile)
	if err != nil {
		return fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	data, err := service.LoadSeedData(f)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	app, err := appcontext.NewApplicationContext(ctx, config.GetConfig())
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = app.Shutdown(shutdownCtx)
	}()

	result, err := app.SeedService.Seed(ctx, data)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	cmd.Printf("seed completed: %d users, %d products created, %d skipped\n", result.Users, result.Products, result.Skipped)
	return nil
}
