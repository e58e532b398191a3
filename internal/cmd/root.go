package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Storefront - e-commerce REST backend",
	Long: `storefront 提供商品, 評論, 購物車, 訂單與後台管理的 REST API.

設定由環境變數或 CONFIG_FILE 指定的 .env 檔讀取.
不帶子指令時等同 serve.`,
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
