package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cifpfbmoll/catalog-manager/internal/client"
	"github.com/cifpfbmoll/catalog-manager/internal/console"
)

func main() {
	var apiURL, token string

	root := &cobra.Command{
		Use:   "catalog-console",
		Short: "Terminal admin console for the catalog API",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []client.Option{}
			if token != "" {
				opts = append(opts, client.WithToken(token))
			}
			app := console.NewApp(client.New(apiURL, opts...))
			_, err := tea.NewProgram(app, tea.WithAltScreen()).Run()
			return err
		},
	}

	_ = godotenv.Load()
	v := viper.New()
	v.SetEnvPrefix("catalog")
	v.AutomaticEnv()
	v.SetDefault("api_url", "http://localhost:8080")

	root.Flags().StringVar(&apiURL, "api", v.GetString("api_url"), "base URL of the catalog API")
	root.Flags().StringVar(&token, "token", v.GetString("token"), "bearer token for write operations")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
