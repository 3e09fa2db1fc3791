// @title           CeloBuddy API
// @version         1.0
// @description     Подбор грантов, инвесторов и талантов для основателей Web3-проектов.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @securityDefinitions.apikey ServiceKey
// @in header
// @name X-Service-Key

package main

import (
	"fmt"
	"os"

	_ "celobuddy/docs"
	"celobuddy/database"
	"celobuddy/internal/app"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "celobuddy",
	Short: "CeloBuddy API server",
	Run: func(cmd *cobra.Command, args []string) {
		app.Run()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server (default)",
	Run: func(cmd *cobra.Command, args []string) {
		app.Run()
	},
}

// migrateCmd применяет схему и выходит
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := app.Bootstrap()
		if err != nil {
			return err
		}
		return database.AutoMigrate(db)
	},
}

func main() {
	rootCmd.AddCommand(serveCmd, migrateCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
