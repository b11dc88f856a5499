package cmd

import (
	"fmt"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"memofiler/internal/apihandlers"
)

var serveAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run Memofiler as an HTTP API server",
	Long: `Starts an HTTP server exposing the analysis pipeline via a RESTful API,
used by the voice memo frontend and other tools.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		router := gin.Default() // Includes logger and recovery middleware

		apiHandler := apihandlers.NewAPIHandler(appInstance)

		v1 := router.Group("/api/v1")
		{
			v1.POST("/analyze", apiHandler.AnalyzeHandler)
			v1.POST("/quick-analyze", apiHandler.QuickAnalyzeHandler)
			v1.GET("/history", apiHandler.ListHistoryHandler)
		}
		router.GET("/health", apiHandler.HealthHandler)

		addr := serveAddr
		if addr == "" {
			addr = appInstance.Config.Server.Address
		}
		log.WithField("addr", addr).Info("Starting Memofiler API server")

		// router.Run blocks unless an error occurs
		if err := router.Run(addr); err != nil {
			return fmt.Errorf("failed to run API server: %w", err)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides server.address)")
	rootCmd.AddCommand(serveCmd)
}
