package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// authCmd groups the authorization flow commands
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Run the service authorization flow",
}

var authCodeCmd = &cobra.Command{
	Use:   "code",
	Short: "Request an authorization code for the configured client id",
	RunE:  runAuthCode,
}

var authTokenCmd = &cobra.Command{
	Use:   "token <code>",
	Short: "Exchange an authorization code for an access token",
	Long: `Exchange an authorization code for a token bundle.

The decoded token object is printed as JSON; store its access token under
paperless.access_token in the config file. The client performs no token
refresh, so an expired token means running the flow again.`,
	Args: cobra.ExactArgs(1),
	RunE: runAuthToken,
}

func init() {
	authCmd.AddCommand(authCodeCmd)
	authCmd.AddCommand(authTokenCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthCode(cmd *cobra.Command, args []string) error {
	code, err := client.GetAuthCode(context.Background(), cfg.Paperless.ClientID)
	if err != nil {
		return err
	}

	fmt.Println(code)
	return nil
}

func runAuthToken(cmd *cobra.Command, args []string) error {
	if cfg.Paperless.ClientSecret == "" {
		return fmt.Errorf("paperless.client_secret must be set to exchange an authorization code")
	}

	token, err := client.GetAuthToken(context.Background(), cfg.Paperless.ClientID, cfg.Paperless.ClientSecret, args[0])
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format token response: %w", err)
	}

	fmt.Println(string(out))
	return nil
}
