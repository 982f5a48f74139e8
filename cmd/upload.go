package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// uploadCmd represents the upload command
var uploadCmd = &cobra.Command{
	Use:   "upload <file>...",
	Short: "Upload one or more documents",
	Long: `Upload documents to the service.

Multiple files are uploaded concurrently, bounded by upload.concurrency
from the config. The first failure cancels the remaining uploads.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUpload,
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	if err := requireAccessToken(); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(cfg.Upload.Concurrency)

	for _, path := range args {
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}

			name := filepath.Base(path)
			if err := client.UploadDocument(ctx, cfg.Paperless.ClientID, cfg.Paperless.AccessToken, data, name); err != nil {
				return fmt.Errorf("failed to upload %s: %w", name, err)
			}

			logger.Info().Str("file", name).Int("size", len(data)).Msg("Uploaded document")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	fileText := "file"
	if len(args) != 1 {
		fileText = "files"
	}
	fmt.Printf("✓ Uploaded %d %s\n", len(args), fileText)
	return nil
}
