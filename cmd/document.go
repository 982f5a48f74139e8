package cmd

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	downloadSigned bool
	downloadOutput string
	trashNoConfirm bool
	shareDisable   bool
	shareHash      string
)

var infoCmd = &cobra.Command{
	Use:   "info <id>",
	Short: "Show document metadata",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

var downloadCmd = &cobra.Command{
	Use:   "download <id> <hash>",
	Short: "Download document content",
	Long: `Download the document PDF.

The document hash is required alongside the id; it acts as a capability
token for the content endpoint. Use --signed to include attached
signatures in the PDF.`,
	Args: cobra.ExactArgs(2),
	RunE: runDownload,
}

var renameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Rename a document",
	Args:  cobra.ExactArgs(2),
	RunE:  runRename,
}

var trashCmd = &cobra.Command{
	Use:   "trash <id>",
	Short: "Move a document to trash, or delete it permanently",
	Long: `Move a document to trash. A document that is already in the trash is
deleted permanently; the distinction is server policy and the service does
not report which happened.`,
	Args: cobra.ExactArgs(1),
	RunE: runTrash,
}

var restoreCmd = &cobra.Command{
	Use:   "restore <id>",
	Short: "Restore a document from trash",
	Args:  cobra.ExactArgs(1),
	RunE:  runRestore,
}

var shareCmd = &cobra.Command{
	Use:   "share <id>",
	Short: "Toggle public link sharing for a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runShare,
}

func init() {
	downloadCmd.Flags().BoolVar(&downloadSigned, "signed", false, "include attached signatures in the PDF")
	downloadCmd.Flags().StringVarP(&downloadOutput, "output", "o", "", "output file (default <id>.pdf)")

	trashCmd.Flags().BoolVar(&trashNoConfirm, "no-confirm", false, "skip the confirmation prompt")

	shareCmd.Flags().BoolVar(&shareDisable, "disable", false, "disable sharing instead of enabling it")
	shareCmd.Flags().StringVar(&shareHash, "hash", "", "document hash, prints the share link after enabling")

	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(downloadCmd)
	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(trashCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(shareCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	if err := requireAccessToken(); err != nil {
		return err
	}

	raw, err := client.GetDocumentInfo(context.Background(), cfg.Paperless.ClientID, cfg.Paperless.AccessToken, args[0])
	if err != nil {
		return err
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		// Not JSON after all; print verbatim.
		fmt.Println(string(raw))
		return nil
	}

	fmt.Println(pretty.String())
	return nil
}

func runDownload(cmd *cobra.Command, args []string) error {
	if err := requireAccessToken(); err != nil {
		return err
	}

	documentID, documentHash := args[0], args[1]

	data, err := client.GetDocumentFile(context.Background(), cfg.Paperless.ClientID, cfg.Paperless.AccessToken, documentID, documentHash, downloadSigned)
	if err != nil {
		return err
	}

	output := downloadOutput
	if output == "" {
		output = documentID + ".pdf"
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}

	fmt.Printf("✓ Saved %s (%d bytes)\n", output, len(data))
	return nil
}

func runRename(cmd *cobra.Command, args []string) error {
	if err := requireAccessToken(); err != nil {
		return err
	}

	if err := client.RenameDocument(context.Background(), cfg.Paperless.ClientID, cfg.Paperless.AccessToken, args[0], args[1]); err != nil {
		return err
	}

	fmt.Printf("✓ Renamed document %s to %q\n", args[0], args[1])
	return nil
}

func runTrash(cmd *cobra.Command, args []string) error {
	if err := requireAccessToken(); err != nil {
		return err
	}

	if cfg.Safety.ConfirmDelete && !trashNoConfirm {
		fmt.Printf("Move document %s to trash (permanent if already trashed)? [y/N]: ", args[0])

		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			fmt.Println("Cancelled.")
			return nil
		}

		answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if answer != "y" && answer != "yes" {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := client.TrashOrDeleteDocument(context.Background(), cfg.Paperless.ClientID, cfg.Paperless.AccessToken, args[0]); err != nil {
		return err
	}

	fmt.Printf("✓ Trashed document %s\n", args[0])
	return nil
}

func runRestore(cmd *cobra.Command, args []string) error {
	if err := requireAccessToken(); err != nil {
		return err
	}

	if err := client.RestoreDocumentFromTrash(context.Background(), cfg.Paperless.ClientID, cfg.Paperless.AccessToken, args[0]); err != nil {
		return err
	}

	fmt.Printf("✓ Restored document %s\n", args[0])
	return nil
}

func runShare(cmd *cobra.Command, args []string) error {
	if err := requireAccessToken(); err != nil {
		return err
	}

	enabled := !shareDisable
	if err := client.SetDocumentSharingByURL(context.Background(), cfg.Paperless.ClientID, cfg.Paperless.AccessToken, args[0], enabled); err != nil {
		return err
	}

	if !enabled {
		fmt.Printf("✓ Disabled sharing for document %s\n", args[0])
		return nil
	}

	fmt.Printf("✓ Enabled sharing for document %s\n", args[0])
	if shareHash != "" {
		link, err := client.GetDocumentSharingURL(args[0], shareHash)
		if err != nil {
			return err
		}
		fmt.Println(link)
	}
	return nil
}
