package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/spf13/cobra"

	"github.com/ostapk/paperless-go/paperless"
)

var (
	searchQuery      string
	searchContractor string
	searchAuthor     string
	searchSigned     string
	searchDateFrom   string
	searchDateTo     string
	searchDocList    string
	searchOffset     int
	searchLimit      int
	searchExpr       string
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search documents",
	Long: `Search documents on the service.

Server-side filtering maps onto the search endpoint's filter fields. The
--expr flag additionally filters the returned rows client-side with an
expression over the document fields, e.g.

  paperless-cli search -q invoice --expr 'signed == true'
  paperless-cli search --doc-list trash --expr 'contains(name, "2024")'`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchQuery, "query", "q", "", "search query")
	searchCmd.Flags().StringVar(&searchContractor, "contractor", "", "contractor id")
	searchCmd.Flags().StringVar(&searchAuthor, "author", "", "author selector (default all)")
	searchCmd.Flags().StringVar(&searchSigned, "signed", "", "signed state: true or false (unset matches both)")
	searchCmd.Flags().StringVar(&searchDateFrom, "date-from", "", "lower date bound")
	searchCmd.Flags().StringVar(&searchDateTo, "date-to", "", "upper date bound")
	searchCmd.Flags().StringVar(&searchDocList, "doc-list", "", "document list selector (docs, trash)")
	searchCmd.Flags().IntVar(&searchOffset, "offset", 0, "result offset")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "result limit (default 40)")
	searchCmd.Flags().StringVar(&searchExpr, "expr", "", "client-side filter expression applied to result rows")

	rootCmd.AddCommand(searchCmd)
}

// buildSearchFilter maps the command flags onto the wire filter.
func buildSearchFilter() (*paperless.SearchFilter, error) {
	filter := paperless.NewSearchFilter()
	filter.SearchQuery = searchQuery

	if searchContractor != "" {
		filter.Contractor = &searchContractor
	}
	if searchAuthor != "" {
		filter.Author = searchAuthor
	}

	switch searchSigned {
	case "":
		// tri-state stays null
	case "true":
		v := true
		filter.Signed = &v
	case "false":
		v := false
		filter.Signed = &v
	default:
		return nil, fmt.Errorf("invalid --signed value %q (must be true or false)", searchSigned)
	}

	if searchDateFrom != "" {
		filter.DateFrom = &searchDateFrom
	}
	if searchDateTo != "" {
		filter.DateTo = &searchDateTo
	}
	if searchDocList != "" {
		filter.DocList = searchDocList
	}

	filter.Offset = searchOffset
	if searchLimit > 0 {
		filter.Limit = searchLimit
	}

	return filter, nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	if err := requireAccessToken(); err != nil {
		return err
	}

	filter, err := buildSearchFilter()
	if err != nil {
		return err
	}

	raw, err := client.SearchDocuments(context.Background(), cfg.Paperless.ClientID, cfg.Paperless.AccessToken, filter)
	if err != nil {
		return err
	}

	rows := decodeResultRows(raw)
	if rows == nil {
		// Result set is not a recognizable document list; print it as-is.
		if searchExpr != "" {
			return fmt.Errorf("cannot apply --expr: result set is not a document list")
		}
		fmt.Println(string(raw))
		return nil
	}

	if searchExpr != "" {
		rows, err = filterRows(rows, searchExpr)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
	}

	if len(rows) == 0 {
		fmt.Println("No documents found matching the criteria.")
		return nil
	}

	out, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format results: %w", err)
	}

	docText := "document"
	if len(rows) != 1 {
		docText = "documents"
	}
	fmt.Printf("Found %d %s:\n%s\n", len(rows), docText, out)
	return nil
}

// decodeResultRows extracts document rows from the verbatim result set.
// The service imposes no schema; a bare array and an object with a "data"
// array are both seen in the wild. Returns nil when neither shape matches.
func decodeResultRows(raw json.RawMessage) []map[string]any {
	var rows []map[string]any
	if err := json.Unmarshal(raw, &rows); err == nil {
		return rows
	}

	var wrapped struct {
		Data []map[string]any `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Data != nil {
		return wrapped.Data
	}

	return nil
}

// filterRows keeps the rows for which the expression evaluates to true.
func filterRows(rows []map[string]any, expression string) ([]map[string]any, error) {
	program, err := expr.Compile(expression, expr.AsBool())
	if err != nil {
		return nil, err
	}

	var kept []map[string]any
	for _, row := range rows {
		out, err := expr.Run(program, row)
		if err != nil {
			return nil, err
		}
		if match, ok := out.(bool); ok && match {
			kept = append(kept, row)
		}
	}

	return kept, nil
}
