package textract

import (
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/textract"
	"github.com/aws/aws-sdk-go-v2/service/textract/types"
	"github.com/rs/zerolog"

	"github.com/de-tools/fiscal-atlas/pkg/models/domain"
)

// Client wraps the Textract table-analysis call. The rest of the system
// treats document-to-table conversion as an opaque service; this is the only
// place the OCR provider appears.
type Client struct {
	api *textract.Client
}

func NewClient(cfg awssdk.Config) *Client {
	return &Client{api: textract.NewFromConfig(cfg)}
}

// AnalyzeTable runs table analysis on a report page and returns the first
// detected table as a raw positional grid.
func (c *Client) AnalyzeTable(ctx context.Context, document []byte) (domain.RawTable, error) {
	out, err := c.api.AnalyzeDocument(ctx, &textract.AnalyzeDocumentInput{
		Document:     &types.Document{Bytes: document},
		FeatureTypes: []types.FeatureType{types.FeatureTypeTables},
	})
	if err != nil {
		return domain.RawTable{}, fmt.Errorf("failed to analyze document: %w", err)
	}

	table, err := tableFromBlocks(out.Blocks)
	if err != nil {
		return domain.RawTable{}, err
	}

	zerolog.Ctx(ctx).Debug().
		Int("rows", len(table.Rows)).
		Int("columns", len(table.Columns)).
		Msg("table extracted from document")

	return table, nil
}
