package textract

import (
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/textract/types"

	"github.com/de-tools/fiscal-atlas/pkg/models/domain"
	"github.com/de-tools/fiscal-atlas/pkg/store/tables"
)

// tableFromBlocks assembles the first TABLE block into a positional cell
// grid. Cell text is the concatenation of the cell's child words; selection
// elements and empty cells come through as "".
func tableFromBlocks(blocks []types.Block) (domain.RawTable, error) {
	byID := make(map[string]types.Block, len(blocks))
	for _, b := range blocks {
		if b.Id != nil {
			byID[*b.Id] = b
		}
	}

	var table *types.Block
	for i, b := range blocks {
		if b.BlockType == types.BlockTypeTable {
			table = &blocks[i]
			break
		}
	}
	if table == nil {
		return domain.RawTable{}, fmt.Errorf("no table detected in document")
	}

	maxRow, maxCol := 0, 0
	cells := make([]types.Block, 0)
	for _, id := range childIDs(*table) {
		cell, ok := byID[id]
		if !ok || cell.BlockType != types.BlockTypeCell || cell.RowIndex == nil || cell.ColumnIndex == nil {
			continue
		}
		cells = append(cells, cell)
		if int(*cell.RowIndex) > maxRow {
			maxRow = int(*cell.RowIndex)
		}
		if int(*cell.ColumnIndex) > maxCol {
			maxCol = int(*cell.ColumnIndex)
		}
	}
	if maxRow == 0 || maxCol == 0 {
		return domain.RawTable{}, fmt.Errorf("table has no cells")
	}

	grid := make([][]string, maxRow)
	for r := range grid {
		grid[r] = make([]string, maxCol)
	}
	for _, cell := range cells {
		grid[int(*cell.RowIndex)-1][int(*cell.ColumnIndex)-1] = cellText(cell, byID)
	}

	return tables.FromRows(grid), nil
}

func cellText(cell types.Block, byID map[string]types.Block) string {
	words := make([]string, 0, 4)
	for _, id := range childIDs(cell) {
		child, ok := byID[id]
		if !ok || child.Text == nil {
			continue
		}
		if child.BlockType == types.BlockTypeWord {
			words = append(words, *child.Text)
		}
	}
	return strings.Join(words, " ")
}

func childIDs(b types.Block) []string {
	for _, rel := range b.Relationships {
		if rel.Type == types.RelationshipTypeChild {
			return rel.Ids
		}
	}
	return nil
}
