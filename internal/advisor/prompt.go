package advisor

import (
	"context"
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"

	catmodel "github.com/nstore-core/server/internal/catalog/model"
)

//go:embed template/system_prompt.txt
var systemPromptTemplate string

// RenderSystemInstruction renders the advisor persona prompt with the
// business name and a product-context block, one line per product.
func RenderSystemInstruction(ctx context.Context, businessName string, products []catmodel.Product) (string, error) {
	tpl := prompt.FromMessages(
		schema.GoTemplate,
		schema.SystemMessage(systemPromptTemplate),
	)
	vars := map[string]any{
		"BusinessName":   businessName,
		"ProductContext": ProductContext(products),
	}
	msgs, err := tpl.Format(ctx, vars)
	if err != nil {
		return "", fmt.Errorf("system prompt render: %w", err)
	}
	if len(msgs) == 0 || msgs[0] == nil {
		return "", fmt.Errorf("system prompt render: empty result")
	}
	return msgs[0].Content, nil
}

// ProductContext serializes products for prompt injection as
// "- {name} ({category}): KD {effective price}" lines.
func ProductContext(products []catmodel.Product) string {
	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, fmt.Sprintf("- %s (%s): KD %s",
			p.Name, p.Category, formatKD(p.EffectivePrice())))
	}
	return strings.Join(lines, "\n")
}

func formatKD(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
