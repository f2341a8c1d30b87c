// Package advisor is the shopping-advice gateway: one user query plus the
// current catalog in, one natural-language recommendation out. Failures are
// fully contained behind fixed fallback strings; the chat surface never sees
// a raw error.
package advisor

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	catmodel "github.com/nstore-core/server/internal/catalog/model"
	logx "github.com/nstore-core/server/pkg/logger"
)

// FallbackAdvice replaces any failed advice request, including responses
// that carried no text.
const FallbackAdvice = "I'm currently updating my knowledge. Please browse our latest catalog!"

// ErrBusy is returned when an advice request is already in flight. The chat
// surface treats it as "ignore this send", not as a failure.
var ErrBusy = errors.New("advice request already in flight")

// Config tunes the advisor, sourced from the environment.
type Config struct {
	BusinessName string `envconfig:"ADVISOR_BUSINESS_NAME" default:"NSTORE.ONLINE"`
	// MaxContextProducts caps how many products are injected as context.
	// 0 means the whole catalog, which scales linearly with catalog size
	// per request.
	MaxContextProducts int `envconfig:"ADVISOR_MAX_CONTEXT_PRODUCTS" default:"0"`
}

// Advisor issues single-shot advice requests against a chat model. At most
// one request is outstanding at a time.
type Advisor struct {
	chat model.BaseChatModel
	cfg  Config
	busy atomic.Bool
}

func New(chat model.BaseChatModel, cfg Config) *Advisor {
	return &Advisor{chat: chat, cfg: cfg}
}

// Advise answers a free-text query with the catalog as context. It returns
// ErrBusy while another request is pending; every other failure mode
// resolves to a fallback string with a nil error. Exactly one model call is
// made per invocation: no retry, no streaming.
func (a *Advisor) Advise(ctx context.Context, query string, products []catmodel.Product) (string, error) {
	if !a.busy.CompareAndSwap(false, true) {
		return "", ErrBusy
	}
	defer a.busy.Store(false)

	if a.cfg.MaxContextProducts > 0 && len(products) > a.cfg.MaxContextProducts {
		products = products[:a.cfg.MaxContextProducts]
	}

	system, err := RenderSystemInstruction(ctx, a.cfg.BusinessName, products)
	if err != nil {
		logx.Error().Err(err).Msg("failed to render advisor system instruction")
		return FallbackAdvice, nil
	}

	resp, err := a.chat.Generate(ctx, []*schema.Message{
		schema.SystemMessage(system),
		schema.UserMessage(query),
	})
	if err != nil {
		logx.Error().Err(err).Msg("advice request failed")
		return FallbackAdvice, nil
	}
	if resp == nil || strings.TrimSpace(resp.Content) == "" {
		logx.Warn().Msg("advice response carried no text")
		return FallbackAdvice, nil
	}
	return resp.Content, nil
}
