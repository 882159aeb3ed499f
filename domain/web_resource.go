package domain

import (
	"github.com/x-xyz/rentableft/base/ctx"
)

// WebResourceReaderRepository reads raw bytes behind a locator
type WebResourceReaderRepository interface {
	Get(ctx.Ctx, string) ([]byte, error)
}

type WebResourceUseCase interface {
	// Get fetches a fetchable url (http, https, data)
	Get(ctx.Ctx, string) ([]byte, error)
	// GetJson is Get plus a json validity check
	GetJson(ctx.Ctx, string) ([]byte, error)
}
