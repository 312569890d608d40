//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

package processor

import (
	"context"

	"dub-server/internal/store"

	"github.com/google/uuid"
)

// LinkStore defines the database operations required by LinkProcessor
type LinkStore interface {
	CreateLink(ctx context.Context, params store.CreateLinkParams) (store.Link, error)
	GetLinkByID(ctx context.Context, linkID uuid.UUID) (store.Link, error)
	UpdateLink(ctx context.Context, linkID uuid.UUID, params store.UpdateLinkParams) (store.Link, error)
	DeleteLink(ctx context.Context, linkID uuid.UUID) (store.LinkRef, error)
}

// LinkCache is the redirect cache kept in step with link writes
type LinkCache interface {
	Set(ctx context.Context, link store.Link) error
	Delete(ctx context.Context, domain, key string) error
}
