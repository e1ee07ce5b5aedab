package layers

import (
	"context"

	"github.com/lombokbarat/geoportal/internal/models"
)

// Repository persists static and user-uploaded layers.
type Repository interface {
	// CreateStatic inserts a static layer and fills in its ID.
	CreateStatic(ctx context.Context, l *models.StaticLayer) error

	// GetStaticByID returns a static layer or common.ErrNotFound.
	GetStaticByID(ctx context.Context, id int64) (*models.StaticLayer, error)

	// UpdateStatic overwrites the mutable columns of a static layer.
	UpdateStatic(ctx context.Context, l *models.StaticLayer) error

	// CountStatic counts all static layers, active or not. Used by the
	// seeder's existence check.
	CountStatic(ctx context.Context) (int, error)

	// ListActiveStatic returns active static layers ordered by display
	// order ascending.
	ListActiveStatic(ctx context.Context) ([]*models.StaticLayer, error)

	// CreateUser inserts a user layer and fills in its ID.
	CreateUser(ctx context.Context, l *models.UserLayer) error

	// GetUserByID returns a user layer or common.ErrNotFound.
	GetUserByID(ctx context.Context, id int64) (*models.UserLayer, error)

	// ListPublicUser returns active public user layers ordered by creation
	// time descending.
	ListPublicUser(ctx context.Context) ([]*models.UserLayer, error)

	// SetUserFlags updates the active/public flags of a user layer.
	// Returns common.ErrNotFound when the layer does not exist.
	SetUserFlags(ctx context.Context, id int64, isActive, isPublic bool) error
}
