package directory

import (
	"context"

	"github.com/Senethlakshan/wanderlust-tales/common"
	"github.com/Senethlakshan/wanderlust-tales/models"
)

func (d *Directory) Profile(ctx context.Context, userID string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()

	u, ok := d.users[userID]
	if !ok {
		return models.User{}, common.NotFoundError(nil, "User not found")
	}
	return *u, nil
}

// UserPosts returns the posts written by userID in directory order.
func (d *Directory) UserPosts(ctx context.Context, userID, viewer string) ([]models.Post, error) {
	return d.filter(ctx, viewer, func(p *models.Post) bool {
		return p.AuthorID == userID
	})
}

func (d *Directory) Follow(ctx context.Context, userID string) (models.User, error) {
	return d.adjustFollowers(ctx, userID, 1)
}

// Unfollow decrements the follower count, stopping at zero.
func (d *Directory) Unfollow(ctx context.Context, userID string) (models.User, error) {
	return d.adjustFollowers(ctx, userID, -1)
}

func (d *Directory) adjustFollowers(ctx context.Context, userID string, delta int) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	u, ok := d.users[userID]
	if !ok {
		return models.User{}, common.NotFoundError(nil, "User not found")
	}
	u.Followers += delta
	if u.Followers < 0 {
		u.Followers = 0
	}
	return *u, nil
}
