package directory

import (
	"context"
	"strings"

	"github.com/Senethlakshan/wanderlust-tales/common"
	"github.com/Senethlakshan/wanderlust-tales/models"
)

func (d *Directory) Countries(ctx context.Context) ([]models.Country, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]models.Country{}, d.countries...), nil
}

// Country looks a country up by name, ignoring case.
func (d *Directory) Country(ctx context.Context, name string) (models.Country, error) {
	if err := ctx.Err(); err != nil {
		return models.Country{}, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, c := range d.countries {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return models.Country{}, common.NotFoundError(nil, "Country not found")
}
