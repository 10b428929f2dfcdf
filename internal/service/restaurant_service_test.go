package service

import (
	"context"
	"errors"
	"testing"

	"github.com/techfood-api/internal/models"
	"github.com/techfood-api/internal/repository"
)

type fakeRestaurantRepo struct {
	restaurants map[uint]*models.Restaurant
}

func (r *fakeRestaurantRepo) List(filter repository.RestaurantListFilter) ([]models.Restaurant, int64, error) {
	return nil, 0, nil
}

func (r *fakeRestaurantRepo) GetByID(id uint) (*models.Restaurant, error) {
	return r.restaurants[id], nil
}

func (r *fakeRestaurantRepo) GetByIDWithMenu(id uint) (*models.Restaurant, error) {
	return r.restaurants[id], nil
}

func (r *fakeRestaurantRepo) Create(restaurant *models.Restaurant) error { return nil }
func (r *fakeRestaurantRepo) Update(restaurant *models.Restaurant) error { return nil }
func (r *fakeRestaurantRepo) Delete(id uint) error                       { return nil }

func TestRestaurantServiceGetMenu(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRestaurantRepo{restaurants: map[uint]*models.Restaurant{
		1: {
			ID:   1,
			Name: "Burger House",
			MenuItems: []models.MenuItem{
				{ID: 11, RestaurantID: 1, Name: "Hamburguesa", IsAvailable: true},
			},
		},
	}}
	svc := NewRestaurantService(repo)

	restaurant, err := svc.GetMenu(ctx, 1)
	if err != nil {
		t.Fatalf("get menu: %v", err)
	}
	if restaurant.Name != "Burger House" || len(restaurant.MenuItems) != 1 {
		t.Fatalf("unexpected menu result: %+v", restaurant)
	}

	if _, err := svc.GetMenu(ctx, 0); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for zero id, got %v", err)
	}
	if _, err := svc.GetMenu(ctx, 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown id, got %v", err)
	}
}
