package service

import (
	"context"
	"log/slog"

	"github.com/egannguyen/seller-dashboard/internal/entity"
	"github.com/egannguyen/seller-dashboard/internal/repository"
)

const (
	signInURL       = "/sign-in"
	afterSignOutURL = "/"
	searchPath      = "/products"
)

// NavService decides which controls the navigation bar shows.
type NavService struct {
	productRepo   repository.ProductRepository
	searchEnabled bool
}

func NewNavService(productRepo repository.ProductRepository, searchEnabled bool) *NavService {
	return &NavService{
		productRepo:   productRepo,
		searchEnabled: searchEnabled,
	}
}

// Build returns the navigation for the given user; a nil user is signed out.
func (s *NavService) Build(ctx context.Context, user *entity.User) entity.Nav {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load products for navigation", "err", err)
	}

	nav := entity.Nav{
		User:            user,
		SignedIn:        user != nil,
		IsSeller:        user.IsSeller(),
		SignInURL:       signInURL,
		AfterSignOutURL: afterSignOutURL,
	}

	if !nav.IsSeller && s.searchEnabled {
		nav.ShowSearch = true
		nav.SearchPath = searchPath
		nav.SearchOptions = make([]string, 0, len(products))
		for _, p := range products {
			nav.SearchOptions = append(nav.SearchOptions, p.Name)
		}
	}

	switch {
	case !nav.SignedIn:
		nav.ShowCart = true
		nav.ShowSignIn = true
	case nav.IsSeller:
		nav.ShowUserMenu = true
	default:
		nav.ShowCart = true
		nav.ShowUserMenu = true
	}

	return nav
}
