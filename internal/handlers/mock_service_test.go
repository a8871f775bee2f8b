package handlers

import (
	"context"

	"artcurator/internal/models"
	"artcurator/internal/museum"
	"artcurator/internal/service"

	"github.com/gin-gonic/gin"
)

// Hand-written service mocks for handler tests. Each method delegates to its
// Fn field; an unset field means the test did not expect the call.

type mockAuthorization struct {
	SignUpFn      func(username, password string) (*models.PublicUser, error)
	SignInFn      func(username, password string) (string, *models.PublicUser, error)
	ParseTokenFn  func(accessToken string) (*service.Identity, error)
	DeleteUserFn  func(userID int) error
	GetUsernameFn func(userID int) (string, error)
}

func (m *mockAuthorization) SignUp(_ context.Context, username, password string) (*models.PublicUser, error) {
	return m.SignUpFn(username, password)
}

func (m *mockAuthorization) SignIn(_ context.Context, username, password string) (string, *models.PublicUser, error) {
	return m.SignInFn(username, password)
}

func (m *mockAuthorization) ParseToken(accessToken string) (*service.Identity, error) {
	return m.ParseTokenFn(accessToken)
}

func (m *mockAuthorization) DeleteUser(_ context.Context, userID int) error {
	return m.DeleteUserFn(userID)
}

func (m *mockAuthorization) GetUsername(_ context.Context, userID int) (string, error) {
	return m.GetUsernameFn(userID)
}

type mockFavorites struct {
	AddFn               func(userID, artID int) error
	RemoveFn            func(userID, artID int) error
	ListIDsFn           func(userID int) ([]int, error)
	PageFn              func(userID, page int) (*service.FavoritesPage, error)
	SubmitToGalleryFn   func(userID, artID int, text string) error
	RemoveFromGalleryFn func(userID, artID int) error
	ListGalleryFn       func(userID int) ([]models.Favorite, error)
}

func (m *mockFavorites) Add(_ context.Context, userID, artID int) error {
	return m.AddFn(userID, artID)
}

func (m *mockFavorites) Remove(_ context.Context, userID, artID int) error {
	return m.RemoveFn(userID, artID)
}

func (m *mockFavorites) ListIDs(_ context.Context, userID int) ([]int, error) {
	return m.ListIDsFn(userID)
}

func (m *mockFavorites) Page(_ context.Context, userID, page int) (*service.FavoritesPage, error) {
	return m.PageFn(userID, page)
}

func (m *mockFavorites) SubmitToGallery(_ context.Context, userID, artID int, text string) error {
	return m.SubmitToGalleryFn(userID, artID, text)
}

func (m *mockFavorites) RemoveFromGallery(_ context.Context, userID, artID int) error {
	return m.RemoveFromGalleryFn(userID, artID)
}

func (m *mockFavorites) ListGallery(_ context.Context, userID int) ([]models.Favorite, error) {
	return m.ListGalleryFn(userID)
}

type mockFollowers struct {
	FollowFn        func(userID, targetID int) error
	UnfollowFn      func(userID, targetID int) error
	ListFollowingFn func(userID int) ([]models.PublicUser, error)
	SearchUsersFn   func(excludingUserID int, query string) ([]models.PublicUser, error)
}

func (m *mockFollowers) Follow(_ context.Context, userID, targetID int) error {
	return m.FollowFn(userID, targetID)
}

func (m *mockFollowers) Unfollow(_ context.Context, userID, targetID int) error {
	return m.UnfollowFn(userID, targetID)
}

func (m *mockFollowers) ListFollowing(_ context.Context, userID int) ([]models.PublicUser, error) {
	return m.ListFollowingFn(userID)
}

func (m *mockFollowers) SearchUsers(_ context.Context, excludingUserID int, query string) ([]models.PublicUser, error) {
	return m.SearchUsersFn(excludingUserID, query)
}

type mockMuseum struct {
	DepartmentPageFn func(departmentID, page int) (*service.ArtworkPage, error)
	ObjectFn         func(objectID int) (*museum.Artwork, error)
	RandomSampleFn   func() ([]service.RandomArtwork, error)
}

func (m *mockMuseum) DepartmentPage(_ context.Context, departmentID, page int) (*service.ArtworkPage, error) {
	return m.DepartmentPageFn(departmentID, page)
}

func (m *mockMuseum) Object(_ context.Context, objectID int) (*museum.Artwork, error) {
	return m.ObjectFn(objectID)
}

func (m *mockMuseum) RandomSample(_ context.Context) ([]service.RandomArtwork, error) {
	return m.RandomSampleFn()
}

// allowAnyToken is a ParseToken stub that accepts every token as user 1.
func allowAnyToken(string) (*service.Identity, error) {
	return &service.Identity{UserID: 1, Username: "alice"}, nil
}

// newTestRouter builds the full route tree over the given mocks. Nil mocks
// are fine for routes the test never hits.
func newTestRouter(auth *mockAuthorization, favs *mockFavorites, fols *mockFollowers, mus *mockMuseum) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(&service.Service{
		Authorization: auth,
		Favorites:     favs,
		Followers:     fols,
		Museum:        mus,
	}, nil, "")
	return h.InitRoutes()
}
