package usecase

import (
	"errors"
	"strings"

	"vidtube/internal/entity"
	"vidtube/internal/repo/persistent"
	"vidtube/pkg/jwt"
	"vidtube/pkg/logger"
	"vidtube/pkg/response"

	"golang.org/x/crypto/bcrypt"
)

// Uploader proxies a locally staged file to the media host. An empty URL
// with a nil error means "nothing usable came back" and callers must
// treat it as failure.
type Uploader interface {
	UploadLocalFile(localPath string) (string, error)
}

// TokenPair is the access/refresh token pair returned by login and refresh.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type RegisterInput struct {
	FullName       string
	Email          string
	Username       string
	Password       string
	AvatarPath     string
	CoverImagePath string
}

type SessionUseCase interface {
	Register(input RegisterInput) (*entity.User, error)
	Login(email, username, password string) (*entity.User, *TokenPair, error)
	Logout(userID string) error
	Refresh(incomingToken string) (*TokenPair, error)
	ChangePassword(userID, oldPassword, newPassword, confirmPassword string) error
	UpdateAccountDetails(userID, fullName, email string) (*entity.User, error)
	UpdateAvatar(userID, localPath string) (*entity.User, error)
	UpdateCoverImage(userID, localPath string) (*entity.User, error)
	ResolveUser(userID string) (*entity.User, error)
}

type sessionUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	uploader   Uploader
	logger     *logger.Logger
}

func NewSessionUseCase(
	userRepo persistent.UserRepository,
	jwtService *jwt.Service,
	uploader Uploader,
	logger *logger.Logger,
) SessionUseCase {
	return &sessionUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		uploader:   uploader,
		logger:     logger,
	}
}

func (uc *sessionUseCase) Register(input RegisterInput) (*entity.User, error) {
	fullName := strings.TrimSpace(input.FullName)
	email := strings.TrimSpace(input.Email)
	username := strings.ToLower(strings.TrimSpace(input.Username))
	password := strings.TrimSpace(input.Password)

	if fullName == "" || email == "" || username == "" || password == "" {
		return nil, response.BadRequest("All fields are required")
	}

	exists, err := uc.userRepo.ExistsByUsernameOrEmail(username, email)
	if err != nil {
		uc.logger.Error("Failed to check existing user: %v", err)
		return nil, response.Internal("Failed to verify existing accounts")
	}
	if exists {
		return nil, response.Conflict("User already exists with this username or email")
	}

	if input.AvatarPath == "" {
		return nil, response.BadRequest("Avatar image is required")
	}

	// Both images go to the media host before the record exists; a user
	// row is never created without a usable avatar URL.
	avatarURL, err := uc.uploader.UploadLocalFile(input.AvatarPath)
	if err != nil || avatarURL == "" {
		uc.logger.Error("Failed to upload avatar: %v", err)
		return nil, response.BadRequest("Error while uploading avatar")
	}

	coverImageURL := ""
	if input.CoverImagePath != "" {
		if url, err := uc.uploader.UploadLocalFile(input.CoverImagePath); err == nil {
			coverImageURL = url
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, response.Internal("Failed to process registration")
	}

	user := &entity.User{
		FullName:      fullName,
		Email:         email,
		Username:      username,
		Password:      string(hashedPassword),
		AvatarURL:     avatarURL,
		CoverImageURL: coverImageURL,
	}

	if err := uc.userRepo.Create(user); err != nil {
		uc.logger.Error("Failed to create user: %v", err)
		return nil, response.Internal("Failed to create user")
	}

	created, err := uc.userRepo.GetByID(user.ID)
	if err != nil {
		uc.logger.Error("Failed to re-fetch created user %s: %v", user.ID, err)
		return nil, response.Internal("Something went wrong while registering the user")
	}

	return created.Sanitized(), nil
}

func (uc *sessionUseCase) Login(email, username, password string) (*entity.User, *TokenPair, error) {
	email = strings.TrimSpace(email)
	username = strings.ToLower(strings.TrimSpace(username))

	if email == "" && username == "" {
		return nil, nil, response.BadRequest("Username or email is required")
	}

	user, err := uc.userRepo.GetByUsernameOrEmail(username, email)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, nil, response.NotFound("User does not exist")
		}
		uc.logger.Error("Failed to look up user: %v", err)
		return nil, nil, response.Internal("Failed to look up user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, response.Unauthorized("Invalid user credentials")
	}

	tokens, err := uc.generateTokenPair(user)
	if err != nil {
		return nil, nil, err
	}

	return user.Sanitized(), tokens, nil
}

func (uc *sessionUseCase) Logout(userID string) error {
	// No precondition check: clearing an already-empty token is fine.
	if err := uc.userRepo.UpdateRefreshToken(userID, ""); err != nil {
		uc.logger.Error("Failed to clear refresh token for %s: %v", userID, err)
		return response.Internal("Failed to log out")
	}
	return nil
}

func (uc *sessionUseCase) Refresh(incomingToken string) (*TokenPair, error) {
	if incomingToken == "" {
		return nil, response.Unauthorized("Unauthorized request")
	}

	claims, err := uc.jwtService.ValidateRefreshToken(incomingToken)
	if err != nil {
		return nil, response.Unauthorized(err.Error())
	}

	user, err := uc.userRepo.GetByID(claims.UserID)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, response.Unauthorized("Invalid refresh token")
		}
		uc.logger.Error("Failed to load user %s during refresh: %v", claims.UserID, err)
		return nil, response.Internal("Failed to refresh tokens")
	}

	// Byte-for-byte comparison against the stored value is what makes a
	// rotated-out token unusable even while its signature is still valid.
	if incomingToken != user.RefreshToken {
		return nil, response.Unauthorized("Refresh token is expired or already used")
	}

	return uc.generateTokenPair(user)
}

func (uc *sessionUseCase) ChangePassword(userID, oldPassword, newPassword, confirmPassword string) error {
	if newPassword != confirmPassword {
		return response.BadRequest("New password and confirm password do not match")
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		uc.logger.Error("Failed to load user %s: %v", userID, err)
		return response.Internal("Failed to change password")
	}

	// A 400 here, not 401: the caller is already authenticated and this
	// is input validation of the old-password field.
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return response.BadRequest("Invalid password")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return response.Internal("Failed to change password")
	}

	if err := uc.userRepo.UpdatePassword(userID, string(hashed)); err != nil {
		uc.logger.Error("Failed to update password for %s: %v", userID, err)
		return response.Internal("Failed to change password")
	}
	return nil
}

func (uc *sessionUseCase) UpdateAccountDetails(userID, fullName, email string) (*entity.User, error) {
	fullName = strings.TrimSpace(fullName)
	email = strings.TrimSpace(email)
	if fullName == "" || email == "" {
		return nil, response.BadRequest("All fields are required")
	}

	if err := uc.userRepo.UpdateAccountDetails(userID, fullName, email); err != nil {
		uc.logger.Error("Failed to update account details for %s: %v", userID, err)
		return nil, response.Internal("Failed to update account details")
	}

	return uc.refetchSanitized(userID)
}

func (uc *sessionUseCase) UpdateAvatar(userID, localPath string) (*entity.User, error) {
	if localPath == "" {
		return nil, response.BadRequest("Avatar file is missing")
	}

	avatarURL, err := uc.uploader.UploadLocalFile(localPath)
	if err != nil || avatarURL == "" {
		uc.logger.Error("Failed to upload avatar: %v", err)
		return nil, response.BadRequest("Error while uploading avatar")
	}

	// The previous avatar stays on the media host; nothing references it
	// afterwards but cleanup is not this path's job.
	if err := uc.userRepo.UpdateAvatarURL(userID, avatarURL); err != nil {
		uc.logger.Error("Failed to update avatar for %s: %v", userID, err)
		return nil, response.Internal("Failed to update avatar")
	}

	return uc.refetchSanitized(userID)
}

func (uc *sessionUseCase) UpdateCoverImage(userID, localPath string) (*entity.User, error) {
	if localPath == "" {
		return nil, response.BadRequest("Cover image file is missing")
	}

	coverURL, err := uc.uploader.UploadLocalFile(localPath)
	if err != nil || coverURL == "" {
		uc.logger.Error("Failed to upload cover image: %v", err)
		return nil, response.BadRequest("Error while uploading cover image")
	}

	if err := uc.userRepo.UpdateCoverImageURL(userID, coverURL); err != nil {
		uc.logger.Error("Failed to update cover image for %s: %v", userID, err)
		return nil, response.Internal("Failed to update cover image")
	}

	return uc.refetchSanitized(userID)
}

func (uc *sessionUseCase) ResolveUser(userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	return user.Sanitized(), nil
}

// generateTokenPair mints both tokens and persists the refresh token in
// the same logical operation; if the write fails no tokens are returned.
func (uc *sessionUseCase) generateTokenPair(user *entity.User) (*TokenPair, error) {
	accessToken, err := uc.jwtService.GenerateAccessToken(user.ID, user.Username, user.Email, user.FullName)
	if err != nil {
		uc.logger.Error("Failed to generate access token: %v", err)
		return nil, response.Internal("Something went wrong while generating refresh and access tokens")
	}

	refreshToken, err := uc.jwtService.GenerateRefreshToken(user.ID)
	if err != nil {
		uc.logger.Error("Failed to generate refresh token: %v", err)
		return nil, response.Internal("Something went wrong while generating refresh and access tokens")
	}

	if err := uc.userRepo.UpdateRefreshToken(user.ID, refreshToken); err != nil {
		uc.logger.Error("Failed to persist refresh token for %s: %v", user.ID, err)
		return nil, response.Internal("Something went wrong while generating refresh and access tokens")
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (uc *sessionUseCase) refetchSanitized(userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		uc.logger.Error("Failed to re-fetch user %s: %v", userID, err)
		return nil, response.Internal("Failed to load updated user")
	}
	return user.Sanitized(), nil
}
