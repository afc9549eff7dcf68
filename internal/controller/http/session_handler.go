package http

import (
	"net/http"

	"vidtube/internal/entity"
	"vidtube/internal/usecase"
	"vidtube/pkg/middleware"
	"vidtube/pkg/response"

	"github.com/gin-gonic/gin"
)

// CookieOptions drives the attributes of both auth cookies. CrossSite
// flips Secure and SameSite together so the pair is never inconsistent.
type CookieOptions struct {
	CrossSite     bool
	AccessMaxAge  int
	RefreshMaxAge int
}

type SessionHandler struct {
	sessionUseCase usecase.SessionUseCase
	tempDir        string
	cookies        CookieOptions
}

func NewSessionHandler(sessionUseCase usecase.SessionUseCase, tempDir string, cookies CookieOptions) *SessionHandler {
	return &SessionHandler{
		sessionUseCase: sessionUseCase,
		tempDir:        tempDir,
		cookies:        cookies,
	}
}

type RegisterRequest struct {
	FullName string `form:"fullName"`
	Email    string `form:"email"`
	Username string `form:"username"`
	Password string `form:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type ChangePasswordRequest struct {
	OldPassword     string `json:"oldPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

type UpdateAccountRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// Register godoc
// @Summary      Register a new user
// @Description  Register with text fields plus a required avatar file and optional cover image
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Param        fullName formData string true "Full name"
// @Param        email formData string true "Email"
// @Param        username formData string true "Username"
// @Param        password formData string true "Password"
// @Param        avatar formData file true "Avatar image"
// @Param        coverImage formData file false "Cover image"
// @Success      201  {object}  response.Envelope
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      409  {object}  response.ErrorEnvelope
// @Failure      500  {object}  response.ErrorEnvelope
// @Router       /users/register [post]
func (h *SessionHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Fail(c, response.BadRequest("Invalid request body"))
		return
	}

	input := usecase.RegisterInput{
		FullName: req.FullName,
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	}

	if avatar, err := c.FormFile("avatar"); err == nil {
		path, cleanup, err := stageUpload(c, avatar, h.tempDir)
		if err != nil {
			response.Fail(c, response.Internal("Failed to stage avatar file"))
			return
		}
		defer cleanup()
		input.AvatarPath = path
	}

	if cover, err := c.FormFile("coverImage"); err == nil {
		path, cleanup, err := stageUpload(c, cover, h.tempDir)
		if err != nil {
			response.Fail(c, response.Internal("Failed to stage cover image file"))
			return
		}
		defer cleanup()
		input.CoverImagePath = path
	}

	user, err := h.sessionUseCase.Register(input)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusCreated, user, "User registered successfully")
}

// Login godoc
// @Summary      Log in with email or username
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      401  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /users/login [post]
func (h *SessionHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.BadRequest("Invalid request body"))
		return
	}

	user, tokens, err := h.sessionUseCase.Login(req.Email, req.Username, req.Password)
	if err != nil {
		response.Fail(c, err)
		return
	}

	h.setAuthCookies(c, tokens)
	response.OK(c, http.StatusOK, gin.H{
		"user":         user,
		"accessToken":  tokens.AccessToken,
		"refreshToken": tokens.RefreshToken,
	}, "User logged in successfully")
}

// Logout godoc
// @Summary      Log out the current user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Envelope
// @Failure      401  {object}  response.ErrorEnvelope
// @Router       /users/logout [post]
func (h *SessionHandler) Logout(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Fail(c, response.Unauthorized("Unauthorized request"))
		return
	}

	if err := h.sessionUseCase.Logout(user.ID); err != nil {
		response.Fail(c, err)
		return
	}

	h.clearAuthCookies(c)
	response.OK(c, http.StatusOK, gin.H{}, "User logged out successfully")
}

// RefreshToken godoc
// @Summary      Exchange a refresh token for a new token pair
// @Description  Reads the refresh token from the refreshToken cookie or the JSON body
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body RefreshRequest false "Refresh token (when not using cookies)"
// @Success      200  {object}  response.Envelope
// @Failure      401  {object}  response.ErrorEnvelope
// @Router       /users/refresh-token [post]
func (h *SessionHandler) RefreshToken(c *gin.Context) {
	incoming, _ := c.Cookie(middleware.RefreshTokenCookie)
	if incoming == "" {
		var req RefreshRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			incoming = req.RefreshToken
		}
	}

	tokens, err := h.sessionUseCase.Refresh(incoming)
	if err != nil {
		response.Fail(c, err)
		return
	}

	h.setAuthCookies(c, tokens)
	response.OK(c, http.StatusOK, gin.H{
		"accessToken":  tokens.AccessToken,
		"refreshToken": tokens.RefreshToken,
	}, "Access token refreshed")
}

// ChangePassword godoc
// @Summary      Change the current user's password
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ChangePasswordRequest true "Old and new passwords"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      401  {object}  response.ErrorEnvelope
// @Router       /users/change-password [post]
func (h *SessionHandler) ChangePassword(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Fail(c, response.Unauthorized("Unauthorized request"))
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.BadRequest("Invalid request body"))
		return
	}

	if err := h.sessionUseCase.ChangePassword(user.ID, req.OldPassword, req.NewPassword, req.ConfirmPassword); err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{}, "Password changed successfully")
}

// CurrentUser godoc
// @Summary      Get the currently authenticated user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Envelope
// @Failure      401  {object}  response.ErrorEnvelope
// @Router       /users/current-user [get]
func (h *SessionHandler) CurrentUser(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Fail(c, response.Unauthorized("Unauthorized request"))
		return
	}

	response.OK(c, http.StatusOK, user, "Current user fetched successfully")
}

// UpdateAccount godoc
// @Summary      Update full name and email
// @Description  Username is immutable here even if supplied
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body UpdateAccountRequest true "Account details"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      401  {object}  response.ErrorEnvelope
// @Router       /users/update-account [patch]
func (h *SessionHandler) UpdateAccount(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Fail(c, response.Unauthorized("Unauthorized request"))
		return
	}

	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.BadRequest("Invalid request body"))
		return
	}

	updated, err := h.sessionUseCase.UpdateAccountDetails(user.ID, req.FullName, req.Email)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusOK, updated, "Account details updated successfully")
}

// UpdateAvatar godoc
// @Summary      Replace the current user's avatar
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        avatar formData file true "Avatar image"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      401  {object}  response.ErrorEnvelope
// @Router       /users/avatar [patch]
func (h *SessionHandler) UpdateAvatar(c *gin.Context) {
	h.updateImage(c, "avatar", h.sessionUseCase.UpdateAvatar, "Avatar updated successfully")
}

// UpdateCoverImage godoc
// @Summary      Replace the current user's cover image
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        coverImage formData file true "Cover image"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      401  {object}  response.ErrorEnvelope
// @Router       /users/cover-image [patch]
func (h *SessionHandler) UpdateCoverImage(c *gin.Context) {
	h.updateImage(c, "coverImage", h.sessionUseCase.UpdateCoverImage, "Cover image updated successfully")
}

func (h *SessionHandler) updateImage(
	c *gin.Context,
	field string,
	update func(userID, localPath string) (*entity.User, error),
	message string,
) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Fail(c, response.Unauthorized("Unauthorized request"))
		return
	}

	localPath := ""
	if file, err := c.FormFile(field); err == nil {
		path, cleanup, err := stageUpload(c, file, h.tempDir)
		if err != nil {
			response.Fail(c, response.Internal("Failed to stage uploaded file"))
			return
		}
		defer cleanup()
		localPath = path
	}

	updated, err := update(user.ID, localPath)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusOK, updated, message)
}

func (h *SessionHandler) setAuthCookies(c *gin.Context, tokens *usecase.TokenPair) {
	h.applySameSite(c)
	secure := h.cookies.CrossSite
	c.SetCookie(middleware.AccessTokenCookie, tokens.AccessToken, h.cookies.AccessMaxAge, "/", "", secure, true)
	c.SetCookie(middleware.RefreshTokenCookie, tokens.RefreshToken, h.cookies.RefreshMaxAge, "/", "", secure, true)
}

func (h *SessionHandler) clearAuthCookies(c *gin.Context) {
	h.applySameSite(c)
	secure := h.cookies.CrossSite
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", secure, true)
	c.SetCookie(middleware.RefreshTokenCookie, "", -1, "/", "", secure, true)
}

func (h *SessionHandler) applySameSite(c *gin.Context) {
	if h.cookies.CrossSite {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
}
