package handler

import (
    "context"
    "database/sql"
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/sepehrad/venue-reservation/internal/config"
    "github.com/sepehrad/venue-reservation/internal/model"
    "github.com/sepehrad/venue-reservation/internal/repository"
    "github.com/sepehrad/venue-reservation/internal/utils"
)

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
    Cfg   config.Config
    Users *repository.UserRepo
}

func NewAuthHandler(cfg config.Config, u *repository.UserRepo) *AuthHandler {
    return &AuthHandler{Cfg: cfg, Users: u}
}

// ----- DTOs -----

type registerReq struct {
    Email    string `json:"email"`
    Password string `json:"password"`
    Role     string `json:"role"` // CUSTOMER | VENDOR
}
type loginReq struct {
    Email    string `json:"email"`
    Password string `json:"password"`
}

type tokenPart struct {
    Token   string    `json:"token"`
    Expires time.Time `json:"expires"`
}
type userPart struct {
    ID    uint64 `json:"id"`
    Email string `json:"email"`
    Role  string `json:"role"`
}
type authResp struct {
    User   userPart  `json:"user"`
    Access tokenPart `json:"access"`
}

// Register: create user and return a token immediately. Admin accounts
// are provisioned out of band, never through this endpoint.
func (h *AuthHandler) Register(c echo.Context) error {
    var req registerReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Email = strings.ToLower(strings.TrimSpace(req.Email))
    if req.Email == "" || req.Password == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
    }
    role := strings.ToUpper(strings.TrimSpace(req.Role))
    if role != model.RoleVendor && role != model.RoleCustomer {
        role = model.RoleCustomer
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    uid, err := h.Users.Create(ctx, req.Email, req.Password, role, h.Cfg.BcryptCost)
    if err != nil {
        if err == repository.ErrEmailExists {
            return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
    }

    access, err := utils.NewAccessToken(h.Cfg.JWTSecret, uid, role, h.Cfg.AccessTTLMin)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
    }

    return c.JSON(http.StatusCreated, authResp{
        User:   userPart{ID: uid, Email: req.Email, Role: role},
        Access: tokenPart{Token: access.Token, Expires: access.Exp},
    })
}

// Login: verify credentials and return a fresh token.
func (h *AuthHandler) Login(c echo.Context) error {
    var req loginReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Email = strings.ToLower(strings.TrimSpace(req.Email))
    if req.Email == "" || req.Password == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    u, err := h.Users.GetByEmail(ctx, req.Email)
    if err != nil {
        if err == sql.ErrNoRows {
            return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    if !utils.VerifyPassword(u.PasswordHash, req.Password) {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
    }

    access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Role, h.Cfg.AccessTTLMin)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
    }

    return c.JSON(http.StatusOK, authResp{
        User:   userPart{ID: u.ID, Email: u.Email, Role: u.Role},
        Access: tokenPart{Token: access.Token, Expires: access.Exp},
    })
}

// Me: simple protected endpoint.
func (h *AuthHandler) Me(c echo.Context) error {
    return c.JSON(http.StatusOK, echo.Map{
        "user_id": c.Get("user_id"),
        "role":    c.Get("role"),
    })
}
