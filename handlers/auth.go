package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/spf13/cast"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r loginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// HandleLogin authenticates by username and password and returns a
// PocketBase auth token plus the profile fields the frontend keeps around.
func HandleLogin(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req loginRequest
		if err := e.BindBody(&req); err != nil {
			return badRequest(e, err)
		}
		if err := req.Validate(); err != nil {
			return badRequest(e, err)
		}

		user, err := app.FindFirstRecordByData("users", "username", req.Username)
		if err != nil || !user.ValidatePassword(req.Password) {
			return apiError(e, http.StatusUnauthorized, "Invalid credentials")
		}

		token, err := user.NewAuthToken()
		if err != nil {
			log.Printf("auth: could not issue token for %s: %v", req.Username, err)
			return apiError(e, http.StatusInternalServerError, "Login failed")
		}

		return e.JSON(http.StatusOK, map[string]any{
			"token":     token,
			"role":      user.GetString("role"),
			"fname":     user.GetString("fname"),
			"lname":     user.GetString("lname"),
			"username":  user.GetString("username"),
			"threshold": user.GetFloat("threshold"),
		})
	}
}

type signupRequest struct {
	Fname     string `json:"fname"`
	Lname     string `json:"lname"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Threshold any    `json:"threshold"`
}

func (r signupRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(2, 80)),
		validation.Field(&r.Password, validation.Required, validation.Length(5, 72)),
		validation.Field(&r.Role, validation.In("admin", "manager", "user")),
	)
}

// HandleSignup creates a user account. Admins may create any role; managers
// may only create plain users and cannot grant a discount threshold above
// their own.
func HandleSignup(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		current, err := requireRoles(e, "admin", "manager")
		if current == nil {
			return err
		}

		var req signupRequest
		if err := e.BindBody(&req); err != nil {
			return badRequest(e, err)
		}
		if err := req.Validate(); err != nil {
			return badRequest(e, err)
		}

		if existing, err := app.FindFirstRecordByData("users", "username", req.Username); err == nil && existing != nil {
			return apiError(e, http.StatusBadRequest, "Username already exists")
		}

		role := req.Role
		if role == "" {
			role = "user"
		}
		threshold := cast.ToFloat64(req.Threshold)

		if current.GetString("role") == "manager" {
			if role == "admin" || role == "manager" {
				return apiError(e, http.StatusForbidden, "Managers cannot create admin or manager users")
			}
			if threshold > current.GetFloat("threshold") {
				return apiError(e, http.StatusForbidden,
					fmt.Sprintf("Threshold cannot exceed your limit of %g%%", current.GetFloat("threshold")))
			}
		}

		usersCol, err := app.FindCollectionByNameOrId("users")
		if err != nil {
			return apiError(e, http.StatusInternalServerError, "User creation failed")
		}

		email := strings.TrimSpace(req.Email)
		if email == "" {
			email = req.Username + "@reraeasy.local"
		}

		user := core.NewRecord(usersCol)
		user.Set("username", req.Username)
		user.Set("fname", req.Fname)
		user.Set("lname", req.Lname)
		user.Set("role", role)
		user.Set("threshold", threshold)
		user.Set("email", email)
		user.Set("verified", true)
		user.SetPassword(req.Password)

		if err := app.Save(user); err != nil {
			log.Printf("auth: could not create user %s: %v", req.Username, err)
			return apiError(e, http.StatusInternalServerError, "User creation failed")
		}

		return e.JSON(http.StatusCreated, map[string]any{
			"message": "User created successfully",
			"user": map[string]any{
				"username":  user.GetString("username"),
				"role":      user.GetString("role"),
				"threshold": user.GetFloat("threshold"),
			},
		})
	}
}

// HandleMe returns the authenticated user's profile.
func HandleMe() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		user, err := requireAuth(e)
		if user == nil {
			return err
		}
		return e.JSON(http.StatusOK, map[string]any{
			"id":        user.Id,
			"fname":     user.GetString("fname"),
			"lname":     user.GetString("lname"),
			"username":  user.GetString("username"),
			"role":      user.GetString("role"),
			"threshold": user.GetFloat("threshold"),
		})
	}
}
