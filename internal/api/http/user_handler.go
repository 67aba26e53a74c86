package http

import (
	"encoding/json"
	"net/http"

	"agrishare-backend/internal/domain"
	"agrishare-backend/internal/service"

	"github.com/gorilla/mux"
)

type UserHandler struct {
	users service.UserService
}

func NewUserHandler(users service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type createUserRequest struct {
	IdentityToken string `json:"identity_token"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Location      string `json:"location"`
	Language      string `json:"language_preference"`
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.ErrValidation)
		return
	}

	user, err := h.users.CreateUser(r.Context(), req.IdentityToken, req.Email, req.Name, req.Phone, req.Location, req.Language)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r), "id")
	if err != nil {
		writeError(w, err)
		return
	}

	user, err := h.users.GetUser(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// GetByIdentity resolves a user from the identity provider's token, as
// supplied by the authenticating front layer on first sign-in, or from
// an email address.
func (h *UserHandler) GetByIdentity(w http.ResponseWriter, r *http.Request) {
	var user *domain.User
	var err error
	if token := r.URL.Query().Get("identity_token"); token != "" {
		user, err = h.users.GetUserByIdentityToken(r.Context(), token)
	} else {
		user, err = h.users.GetUserByEmail(r.Context(), r.URL.Query().Get("email"))
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

type updateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Language string `json:"language_preference"`
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r), "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.ErrValidation)
		return
	}

	user, err := h.users.UpdateProfile(r.Context(), id, req.Name, req.Email, req.Phone, req.Location, req.Language)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r), "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.users.DeleteUser(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
