package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/medtrack/medtrack/internal/ctxkeys"
	"github.com/medtrack/medtrack/internal/flash"
	"github.com/medtrack/medtrack/internal/service"
	"github.com/medtrack/medtrack/internal/ui"
	"github.com/medtrack/medtrack/internal/urls"
)

const maxAvatarUploadBytes = 10 << 20 // request body cap, file size checked separately

type accountHandler struct {
	authService    *service.AuthService
	profileService *service.ProfileService
	fileService    *service.FileService
}

func NewAccountHandler(authService *service.AuthService, profileService *service.ProfileService, fileService *service.FileService) *accountHandler {
	return &accountHandler{
		authService:    authService,
		profileService: profileService,
		fileService:    fileService,
	}
}

func (h *accountHandler) AccountPage(w http.ResponseWriter, r *http.Request) {
	pc := ui.NewPageContext(w, r, "Account")
	ui.Render(w, r, ui.AccountPage(pc))
}

func (h *accountHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	_, err := h.profileService.Update(user, service.ProfileInput{
		Name:           r.FormValue("name"),
		Age:            r.FormValue("age"),
		Mobile:         r.FormValue("mobile"),
		Address:        r.FormValue("address"),
		Specialization: r.FormValue("specialization"),
	})
	if err != nil {
		flash.Danger(w, userMessage(err, "Could not save your profile. Please try again."))
		http.Redirect(w, r, urls.Account, http.StatusSeeOther)
		return
	}

	flash.Success(w, "Profile updated.")
	http.Redirect(w, r, urls.Account, http.StatusSeeOther)
}

func (h *accountHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	newPassword := r.FormValue("new_password")
	if newPassword != r.FormValue("confirm_password") {
		flash.Danger(w, "Passwords do not match.")
		http.Redirect(w, r, urls.Account, http.StatusSeeOther)
		return
	}

	err := h.authService.UpdatePassword(user.ID, r.FormValue("current_password"), newPassword)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			flash.Danger(w, "Current password is incorrect.")
		} else {
			flash.Danger(w, userMessage(err, "Could not update your password. Please try again."))
		}
		http.Redirect(w, r, urls.Account, http.StatusSeeOther)
		return
	}

	flash.Success(w, "Password updated.")
	http.Redirect(w, r, urls.Account, http.StatusSeeOther)
}

// UploadAvatar handles the htmx multipart upload and swaps the widget back.
func (h *accountHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	err := r.ParseMultipartForm(maxAvatarUploadBytes)
	if err != nil {
		http.Error(w, "upload too large", http.StatusRequestEntityTooLarge)
		return
	}

	_, header, err := r.FormFile("avatar")
	if err != nil {
		http.Error(w, "no file uploaded", http.StatusBadRequest)
		return
	}

	_, err = h.fileService.UploadAvatar(user, header)
	if err != nil {
		slog.Error("avatar upload failed", "error", err, "user_id", user.ID)
		http.Error(w, userMessage(err, "Could not upload the image."), http.StatusUnprocessableEntity)
		return
	}

	h.fileService.PopulateAvatar(user)
	pc := ui.NewPageContext(w, r, "Account")
	ui.Render(w, r, ui.AvatarWidget(pc))
}

func (h *accountHandler) DeleteAvatar(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	err := h.fileService.DeleteAvatar(user)
	if err != nil {
		slog.Error("avatar delete failed", "error", err, "user_id", user.ID)
		http.Error(w, "could not remove the avatar", http.StatusInternalServerError)
		return
	}

	user.AvatarURL = ""
	pc := ui.NewPageContext(w, r, "Account")
	ui.Render(w, r, ui.AvatarWidget(pc))
}
