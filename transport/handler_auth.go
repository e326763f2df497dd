package transport

import (
	"encoding/json"
	"net/http"

	"github.com/muhammadheryan/heart2help/constant"
	"github.com/muhammadheryan/heart2help/model"
	"github.com/muhammadheryan/heart2help/utils/errors"
)

// Register handler
// @Summary Register user
// @Description Register a new account with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 201 {object} model.UserResponse
// @Failure 422 {object} response
// @Router /auth/register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Register(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, "Your account has been registered.", res)
}

// Login handler
// @Summary Login user
// @Description Login with email or phone and receive JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 422 {object} response
// @Router /auth/login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Login(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, "Login successful.", res)
}

// Logout handler
// @Summary Logout
// @Description Ends the current session and forgets the device push token
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.LogoutRequest false "Logout Request"
// @Success 200 {object} response
// @Router /auth/logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var req model.LogoutRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
			return
		}
	}

	token, _ := bearerToken(r)
	if err := s.UserApp.Logout(r.Context(), currentUser(r), token, &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, "Logout successfully", nil)
}

// Me handler
// @Summary Current user
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.UserResponse
// @Router /auth/user [get]
func (s *RestHandler) Me(w http.ResponseWriter, r *http.Request) {
	res, err := s.UserApp.Me(r.Context(), currentUser(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, "Here are your account details", res)
}

// SendOTP handler
// @Summary Send phone OTP
// @Description Texts a verification code and saves the phone number
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.SendOTPRequest true "Send OTP Request"
// @Success 201 {object} response
// @Failure 502 {object} response
// @Router /mobile/send-otp [post]
func (s *RestHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req model.SendOTPRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	message, err := s.UserApp.SendOTP(r.Context(), currentUser(r), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, message, nil)
}

// VerifyOTP handler
// @Summary Verify phone OTP
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.VerifyOTPRequest true "Verify OTP Request"
// @Success 200 {object} response
// @Router /mobile/verify-otp [post]
func (s *RestHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req model.VerifyOTPRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.UserApp.VerifyOTP(r.Context(), currentUser(r), &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, "OTP has verified.", nil)
}

// SetLatLng handler
// @Summary Save current location
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.SetLatLngRequest true "Location"
// @Success 200 {object} response
// @Router /set-lat-lng [post]
func (s *RestHandler) SetLatLng(w http.ResponseWriter, r *http.Request) {
	var req model.SetLatLngRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.UserApp.SetLatLng(r.Context(), currentUser(r), &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, "latitude longitude added successfully", nil)
}

// PersonaWebhook handler
// @Summary Identity verification callback
// @Tags Internal
// @Accept json
// @Produce json
// @Param request body model.PersonaWebhookRequest true "Persona event"
// @Success 200 {object} response
// @Router /internal/persona-webhook [post]
func (s *RestHandler) PersonaWebhook(w http.ResponseWriter, r *http.Request) {
	var req model.PersonaWebhookRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.UserApp.ConfirmIdentity(r.Context(), &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, "Event processed.", nil)
}
