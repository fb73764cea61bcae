package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	adminapp "github.com/muhammadheryan/lead-crm/application/admin"
	leadapp "github.com/muhammadheryan/lead-crm/application/lead"
	passwordapp "github.com/muhammadheryan/lead-crm/application/password"
	planapp "github.com/muhammadheryan/lead-crm/application/plan"
	uploadapp "github.com/muhammadheryan/lead-crm/application/upload"
	userapp "github.com/muhammadheryan/lead-crm/application/user"
	"github.com/muhammadheryan/lead-crm/model"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp     userapp.UserApp
	PasswordApp passwordapp.PasswordApp
	LeadApp     leadapp.LeadApp
	AdminApp    adminapp.AdminApp
	PlanApp     planapp.PlanApp
	UploadApp   uploadapp.UploadApp

	// MaxFileBytes caps every uploaded file; zero means 2 MiB.
	MaxFileBytes int64
}

// NewTransport builds the API router. Files under storageDir are served
// read-only at /storage/.
func NewTransport(rh *RestHandler, storageDir string) http.Handler {
	mux := mux.NewRouter()

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	mux.PathPrefix("/storage/").Handler(http.StripPrefix("/storage/", http.FileServer(http.Dir(storageDir))))

	// Public routes
	mux.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/signup", rh.Signup).Methods(http.MethodPost)
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)
	mux.HandleFunc("/forgot-password", rh.ForgotPassword).Methods(http.MethodPost)
	mux.HandleFunc("/verify-otp", rh.VerifyOTP).Methods(http.MethodPost)
	mux.HandleFunc("/reset-password", rh.ResetPassword).Methods(http.MethodPost)

	// protected routes
	mux.HandleFunc("/logout", rh.Logout).Methods(http.MethodPost)
	mux.HandleFunc("/change-password", rh.ChangePassword).Methods(http.MethodPost)
	mux.HandleFunc("/user", rh.GetProfile).Methods(http.MethodGet)
	mux.HandleFunc("/user", rh.UpdateProfile).Methods(http.MethodPut)

	mux.HandleFunc("/leads/level-1", rh.LevelOne).Methods(http.MethodPost)
	mux.HandleFunc("/leads/level-2", rh.LevelTwo).Methods(http.MethodPost)
	mux.HandleFunc("/leads/level-3", rh.LevelThree).Methods(http.MethodPost)
	mux.HandleFunc("/leads/create", rh.CreateLead).Methods(http.MethodPost)
	mux.HandleFunc("/leads", rh.ListLeads).Methods(http.MethodGet)
	mux.HandleFunc("/leads/level/{level}", rh.ListLeadsByLevel).Methods(http.MethodGet)
	mux.HandleFunc("/leads/type/{type}", rh.ListLeadsByType).Methods(http.MethodGet)
	mux.HandleFunc("/leads/{id:[0-9]+}", rh.GetLead).Methods(http.MethodGet)
	mux.HandleFunc("/leads/{id:[0-9]+}", rh.DeleteLead).Methods(http.MethodDelete)
	mux.HandleFunc("/leads/{id:[0-9]+}/visit-update", rh.UpdateVisit).Methods(http.MethodPut)
	mux.HandleFunc("/leads/{id:[0-9]+}/follow-up-update", rh.UpdateFollowUp).Methods(http.MethodPut)
	mux.HandleFunc("/leads/{id:[0-9]+}/change-status", rh.UpdateChangeStatus).Methods(http.MethodPut)
	mux.HandleFunc("/leads/{id:[0-9]+}/change-status-agent", rh.ChangeStatusAgent).Methods(http.MethodPut)
	mux.HandleFunc("/leads/{id:[0-9]+}/lead-status", rh.UpdateLeadStatus).Methods(http.MethodPut)

	mux.HandleFunc("/admin/plans", rh.CreatePlan).Methods(http.MethodPost)
	mux.HandleFunc("/admin/plans", rh.ListPlans).Methods(http.MethodGet)
	mux.HandleFunc("/admin/plans/{id:[0-9]+}", rh.GetPlan).Methods(http.MethodGet)
	mux.HandleFunc("/admin/plans/{id:[0-9]+}", rh.UpdatePlan).Methods(http.MethodPut)
	mux.HandleFunc("/admin/plans/{id:[0-9]+}", rh.DeletePlan).Methods(http.MethodDelete)

	mux.HandleFunc("/admin/agents/create-agent", rh.CreateAgent).Methods(http.MethodPost)
	mux.HandleFunc("/admin/agents", rh.ListAgents).Methods(http.MethodGet)
	mux.HandleFunc("/admin/agents/{id:[0-9]+}", rh.GetAgent).Methods(http.MethodGet)
	mux.HandleFunc("/admin/agents/{id:[0-9]+}", rh.EditAgent).Methods(http.MethodPut)
	mux.HandleFunc("/admin/agents/{id:[0-9]+}", rh.DeleteAgent).Methods(http.MethodDelete)
	mux.HandleFunc("/admin/freelancers", rh.ListFreelancers).Methods(http.MethodGet)
	mux.HandleFunc("/admin/freelancers/approve", rh.ApproveFreelancer).Methods(http.MethodPost)

	mux.HandleFunc("/upload-multiple-images", rh.UploadImages).Methods(http.MethodPost)

	// middleware
	mux.Use(RecoverMiddleware())
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(rh.UserApp))

	return mux
}

// Register handler
// @Summary Register user
// @Description Register a generic user account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} Response{data=model.UserSummary}
// @Router /register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, "User registered successfully", res)
}

// Signup handler
// @Summary Freelancer signup
// @Description Create a freelancer account that waits for admin approval
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.SignupRequest true "Signup Request"
// @Success 200 {object} Response{data=model.UserSummary}
// @Router /signup [post]
func (s *RestHandler) Signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.SignupRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Signup(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, "Signup successful, waiting for admin approval", res)
}

// Login handler
// @Summary Login user
// @Description Login with email and password and receive a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} Response{data=model.LoginResponse}
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, "Login successful", res)
}

// Logout handler
// @Summary Logout
// @Description Revoke every session of the caller
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Router /logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	identity, err := callerIdentity(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.UserApp.Logout(r.Context(), identity); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, "Logged out successfully", nil)
}

// ChangePassword handler
// @Summary Change password
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ChangePasswordRequest true "Change Password Request"
// @Success 200 {object} Response
// @Router /change-password [post]
func (s *RestHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	identity, err := callerIdentity(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.ChangePasswordRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.UserApp.ChangePassword(r.Context(), identity, &req); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, "Password changed successfully", nil)
}

// GetProfile handler
// @Summary Current user
// @Tags User
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=model.UserEntity}
// @Router /user [get]
func (s *RestHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	identity, err := callerIdentity(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.GetProfile(r.Context(), identity)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateProfile handler
// @Summary Update current user
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.UpdateProfileRequest true "Profile patch"
// @Success 200 {object} Response{data=model.UserEntity}
// @Router /user [put]
func (s *RestHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	identity, err := callerIdentity(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.UpdateProfileRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.UpdateProfile(r.Context(), identity, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, "Profile updated successfully", res)
}

// ForgotPassword handler
// @Summary Send password reset OTP
// @Tags Password
// @Accept json
// @Produce json
// @Param request body model.ForgotPasswordRequest true "Forgot Password Request"
// @Success 200 {object} Response
// @Router /forgot-password [post]
func (s *RestHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req model.ForgotPasswordRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.PasswordApp.SendOTP(r.Context(), &req); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, "OTP sent to your email", nil)
}

// VerifyOTP handler
// @Summary Verify password reset OTP
// @Tags Password
// @Accept json
// @Produce json
// @Param request body model.VerifyOTPRequest true "Verify OTP Request"
// @Success 200 {object} Response
// @Router /verify-otp [post]
func (s *RestHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req model.VerifyOTPRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.PasswordApp.VerifyOTP(r.Context(), &req); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, "OTP verified successfully", nil)
}

// ResetPassword handler
// @Summary Reset password with OTP
// @Tags Password
// @Accept json
// @Produce json
// @Param request body model.ResetPasswordRequest true "Reset Password Request"
// @Success 200 {object} Response
// @Router /reset-password [post]
func (s *RestHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req model.ResetPasswordRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.PasswordApp.ResetPassword(r.Context(), &req); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, "Password has been reset successfully", nil)
}
