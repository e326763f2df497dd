package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	categoryapp "github.com/muhammadheryan/heart2help/application/category"
	fulfillmentapp "github.com/muhammadheryan/heart2help/application/fulfillment"
	moderationapp "github.com/muhammadheryan/heart2help/application/moderation"
	postapp "github.com/muhammadheryan/heart2help/application/post"
	profileapp "github.com/muhammadheryan/heart2help/application/profile"
	userapp "github.com/muhammadheryan/heart2help/application/user"
	"github.com/muhammadheryan/heart2help/cmd/config"
	utilsContext "github.com/muhammadheryan/heart2help/utils/context"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp        userapp.UserApp
	PostApp        postapp.PostApp
	FulfillmentApp fulfillmentapp.FulfillmentApp
	ModerationApp  moderationapp.ModerationApp
	CategoryApp    categoryapp.CategoryApp
	ProfileApp     profileapp.ProfileApp

	maxUploadBytes int64
}

func NewTransport(cfg *config.Config, rh *RestHandler) http.Handler {
	router := mux.NewRouter()
	rh.maxUploadBytes = cfg.Server.MaxUploadMB << 20

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	router.HandleFunc("/auth/register", rh.Register).Methods(http.MethodPost)
	router.HandleFunc("/auth/login", rh.Login).Methods(http.MethodPost)

	// Identity provider callbacks, authenticated by a static key
	internal := router.PathPrefix("/internal").Subrouter()
	internal.Use(InternalMiddleware(cfg.Persona.WebhookKey))
	internal.HandleFunc("/persona-webhook", rh.PersonaWebhook).Methods(http.MethodPost)

	// Account
	router.HandleFunc("/auth/user", rh.Me).Methods(http.MethodGet)
	router.HandleFunc("/auth/logout", rh.Logout).Methods(http.MethodPost)
	router.HandleFunc("/mobile/send-otp", rh.SendOTP).Methods(http.MethodPost)
	router.HandleFunc("/mobile/verify-otp", rh.VerifyOTP).Methods(http.MethodPost)
	router.HandleFunc("/set-lat-lng", rh.SetLatLng).Methods(http.MethodPost)

	// Categories
	router.HandleFunc("/categories", rh.Categories).Methods(http.MethodGet)
	router.HandleFunc("/categories/user-assign", rh.AssignCategories).Methods(http.MethodPost)

	// Posts. Static segments are registered before /posts/{id}.
	router.HandleFunc("/posts/history", rh.PostHistory).Methods(http.MethodGet)
	router.HandleFunc("/posts", rh.Feed).Methods(http.MethodGet)
	router.HandleFunc("/posts", rh.CreatePost).Methods(http.MethodPost)
	router.HandleFunc("/posts/{id:[0-9]+}", rh.ShowPost).Methods(http.MethodGet)
	router.HandleFunc("/posts/{id:[0-9]+}", rh.UpdatePost).Methods(http.MethodPut, http.MethodPatch)
	router.HandleFunc("/posts/{id:[0-9]+}", rh.DeletePost).Methods(http.MethodDelete)
	router.HandleFunc("/posts/{id:[0-9]+}/update-status", rh.UpdatePostStatus).Methods(http.MethodPost)
	router.HandleFunc("/posts/{id:[0-9]+}/request-fulfill", rh.RequestFulfill).Methods(http.MethodPost)
	router.HandleFunc("/posts/{id:[0-9]+}/helper-feedback", rh.HelperFeedback).Methods(http.MethodPost)
	router.HandleFunc("/posts/{id:[0-9]+}/help", rh.OfferHelp).Methods(http.MethodPost)
	router.HandleFunc("/posts/{id:[0-9]+}/help-list", rh.HelpList).Methods(http.MethodGet)
	router.HandleFunc("/posts/{id:[0-9]+}/help-status/{helper_id:[0-9]+}", rh.UpdateHelpStatus).Methods(http.MethodPost)
	router.HandleFunc("/posts/{id:[0-9]+}/report", rh.ReportPost).Methods(http.MethodPost)

	// Users
	router.HandleFunc("/users/my-block-users", rh.BlockList).Methods(http.MethodGet)
	router.HandleFunc("/users/{id:[0-9]+}", rh.ShowUser).Methods(http.MethodGet)
	router.HandleFunc("/users/{id:[0-9]+}/report", rh.ReportUser).Methods(http.MethodPost)
	router.HandleFunc("/users/{id:[0-9]+}/block", rh.BlockUser).Methods(http.MethodPost)
	router.HandleFunc("/users/{id:[0-9]+}/unblock", rh.UnblockUser).Methods(http.MethodPost)

	// middleware
	router.Use(LoggingMiddleware())
	router.Use(RecoveryMiddleware())
	router.Use(AuthMiddleware(rh.UserApp))

	return router
}

// currentUser is the id AuthMiddleware put on the request context.
func currentUser(r *http.Request) uint64 {
	id, _ := utilsContext.GetUserID(r.Context())
	return id
}
