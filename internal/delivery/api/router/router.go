// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/url"

	"mytube/config"
	"mytube/internal/delivery/api/middleware"
	"mytube/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	VideoHandler        *handler.VideoHandler
	CommentHandler      *handler.CommentHandler
	LikeHandler         *handler.LikeHandler
	TweetHandler        *handler.TweetHandler
	SubscriptionHandler *handler.SubscriptionHandler
	PlaylistHandler     *handler.PlaylistHandler
	DashboardHandler    *handler.DashboardHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	videoHandler        *handler.VideoHandler
	commentHandler      *handler.CommentHandler
	likeHandler         *handler.LikeHandler
	tweetHandler        *handler.TweetHandler
	subscriptionHandler *handler.SubscriptionHandler
	playlistHandler     *handler.PlaylistHandler
	dashboardHandler    *handler.DashboardHandler
	authMiddleware      *middleware.AuthMiddleware
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		videoHandler:        params.VideoHandler,
		commentHandler:      params.CommentHandler,
		likeHandler:         params.LikeHandler,
		tweetHandler:        params.TweetHandler,
		subscriptionHandler: params.SubscriptionHandler,
		playlistHandler:     params.PlaylistHandler,
		dashboardHandler:    params.DashboardHandler,
		authMiddleware:      params.AuthMiddleware,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	if dir, ok := localMediaDir(r.config.Media); ok {
		e.Static("/media", dir)
	}

	auth := r.authMiddleware.Authenticate
	optional := r.authMiddleware.OptionalAuthenticate
	upload := echomiddleware.BodyLimit(r.config.HTTP.MaxUploadSize)

	apiV1 := e.Group("/api/v1")

	users := apiV1.Group("/users")
	{
		users.POST("/register", r.userHandler.Register, upload)
		users.POST("/login", r.userHandler.Login)
		users.POST("/logout", r.userHandler.Logout, auth)
		users.POST("/refresh-token", r.userHandler.RefreshToken)
		users.PATCH("/change-password", r.userHandler.ChangePassword, auth)
		users.GET("/current-user", r.userHandler.CurrentUser, auth)
		users.PATCH("/update-fullname", r.userHandler.UpdateFullname, auth)
		users.PATCH("/avatar", r.userHandler.UpdateAvatar, auth, upload)
		users.PATCH("/cover-image", r.userHandler.UpdateCoverImage, auth, upload)

		users.GET("/profile/:username", r.userHandler.ChannelProfile, optional)
		users.GET("/channel-videos/:userId", r.userHandler.ChannelVideos)

		users.GET("/watch-history", r.userHandler.WatchHistory, auth)
		users.PATCH("/watch-history/:videoId", r.userHandler.AddToWatchHistory, auth)
		users.DELETE("/watch-history/:videoId", r.userHandler.RemoveFromWatchHistory, auth)
	}

	videos := apiV1.Group("/videos")
	{
		videos.GET("", r.videoHandler.Feed, optional)
		videos.POST("", r.videoHandler.Publish, auth, upload)
		videos.GET("/:videoId", r.videoHandler.Detail, optional)
		videos.PATCH("/:videoId", r.videoHandler.Update, auth, upload)
		videos.DELETE("/:videoId", r.videoHandler.Delete, auth)
		videos.PATCH("/toggle/publish/:videoId", r.videoHandler.TogglePublish, auth)
		videos.PATCH("/:videoId/views", r.videoHandler.IncrementViews, optional)
	}

	comments := apiV1.Group("/comments")
	{
		comments.GET("/:videoId", r.commentHandler.List, optional)
		comments.POST("/:videoId", r.commentHandler.Add, auth)
		comments.PATCH("/c/:commentId", r.commentHandler.Update, auth)
		comments.DELETE("/c/:commentId", r.commentHandler.Delete, auth)
	}

	likes := apiV1.Group("/likes")
	likes.Use(auth)
	{
		likes.POST("/toggle/v/:videoId", r.likeHandler.ToggleVideo)
		likes.POST("/toggle/c/:commentId", r.likeHandler.ToggleComment)
		likes.POST("/toggle/t/:tweetId", r.likeHandler.ToggleTweet)
		likes.GET("/videos", r.likeHandler.LikedVideos)
	}

	tweets := apiV1.Group("/tweets")
	{
		tweets.POST("", r.tweetHandler.Create, auth)
		tweets.GET("/user/:userId", r.tweetHandler.ListByUser)
		tweets.PATCH("/:tweetId", r.tweetHandler.Update, auth)
		tweets.DELETE("/:tweetId", r.tweetHandler.Delete, auth)
	}

	subscriptions := apiV1.Group("/subscriptions")
	subscriptions.Use(auth)
	{
		subscriptions.POST("/c/:channelId", r.subscriptionHandler.Toggle)
		subscriptions.GET("/c/:channelId", r.subscriptionHandler.Subscribers)
		subscriptions.GET("/u/:subscriberId", r.subscriptionHandler.SubscribedChannels)
		subscriptions.GET("/status/:channelId", r.subscriptionHandler.Status)
	}

	playlists := apiV1.Group("/playlists")
	{
		playlists.POST("", r.playlistHandler.Create, auth)
		playlists.GET("/user/:userId", r.playlistHandler.ListByUser)
		playlists.GET("/:playlistId", r.playlistHandler.Get, auth)
		playlists.GET("/:playlistId/videos", r.playlistHandler.Videos, optional)
		playlists.PATCH("/:playlistId", r.playlistHandler.Update, auth)
		playlists.PATCH("/:playlistId/name", r.playlistHandler.UpdateName, auth)
		playlists.PATCH("/:playlistId/description", r.playlistHandler.UpdateDescription, auth)
		playlists.DELETE("/:playlistId", r.playlistHandler.Delete, auth)
		playlists.PATCH("/add/:videoId/:playlistId", r.playlistHandler.AddVideo, auth)
		playlists.PATCH("/remove/:videoId/:playlistId", r.playlistHandler.RemoveVideo, auth)
	}

	dashboard := apiV1.Group("/dashboard")
	dashboard.Use(auth)
	{
		dashboard.GET("/stats", r.dashboardHandler.Stats)
		dashboard.GET("/videos", r.dashboardHandler.Videos)
	}
}

// localMediaDir reports the directory behind a file:// bucket so uploaded assets are reachable in development.
func localMediaDir(cfg *config.MediaConfig) (string, bool) {
	if cfg == nil || cfg.Provider != "blob" {
		return "", false
	}
	u, err := url.Parse(cfg.BucketURL)
	if err != nil || u.Scheme != "file" || u.Path == "" {
		return "", false
	}

	return u.Path, true
}
