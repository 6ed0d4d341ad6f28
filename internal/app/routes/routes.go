package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/studysphere/studysphere/internal/app/controllers"
	"github.com/studysphere/studysphere/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	profileController *controllers.ProfileController,
	groupController *controllers.GroupController,
	doubtController *controllers.DoubtController,
	socialController *controllers.SocialController,
	postController *controllers.PostController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// --- Public account routes ---
	accounts := router.Group("/accounts")
	{
		accounts.GET("/register/", authController.RegisterHint)
		accounts.POST("/register/", authController.Register)
		accounts.POST("/login/", authController.Login)
	}

	// --- Authenticated routes ---
	authenticated := router.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/accounts/profile/", profileController.GetProfile)
		authenticated.PUT("/accounts/profile/", profileController.UpdateProfile)

		groups := authenticated.Group("/groups")
		{
			groups.GET("/", groupController.ListGroups)
			groups.POST("/", groupController.CreateGroup)
			groups.GET("/my/", groupController.ListMyGroups)
			groups.POST("/:id/join/", groupController.JoinGroup)
			groups.POST("/:id/leave/", groupController.LeaveGroup)
		}

		doubts := authenticated.Group("/doubts")
		{
			doubts.GET("/", doubtController.ListDoubts)
			doubts.POST("/", doubtController.CreateDoubt)
			doubts.GET("/assigned/", doubtController.ListAssignedDoubts)
			doubts.POST("/:id/reply/", doubtController.ReplyToDoubt)
			doubts.POST("/:id/solution/", doubtController.MarkSolution)
		}

		friends := authenticated.Group("/friends")
		{
			friends.GET("/", socialController.ListFriends)
			friends.POST("/send/", socialController.SendFriendRequest)
			friends.GET("/requests/", socialController.ListPendingRequests)
			friends.POST("/requests/:id/respond/", socialController.RespondToRequest)
		}

		posts := authenticated.Group("/posts")
		{
			posts.GET("/", postController.ListPosts)
			posts.POST("/", postController.CreatePost)
			posts.POST("/:id/comment/", postController.AddComment)
			posts.POST("/:id/react/", postController.ReactToPost)
		}
	}
}
