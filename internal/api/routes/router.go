package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/grant-tracker/internal/api/handlers"
	"github.com/linskybing/grant-tracker/internal/api/middleware"
	"github.com/linskybing/grant-tracker/internal/application"
	"github.com/linskybing/grant-tracker/internal/repository"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func RegisterRoutes(r *gin.Engine, repos *repository.Repos, svc *application.Services, h *handlers.Handlers) {
	authMiddleware := middleware.NewAuth(repos, svc.Permission.Resolver)

	r.GET("/healthz", h.Health.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/register", h.User.Register)
	r.POST("/login", h.User.Login)
	r.POST("/logout", h.User.Logout)

	// --- Public reads; a valid token only widens what is shown ---
	public := r.Group("/")
	public.Use(middleware.OptionalJWT(), authMiddleware.LoadActor())
	{
		public.GET("/ws/events", h.Events.Stream)

		tickets := public.Group("/tickets")
		{
			tickets.GET("", h.Ticket.ListTickets)
			tickets.GET("/:id", h.Ticket.GetTicket)
		}

		topics := public.Group("/topics")
		{
			topics.GET("", h.Topic.ListTopics)
			topics.GET("/table", h.Topic.TopicTable)
			topics.GET("/finance", h.Finance.Overview)
			topics.GET("/:id", h.Topic.GetTopic)
		}

		grants := public.Group("/grants")
		{
			grants.GET("", h.Grant.ListGrants)
			grants.GET("/:slug", h.Grant.GetGrant)
		}

		users := public.Group("/users")
		{
			users.GET("", h.User.ListUsers)
			users.GET("/:username", h.User.GetUser)
		}

		transactions := public.Group("/transactions")
		{
			transactions.GET("", h.Transaction.ListTransactions)
			transactions.GET("/transactions.csv", h.Transaction.ExportCSV)
			transactions.GET("/:id", h.Transaction.GetTransaction)
		}

		public.GET("/clusters/:id", h.Cluster.GetCluster)

		finance := public.Group("/finance")
		{
			finance.GET("/tickets/:id", h.Finance.TicketAccepted)
			finance.GET("/topics/:id", h.Finance.TopicSummary)
			finance.GET("/grants/:id", h.Finance.GrantSummary)
			finance.GET("/clusters", h.Finance.ClusterTotals)
			finance.GET("/overview", h.Finance.Overview)
		}
	}

	// --- JWT-protected routes ---
	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware(), authMiddleware.LoadActor())
	{
		tickets := auth.Group("/tickets")
		{
			tickets.POST("", h.Ticket.CreateTicket)
			tickets.PUT("/:id", h.Ticket.UpdateTicket)
			tickets.GET("/:id/permissions", h.Ticket.GetPermissions)
			tickets.DELETE("/:id/acks/:ack_id", h.Ticket.RemoveAck)

			tickets.GET("/:id/docs", authMiddleware.TicketDocuments(middleware.DocumentsRead), h.Document.ListDocuments)
			tickets.POST("/:id/docs", authMiddleware.TicketDocuments(middleware.DocumentsWrite), h.Document.UploadDocument)
			tickets.PUT("/:id/docs", authMiddleware.TicketDocuments(middleware.DocumentsWrite), h.Document.UpdateDocuments)
			tickets.GET("/:id/docs/:filename", authMiddleware.TicketDocuments(middleware.DocumentsRead), h.Document.Download)
		}

		my := auth.Group("/my")
		{
			my.GET("/details", h.User.GetMyDetails)
			my.PUT("/details", h.User.UpdateMyDetails)
		}

		admin := auth.Group("/admin")
		admin.Use(authMiddleware.Staff())
		{
			admin.GET("/tickets", h.Ticket.ListAdminTickets)
			admin.PUT("/tickets/:id/review", authMiddleware.TopicAdmin(middleware.TopicFromTicketParam()), h.Ticket.ReviewTicket)
			admin.POST("/tickets/:id/acks", authMiddleware.TopicAdmin(middleware.TopicFromTicketParam()), h.Ticket.AddAck)
			admin.DELETE("/tickets/:id/acks/:ack_id", authMiddleware.TopicAdmin(middleware.TopicFromTicketParam()), h.Ticket.AdminRemoveAck)
			admin.GET("/tickets/:id/history", authMiddleware.TopicAdmin(middleware.TopicFromTicketParam()), h.Audit.TicketHistory)

			admin.GET("/topics", h.Topic.ListAdminTopics)
			admin.POST("/topics", authMiddleware.Supervisor(), h.Topic.CreateTopic)
			admin.PUT("/topics/:id", authMiddleware.TopicAdmin(middleware.TopicFromIDParam()), h.Topic.UpdateTopic)

			admin.GET("/users", h.User.AdminListUsers)

			admin.POST("/grants", authMiddleware.Supervisor(), h.Grant.CreateGrant)

			transactions := admin.Group("/transactions")
			transactions.Use(authMiddleware.Supervisor())
			{
				transactions.POST("", h.Transaction.CreateTransaction)
				transactions.PUT("/:id", h.Transaction.UpdateTransaction)
				transactions.DELETE("/:id", h.Transaction.DeleteTransaction)
			}

			admin.POST("/clusters/rebuild", authMiddleware.Supervisor(), h.Cluster.Rebuild)
			admin.GET("/audit/logs", authMiddleware.Supervisor(), h.Audit.GetAuditLogs)
		}
	}
}
