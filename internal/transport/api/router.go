package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-commission/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
	// DefaultTokenTTL время жизни jwt токена, выдаваемого при регистрации.
	DefaultTokenTTL = 24 * time.Hour
)

const (
	RouteGroup           = "/api"
	RegisterRoute        = "/user/register"
	ReferralsRoute       = "/user/referrals"
	OrdersRoute          = "/user/orders"
	OrderRoute           = "/user/orders/:orderID"
	OrderAmountRoute     = "/user/orders/:orderID/amount"
	OrderStatusRoute     = "/user/orders/:orderID/status"
	CommissionsRoute     = "/user/commissions"
	CommissionStatsRoute = "/user/commissions/stats"
	TeamRoute            = "/user/team"
)

type RouterArgs struct {
	Logger        *logrus.Logger
	UserService   UserServicer
	GraphService  GraphServicer
	OrderService  OrderServicer
	LedgerService LedgerServicer
	TeamService   TeamServicer
	JWTSecretKey  []byte
}

func New(args RouterArgs) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	usersHandler := NewUsersHandler(args.UserService, args.GraphService, args.JWTSecretKey)
	ordersHandler := NewOrdersHandler(args.OrderService)
	commissionsHandler := NewCommissionsHandler(args.LedgerService)
	teamHandler := NewTeamHandler(args.TeamService)

	api := r.Group(RouteGroup)

	api.POST(RegisterRoute, middlewares.NonAuthRequired(args.JWTSecretKey), usersHandler.Register)

	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного пользователя.
	api.POST(ReferralsRoute, usersHandler.BindReferrer)

	api.POST(OrdersRoute, ordersHandler.Create)
	api.GET(OrderRoute, ordersHandler.Show)
	api.PATCH(OrderAmountRoute, ordersHandler.UpdateAmount)
	api.PATCH(OrderStatusRoute, ordersHandler.UpdateStatus)

	api.GET(CommissionsRoute, commissionsHandler.Index)
	api.GET(CommissionStatsRoute, commissionsHandler.Stats)

	api.GET(TeamRoute, teamHandler.Index)
	return r
}
