package router

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"

	"github.com/dtroode/notekeeper/api/proto"
	"github.com/dtroode/notekeeper/internal/api/grpc/handler"
	"github.com/dtroode/notekeeper/internal/api/grpc/middleware"
	"github.com/dtroode/notekeeper/internal/logger"
	"github.com/dtroode/notekeeper/internal/model"
)

// Router represents a gRPC router for notekeeper services.
// It manages gRPC service registration and middleware configuration.
type Router struct {
	vault          handler.VaultService
	authority      handler.AuthorityService
	tokenService   middleware.TokenService
	logger         *logger.Logger
	contextManager model.ContextManager
}

// New creates new gRPC Router instance.
func New(
	vault handler.VaultService,
	authority handler.AuthorityService,
	tokenService middleware.TokenService,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		vault:          vault,
		authority:      authority,
		tokenService:   tokenService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// requiresAuth reports whether a method needs a bearer token. Only the
// verification key is public.
func requiresAuth(_ context.Context, c interceptors.CallMeta) bool {
	return c.FullMethod() != proto.KeyIssuance_RequestVerificationKey_FullMethodName
}

// Register registers all gRPC services and middleware.
// It sets up the gRPC server with request logging and authentication interceptors.
func (r *Router) Register(opts ...grpc.ServerOption) *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenService, r.contextManager, r.logger)

	opts = append(opts,
		grpc.ChainUnaryInterceptor(
			logging.HandleGRPC,
			selector.UnaryServerInterceptor(
				auth.UnaryServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(requiresAuth),
			),
		),
	)

	s := grpc.NewServer(opts...)
	r.registerNoteRoutes(s)
	r.registerKeyRoutes(s)

	return s
}

func (r *Router) registerNoteRoutes(server *grpc.Server) {
	notesHandler := handler.NewNotes(r.vault, r.contextManager, r.logger)
	proto.RegisterNoteStoreServer(server, notesHandler)
}

func (r *Router) registerKeyRoutes(server *grpc.Server) {
	keysHandler := handler.NewKeys(r.authority, r.contextManager, r.logger)
	proto.RegisterKeyIssuanceServer(server, keysHandler)
}
