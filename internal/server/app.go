// Package server initializes and runs the StayHub application server.
// It wires the in-process document store, the auth core and the HTTP API,
// seeds initial data, and handles graceful shutdown.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stayhub-dev/stayhub/internal/common"
	"github.com/stayhub-dev/stayhub/internal/docstore"
	"github.com/stayhub-dev/stayhub/internal/logging"
	"github.com/stayhub-dev/stayhub/internal/server/auth"
	"github.com/stayhub-dev/stayhub/internal/server/bookings"
	"github.com/stayhub-dev/stayhub/internal/server/config"
	"github.com/stayhub-dev/stayhub/internal/server/httpapi"
	"github.com/stayhub-dev/stayhub/internal/server/rooms"
	"github.com/stayhub-dev/stayhub/internal/server/users"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	userService    *users.Service
	roomService    *rooms.Service
	bookingService *bookings.Service
	handler        *httpapi.Handler
}

func NewApp(c *config.Config) (*App, error) {
	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	db := docstore.NewDatabase()
	tokens := auth.NewTokenManager([]byte(c.SecretKey), c.TokenValidityDuration)

	us := users.NewService(db, tokens)
	rs := rooms.NewService(db)
	bs := bookings.NewService(db, rs.Collection())

	h := httpapi.NewHandler(logger, auth.NewGuard(tokens), us, rs, bs)

	return &App{
		config:         c,
		logger:         logger,
		userService:    us,
		roomService:    rs,
		bookingService: bs,
		handler:        h,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// seed populates the room catalog and the bootstrap admin account.
// Both steps are idempotent so restarts are safe.
func (app *App) seed(ctx context.Context) error {
	if app.config.SeedRooms {
		n, err := app.roomService.Seed(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			app.logger.Info(ctx, "seeded room catalog", "rooms", n)
		}
	}

	if app.config.AdminEmail != "" && app.config.AdminPassword != "" {
		_, err := app.userService.RegisterAdmin(ctx, app.config.AdminEmail, app.config.AdminPassword, app.config.AdminFullName)
		switch {
		case err == nil:
			app.logger.Info(ctx, "created bootstrap admin", "email", app.config.AdminEmail)
		case errors.Is(err, common.ErrDuplicate):
			// already registered
		default:
			return err
		}
	}

	return nil
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	gin.SetMode(app.config.GinMode)

	srv := &http.Server{
		Addr:    app.config.EndpointAddr,
		Handler: app.handler.Router(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(ctx, "shutdown error", "err", err)
		}
	}()

	app.logger.Info(ctx, "starting http server", "addr", app.config.EndpointAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	if err := app.seed(ctx); err != nil {
		app.logger.Error(ctx, "seed error", "err", err)
		return
	}

	app.startHTTPServer(ctx, cancelFunc)
}
