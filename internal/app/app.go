package app

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/reelmates/reelmates-client/internal/api"
	"github.com/reelmates/reelmates-client/internal/config"
	"github.com/reelmates/reelmates-client/internal/events"
	"github.com/reelmates/reelmates-client/internal/realtime"
	"github.com/reelmates/reelmates-client/internal/repo/chats"
	"github.com/reelmates/reelmates-client/internal/repo/forums"
	"github.com/reelmates/reelmates-client/internal/repo/matches"
	"github.com/reelmates/reelmates-client/internal/repo/media"
	"github.com/reelmates/reelmates-client/internal/repo/medialogs"
	"github.com/reelmates/reelmates-client/internal/repo/notifications"
	"github.com/reelmates/reelmates-client/internal/repo/tmdb"
	"github.com/reelmates/reelmates-client/internal/repo/users"
	"github.com/reelmates/reelmates-client/internal/session"
	"github.com/reelmates/reelmates-client/internal/store"
	"github.com/reelmates/reelmates-client/pkg/validator"
)

func Invoke(funcs ...any) *fx.App {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	conf := config.MustLoad()
	log.Debug("config loaded", zap.Any("config", conf))

	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			l := &fxevent.ZapLogger{Logger: log}
			l.UseLogLevel(zapcore.DebugLevel)
			return l
		}),
		fx.Provide(
			newSessionStorage,
			newFirestore,

			store.NewSessionStore,
			events.NewBus,
			validator.New,
			api.NewClient,
			realtime.NewSource,

			users.NewClient,
			medialogs.NewClient,
			media.NewClient,
			matches.NewClient,
			chats.NewClient,
			forums.NewClient,
			notifications.NewClient,
			tmdb.NewClient,

			session.NewManager,
		),
		fx.Supply(conf, log),
		fx.Invoke(funcs...),
	)
}

// RestoreSession loads the cached identity on startup and detaches the
// session manager on shutdown.
func RestoreSession(lc fx.Lifecycle, m *session.Manager) {
	lc.Append(fx.Hook{
		OnStart: m.Restore,
		OnStop: func(context.Context) error {
			m.Close()
			return nil
		},
	})
}
