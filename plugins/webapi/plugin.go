package webapi

import (
	"context"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/daemon"
	"github.com/iotaledger/hive.go/generics/event"
	"github.com/iotaledger/hive.go/logger"
	"github.com/iotaledger/hive.go/node"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
	gommonlog "github.com/labstack/gommon/log"

	"github.com/iotaledger/balancedternary/packages/jsonmodels"
	"github.com/iotaledger/balancedternary/packages/shutdown"
)

// PluginName is the name of the web API plugin.
const PluginName = "WebAPI"

var (
	// Plugin is the plugin instance of the web API plugin.
	Plugin *node.Plugin
	log    *logger.Logger

	server *echo.Echo
)

func init() {
	Plugin = node.NewPlugin(PluginName, nil, node.Enabled, configure, run)

	Plugin.Events.Init.Hook(event.NewClosure(func(event *node.InitEvent) {
		if err := event.Container.Provide(newServer); err != nil {
			Plugin.Panic(err)
		}
	}))
}

// newServer creates the echo instance that the endpoint plugins register their routes on.
func newServer() *echo.Echo {
	server = NewServer(Parameters)

	return server
}

// NewServer returns an echo instance configured with the given parameters.
func NewServer(parameters *ParametersDefinition) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(gommonlog.OFF)
	e.HTTPErrorHandler = handleError
	e.Use(middleware.Recover())

	if parameters.BasicAuth.Enabled {
		e.Use(middleware.BasicAuth(func(username, password string, c echo.Context) (bool, error) {
			if username == parameters.BasicAuth.Username &&
				password == parameters.BasicAuth.Password {
				return true, nil
			}
			return false, nil
		}))
	}

	return e
}

// handleError renders errors that were not handled by an endpoint as an ErrorResponse.
func handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	statusCode := http.StatusInternalServerError
	message := err.Error()

	var httpError *echo.HTTPError
	if errors.As(err, &httpError) {
		statusCode = httpError.Code
		if httpErrorMessage, isString := httpError.Message.(string); isString {
			message = httpErrorMessage
		}
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(statusCode)
	} else {
		err = c.JSON(statusCode, jsonmodels.ErrorResponse{Error: message})
	}
	if err != nil && log != nil {
		log.Errorf("Error writing error response: %s", err)
	}
}

func configure(plugin *node.Plugin) {
	log = logger.NewLogger(plugin.Name)
}

func run(plugin *node.Plugin) {
	log.Infof("Starting %s ...", PluginName)
	if err := daemon.BackgroundWorker(PluginName, worker, shutdown.PriorityWebAPI); err != nil {
		log.Panicf("Error starting as daemon: %s", err)
	}
}

func worker(ctx context.Context) {
	defer log.Infof("Stopping %s ... done", PluginName)

	stopped := make(chan struct{})
	go func() {
		log.Infof("%s started, bind-address=%s, basic-auth=%v", PluginName, Parameters.BindAddress, Parameters.BasicAuth.Enabled)
		if err := server.Start(Parameters.BindAddress); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				log.Errorf("Error serving: %s", err)
			}
			close(stopped)
		}
	}()

	// stop if we are shutting down or the server could not be started
	select {
	case <-ctx.Done():
	case <-stopped:
	}

	log.Infof("Stopping %s ...", PluginName)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Error stopping: %s", err)
	}
}
