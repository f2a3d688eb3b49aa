package prometheus

import (
	"context"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/iotaledger/hive.go/daemon"
	"github.com/iotaledger/hive.go/logger"
	"github.com/iotaledger/hive.go/node"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iotaledger/balancedternary/packages/shutdown"
)

// PluginName is the name of the prometheus plugin.
const PluginName = "Prometheus"

var (
	// Plugin is the plugin instance of the prometheus plugin.
	Plugin *node.Plugin
	log    *logger.Logger

	server   *http.Server
	registry *prometheus.Registry
	collects []func()
)

func init() {
	Plugin = node.NewPlugin(PluginName, nil, node.Disabled, configure, run)
}

func configure(plugin *node.Plugin) {
	log = logger.NewLogger(plugin.Name)

	registry = newRegistry()
}

// newRegistry creates a registry with all enabled metrics and replaces the collect functions with its own.
func newRegistry() *prometheus.Registry {
	metricsRegistry := prometheus.NewRegistry()
	collects = nil

	if Parameters.GoMetrics {
		metricsRegistry.MustRegister(collectors.NewGoCollector())
	}
	if Parameters.ProcessMetrics {
		metricsRegistry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}

	registerOperationMetrics(metricsRegistry)

	return metricsRegistry
}

func addCollect(collect func()) {
	collects = append(collects, collect)
}

// newEngine returns the gin engine that serves the metrics of the registry on /metrics.
func newEngine(registry *prometheus.Registry) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())

	handler := promhttp.HandlerFor(
		registry,
		promhttp.HandlerOpts{
			EnableOpenMetrics: true,
		},
	)
	if Parameters.PromhttpMetrics {
		handler = promhttp.InstrumentMetricHandler(registry, handler)
	}

	engine.GET("/metrics", func(c *gin.Context) {
		for _, collect := range collects {
			collect()
		}

		handler.ServeHTTP(c.Writer, c.Request)
	})

	return engine
}

func run(plugin *node.Plugin) {
	log.Info("Starting Prometheus exporter ...")

	if err := daemon.BackgroundWorker("Prometheus exporter", func(ctx context.Context) {
		log.Info("Starting Prometheus exporter ... done")

		bindAddr := Parameters.BindAddress
		server = &http.Server{Addr: bindAddr, Handler: newEngine(registry)}

		go func() {
			log.Infof("You can now access the Prometheus exporter using: http://%s/metrics", bindAddr)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("Stopping Prometheus exporter due to an error ... done")
			}
		}()

		<-ctx.Done()
		log.Info("Stopping Prometheus exporter ...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error(err.Error())
		}

		log.Info("Stopping Prometheus exporter ... done")
	}, shutdown.PriorityPrometheus); err != nil {
		plugin.Panicf("Failed to start as daemon: %s", err)
	}
}
