// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"embed"
	"fmt"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"
	"tmine/analysis"
	analysisActions "tmine/analysis/handlers"
	"tmine/cnf"
	"tmine/docs"
	"tmine/general"
	"tmine/monitoring"
	monitoringActions "tmine/monitoring/handlers"
	"tmine/rdb"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type apiServer struct {
	server    *http.Server
	conf      *cnf.Conf
	version   general.VersionInfo
	radapter  *rdb.Adapter
	stopWords *analysis.StopWordsProvider
}

//go:embed docs/swagger.json
var swaggerJSON embed.FS

//go:embed ui/index.html
var uiPage embed.FS

func mkServerInfo(conf *cnf.Conf, ver general.VersionInfo) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		uniresp.WriteJSONResponse(
			ctx.Writer,
			map[string]any{
				"name":    "TMINE - a Japanese text analysis workbench",
				"version": ver,
				"apiDocs": conf.PublicURL + "/docs/index.html",
				"webUI":   conf.PublicURL + "/ui",
			},
		)
	}
}

func (api *apiServer) Start(ctx context.Context) {
	if !api.conf.IsDebugMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(additionalLogEvents())
	engine.Use(logging.GinMiddleware())
	engine.Use(uniresp.AlwaysJSONContentType())
	engine.Use(CORSMiddleware(api.conf))
	engine.NoMethod(uniresp.NoMethodHandler)
	engine.NoRoute(uniresp.NotFoundHandler)

	protected := engine.Group("/monitoring").Use(AuthRequired(api.conf))

	tActions := analysisActions.NewActions(
		api.conf.Analysis, api.radapter, api.stopWords)

	engine.GET("/", mkServerInfo(api.conf, api.version))

	engine.GET(
		"/ui",
		func(ctx *gin.Context) {
			page, err := uiPage.ReadFile("ui/index.html")
			if err != nil {
				err = fmt.Errorf("Failed to read the UI page: %w", err)
				uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
				return
			}
			ctx.Writer.Header().Set("Content-Type", "text/html; charset=utf-8")
			ctx.Writer.Write(page)
		},
	)

	docs.SwaggerInfo.BasePath = "/"

	engine.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// also serve the raw JSON variant of the docs:
	engine.GET(
		"/openapi",
		func(ctx *gin.Context) {
			jsonFile, err := swaggerJSON.ReadFile("docs/swagger.json")
			if err != nil {
				err = fmt.Errorf("Failed to read Swagger file: %w", err)
				uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
				return
			}
			uniresp.WriteRawJSONResponse(ctx.Writer, jsonFile)
		},
	)

	engine.POST(
		"/morphemes", tActions.Morphemes)

	engine.POST(
		"/word-report", tActions.WordReport)

	engine.POST(
		"/word-cloud", tActions.WordCloud)

	engine.POST(
		"/cooc-network", tActions.CoocNetwork)

	engine.POST(
		"/kwic", tActions.KWIC)

	engine.GET(
		"/analysis-options", tActions.AnalysisOptions)

	mActions := monitoringActions.NewActions(
		monitoring.NewStatusReader(api.radapter, api.conf.TimezoneLocation()))

	protected.GET(
		"/workers-load", mActions.WorkersLoad)

	protected.GET(
		"/workers-load/:workerId", mActions.SingleWorkerLoad)

	protected.GET(
		"/recent-records", mActions.RecentRecords)

	log.Info().Msgf("starting to listen at %s:%d", api.conf.ListenAddress, api.conf.ListenPort)
	api.server = &http.Server{
		Handler:      engine,
		Addr:         fmt.Sprintf("%s:%d", api.conf.ListenAddress, api.conf.ListenPort),
		WriteTimeout: time.Duration(api.conf.ServerWriteTimeoutSecs) * time.Second,
		ReadTimeout:  time.Duration(api.conf.ServerReadTimeoutSecs) * time.Second,
	}
	go func() {
		if err := api.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

}

func (s *apiServer) Stop(ctx context.Context) error {
	log.Warn().Msg("shutting down TMINE HTTP API server")
	return s.server.Shutdown(ctx)
}

func runApiServer(
	conf *cnf.Conf,
	ver general.VersionInfo,
) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	radapter := rdb.NewAdapter(conf.Redis, ctx)
	err := radapter.TestConnection(redisConnectionTestTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
		return
	}
	stopWords, err := analysis.NewStopWordsProvider(conf.Analysis)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize stop words provider")
		return
	}
	server := newAPIServer(conf, ver, radapter, stopWords)

	services := []service{stopWords, server}
	for _, m := range services {
		m.Start(ctx)
	}
	<-ctx.Done()
	log.Warn().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var wg sync.WaitGroup
	for _, s := range services {
		wg.Add(1)
		go func(srv service) {
			defer wg.Done()
			if err := srv.Stop(shutdownCtx); err != nil {
				log.Error().Err(err).Type("service", srv).Msg("Error shutting down service")
			}
		}(s)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info().Msg("Graceful shutdown completed")
	case <-shutdownCtx.Done():
		log.Warn().Msg("Shutdown timed out")
	}
}

func newAPIServer(
	conf *cnf.Conf,
	ver general.VersionInfo,
	radapter *rdb.Adapter,
	stopWords *analysis.StopWordsProvider,
) *apiServer {
	return &apiServer{
		conf:      conf,
		version:   ver,
		radapter:  radapter,
		stopWords: stopWords,
	}
}
