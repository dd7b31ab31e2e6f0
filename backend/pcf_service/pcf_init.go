// SPDX-FileCopyrightText: 2025 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

package pcf_service

import (
	"path/filepath"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/omec-project/pcf/backend/factory"
	"github.com/omec-project/pcf/backend/logger"
	"github.com/omec-project/pcf/backend/metrics"
	"github.com/omec-project/pcf/dbadapter"
	"github.com/omec-project/pcf/npcfapi"
	"github.com/omec-project/pcf/smpolicy"
	"github.com/omec-project/pcf/udrdiscovery"
	"github.com/omec-project/util/http2_util"
	utilLogger "github.com/omec-project/util/logger"
	"github.com/urfave/cli"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type PCF struct{}

type (
	// Config information.
	Config struct {
		cfg string
	}
)

var config Config

var pcfCLi = []cli.Flag{
	cli.StringFlag{
		Name:     "cfg",
		Usage:    "pcf config file",
		Required: true,
	},
}

func (*PCF) GetCliCmd() (flags []cli.Flag) {
	return pcfCLi
}

func (pcf *PCF) Initialize(c *cli.Context) {
	config = Config{
		cfg: c.String("cfg"),
	}

	absPath, err := filepath.Abs(config.cfg)
	if err != nil {
		logger.CfgLog.Errorln(err)
		return
	}

	if err := factory.InitConfigFactory(absPath); err != nil {
		logger.CfgLog.Errorln(err)
		return
	}

	pcf.setLogLevel()
}

func (pcf *PCF) setLogLevel() {
	if factory.PcfConfig.Logger == nil || factory.PcfConfig.Logger.PCF == nil {
		logger.InitLog.Warnln("pcf config without log level setting")
		return
	}

	if factory.PcfConfig.Logger.PCF.DebugLevel != "" {
		if level, err := zapcore.ParseLevel(factory.PcfConfig.Logger.PCF.DebugLevel); err != nil {
			logger.InitLog.Warnf("PCF log level [%s] is invalid, set to [info] level",
				factory.PcfConfig.Logger.PCF.DebugLevel)
			logger.SetLogLevel(zap.InfoLevel)
		} else {
			logger.InitLog.Infof("PCF log level is set to [%s] level", level)
			logger.SetLogLevel(level)
		}
	} else {
		logger.InitLog.Warnln("PCF log level not set. Default set to [info] level")
		logger.SetLogLevel(zap.InfoLevel)
	}
}

// buildRetriever wires the UDR data source: mongo-backed when a mongodb url is
// configured, static otherwise.
func buildRetriever(configuration *factory.Configuration) smpolicy.PolicyDataRetriever {
	if configuration != nil && configuration.Mongodb != nil && configuration.Mongodb.Url != "" {
		dbadapter.ConnectMongo(configuration.Mongodb.Url, configuration.Mongodb.Name, &dbadapter.CommonDBClient)
		mongoProvider := &udrdiscovery.MongoProvider{}
		return udrdiscovery.NewService(mongoProvider, mongoProvider)
	}
	var profiles []*factory.UdrProfile
	if configuration != nil {
		profiles = configuration.UdrProfiles
	}
	staticProvider := udrdiscovery.NewStaticProvider(profiles)
	return udrdiscovery.NewService(staticProvider, staticProvider)
}

func (pcf *PCF) Start() {
	configuration := factory.PcfConfig.Configuration

	logger.InitLog.Infoln("PCF server started")

	router := utilLogger.NewGinWithZap(logger.GinLog)
	processor := smpolicy.NewProcessor(buildRetriever(configuration))
	npcfapi.AddSmPolicyService(router, processor)
	npcfapi.AddPolicyAuthService(router)

	router.Use(cors.New(cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS", "PUT", "PATCH", "DELETE"},
		AllowHeaders: []string{
			"Origin", "Content-Length", "Content-Type", "User-Agent",
			"Referrer", "Host", "Token", "X-Requested-With",
		},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           86400,
	}))

	metricsPort := 0
	if configuration != nil {
		metricsPort = configuration.MetricsPort
	}
	go metrics.InitMetrics(metricsPort)

	httpPort := 29507
	if configuration != nil && configuration.WebServer != nil && configuration.WebServer.Port != 0 {
		httpPort = configuration.WebServer.Port
	}
	httpAddr := ":" + strconv.Itoa(httpPort)

	var tlsConfig *factory.TLS
	if configuration != nil {
		tlsConfig = configuration.TLS
	}
	if factory.PcfConfig.Info != nil && factory.PcfConfig.Info.HttpVersion == 2 || tlsConfig != nil {
		server, err := http2_util.NewServer(httpAddr, "", router)
		if server == nil {
			logger.InitLog.Errorln("initialize HTTP-2 server failed:", err)
			return
		}
		if err != nil {
			logger.InitLog.Warnln("initialize HTTP-2 server:", err)
			return
		}
		if tlsConfig != nil {
			err = server.ListenAndServeTLS(tlsConfig.PEM, tlsConfig.Key)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil {
			logger.InitLog.Fatalln("HTTP server setup failed:", err)
		}
		return
	}

	logger.InitLog.Infoln("PCF HTTP addr", httpAddr)
	logger.InitLog.Infoln(router.Run(httpAddr))
	logger.InitLog.Infoln("PCF server stopped/terminated/not-started")
}
