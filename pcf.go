// SPDX-FileCopyrightText: 2025 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

package main

import (
	"os"

	"github.com/omec-project/pcf/backend/logger"
	"github.com/omec-project/pcf/backend/pcf_service"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

var PCF = &pcf_service.PCF{}

var appLog *zap.SugaredLogger

func init() {
	appLog = logger.AppLog
}

func main() {
	app := cli.NewApp()
	app.Name = "pcf"
	appLog.Infoln(app.Name)
	app.Usage = "-cfg pcf configuration file"
	app.Action = action
	app.Flags = PCF.GetCliCmd()
	if err := app.Run(os.Args); err != nil {
		logger.AppLog.Warnf("error args: %v", err)
	}
}

func action(c *cli.Context) {
	PCF.Initialize(c)
	PCF.Start()
}
