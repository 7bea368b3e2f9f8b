package main

import (
	"revenue/internal/api"

	"github.com/sirupsen/logrus"
)

// @title Revenue Management API
// @version 1.0
// @description Клиенты, договоры на ПО, скидки и расчёт выручки
// @BasePath /
func main() {
	logrus.Info("App start")
	if err := api.StartServer(); err != nil {
		logrus.Fatal(err)
	}
	logrus.Info("App terminated")
}
