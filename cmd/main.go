package main

import (
	"github.com/glowpod/order-svc/internal/app"
	"github.com/glowpod/order-svc/internal/config"
)

func main() {
	cfg := config.MustInit()
	app.MustNewApp(cfg).Run()
}
