package main

import (
	"context"
	_ "time/tzdata"

	"github.com/adanyl0v/event-planner/internal/app"
)

func main() {
	app.InitDefaultLogger()
	app.MustReadEnv()
	app.MustInitApplicationLogger()

	app.MustConnectPostgres()
	defer app.DisconnectPostgres()
	app.MustMigratePostgres()

	app.InitServices()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	app.MustStartDigest(ctx)
	defer app.StopDigest()

	app.MustListenAndServeHTTP()
}
