package main

import (
	appfx "github.com/reimbazz/GF-Innovation-service/internal/fx"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		appfx.AppModule,
	).Run()
}
