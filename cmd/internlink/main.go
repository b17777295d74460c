package main

import (
	"InternLink/internal/bootstrap"
	pkg "InternLink/pkg/routes"

	"go.uber.org/fx"
)

func main() {
	bootstrap.Loadenv()

	app := fx.New(
		pkg.EchoModules,
	)

	app.Run()
}
