package main

import "github.com/registra/api/cmd"

// @title Registra Manager API
// @version 1.0
// @description Admin API for Registra with an activity audit log.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token.
func main() {
	cmd.Execute()
}
