// cmd/hexv/main.go
package main

import (
	"hexv/internal/app"
	"hexv/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
